// Package stage is the Ebitengine rendering collaborator of cinescroll. It
// reads window input into the engine, draws the frames the engine hands it
// and signals the engine once the first frame has been presented.
package stage

import (
	"context"
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/phanxgames/cinescroll"
	"github.com/phanxgames/cinescroll/config"
	"github.com/phanxgames/cinescroll/contact"
)

// Options configures a Stage.
type Options struct {
	Config *config.Config
	// Script optionally drives the engine with a scripted input sequence.
	Script *cinescroll.TestRunner
	// Submitter sends contact forms. Nil selects a relay client for the
	// configured endpoint.
	Submitter contact.Submitter
}

// Stage implements ebiten.Game and cinescroll.Renderer.
type Stage struct {
	cfg    *config.Config
	script *cinescroll.TestRunner
	engine *cinescroll.Engine

	panels  map[string]*panel
	form    *contactForm
	drawer  *sceneDrawer
	overlay *overlay
	shots   *screenshots

	// Copies of the last applied frame. Apply must not keep the engine's
	// pointer.
	frame    cinescroll.Frame
	sections []cinescroll.SectionState
	burst    []cinescroll.Vec3

	w, h       int
	firstDrawn bool
	readySent  bool
	modalOpen  bool
	lastX      int
	lastY      int
	hoverCard  *config.CardConfig

	background cinescroll.Color
	accent     cinescroll.Color
}

// New creates a stage. The engine is mounted on the first Update, once the
// graphics backend can be queried.
func New(opts Options) *Stage {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	sub := opts.Submitter
	if sub == nil {
		sub = contact.NewClient(cfg.Contact.Endpoint, cfg.ContactTimeout())
	}
	accent, err := cinescroll.ParseColor(cfg.Palette.Core)
	if err != nil {
		accent = cinescroll.ColorWhite
	}
	return &Stage{
		cfg:        cfg,
		script:     opts.Script,
		panels:     newPanels(cfg),
		form:       newContactForm(sub),
		overlay:    newOverlay(cfg.Debug),
		shots:      newScreenshots(cfg.Window.ScreenshotDir),
		w:          cfg.Window.Width,
		h:          cfg.Window.Height,
		lastX:      -1,
		lastY:      -1,
		background: cfg.BackgroundColor(),
		accent:     accent,
	}
}

// Run opens a window and runs the stage until it is closed.
func Run(opts Options) error {
	s := New(opts)
	ebiten.SetWindowTitle(s.cfg.Window.Title)
	ebiten.SetWindowSize(s.cfg.Window.Width, s.cfg.Window.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if s.cfg.Scroll.TPS > 0 {
		ebiten.SetTPS(s.cfg.Scroll.TPS)
	}
	if err := ebiten.RunGame(s); err != nil {
		return fmt.Errorf("running stage: %w", err)
	}
	return nil
}

// Engine returns the mounted engine, or nil before the first Update.
func (s *Stage) Engine() *cinescroll.Engine {
	return s.engine
}

// graphicsAvailable is the one-time capability check for the 3D path.
func graphicsAvailable() bool {
	var info ebiten.DebugInfo
	ebiten.ReadDebugInfo(&info)
	return info.GraphicsLibrary != ebiten.GraphicsLibraryUnknown
}

// mount creates the engine. The scene path is decided here, once.
func (s *Stage) mount() {
	capable := graphicsAvailable()
	opts := s.cfg.EngineOptions(capable)
	opts.ViewportWidth = float64(s.w)
	opts.ViewportHeight = float64(s.h)
	s.engine = cinescroll.New(opts)
	s.engine.SetRenderer(s)
	if s.script != nil {
		s.engine.SetTestRunner(s.script)
	}
	if opts.SceneEnabled {
		s.drawer = newSceneDrawer(400, 11)
	}
	if s.cfg.Debug {
		fmt.Fprintf(os.Stderr, "[cinescroll] stage mounted: scene=%v capable=%v reduced_motion=%v\n",
			opts.SceneEnabled, capable, s.cfg.Motion.ReducedMotion)
	}
}

// Update reads input, advances the engine and polls the contact form.
func (s *Stage) Update() error {
	if s.engine == nil {
		s.mount()
	}
	if s.firstDrawn && !s.readySent {
		s.readySent = true
		s.engine.FrameReady()
	}

	s.handleKeys()
	s.handlePointer()
	s.form.poll()

	dt := 1.0 / float64(ebiten.TPS())
	s.engine.Update(dt)
	if s.cfg.Window.ShowFPS || s.cfg.Debug {
		s.overlay.update(dt, s.engine)
	}
	return nil
}

func (s *Stage) handleKeys() {
	if inpututil.IsKeyJustPressed(ebiten.KeyF12) {
		s.shots.request(fmt.Sprintf("p%03d", int(s.frame.Progress*1000)))
	}
	if s.form.focused() {
		s.form.typeRunes(ebiten.AppendInputChars(nil))
		switch {
		case inpututil.IsKeyJustPressed(ebiten.KeyBackspace):
			s.form.backspace()
		case inpututil.IsKeyJustPressed(ebiten.KeyTab):
			s.form.next()
		case inpututil.IsKeyJustPressed(ebiten.KeyEnter):
			s.form.submit(context.Background())
		case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
			s.form.blur()
		}
		return
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyV) {
		s.modalOpen = !s.modalOpen
	}
	if s.modalOpen {
		if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
			s.modalOpen = false
		}
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		s.engine.Restart()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) && s.contactActive() {
		s.form.next()
		return
	}

	for _, k := range inpututil.AppendJustPressedKeys(nil) {
		if d := keyScroll(k, s.cfg.Scroll.KeyboardStep, float64(s.h), s.engine.Scroll().Limit()); d != 0 {
			s.engine.ScrollBy(d)
		}
	}
}

// keyScroll returns the scroll delta in pixels for a key press.
func keyScroll(k ebiten.Key, step, page, limit float64) float64 {
	switch k {
	case ebiten.KeyArrowDown:
		return step
	case ebiten.KeyArrowUp:
		return -step
	case ebiten.KeyPageDown, ebiten.KeySpace:
		return page * 0.9
	case ebiten.KeyPageUp:
		return -page * 0.9
	case ebiten.KeyEnd:
		return limit
	case ebiten.KeyHome:
		return -limit
	}
	return 0
}

func (s *Stage) handlePointer() {
	if s.modalOpen {
		// Pointer influence is paused while the showreel is open.
		return
	}
	_, dy := ebiten.Wheel()
	if dy != 0 {
		// Ebitengine reports wheel-up as positive.
		s.engine.Wheel(-dy)
	}

	x, y := ebiten.CursorPosition()
	if x != s.lastX || y != s.lastY {
		s.lastX, s.lastY = x, y
		s.engine.PointerMove(float64(x), float64(y))
	}
	fx, fy := float64(x), float64(y)
	w, h := float64(s.w), float64(s.h)

	var hovered *config.CardConfig
	for _, st := range s.sections {
		p, ok := s.panels[st.ID]
		if !ok {
			continue
		}
		i := p.cardAt(fx, fy, st, w, h)
		p.hovered = i
		if i >= 0 {
			hovered = &p.cards[i]
		}
	}
	if hovered != s.hoverCard {
		s.hoverCard = hovered
		if hovered == nil {
			s.engine.Hover(nil)
		} else {
			c := hovered.CardColor()
			s.engine.Hover(&c)
		}
	}

	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	if s.frame.State.RestartAvailable && restartButton(w, h).Contains(fx, fy) {
		s.engine.Restart()
		return
	}
	if i := s.fieldAt(fx, fy); i >= 0 {
		s.form.focus = i
	} else {
		s.form.blur()
	}
}

// contactActive reports whether the contact panel is visible enough to take
// input.
func (s *Stage) contactActive() bool {
	for _, st := range s.sections {
		if p, ok := s.panels[st.ID]; ok && p.form {
			return st.Visibility >= hoverVisibility
		}
	}
	return false
}

// fieldAt returns the contact field under (x, y), or -1.
func (s *Stage) fieldAt(x, y float64) int {
	w, h := float64(s.w), float64(s.h)
	for _, st := range s.sections {
		p, ok := s.panels[st.ID]
		if !ok || !p.form || st.Visibility < hoverVisibility {
			continue
		}
		pw, ph := p.size(w)
		rect := panelRect(pw, ph, w, h, st.Panel)
		scale := rect.Width / pw
		for i := 0; i < fieldCount; i++ {
			r := toScreen(cinescroll.Rect{
				X: panelPad, Y: p.formTop() + float64(i)*28, Width: pw - 2*panelPad, Height: 24,
			}, rect, scale)
			if r.Contains(x, y) {
				return i
			}
		}
	}
	return -1
}

// Apply copies the frame the engine produced.
func (s *Stage) Apply(f *cinescroll.Frame) {
	s.sections = append(s.sections[:0], f.Sections...)
	s.burst = append(s.burst[:0], f.Burst...)
	s.frame = *f
	s.frame.Sections = s.sections
	s.frame.Burst = s.burst
}

// Draw renders the last applied frame.
func (s *Stage) Draw(screen *ebiten.Image) {
	w, h := float64(s.w), float64(s.h)
	screen.Fill(toRGBA(s.background, 1))

	if s.drawer != nil && s.frame.SceneEnabled {
		pr := newProjector(s.frame.Camera, w, h)
		s.drawer.draw(screen, &s.frame, pr)
	} else {
		drawGradient(screen, s.background, s.background.Lerp(s.accent, 0.35))
	}

	for _, st := range s.sections {
		if !st.Rendered || st.Panel.Opacity <= 0 {
			continue
		}
		p, ok := s.panels[st.ID]
		if !ok {
			continue
		}
		p.draw(screen, st, w, h)
		if p.form && st.Visibility >= hoverVisibility {
			pw, ph := p.size(w)
			rect := panelRect(pw, ph, w, h, st.Panel)
			drawForm(screen, s.form, rect, p.formTop(), rect.Width/pw, st.Panel.Opacity)
		}
	}

	if s.frame.State.RestartAvailable {
		r := restartButton(w, h)
		drawRestartButton(screen, r, r.Contains(float64(s.lastX), float64(s.lastY)))
	}
	if s.modalOpen {
		drawModal(screen, w, h)
	}
	if s.cfg.Window.ShowFPS || s.cfg.Debug {
		s.overlay.draw(screen)
	}
	s.shots.flush(screen)
	s.firstDrawn = true
}

// Layout tracks the window size and forwards resizes to the engine.
func (s *Stage) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != s.w || outsideHeight != s.h {
		s.w, s.h = outsideWidth, outsideHeight
		if s.engine != nil {
			s.engine.Resize(float64(s.w), float64(s.h))
		}
	}
	return s.w, s.h
}
