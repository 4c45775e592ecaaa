package cinescroll

import "time"

// Options configures an Engine.
type Options struct {
	Sections []Section
	Scene    SceneConfig
	Scroll   ScrollConfig
	Field    FieldConfig

	IntroDuration  float64
	IntroSettle    float64
	ReturnDuration float64
	BurstThreshold float64
	BurstRate      float64

	// SceneEnabled selects the 3D path. When false (no graphics capability or
	// reduced motion) only sections are computed, for the whole session.
	SceneEnabled bool

	ViewportWidth  float64
	ViewportHeight float64

	Debug bool
}

// DefaultOptions returns the reference tuning with the 3D scene enabled.
func DefaultOptions() Options {
	return Options{
		Sections:       DefaultSections(),
		Scene:          DefaultSceneConfig(),
		Scroll:         DefaultScrollConfig(),
		Field:          DefaultFieldConfig(),
		IntroDuration:  DefaultIntroDuration,
		IntroSettle:    DefaultIntroSettle,
		ReturnDuration: DefaultReturnDuration,
		BurstThreshold: DefaultBurstThreshold,
		BurstRate:      DefaultBurstRate,
		SceneEnabled:   true,
		ViewportWidth:  1280,
		ViewportHeight: 720,
	}
}

// Engine is the frame scheduler. It owns the store, input sampler, smooth
// scroller, both mappers and the three transition machines, and drives them
// once per Update.
type Engine struct {
	store    *Store
	sampler  *Sampler
	scroll   *SmoothScroll
	sections *SectionMapper
	scene    *SceneMapper // nil on the degraded path

	intro *Intro
	ret   *Return
	burst *Burst

	renderer Renderer
	frame    Frame

	clock        float64
	prevProgress float64
	vw, vh       float64

	injectQueue []syntheticEvent
	testRunner  *TestRunner

	debug bool
	stats debugStats
}

// New creates an engine. The capability decision in opts.SceneEnabled is
// final for the engine's lifetime.
func New(opts Options) *Engine {
	store := NewStore()
	scroll := NewSmoothScroll(opts.Scroll, opts.ViewportHeight)
	e := &Engine{
		store:    store,
		sampler:  NewSampler(store),
		scroll:   scroll,
		sections: NewSectionMapper(opts.Sections),
		intro:    NewIntro(store, opts.IntroDuration, opts.IntroSettle),
		ret:      NewReturn(store, scroll, opts.ReturnDuration),
		burst:    NewBurst(store, NewBurstField(opts.Field), opts.BurstThreshold, opts.BurstRate),
		vw:       opts.ViewportWidth,
		vh:       opts.ViewportHeight,
		debug:    opts.Debug,
	}
	if opts.SceneEnabled {
		e.scene = NewSceneMapper(opts.Scene)
	}
	e.frame.SceneEnabled = opts.SceneEnabled
	return e
}

// SetRenderer sets the collaborator that receives each frame.
func (e *Engine) SetRenderer(r Renderer) {
	e.renderer = r
}

// SetDebugMode enables or disables per-frame timing stats on stderr.
func (e *Engine) SetDebugMode(enabled bool) {
	e.debug = enabled
}

// Store returns the engine's state store.
func (e *Engine) Store() *Store { return e.store }

// Sampler returns the input sampler.
func (e *Engine) Sampler() *Sampler { return e.sampler }

// Scroll returns the smooth-scroll integrator.
func (e *Engine) Scroll() *SmoothScroll { return e.scroll }

// Intro returns the intro machine.
func (e *Engine) Intro() *Intro { return e.intro }

// Return returns the restart-journey machine.
func (e *Engine) Return() *Return { return e.ret }

// Burst returns the burst machine.
func (e *Engine) Burst() *Burst { return e.burst }

// Scene returns the scene mapper, or nil on the degraded path.
func (e *Engine) Scene() *SceneMapper { return e.scene }

// SceneEnabled reports whether the 3D path is active.
func (e *Engine) SceneEnabled() bool { return e.scene != nil }

// Frame returns the most recent frame.
func (e *Engine) Frame() *Frame { return &e.frame }

// Clock returns the engine time in seconds.
func (e *Engine) Clock() float64 { return e.clock }

// Viewport returns the current viewport size in pixels.
func (e *Engine) Viewport() (w, h float64) { return e.vw, e.vh }

// Wheel feeds a raw wheel delta into the smooth scroller. Input is ignored
// while a transition owns progress.
func (e *Engine) Wheel(delta float64) {
	if e.store.progressOwner() != WriterSampler {
		return
	}
	e.scroll.Wheel(delta)
}

// ScrollBy feeds a pixel delta (keyboard, touch) into the smooth scroller.
// Input is ignored while a transition owns progress.
func (e *Engine) ScrollBy(px float64) {
	if e.store.progressOwner() != WriterSampler {
		return
	}
	e.scroll.ScrollBy(px)
}

// PointerMove feeds a pointer position in client pixels.
func (e *Engine) PointerMove(clientX, clientY float64) {
	e.sampler.OnPointerMove(clientX, clientY, e.vw, e.vh)
}

// Hover sets or clears (nil) the hovered card color.
func (e *Engine) Hover(c *Color) {
	e.store.SetHoveredColor(c)
}

// Resize updates the viewport and rescales the scroll track.
func (e *Engine) Resize(width, height float64) {
	if width <= 0 || height <= 0 {
		return
	}
	e.vw, e.vh = width, height
	e.scroll.Resize(height)
}

// FrameReady is the renderer's first-frame-rendered signal. The first call
// starts the intro; later calls are no-ops. On the degraded path the intro
// completes immediately.
func (e *Engine) FrameReady() {
	if e.scene == nil {
		e.intro.Skip()
		return
	}
	if e.intro.Trigger(e.clock) {
		e.debugf("intro started at %.3fs", e.clock)
	}
}

// Restart starts the return-to-top rewind when the affordance is available.
// It reports whether a rewind was started.
func (e *Engine) Restart() bool {
	if !e.store.state.RestartAvailable {
		return false
	}
	if !e.ret.Trigger(e.clock) {
		return false
	}
	e.store.setRestartAvailable(false)
	e.debugf("return started at %.3fs", e.clock)
	return true
}

// EffectiveProgress is the progress used for rendering: the stored progress,
// or 1 - returnProgress while a rewind runs.
func EffectiveProgress(s State) float64 {
	if s.Returning {
		return clamp01(1 - s.ReturnProgress)
	}
	return s.Progress
}

// Update advances the engine by dt seconds and hands the frame to the
// renderer.
func (e *Engine) Update(dt float64) {
	if !finite(dt) || dt < 0 {
		dt = 0
	}
	e.clock += dt

	var t0 time.Time
	if e.debug {
		t0 = time.Now()
	}

	// Input: scripted events, then the smooth-scroll integrator.
	if e.testRunner != nil {
		e.testRunner.step(e)
	}
	e.processInjectedInput()
	e.sampler.OnScrollSignal(e.scroll.Advance(dt))

	if e.debug {
		e.stats.inputTime += time.Since(t0)
		t0 = time.Now()
	}

	e.intro.Update(dt)
	e.ret.Update(dt)

	st := e.store.state
	if e.burst.Observe(e.prevProgress, st.Progress, e.clock) {
		e.debugf("burst triggered at %.3fs (progress %.3f)", e.clock, st.Progress)
	}
	e.prevProgress = st.Progress
	e.burst.Update(dt)

	if e.debug {
		e.stats.transitionTime += time.Since(t0)
		t0 = time.Now()
	}

	eff := EffectiveProgress(st)
	e.frame.Sections = e.sections.Map(eff)
	e.store.setRestartAvailable(eff >= RestartThreshold && st.IntroComplete && !st.Returning)

	if e.debug {
		e.stats.sectionTime += time.Since(t0)
		t0 = time.Now()
	}

	if e.scene != nil {
		st = e.store.state
		e.scene.Update(SceneInput{
			Progress:      eff,
			Pointer:       st.Pointer,
			Elapsed:       e.clock,
			IntroComplete: st.IntroComplete,
			IntroProgress: st.IntroProgress,
			Hovered:       st.HoveredColor,
			Burst:         e.burst.State(),
			BurstProgress: e.burst.Progress(),
		}, &e.frame)
		e.frame.Burst = e.burst.Field().Positions()
	}

	if e.debug {
		e.stats.sceneTime += time.Since(t0)
		t0 = time.Now()
	}

	e.frame.Index++
	e.frame.Time = e.clock
	e.frame.Dt = dt
	e.frame.Progress = eff
	e.frame.State = e.store.Snapshot()
	if e.renderer != nil {
		e.renderer.Apply(&e.frame)
	}

	if e.debug {
		e.stats.applyTime += time.Since(t0)
		e.stats.frames++
		e.stats.dropped = e.sampler.Dropped()
		e.debugLog()
	}
}
