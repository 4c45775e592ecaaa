package stage

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/phanxgames/cinescroll"
)

// overlay displays the current FPS and TPS, plus engine state when debug is
// on. The text is refreshed every ~0.5 seconds.
type overlay struct {
	img        *ebiten.Image
	debug      bool
	lastUpdate float64
	text       string
}

func newOverlay(debug bool) *overlay {
	return &overlay{debug: debug, lastUpdate: 1}
}

// update refreshes the text from the engine state.
func (o *overlay) update(dt float64, e *cinescroll.Engine) {
	o.lastUpdate += dt
	if o.lastUpdate < 0.5 {
		return
	}
	o.lastUpdate = 0
	o.text = overlayText(ebiten.ActualFPS(), ebiten.ActualTPS(), e, o.debug)
}

// overlayText formats the overlay lines.
func overlayText(fps, tps float64, e *cinescroll.Engine, debug bool) string {
	s := fmt.Sprintf("FPS: %.1f\nTPS: %.1f", fps, tps)
	if !debug || e == nil {
		return s
	}
	st := e.Store().Snapshot()
	mode := "3d"
	if !e.SceneEnabled() {
		mode = "static"
	}
	return s + fmt.Sprintf("\nmode: %s\nprogress: %.3f\nintro: %s\nburst: %s\nreturn: %v",
		mode, cinescroll.EffectiveProgress(st), e.Intro().State(), st.Burst, st.Returning)
}

func (o *overlay) draw(dst *ebiten.Image) {
	if o.text == "" {
		return
	}
	h := 32
	if o.debug {
		h = 96
	}
	if o.img == nil || o.img.Bounds().Dy() != h {
		o.img = ebiten.NewImage(140, h)
	}
	o.img.Clear()
	// Semi-transparent background for readability
	o.img.Fill(color.RGBA{0, 0, 0, 128})
	ebitenutil.DebugPrint(o.img, o.text)
	var op ebiten.DrawImageOptions
	op.GeoM.Translate(8, 8)
	dst.DrawImage(o.img, &op)
}
