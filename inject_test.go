package cinescroll

import (
	"math"
	"testing"
)

func TestInjectScrollOnePerFrame(t *testing.T) {
	e, log := newReadyEngine(false)
	e.InjectScrollSequence(0.2, 0.4, 0.6)
	if e.Pending() != 3 {
		t.Fatalf("Pending = %d, want 3", e.Pending())
	}
	for i := 0; i < 3; i++ {
		e.Update(frameDt)
	}
	if e.Pending() != 0 {
		t.Errorf("Pending = %d after three frames, want 0", e.Pending())
	}
	want := []float64{0.2, 0.4, 0.6}
	for i, f := range log.frames {
		if !approxEqual(f.Progress, want[i], 1e-12) {
			t.Errorf("frame %d progress = %v, want %v", i, f.Progress, want[i])
		}
	}
}

func TestInjectScrollNonFinite(t *testing.T) {
	e, _ := newReadyEngine(false)
	e.InjectScroll(0.3)
	e.Update(frameDt)
	e.InjectScroll(math.NaN())
	e.Update(frameDt)
	if got := e.Store().Progress(); !approxEqual(got, 0.3, 1e-12) {
		t.Errorf("progress = %v, want 0.3 kept", got)
	}
	if e.Sampler().Dropped() != 1 {
		t.Errorf("Dropped = %d, want 1", e.Sampler().Dropped())
	}
}

func TestInjectHoverAndUnhover(t *testing.T) {
	e, _ := newReadyEngine(false)
	e.InjectHover(Color{0, 1, 0})
	e.Update(frameDt)
	hc := e.Store().Snapshot().HoveredColor
	if hc == nil || *hc != (Color{0, 1, 0}) {
		t.Fatalf("hovered color = %v, want green", hc)
	}
	e.InjectUnhover()
	e.Update(frameDt)
	if e.Store().Snapshot().HoveredColor != nil {
		t.Error("hover should be cleared")
	}
}

func TestInjectPointerAndResize(t *testing.T) {
	e, _ := newReadyEngine(false)
	e.InjectResize(800, 600)
	e.InjectPointer(800, 600)
	e.Update(frameDt)
	if w, h := e.Viewport(); w != 800 || h != 600 {
		t.Errorf("viewport = %vx%v, want 800x600", w, h)
	}
	e.Update(frameDt)
	if p := e.Store().Pointer(); p != (Vec2{1, -1}) {
		t.Errorf("pointer = %+v, want {1 -1}", p)
	}
}

func TestInjectLoadAndRestart(t *testing.T) {
	opts := DefaultOptions()
	opts.SceneEnabled = false
	e := New(opts)
	e.InjectLoad()
	e.Update(frameDt)
	if !e.Store().Snapshot().IntroComplete {
		t.Fatal("load should complete the degraded intro")
	}

	e.InjectScroll(1)
	e.InjectRestart()
	e.Update(frameDt)
	e.Update(frameDt)
	if !e.Return().Active() {
		t.Error("injected restart should start the return")
	}
}

func TestInjectWheelRespectsOwner(t *testing.T) {
	e := New(DefaultOptions())
	e.InjectLoad()
	e.InjectWheel(2)
	e.Update(frameDt)
	e.Update(frameDt)
	if e.Scroll().Target() != 0 {
		t.Error("wheel accepted during intro")
	}
}
