package cinescroll

import (
	"math"
	"testing"
)

const frameDt = 1.0 / 60

// frameLog records copies of every applied frame.
type frameLog struct {
	frames []Frame
}

func (l *frameLog) Apply(f *Frame) {
	c := *f
	c.Sections = append([]SectionState(nil), f.Sections...)
	c.Burst = nil
	l.frames = append(l.frames, c)
}

func (l *frameLog) last() *Frame {
	return &l.frames[len(l.frames)-1]
}

// newReadyEngine returns an engine whose intro has already completed.
func newReadyEngine(sceneEnabled bool) (*Engine, *frameLog) {
	opts := DefaultOptions()
	opts.SceneEnabled = sceneEnabled
	e := New(opts)
	log := &frameLog{}
	e.SetRenderer(log)
	e.FrameReady()
	e.Intro().Skip()
	return e, log
}

func TestEngineScriptedSequence(t *testing.T) {
	e, log := newReadyEngine(true)
	samples := []float64{0, 0.05, 0.1, 0.3, 0.5, 0.92, 1.0}
	e.InjectScrollSequence(samples...)
	for range samples {
		e.Update(frameDt)
	}
	if len(log.frames) != len(samples) {
		t.Fatalf("got %d frames, want %d", len(log.frames), len(samples))
	}

	hero := func(i int) SectionState {
		s, ok := log.frames[i].Section("hero")
		if !ok {
			t.Fatalf("frame %d has no hero section", i)
		}
		return s
	}

	for i, want := range samples {
		if got := log.frames[i].Progress; got != want {
			t.Errorf("frame %d progress = %v, want %v", i, got, want)
		}
	}
	if h := hero(0); h.Rendered || h.Visibility != 0 {
		t.Errorf("hero at 0 = %+v, want hidden", h)
	}
	if !hero(1).Rendered {
		t.Error("hero should be mounted at 0.05")
	}
	if hero(2).Visibility <= 0 {
		t.Error("hero should be visible at 0.1")
	}
	if hero(6).Rendered {
		t.Error("hero should be unmounted at 1.0")
	}

	for i, p := range samples {
		want := p >= RestartThreshold
		if got := log.frames[i].State.RestartAvailable; got != want {
			t.Errorf("frame %d restart available = %v, want %v", i, got, want)
		}
	}

	if contact, _ := log.last().Section("contact"); contact.Visibility <= 0 {
		t.Error("contact should be visible at 1.0")
	}
}

func TestEnginePointerConvergence(t *testing.T) {
	e, _ := newReadyEngine(true)
	e.Update(frameDt)
	if x := e.Frame().Camera.Position.X(); x != 0 {
		t.Fatalf("camera x = %v before pointer move, want 0", x)
	}

	w, _ := e.Viewport()
	e.PointerMove(w, 0)
	e.Update(frameDt)
	first := e.Frame().Camera.Position.X()
	if first <= 0 || first >= 0.75 {
		t.Errorf("camera x = %v one frame after the move, want a small lagged step", first)
	}

	for i := 0; i < 200; i++ {
		e.Update(frameDt)
	}
	if x := e.Frame().Camera.Position.X(); math.Abs(x-1.5) > 0.015 {
		t.Errorf("camera x = %v after 200 frames, want within 1%% of 1.5", x)
	}
}

func TestEngineDegradedPath(t *testing.T) {
	opts := DefaultOptions()
	opts.SceneEnabled = false
	e := New(opts)
	log := &frameLog{}
	e.SetRenderer(log)

	e.FrameReady()
	if st := e.Store().Snapshot(); !st.Loaded || !st.IntroComplete {
		t.Fatalf("degraded intro should complete at once, got %+v", st)
	}
	if e.SceneEnabled() || e.Scene() != nil {
		t.Error("scene should be disabled")
	}

	e.InjectScroll(0.6)
	e.Update(frameDt)
	f := log.last()
	if f.SceneEnabled {
		t.Error("frame reports the scene enabled")
	}
	if f.Objects[ObjCore] != (ObjectState{}) || f.Camera != (CameraPose{}) {
		t.Error("degraded frames should not carry scene state")
	}
	if w, ok := f.Section("work"); !ok || w.Visibility <= 0 {
		t.Errorf("work section = %+v, want visible at 0.6", w)
	}
}

func TestEngineInputIgnoredDuringIntro(t *testing.T) {
	e := New(DefaultOptions())
	e.FrameReady()
	if !e.Intro().Active() {
		t.Fatal("intro should be running")
	}

	e.Wheel(5)
	e.ScrollBy(300)
	if got := e.Scroll().Target(); got != 0 {
		t.Errorf("scroll target = %v during intro, want 0", got)
	}
	e.InjectScroll(0.5)
	e.Update(frameDt)
	if got := e.Store().Progress(); got != 0 {
		t.Errorf("progress = %v during intro, want 0", got)
	}

	for i := 0; i < 400 && !e.Store().Snapshot().IntroComplete; i++ {
		e.Update(frameDt)
	}
	if !e.Store().Snapshot().IntroComplete {
		t.Fatal("intro never completed")
	}
	// The injected jump moved the container; its position is picked up once
	// the sampler owns progress again.
	e.Update(frameDt)
	if got := e.Store().Progress(); got != 0.5 {
		t.Errorf("progress = %v after intro, want 0.5", got)
	}
	e.Wheel(5)
	if got := e.Scroll().Target(); got != 3740 {
		t.Errorf("scroll target = %v after intro, want 3740", got)
	}
}

func TestEngineFrameReadyOnce(t *testing.T) {
	e := New(DefaultOptions())
	e.Update(frameDt)
	e.FrameReady()
	start := e.Intro().Run().Start
	for i := 0; i < 30; i++ {
		e.Update(frameDt)
	}
	e.FrameReady()
	if e.Intro().Run().Start != start {
		t.Error("second FrameReady restarted the intro")
	}
}

func TestEngineRestartJourney(t *testing.T) {
	e, log := newReadyEngine(true)
	if e.Restart() {
		t.Fatal("Restart accepted before the affordance was shown")
	}

	e.InjectScroll(1)
	e.Update(frameDt)
	if !e.Store().Snapshot().RestartAvailable {
		t.Fatal("restart should be available at the end of the track")
	}
	if !e.Restart() {
		t.Fatal("Restart rejected")
	}
	if e.Restart() {
		t.Error("second Restart accepted while returning")
	}

	prev := 1.0
	for i := 0; i < 300 && e.Store().Snapshot().Returning; i++ {
		e.Update(frameDt)
		p := log.last().Progress
		if p > prev {
			t.Fatalf("effective progress rose during return: %v > %v", p, prev)
		}
		prev = p
		if log.last().State.RestartAvailable {
			t.Fatal("restart offered during return")
		}
	}

	st := e.Store().Snapshot()
	if st.Returning {
		t.Fatal("return never finished")
	}
	if st.Progress != 0 || e.Scroll().Offset() != 0 || e.Scroll().Target() != 0 {
		t.Errorf("after return: progress %v offset %v target %v, want all 0",
			st.Progress, e.Scroll().Offset(), e.Scroll().Target())
	}
	if st.Burst != BurstSettled {
		t.Errorf("burst = %s after return, want settled", st.Burst)
	}

	e.Update(frameDt)
	if e.Store().Progress() != 0 || e.Burst().State() != BurstSettled {
		t.Error("state drifted after the return finished")
	}
}

func TestEngineResize(t *testing.T) {
	e, _ := newReadyEngine(false)
	e.InjectScroll(0.5)
	e.Update(frameDt)

	e.Resize(1920, 1080)
	if w, h := e.Viewport(); w != 1920 || h != 1080 {
		t.Errorf("viewport = %vx%v, want 1920x1080", w, h)
	}
	if got := e.Scroll().Limit(); got != 9720 {
		t.Errorf("limit = %v, want 9720", got)
	}
	e.Update(frameDt)
	if got := e.Store().Progress(); !approxEqual(got, 0.5, 1e-9) {
		t.Errorf("progress = %v after resize, want 0.5", got)
	}

	e.Resize(0, 500)
	if w, _ := e.Viewport(); w != 1920 {
		t.Error("zero-width resize should be ignored")
	}
}

func TestEngineFrameClock(t *testing.T) {
	e, log := newReadyEngine(false)
	for i := 0; i < 3; i++ {
		e.Update(0.5)
	}
	e.Update(math.NaN())
	e.Update(-1)

	if len(log.frames) != 5 {
		t.Fatalf("renderer saw %d frames, want 5", len(log.frames))
	}
	for i, f := range log.frames {
		if f.Index != uint64(i+1) {
			t.Errorf("frame %d index = %d", i, f.Index)
		}
	}
	if got := e.Clock(); got != 1.5 {
		t.Errorf("clock = %v, want 1.5", got)
	}
	if f := log.last(); f.Dt != 0 || f.Time != 1.5 {
		t.Errorf("last frame dt %v time %v, want 0 and 1.5", f.Dt, f.Time)
	}
}

func TestEffectiveProgress(t *testing.T) {
	if got := EffectiveProgress(State{Progress: 0.4}); got != 0.4 {
		t.Errorf("got %v, want 0.4", got)
	}
	if got := EffectiveProgress(State{Progress: 1, Returning: true, ReturnProgress: 0.25}); got != 0.75 {
		t.Errorf("got %v, want 0.75", got)
	}
}

func TestEngineBurstFiresOnFirstScroll(t *testing.T) {
	e, _ := newReadyEngine(true)
	e.Update(frameDt)
	if e.Burst().State() != BurstArmed {
		t.Fatal("burst fired without scrolling")
	}
	e.InjectScroll(0.2)
	e.Update(frameDt)
	if e.Burst().State() != BurstTriggered {
		t.Fatalf("burst = %s, want triggered", e.Burst().State())
	}
	if n := len(e.Frame().Burst); n != DefaultFieldConfig().Count {
		t.Errorf("frame carries %d particles, want %d", n, DefaultFieldConfig().Count)
	}
}
