package cinescroll

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// TransitionKind identifies one of the three transition state machines.
type TransitionKind uint8

const (
	TransitionIntro TransitionKind = iota
	TransitionReturn
	TransitionBurst
)

func (k TransitionKind) String() string {
	switch k {
	case TransitionIntro:
		return "intro"
	case TransitionReturn:
		return "return"
	case TransitionBurst:
		return "burst"
	default:
		return "unknown"
	}
}

// TransitionRun is one activation of a transition. Progress never decreases
// within a run.
type TransitionRun struct {
	Kind     TransitionKind
	Start    float64 // engine clock seconds at trigger
	Duration float64 // seconds; 0 for rate-driven runs
	Progress float64
	Active   bool
}

// advance raises Progress to p, never lowering it.
func (r *TransitionRun) advance(p float64) {
	p = clamp01(p)
	if p > r.Progress {
		r.Progress = p
	}
}

// progressTween drives a 0→1 value over a fixed duration with an easing
// function.
type progressTween struct {
	tween   *gween.Tween
	elapsed float64
	dur     float64
}

func newProgressTween(duration float64, fn ease.TweenFunc) *progressTween {
	if duration <= 0 {
		duration = 1e-6
	}
	return &progressTween{
		tween: gween.New(0, 1, float32(duration), fn),
		dur:   duration,
	}
}

// Update advances by dt seconds and returns the eased value, the linear time
// fraction and whether the tween finished.
func (t *progressTween) Update(dt float64) (eased, linear float64, done bool) {
	t.elapsed += dt
	v, finished := t.tween.Update(float32(dt))
	linear = clamp01(t.elapsed / t.dur)
	if finished {
		return 1, 1, true
	}
	return clamp01(float64(v)), linear, false
}

// easeOutCubic is 1-(1-t)^3 on [0, 1].
func easeOutCubic(t float64) float64 {
	return float64(ease.OutCubic(float32(clamp01(t)), 0, 1, 1))
}
