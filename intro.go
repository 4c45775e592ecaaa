package cinescroll

import "github.com/tanema/gween/ease"

// Intro timing defaults.
const (
	DefaultIntroDuration = 2.5
	DefaultIntroSettle   = 0.3
)

// IntroState is the phase of the intro cinematic.
type IntroState uint8

const (
	IntroIdle IntroState = iota
	IntroRunning
	IntroSettling
	IntroComplete
)

func (s IntroState) String() string {
	switch s {
	case IntroIdle:
		return "idle"
	case IntroRunning:
		return "running"
	case IntroSettling:
		return "settling"
	case IntroComplete:
		return "complete"
	default:
		return "unknown"
	}
}

// Intro flies the camera from its start pose to the first scroll-mapped pose
// once, after the renderer reports its first frame. It cannot be cancelled.
type Intro struct {
	store *Store

	duration float64
	settle   float64

	state     IntroState
	run       TransitionRun
	tween     *progressTween
	remaining float64
}

// NewIntro creates an idle intro machine.
func NewIntro(store *Store, duration, settle float64) *Intro {
	return &Intro{
		store:    store,
		duration: duration,
		settle:   settle,
		run:      TransitionRun{Kind: TransitionIntro, Duration: duration},
	}
}

// State returns the current phase.
func (in *Intro) State() IntroState {
	return in.state
}

// Run returns the current or last run.
func (in *Intro) Run() TransitionRun {
	return in.run
}

// Active reports whether the intro owns the camera and scroll progress.
func (in *Intro) Active() bool {
	return in.state == IntroRunning || in.state == IntroSettling
}

// Trigger starts the intro at engine time now. Triggering again while running
// or after completion is a no-op. It reports whether a run was started.
func (in *Intro) Trigger(now float64) bool {
	if in.state != IntroIdle {
		return false
	}
	in.state = IntroRunning
	in.run = TransitionRun{Kind: TransitionIntro, Start: now, Duration: in.duration, Active: true}
	in.tween = newProgressTween(in.duration, ease.Linear)
	in.store.setLoaded()
	in.store.setIntro(0, false)
	return true
}

// Skip completes the intro immediately. Used by the degraded path where no
// camera exists to fly.
func (in *Intro) Skip() {
	if in.state == IntroComplete {
		return
	}
	in.state = IntroComplete
	in.run.advance(1)
	in.run.Active = false
	in.store.setLoaded()
	in.store.setIntro(1, true)
}

// Update advances the intro by dt seconds.
func (in *Intro) Update(dt float64) {
	switch in.state {
	case IntroRunning:
		v, _, done := in.tween.Update(dt)
		in.run.advance(v)
		in.store.setIntro(in.run.Progress, false)
		if done {
			in.state = IntroSettling
			in.remaining = in.settle
		}
	case IntroSettling:
		in.remaining -= dt
		if in.remaining <= 0 {
			in.state = IntroComplete
			in.run.Active = false
			in.store.setIntro(1, true)
		}
	}
}
