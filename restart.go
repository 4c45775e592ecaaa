package cinescroll

import "github.com/tanema/gween/ease"

// DefaultReturnDuration is the length of the restart-journey rewind.
const DefaultReturnDuration = 2.0

// ScrollResetter moves the physical scroll container. SmoothScroll satisfies
// it.
type ScrollResetter interface {
	ScrollTo(offset float64, immediate bool)
}

// Return rewinds the narrative back to the top with a cubic ease-out, then
// resets the real scroll position. Once started it cannot be aborted.
type Return struct {
	store    *Store
	scroll   ScrollResetter
	duration float64

	run   TransitionRun
	tween *progressTween
}

// NewReturn creates an idle return machine. scroll may be nil.
func NewReturn(store *Store, scroll ScrollResetter, duration float64) *Return {
	return &Return{
		store:    store,
		scroll:   scroll,
		duration: duration,
		run:      TransitionRun{Kind: TransitionReturn, Duration: duration},
	}
}

// Active reports whether a rewind is running.
func (r *Return) Active() bool {
	return r.run.Active
}

// Run returns the current or last run.
func (r *Return) Run() TransitionRun {
	return r.run
}

// Trigger starts a rewind at engine time now. Duplicate requests while
// running are ignored. It reports whether a run was started.
func (r *Return) Trigger(now float64) bool {
	if r.run.Active {
		return false
	}
	r.run = TransitionRun{Kind: TransitionReturn, Start: now, Duration: r.duration, Active: true}
	r.tween = newProgressTween(r.duration, ease.OutCubic)
	r.store.setReturn(true, 0)
	r.store.SetProgress(WriterReturn, 1)
	return true
}

// Update advances the rewind by dt seconds, writing progress = 1 - eased.
func (r *Return) Update(dt float64) {
	if !r.run.Active {
		return
	}
	eased, _, done := r.tween.Update(dt)
	r.run.advance(eased)
	if !done {
		r.store.setReturn(true, r.run.Progress)
		r.store.SetProgress(WriterReturn, 1-r.run.Progress)
		return
	}

	r.store.SetProgress(WriterReturn, 0)
	if r.scroll != nil {
		r.scroll.ScrollTo(0, true)
	}
	r.run.Active = false
	r.store.setReturn(false, 0)
}
