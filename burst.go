package cinescroll

// Burst defaults.
const (
	DefaultBurstThreshold = 0.01
	DefaultBurstRate      = 0.8 // progress per second
)

// BurstState is the phase of the burst particle animation.
type BurstState uint8

const (
	BurstArmed BurstState = iota
	BurstTriggered
	BurstSettled
)

func (s BurstState) String() string {
	switch s {
	case BurstArmed:
		return "armed"
	case BurstTriggered:
		return "triggered"
	case BurstSettled:
		return "settled"
	default:
		return "unknown"
	}
}

// Burst plays the explode/reform particle animation once, on the first
// scroll past a small threshold. It never re-arms.
type Burst struct {
	store     *Store
	field     *BurstField
	threshold float64
	rate      float64

	state BurstState
	run   TransitionRun
}

// NewBurst creates an armed burst machine driving field.
func NewBurst(store *Store, field *BurstField, threshold, rate float64) *Burst {
	b := &Burst{
		store:     store,
		field:     field,
		threshold: threshold,
		rate:      rate,
		run:       TransitionRun{Kind: TransitionBurst},
	}
	field.update(BurstArmed, 0)
	return b
}

// State returns the current phase.
func (b *Burst) State() BurstState {
	return b.state
}

// Run returns the burst run.
func (b *Burst) Run() TransitionRun {
	return b.run
}

// Progress returns the burst progress in [0, 1].
func (b *Burst) Progress() float64 {
	return b.run.Progress
}

// Field returns the particle field.
func (b *Burst) Field() *BurstField {
	return b.field
}

// Observe checks consecutive stored progress samples for the rising edge
// prev < threshold <= cur. It reports whether the burst fired on this call.
func (b *Burst) Observe(prev, cur, now float64) bool {
	if b.state != BurstArmed {
		return false
	}
	if !(prev < b.threshold && cur >= b.threshold) {
		return false
	}
	b.state = BurstTriggered
	b.run = TransitionRun{Kind: TransitionBurst, Start: now, Active: true}
	b.store.setBurst(b.state)
	return true
}

// Update advances burst progress by rate*dt and lays out the field.
func (b *Burst) Update(dt float64) {
	if b.state == BurstTriggered {
		b.run.advance(b.run.Progress + b.rate*dt)
		if b.run.Progress >= 1 {
			b.state = BurstSettled
			b.run.Active = false
			b.store.setBurst(b.state)
		}
	}
	b.field.update(b.state, b.run.Progress)
}
