package cinescroll

import "slices"

// Writer identifies which component is writing to the Store. Progress writes
// are accepted from exactly one writer at a time.
type Writer uint8

const (
	WriterSampler Writer = iota // user-driven scroll and pointer input
	WriterIntro                 // intro cinematic
	WriterReturn                // restart-journey rewind
	WriterBurst                 // burst particle trigger
	WriterUI                    // external content cards
)

// State is an immutable snapshot of the Store.
type State struct {
	// Progress is the normalized scroll position in [0, 1].
	Progress float64
	// Pointer is the normalized cursor position in [-1, 1] x [-1, 1].
	Pointer Vec2

	Loaded        bool
	IntroProgress float64
	IntroComplete bool

	Returning      bool
	ReturnProgress float64

	// RestartAvailable reports whether the restart affordance is shown.
	RestartAvailable bool

	Burst BurstState

	// HoveredColor is the accent color of the hovered content card, or nil.
	HoveredColor *Color
}

// Store is the single shared mutable state of an Engine. It is not safe for
// concurrent use; all writes happen on the frame goroutine.
type Store struct {
	state State
	// hovered holds the value HoveredColor points at so snapshots never
	// alias caller memory.
	hovered Color

	subs      []subscriber
	nextID    uint32
	notifying int
}

type subscriber struct {
	id uint32
	fn func(State)
}

// SubscriptionHandle allows removing a Store subscription.
type SubscriptionHandle struct {
	id    uint32
	store *Store
}

// Remove unregisters the subscription so it no longer fires. It may be
// called from inside a subscriber callback.
func (h SubscriptionHandle) Remove() {
	s := h.store
	if s == nil {
		return
	}
	for i := range s.subs {
		if s.subs[i].id == h.id && s.subs[i].fn != nil {
			s.subs[i].fn = nil
			s.compact()
			return
		}
	}
}

// NewStore creates a store at progress 0 with the pointer centered.
func NewStore() *Store {
	return &Store{}
}

// Snapshot returns a copy of the current state.
func (s *Store) Snapshot() State {
	st := s.state
	if st.HoveredColor != nil {
		c := s.hovered
		st.HoveredColor = &c
	}
	return st
}

// Progress returns the stored scroll progress.
func (s *Store) Progress() float64 {
	return s.state.Progress
}

// Pointer returns the stored normalized pointer position.
func (s *Store) Pointer() Vec2 {
	return s.state.Pointer
}

// Subscribe registers fn to be called with a snapshot after every accepted
// write.
func (s *Store) Subscribe(fn func(State)) SubscriptionHandle {
	s.nextID++
	s.subs = append(s.subs, subscriber{id: s.nextID, fn: fn})
	return SubscriptionHandle{id: s.nextID, store: s}
}

// progressOwner returns the writer currently allowed to set progress.
func (s *Store) progressOwner() Writer {
	switch {
	case s.state.Returning:
		return WriterReturn
	case s.state.Loaded && !s.state.IntroComplete:
		return WriterIntro
	default:
		return WriterSampler
	}
}

// SetProgress writes the scroll progress on behalf of w. The value is clamped
// to [0, 1]. It reports whether the write was accepted.
func (s *Store) SetProgress(w Writer, p float64) bool {
	if !finite(p) || w != s.progressOwner() {
		return false
	}
	p = clamp01(p)
	if p == s.state.Progress {
		return true
	}
	s.state.Progress = p
	s.notify()
	return true
}

// SetPointer writes the normalized pointer position.
func (s *Store) SetPointer(p Vec2) {
	if s.state.Pointer == p {
		return
	}
	s.state.Pointer = p
	s.notify()
}

// SetHoveredColor sets or clears (nil) the hovered card accent color. This is
// the only write exposed to content-card collaborators.
func (s *Store) SetHoveredColor(c *Color) {
	if c == nil {
		if s.state.HoveredColor == nil {
			return
		}
		s.state.HoveredColor = nil
	} else {
		s.hovered = *c
		s.state.HoveredColor = &s.hovered
	}
	s.notify()
}

func (s *Store) setLoaded() {
	if s.state.Loaded {
		return
	}
	s.state.Loaded = true
	s.notify()
}

func (s *Store) setIntro(progress float64, complete bool) {
	if s.state.IntroProgress == progress && s.state.IntroComplete == complete {
		return
	}
	s.state.IntroProgress = progress
	s.state.IntroComplete = complete
	s.notify()
}

func (s *Store) setReturn(active bool, progress float64) {
	if s.state.Returning == active && s.state.ReturnProgress == progress {
		return
	}
	s.state.Returning = active
	s.state.ReturnProgress = progress
	s.notify()
}

func (s *Store) setRestartAvailable(v bool) {
	if s.state.RestartAvailable == v {
		return
	}
	s.state.RestartAvailable = v
	s.notify()
}

func (s *Store) setBurst(b BurstState) {
	if s.state.Burst == b {
		return
	}
	s.state.Burst = b
	s.notify()
}

// notify calls every subscriber registered before the write. Entries removed
// during the loop are skipped and compacted afterwards.
func (s *Store) notify() {
	if len(s.subs) == 0 {
		return
	}
	snap := s.Snapshot()
	s.notifying++
	n := len(s.subs)
	for i := 0; i < n && i < len(s.subs); i++ {
		if fn := s.subs[i].fn; fn != nil {
			fn(snap)
		}
	}
	s.notifying--
	s.compact()
}

// compact drops removed subscribers unless a notify loop is running.
func (s *Store) compact() {
	if s.notifying > 0 {
		return
	}
	s.subs = slices.DeleteFunc(s.subs, func(sub subscriber) bool { return sub.fn == nil })
}
