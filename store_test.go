package cinescroll

import (
	"math"
	"testing"
)

func TestStoreDefaults(t *testing.T) {
	s := NewStore()
	st := s.Snapshot()
	if st.Progress != 0 || st.Pointer != (Vec2{}) {
		t.Errorf("defaults = %+v", st)
	}
	if st.Loaded || st.IntroComplete || st.Returning || st.RestartAvailable {
		t.Error("flags should start false")
	}
	if st.HoveredColor != nil {
		t.Error("no card should be hovered initially")
	}
	if st.Burst != BurstArmed {
		t.Errorf("burst = %s, want armed", st.Burst)
	}
}

func TestStoreSetProgressClamps(t *testing.T) {
	s := NewStore()
	tests := []struct {
		in, want float64
	}{
		{0.4, 0.4},
		{-0.2, 0},
		{1.7, 1},
	}
	for _, tt := range tests {
		if !s.SetProgress(WriterSampler, tt.in) {
			t.Fatalf("SetProgress(%v) rejected", tt.in)
		}
		if got := s.Progress(); got != tt.want {
			t.Errorf("SetProgress(%v): progress = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestStoreSingleWriter(t *testing.T) {
	s := NewStore()
	if s.SetProgress(WriterReturn, 0.5) {
		t.Error("return machine should not write while idle")
	}

	// Intro owns progress between load and completion.
	s.setLoaded()
	if s.SetProgress(WriterSampler, 0.5) {
		t.Error("sampler write accepted during intro")
	}
	s.setIntro(1, true)
	if !s.SetProgress(WriterSampler, 0.5) {
		t.Error("sampler write rejected after intro")
	}

	s.setReturn(true, 0)
	if s.SetProgress(WriterSampler, 0.9) {
		t.Error("sampler write accepted during return")
	}
	if !s.SetProgress(WriterReturn, 0.3) {
		t.Error("return write rejected while returning")
	}
	if s.Progress() != 0.3 {
		t.Errorf("progress = %v, want 0.3", s.Progress())
	}
	s.setReturn(false, 0)
	if s.SetProgress(WriterReturn, 0.1) {
		t.Error("return write accepted after return finished")
	}
}

func TestStoreRejectsNonFinite(t *testing.T) {
	s := NewStore()
	s.SetProgress(WriterSampler, 0.25)
	if s.SetProgress(WriterSampler, math.NaN()) {
		t.Error("NaN write accepted")
	}
	if s.Progress() != 0.25 {
		t.Errorf("progress changed to %v", s.Progress())
	}
}

func TestStoreSnapshotIsolation(t *testing.T) {
	s := NewStore()
	c := Color{1, 0, 0}
	s.SetHoveredColor(&c)
	c.G = 1 // caller's value must not leak in

	snap := s.Snapshot()
	if snap.HoveredColor == nil || *snap.HoveredColor != (Color{1, 0, 0}) {
		t.Fatalf("hovered = %v, want red", snap.HoveredColor)
	}
	snap.HoveredColor.B = 1
	if again := s.Snapshot(); *again.HoveredColor != (Color{1, 0, 0}) {
		t.Error("mutating a snapshot changed the store")
	}

	s.SetHoveredColor(nil)
	if s.Snapshot().HoveredColor != nil {
		t.Error("hover should clear")
	}
	if *snap.HoveredColor != (Color{1, 0, 1}) {
		t.Error("old snapshot should keep its own copy")
	}
}

func TestStoreSubscribe(t *testing.T) {
	s := NewStore()
	var calls int
	var last State
	h := s.Subscribe(func(st State) {
		calls++
		last = st
	})

	s.SetProgress(WriterSampler, 0.5)
	if calls != 1 || last.Progress != 0.5 {
		t.Fatalf("calls = %d, last progress = %v", calls, last.Progress)
	}

	// Unchanged writes do not notify.
	s.SetProgress(WriterSampler, 0.5)
	s.SetPointer(Vec2{})
	if calls != 1 {
		t.Errorf("calls = %d after no-op writes, want 1", calls)
	}

	s.SetPointer(Vec2{X: 0.5})
	if calls != 2 || last.Pointer.X != 0.5 {
		t.Errorf("pointer write not observed")
	}

	h.Remove()
	s.SetProgress(WriterSampler, 0.7)
	if calls != 2 {
		t.Errorf("removed subscriber still called")
	}
	// Removing twice is harmless.
	h.Remove()
	SubscriptionHandle{}.Remove()
}

func TestStoreMultipleSubscribers(t *testing.T) {
	s := NewStore()
	var a, b int
	ha := s.Subscribe(func(State) { a++ })
	s.Subscribe(func(State) { b++ })
	s.SetProgress(WriterSampler, 0.1)
	ha.Remove()
	s.SetProgress(WriterSampler, 0.2)
	if a != 1 || b != 2 {
		t.Errorf("a = %d, b = %d, want 1 and 2", a, b)
	}
}

func TestStoreSubscriberRemovesItself(t *testing.T) {
	s := NewStore()
	var calls [3]int
	var h0 SubscriptionHandle
	h0 = s.Subscribe(func(State) {
		calls[0]++
		h0.Remove()
	})
	s.Subscribe(func(State) { calls[1]++ })
	s.Subscribe(func(State) { calls[2]++ })

	s.SetPointer(Vec2{X: 0.5})
	s.SetPointer(Vec2{X: -0.5})

	if calls != [3]int{1, 2, 2} {
		t.Errorf("calls = %v, want [1 2 2]", calls)
	}
	if len(s.subs) != 2 {
		t.Errorf("%d subscribers left, want 2", len(s.subs))
	}
}

func TestStoreRemoveLaterSubscriberDuringNotify(t *testing.T) {
	s := NewStore()
	var later SubscriptionHandle
	laterCalls := 0
	s.Subscribe(func(State) { later.Remove() })
	later = s.Subscribe(func(State) { laterCalls++ })

	s.SetPointer(Vec2{Y: 1})
	if laterCalls != 0 {
		t.Errorf("removed subscriber fired %d times", laterCalls)
	}
}

func TestStoreSubscribeDuringNotify(t *testing.T) {
	s := NewStore()
	added := 0
	subscribed := false
	s.Subscribe(func(State) {
		if !subscribed {
			subscribed = true
			s.Subscribe(func(State) { added++ })
		}
	})

	s.SetPointer(Vec2{X: 1})
	if added != 0 {
		t.Errorf("subscriber added during notify fired in the same round")
	}
	s.SetPointer(Vec2{X: 0})
	if added != 1 {
		t.Errorf("added subscriber fired %d times, want 1", added)
	}
}
