package cinescroll

import "testing"

func TestBurstFieldDeterministic(t *testing.T) {
	cfg := FieldConfig{Count: 16, Speed: Range{4, 12}, RestRadius: Range{3, 9}, Seed: 42}
	a := NewBurstField(cfg)
	b := NewBurstField(cfg)
	for i := 0; i < a.Len(); i++ {
		if a.RestPosition(i) != b.RestPosition(i) || a.ExplodedPosition(i) != b.ExplodedPosition(i) {
			t.Fatalf("particle %d differs between fields with the same seed", i)
		}
	}
	cfg.Seed = 43
	c := NewBurstField(cfg)
	if c.RestPosition(0) == a.RestPosition(0) {
		t.Error("different seeds should give different layouts")
	}
}

func TestBurstFieldRanges(t *testing.T) {
	f := NewBurstField(DefaultFieldConfig())
	if f.Len() != 600 {
		t.Fatalf("Len = %d, want 600", f.Len())
	}
	for i := 0; i < f.Len(); i++ {
		if r := f.RestPosition(i).Len(); r < 3-1e-9 || r > 9+1e-9 {
			t.Errorf("rest radius %v out of range", r)
		}
		if s := f.ExplodedPosition(i).Len(); s < 4-1e-9 || s > 12+1e-9 {
			t.Errorf("explosion distance %v out of range", s)
		}
	}
}

func TestBurstFieldDefaultCount(t *testing.T) {
	if n := NewBurstField(FieldConfig{}).Len(); n != 128 {
		t.Errorf("Len = %d, want 128", n)
	}
}

func TestBurstPositionPhases(t *testing.T) {
	p := &particle{velocity: Vec3{10, 0, 0}, exploded: Vec3{10, 0, 0}, rest: Vec3{0, 2, 0}}
	tests := []struct {
		progress float64
		want     Vec3
	}{
		{0, Vec3{0, 0, 0}},
		{0.25, Vec3{8.75, 0, 0}},
		{0.5, Vec3{10, 0, 0}},
		{0.75, Vec3{5, 1, 0}},
		{1, Vec3{0, 2, 0}},
	}
	for _, tt := range tests {
		got := burstPosition(p, tt.progress)
		if !got.ApproxEqualThreshold(tt.want, 1e-5) {
			t.Errorf("burstPosition(%v) = %v, want %v", tt.progress, got, tt.want)
		}
	}
}

func TestBurstFieldUpdateStates(t *testing.T) {
	f := NewBurstField(FieldConfig{Count: 4, Speed: Range{5, 5}, RestRadius: Range{1, 1}, Seed: 3})
	f.update(BurstTriggered, 0.5)
	for i, p := range f.Positions() {
		if !p.ApproxEqualThreshold(f.ExplodedPosition(i), 1e-5) {
			t.Errorf("particle %d at %v, want exploded %v", i, p, f.ExplodedPosition(i))
		}
	}
	f.update(BurstSettled, 0)
	for i, p := range f.Positions() {
		if p != f.RestPosition(i) {
			t.Errorf("particle %d not at rest", i)
		}
	}
	f.update(BurstArmed, 0.7)
	for _, p := range f.Positions() {
		if p != (Vec3{}) {
			t.Error("armed particles should be collapsed")
		}
	}
}
