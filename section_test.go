package cinescroll

import (
	"math"
	"testing"
)

func TestVisibilityBounded(t *testing.T) {
	fades := []float64{0.01, 0.1, 0.25, 0.3, 0.5}
	for _, fin := range fades {
		for _, fout := range fades {
			s := Section{ID: "s", StartProgress: 0.2, EndProgress: 0.6, FadeInFraction: fin, FadeOutFraction: fout}
			for i := 0; i <= 1000; i++ {
				p := float64(i) / 1000
				v := Visibility(p, s)
				if v < 0 || v > 1 {
					t.Fatalf("Visibility(%v) = %v with fades %v/%v", p, v, fin, fout)
				}
			}
		}
	}
}

func TestVisibilityReference(t *testing.T) {
	s := Section{ID: "ref", StartProgress: 0.2, EndProgress: 0.4, FadeInFraction: 0.3, FadeOutFraction: 0.3}
	tests := []struct {
		p, want, eps float64
	}{
		{0.2, 0, 1e-9},
		{0.29, 1, 1e-9},
		{0.3, 1, 1e-9},
		{0.4, 0, 1e-9},
		{0.23, 0.5, 1e-9},
		{0.37, 0.5, 1e-9},
		{0.1, 0, 0},
		{0.5, 0, 0},
	}
	for _, tt := range tests {
		if got := Visibility(tt.p, s); !approxEqual(got, tt.want, tt.eps) {
			t.Errorf("Visibility(%v) = %v, want %v", tt.p, got, tt.want)
		}
	}
}

func TestVisibilityZeroFades(t *testing.T) {
	s := Section{ID: "cut", StartProgress: 0.2, EndProgress: 0.4}
	if v := Visibility(0.2, s); v != 1 {
		t.Errorf("zero fade-in at start = %v, want 1", v)
	}
	if v := Visibility(0.4, s); v != 1 {
		t.Errorf("zero fade-out at end = %v, want 1", v)
	}
	if v := Visibility(0.41, s); v != 0 {
		t.Errorf("past end = %v, want 0", v)
	}
}

func TestVisibilityDegenerate(t *testing.T) {
	tests := []Section{
		{ID: "empty", StartProgress: 0.5, EndProgress: 0.5, FadeInFraction: 0.3},
		{ID: "inverted", StartProgress: 0.6, EndProgress: 0.4, FadeInFraction: 0.3},
	}
	for _, s := range tests {
		for _, p := range []float64{0.4, 0.5, 0.6} {
			if v := Visibility(p, s); v != 0 {
				t.Errorf("%s: Visibility(%v) = %v, want 0", s.ID, p, v)
			}
			if Rendered(p, s) {
				t.Errorf("%s: Rendered(%v) = true", s.ID, p)
			}
		}
	}
	if v := Visibility(math.NaN(), Section{StartProgress: 0, EndProgress: 1}); v != 0 {
		t.Errorf("NaN progress visibility = %v", v)
	}
}

func TestRenderedMargin(t *testing.T) {
	s := Section{ID: "s", StartProgress: 0.2, EndProgress: 0.4, FadeInFraction: 0.3, FadeOutFraction: 0.3}
	// Local margin of 0.05 is 0.01 of global progress for a 0.2 window.
	tests := []struct {
		p    float64
		want bool
	}{
		{0.185, false},
		{0.195, true},
		{0.2, true},
		{0.405, true},
		{0.415, false},
	}
	for _, tt := range tests {
		if got := Rendered(tt.p, s); got != tt.want {
			t.Errorf("Rendered(%v) = %v, want %v", tt.p, got, tt.want)
		}
	}
}

func TestPanelTransform(t *testing.T) {
	s := Section{ID: "s", StartProgress: 0.2, EndProgress: 0.4, FadeInFraction: 0.3, FadeOutFraction: 0.3}

	in := panelTransform(0.23, Visibility(0.23, s), s)
	if !approxEqual(in.Opacity, 0.5, 1e-9) || !approxEqual(in.TranslateY, 20, 1e-9) || !approxEqual(in.Scale, 0.975, 1e-9) {
		t.Errorf("fading in = %+v", in)
	}

	out := panelTransform(0.37, Visibility(0.37, s), s)
	if out.TranslateY >= 0 {
		t.Errorf("fading out should slide up, got %+v", out)
	}

	rest := panelTransform(0.3, 1, s)
	if rest.TranslateY != 0 || rest.Scale != 1 || rest.Opacity != 1 {
		t.Errorf("plateau = %+v", rest)
	}
}

func TestSectionMapper(t *testing.T) {
	m := NewSectionMapper(DefaultSections())
	states := m.Map(0.3)
	if len(states) != len(DefaultSections()) {
		t.Fatalf("len = %d", len(states))
	}
	byID := map[string]SectionState{}
	for _, st := range states {
		byID[st.ID] = st
	}
	if byID["hero"].Visibility <= 0 {
		t.Error("hero should be visible at 0.3")
	}
	if byID["welcome"].Rendered {
		t.Error("welcome should be unmounted at 0.3")
	}
	if !byID["services"].Rendered {
		t.Error("services should be mounted at 0.3")
	}

	// The buffer is reused between calls.
	again := m.Map(0.9)
	if &again[0] != &states[0] {
		t.Error("Map should reuse its output buffer")
	}
}

func TestDefaultSectionsCoverTrack(t *testing.T) {
	m := NewSectionMapper(DefaultSections())
	for i := 0; i <= 100; i++ {
		p := float64(i) / 100
		mounted := false
		for _, st := range m.Map(p) {
			if st.Rendered {
				mounted = true
			}
		}
		if !mounted {
			t.Errorf("no section mounted at progress %v", p)
		}
	}
	last := DefaultSections()[len(DefaultSections())-1]
	if Visibility(1, last) <= 0 {
		t.Error("the closing section should be visible at the end of the track")
	}
	first := DefaultSections()[0]
	if Visibility(0, first) <= 0 {
		t.Error("the opening section should be visible at the top of the track")
	}
}

func TestSectionMapperCopiesInput(t *testing.T) {
	in := []Section{{ID: "a", StartProgress: 0, EndProgress: 1}}
	m := NewSectionMapper(in)
	in[0].ID = "b"
	if m.Sections()[0].ID != "a" {
		t.Error("mapper should copy its sections")
	}
}
