package cinescroll

// SectionMargin extends every section window on both sides so panels mount
// slightly before they start fading in.
const SectionMargin = 0.05

// RestartThreshold is the effective progress past which the restart
// affordance is offered.
const RestartThreshold = 0.92

// panelTravel is the vertical slide distance in pixels of a hidden panel.
const panelTravel = 40.0

// Section is an immutable window along the scroll axis bound to one content
// panel.
type Section struct {
	ID              string
	StartProgress   float64
	EndProgress     float64
	FadeInFraction  float64
	FadeOutFraction float64
}

// local maps global progress into the section's window; 0 is the start and 1
// the end. ok is false for a degenerate window.
func (s Section) local(progress float64) (p float64, ok bool) {
	span := s.EndProgress - s.StartProgress
	if span <= 0 || !finite(progress) {
		return 0, false
	}
	return (progress - s.StartProgress) / span, true
}

// Rendered reports whether the section's panel should be mounted at the given
// progress, including the margin on either side of its window.
func Rendered(progress float64, s Section) bool {
	p, ok := s.local(progress)
	return ok && p >= -SectionMargin && p <= 1+SectionMargin
}

// Visibility returns the section's visibility weight in [0, 1]. It ramps up
// over the fade-in fraction, holds at 1 and ramps down over the fade-out
// fraction. A zero fade fraction is an instant cut.
func Visibility(progress float64, s Section) float64 {
	p, ok := s.local(progress)
	if !ok || p < 0 || p > 1 {
		return 0
	}
	v := 1.0
	if s.FadeInFraction > 0 && p < s.FadeInFraction {
		v = p / s.FadeInFraction
	}
	if s.FadeOutFraction > 0 && p > 1-s.FadeOutFraction {
		v = min(v, (1-p)/s.FadeOutFraction)
	}
	return clamp01(v)
}

// PanelTransform is the cosmetic presentation of a content panel.
type PanelTransform struct {
	Opacity float64
	// TranslateY is the vertical offset in pixels; positive is below the
	// resting position.
	TranslateY float64
	Scale      float64
}

// SectionState is the per-frame output for one section.
type SectionState struct {
	ID         string
	Rendered   bool
	Visibility float64
	Panel      PanelTransform
}

// panelTransform places a panel below its rest position while fading in and
// above it while fading out.
func panelTransform(progress, visibility float64, s Section) PanelTransform {
	dir := 1.0
	if p, ok := s.local(progress); ok && p > 0.5 {
		dir = -1
	}
	return PanelTransform{
		Opacity:    visibility,
		TranslateY: dir * (1 - visibility) * panelTravel,
		Scale:      0.95 + 0.05*visibility,
	}
}

// SectionMapper computes the visibility of every configured section.
type SectionMapper struct {
	sections []Section
	out      []SectionState
}

// NewSectionMapper creates a mapper over the given ordered sections.
func NewSectionMapper(sections []Section) *SectionMapper {
	cp := make([]Section, len(sections))
	copy(cp, sections)
	return &SectionMapper{
		sections: cp,
		out:      make([]SectionState, len(cp)),
	}
}

// Sections returns the configured sections. The returned slice MUST NOT be
// mutated.
func (m *SectionMapper) Sections() []Section {
	return m.sections
}

// Map computes section states for the given effective progress. The returned
// slice is reused by the next call.
func (m *SectionMapper) Map(progress float64) []SectionState {
	for i, s := range m.sections {
		v := Visibility(progress, s)
		m.out[i] = SectionState{
			ID:         s.ID,
			Rendered:   Rendered(progress, s),
			Visibility: v,
			Panel:      panelTransform(progress, v, s),
		}
	}
	return m.out
}

// DefaultSections returns the reference narrative: a welcome title, the hero
// statement, services, selected work, process and the closing call to
// action.
func DefaultSections() []Section {
	return []Section{
		{ID: "welcome", StartProgress: -0.1, EndProgress: 0.08, FadeInFraction: 0.3, FadeOutFraction: 0.3},
		{ID: "hero", StartProgress: 0.05, EndProgress: 0.32, FadeInFraction: 0.3, FadeOutFraction: 0.3},
		{ID: "services", StartProgress: 0.28, EndProgress: 0.52, FadeInFraction: 0.25, FadeOutFraction: 0.25},
		{ID: "work", StartProgress: 0.48, EndProgress: 0.72, FadeInFraction: 0.25, FadeOutFraction: 0.25},
		{ID: "process", StartProgress: 0.68, EndProgress: 0.88, FadeInFraction: 0.25, FadeOutFraction: 0.25},
		{ID: "contact", StartProgress: 0.85, EndProgress: 1.08, FadeInFraction: 0.3, FadeOutFraction: 0.3},
	}
}
