package cinescroll

import (
	"math"

	"github.com/charmbracelet/harmonica"
)

// ScrollConfig tunes the smooth-scroll integrator.
type ScrollConfig struct {
	// Pages is the scroll track length in viewport heights.
	Pages float64
	// Frequency is the spring's angular frequency. Higher is snappier.
	Frequency float64
	// Damping is the spring's damping ratio. 1 is critically damped.
	Damping float64
	// WheelMultiplier scales raw wheel deltas into pixels.
	WheelMultiplier float64
	// TPS is the integration rate in ticks per second.
	TPS int
}

// DefaultScrollConfig returns the reference feel: a ten-page track with a
// slightly soft critically damped spring.
func DefaultScrollConfig() ScrollConfig {
	return ScrollConfig{
		Pages:           10,
		Frequency:       6,
		Damping:         1,
		WheelMultiplier: 100,
		TPS:             60,
	}
}

// SmoothScroll converts discrete wheel, touch and keyboard deltas into a
// damped continuous scroll offset over a virtual content track.
type SmoothScroll struct {
	cfg    ScrollConfig
	spring harmonica.Spring

	viewport float64
	content  float64

	target   float64
	offset   float64
	velocity float64

	// step is the time step the spring was built for.
	step float64
}

// NewSmoothScroll creates an integrator for a viewport of the given height.
func NewSmoothScroll(cfg ScrollConfig, viewportHeight float64) *SmoothScroll {
	if cfg.TPS <= 0 {
		cfg.TPS = 60
	}
	if cfg.Pages < 1 {
		cfg.Pages = 1
	}
	step := harmonica.FPS(cfg.TPS)
	s := &SmoothScroll{
		cfg:    cfg,
		spring: harmonica.NewSpring(step, cfg.Frequency, cfg.Damping),
		step:   step,
	}
	s.Resize(viewportHeight)
	return s
}

// Limit returns the maximum scroll offset in pixels.
func (s *SmoothScroll) Limit() float64 {
	return math.Max(0, s.content-s.viewport)
}

// Offset returns the current damped offset in pixels.
func (s *SmoothScroll) Offset() float64 {
	return s.offset
}

// Target returns the offset the integrator is settling toward.
func (s *SmoothScroll) Target() float64 {
	return s.target
}

// Progress returns the damped offset normalized to [0, 1].
func (s *SmoothScroll) Progress() float64 {
	limit := s.Limit()
	if limit == 0 {
		return 0
	}
	return clamp01(s.offset / limit)
}

// Wheel adds a raw wheel delta. Positive values scroll down the track.
func (s *SmoothScroll) Wheel(delta float64) {
	s.ScrollBy(delta * s.cfg.WheelMultiplier)
}

// ScrollBy moves the target offset by delta pixels.
func (s *SmoothScroll) ScrollBy(delta float64) {
	if !finite(delta) {
		return
	}
	s.target = clamp(s.target+delta, 0, s.Limit())
}

// ScrollTo sets the target offset. When immediate is true the visible offset
// jumps there with no settling motion.
func (s *SmoothScroll) ScrollTo(offset float64, immediate bool) {
	if !finite(offset) {
		return
	}
	s.target = clamp(offset, 0, s.Limit())
	if immediate {
		s.offset = s.target
		s.velocity = 0
	}
}

// ScrollToProgress scrolls to a normalized track position.
func (s *SmoothScroll) ScrollToProgress(p float64, immediate bool) {
	s.ScrollTo(clamp01(p)*s.Limit(), immediate)
}

// Resize adapts the track to a new viewport height, keeping the normalized
// position of both the visible and the target offset.
func (s *SmoothScroll) Resize(viewportHeight float64) {
	if viewportHeight <= 0 || !finite(viewportHeight) {
		return
	}
	var pOffset, pTarget float64
	if limit := s.Limit(); limit > 0 {
		pOffset = s.offset / limit
		pTarget = s.target / limit
	}
	s.viewport = viewportHeight
	s.content = viewportHeight * s.cfg.Pages
	limit := s.Limit()
	s.offset = pOffset * limit
	s.target = pTarget * limit
	s.velocity = 0
}

// Advance integrates dt seconds and returns the new normalized progress. The
// spring is rebuilt whenever dt differs from the previous step. A zero or
// invalid dt leaves the offset where it is.
func (s *SmoothScroll) Advance(dt float64) float64 {
	if !finite(dt) || dt <= 0 {
		return s.Progress()
	}
	if dt != s.step {
		s.spring = harmonica.NewSpring(dt, s.cfg.Frequency, s.cfg.Damping)
		s.step = dt
	}
	s.offset, s.velocity = s.spring.Update(s.offset, s.velocity, s.target)
	if math.Abs(s.target-s.offset) < 0.01 && math.Abs(s.velocity) < 0.01 {
		s.offset = s.target
		s.velocity = 0
	}
	s.offset = clamp(s.offset, 0, s.Limit())
	return s.Progress()
}

// Settled reports whether the visible offset has reached the target.
func (s *SmoothScroll) Settled() bool {
	return s.offset == s.target && s.velocity == 0
}
