package cinescroll

// Sampler normalizes raw scroll and pointer input and writes it to the Store.
// Writes are fire-and-forget: the latest value before a frame wins.
type Sampler struct {
	store *Store

	// dropped counts rejected non-finite samples for debug stats.
	dropped int
}

// NewSampler creates a sampler writing to store.
func NewSampler(store *Store) *Sampler {
	return &Sampler{store: store}
}

// OnScrollSignal records a normalized scroll sample. The value is clamped to
// [0, 1]. While the intro or return transition owns progress the write is
// suppressed. It reports whether the store accepted the write.
func (s *Sampler) OnScrollSignal(raw float64) bool {
	if !finite(raw) {
		s.dropped++
		return false
	}
	return s.store.SetProgress(WriterSampler, raw)
}

// OnPointerMove records a pointer position in client pixels. Coordinates are
// mapped to [-1, 1] with +Y up. A zero-sized viewport (hidden tab) is ignored.
func (s *Sampler) OnPointerMove(clientX, clientY, viewportWidth, viewportHeight float64) bool {
	if viewportWidth <= 0 || viewportHeight <= 0 {
		return false
	}
	if !finite(clientX) || !finite(clientY) || !finite(viewportWidth) || !finite(viewportHeight) {
		s.dropped++
		return false
	}
	x, y := NormalizePointer(clientX, clientY, viewportWidth, viewportHeight)
	s.store.SetPointer(Vec2{X: x, Y: y})
	return true
}

// NormalizePointer maps client pixels to clamped screen-space [-1, 1].
func NormalizePointer(clientX, clientY, viewportWidth, viewportHeight float64) (x, y float64) {
	x = (clientX/viewportWidth)*2 - 1
	y = -(clientY/viewportHeight)*2 + 1
	return clamp(x, -1, 1), clamp(y, -1, 1)
}

// Dropped returns the number of non-finite samples ignored so far.
func (s *Sampler) Dropped() int {
	return s.dropped
}
