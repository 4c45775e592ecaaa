package cinescroll

// Frame is the complete per-frame output of an Engine. A renderer reads it in
// Apply; the engine reuses it on the next Update.
type Frame struct {
	Index uint64
	// Time is the engine clock in seconds.
	Time float64
	Dt   float64

	// Progress is the effective progress used for this frame.
	Progress float64
	State    State

	// SceneEnabled is false on the degraded path; Camera, Objects and Burst
	// are then left untouched.
	SceneEnabled bool
	Camera       CameraPose
	Objects      [ObjectCount]ObjectState
	// Burst holds the burst field's particle positions in field space.
	Burst []Vec3

	Sections []SectionState
}

// Object returns the state of one scene element.
func (f *Frame) Object(id ObjectID) ObjectState {
	return f.Objects[id]
}

// Each calls fn for every scene element in ID order.
func (f *Frame) Each(fn func(ObjectID, ObjectState)) {
	for i := range f.Objects {
		fn(ObjectID(i), f.Objects[i])
	}
}

// Section returns the state of the section with the given ID.
func (f *Frame) Section(id string) (SectionState, bool) {
	for _, s := range f.Sections {
		if s.ID == id {
			return s, true
		}
	}
	return SectionState{}, false
}

// Renderer is the rendering collaborator. Apply is called once per Update
// with the frame to draw; it must not retain the pointer past the call.
type Renderer interface {
	Apply(f *Frame)
}

// RendererFunc adapts a function to the Renderer interface.
type RendererFunc func(f *Frame)

// Apply calls fn(f).
func (fn RendererFunc) Apply(f *Frame) {
	fn(f)
}
