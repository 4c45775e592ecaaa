package cinescroll

import "math"

// ObjectID names an animated scene element.
type ObjectID uint8

const (
	ObjCore ObjectID = iota
	ObjRing
	ObjShape0
	ObjShape1
	ObjShape2
	ObjShape3
	ObjShape4
	ObjLightA
	ObjLightB
	ObjAccentLight
	ObjAmbientField
	ObjBurstField

	ObjectCount
)

const shapeCount = int(ObjShape4-ObjShape0) + 1

var objectNames = [ObjectCount]string{
	"core", "ring",
	"shape-0", "shape-1", "shape-2", "shape-3", "shape-4",
	"light-a", "light-b", "accent-light",
	"ambient-field", "burst-field",
}

func (id ObjectID) String() string {
	if id < ObjectCount {
		return objectNames[id]
	}
	return "unknown"
}

// IsShape reports whether id is one of the floating shapes.
func (id ObjectID) IsShape() bool {
	return id >= ObjShape0 && id <= ObjShape4
}

// IsLight reports whether id is a light source.
func (id ObjectID) IsLight() bool {
	return id == ObjLightA || id == ObjLightB || id == ObjAccentLight
}

// ObjectState is the per-frame transform of one scene element.
type ObjectState struct {
	Position  Vec3
	Rotation  Vec3 // Euler XYZ radians
	Scale     float64
	Color     Color
	Intensity float64
}

// SceneConfig holds the palette and the accent light defaults.
type SceneConfig struct {
	Camera      CameraConfig
	CoreColor   Color
	RingColor   Color
	ShapeColors [5]Color
	LightA      Color
	LightB      Color
	// AccentDefault is the accent light color when no card is hovered.
	AccentDefault Color
	FieldColor    Color
}

// DefaultSceneConfig returns the reference palette.
func DefaultSceneConfig() SceneConfig {
	return SceneConfig{
		Camera:    DefaultCameraConfig(),
		CoreColor: Color{0.55, 0.36, 0.96},
		RingColor: Color{0.93, 0.28, 0.6},
		ShapeColors: [5]Color{
			{0.23, 0.51, 0.96},
			{0.06, 0.73, 0.51},
			{0.96, 0.62, 0.04},
			{0.93, 0.27, 0.27},
			{0.02, 0.71, 0.83},
		},
		LightA:        Color{0.55, 0.36, 0.96},
		LightB:        Color{0.02, 0.71, 0.83},
		AccentDefault: Color{1, 1, 1},
		FieldColor:    Color{0.8, 0.8, 1},
	}
}

// SceneInput is everything the mapper reads for one frame.
type SceneInput struct {
	// Progress is the effective progress.
	Progress      float64
	Pointer       Vec2
	Elapsed       float64
	IntroComplete bool
	IntroProgress float64
	Hovered       *Color
	Burst         BurstState
	BurstProgress float64
}

// objectDampers holds the lagged values of one object.
type objectDampers struct {
	pos       DampedVec3
	tilt      DampedVec3
	scale     Damped
	color     DampedColor
	intensity Damped
}

func newObjectDampers(factor float64) objectDampers {
	return objectDampers{
		pos:       DampedVec3{Factor: factor},
		tilt:      DampedVec3{Factor: factor},
		scale:     Damped{Factor: factor},
		color:     DampedColor{Factor: SmoothColor},
		intensity: Damped{Factor: factor},
	}
}

// SceneMapper turns progress, pointer and time into lagged object transforms.
// It owns every current value; renderers only read its output.
type SceneMapper struct {
	cfg     SceneConfig
	camera  *Camera
	dampers [ObjectCount]objectDampers
}

// NewSceneMapper creates a mapper with the given palette and camera rig.
func NewSceneMapper(cfg SceneConfig) *SceneMapper {
	m := &SceneMapper{
		cfg:    cfg,
		camera: NewCamera(cfg.Camera),
	}
	for i := range m.dampers {
		f := SmoothObject
		if ObjectID(i).IsLight() {
			f = SmoothLight
		}
		if ObjectID(i) == ObjAccentLight {
			f = SmoothPointer
		}
		m.dampers[i] = newObjectDampers(f)
	}
	return m
}

// Camera returns the camera rig.
func (m *SceneMapper) Camera() *Camera {
	return m.camera
}

// CameraGoal returns the unlagged camera pose for in.
func (m *SceneMapper) CameraGoal(in SceneInput) CameraPose {
	if !in.IntroComplete {
		return m.camera.IntroPose(in.IntroProgress)
	}
	return m.camera.ScrollPose(in.Progress, in.Pointer)
}

// Update computes this frame's targets, steps every lag filter and writes
// the results into out.
func (m *SceneMapper) Update(in SceneInput, out *Frame) {
	p := clamp01(in.Progress)
	t := in.Elapsed
	ptr := in.Pointer
	if !in.IntroComplete {
		ptr = Vec2{}
	}

	out.Camera = m.camera.Update(m.CameraGoal(in))

	// Core: idle spin plus a lagged scroll-driven half turn; shrinks as the
	// camera pulls away.
	m.write(out, ObjCore,
		Vec3{0, -m.cfg.Camera.Descent * p, 0},
		Vec3{t * 0.15, t * 0.2, 0},
		Vec3{ptr.Y*0.3 + p*math.Pi, ptr.X * 0.3, 0},
		1.2-0.5*p, m.cfg.CoreColor, 1)

	m.write(out, ObjRing,
		Vec3{0, -m.cfg.Camera.Descent * p, 0},
		Vec3{0, 0, t * 0.1},
		Vec3{math.Pi/2 + p*math.Pi/3, 0, 0},
		2+1.5*p, m.cfg.RingColor, 1)

	// Floating shapes spread outward on a ring as the narrative advances.
	radius := lerp(4, 7, p)
	for i := 0; i < shapeCount; i++ {
		fi := float64(i)
		angle := fi*2*math.Pi/float64(shapeCount) + p*math.Pi*0.5
		bob := math.Sin(t*0.8+fi) * 0.3
		m.write(out, ObjShape0+ObjectID(i),
			Vec3{math.Cos(angle) * radius, bob - m.cfg.Camera.Descent*p, math.Sin(angle) * radius * 0.6},
			Vec3{t * (0.2 + 0.05*fi), t * (0.15 + 0.03*fi), 0},
			Vec3{},
			0.5+0.3*math.Sin(p*math.Pi+fi), m.cfg.ShapeColors[i], 1)
	}

	orbit := func(phase, r float64) Vec3 {
		a := t*0.5 + phase
		return Vec3{math.Cos(a) * r, math.Sin(a) * r * 0.5, math.Sin(a) * r}
	}
	m.write(out, ObjLightA, orbit(0, 6), Vec3{}, Vec3{}, 1, m.cfg.LightA, 1.5-0.7*p)
	m.write(out, ObjLightB, orbit(math.Pi, 6), Vec3{}, Vec3{}, 1, m.cfg.LightB, 0.5+p)

	accent, accentIntensity := m.cfg.AccentDefault, 1.0
	if in.Hovered != nil {
		accent, accentIntensity = *in.Hovered, 2.5
	}
	m.write(out, ObjAccentLight,
		Vec3{ptr.X * 5, ptr.Y * 3, 4},
		Vec3{}, Vec3{}, 1, accent, accentIntensity)

	m.write(out, ObjAmbientField,
		Vec3{0, 0, -5 * p},
		Vec3{0, t * 0.03, 0},
		Vec3{0, p * math.Pi * 0.5, 0},
		1, m.cfg.FieldColor, 0.6-0.3*p)

	burstAlpha := 0.0
	if in.Burst != BurstArmed {
		burstAlpha = 1
	}
	m.write(out, ObjBurstField,
		Vec3{0, -m.cfg.Camera.Descent * p, 0},
		Vec3{0, t * 0.1, 0},
		Vec3{},
		1, m.cfg.FieldColor, burstAlpha)
}

// write lags position, tilt, scale, color and intensity toward their targets.
// spin holds only time-driven idle rotation and is applied directly on top of
// the lagged tilt; anything derived from progress or pointer goes in tilt.
func (m *SceneMapper) write(out *Frame, id ObjectID, pos, spin, tilt Vec3, scale float64, color Color, intensity float64) {
	d := &m.dampers[id]
	out.Objects[id] = ObjectState{
		Position:  d.pos.Step(pos),
		Rotation:  spin.Add(d.tilt.Step(tilt)),
		Scale:     d.scale.Step(scale),
		Color:     d.color.Step(color),
		Intensity: d.intensity.Step(intensity),
	}
}
