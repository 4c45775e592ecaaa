package cinescroll

import "github.com/tanema/gween/ease"

// CameraPose is a camera position and the point it looks at.
type CameraPose struct {
	Position Vec3
	Target   Vec3
}

// CameraConfig controls how scroll and pointer map onto the camera.
type CameraConfig struct {
	// Near and Far are the camera distances at progress 0 and 1.
	Near, Far float64
	// Descent is how far the camera and its target sink over the track.
	Descent float64
	// MouseInfluence is the lateral offset at pointer x = ±1.
	MouseInfluence float64
	// MouseFade is the fraction of pointer influence lost at progress 1.
	MouseFade float64
	// IntroStart is the pose the intro flight begins from.
	IntroStart CameraPose
	// Smoothing is the per-frame lag factor.
	Smoothing float64
}

// DefaultCameraConfig returns the reference camera rig.
func DefaultCameraConfig() CameraConfig {
	return CameraConfig{
		Near:           6,
		Far:            14,
		Descent:        3,
		MouseInfluence: 1.5,
		MouseFade:      0.8,
		IntroStart: CameraPose{
			Position: Vec3{0, 9, 32},
			Target:   Vec3{0, 2, 0},
		},
		Smoothing: SmoothCamera,
	}
}

// Camera lags a scroll and pointer derived pose, or the intro flight path
// while the intro runs.
type Camera struct {
	cfg    CameraConfig
	pos    DampedVec3
	target DampedVec3
}

// NewCamera creates a camera rig. Its first Update snaps to the target pose.
func NewCamera(cfg CameraConfig) *Camera {
	return &Camera{
		cfg:    cfg,
		pos:    DampedVec3{Factor: cfg.Smoothing},
		target: DampedVec3{Factor: cfg.Smoothing},
	}
}

// Config returns a pointer to the rig's config for live tuning.
func (c *Camera) Config() *CameraConfig {
	return &c.cfg
}

// Lateral returns the pointer-driven sideways offset at the given progress.
// Influence fades as the narrative advances.
func (c *Camera) Lateral(progress, pointerX float64) float64 {
	return pointerX * c.cfg.MouseInfluence * (1 - c.cfg.MouseFade*clamp01(progress))
}

// ScrollPose returns the target pose for the given progress and pointer.
// Distance grows monotonically with progress.
func (c *Camera) ScrollPose(progress float64, pointer Vec2) CameraPose {
	progress = clamp01(progress)
	dist := lerp(c.cfg.Near, c.cfg.Far, progress)
	sink := -c.cfg.Descent * progress
	lateral := c.Lateral(progress, pointer.X)
	lift := c.Lateral(progress, pointer.Y) * 0.5
	return CameraPose{
		Position: Vec3{lateral, sink + lift, dist},
		Target:   Vec3{0, sink, 0},
	}
}

// IntroPose returns the pose along the intro flight, easing from the start
// pose to the scroll pose at progress 0 with a centered pointer.
func (c *Camera) IntroPose(introProgress float64) CameraPose {
	t := float64(ease.InOutCubic(float32(clamp01(introProgress)), 0, 1, 1))
	end := c.ScrollPose(0, Vec2{})
	return CameraPose{
		Position: lerpVec3(c.cfg.IntroStart.Position, end.Position, t),
		Target:   lerpVec3(c.cfg.IntroStart.Target, end.Target, t),
	}
}

// Update lags the current pose toward goal and returns it.
func (c *Camera) Update(goal CameraPose) CameraPose {
	return CameraPose{
		Position: c.pos.Step(goal.Position),
		Target:   c.target.Step(goal.Target),
	}
}

// Pose returns the current lagged pose.
func (c *Camera) Pose() CameraPose {
	return CameraPose{Position: c.pos.Current, Target: c.target.Current}
}
