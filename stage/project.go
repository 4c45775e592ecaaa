package stage

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/phanxgames/cinescroll"
)

// Perspective defaults.
const (
	fovY     = 50.0 // degrees
	nearClip = 0.1
	farClip  = 200.0
)

var worldUp = mgl64.Vec3{0, 1, 0}

// projector maps world-space points to screen pixels for one frame.
type projector struct {
	viewProj mgl64.Mat4
	focal    float64 // cot(fov/2)
	w, h     float64
}

// newProjector builds the view-projection matrix for a camera pose and a
// viewport of w x h pixels.
func newProjector(cam cinescroll.CameraPose, w, h float64) projector {
	aspect := 1.0
	if h > 0 {
		aspect = w / h
	}
	view := mgl64.LookAtV(cam.Position, cam.Target, worldUp)
	proj := mgl64.Perspective(mgl64.DegToRad(fovY), aspect, nearClip, farClip)
	return projector{viewProj: proj.Mul4(view), focal: proj.At(1, 1), w: w, h: h}
}

// project returns the screen position of p and its clip-space depth. ok is
// false for points behind the camera.
func (pr projector) project(p mgl64.Vec3) (x, y, depth float64, ok bool) {
	clip := pr.viewProj.Mul4x1(p.Vec4(1))
	if clip.W() <= nearClip {
		return 0, 0, 0, false
	}
	ndc := clip.Vec3().Mul(1 / clip.W())
	x = (ndc.X() + 1) * 0.5 * pr.w
	y = (1 - ndc.Y()) * 0.5 * pr.h
	return x, y, ndc.Z(), true
}

// pixelScale returns how many pixels one world unit spans at point p.
func (pr projector) pixelScale(p mgl64.Vec3) float64 {
	clip := pr.viewProj.Mul4x1(p.Vec4(1))
	if clip.W() <= nearClip {
		return 0
	}
	return pr.focal / clip.W() * pr.h * 0.5
}

// rotation returns the XYZ Euler rotation matrix.
func rotation(r mgl64.Vec3) mgl64.Mat3 {
	return mgl64.Rotate3DZ(r.Z()).Mul3(mgl64.Rotate3DY(r.Y())).Mul3(mgl64.Rotate3DX(r.X()))
}

// transform places a model-space vertex using an object's state.
func transform(v mgl64.Vec3, rot mgl64.Mat3, st cinescroll.ObjectState) mgl64.Vec3 {
	return rot.Mul3x1(v.Mul(st.Scale)).Add(st.Position)
}
