package cinescroll

// Smoothing factors per frame. Lower values lag further behind their target.
const (
	SmoothCamera  = 0.05
	SmoothObject  = 0.04
	SmoothLight   = 0.06
	SmoothColor   = 0.08
	SmoothPointer = 0.1
)

// Damped is a scalar lag filter: each Step moves Current a fixed fraction of
// the way to the target. The first Step snaps to the target.
type Damped struct {
	Current float64
	Factor  float64
	primed  bool
}

// Step moves Current toward target and returns it.
func (d *Damped) Step(target float64) float64 {
	if !d.primed || !finite(d.Current) {
		d.Current = target
		d.primed = true
		return d.Current
	}
	d.Current += (target - d.Current) * d.Factor
	return d.Current
}

// Reset forgets the current value so the next Step snaps.
func (d *Damped) Reset() {
	d.primed = false
}

// DampedVec3 is the vector form of Damped.
type DampedVec3 struct {
	Current Vec3
	Factor  float64
	primed  bool
}

// Step moves Current toward target and returns it.
func (d *DampedVec3) Step(target Vec3) Vec3 {
	if !d.primed || !finiteVec3(d.Current) {
		d.Current = target
		d.primed = true
		return d.Current
	}
	d.Current = d.Current.Add(target.Sub(d.Current).Mul(d.Factor))
	return d.Current
}

// Reset forgets the current value so the next Step snaps.
func (d *DampedVec3) Reset() {
	d.primed = false
}

// DampedColor is the color form of Damped.
type DampedColor struct {
	Current Color
	Factor  float64
	primed  bool
}

// Step moves Current toward target and returns it.
func (d *DampedColor) Step(target Color) Color {
	if !d.primed || !finite(d.Current.R) || !finite(d.Current.G) || !finite(d.Current.B) {
		d.Current = target
		d.primed = true
		return d.Current
	}
	d.Current = d.Current.Lerp(target, d.Factor)
	return d.Current
}

func finiteVec3(v Vec3) bool {
	return finite(v[0]) && finite(v[1]) && finite(v[2])
}
