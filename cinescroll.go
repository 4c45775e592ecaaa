package cinescroll

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/lucasb-eyer/go-colorful"
)

// Color represents an RGB color with components in [0, 1].
type Color struct {
	R, G, B float64
}

// ColorWhite is the neutral light color.
var ColorWhite = Color{1, 1, 1}

// Lerp blends c toward to by t in RGB space. t is clamped to [0, 1].
func (c Color) Lerp(to Color, t float64) Color {
	b := colorful.Color{R: c.R, G: c.G, B: c.B}.BlendRgb(colorful.Color{R: to.R, G: to.G, B: to.B}, clamp01(t))
	return Color{R: b.R, G: b.G, B: b.B}
}

// Hex returns the color as a "#rrggbb" string.
func (c Color) Hex() string {
	return colorful.Color{R: c.R, G: c.G, B: c.B}.Clamped().Hex()
}

// ParseColor parses a "#rgb" or "#rrggbb" hex string.
func ParseColor(hex string) (Color, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return Color{}, err
	}
	return Color{R: c.R, G: c.G, B: c.B}, nil
}

// Vec3 is the 3D vector used for positions and Euler rotations.
type Vec3 = mgl64.Vec3

// Vec2 is a 2D vector, used for normalized pointer coordinates.
type Vec2 struct {
	X, Y float64
}

// Range is a general-purpose min/max range.
type Range struct {
	Min, Max float64
}

// At returns the value at fraction t between Min and Max.
func (r Range) At(t float64) float64 {
	return lerp(r.Min, r.Max, t)
}

// Rect is an axis-aligned rectangle with its origin at the top-left.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// lerp linearly interpolates between a and b by t.
func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

func lerpVec3(a, b Vec3, t float64) Vec3 {
	return Vec3{lerp(a[0], b[0], t), lerp(a[1], b[1], t), lerp(a[2], b[2], t)}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clamp01(v float64) float64 {
	return clamp(v, 0, 1)
}

// smoothstep is the Hermite 3t²-2t³ curve on [0, 1].
func smoothstep(t float64) float64 {
	t = clamp01(t)
	return t * t * (3 - 2*t)
}

// finite reports whether v is neither NaN nor infinite.
func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
