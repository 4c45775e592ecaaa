package stage

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/phanxgames/cinescroll"
)

// model is a low-poly mesh in model space. Faces are convex and wound
// counter-clockwise when seen from outside.
type model struct {
	verts []mgl64.Vec3
	faces [][]int
}

func tetrahedron() model {
	return model{
		verts: []mgl64.Vec3{{1, 1, 1}, {-1, -1, 1}, {-1, 1, -1}, {1, -1, -1}},
		faces: [][]int{{0, 1, 3}, {0, 2, 1}, {0, 3, 2}, {1, 2, 3}},
	}
}

func octahedron() model {
	return model{
		verts: []mgl64.Vec3{{1, 0, 0}, {-1, 0, 0}, {0, 1, 0}, {0, -1, 0}, {0, 0, 1}, {0, 0, -1}},
		faces: [][]int{
			{0, 2, 4}, {4, 2, 1}, {1, 2, 5}, {5, 2, 0},
			{0, 4, 3}, {4, 1, 3}, {1, 5, 3}, {5, 0, 3},
		},
	}
}

func cube() model {
	s := 0.7
	return model{
		verts: []mgl64.Vec3{
			{-s, -s, -s}, {s, -s, -s}, {s, s, -s}, {-s, s, -s},
			{-s, -s, s}, {s, -s, s}, {s, s, s}, {-s, s, s},
		},
		faces: [][]int{
			{4, 5, 6, 7}, {1, 0, 3, 2}, {0, 4, 7, 3},
			{5, 1, 2, 6}, {7, 6, 2, 3}, {0, 1, 5, 4},
		},
	}
}

func icosahedron() model {
	t := (1 + math.Sqrt(5)) / 2
	verts := []mgl64.Vec3{
		{-1, t, 0}, {1, t, 0}, {-1, -t, 0}, {1, -t, 0},
		{0, -1, t}, {0, 1, t}, {0, -1, -t}, {0, 1, -t},
		{t, 0, -1}, {t, 0, 1}, {-t, 0, -1}, {-t, 0, 1},
	}
	for i := range verts {
		verts[i] = verts[i].Normalize()
	}
	return model{
		verts: verts,
		faces: [][]int{
			{0, 11, 5}, {0, 5, 1}, {0, 1, 7}, {0, 7, 10}, {0, 10, 11},
			{1, 5, 9}, {5, 11, 4}, {11, 10, 2}, {10, 7, 6}, {7, 1, 8},
			{3, 9, 4}, {3, 4, 2}, {3, 2, 6}, {3, 6, 8}, {3, 8, 9},
			{4, 9, 5}, {2, 4, 11}, {6, 2, 10}, {8, 6, 7}, {9, 8, 1},
		},
	}
}

// torus builds a ring in the XY plane with the given tube radius relative to
// a unit major radius.
func torus(tube float64, segments, sides int) model {
	m := model{
		verts: make([]mgl64.Vec3, 0, segments*sides),
		faces: make([][]int, 0, segments*sides),
	}
	for i := 0; i < segments; i++ {
		u := float64(i) / float64(segments) * 2 * math.Pi
		for j := 0; j < sides; j++ {
			v := float64(j) / float64(sides) * 2 * math.Pi
			r := 1 + tube*math.Cos(v)
			m.verts = append(m.verts, mgl64.Vec3{r * math.Cos(u), r * math.Sin(u), tube * math.Sin(v)})
		}
	}
	for i := 0; i < segments; i++ {
		next := (i + 1) % segments
		for j := 0; j < sides; j++ {
			nj := (j + 1) % sides
			m.faces = append(m.faces, []int{
				i*sides + j, next*sides + j, next*sides + nj, i*sides + nj,
			})
		}
	}
	return m
}

// sceneModels assigns a mesh to every drawable scene element. Lights and
// particle fields have no mesh.
func sceneModels() map[cinescroll.ObjectID]model {
	shapes := []model{cube(), octahedron(), tetrahedron(), cube(), octahedron()}
	m := map[cinescroll.ObjectID]model{
		cinescroll.ObjCore: icosahedron(),
		cinescroll.ObjRing: torus(0.06, 32, 6),
	}
	for i, sh := range shapes {
		m[cinescroll.ObjShape0+cinescroll.ObjectID(i)] = sh
	}
	return m
}

// faceNormal returns the unit normal of a convex face from its first three
// vertices.
func faceNormal(a, b, c mgl64.Vec3) mgl64.Vec3 {
	n := b.Sub(a).Cross(c.Sub(a))
	if l := n.Len(); l > 1e-12 {
		return n.Mul(1 / l)
	}
	return mgl64.Vec3{}
}

// light is one point light used for face shading.
type light struct {
	pos       mgl64.Vec3
	color     cinescroll.Color
	intensity float64
}

const ambientLight = 0.22

// shade computes the lit color of a face with center p and normal n.
func shade(base cinescroll.Color, p, n mgl64.Vec3, lights []light) cinescroll.Color {
	r, g, b := ambientLight, ambientLight, ambientLight
	for _, l := range lights {
		dir := l.pos.Sub(p)
		d := dir.Len()
		if d < 1e-9 {
			continue
		}
		lambert := n.Dot(dir.Mul(1/d)) * l.intensity * 0.5
		if lambert <= 0 {
			continue
		}
		r += lambert * l.color.R
		g += lambert * l.color.G
		b += lambert * l.color.B
	}
	return cinescroll.Color{
		R: math.Min(base.R*r, 1),
		G: math.Min(base.G*g, 1),
		B: math.Min(base.B*b, 1),
	}
}
