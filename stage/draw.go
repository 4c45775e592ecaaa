package stage

import (
	"image/color"
	"math"
	"slices"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/phanxgames/cinescroll"
)

// --- White pixel singleton (the stage is single-threaded) ---

var whitePixelImage *ebiten.Image

// ensureWhitePixel returns a lazily-initialized 1x1 white pixel image used as
// the source of untextured triangles.
func ensureWhitePixel() *ebiten.Image {
	if whitePixelImage == nil {
		whitePixelImage = ebiten.NewImage(1, 1)
		whitePixelImage.Fill(color.RGBA{R: 255, G: 255, B: 255, A: 255})
	}
	return whitePixelImage
}

type point struct {
	x, y float64
}

// face is one projected, shaded polygon awaiting the painter's sort.
type face struct {
	pts   [4]point
	n     int
	depth float64
	color cinescroll.Color
	alpha float64
}

// sceneDrawer projects and draws the frame's meshes and particle fields.
// All buffers are reused between frames.
type sceneDrawer struct {
	models  map[cinescroll.ObjectID]model
	ambient []mgl64.Vec3

	faces  []face
	verts  []ebiten.Vertex
	inds   []uint32
	world  []mgl64.Vec3
	lights []light
}

func newSceneDrawer(ambientCount int, seed uint64) *sceneDrawer {
	return &sceneDrawer{
		models:  sceneModels(),
		ambient: ambientField(ambientCount, seed),
	}
}

// ambientField scatters points in a flattened shell around the origin.
func ambientField(n int, seed uint64) []mgl64.Vec3 {
	field := cinescroll.NewBurstField(cinescroll.FieldConfig{
		Count:      n,
		Speed:      cinescroll.Range{Min: 1, Max: 1},
		RestRadius: cinescroll.Range{Min: 8, Max: 22},
		Seed:       seed,
	})
	pts := make([]mgl64.Vec3, n)
	for i := range pts {
		p := field.RestPosition(i)
		pts[i] = mgl64.Vec3{p.X(), p.Y() * 0.6, p.Z()}
	}
	return pts
}

// draw renders every mesh and particle of f onto dst.
func (d *sceneDrawer) draw(dst *ebiten.Image, f *cinescroll.Frame, pr projector) {
	d.lights = d.lights[:0]
	for _, id := range []cinescroll.ObjectID{cinescroll.ObjLightA, cinescroll.ObjLightB, cinescroll.ObjAccentLight} {
		o := f.Object(id)
		d.lights = append(d.lights, light{pos: o.Position, color: o.Color, intensity: o.Intensity})
	}

	d.faces = d.faces[:0]
	f.Each(func(id cinescroll.ObjectID, st cinescroll.ObjectState) {
		if m, ok := d.models[id]; ok {
			d.collectFaces(m, st, f.Camera.Position, pr)
		}
	})

	// Far faces first.
	slices.SortFunc(d.faces, func(a, b face) int {
		switch {
		case a.depth > b.depth:
			return -1
		case a.depth < b.depth:
			return 1
		}
		return 0
	})

	d.verts = d.verts[:0]
	d.inds = d.inds[:0]
	for i := range d.faces {
		fc := &d.faces[i]
		d.verts, d.inds = appendPolygonFan(d.verts, d.inds, fc.pts[:fc.n], fc.color, fc.alpha)
	}
	if len(d.inds) > 0 {
		var op ebiten.DrawTrianglesOptions
		op.AntiAlias = true
		dst.DrawTriangles32(d.verts, d.inds, ensureWhitePixel(), &op)
	}

	d.drawPoints(dst, d.ambient, f.Object(cinescroll.ObjAmbientField), pr, 1.5)
	if len(f.Burst) > 0 {
		d.drawPoints(dst, f.Burst, f.Object(cinescroll.ObjBurstField), pr, 2)
	}
}

// collectFaces transforms, shades and projects the faces of one mesh.
func (d *sceneDrawer) collectFaces(m model, st cinescroll.ObjectState, eye mgl64.Vec3, pr projector) {
	if st.Scale <= 0 {
		return
	}
	rot := rotation(st.Rotation)
	d.world = d.world[:0]
	for _, v := range m.verts {
		d.world = append(d.world, transform(v, rot, st))
	}

	for _, idx := range m.faces {
		if len(idx) < 3 || len(idx) > 4 {
			continue
		}
		var fc face
		var center mgl64.Vec3
		visible := true
		for i, vi := range idx {
			w := d.world[vi]
			center = center.Add(w)
			x, y, z, ok := pr.project(w)
			if !ok {
				visible = false
				break
			}
			fc.pts[i] = point{x, y}
			fc.depth += z
		}
		if !visible {
			continue
		}
		k := float64(len(idx))
		center = center.Mul(1 / k)
		fc.n = len(idx)
		fc.depth /= k

		n := faceNormal(d.world[idx[0]], d.world[idx[1]], d.world[idx[2]])
		if n.Dot(eye.Sub(center)) < 0 {
			n = n.Mul(-1)
		}
		fc.color = shade(st.Color, center, n, d.lights)
		fc.alpha = math.Min(st.Intensity, 1)
		d.faces = append(d.faces, fc)
	}
}

// drawPoints draws a point cloud placed by st. Alpha follows st.Intensity.
func (d *sceneDrawer) drawPoints(dst *ebiten.Image, pts []mgl64.Vec3, st cinescroll.ObjectState, pr projector, size float64) {
	alpha := math.Min(st.Intensity, 1)
	if alpha <= 0 {
		return
	}
	rot := rotation(st.Rotation)
	scale := st.Scale
	if scale <= 0 {
		scale = 1
	}
	clr := toRGBA(st.Color, alpha)
	for _, p := range pts {
		w := rot.Mul3x1(p.Mul(scale)).Add(st.Position)
		x, y, _, ok := pr.project(w)
		if !ok || x < 0 || y < 0 || x > pr.w || y > pr.h {
			continue
		}
		s := float32(size)
		vector.DrawFilledRect(dst, float32(x)-s/2, float32(y)-s/2, s, s, clr, false)
	}
}

// appendPolygonFan appends a fan-triangulated convex polygon to the vertex
// and index buffers. N vertices, 3*(N-2) indices.
func appendPolygonFan(verts []ebiten.Vertex, inds []uint32, pts []point, c cinescroll.Color, alpha float64) ([]ebiten.Vertex, []uint32) {
	n := len(pts)
	if n < 3 {
		return verts, inds
	}
	base := uint32(len(verts))
	for _, p := range pts {
		verts = append(verts, ebiten.Vertex{
			DstX: float32(p.x),
			DstY: float32(p.y),
			// Untextured: map to center of white pixel (0.5, 0.5)
			SrcX:   0.5,
			SrcY:   0.5,
			ColorR: float32(c.R * alpha),
			ColorG: float32(c.G * alpha),
			ColorB: float32(c.B * alpha),
			ColorA: float32(alpha),
		})
	}
	// Fan triangulation: vertex 0 is the hub.
	for i := 0; i < n-2; i++ {
		inds = append(inds, base, base+uint32(i+1), base+uint32(i+2))
	}
	return verts, inds
}

// drawGradient fills dst with a static vertical gradient. It is the whole
// background on the degraded path.
func drawGradient(dst *ebiten.Image, top, bottom cinescroll.Color) {
	b := dst.Bounds()
	w, h := float32(b.Dx()), float32(b.Dy())
	vtx := func(x, y float32, c cinescroll.Color) ebiten.Vertex {
		return ebiten.Vertex{
			DstX: x, DstY: y, SrcX: 0.5, SrcY: 0.5,
			ColorR: float32(c.R), ColorG: float32(c.G), ColorB: float32(c.B), ColorA: 1,
		}
	}
	verts := []ebiten.Vertex{vtx(0, 0, top), vtx(w, 0, top), vtx(w, h, bottom), vtx(0, h, bottom)}
	dst.DrawTriangles(verts, []uint16{0, 1, 2, 0, 2, 3}, ensureWhitePixel(), &ebiten.DrawTrianglesOptions{})
}

// toRGBA converts c to a premultiplied color with the given alpha.
func toRGBA(c cinescroll.Color, alpha float64) color.RGBA {
	alpha = math.Max(0, math.Min(alpha, 1))
	ch := func(v float64) uint8 {
		return uint8(math.Round(math.Max(0, math.Min(v, 1)) * alpha * 255))
	}
	return color.RGBA{R: ch(c.R), G: ch(c.G), B: ch(c.B), A: uint8(math.Round(alpha * 255))}
}
