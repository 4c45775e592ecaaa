package stage

import (
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/phanxgames/cinescroll"
	"github.com/phanxgames/cinescroll/config"
)

// Panel layout constants in pixels. The debug font is 6x16.
const (
	panelMaxWidth = 640.0
	panelMinSide  = 40.0
	panelHeight   = 200.0
	panelPad      = 16.0
	cardHeight    = 64.0
	cardGap       = 12.0
	formHeight    = 140.0
	glyphW        = 6.0
	lineH         = 16.0

	// Cards only react to the pointer once their panel is mostly visible.
	hoverVisibility = 0.5
)

// panel is one content section with its cached pre-rendered image.
type panel struct {
	cfg   config.SectionConfig
	cards []config.CardConfig
	form  bool

	img      *ebiten.Image
	imgW     int
	imgH     int
	hovered  int // index into cards, -1 for none
	rendered int // hovered index img was drawn with
}

func newPanels(cfg *config.Config) map[string]*panel {
	out := make(map[string]*panel, len(cfg.Sections))
	for _, s := range cfg.Sections {
		out[s.ID] = &panel{cfg: s, hovered: -1, rendered: -2}
	}
	for _, c := range cfg.Cards {
		if p, ok := out[c.Section]; ok {
			p.cards = append(p.cards, c)
		}
	}
	if p, ok := out["contact"]; ok {
		p.form = true
	}
	return out
}

// size returns the panel's unscaled size for a viewport of width w.
func (p *panel) size(w float64) (pw, ph float64) {
	pw = panelMaxWidth
	if w-2*panelMinSide < pw {
		pw = w - 2*panelMinSide
	}
	if pw < 120 {
		pw = 120
	}
	ph = panelHeight
	if len(p.cards) > 0 {
		ph += cardHeight + cardGap
	}
	if p.form {
		ph += formHeight
	}
	return pw, ph
}

// panelRect returns the on-screen rectangle of a panel after its transform:
// scaled about the viewport center and shifted by TranslateY.
func panelRect(pw, ph, w, h float64, t cinescroll.PanelTransform) cinescroll.Rect {
	s := t.Scale
	if s <= 0 {
		s = 1
	}
	return cinescroll.Rect{
		X:      w/2 - pw*s/2,
		Y:      h/2 - ph*s/2 + t.TranslateY,
		Width:  pw * s,
		Height: ph * s,
	}
}

// cardRects lays n cards out in one row below the body text, in panel-local
// coordinates.
func cardRects(pw float64, n int) []cinescroll.Rect {
	if n <= 0 {
		return nil
	}
	cw := (pw - 2*panelPad - float64(n-1)*cardGap) / float64(n)
	out := make([]cinescroll.Rect, n)
	for i := range out {
		out[i] = cinescroll.Rect{
			X:      panelPad + float64(i)*(cw+cardGap),
			Y:      panelHeight,
			Width:  cw,
			Height: cardHeight,
		}
	}
	return out
}

// toScreen maps a panel-local rect into screen space using the panel's
// on-screen rect and scale.
func toScreen(local, panel cinescroll.Rect, scale float64) cinescroll.Rect {
	return cinescroll.Rect{
		X:      panel.X + local.X*scale,
		Y:      panel.Y + local.Y*scale,
		Width:  local.Width * scale,
		Height: local.Height * scale,
	}
}

// wrapText breaks s into lines of at most cols characters on word
// boundaries. Words longer than a line are split.
func wrapText(s string, cols int) []string {
	if cols <= 0 {
		return nil
	}
	var lines []string
	var cur strings.Builder
	for _, word := range strings.Fields(s) {
		for len(word) > cols {
			if cur.Len() > 0 {
				lines = append(lines, cur.String())
				cur.Reset()
			}
			lines = append(lines, word[:cols])
			word = word[cols:]
		}
		switch {
		case cur.Len() == 0:
			cur.WriteString(word)
		case cur.Len()+1+len(word) <= cols:
			cur.WriteByte(' ')
			cur.WriteString(word)
		default:
			lines = append(lines, cur.String())
			cur.Reset()
			cur.WriteString(word)
		}
	}
	if cur.Len() > 0 {
		lines = append(lines, cur.String())
	}
	return lines
}

var (
	panelFill   = color.RGBA{10, 10, 24, 200}
	panelBorder = color.RGBA{90, 90, 140, 255}
)

// render redraws the cached panel image when its size or hover state changed.
func (p *panel) render(pw, ph float64) {
	w, h := int(pw), int(ph)
	if p.img != nil && p.imgW == w && p.imgH == h && p.rendered == p.hovered {
		return
	}
	if p.img == nil || p.imgW != w || p.imgH != h {
		if p.img != nil {
			p.img.Deallocate()
		}
		p.img = ebiten.NewImage(w, h)
		p.imgW, p.imgH = w, h
	}
	p.rendered = p.hovered

	img := p.img
	img.Clear()
	img.Fill(panelFill)
	vector.StrokeRect(img, 0.5, 0.5, float32(pw)-1, float32(ph)-1, 1, panelBorder, false)

	ebitenutil.DebugPrintAt(img, strings.ToUpper(p.cfg.Title), int(panelPad), int(panelPad))
	cols := int((pw - 2*panelPad) / glyphW)
	y := panelPad + 2*lineH
	for _, line := range wrapText(p.cfg.Body, cols) {
		if y+lineH > panelHeight-panelPad {
			break
		}
		ebitenutil.DebugPrintAt(img, line, int(panelPad), int(y))
		y += lineH
	}

	for i, r := range cardRects(pw, len(p.cards)) {
		card := p.cards[i]
		fillAlpha := 0.25
		if i == p.hovered {
			fillAlpha = 0.6
		}
		col := card.CardColor()
		vector.DrawFilledRect(img, float32(r.X), float32(r.Y), float32(r.Width), float32(r.Height), toRGBA(col, fillAlpha), false)
		vector.StrokeRect(img, float32(r.X), float32(r.Y), float32(r.Width), float32(r.Height), 1, toRGBA(col, 1), false)
		ebitenutil.DebugPrintAt(img, card.Title, int(r.X+8), int(r.Y+8))
	}
}

// draw renders the panel for state st onto dst.
func (p *panel) draw(dst *ebiten.Image, st cinescroll.SectionState, w, h float64) {
	pw, ph := p.size(w)
	p.render(pw, ph)

	scale := st.Panel.Scale
	if scale <= 0 {
		scale = 1
	}
	var op ebiten.DrawImageOptions
	op.GeoM.Translate(-pw/2, -ph/2)
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(w/2, h/2+st.Panel.TranslateY)
	op.ColorScale.ScaleAlpha(float32(st.Panel.Opacity))
	op.Filter = ebiten.FilterLinear
	dst.DrawImage(p.img, &op)
}

// cardAt returns the index of the card under (x, y), or -1.
func (p *panel) cardAt(x, y float64, st cinescroll.SectionState, w, h float64) int {
	if st.Visibility < hoverVisibility || len(p.cards) == 0 {
		return -1
	}
	pw, ph := p.size(w)
	rect := panelRect(pw, ph, w, h, st.Panel)
	scale := rect.Width / pw
	for i, r := range cardRects(pw, len(p.cards)) {
		if toScreen(r, rect, scale).Contains(x, y) {
			return i
		}
	}
	return -1
}

// formTop is the panel-local y of the first form field.
func (p *panel) formTop() float64 {
	if len(p.cards) > 0 {
		return panelHeight + cardHeight + cardGap
	}
	return panelHeight
}

// drawForm draws the contact fields over the panel. Text is drawn directly
// each frame since it changes while typing.
func drawForm(dst *ebiten.Image, f *contactForm, rect cinescroll.Rect, top, scale, alpha float64) {
	x := rect.X + panelPad*scale
	y := rect.Y + top*scale
	fieldW := rect.Width - 2*panelPad*scale
	for i := 0; i < fieldCount; i++ {
		border := toRGBA(cinescroll.Color{R: 0.5, G: 0.5, B: 0.7}, alpha)
		if i == f.focus {
			border = toRGBA(cinescroll.ColorWhite, alpha)
		}
		vector.StrokeRect(dst, float32(x), float32(y), float32(fieldW), 24, 1, border, false)
		text := fieldLabels[i] + ": " + f.fields[i]
		if i == f.focus {
			text += "_"
		}
		if limit := int((fieldW - 12) / glyphW); len(text) > limit && limit > 0 {
			text = text[len(text)-limit:]
		}
		ebitenutil.DebugPrintAt(dst, text, int(x+6), int(y+4))
		y += 28
	}
	ebitenutil.DebugPrintAt(dst, f.statusLine(), int(x), int(y+2))
}

// restartButton is the bottom-center "back to top" affordance.
func restartButton(w, h float64) cinescroll.Rect {
	const bw, bh = 180.0, 36.0
	return cinescroll.Rect{X: w/2 - bw/2, Y: h - bh - 24, Width: bw, Height: bh}
}

func drawRestartButton(dst *ebiten.Image, r cinescroll.Rect, hovered bool) {
	fill := color.RGBA{30, 30, 60, 220}
	if hovered {
		fill = color.RGBA{70, 50, 130, 240}
	}
	vector.DrawFilledRect(dst, float32(r.X), float32(r.Y), float32(r.Width), float32(r.Height), fill, false)
	vector.StrokeRect(dst, float32(r.X), float32(r.Y), float32(r.Width), float32(r.Height), 1, panelBorder, false)
	ebitenutil.DebugPrintAt(dst, "Back to top [R]", int(r.X+44), int(r.Y+10))
}

// drawModal dims the page behind the showreel overlay.
func drawModal(dst *ebiten.Image, w, h float64) {
	vector.DrawFilledRect(dst, 0, 0, float32(w), float32(h), color.RGBA{0, 0, 0, 200}, false)
	const mw, mh = 480.0, 270.0
	x, y := w/2-mw/2, h/2-mh/2
	vector.DrawFilledRect(dst, float32(x), float32(y), mw, mh, color.RGBA{20, 20, 20, 255}, false)
	vector.StrokeRect(dst, float32(x), float32(y), mw, mh, 1, panelBorder, false)
	ebitenutil.DebugPrintAt(dst, "SHOWREEL", int(x+16), int(y+16))
	ebitenutil.DebugPrintAt(dst, "Press V to close", int(x+16), int(y+mh-32))
}
