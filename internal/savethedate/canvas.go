// internal/savethedate/canvas.go
package savethedate

import (
	"image"
	"image/color"
	"math"
	"strings"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// canvas draws in logical card units; every coordinate is multiplied by scale.
type canvas struct {
	img   *image.RGBA
	scale float64
	faces map[faceKey]font.Face
}

type weight int

const (
	weightRegular weight = iota
	weightMedium
	weightBold
	weightItalic
	weightBoldItalic
)

type faceKey struct {
	w    weight
	size float64
}

type textStyle struct {
	weight   weight
	size     float64
	color    color.Color
	tracking float64 // extra advance per rune, in em
	upper    bool
}

var upper = cases.Upper(language.Und)

func newCanvas(scale float64) *canvas {
	w, h := int(CardWidth*scale), int(CardHeight*scale)
	return &canvas{
		img:   image.NewRGBA(image.Rect(0, 0, w, h)),
		scale: scale,
		faces: make(map[faceKey]font.Face),
	}
}

func (c *canvas) close() {
	for _, f := range c.faces {
		_ = f.Close()
	}
}

func (c *canvas) px(v float64) float32 { return float32(v * c.scale) }

func (c *canvas) rect(x, y, w, h float64) image.Rectangle {
	return image.Rect(int(x*c.scale), int(y*c.scale), int((x+w)*c.scale), int((y+h)*c.scale))
}

func (c *canvas) face(w weight, size float64) (font.Face, error) {
	key := faceKey{w, size}
	if f, ok := c.faces[key]; ok {
		return f, nil
	}
	set, err := loadFonts()
	if err != nil {
		return nil, err
	}
	f, err := opentype.NewFace(set.get(w), &opentype.FaceOptions{
		Size:    size * c.scale,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, err
	}
	c.faces[key] = f
	return f, nil
}

func (c *canvas) fill(col color.Color) {
	draw.Draw(c.img, c.img.Bounds(), image.NewUniform(col), image.Point{}, draw.Src)
}

// verticalGradient fills the canvas through stops at fractional offsets.
func (c *canvas) verticalGradient(stops []gradientStop) {
	b := c.img.Bounds()
	h := float64(b.Dy())
	for y := b.Min.Y; y < b.Max.Y; y++ {
		col := sampleGradient(stops, float64(y)/h)
		draw.Draw(c.img, image.Rect(b.Min.X, y, b.Max.X, y+1), image.NewUniform(col), image.Point{}, draw.Src)
	}
}

type gradientStop struct {
	at    float64
	color color.RGBA
}

func sampleGradient(stops []gradientStop, t float64) color.RGBA {
	if t <= stops[0].at {
		return stops[0].color
	}
	for i := 1; i < len(stops); i++ {
		a, b := stops[i-1], stops[i]
		if t <= b.at {
			f := (t - a.at) / (b.at - a.at)
			mix := func(x, y uint8) uint8 { return uint8(float64(x) + (float64(y)-float64(x))*f + 0.5) }
			return color.RGBA{mix(a.color.R, b.color.R), mix(a.color.G, b.color.G), mix(a.color.B, b.color.B), 0xff}
		}
	}
	return stops[len(stops)-1].color
}

func (c *canvas) fillRect(x, y, w, h float64, col color.Color) {
	draw.Draw(c.img, c.rect(x, y, w, h), image.NewUniform(col), image.Point{}, draw.Over)
}

// strokeRect outlines a rectangle with the line inside its bounds.
func (c *canvas) strokeRect(x, y, w, h, width float64, col color.Color) {
	c.fillRect(x, y, w, width, col)
	c.fillRect(x, y+h-width, w, width, col)
	c.fillRect(x, y, width, h, col)
	c.fillRect(x+w-width, y, width, h, col)
}

func (c *canvas) rasterizer() *vector.Rasterizer {
	b := c.img.Bounds()
	r := vector.NewRasterizer(b.Dx(), b.Dy())
	r.DrawOp = draw.Over
	return r
}

func (c *canvas) paint(r *vector.Rasterizer, col color.Color) {
	r.Draw(c.img, c.img.Bounds(), image.NewUniform(col), image.Point{})
}

const kappa = 0.5522847

func (c *canvas) circlePath(r *vector.Rasterizer, cx, cy, radius float64) {
	x, y, rr, k := c.px(cx), c.px(cy), c.px(radius), c.px(radius*kappa)
	r.MoveTo(x+rr, y)
	r.CubeTo(x+rr, y+k, x+k, y+rr, x, y+rr)
	r.CubeTo(x-k, y+rr, x-rr, y+k, x-rr, y)
	r.CubeTo(x-rr, y-k, x-k, y-rr, x, y-rr)
	r.CubeTo(x+k, y-rr, x+rr, y-k, x+rr, y)
	r.ClosePath()
}

func (c *canvas) roundedRectPath(r *vector.Rasterizer, x, y, w, h, radius float64) {
	x0, y0, x1, y1 := c.px(x), c.px(y), c.px(x+w), c.px(y+h)
	rr, k := c.px(radius), c.px(radius*(1-kappa))
	r.MoveTo(x0+rr, y0)
	r.LineTo(x1-rr, y0)
	r.CubeTo(x1-k, y0, x1, y0+k, x1, y0+rr)
	r.LineTo(x1, y1-rr)
	r.CubeTo(x1, y1-k, x1-k, y1, x1-rr, y1)
	r.LineTo(x0+rr, y1)
	r.CubeTo(x0+k, y1, x0, y1-k, x0, y1-rr)
	r.LineTo(x0, y0+rr)
	r.CubeTo(x0, y0+k, x0+k, y0, x0+rr, y0)
	r.ClosePath()
}

func (c *canvas) fillCircle(cx, cy, radius float64, col color.Color) {
	r := c.rasterizer()
	c.circlePath(r, cx, cy, radius)
	c.paint(r, col)
}

// ringCircle strokes a circle outline of the given width.
func (c *canvas) ringCircle(cx, cy, radius, width float64, col color.Color) {
	const segments = 96
	pts := make([][2]float64, 0, segments+1)
	for i := 0; i <= segments; i++ {
		a := 2 * math.Pi * float64(i) / segments
		pts = append(pts, [2]float64{cx + radius*math.Cos(a), cy + radius*math.Sin(a)})
	}
	c.strokePolyline(pts, width, col)
}

func (c *canvas) fillRoundedRect(x, y, w, h, radius float64, col color.Color) {
	r := c.rasterizer()
	c.roundedRectPath(r, x, y, w, h, radius)
	c.paint(r, col)
}

// diamonds fills squares rotated 45 degrees around each centre.
func (c *canvas) diamonds(centres [][2]float64, half float64, col color.Color) {
	r := c.rasterizer()
	for _, p := range centres {
		cx, cy := p[0], p[1]
		r.MoveTo(c.px(cx), c.px(cy-half))
		r.LineTo(c.px(cx+half), c.px(cy))
		r.LineTo(c.px(cx), c.px(cy+half))
		r.LineTo(c.px(cx-half), c.px(cy))
		r.ClosePath()
	}
	c.paint(r, col)
}

// strokePolyline approximates a stroked open path by quads between points.
func (c *canvas) strokePolyline(pts [][2]float64, width float64, col color.Color) {
	r := c.rasterizer()
	hw := width / 2
	for i := 1; i < len(pts); i++ {
		x0, y0, x1, y1 := pts[i-1][0], pts[i-1][1], pts[i][0], pts[i][1]
		dx, dy := x1-x0, y1-y0
		l := math.Hypot(dx, dy)
		if l == 0 {
			continue
		}
		nx, ny := -dy/l*hw, dx/l*hw
		r.MoveTo(c.px(x0+nx), c.px(y0+ny))
		r.LineTo(c.px(x1+nx), c.px(y1+ny))
		r.LineTo(c.px(x1-nx), c.px(y1-ny))
		r.LineTo(c.px(x0-nx), c.px(y0-ny))
		r.ClosePath()
	}
	c.paint(r, col)
}

// photoMask selects the clip shape of a placed photo.
type photoMask int

const (
	maskRect photoMask = iota
	maskCircle
	maskRounded
)

// placePhoto cover-fits src into the box, runs the filters on the scaled
// pixels and clips the result to the mask.
func (c *canvas) placePhoto(src image.Image, x, y, w, h float64, mask photoMask, radius float64, filters ...func(*image.RGBA)) {
	dr := c.rect(x, y, w, h)
	fitted := image.NewRGBA(image.Rect(0, 0, dr.Dx(), dr.Dy()))
	draw.CatmullRom.Scale(fitted, fitted.Bounds(), src, coverRect(src.Bounds(), dr.Dx(), dr.Dy()), draw.Src, nil)
	for _, f := range filters {
		f(fitted)
	}

	if mask == maskRect {
		draw.Draw(c.img, dr, fitted, image.Point{}, draw.Over)
		return
	}
	alpha := image.NewAlpha(c.img.Bounds())
	r := c.rasterizer()
	if mask == maskCircle {
		c.circlePath(r, x+w/2, y+h/2, w/2)
	} else {
		c.roundedRectPath(r, x, y, w, h, radius)
	}
	r.Draw(alpha, alpha.Bounds(), image.Opaque, image.Point{})
	draw.DrawMask(c.img, dr, fitted, image.Point{}, alpha, dr.Min, draw.Over)
}

// coverRect is the centred crop of b with the aspect ratio w:h.
func coverRect(b image.Rectangle, w, h int) image.Rectangle {
	sw, sh := b.Dx(), b.Dy()
	if sw == 0 || sh == 0 || w == 0 || h == 0 {
		return b
	}
	if sw*h > sh*w {
		cw := sh * w / h
		x := b.Min.X + (sw-cw)/2
		return image.Rect(x, b.Min.Y, x+cw, b.Max.Y)
	}
	ch := sw * h / w
	y := b.Min.Y + (sh-ch)/2
	return image.Rect(b.Min.X, y, b.Max.X, y+ch)
}

// measure returns the advance of s in logical units.
func (c *canvas) measure(s string, st textStyle) (float64, error) {
	f, err := c.face(st.weight, st.size)
	if err != nil {
		return 0, err
	}
	if st.upper {
		s = upper.String(s)
	}
	return c.advance(f, s, st) / c.scale, nil
}

func (c *canvas) advance(f font.Face, s string, st textStyle) float64 {
	if st.tracking == 0 {
		return fix(font.MeasureString(f, s))
	}
	var total float64
	n := 0
	for _, r := range s {
		adv, _ := f.GlyphAdvance(r)
		total += fix(adv)
		n++
	}
	if n > 1 {
		total += float64(n-1) * st.tracking * st.size * c.scale
	}
	return total
}

// text draws s with its left edge at x and baseline at y.
func (c *canvas) text(s string, st textStyle, x, y float64) error {
	f, err := c.face(st.weight, st.size)
	if err != nil {
		return err
	}
	if st.upper {
		s = upper.String(s)
	}
	d := &font.Drawer{
		Dst:  c.img,
		Src:  image.NewUniform(st.color),
		Face: f,
		Dot:  fixed.Point26_6{X: fixed.Int26_6(x * c.scale * 64), Y: fixed.Int26_6(y * c.scale * 64)},
	}
	if st.tracking == 0 {
		d.DrawString(s)
		return nil
	}
	extra := fixed.Int26_6(st.tracking * st.size * c.scale * 64)
	for _, r := range s {
		d.DrawString(string(r))
		d.Dot.X += extra
	}
	return nil
}

// centered draws s horizontally centred on cx.
func (c *canvas) centered(s string, st textStyle, cx, y float64) error {
	w, err := c.measure(s, st)
	if err != nil {
		return err
	}
	return c.text(s, st, cx-w/2, y)
}

// rightAligned draws s ending at x.
func (c *canvas) rightAligned(s string, st textStyle, x, y float64) error {
	w, err := c.measure(s, st)
	if err != nil {
		return err
	}
	return c.text(s, st, x-w, y)
}

// wrap breaks s into lines no wider than maxWidth logical units.
func (c *canvas) wrap(s string, st textStyle, maxWidth float64) ([]string, error) {
	var lines []string
	line := ""
	for _, word := range strings.Fields(s) {
		candidate := word
		if line != "" {
			candidate = line + " " + word
		}
		w, err := c.measure(candidate, st)
		if err != nil {
			return nil, err
		}
		if w <= maxWidth || line == "" {
			line = candidate
			continue
		}
		lines = append(lines, line)
		line = word
	}
	if line != "" {
		lines = append(lines, line)
	}
	return lines, nil
}

func fix(v fixed.Int26_6) float64 { return float64(v) / 64 }
