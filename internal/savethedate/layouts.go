// internal/savethedate/layouts.go
package savethedate

import (
	"image"
	"image/color"
	"math"
)

const lineHeight = 1.2

// block is one item of a vertically centred column.
type block struct {
	height float64
	draw   func(c *canvas, top float64) error
}

func spacer(h float64) block {
	return block{height: h, draw: func(*canvas, float64) error { return nil }}
}

// column centres blocks between top and bottom and yields one step per block.
func column(blocks []block, top, bottom float64) []step {
	var total float64
	for _, b := range blocks {
		total += b.height
	}
	y := top + (bottom-top-total)/2
	if y < top {
		y = top
	}
	steps := make([]step, 0, len(blocks))
	for _, b := range blocks {
		b, at := b, y
		steps = append(steps, func(c *canvas) error { return b.draw(c, at) })
		y += b.height
	}
	return steps
}

// centredText wraps s to maxWidth and centres every line on the card axis.
// Its height covers one line; measuredText sizes multi-line text.
func centredText(s string, st textStyle, maxWidth float64) block {
	return block{
		height: st.size * lineHeight,
		draw: func(c *canvas, top float64) error {
			lines, err := c.wrap(s, st, maxWidth)
			if err != nil {
				return err
			}
			for i, line := range lines {
				baseline := top + st.size*(0.95+float64(i)*lineHeight)
				if err := c.centered(line, st, CardWidth/2, baseline); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

// measuredText sizes a centred text block by its wrapped line count.
func measuredText(c *canvas, s string, st textStyle, maxWidth float64) (block, error) {
	b := centredText(s, st, maxWidth)
	lines, err := c.wrap(s, st, maxWidth)
	if err != nil {
		return b, err
	}
	if n := len(lines); n > 1 {
		b.height = st.size * lineHeight * float64(n)
	}
	return b, nil
}

func divider(width float64, col color.Color) block {
	return block{height: 1, draw: func(c *canvas, top float64) error {
		c.fillRect((CardWidth-width)/2, top, width, 1, col)
		return nil
	}}
}

// textColumn builds the column at draw time so wrapped text can be measured
// with the canvas faces.
func textColumn(build func(c *canvas) ([]block, error), top, bottom float64) []step {
	return []step{func(c *canvas) error {
		blocks, err := build(c)
		if err != nil {
			return err
		}
		for _, s := range column(blocks, top, bottom) {
			if err := s(c); err != nil {
				return err
			}
		}
		return nil
	}}
}

var (
	classicInk     = hex("#4A3520")
	classicVenue   = hex("#8B7355")
	classicMessage = hex("#B8A080")
)

func layoutClassic(card Card, tpl Template, photo image.Image) []step {
	accent := hex(tpl.AccentColor)
	const content = CardWidth - 64

	steps := []step{
		func(c *canvas) error { c.fill(hex(tpl.Background)); return nil },
		func(c *canvas) error {
			c.strokeRect(12, 12, CardWidth-24, CardHeight-24, 1, accent)
			c.strokeRect(18, 18, CardWidth-36, CardHeight-36, 0.5, withAlpha(accent, 0.5))
			return nil
		},
		func(c *canvas) error {
			const size, w = 20.0, 1.5
			for _, corner := range [][2]bool{{true, true}, {true, false}, {false, true}, {false, false}} {
				top, left := corner[0], corner[1]
				x, y := 24.0, 24.0
				if !left {
					x = CardWidth - 24 - size
				}
				if !top {
					y = CardHeight - 24 - size
				}
				hy := y
				if !top {
					hy = y + size - w
				}
				vx := x
				if !left {
					vx = x + size - w
				}
				c.fillRect(x, hy, size, w, accent)
				c.fillRect(vx, y, w, size, accent)
			}
			return nil
		},
	}

	return append(steps, textColumn(func(c *canvas) ([]block, error) {
		blocks := []block{
			centredText("Save the Date", textStyle{weight: weightBold, size: 8, color: accent, tracking: 0.4, upper: true}, content),
			spacer(20),
		}
		if photo != nil {
			blocks = append(blocks, block{height: 140, draw: func(c *canvas, top float64) error {
				c.placePhoto(photo, CardWidth/2-70, top, 140, 140, maskCircle, 0)
				c.ringCircle(CardWidth/2, top+70, 69, 2, accent)
				return nil
			}})
		} else {
			mono := initial(card.Bride) + "&" + initial(card.Groom)
			blocks = append(blocks, block{height: 100, draw: func(c *canvas, top float64) error {
				c.ringCircle(CardWidth/2, top+50, 49.25, 1.5, accent)
				return c.centered(mono, textStyle{weight: weightBoldItalic, size: 28, color: accent}, CardWidth/2, top+60)
			}})
		}
		blocks = append(blocks, spacer(20), divider(60, withAlpha(accent, 0.6)), spacer(16))

		names, err := measuredText(c, card.Bride+" & "+card.Groom, textStyle{weight: weightBoldItalic, size: 28, color: classicInk}, content)
		if err != nil {
			return nil, err
		}
		blocks = append(blocks, names, spacer(16), divider(60, withAlpha(accent, 0.6)), spacer(16))

		if card.DateText != "" {
			blocks = append(blocks,
				centredText(card.DateText, textStyle{weight: weightBold, size: 10, color: accent, tracking: 0.3, upper: true}, content),
				spacer(8))
		}
		if card.VenueLine != "" {
			venue, err := measuredText(c, card.VenueLine, textStyle{weight: weightItalic, size: 13, color: classicVenue}, content)
			if err != nil {
				return nil, err
			}
			blocks = append(blocks, venue)
		}
		if card.Message != "" {
			msg, err := measuredText(c, card.Message, textStyle{weight: weightItalic, size: 11, color: classicMessage}, content)
			if err != nil {
				return nil, err
			}
			blocks = append(blocks, spacer(14), msg)
		}
		return blocks, nil
	}, 40, CardHeight-40)...)
}

var (
	modernMuted   = hex("#6B96AD")
	modernPale    = hex("#D5E4ED")
	modernPanel   = hex("#F5F8F8")
	modernMessage = hex("#9DC0D3")
)

func layoutModern(card Card, tpl Template, photo image.Image) []step {
	accent := hex(tpl.AccentColor)
	const (
		padX, padY = 28.0, 36.0
		content    = CardWidth - 2*padX
		rowTop     = 70.0
		rowBottom  = 400.0
		photoW     = content * 0.45
		textX      = padX + photoW + 20
		textW      = CardWidth - padX - textX
		ruleY      = 420.0
	)

	return []step{
		func(c *canvas) error { c.fill(hex(tpl.Background)); return nil },
		func(c *canvas) error {
			return c.text("Save the Date", textStyle{weight: weightBold, size: 8, color: accent, tracking: 0.4, upper: true}, padX, padY+8)
		},
		func(c *canvas) error {
			if photo != nil {
				c.placePhoto(photo, padX, rowTop, photoW, rowBottom-rowTop, maskRect, 0)
				return nil
			}
			c.fillRect(padX, rowTop, photoW, rowBottom-rowTop, modernPanel)
			mono := initial(card.Bride) + initial(card.Groom)
			return c.centered(mono, textStyle{weight: weightBold, size: 40, color: modernPale}, padX+photoW/2, (rowTop+rowBottom)/2+14)
		},
		func(c *canvas) error {
			name := textStyle{weight: weightMedium, size: 32, color: accent}
			groom, err := c.wrap(card.Groom, name, textW)
			if err != nil {
				return err
			}
			bride, err := c.wrap(card.Bride, name, textW)
			if err != nil {
				return err
			}
			y := rowBottom - 4
			for i := len(groom) - 1; i >= 0; i-- {
				if err := c.text(groom[i], name, textX, y); err != nil {
					return err
				}
				y -= 32
			}
			y -= 2
			if err := c.text("&", textStyle{weight: weightRegular, size: 14, color: modernMuted}, textX, y); err != nil {
				return err
			}
			y -= 30
			for i := len(bride) - 1; i >= 0; i-- {
				if err := c.text(bride[i], name, textX, y); err != nil {
					return err
				}
				y -= 32
			}
			return nil
		},
		func(c *canvas) error { c.fillRect(padX, ruleY, content, 1, modernPale); return nil },
		func(c *canvas) error {
			if card.DateText != "" {
				if err := c.text(card.DateText, textStyle{weight: weightBold, size: 14, color: accent, tracking: 0.05}, padX, ruleY+30); err != nil {
					return err
				}
			}
			if card.VenueLine != "" {
				if err := c.text(card.VenueLine, textStyle{weight: weightRegular, size: 10, color: modernMuted}, padX, ruleY+46); err != nil {
					return err
				}
			}
			return nil
		},
		func(c *canvas) error {
			if card.Message == "" {
				return nil
			}
			st := textStyle{weight: weightRegular, size: 8, color: modernMessage, tracking: 0.05}
			lines, err := c.wrap(card.Message, st, 120)
			if err != nil {
				return err
			}
			y := ruleY + 46 - float64(len(lines)-1)*st.size*lineHeight
			for _, line := range lines {
				if err := c.rightAligned(line, st, CardWidth-padX, y); err != nil {
					return err
				}
				y += st.size * lineHeight
			}
			return nil
		},
	}
}

var (
	filipinianaGold  = hex("#C5A572")
	filipinianaSoft  = hex("#A08050")
	filipinianaPanel = hex("#EDE0CC")
	filipinianaInk   = hex("#4A1E0A")
	filipinianaVenue = hex("#6B4E20")
)

func layoutFilipiniana(card Card, tpl Template, photo image.Image) []step {
	accent := hex(tpl.AccentColor)
	const content = CardWidth - 64

	steps := []step{
		func(c *canvas) error { c.fill(hex(tpl.Background)); return nil },
		func(c *canvas) error {
			wovenBorder(c, 10, 3, accent, filipinianaGold)
			c.strokeRect(20, 20, CardWidth-40, CardHeight-40, 0.5, withAlpha(filipinianaGold, 0.4))
			return nil
		},
	}

	return append(steps, textColumn(func(c *canvas) ([]block, error) {
		blocks := []block{
			centredText("Ipagsama ang Petsa", textStyle{weight: weightBold, size: 10, color: accent, tracking: 0.3, upper: true}, content),
			spacer(4),
			centredText("Save the Date", textStyle{weight: weightMedium, size: 7, color: filipinianaSoft, tracking: 0.2, upper: true}, content),
			spacer(16),
			{height: 12, draw: func(c *canvas, top float64) error {
				mid := top + 6
				c.fillRect(CardWidth/2-38, mid, 24, 1, accent)
				c.diamonds([][2]float64{{CardWidth / 2, mid}}, 5, accent)
				c.fillRect(CardWidth/2+14, mid, 24, 1, accent)
				return nil
			}},
			spacer(16),
		}
		if photo != nil {
			blocks = append(blocks, block{height: 120, draw: func(c *canvas, top float64) error {
				x := CardWidth/2 - 80.0
				c.fillRoundedRect(x-2, top-2, 164, 124, 14, filipinianaGold)
				c.placePhoto(photo, x, top, 160, 120, maskRounded, 12, warmTone)
				return nil
			}})
		} else {
			blocks = append(blocks, block{height: 80, draw: func(c *canvas, top float64) error {
				x := CardWidth/2 - 60.0
				c.fillRoundedRect(x-1, top-1, 122, 82, 13, filipinianaGold)
				c.fillRoundedRect(x, top, 120, 80, 12, filipinianaPanel)
				return c.centered(card.Monogram, textStyle{weight: weightBoldItalic, size: 22, color: accent}, CardWidth/2, top+48)
			}})
		}
		blocks = append(blocks, spacer(16))

		names, err := measuredText(c, card.Bride+" & "+card.Groom, textStyle{weight: weightBoldItalic, size: 26, color: filipinianaInk}, content)
		if err != nil {
			return nil, err
		}
		blocks = append(blocks, names, spacer(12))

		if card.DateText != "" {
			blocks = append(blocks,
				centredText(card.DateText, textStyle{weight: weightBold, size: 10, color: accent, tracking: 0.25, upper: true}, content),
				spacer(6))
		}
		if card.VenueLine != "" {
			venue, err := measuredText(c, card.VenueLine, textStyle{weight: weightItalic, size: 12, color: filipinianaVenue}, content)
			if err != nil {
				return nil, err
			}
			blocks = append(blocks, venue)
		}
		if card.Message != "" {
			msg, err := measuredText(c, card.Message, textStyle{weight: weightItalic, size: 10, color: filipinianaSoft}, content)
			if err != nil {
				return nil, err
			}
			blocks = append(blocks, spacer(12), msg)
		}
		return blocks, nil
	}, 32, CardHeight-32)...)
}

// wovenBorder alternates two colours of small diamonds around an inset band.
func wovenBorder(c *canvas, inset, width float64, a, b color.Color) {
	const pitch = 8.0
	half := width / 2
	var even, odd [][2]float64
	add := func(i int, pts ...[2]float64) {
		if i%2 == 0 {
			even = append(even, pts...)
		} else {
			odd = append(odd, pts...)
		}
	}
	i := 0
	for x := inset; x <= CardWidth-inset; x += pitch {
		add(i, [2]float64{x, inset + half}, [2]float64{x, CardHeight - inset - half})
		i++
	}
	i = 0
	for y := inset + pitch; y < CardHeight-inset; y += pitch {
		add(i, [2]float64{inset + half, y}, [2]float64{CardWidth - inset - half, y})
		i++
	}
	c.diamonds(even, half+0.5, a)
	c.diamonds(odd, half+0.5, b)
}

// warmTone applies a light sepia and desaturation in place.
func warmTone(img *image.RGBA) {
	const sepia, sat = 0.15, 0.9
	pix := img.Pix
	for i := 0; i+3 < len(pix); i += 4 {
		r, g, bl := float64(pix[i]), float64(pix[i+1]), float64(pix[i+2])

		sr := 0.393*r + 0.769*g + 0.189*bl
		sg := 0.349*r + 0.686*g + 0.168*bl
		sb := 0.272*r + 0.534*g + 0.131*bl
		r, g, bl = r+(sr-r)*sepia, g+(sg-g)*sepia, bl+(sb-bl)*sepia

		lum := 0.2126*r + 0.7152*g + 0.0722*bl
		pix[i] = clamp8(lum + (r-lum)*sat)
		pix[i+1] = clamp8(lum + (g-lum)*sat)
		pix[i+2] = clamp8(lum + (bl-lum)*sat)
	}
}

func clamp8(v float64) uint8 {
	return uint8(math.Max(0, math.Min(255, math.Round(v))))
}

var (
	tropicalLeaf = hex("#9DC0D3")
	tropicalInk  = hex("#1C3347")
)

var tropicalGradient = []gradientStop{
	{0, hex("#D5E4ED")},
	{0.4, hex("#EDF3F7")},
	{1, hex("#F5F8F8")},
}

func layoutTropical(card Card, tpl Template, photo image.Image) []step {
	accent := hex(tpl.AccentColor)
	const content = CardWidth - 56

	steps := []step{
		func(c *canvas) error { c.verticalGradient(tropicalGradient); return nil },
		func(c *canvas) error {
			for _, flip := range [][2]bool{{false, false}, {true, false}, {false, true}, {true, true}} {
				leaf(c, flip[0], flip[1])
			}
			return nil
		},
	}

	return append(steps, textColumn(func(c *canvas) ([]block, error) {
		blocks := []block{
			centredText("Save the Date", textStyle{weight: weightBold, size: 8, color: accent, tracking: 0.4, upper: true}, content),
			spacer(20),
		}
		if photo != nil {
			blocks = append(blocks, block{height: 130, draw: func(c *canvas, top float64) error {
				x := CardWidth/2 - 90.0
				c.fillRoundedRect(x, top+6, 180, 130, 16, withAlpha(accent, 0.12))
				c.placePhoto(photo, x, top, 180, 130, maskRounded, 16)
				return nil
			}})
		} else {
			blocks = append(blocks, block{height: 100, draw: func(c *canvas, top float64) error {
				x := CardWidth/2 - 70.0
				c.fillRoundedRect(x, top+4, 140, 100, 16, withAlpha(accent, 0.1))
				c.fillRoundedRect(x, top, 140, 100, 16, color.White)
				return c.centered(card.Monogram, textStyle{weight: weightItalic, size: 28, color: tropicalLeaf}, CardWidth/2, top+60)
			}})
		}
		blocks = append(blocks, spacer(16), block{height: 12, draw: func(c *canvas, top float64) error {
			wave(c, CardWidth/2-60, top+6, 120, 12)
			return nil
		}}, spacer(14))

		names, err := measuredText(c, card.Bride+" & "+card.Groom, textStyle{weight: weightItalic, size: 26, color: tropicalInk}, content)
		if err != nil {
			return nil, err
		}
		blocks = append(blocks, names, spacer(14))

		if card.DateText != "" {
			blocks = append(blocks,
				centredText(card.DateText, textStyle{weight: weightBold, size: 10, color: accent, tracking: 0.3, upper: true}, content),
				spacer(6))
		}
		if card.VenueLine != "" {
			venue, err := measuredText(c, card.VenueLine, textStyle{weight: weightItalic, size: 12, color: accent}, content)
			if err != nil {
				return nil, err
			}
			blocks = append(blocks, venue)
		}
		if card.Message != "" {
			msg, err := measuredText(c, card.Message, textStyle{weight: weightItalic, size: 10, color: tropicalLeaf}, content)
			if err != nil {
				return nil, err
			}
			blocks = append(blocks, spacer(12), msg)
		}
		return blocks, nil
	}, 36, CardHeight-36)...)
}

// leaf draws the corner frond in a 50x50 box, mirrored per corner.
func leaf(c *canvas, flipX, flipY bool) {
	const box, view = 50.0, 60.0
	ox, oy := 8.0, 8.0
	if flipX {
		ox = CardWidth - 8 - box
	}
	if flipY {
		oy = CardHeight - 8 - box
	}
	tr := func(p [2]float64) [2]float64 {
		x, y := p[0], p[1]
		if flipX {
			x = view - x
		}
		if flipY {
			y = view - y
		}
		return [2]float64{ox + x*box/view, oy + y*box/view}
	}
	outline := [][4][2]float64{
		{{5, 55}, {10, 30}, {30, 15}, {30, 15}},
		{{30, 15}, {50, 0}, {55, 5}, {55, 5}},
		{{55, 5}, {50, 15}, {35, 30}, {35, 30}},
		{{35, 30}, {20, 45}, {5, 55}, {5, 55}},
	}
	var pts [][2]float64
	for _, seg := range outline {
		pts = append(pts, cubic(seg, 12, tr)...)
	}
	c.strokePolyline(pts, 1.5*box/view, withAlpha(tropicalLeaf, 0.5))
	vein := cubic([4][2]float64{{5, 55}, {5, 55}, {20, 35}, {40, 25}}, 12, tr)
	c.strokePolyline(vein, 0.8*box/view, withAlpha(tropicalLeaf, 0.3))
}

// wave draws a sine-like divider centred vertically on cy.
func wave(c *canvas, x, cy, w, h float64) {
	const n = 64
	pts := make([][2]float64, 0, n+1)
	for i := 0; i <= n; i++ {
		t := float64(i) / n
		pts = append(pts, [2]float64{x + t*w, cy - math.Sin(t*4*math.Pi)*h/2})
	}
	c.strokePolyline(pts, 1, withAlpha(tropicalLeaf, 0.5))
}

func cubic(p [4][2]float64, n int, tr func([2]float64) [2]float64) [][2]float64 {
	out := make([][2]float64, 0, n+1)
	for i := 0; i <= n; i++ {
		t := float64(i) / float64(n)
		u := 1 - t
		a, b, cc, d := u*u*u, 3*u*u*t, 3*u*t*t, t*t*t
		out = append(out, tr([2]float64{
			a*p[0][0] + b*p[1][0] + cc*p[2][0] + d*p[3][0],
			a*p[0][1] + b*p[1][1] + cc*p[2][1] + d*p[3][1],
		}))
	}
	return out
}
