// internal/savethedate/render.go
package savethedate

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/png"

	// Decoders for uploaded photos.
	_ "image/gif"
	_ "image/jpeg"

	_ "golang.org/x/image/webp"

	"everaftr-workers/internal/models"
)

// Logical card size (5:7).
const (
	CardWidth  = 360
	CardHeight = 504
)

const (
	DefaultScale = 2
	MaxScale     = 4
)

// Rendered is a rasterized card.
type Rendered struct {
	PNG       []byte
	Width     int
	Height    int
	Template  models.TemplateID
	PhotoUsed bool
}

// DataURL returns the PNG as a data:image/png URL.
func (r *Rendered) DataURL() string {
	return EncodeDataURL("image/png", r.PNG)
}

// step draws one part of a card.
type step func(c *canvas) error

// layoutFunc turns a card into drawing steps. photo is nil when the card has
// no usable photo.
type layoutFunc func(card Card, tpl Template, photo image.Image) []step

// Render rasterizes d at the given scale. It checks ctx between drawing steps
// and returns ctx.Err() once the context is done.
func Render(ctx context.Context, d models.SaveTheDateData, scale float64) (*Rendered, error) {
	if scale <= 0 {
		scale = DefaultScale
	}
	if scale > MaxScale {
		scale = MaxScale
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if _, err := loadFonts(); err != nil {
		return nil, fmt.Errorf("loading fonts: %w", err)
	}

	card := BuildCard(d)
	tpl := Lookup(card.TemplateID)
	photo := decodePhoto(d.PhotoURL)

	c := newCanvas(scale)
	defer c.close()

	for _, s := range tpl.layout(card, tpl, photo) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if err := s(c); err != nil {
			return nil, err
		}
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, c.img); err != nil {
		return nil, fmt.Errorf("encoding png: %w", err)
	}
	b := c.img.Bounds()
	return &Rendered{
		PNG:       buf.Bytes(),
		Width:     b.Dx(),
		Height:    b.Dy(),
		Template:  tpl.ID,
		PhotoUsed: photo != nil,
	}, nil
}

// decodePhoto returns nil for a missing or undecodable photo so the card
// falls back to its monogram.
func decodePhoto(url *string) image.Image {
	if url == nil || *url == "" {
		return nil
	}
	_, data, err := DecodeDataURL(*url)
	if err != nil {
		return nil
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil
	}
	return img
}
