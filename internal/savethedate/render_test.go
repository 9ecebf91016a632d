package savethedate

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"

	"everaftr-workers/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleCard() models.SaveTheDateData {
	d := models.NewSaveTheDateData()
	d.BrideName = "Maria Clara"
	d.GroomName = "Juan"
	d.WeddingDate = "2026-12-05"
	d.Venue = "Manila Cathedral"
	d.Location = "Intramuros"
	return d
}

func decodePNG(t *testing.T, data []byte) image.Image {
	t.Helper()
	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	return img
}

// ==========================
// Render Tests
// ==========================

func TestRender_EveryTemplate(t *testing.T) {
	photo := EncodeDataURL("image/png", pngBytes(t, 30, 20, color.RGBA{R: 200, G: 80, B: 40, A: 255}))

	for _, tpl := range Templates() {
		for _, withPhoto := range []bool{false, true} {
			name := string(tpl.ID)
			if withPhoto {
				name += "/photo"
			}
			t.Run(name, func(t *testing.T) {
				d := sampleCard()
				d.TemplateID = tpl.ID
				if withPhoto {
					d.PhotoURL = &photo
				}

				out, err := Render(context.Background(), d, DefaultScale)
				require.NoError(t, err)
				assert.Equal(t, 720, out.Width)
				assert.Equal(t, 1008, out.Height)
				assert.Equal(t, tpl.ID, out.Template)
				assert.Equal(t, withPhoto, out.PhotoUsed)

				img := decodePNG(t, out.PNG)
				assert.Equal(t, image.Rect(0, 0, 720, 1008), img.Bounds())
			})
		}
	}
}

func TestRender_BackgroundColour(t *testing.T) {
	d := sampleCard()
	d.TemplateID = models.TemplateFilipiniana

	out, err := Render(context.Background(), d, 1)
	require.NoError(t, err)

	img := decodePNG(t, out.PNG)
	r, g, b, _ := img.At(CardWidth/2, 4).RGBA()
	assert.Equal(t, [3]uint32{0xF5, 0xED, 0xE0}, [3]uint32{r >> 8, g >> 8, b >> 8})
}

func TestRender_Scale(t *testing.T) {
	out, err := Render(context.Background(), sampleCard(), 1)
	require.NoError(t, err)
	assert.Equal(t, CardWidth, out.Width)
	assert.Equal(t, CardHeight, out.Height)

	out, err = Render(context.Background(), sampleCard(), 0)
	require.NoError(t, err)
	assert.Equal(t, CardWidth*DefaultScale, out.Width)
}

func TestRender_UndecodablePhotoFallsBackToMonogram(t *testing.T) {
	d := sampleCard()
	for _, photo := range []string{
		"data:image/jpeg;base64,AAAA",
		EncodeDataURL("image/svg+xml", []byte(`<svg xmlns="http://www.w3.org/2000/svg"/>`)),
	} {
		photo := photo
		d.PhotoURL = &photo

		out, err := Render(context.Background(), d, 1)
		require.NoError(t, err)
		assert.False(t, out.PhotoUsed, photo)
	}
}

func TestRender_LongTextWraps(t *testing.T) {
	d := sampleCard()
	d.BrideName = strings.Repeat("Maria ", 8)
	d.CustomMessage = strings.Repeat("Join us in celebrating love. ", 6)

	for _, tpl := range Templates() {
		d.TemplateID = tpl.ID
		_, err := Render(context.Background(), d, 1)
		assert.NoError(t, err, tpl.ID)
	}
}

func TestRender_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	out, err := Render(ctx, sampleCard(), DefaultScale)
	assert.Nil(t, out)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRendered_DataURL(t *testing.T) {
	r := &Rendered{PNG: []byte{1, 2, 3}}
	assert.Equal(t, "data:image/png;base64,AQID", r.DataURL())
}

func TestCoverRect(t *testing.T) {
	// wide source is cropped left and right
	assert.Equal(t, image.Rect(50, 0, 150, 100), coverRect(image.Rect(0, 0, 200, 100), 10, 10))
	// tall source is cropped top and bottom
	assert.Equal(t, image.Rect(0, 25, 100, 75), coverRect(image.Rect(0, 0, 100, 100), 20, 10))
}
