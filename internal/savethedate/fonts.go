// internal/savethedate/fonts.go
package savethedate

import (
	"sync"

	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomedium"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

type fontSet struct {
	regular, medium, bold, italic, boldItalic *opentype.Font
}

var (
	fontsOnce sync.Once
	fonts     *fontSet
	fontsErr  error
)

// loadFonts parses the embedded Go fonts once per process.
func loadFonts() (*fontSet, error) {
	fontsOnce.Do(func() {
		parse := func(ttf []byte) *opentype.Font {
			if fontsErr != nil {
				return nil
			}
			f, err := opentype.Parse(ttf)
			if err != nil {
				fontsErr = err
			}
			return f
		}
		set := &fontSet{
			regular:    parse(goregular.TTF),
			medium:     parse(gomedium.TTF),
			bold:       parse(gobold.TTF),
			italic:     parse(goitalic.TTF),
			boldItalic: parse(gobolditalic.TTF),
		}
		if fontsErr == nil {
			fonts = set
		}
	})
	return fonts, fontsErr
}

func (s *fontSet) get(w weight) *opentype.Font {
	switch w {
	case weightMedium:
		return s.medium
	case weightBold:
		return s.bold
	case weightItalic:
		return s.italic
	case weightBoldItalic:
		return s.boldItalic
	default:
		return s.regular
	}
}
