package icongen

import (
	"errors"
	"fmt"
	"os"

	tdFont "github.com/tdewolff/font"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"
)

// DPI is the resolution at which font sizes are converted to pixels. At 72 DPI one point equals one pixel.
const DPI = 72.0

// SystemFontFiles are the font files tried, in order, before falling back to the built-in font.
var SystemFontFiles = []string{
	"/System/Library/Fonts/Supplemental/Arial.ttf",
	"/Library/Fonts/Arial.ttf",
}

// FontSource loads a font face at a given size in points.
type FontSource interface {
	Name() string
	Face(size float64) (font.Face, error)
}

// FontChain is an ordered list of font sources. The first source that loads is used.
type FontChain []FontSource

// DefaultFontChain returns the system font files followed by the built-in font.
func DefaultFontChain() FontChain {
	chain := FontChain{}
	for _, filename := range SystemFontFiles {
		chain = append(chain, FontFile(filename))
	}
	return append(chain, Builtin())
}

// Resolve returns the face of the first source in the chain that loads, together with that source. It fails only when all sources fail.
func (chain FontChain) Resolve(size float64) (font.Face, FontSource, error) {
	var errs []error
	for _, src := range chain {
		face, err := src.Face(size)
		if err == nil {
			return face, src, nil
		}
		errs = append(errs, fmt.Errorf("%s: %w", src.Name(), err))
	}
	if len(errs) == 0 {
		return nil, nil, fmt.Errorf("no font sources")
	}
	return nil, nil, fmt.Errorf("no font could be loaded: %w", errors.Join(errs...))
}

type fontFile struct {
	filename string
}

// FontFile returns a source that loads a TTF, OTF, WOFF, WOFF2, or EOT font from a file.
func FontFile(filename string) FontSource {
	return fontFile{filename}
}

func (src fontFile) Name() string {
	return src.filename
}

func (src fontFile) Face(size float64) (font.Face, error) {
	b, err := os.ReadFile(src.filename)
	if err != nil {
		return nil, fmt.Errorf("failed to load font file '%s': %w", src.filename, err)
	}
	face, err := ParseFace(b, size)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font file '%s': %w", src.filename, err)
	}
	return face, nil
}

// ParseFace parses a font from memory and returns its face at the given size in points. Web font containers are converted to SFNT first.
func ParseFace(b []byte, size float64) (font.Face, error) {
	if size <= 0.0 {
		return nil, fmt.Errorf("invalid font size %v", size)
	}
	sfnt, err := tdFont.ToSFNT(b)
	if err != nil {
		return nil, err
	}
	f, err := opentype.Parse(sfnt)
	if err != nil {
		return nil, err
	}
	return opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     DPI,
		Hinting: font.HintingFull,
	})
}

type builtin struct{}

// Builtin returns a source for the built-in 7x13 bitmap font. It always loads but ignores the requested size.
func Builtin() FontSource {
	return builtin{}
}

func (builtin) Name() string {
	return "builtin"
}

func (builtin) Face(float64) (font.Face, error) {
	return basicfont.Face7x13, nil
}

// IsBuiltin returns true if src is the built-in bitmap font.
func IsBuiltin(src FontSource) bool {
	_, ok := src.(builtin)
	return ok
}
