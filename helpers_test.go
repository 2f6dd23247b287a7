package icongen

import (
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-fonts/latin-modern/lmsans10regular"
	"github.com/tdewolff/test"
)

// sansFile writes a scalable font to a temporary file and returns its filename.
func sansFile(t *testing.T) string {
	t.Helper()
	filename := filepath.Join(t.TempDir(), "lmsans10-regular.otf")
	test.Error(t, os.WriteFile(filename, lmsans10regular.TTF, 0644))
	return filename
}

// missingFonts returns a chain of font files that do not exist followed by the built-in font.
func missingFonts(t *testing.T) FontChain {
	dir := t.TempDir()
	return FontChain{
		FontFile(filepath.Join(dir, "Supplemental", "Arial.ttf")),
		FontFile(filepath.Join(dir, "Arial.ttf")),
		Builtin(),
	}
}

func sameColor(a, b color.Color) bool {
	r0, g0, b0, a0 := a.RGBA()
	r1, g1, b1, a1 := b.RGBA()
	return r0 == r1 && g0 == g1 && b0 == b1 && a0 == a1
}

// inkBounds returns the smallest rectangle containing all pixels that differ from bg.
func inkBounds(img image.Image, bg color.Color) image.Rectangle {
	ink := image.Rectangle{}
	bounds := img.Bounds()
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			if !sameColor(img.At(x, y), bg) {
				ink = ink.Union(image.Rect(x, y, x+1, y+1))
			}
		}
	}
	return ink
}
