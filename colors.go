package icongen

import "image/color"

// RGB returns an opaque color given by red, green, and blue ∈ [0,255].
func RGB(r, g, b uint8) color.RGBA {
	return color.RGBA{r, g, b, 0xff}
}

// BrandColor is the background fill of every icon (#1E3A8A).
var BrandColor = RGB(30, 58, 138)

// TextColor is the color of the glyph.
var TextColor = RGB(255, 255, 255)
