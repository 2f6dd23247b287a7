package icongen

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// Render draws s on a new square image of the given size filled with bg. The ink bounds of s, not its advance box, are centered on the image.
func Render(face font.Face, size int, s string, bg, fg color.Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.Draw(img, img.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)

	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(fg),
		Face: face,
		Dot:  Origin(face, size, s),
	}
	d.DrawString(s)
	return img
}

// Origin returns the dot at which s must be drawn so that its ink bounds are centered on a square of the given size.
func Origin(face font.Face, size int, s string) fixed.Point26_6 {
	bounds := InkBounds(face, s)
	ink := bounds.Max.Sub(bounds.Min)
	return fixed.Point26_6{
		X: (fixed.I(size)-ink.X)/2 - bounds.Min.X,
		Y: (fixed.I(size)-ink.Y)/2 - bounds.Min.Y,
	}
}

// InkBounds returns the bounds of s relative to the dot, narrowed to the pixels its glyph masks actually cover. Bitmap faces such as basicfont report the whole glyph cell from font.BoundString.
func InkBounds(face font.Face, s string) fixed.Rectangle26_6 {
	bounds, _ := font.BoundString(face, s)

	ink := image.Rectangle{}
	dot := fixed.Point26_6{}
	prev := rune(-1)
	for _, r := range s {
		if 0 <= prev {
			dot.X += face.Kern(prev, r)
		}
		dr, mask, maskp, advance, _ := face.Glyph(dot, r)
		if mask != nil {
			for y := dr.Min.Y; y < dr.Max.Y; y++ {
				for x := dr.Min.X; x < dr.Max.X; x++ {
					if _, _, _, a := mask.At(maskp.X+x-dr.Min.X, maskp.Y+y-dr.Min.Y).RGBA(); a != 0 {
						ink = ink.Union(image.Rect(x, y, x+1, y+1))
					}
				}
			}
		}
		dot.X += advance
		prev = r
	}
	if ink.Empty() {
		return bounds
	}

	// outline bounds are tighter than the rasterized mask for scalable faces
	if tight := bounds.Intersect(fixed.R(ink.Min.X, ink.Min.Y, ink.Max.X, ink.Max.Y)); !tight.Empty() {
		return tight
	}
	return bounds
}
