package icongen

import (
	"bufio"
	"image"
	"image/color"
	"io"

	"golang.org/x/image/draw"
)

var asciiPalette = []byte("$@B%8&WM#*oahkbdpqwmZO0QLCJUYXzcvunxrjft/\\|()1{}[]?-_+~<>i!lI;:,\"^`'. ")

// Preview prints img to w as ASCII art that is width characters wide. Terminal cells are about twice as high as wide, so rows are halved. Brighter pixels map to lighter characters.
func Preview(w io.Writer, img image.Image, width int) error {
	size := img.Bounds().Size()
	if width <= 0 || size.X == 0 || size.Y == 0 {
		return nil
	}
	height := (width*size.Y/size.X + 1) / 2
	if height == 0 {
		height = 1
	}

	scaled := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.ApproxBiLinear.Scale(scaled, scaled.Bounds(), img, img.Bounds(), draw.Src, nil)

	bw := bufio.NewWriter(w)
	for j := 0; j < height; j++ {
		for i := 0; i < width; i++ {
			c := scaled.RGBAAt(i, j)
			y, _, _ := color.RGBToYCbCr(c.R, c.G, c.B)
			idx := int(float64(y)/255.0*float64(len(asciiPalette)-1) + 0.5)
			bw.WriteByte(asciiPalette[idx])
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}
