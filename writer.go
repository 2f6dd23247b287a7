package icongen

import (
	"image"
	"image/png"
	"io"
	"os"
)

// Writer encodes an image to w.
type Writer func(w io.Writer, img image.Image) error

// PNGWriter writes the image as a PNG file. Opaque images are stored without an alpha channel.
func PNGWriter() Writer {
	enc := &png.Encoder{CompressionLevel: png.BestCompression}
	return func(w io.Writer, img image.Image) error {
		return enc.Encode(w, img)
	}
}

// WriteFile encodes img with writer to filename, truncating the file if it exists.
func WriteFile(filename string, img image.Image, writer Writer) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	if err := writer(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
