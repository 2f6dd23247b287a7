// Command icongen writes the PWA icons and favicon to <root>/static/icons.
//
// Relative paths, including the default root ".", are resolved against the current working directory, so run it from the project root:
//
//	go run ./cmd/icongen
package main

import (
	"fmt"
	"image/png"
	"io"
	"os"

	"github.com/smeraldo-hotel/icongen"
	"github.com/tdewolff/argp"
)

type Options struct {
	Root    string `short:"r" default:"." desc:"Project root relative to the working directory, icons are written to <root>/static/icons"`
	Output  string `short:"o" desc:"Output directory, overrides the project root"`
	Font    string `short:"f" desc:"Font file tried before the system fonts"`
	Family  string `desc:"System font family tried before the system fonts"`
	Quiet   bool   `short:"q" desc:"Suppress progress output"`
	Preview bool   `short:"p" desc:"Print the favicon as ASCII art"`
}

func (o *Options) Run() error {
	return run(*o, os.Stdout, os.Stderr)
}

func main() {
	cmd := argp.NewCmd(&Options{}, "Generate the PWA icons and favicon")
	cmd.Parse()
}

func run(options Options, stdout, stderr io.Writer) error {
	dir := options.Output
	if dir == "" {
		dir = icongen.DefaultDir(options.Root)
	}

	g := icongen.New(dir)
	g.Fonts = fontChain(options)
	g.Report = icongen.NewReporter(stdout, stderr)
	g.Report.Quiet = options.Quiet
	filenames, err := g.Generate()
	if err != nil {
		return err
	}
	if options.Preview && 0 < len(filenames) {
		return preview(stdout, filenames[len(filenames)-1])
	}
	return nil
}

func preview(w io.Writer, filename string) error {
	f, err := os.Open(filename)
	if err != nil {
		return err
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		return fmt.Errorf("failed to decode icon '%s': %w", filename, err)
	}
	fmt.Fprintln(w)
	return icongen.Preview(w, img, img.Bounds().Dx())
}

func fontChain(options Options) icongen.FontChain {
	chain := icongen.FontChain{}
	if options.Font != "" {
		chain = append(chain, icongen.FontFile(options.Font))
	}
	if options.Family != "" {
		chain = append(chain, icongen.SystemFont(options.Family, nil))
	}
	return append(chain, icongen.DefaultFontChain()...)
}
