// Package icongen renders the application icons: a centered letter on a solid brand color, written as PNG files in a fixed set of sizes.
package icongen

import (
	"fmt"
	"os"
	"path/filepath"
)

// Generator writes one PNG file per preset into Dir.
type Generator struct {
	Dir     string
	Presets []SizeConfig
	Fonts   FontChain
	Writer  Writer
	Report  *Reporter
}

// New returns a generator for the default presets and font chain that writes into dir.
func New(dir string) *Generator {
	return &Generator{
		Dir:     dir,
		Presets: Presets,
		Fonts:   DefaultFontChain(),
		Writer:  PNGWriter(),
	}
}

// Generate creates the output directory if needed and writes the icons in order. It returns the written filenames. Files written before an error are left in place.
func (g *Generator) Generate() ([]string, error) {
	if err := os.MkdirAll(g.Dir, DirPerm); err != nil {
		return nil, fmt.Errorf("failed to create output directory '%s': %w", g.Dir, err)
	}
	g.Report.Directory(g.Dir)

	filenames := make([]string, 0, len(g.Presets))
	for _, preset := range g.Presets {
		filename, err := g.generate(preset)
		if err != nil {
			return filenames, err
		}
		filenames = append(filenames, filename)
	}
	g.Report.Summary(g.Dir)
	return filenames, nil
}

func (g *Generator) generate(preset SizeConfig) (string, error) {
	face, src, err := g.Fonts.Resolve(preset.FontSize)
	if err != nil {
		return "", fmt.Errorf("%s: %w", preset.Output, err)
	}
	defer face.Close()
	if IsBuiltin(src) {
		// the built-in font has a fixed size
		g.Report.Warnf("Using default font for %s (system fonts not found)", preset.Output)
	}

	img := Render(face, preset.Size, Glyph, BrandColor, TextColor)

	writer := g.Writer
	if writer == nil {
		writer = PNGWriter()
	}
	filename := filepath.Join(g.Dir, preset.Output)
	if err := WriteFile(filename, img, writer); err != nil {
		return "", fmt.Errorf("failed to write icon '%s': %w", filename, err)
	}
	g.Report.Generated(preset)
	return filename, nil
}
