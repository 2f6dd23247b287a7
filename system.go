package icongen

import (
	"fmt"

	tdFont "github.com/tdewolff/font"
	"golang.org/x/image/font"
)

type systemFont struct {
	family string
	dirs   []string

	// set after the first lookup
	resolved bool
	filename string
	err      error
}

// SystemFont returns a source that looks up the regular style of a font family in the given font directories. If dirs is nil, the platform's default font directories are searched. Generic names such as sans-serif are matched against a list of common families.
func SystemFont(family string, dirs []string) FontSource {
	return &systemFont{
		family: family,
		dirs:   dirs,
	}
}

func (src *systemFont) Name() string {
	return src.family
}

func (src *systemFont) Face(size float64) (font.Face, error) {
	if !src.resolved {
		src.filename, src.err = src.lookup()
		src.resolved = true
	}
	if src.err != nil {
		return nil, src.err
	}
	return FontFile(src.filename).Face(size)
}

func (src *systemFont) lookup() (string, error) {
	dirs := src.dirs
	if dirs == nil {
		dirs = tdFont.DefaultFontDirs()
	}
	fonts, err := tdFont.FindSystemFonts(dirs)
	if err != nil {
		return "", err
	}
	metadata, ok := fonts.Match(src.family, tdFont.Regular)
	if !ok {
		return "", fmt.Errorf("font family '%s' not found", src.family)
	}
	return metadata.Filename, nil
}
