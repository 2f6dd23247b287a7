package icongen

import "path/filepath"

// Glyph is the text drawn on every icon.
const Glyph = "S"

// DirPerm is the permission used for created output directories.
const DirPerm = 0755

// SizeConfig describes one square icon: its size in pixels, the file it is written to, and the font size in points requested for the glyph.
type SizeConfig struct {
	Size     int
	Output   string
	FontSize float64
}

// Presets are the icons that are generated, in order.
var Presets = []SizeConfig{
	{Size: 512, Output: "icon-512.png", FontSize: 320},
	{Size: 192, Output: "icon-192.png", FontSize: 120},
	{Size: 48, Output: "favicon.png", FontSize: 30},
}

// DefaultDir returns the icons directory of the web application rooted at root.
func DefaultDir(root string) string {
	return filepath.Join(root, "static", "icons")
}
