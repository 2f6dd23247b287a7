package icongen

import (
	"bytes"
	"strings"
	"testing"

	"github.com/tdewolff/test"
)

func TestReporter(t *testing.T) {
	stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
	r := NewReporter(stdout, stderr)
	r.Directory("static/icons")
	r.Generated(Presets[0])
	r.Warnf("Using default font for %s (system fonts not found)", "favicon.png")
	r.Summary("static/icons")

	out := stdout.String()
	for _, line := range []string{
		"Output directory: static/icons\n",
		"Generated icon-512.png (512x512)\n",
		"All icons generated successfully!",
		"Icon files: static/icons\n",
		"Next steps:\n",
		"ls -lh static/icons\n",
		"vite.config.ts",
		"apple-touch-icon",
	} {
		test.That(t, strings.Contains(out, line), "missing:", line)
	}
	test.That(t, !strings.Contains(out, "Warning"))
	test.That(t, strings.Contains(stderr.String(), "Warning: Using default font for favicon.png (system fonts not found)\n"), stderr.String())
}

func TestReporterQuiet(t *testing.T) {
	stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
	r := NewReporter(stdout, stderr)
	r.Quiet = true
	r.Directory("icons")
	r.Generated(Presets[2])
	r.Summary("icons")
	r.Warnf("font %s", "missing")
	test.String(t, stdout.String(), "")
	test.That(t, strings.Contains(stderr.String(), "font missing"))
}

func TestReporterNil(t *testing.T) {
	var r *Reporter
	r.Directory("icons")
	r.Generated(Presets[0])
	r.Warnf("ignored")
	r.Summary("icons")
}
