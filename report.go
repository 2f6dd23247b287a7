package icongen

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Reporter prints human-readable progress lines. Markers are colored only when the destination is a terminal. A nil Reporter prints nothing.
type Reporter struct {
	Quiet bool

	stdout, stderr io.Writer
	ok, warn, done lipgloss.Style
}

// NewReporter returns a reporter that prints progress to stdout and warnings to stderr.
func NewReporter(stdout, stderr io.Writer) *Reporter {
	out := lipgloss.NewRenderer(stdout)
	errOut := lipgloss.NewRenderer(stderr)
	return &Reporter{
		stdout: stdout,
		stderr: stderr,
		ok:     out.NewStyle().Foreground(lipgloss.Color("2")),
		warn:   errOut.NewStyle().Foreground(lipgloss.Color("3")).Bold(true),
		done:   out.NewStyle().Foreground(lipgloss.Color("2")).Bold(true),
	}
}

func (r *Reporter) printf(format string, args ...interface{}) {
	if r == nil || r.Quiet {
		return
	}
	fmt.Fprintf(r.stdout, format, args...)
}

// Directory reports the output directory.
func (r *Reporter) Directory(dir string) {
	if r == nil {
		return
	}
	r.printf("%s Output directory: %s\n", r.ok.Render("✓"), dir)
}

// Generated reports a written icon.
func (r *Reporter) Generated(preset SizeConfig) {
	if r == nil {
		return
	}
	r.printf("%s Generated %s (%dx%d)\n", r.ok.Render("✓"), preset.Output, preset.Size, preset.Size)
}

// Warnf reports a recoverable problem. Warnings are printed even when quiet.
func (r *Reporter) Warnf(format string, args ...interface{}) {
	if r == nil {
		return
	}
	fmt.Fprintf(r.stderr, "%s %s\n", r.warn.Render("⚠ Warning:"), fmt.Sprintf(format, args...))
}

// Summary reports that all icons were written and lists the manual follow-up steps.
func (r *Reporter) Summary(dir string) {
	if r == nil {
		return
	}
	r.printf("\n")
	r.printf("%s\n", r.done.Render("✅ All icons generated successfully!"))
	r.printf("📁 Icon files: %s\n", dir)
	r.printf("\n")
	r.printf("Next steps:\n")
	r.printf("  1. Verify icons look correct: ls -lh %s\n", dir)
	r.printf("  2. Update vite.config.ts with icon paths\n")
	r.printf("  3. Update app.html with favicon and apple-touch-icon links\n")
}
