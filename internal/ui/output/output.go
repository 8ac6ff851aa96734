// Package output creates lipgloss renderers with a consistent colour profile.
package output

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// ColorProfile returns Ascii when NO_COLOR is set and the detected terminal
// profile otherwise.
func ColorProfile() termenv.Profile {
	if os.Getenv("NO_COLOR") != "" {
		return termenv.Ascii
	}
	return termenv.EnvColorProfile()
}

// NewRenderer creates a lipgloss.Renderer for w using ColorProfile.
// A nil writer means os.Stderr.
func NewRenderer(w io.Writer) *lipgloss.Renderer {
	if w == nil {
		w = os.Stderr
	}

	r := lipgloss.NewRenderer(w, termenv.WithTTY(true))
	r.SetColorProfile(ColorProfile())
	return r
}
