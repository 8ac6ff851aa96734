package output_test

import (
	"bytes"
	"testing"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"go.trai.ch/florist/internal/ui/output"
	"go.trai.ch/florist/internal/ui/style"
)

func TestColorProfile(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	assert.Equal(t, termenv.Ascii, output.ColorProfile(), "NO_COLOR should force Ascii profile")

	t.Setenv("NO_COLOR", "")
	p := output.ColorProfile()
	assert.True(t, p >= termenv.TrueColor && p <= termenv.Ascii, "should return a valid profile")
}

func TestNewRenderer(t *testing.T) {
	t.Run("plain without colour", func(t *testing.T) {
		t.Setenv("NO_COLOR", "1")
		r := output.NewRenderer(new(bytes.Buffer))

		assert.Equal(t, termenv.Ascii, r.ColorProfile())
		assert.Equal(t, "rose", r.NewStyle().Foreground(style.Petal).Render("rose"))
	})

	t.Run("escape codes with a colour profile", func(t *testing.T) {
		r := output.NewRenderer(new(bytes.Buffer))
		r.SetColorProfile(termenv.ANSI)

		got := r.NewStyle().Foreground(style.Petal).Render("rose")
		assert.Contains(t, got, "rose")
		assert.Contains(t, got, "\x1b[")
	})

	t.Run("nil writer", func(t *testing.T) {
		assert.NotNil(t, output.NewRenderer(nil))
	})
}
