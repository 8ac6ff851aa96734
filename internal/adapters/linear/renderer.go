// Package linear provides a synchronous, line-oriented renderer for bouquet listings.
package linear

import (
	"fmt"
	"io"
	"os"

	"go.trai.ch/florist/internal/adapters/locale"
	"go.trai.ch/florist/internal/core/domain"
	"go.trai.ch/florist/internal/core/ports"
)

// Renderer implements ports.Renderer by writing plain text lines.
// Every block starts with an empty line so consecutive sections stay apart.
type Renderer struct {
	stdout  io.Writer
	printer *locale.Printer
}

var _ ports.Renderer = (*Renderer)(nil)

// NewRenderer creates a Renderer writing to stdout in the printer's language.
// A nil writer means os.Stdout.
func NewRenderer(stdout io.Writer, printer *locale.Printer) *Renderer {
	if stdout == nil {
		stdout = os.Stdout
	}
	return &Renderer{stdout: stdout, printer: printer}
}

// OnBouquet prints the stage heading followed by the bouquet listing.
func (r *Renderer) OnBouquet(stage ports.Stage, bouquet *domain.Bouquet) {
	heading := r.printer.UnsortedHeading()
	if stage == ports.StageSorted {
		heading = r.printer.SortedHeading()
	}
	_, _ = fmt.Fprintf(r.stdout, "\n%s\n%s\n", heading, r.printer.Bouquet(bouquet))
}

// OnRange prints the heading for the stem length search.
func (r *Renderer) OnRange(minLength, maxLength int) {
	_, _ = fmt.Fprintf(r.stdout, "\n%s\n", r.printer.RangeHeading(minLength, maxLength))
}

// OnMatches prints one line per matching flower. No matches print nothing.
func (r *Renderer) OnMatches(flowers []domain.Flower) {
	for _, f := range flowers {
		_, _ = fmt.Fprintln(r.stdout, r.printer.Flower(f))
	}
}

// OnFailure prints the localized error line.
func (r *Renderer) OnFailure(err error) {
	_, _ = fmt.Fprintln(r.stdout, r.printer.Failure(err))
}

// MinPrompt returns the lower bound prompt, preceded by a blank line.
func (r *Renderer) MinPrompt() string {
	return "\n" + r.printer.MinPrompt()
}

// MaxPrompt returns the upper bound prompt.
func (r *Renderer) MaxPrompt() string {
	return r.printer.MaxPrompt()
}
