// Package app implements the application layer for florist.
package app

import (
	"context"
	"io"
	"os"

	"go.trai.ch/florist/internal/adapters/linear"
	"go.trai.ch/florist/internal/adapters/locale"
	"go.trai.ch/florist/internal/core/domain"
	"go.trai.ch/florist/internal/core/ports"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	loader ports.CatalogLoader
	reader ports.IntReader
	stdout io.Writer
}

// New creates a new App instance.
func New(loader ports.CatalogLoader, reader ports.IntReader) *App {
	return &App{
		loader: loader,
		reader: reader,
		stdout: os.Stdout,
	}
}

// WithOutput redirects the listings. This is primarily used for testing.
func (a *App) WithOutput(w io.Writer) *App {
	a.stdout = w
	return a
}

// RunOptions configuration for the Run method.
type RunOptions struct {
	// CatalogPath selects the catalog file. Empty means the built-in catalog.
	CatalogPath string
	// Language is a BCP 47 tag, "en" or "uk".
	Language string
	// Min and Max skip the prompts when both are set.
	Min *int
	Max *int
}

// Run shows the bouquet before and after sorting by freshness, then lists the
// flowers whose stem length lies in the requested range.
//
// Errors caused by the user, such as a rejected value or unreadable input, are
// reported on the listing output and Run returns nil. Any other error is returned.
func (a *App) Run(ctx context.Context, opts RunOptions) error {
	// 1. Validate options
	if (opts.Min == nil) != (opts.Max == nil) {
		return domain.ErrIncompleteRange
	}

	tag, err := locale.Parse(opts.Language)
	if err != nil {
		return err
	}

	printer, err := locale.NewPrinter(tag)
	if err != nil {
		return zerr.Wrap(err, "failed to initialize messages")
	}

	// 2. Initialize Renderer
	var renderer ports.Renderer = linear.NewRenderer(a.stdout, printer)

	// 3. Present
	base, _ := tag.Base()
	err = a.present(ctx, renderer, base.String(), opts)
	if err != nil && domain.IsUserError(err) {
		renderer.OnFailure(err)
		return nil
	}
	return err
}

func (a *App) present(ctx context.Context, renderer ports.Renderer, lang string, opts RunOptions) error {
	bouquet, err := a.loader.Load(opts.CatalogPath, lang)
	if err != nil {
		if domain.IsUserError(err) {
			return err
		}
		return zerr.Wrap(err, "failed to load catalog")
	}

	renderer.OnBouquet(ports.StageUnsorted, bouquet)
	bouquet.SortByFreshness()
	renderer.OnBouquet(ports.StageSorted, bouquet)

	minLength, maxLength, err := a.readRange(ctx, renderer, opts)
	if err != nil {
		return err
	}

	renderer.OnRange(minLength, maxLength)
	matches, err := bouquet.FindByStemLength(minLength, maxLength)
	if err != nil {
		return err
	}
	renderer.OnMatches(matches)

	return nil
}

func (a *App) readRange(ctx context.Context, renderer ports.Renderer, opts RunOptions) (int, int, error) {
	if opts.Min != nil && opts.Max != nil {
		return *opts.Min, *opts.Max, nil
	}

	minLength, err := a.reader.ReadInt(ctx, renderer.MinPrompt())
	if err != nil {
		return 0, 0, err
	}
	maxLength, err := a.reader.ReadInt(ctx, renderer.MaxPrompt())
	if err != nil {
		return 0, 0, err
	}
	return minLength, maxLength, nil
}
