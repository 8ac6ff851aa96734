// Package console reads integers typed on standard input.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"

	"go.trai.ch/florist/internal/core/domain"
	"go.trai.ch/florist/internal/core/ports"
	"go.trai.ch/zerr"
)

// Reader implements ports.IntReader over whitespace separated tokens.
type Reader struct {
	scanner *bufio.Scanner
	prompts io.Writer
}

var _ ports.IntReader = (*Reader)(nil)

// NewReader creates a Reader that scans in and writes prompts to prompts.
// A nil prompts writer discards them.
func NewReader(in io.Reader, prompts io.Writer) *Reader {
	scanner := bufio.NewScanner(in)
	scanner.Split(bufio.ScanWords)
	if prompts == nil {
		prompts = io.Discard
	}
	return &Reader{scanner: scanner, prompts: prompts}
}

// ReadInt writes prompt and parses the next token as a base 10 integer.
// Several values may share one line.
func (r *Reader) ReadInt(ctx context.Context, prompt string) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	if prompt != "" {
		if _, err := fmt.Fprint(r.prompts, prompt); err != nil {
			return 0, zerr.Wrap(err, "failed to write prompt")
		}
	}

	if !r.scanner.Scan() {
		return 0, scanError(r.scanner.Err())
	}

	if err := ctx.Err(); err != nil {
		return 0, err
	}

	token := r.scanner.Text()
	value, err := strconv.Atoi(token)
	if err != nil {
		return 0, zerr.With(zerr.Wrap(domain.ErrMalformedInput, ""), "input", token)
	}
	return value, nil
}

// scanError maps a failed scan to a user error. A token too long to buffer is
// malformed input; any other read failure ends the input.
func scanError(err error) error {
	switch {
	case err == nil:
		return domain.ErrMissingInput
	case errors.Is(err, bufio.ErrTooLong):
		return zerr.With(zerr.Wrap(domain.ErrMalformedInput, ""), "cause", err.Error())
	default:
		return zerr.With(zerr.Wrap(domain.ErrMissingInput, ""), "cause", err.Error())
	}
}
