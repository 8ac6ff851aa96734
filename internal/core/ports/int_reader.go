package ports

import "context"

// IntReader defines the interface for reading integers typed by the user.
//
//go:generate mockgen -source=int_reader.go -destination=mocks/mock_int_reader.go -package=mocks
type IntReader interface {
	// ReadInt shows prompt and blocks until the next integer is available.
	ReadInt(ctx context.Context, prompt string) (int, error)
}
