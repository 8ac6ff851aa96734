package console

import (
	"context"
	"os"

	"github.com/grindlemire/graft"
	"go.trai.ch/florist/internal/core/ports"
)

// NodeID is the unique identifier for the console reader Graft node.
const NodeID graft.ID = "adapter.console"

func init() {
	graft.Register(graft.Node[ports.IntReader]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.IntReader, error) {
			return NewReader(os.Stdin, os.Stdout), nil
		},
	})
}
