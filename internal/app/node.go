package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/florist/internal/adapters/config"  //nolint:depguard // Wired in app layer
	"go.trai.ch/florist/internal/adapters/console" //nolint:depguard // Wired in app layer
	"go.trai.ch/florist/internal/adapters/logger"  //nolint:depguard // Wired in app layer
	"go.trai.ch/florist/internal/core/ports"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			console.NodeID,
		},
		Run: func(ctx context.Context) (*App, error) {
			loader, err := graft.Dep[ports.CatalogLoader](ctx)
			if err != nil {
				return nil, err
			}

			reader, err := graft.Dep[ports.IntReader](ctx)
			if err != nil {
				return nil, err
			}

			return New(loader, reader), nil
		},
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: runComponentsNode,
	})
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	app, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return &Components{
		App:    app,
		Logger: log,
	}, nil
}
