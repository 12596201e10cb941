package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/gqltag/internal/adapters/config"
	"go.trai.ch/gqltag/internal/adapters/fs"
	"go.trai.ch/gqltag/internal/adapters/graphql"
	"go.trai.ch/gqltag/internal/adapters/logger"
	"go.trai.ch/gqltag/internal/adapters/telemetry"
	"go.trai.ch/gqltag/internal/adapters/watcher"
	"go.trai.ch/gqltag/internal/core/ports"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	// App Node
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			fs.ReaderNodeID,
			fs.SignerNodeID,
			graphql.NodeID,
			logger.NodeID,
			telemetry.TracerNodeID,
			watcher.WatcherNodeID,
		},
		Run: runAppNode,
	})

	// Components Node
	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			a, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return &Components{App: a, Logger: log}, nil
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	reader, err := graft.Dep[ports.SourceReader](ctx)
	if err != nil {
		return nil, err
	}

	signer, err := graft.Dep[ports.Signer](ctx)
	if err != nil {
		return nil, err
	}

	grammar, err := graft.Dep[ports.DocumentParser](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	tracer, err := graft.Dep[ports.Tracer](ctx)
	if err != nil {
		return nil, err
	}

	w, err := graft.Dep[ports.Watcher](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, reader, signer, grammar, log, tracer, w), nil
}
