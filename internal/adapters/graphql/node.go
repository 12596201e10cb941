package graphql

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/gqltag/internal/core/ports"
)

// NodeID is the unique identifier for the grammar parser Graft node.
const NodeID graft.ID = "adapter.graphql"

func init() {
	graft.Register(graft.Node[ports.DocumentParser]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.DocumentParser, error) {
			return NewParser(), nil
		},
	})
}
