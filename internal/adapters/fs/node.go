package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/gqltag/internal/core/ports"
)

const (
	// ReaderNodeID is the unique identifier for the source reader Graft node.
	ReaderNodeID graft.ID = "adapter.fs.reader"
	// SignerNodeID is the unique identifier for the content signer Graft node.
	SignerNodeID graft.ID = "adapter.fs.signer"
)

func init() {
	graft.Register(graft.Node[ports.SourceReader]{
		ID:        ReaderNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.SourceReader, error) {
			return NewReader(), nil
		},
	})

	graft.Register(graft.Node[ports.Signer]{
		ID:        SignerNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Signer, error) {
			return NewSigner(), nil
		},
	})
}
