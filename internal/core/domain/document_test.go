package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/gqltag/internal/core/domain"
)

func TestDocument_Append(t *testing.T) {
	doc := &domain.Document{Definitions: []domain.Definition{
		{Kind: domain.KindQuery, Name: "A"},
	}}
	doc.Append(&domain.Document{Definitions: []domain.Definition{
		{Kind: domain.KindFragment, Name: "B"},
		{Kind: domain.KindMutation, Name: "C"},
	}})

	assert.Equal(t, []string{"A", "B", "C"}, doc.Names())
}

func TestFile_WithSignature(t *testing.T) {
	f := domain.NewFile("src/a.ts")
	signed := f.WithSignature("cafe")

	assert.Empty(t, f.Signature)
	assert.Equal(t, "cafe", signed.Signature)
	assert.Equal(t, f.RelPath, signed.RelPath)
}
