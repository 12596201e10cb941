package extract_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/gqltag/internal/adapters/extract"
	"go.trai.ch/gqltag/internal/adapters/fs"
	"go.trai.ch/gqltag/internal/core/domain"
)

// countingExtractor records how often the wrapped extractor actually runs.
type countingExtractor struct {
	calls int
	spans []domain.LiteralSpan
	err   error
}

func (c *countingExtractor) Extract(_, _ string, _ domain.File, _ domain.ExtractOptions) ([]domain.LiteralSpan, error) {
	c.calls++
	return c.spans, c.err
}

func TestMemoized_Extract(t *testing.T) {
	file := domain.NewFile("src/a.ts")
	text := "const Q = graphql`query Q { id }`;"

	t.Run("unchanged text extracts once", func(t *testing.T) {
		inner := &countingExtractor{spans: []domain.LiteralSpan{{Text: "query Q { id }", Name: "Q"}}}
		m := extract.NewMemoized(inner, fs.NewSigner())

		first, err := m.Extract(text, "", file, domain.ExtractOptions{})
		require.NoError(t, err)
		second, err := m.Extract(text, "", file, domain.ExtractOptions{})
		require.NoError(t, err)

		assert.Equal(t, first, second)
		assert.Equal(t, 1, inner.calls)
	})

	t.Run("changed text re-extracts", func(t *testing.T) {
		inner := &countingExtractor{}
		m := extract.NewMemoized(inner, fs.NewSigner())

		_, err := m.Extract(text, "", file, domain.ExtractOptions{})
		require.NoError(t, err)
		_, err = m.Extract(text+"\n", "", file, domain.ExtractOptions{})
		require.NoError(t, err)

		assert.Equal(t, 2, inner.calls)
	})

	t.Run("same text under a different path re-extracts", func(t *testing.T) {
		inner := &countingExtractor{}
		m := extract.NewMemoized(inner, fs.NewSigner())

		_, err := m.Extract(text, "", file, domain.ExtractOptions{})
		require.NoError(t, err)
		_, err = m.Extract(text, "", domain.NewFile("src/b.ts"), domain.ExtractOptions{})
		require.NoError(t, err)

		assert.Equal(t, 2, inner.calls)
	})

	t.Run("options are part of the key", func(t *testing.T) {
		inner := &countingExtractor{}
		m := extract.NewMemoized(inner, fs.NewSigner())

		_, err := m.Extract(text, "", file, domain.ExtractOptions{})
		require.NoError(t, err)
		_, err = m.Extract(text, "", file, domain.ExtractOptions{ValidateNames: true})
		require.NoError(t, err)

		assert.Equal(t, 2, inner.calls)
	})

	t.Run("failures are not cached", func(t *testing.T) {
		inner := &countingExtractor{err: errors.New("boom")}
		m := extract.NewMemoized(inner, fs.NewSigner())

		_, err := m.Extract(text, "", file, domain.ExtractOptions{})
		require.Error(t, err)
		_, err = m.Extract(text, "", file, domain.ExtractOptions{})
		require.Error(t, err)

		assert.Equal(t, 2, inner.calls)
	})
}

func TestMemoized_Forget(t *testing.T) {
	inner := &countingExtractor{}
	m := extract.NewMemoized(inner, fs.NewSigner())
	file := domain.NewFile("src/a.ts")

	_, err := m.Extract("text", "", file, domain.ExtractOptions{})
	require.NoError(t, err)

	m.Forget("src/a.ts")

	_, err = m.Extract("text", "", file, domain.ExtractOptions{})
	require.NoError(t, err)
	assert.Equal(t, 2, inner.calls)
}
