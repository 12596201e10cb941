package parser_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/gqltag/internal/core/domain"
	"go.trai.ch/gqltag/internal/core/ports/mocks"
	"go.trai.ch/gqltag/internal/engine/parser"
	"go.uber.org/mock/gomock"
)

func TestParser_ParseFileWithSources(t *testing.T) {
	file := domain.NewFile("src/todos.ts")

	t.Run("combines spans in extraction order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		text := "const A = graphql`query A { a }`; const B = graphql`fragment B on T { b }`;"

		reader := mocks.NewMockSourceReader(ctrl)
		reader.EXPECT().ReadText("proj", "src/todos.ts").Return(text, nil)

		extractor := mocks.NewMockTagExtractor(ctrl)
		extractor.EXPECT().Extract(text, "proj", file, domain.ExtractOptions{}).Return([]domain.LiteralSpan{
			{Text: "query A { a }", Name: "A", FilePath: "src/todos.ts"},
			{Text: "fragment B on T { b }", Name: "B", FilePath: "src/todos.ts"},
		}, nil)

		grammar := mocks.NewMockDocumentParser(ctrl)
		grammar.EXPECT().Parse("query A { a }", "src/todos.ts").Return(&domain.Document{
			Definitions: []domain.Definition{{Kind: domain.KindQuery, Name: "A"}},
		}, nil)
		grammar.EXPECT().Parse("fragment B on T { b }", "src/todos.ts").Return(&domain.Document{
			Definitions: []domain.Definition{{Kind: domain.KindFragment, Name: "B"}},
		}, nil)

		p := parser.New(reader, extractor, grammar, "graphql", domain.ExtractOptions{})

		doc, sources, err := p.ParseFileWithSources(context.Background(), "proj", file)
		require.NoError(t, err)

		assert.Equal(t, []string{"A", "B"}, doc.Names())
		assert.Equal(t, []string{"query A { a }", "fragment B on T { b }"}, sources)
	})

	t.Run("missing marker violates the precondition", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		reader := mocks.NewMockSourceReader(ctrl)
		reader.EXPECT().ReadText("proj", "src/todos.ts").Return("const x = 1;", nil)

		p := parser.New(reader, mocks.NewMockTagExtractor(ctrl), mocks.NewMockDocumentParser(ctrl), "graphql", domain.ExtractOptions{})

		_, _, err := p.ParseFileWithSources(context.Background(), "proj", file)
		require.ErrorIs(t, err, domain.ErrPreconditionViolated)
	})

	t.Run("empty marker accepts any file", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		reader := mocks.NewMockSourceReader(ctrl)
		reader.EXPECT().ReadText("proj", "src/todos.ts").Return("type Query { id: ID }", nil)

		extractor := mocks.NewMockTagExtractor(ctrl)
		extractor.EXPECT().Extract(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)

		p := parser.New(reader, extractor, mocks.NewMockDocumentParser(ctrl), "", domain.ExtractOptions{})

		doc, sources, err := p.ParseFileWithSources(context.Background(), "proj", file)
		require.NoError(t, err)
		assert.Empty(t, doc.Definitions)
		assert.Empty(t, sources)
	})

	t.Run("read failure propagates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		readErr := errors.New("permission denied")
		reader := mocks.NewMockSourceReader(ctrl)
		reader.EXPECT().ReadText("proj", "src/todos.ts").Return("", readErr)

		p := parser.New(reader, mocks.NewMockTagExtractor(ctrl), mocks.NewMockDocumentParser(ctrl), "graphql", domain.ExtractOptions{})

		_, _, err := p.ParseFileWithSources(context.Background(), "proj", file)
		require.ErrorIs(t, err, readErr)
	})

	t.Run("empty literal fails the whole file", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		reader := mocks.NewMockSourceReader(ctrl)
		reader.EXPECT().ReadText("proj", "src/todos.ts").Return("graphql``", nil)

		extractor := mocks.NewMockTagExtractor(ctrl)
		extractor.EXPECT().Extract(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return([]domain.LiteralSpan{
			{Text: "", FilePath: "src/todos.ts"},
		}, nil)

		grammar := mocks.NewMockDocumentParser(ctrl)
		grammar.EXPECT().Parse("", "src/todos.ts").Return(&domain.Document{}, nil)

		p := parser.New(reader, extractor, grammar, "graphql", domain.ExtractOptions{})

		_, _, err := p.ParseFileWithSources(context.Background(), "proj", file)
		require.ErrorIs(t, err, domain.ErrMalformedLiteral)
	})

	t.Run("grammar failure propagates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		reader := mocks.NewMockSourceReader(ctrl)
		reader.EXPECT().ReadText("proj", "src/todos.ts").Return("graphql`query {`", nil)

		extractor := mocks.NewMockTagExtractor(ctrl)
		extractor.EXPECT().Extract(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return([]domain.LiteralSpan{
			{Text: "query {", FilePath: "src/todos.ts"},
		}, nil)

		parseErr := errors.New("unexpected EOF")
		grammar := mocks.NewMockDocumentParser(ctrl)
		grammar.EXPECT().Parse("query {", "src/todos.ts").Return(nil, parseErr)

		p := parser.New(reader, extractor, grammar, "graphql", domain.ExtractOptions{})

		_, _, err := p.ParseFileWithSources(context.Background(), "proj", file)
		require.ErrorIs(t, err, parseErr)
	})
}

func TestParser_FileFilter(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	reader := mocks.NewMockSourceReader(ctrl)
	reader.EXPECT().ReadText("proj", "with.ts").Return("const Q = graphql`query { id }`;", nil)
	reader.EXPECT().ReadText("proj", "without.ts").Return("const x = 1;", nil)
	reader.EXPECT().ReadText("proj", "missing.ts").Return("", errors.New("no such file"))

	p := parser.New(reader, mocks.NewMockTagExtractor(ctrl), mocks.NewMockDocumentParser(ctrl), "graphql", domain.ExtractOptions{})
	filter := p.FileFilter("proj")

	assert.True(t, filter(domain.NewFile("with.ts")))
	assert.False(t, filter(domain.NewFile("without.ts")))
	assert.False(t, filter(domain.NewFile("missing.ts")))
}
