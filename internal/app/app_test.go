package app_test

import (
	"context"
	"iter"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/gqltag/internal/adapters/config"
	"go.trai.ch/gqltag/internal/adapters/fs"
	"go.trai.ch/gqltag/internal/adapters/graphql"
	"go.trai.ch/gqltag/internal/adapters/telemetry"
	"go.trai.ch/gqltag/internal/app"
	"go.trai.ch/gqltag/internal/core/domain"
	"go.trai.ch/gqltag/internal/core/ports"
	"go.trai.ch/gqltag/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

// nopLogger satisfies ports.Logger without output.
type nopLogger struct{}

func (nopLogger) Info(string) {}
func (nopLogger) Warn(string) {}
func (nopLogger) Error(error) {}

func writeProjectFile(t *testing.T, root, rel, content string) {
	t.Helper()
	path := filepath.Join(root, rel)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

// newProject lays out a minimal project with a config file and returns its
// root directory.
func newProject(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	writeProjectFile(t, root, domain.ConfigFileName, "version: \"1\"\n")
	return root
}

func newApp(w ports.Watcher) *app.App {
	return app.New(
		config.NewLoader(nopLogger{}),
		fs.NewReader(),
		fs.NewSigner(),
		graphql.NewParser(),
		nopLogger{},
		telemetry.NewNoOpTracer(),
		w,
	)
}

func TestApp_Scan(t *testing.T) {
	t.Run("collects definitions across files", func(t *testing.T) {
		root := newProject(t)
		writeProjectFile(t, root, "src/a.ts",
			"const TodoQuery = graphql`query Todos { todos { id } }`;\n"+
				"const TodoItem = graphql`fragment TodoItem on Todo { id }`;\n")
		writeProjectFile(t, root, "src/b.ts", "const plain = 1;\n")
		writeProjectFile(t, root, "src/c.tsx", "const AddTodo = graphql`mutation AddTodo { add { id } }`;\n")

		a := newApp(nil)
		report, err := a.Scan(context.Background(), app.ScanOptions{Dir: root})
		require.NoError(t, err)

		assert.Equal(t, 3, report.Matched)
		assert.Equal(t, 2, report.Parsed)
		assert.Equal(t, 1, report.Skipped)
		assert.Empty(t, report.Failures)

		var names []string
		for _, def := range report.Definitions {
			names = append(names, def.Name)
		}
		assert.Equal(t, []string{"Todos", "TodoItem", "AddTodo"}, names)
	})

	t.Run("reports failing files without aborting", func(t *testing.T) {
		root := newProject(t)
		writeProjectFile(t, root, "src/good.ts", "const Q = graphql`query Good { id }`;\n")
		writeProjectFile(t, root, "src/bad.ts", "const B = graphql`query Broken {`;\n")

		a := newApp(nil)
		report, err := a.Scan(context.Background(), app.ScanOptions{Dir: root})
		require.ErrorIs(t, err, domain.ErrScanFailed)
		require.NotNil(t, report)

		assert.Equal(t, 1, report.Parsed)
		require.Len(t, report.Failures, 1)
		assert.Equal(t, "src/bad.ts", report.Failures[0].Path)
		assert.Equal(t, []string{"Good"}, report.Names())
	})

	t.Run("missing configuration", func(t *testing.T) {
		a := newApp(nil)
		_, err := a.Scan(context.Background(), app.ScanOptions{Dir: t.TempDir()})
		require.ErrorIs(t, err, domain.ErrConfigNotFound)
	})

	t.Run("schemafile project", func(t *testing.T) {
		root := t.TempDir()
		writeProjectFile(t, root, domain.ConfigFileName,
			"extractor: schemafile\ninclude:\n  - \"**.graphql\"\n")
		writeProjectFile(t, root, "queries/todos.graphql", "query Todos { todos { id } }\n")

		a := newApp(nil)
		report, err := a.Scan(context.Background(), app.ScanOptions{Dir: root})
		require.NoError(t, err)

		assert.Equal(t, 1, report.Parsed)
		require.Len(t, report.Definitions, 1)
		assert.Equal(t, "Todos", report.Definitions[0].Name)
	})
}

func TestApp_Watch(t *testing.T) {
	root := newProject(t)
	writeProjectFile(t, root, "src/a.ts", "const Q = graphql`query First { id }`;\n")

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	events := func(yield func(ports.WatchEvent) bool) {
		// The change lands before the event, like a real write would.
		writeProjectFile(t, root, "src/a.ts", "const Q = graphql`query Second { id }`;\n")
		yield(ports.WatchEvent{Path: filepath.Join(root, "src/a.ts"), Operation: ports.OpWrite})
	}

	w := mocks.NewMockWatcher(ctrl)
	w.EXPECT().Start(gomock.Any(), filepath.Clean(root)).Return(nil)
	w.EXPECT().Events().Return(iter.Seq[ports.WatchEvent](events))
	w.EXPECT().Stop().Return(nil)

	updates := make(chan *app.ScanReport, 1)

	a := newApp(w)
	err := a.Watch(context.Background(), app.WatchOptions{
		Dir:      root,
		Debounce: time.Hour, // only Flush on shutdown fires
		OnUpdate: func(r *app.ScanReport) { updates <- r },
	})
	require.NoError(t, err)

	select {
	case report := <-updates:
		require.Len(t, report.Definitions, 1)
		assert.Equal(t, "Second", report.Definitions[0].Name)
	case <-time.After(5 * time.Second):
		t.Fatal("no update received")
	}
}
