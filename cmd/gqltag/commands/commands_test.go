package commands_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/gqltag/cmd/gqltag/commands"
	"go.trai.ch/gqltag/internal/app"
	"go.trai.ch/gqltag/internal/build"
	"go.trai.ch/gqltag/internal/core/domain"
)

type mockApp struct {
	scanFunc  func(ctx context.Context, opts app.ScanOptions) (*app.ScanReport, error)
	watchFunc func(ctx context.Context, opts app.WatchOptions) error
}

func (m *mockApp) Scan(ctx context.Context, opts app.ScanOptions) (*app.ScanReport, error) {
	if m.scanFunc != nil {
		return m.scanFunc(ctx, opts)
	}
	return &app.ScanReport{}, nil
}

func (m *mockApp) Watch(ctx context.Context, opts app.WatchOptions) error {
	if m.watchFunc != nil {
		return m.watchFunc(ctx, opts)
	}
	return nil
}

func TestCommands_Scan(t *testing.T) {
	t.Run("wires flags correctly", func(t *testing.T) {
		var capturedOpts app.ScanOptions
		called := false

		mock := &mockApp{
			scanFunc: func(_ context.Context, opts app.ScanOptions) (*app.ScanReport, error) {
				capturedOpts = opts
				called = true
				return &app.ScanReport{}, nil
			},
		}

		cli := commands.New(mock)
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))
		cli.SetArgs([]string{"scan", "--dir", "proj", "--jobs", "2"})

		err := cli.Execute(context.Background())
		require.NoError(t, err)
		assert.True(t, called)
		assert.Equal(t, "proj", capturedOpts.Dir)
		assert.Equal(t, 2, capturedOpts.Jobs)
	})

	t.Run("prints the report", func(t *testing.T) {
		mock := &mockApp{
			scanFunc: func(_ context.Context, _ app.ScanOptions) (*app.ScanReport, error) {
				return &app.ScanReport{
					Parsed: 2,
					Definitions: []domain.Definition{
						{Kind: domain.KindQuery, Name: "Todos", FilePath: "src/todos.ts"},
						{Kind: domain.KindFragment, Name: "TodoItem", FilePath: "src/item.ts"},
					},
				}, nil
			},
		}

		cli := commands.New(mock)
		buf := new(bytes.Buffer)
		cli.SetOutput(buf, buf)
		cli.SetArgs([]string{"scan", "--list"})

		err := cli.Execute(context.Background())
		require.NoError(t, err)
		assert.Contains(t, buf.String(), "Todos")
		assert.Contains(t, buf.String(), "fragment")
		assert.Contains(t, buf.String(), "2 definitions in 2 files")
	})

	t.Run("returns error on scan failure", func(t *testing.T) {
		mock := &mockApp{
			scanFunc: func(_ context.Context, _ app.ScanOptions) (*app.ScanReport, error) {
				return nil, errors.New("simulated error")
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"scan"})
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))

		err := cli.Execute(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "simulated error")
	})
}

func TestCommands_Watch(t *testing.T) {
	t.Run("wires flags correctly", func(t *testing.T) {
		var capturedOpts app.WatchOptions

		mock := &mockApp{
			watchFunc: func(_ context.Context, opts app.WatchOptions) error {
				capturedOpts = opts
				return nil
			},
		}

		cli := commands.New(mock)
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))
		cli.SetArgs([]string{"watch", "--dir", "proj", "--debounce", "100ms"})

		err := cli.Execute(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "proj", capturedOpts.Dir)
		assert.Equal(t, "100ms", capturedOpts.Debounce.String())
	})
}

func TestCommands_Version(t *testing.T) {
	mock := &mockApp{}
	cli := commands.New(mock)

	buf := new(bytes.Buffer)
	cli.SetOutput(buf, buf)
	cli.SetArgs([]string{"version"})

	err := cli.Execute(context.Background())
	require.NoError(t, err)

	assert.Contains(t, buf.String(), build.Version)
}
