package commands

import (
	"bytes"
	"errors"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/sebdah/goldie/v2"
	"go.trai.ch/gqltag/internal/app"
	"go.trai.ch/gqltag/internal/core/domain"
)

func TestWriteReport(t *testing.T) {
	lipgloss.SetColorProfile(termenv.Ascii)

	t.Run("summary only", func(t *testing.T) {
		buf := new(bytes.Buffer)
		writeReport(buf, &app.ScanReport{
			Parsed: 3,
			Definitions: []domain.Definition{
				{Kind: domain.KindQuery, Name: "A"},
				{Kind: domain.KindQuery, Name: "B"},
				{Kind: domain.KindFragment, Name: "C"},
			},
		}, false)

		g := goldie.New(t)
		g.Assert(t, "report_summary", buf.Bytes())
	})

	t.Run("list with failures", func(t *testing.T) {
		buf := new(bytes.Buffer)
		writeReport(buf, &app.ScanReport{
			Parsed:  2,
			Skipped: 1,
			Definitions: []domain.Definition{
				{Kind: domain.KindQuery, Name: "Todos", FilePath: "src/todos.ts"},
				{Kind: domain.KindFragment, Name: "TodoItem", FilePath: "src/item.ts"},
			},
			Failures: []app.ScanFailure{
				{Path: "src/bad.ts", Err: errors.New("boom")},
			},
		}, true)

		g := goldie.New(t)
		g.Assert(t, "report_list", buf.Bytes())
	})
}
