package commands

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"go.trai.ch/gqltag/internal/app"
	"go.trai.ch/gqltag/internal/core/domain"
	"go.trai.ch/gqltag/internal/ui/style"
)

var (
	okStyle   = lipgloss.NewStyle().Foreground(style.Green)
	failStyle = lipgloss.NewStyle().Foreground(style.Red)
	dimStyle  = lipgloss.NewStyle().Foreground(style.Slate)
)

// writeReport renders a scan report. Failures come first so they are
// visible even when the definition list is long.
func writeReport(w io.Writer, r *app.ScanReport, list bool) {
	for _, f := range r.Failures {
		fmt.Fprintf(w, "%s %s: %s\n", failStyle.Render(style.Cross), f.Path, f.Err.Error())
	}

	if list {
		for _, def := range r.Definitions {
			fmt.Fprintf(w, "  %-12s %-24s %s\n",
				kindLabel(def.Kind), def.Name, dimStyle.Render(def.FilePath))
		}
	}

	icon := okStyle.Render(style.Check)
	if len(r.Failures) > 0 {
		icon = failStyle.Render(style.Cross)
	}
	fmt.Fprintf(w, "%s %d definitions in %d files %s\n",
		icon, len(r.Definitions), r.Parsed,
		dimStyle.Render(fmt.Sprintf("(%d skipped, %d failed)", r.Skipped, len(r.Failures))))
}

func kindLabel(kind domain.DefinitionKind) string {
	switch kind {
	case domain.KindQuery:
		return "query"
	case domain.KindMutation:
		return "mutation"
	case domain.KindSubscription:
		return "subscription"
	case domain.KindFragment:
		return "fragment"
	default:
		return "definition"
	}
}
