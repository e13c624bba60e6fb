package style

import (
	"github.com/pterm/pterm"

	"github.com/arthur-debert/dotlink/pkg/fetcher"
	"github.com/arthur-debert/dotlink/pkg/linker"
)

// RenderStatusTable renders the read-only status view as a table
func RenderStatusTable(report *linker.Report, plugins []fetcher.Result) (string, error) {
	data := pterm.TableData{
		{"KIND", "SOURCE", "TARGET", "STATE"},
	}

	for _, res := range report.Results {
		data = append(data, []string{"link", res.Spec.Source, res.Spec.Target, statusWord(res.Outcome)})
	}

	for _, res := range plugins {
		state := "missing"
		switch {
		case res.Err != nil:
			state = "conflict"
		case res.Skipped:
			state = "cloned"
		}
		data = append(data, []string{"plugin", res.Spec.URL, res.Spec.Dest, state})
	}

	return pterm.DefaultTable.
		WithHasHeader().
		WithData(data).
		Srender()
}

func statusWord(outcome linker.Outcome) string {
	switch outcome {
	case linker.OutcomeAlreadyLinked:
		return "linked"
	case linker.OutcomeWouldCreate:
		return "not linked"
	case linker.OutcomeConflict:
		return "conflict"
	case linker.OutcomeSourceMissing:
		return "source missing"
	default:
		return string(outcome)
	}
}
