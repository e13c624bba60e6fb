package style

import (
	"fmt"
	"os"
	"strings"

	"github.com/mattn/go-isatty"

	"github.com/arthur-debert/dotlink/pkg/fetcher"
	"github.com/arthur-debert/dotlink/pkg/linker"
)

// useColor reports whether stdout is a terminal. Piped output gets
// plain text.
func useColor() bool {
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func paint(s string, styled func(...string) string) string {
	if !useColor() {
		return s
	}
	return styled(s)
}

// RenderReport renders the linker report, one line per spec, followed
// by a summary. dryRun switches the verbs to future tense.
func RenderReport(report *linker.Report, dryRun bool) string {
	var b strings.Builder

	for _, res := range report.Results {
		line := fmt.Sprintf("%s -> %s", res.Spec.Source, res.Spec.Target)

		var label string
		var styled func(...string) string
		switch res.Outcome {
		case linker.OutcomeCreated:
			label, styled = "linked", SuccessStyle.Render
		case linker.OutcomeAlreadyLinked:
			label, styled = "ok", MutedStyle.Render
		case linker.OutcomeWouldCreate:
			label, styled = "missing", WarningStyle.Render
			if dryRun {
				label = "would link"
			}
		case linker.OutcomeConflict:
			label, styled = "conflict", ErrorStyle.Render
		case linker.OutcomeSourceMissing:
			label, styled = "no source", ErrorStyle.Render
		default:
			label, styled = "failed", ErrorStyle.Render
		}

		b.WriteString(paint(fmt.Sprintf("  %-10s ", label), styled) + line)
		if res.Err != nil {
			b.WriteString("\n" + ListItemStyle.Render(paint(res.Err.Error(), MutedStyle.Render)))
		}
		b.WriteString("\n")
	}

	counts := report.Counts()
	summary := fmt.Sprintf("%d linked, %d already in place, %d problem(s)",
		counts[linker.OutcomeCreated],
		counts[linker.OutcomeAlreadyLinked],
		counts[linker.OutcomeConflict]+counts[linker.OutcomeSourceMissing]+counts[linker.OutcomeFailed])
	b.WriteString("\n" + paint(summary, TitleStyle.Render) + "\n")

	return b.String()
}

// RenderFetchResults renders plugin clone results
func RenderFetchResults(results []fetcher.Result) string {
	if len(results) == 0 {
		return ""
	}

	var b strings.Builder
	for _, res := range results {
		line := fmt.Sprintf("%s -> %s", res.Spec.URL, res.Spec.Dest)
		switch {
		case res.Err != nil:
			b.WriteString(paint("  failed     ", ErrorStyle.Render) + line)
			b.WriteString("\n" + ListItemStyle.Render(paint(res.Err.Error(), MutedStyle.Render)))
		case res.Skipped:
			b.WriteString(paint("  ok         ", MutedStyle.Render) + line)
		default:
			b.WriteString(paint("  cloned     ", SuccessStyle.Render) + line)
		}
		b.WriteString("\n")
	}
	return b.String()
}
