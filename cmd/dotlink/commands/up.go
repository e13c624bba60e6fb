package commands

import (
	"github.com/spf13/cobra"

	"github.com/arthur-debert/dotlink/pkg/errors"
	"github.com/arthur-debert/dotlink/pkg/fetcher"
	"github.com/arthur-debert/dotlink/pkg/linker"
	"github.com/arthur-debert/dotlink/pkg/manifest"
	"github.com/arthur-debert/dotlink/pkg/paths"
	"github.com/arthur-debert/dotlink/pkg/style"
)

func newUpCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "up",
		Short:   MsgUpShort,
		Long:    MsgUpLong,
		Example: MsgUpExample,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dryRun, _ := cmd.Flags().GetBool("dry-run")
			noFetch, _ := cmd.Flags().GetBool("no-fetch")

			p, err := paths.New(cmd.Flag("repo").Value.String())
			if err != nil {
				return err
			}

			m, err := manifest.Load(p)
			if err != nil {
				return err
			}

			if dryRun {
				report := linker.Verify(m.Links, p.RepoRoot())
				cmd.Print(style.RenderReport(report, true))
				if !noFetch {
					cmd.Print(style.RenderFetchResults(fetcher.InspectAll(m.Plugins)))
				}
				return nil
			}

			report := linker.Apply(m.Links, p.RepoRoot())
			cmd.Print(style.RenderReport(report, false))

			var fetchResults []fetcher.Result
			if !noFetch {
				fetchResults = fetcher.FetchAll(m.Plugins)
				cmd.Print(style.RenderFetchResults(fetchResults))
			}

			if report.Failed() || fetcher.Failed(fetchResults) {
				return errors.New(errors.ErrTargetConflict, "some entries could not be applied")
			}
			return nil
		},
	}

	cmd.Flags().Bool("dry-run", false, "Preview changes without executing them")
	cmd.Flags().Bool("no-fetch", false, "Skip plugin clones, only create links")

	return cmd
}
