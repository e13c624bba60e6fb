package commands

import (
	"github.com/spf13/cobra"

	"github.com/arthur-debert/dotlink/pkg/fetcher"
	"github.com/arthur-debert/dotlink/pkg/linker"
	"github.com/arthur-debert/dotlink/pkg/manifest"
	"github.com/arthur-debert/dotlink/pkg/paths"
	"github.com/arthur-debert/dotlink/pkg/style"
)

func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "status",
		Short:   MsgStatusShort,
		Long:    MsgStatusLong,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := paths.New(cmd.Flag("repo").Value.String())
			if err != nil {
				return err
			}

			m, err := manifest.Load(p)
			if err != nil {
				return err
			}

			report := linker.Verify(m.Links, p.RepoRoot())
			plugins := fetcher.InspectAll(m.Plugins)

			table, err := style.RenderStatusTable(report, plugins)
			if err != nil {
				return err
			}
			cmd.Println(table)

			// Drift is information, not failure. Exit 0 either way.
			return nil
		},
	}
}
