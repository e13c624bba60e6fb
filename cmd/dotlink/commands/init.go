package commands

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/dotlink/pkg/errors"
	"github.com/arthur-debert/dotlink/pkg/manifest"
	"github.com/arthur-debert/dotlink/pkg/paths"
)

func newInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "init",
		Short:   MsgInitShort,
		Long:    MsgInitLong,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			starter, err := manifest.Starter()
			if err != nil {
				return err
			}

			if toStdout, _ := cmd.Flags().GetBool("stdout"); toStdout {
				cmd.Print(starter)
				return nil
			}

			p, err := paths.New(cmd.Flag("repo").Value.String())
			if err != nil {
				return err
			}

			dest := p.ManifestPath()
			if _, err := os.Stat(dest); err == nil {
				return errors.Newf(errors.ErrInvalidInput, "%s already exists, not overwriting", dest)
			}

			if err := os.WriteFile(dest, []byte(starter), 0644); err != nil {
				return errors.Wrapf(err, errors.ErrInternal, "failed to write %s", dest)
			}

			cmd.Printf("Wrote %s\n", dest)
			return nil
		},
	}

	cmd.Flags().Bool("stdout", false, "Print the starter manifest instead of writing it")

	return cmd
}
