package commands

import (
	stderrors "errors"
	"os"
	"path/filepath"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/dotlink/pkg/docserver"
	"github.com/arthur-debert/dotlink/pkg/errors"
	"github.com/arthur-debert/dotlink/pkg/paths"
)

func newDocsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "docs",
		Short:   MsgDocsShort,
		GroupID: "misc",
	}

	cmd.AddCommand(newDocsServeCmd())
	cmd.AddCommand(newDocsStopCmd())
	cmd.AddCommand(newDocsViewCmd())
	cmd.AddCommand(newDocsServeChildCmd())

	return cmd
}

func newDocsServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: MsgDocsServeShort,
		Long:  MsgDocsServeLong,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			port, _ := cmd.Flags().GetInt("port")
			root, _ := cmd.Flags().GetString("root")

			p, err := paths.New(cmd.Flag("repo").Value.String())
			if err != nil {
				return err
			}

			if root == "" {
				root = filepath.Join(p.RepoRoot(), "docs")
			}

			handle, err := docserver.Start(p, root, port)
			if err != nil {
				return err
			}

			cmd.Printf("Serving %s at %s (pid %d)\n", root, docserver.URL(port), handle.PID)
			cmd.Println("Run 'dotlink docs stop' to shut it down.")
			return nil
		},
	}

	cmd.Flags().Int("port", docserver.DefaultPort, "Port to bind")
	cmd.Flags().String("root", "", "Directory to serve (default: <repo>/docs)")

	return cmd
}

func newDocsStopCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stop",
		Short: MsgDocsStopShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := paths.New(cmd.Flag("repo").Value.String())
			if err != nil {
				return err
			}

			err = docserver.Stop(p)
			if err != nil {
				// The record is cleared either way; a stale handle is a
				// degraded success, not a failure.
				if stderrors.Is(err, errors.New(errors.ErrStaleHandle, "")) {
					cmd.Println(err.Error())
					return nil
				}
				return err
			}

			cmd.Println("Docs server stopped.")
			return nil
		},
	}
}

func newDocsViewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "view <file>",
		Short: MsgDocsViewShort,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			content, err := os.ReadFile(args[0])
			if err != nil {
				return errors.Wrapf(err, errors.ErrInvalidInput, "cannot read %s", args[0])
			}

			renderer, err := glamour.NewTermRenderer(glamour.WithAutoStyle())
			if err != nil {
				// Fall back to the raw text if the renderer cannot be built
				cmd.Print(string(content))
				return nil
			}

			rendered, err := renderer.Render(string(content))
			if err != nil {
				cmd.Print(string(content))
				return nil
			}

			cmd.Print(rendered)
			return nil
		},
	}
}

// newDocsServeChildCmd is the hidden entry point of the detached
// server child spawned by 'docs serve'. It blocks until terminated.
func newDocsServeChildCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:    "__serve",
		Hidden: true,
		Args:   cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			port, _ := cmd.Flags().GetInt("port")
			root, _ := cmd.Flags().GetString("root")
			return docserver.Serve(root, port)
		},
	}

	cmd.Flags().Int("port", docserver.DefaultPort, "Port to bind")
	cmd.Flags().String("root", "", "Directory to serve")

	return cmd
}
