package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/crowbar/internal/domain"
	m "github.com/mouse-blink/crowbar/internal/model"
)

// runCmd represents the run command.
var runCmd = newRunCmd()
var runSetFlags []string

const runLongDescription = `Compile and run a Rust source with the toolchain from the config.

Assignments given with --set are applied to an in-memory copy; the file on
disk is not touched. A failed compile or a non-zero exit makes the command
fail after the output is shown.`

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run FILE",
		Short: "Compile and run a source with edits applied",
		Long:  runLongDescription,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return workflow.Run(cmd.Context(), domain.RunArgs{
				Path:        m.Path(args[0]),
				Assignments: runSetFlags,
			})
		},
	}
	cmd.Flags().StringArrayVarP(&runSetFlags, "set", "s", nil, "ID=VALUE assignment applied before the build (can be repeated)")

	return cmd
}

func init() {
	rootCmd.AddCommand(runCmd)
}
