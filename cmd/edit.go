package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/crowbar/internal/domain"
	m "github.com/mouse-blink/crowbar/internal/model"
)

// editCmd represents the edit command.
var editCmd = newEditCmd()

func newEditCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "edit FILE",
		Short: "Edit literals interactively",
		Long: `Open an interactive editor over the literals of a Rust source.

Requires a terminal. Edits stay in memory until saved.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return workflow.Edit(cmd.Context(), domain.EditArgs{Path: m.Path(args[0])})
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(editCmd)
}
