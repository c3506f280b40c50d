package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/crowbar/internal/domain"
)

// listCmd represents the list command.
var listCmd = newListCmd()
var listFilterFlag string
var listParallelFlag int

const listLongDescription = `List the editable literals of one or more Rust sources.

Supports Go-style path patterns:
  - ./...          recursively scan current directory
  - ./src/...      recursively scan src directory
  - main.rs lib.rs scan individual files`

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list [paths...]",
		Short: "List editable literals",
		Long:  listLongDescription,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return workflow.List(cmd.Context(), domain.ListArgs{
				Paths:    parsePaths(args),
				Filter:   listFilterFlag,
				Parallel: listParallelFlag,
			})
		},
	}
	cmd.Flags().StringVarP(&listFilterFlag, "filter", "f", "", "fuzzy-filter entries by name")
	cmd.Flags().IntVarP(&listParallelFlag, "parallel", "p", 1, "number of files scanned concurrently")

	return cmd
}

func init() {
	rootCmd.AddCommand(listCmd)
}
