package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/crowbar/internal/domain"
	m "github.com/mouse-blink/crowbar/internal/model"
)

// setCmd represents the set command.
var setCmd = newSetCmd()
var setWriteFlag bool
var setDiffFlag bool

const setLongDescription = `Assign new values to literals in a Rust source.

Each assignment is ID=VALUE where ID is ORDINAL:NAME or a unique NAME.
VALUE is read the way the entry's kind expects: a number, true or false,
or text. Text written as a Rust string literal ("..." or r#"..."#) is
decoded, escapes included. Any other text is used as is.

Without --write the edited source is printed to stdout.`

func newSetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set FILE ID=VALUE...",
		Short: "Assign new values to literals",
		Long:  setLongDescription,
		Example: `  crowbar set main.rs 3:ratio=0.5
  crowbar set --write main.rs verbose=true 'name="crow bar"'`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return workflow.Set(cmd.Context(), domain.SetArgs{
				Path:        m.Path(args[0]),
				Assignments: args[1:],
				Write:       setWriteFlag,
				Diff:        setDiffFlag,
			})
		},
	}
	cmd.Flags().BoolVarP(&setWriteFlag, "write", "w", false, "write the result back to the file")
	cmd.Flags().BoolVarP(&setDiffFlag, "diff", "d", false, "print a unified diff of the change")

	return cmd
}

func init() {
	rootCmd.AddCommand(setCmd)
}
