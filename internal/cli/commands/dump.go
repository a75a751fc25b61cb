package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/waozixyz/formview/render/term"
)

// NewDumpCommand creates the dump command.
func NewDumpCommand() *cobra.Command {
	var entryWidth int

	cmd := &cobra.Command{
		Use:   "dump [form.xml]",
		Short: "Print a form as text",
		Long: `Compile a form and print it with the terminal renderer.

Groups are drawn as boxes, fields as [____] entries and check boxes as [ ].`,
		Example: `  formview dump Form.xml
  formview dump --term-width 80`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := compileForm(cmd, formPath(cmd, args))
			if err != nil {
				return err
			}
			cfg := GetConfig(cmd.Context())
			out := term.Render(root, term.Options{Width: cfg.Term.Width, EntryWidth: entryWidth})
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}

	cmd.Flags().IntVar(&entryWidth, "entry-width", 0, "Width of an empty entry field (default 20)")
	cmd.Flags().Int("term-width", 0, "Maximum output width (0 for unbounded)")
	return cmd
}
