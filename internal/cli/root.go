// Package cli provides the command-line interface for formview.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/waozixyz/formview/internal/cli/commands"
	"github.com/waozixyz/formview/internal/config"
	"github.com/waozixyz/formview/internal/logging"
)

// Version information (set at build time).
var Version = "0.1.0"

// NewRootCmd creates the root command. newRenderer supplies the window
// backend for the view command.
func NewRootCmd(newRenderer commands.RendererFactory) *cobra.Command {
	var cfgFile string

	rootCmd := &cobra.Command{
		Use:   "formview",
		Short: "formview - managed form viewer",
		Long: `formview compiles 1C:Enterprise managed form descriptions (Form.xml)
into a widget tree and shows them in a window or in the terminal.`,
		Version: Version,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Name() == "help" || cmd.Name() == "completion" || cmd.Name() == "version" {
				return nil
			}

			cfg, used, err := config.Load(cfgFile, cmd.Flags())
			if err != nil {
				return err
			}
			log, err := logging.New(cfg.LogLevel)
			if err != nil {
				return err
			}
			if used != "" {
				log.Debug("using config file", zap.String("path", used))
			}

			ctx := commands.WithConfig(cmd.Context(), cfg)
			ctx = commands.WithLogger(ctx, log)
			cmd.SetContext(ctx)
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, _ []string) {
			_ = commands.GetLogger(cmd.Context()).Sync()
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.SetVersionTemplate("{{.Name}} {{.Version}}\n")

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./formview.yaml)")
	rootCmd.PersistentFlags().String("form", "", "Path to the form description (default: ./Form.xml)")
	rootCmd.PersistentFlags().String("log-level", "", "Log level (debug|info|warn|error)")

	_ = rootCmd.RegisterFlagCompletionFunc("log-level", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return logging.Levels, cobra.ShellCompDirectiveNoFileComp
	})

	rootCmd.AddCommand(commands.NewVersionCommand(Version))
	rootCmd.AddCommand(commands.NewViewCommand(newRenderer))
	rootCmd.AddCommand(commands.NewDumpCommand())
	rootCmd.AddCommand(commands.NewPreviewCommand())
	rootCmd.AddCommand(commands.NewOutlineCommand())

	return rootCmd
}

// Execute runs the root command.
func Execute(newRenderer commands.RendererFactory) error {
	rootCmd := NewRootCmd(newRenderer)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	return nil
}
