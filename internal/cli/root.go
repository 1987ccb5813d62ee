// Package cli implements the plugbind developer commands.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/justyntemme/plugbind/pkg/framework/debug"
)

type options struct {
	logLevel string
	noColor  bool
	logger   *debug.Logger
}

// NewRootCommand builds the plugbind command tree
func NewRootCommand(version string) *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "plugbind",
		Short: "Validate and inspect plugin bus/parameter descriptors",
		Long: `plugbind validates the bus and parameter declarations of the bundled
example plugins and prints the resulting bindings: bus roles, channel
layout, parameter indices and default values.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level, err := debug.ParseLevel(opts.logLevel)
			if err != nil {
				return err
			}
			opts.logger = debug.New(cmd.ErrOrStderr(), "plugbind", debug.FlagLevel|debug.FlagPrefix)
			opts.logger.SetLevel(level)
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "warn", "log level (debug, info, warn, error, off)")
	rootCmd.PersistentFlags().BoolVar(&opts.noColor, "no-color", false, "disable colored output")

	rootCmd.AddCommand(newListCommand())
	rootCmd.AddCommand(newShowCommand(opts))
	rootCmd.AddCommand(newCheckCommand(opts))

	return rootCmd
}

func unknownEntry(name string) error {
	return fmt.Errorf("unknown plugin %q (see 'plugbind list')", name)
}
