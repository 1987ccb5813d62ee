package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/justyntemme/plugbind/internal/catalog"
	"github.com/justyntemme/plugbind/pkg/framework/plugin"
)

func newListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the bundled example plugins",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range catalog.Names() {
				e, _ := catalog.Lookup(name)
				fmt.Fprintf(cmd.OutOrStdout(), "%-14s %s\n", name, e.Info.Category)
			}
			return nil
		},
	}
}

func newShowCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "show <plugin>",
		Short: "Validate a plugin and print its binding",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, ok := catalog.Lookup(args[0])
			if !ok {
				return unknownEntry(args[0])
			}

			iface, err := e.Validate()
			if err != nil {
				return fmt.Errorf("%s: %w", args[0], err)
			}
			opts.logger.Debug("validated %s", e.Info)

			r := newRenderer(!opts.noColor)
			fmt.Fprintln(cmd.OutOrStdout(), r.render(e.Info, iface))
			return nil
		},
	}
}

func newCheckCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "check [plugin...]",
		Short: "Validate plugins and load them into a host",
		RunE: func(cmd *cobra.Command, args []string) error {
			names := args
			if len(names) == 0 {
				names = catalog.Names()
			}

			for _, name := range names {
				e, ok := catalog.Lookup(name)
				if !ok {
					return unknownEntry(name)
				}
				if err := e.Info.Validate(); err != nil {
					return err
				}

				host := plugin.NewHost(e.Info, nil, opts.logger.WithPrefix(name))
				b, err := host.Load(e.Buses, e.Parameters)
				if err != nil {
					return fmt.Errorf("%s: %w", name, err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "ok  %-14s %d buses, %d parameters\n",
					name, b.Interface.NumBuses(), b.Interface.NumParameters())
			}
			return nil
		},
	}
}
