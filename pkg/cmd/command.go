package cmd

import (
	"fmt"
	"io"

	"github.com/kyverno/tupleargs/pkg/logging"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"k8s.io/component-base/cli/flag"
	"k8s.io/component-base/term"
	"k8s.io/component-base/version"
	"k8s.io/klog/v2"
)

// NewCommand creates the tuplectl command
func NewCommand() *cobra.Command {
	opts := NewOptions()

	cmd := &cobra.Command{
		Use:   CommandName + " [flags] VALUE...",
		Short: "Parse comma-separated values into typed tuples",
		Long: `tuplectl converts comma-separated values such as "1.0,2.5,3.0" into
typed containers and prints one result per VALUE.

Conversions:
  - float (default), int, string

Containers:
  - tuple (default), list, set (duplicates dropped, order kept)

With --num-items N every VALUE must produce exactly N items.
Flags not given on the command line fall back to TUPLE_NUM_ITEMS,
TUPLE_CONV and TUPLE_CONTAINER.

Run with --version to print the version and exit.
`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Handle version flag
			if opts.ShowVersion {
				fmt.Fprintln(cmd.OutOrStdout(), version.Get().GitVersion)
				return nil
			}

			opts.Values = args

			// Fall back to environment variables for flags left unset
			opts.loadFromEnv(cmd.Flags().Changed)

			// Validate options
			if errs := opts.Validate(); len(errs) > 0 {
				return errs[0]
			}

			return Run(cmd.OutOrStdout(), opts)
		},
		SilenceUsage: true,
	}

	// Add flags
	flags := opts.Flags()
	for _, f := range flags.FlagSets {
		cmd.Flags().AddFlagSet(f)
	}

	// Setup usage and help
	cols, _, _ := term.TerminalSize(cmd.OutOrStdout())
	cmd.SetUsageFunc(func(cmd *cobra.Command) error {
		fmt.Fprintf(cmd.OutOrStderr(), "Usage:\n  %s\n\n", cmd.UseLine())
		flag.PrintSections(cmd.OutOrStderr(), flags, cols)
		return nil
	})
	cmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "%s\n\nUsage:\n  %s\n\n", cmd.Long, cmd.UseLine())
		flag.PrintSections(cmd.OutOrStdout(), flags, cols)
	})

	return cmd
}

// Run parses every value in opts and writes one result per line to out.
// The first invalid value stops the run.
func Run(out io.Writer, opts *Options) error {
	config, err := opts.Complete()
	if err != nil {
		return err
	}

	klog.V(logging.LevelInfo).InfoS("Parsing values",
		"conv", config.Conv,
		"container", config.Container,
		"numItems", config.NumItems,
		"count", len(config.Values),
	)

	for _, raw := range config.Values {
		result, err := config.Parse(raw)
		if err != nil {
			return errors.Wrapf(err, "invalid value %q", raw)
		}

		if _, err := fmt.Fprintln(out, result); err != nil {
			return errors.Wrap(err, "failed to write result")
		}
	}

	return nil
}
