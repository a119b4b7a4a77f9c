package cli

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/matzehuels/gridgen/pkg/grid"
	"github.com/matzehuels/gridgen/pkg/pipeline"
)

// checkCommand creates the check command, which validates grid files
// without writing anything.
func (c *CLI) checkCommand() *cobra.Command {
	var flags gridFlags

	cmd := &cobra.Command{
		Use:   "check FILE...",
		Short: "Validate grid files and print their statistics",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			file, err := c.loadConfig()
			if err != nil {
				return err
			}
			opts, err := flags.options(cmd, file)
			if err != nil {
				return err
			}
			opts.Logger = c.Logger
			if err := opts.ValidateAndSetDefaults(); err != nil {
				return err
			}

			// Nothing is rendered, so there is nothing to cache.
			runner := pipeline.NewRunner(nil, nil, c.Logger)
			var failed []error
			for _, input := range args {
				if err := c.checkOne(cmd.Context(), runner, input, opts); err != nil {
					printError("%s", describeError(input, err))
					failed = append(failed, err)
				}
			}
			if len(failed) > 0 {
				return fmt.Errorf("%d of %d files failed: %w", len(failed), len(args), worst(failed))
			}
			return nil
		},
	}

	flags.register(cmd.Flags(), false)
	return cmd
}

func (c *CLI) checkOne(ctx context.Context, runner *pipeline.Runner, input string, opts pipeline.Options) error {
	text, err := c.readInput(input)
	if err != nil {
		return err
	}
	r, err := runner.Check(ctx, input, text, opts)
	if err != nil {
		return err
	}

	printSuccess("%s", input)
	printKeyValue("size", fmt.Sprintf("%d rows x %d columns", r.Stats.Rows, r.Stats.Columns))
	if title := r.Document.Title(); title != "" {
		printKeyValue("title", title)
	}
	meta := r.Document.Meta()
	for _, key := range slices.Sorted(maps.Keys(meta)) {
		if key != "title" {
			printKeyValue(key, meta[key])
		}
	}
	for _, k := range grid.Kinds() {
		if n := r.Stats.Counts[k]; n > 0 {
			printKeyValue(k.String(), strconv.Itoa(n))
		}
	}
	return nil
}
