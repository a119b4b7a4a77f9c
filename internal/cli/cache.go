package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/gridgen/pkg/cache"
	gerrors "github.com/matzehuels/gridgen/pkg/errors"
)

// cacheCommand creates the cache management command.
func (c *CLI) cacheCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Manage the rendered-artifact cache",
	}

	cmd.AddCommand(c.cacheClearCommand())
	cmd.AddCommand(c.cachePathCommand())

	return cmd
}

// openFileCache opens the directory cache in effect. Non-directory caches
// (none, redis) are reported as an error.
func (c *CLI) openFileCache(ctx context.Context) (*cache.FileCache, error) {
	file, err := c.loadConfig()
	if err != nil {
		return nil, err
	}
	spec := c.resolveCacheSpec(file)
	if spec == cache.SpecNone || strings.Contains(spec, "://") {
		return nil, gerrors.New(gerrors.ErrCodeInvalidConfig, "cache %q is not a directory cache", spec)
	}
	opened, err := cache.New(ctx, spec)
	if err != nil {
		return nil, err
	}
	fc, ok := opened.(*cache.FileCache)
	if !ok {
		opened.Close()
		return nil, gerrors.New(gerrors.ErrCodeInternal, "cache %q did not open as a directory cache", spec)
	}
	return fc, nil
}

// cacheClearCommand creates the "cache clear" subcommand.
func (c *CLI) cacheClearCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Remove every cached artifact",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fc, err := c.openFileCache(cmd.Context())
			if err != nil {
				return err
			}
			defer fc.Close()

			n, err := fc.Clear()
			if err != nil {
				return gerrors.Wrap(gerrors.ErrCodeInvalidConfig, err, "clear %s", fc.Dir())
			}
			if n == 0 {
				printInfo("Cache is empty")
			} else {
				printSuccess("Cleared %d cached %s", n, plural(n, "entry", "entries"))
			}
			printDetail("Directory: %s", fc.Dir())
			return nil
		},
	}
}

// cachePathCommand creates the "cache path" subcommand.
func (c *CLI) cachePathCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the cache directory path",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fc, err := c.openFileCache(cmd.Context())
			if err != nil {
				return err
			}
			defer fc.Close()
			fmt.Fprintln(c.Out, fc.Dir())
			return nil
		},
	}
}
