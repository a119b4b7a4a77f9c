// Package cli implements the gridgen command-line interface.
package cli

import (
	"context"
	"errors"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/gridgen/pkg/buildinfo"
	"github.com/matzehuels/gridgen/pkg/cache"
	"github.com/matzehuels/gridgen/pkg/config"
	gerrors "github.com/matzehuels/gridgen/pkg/errors"
	"github.com/matzehuels/gridgen/pkg/observability"
	"github.com/matzehuels/gridgen/pkg/pipeline"
)

// =============================================================================
// Constants
// =============================================================================

const appName = "gridgen"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// Process exit codes.
const (
	ExitOK          = 0
	ExitUserError   = 1
	ExitInternal    = 70 // EX_SOFTWARE
	ExitInterrupted = 130
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	// In and Out carry grid text and artifacts for "-" paths.
	In  io.Reader
	Out io.Writer

	configPath string
	cacheSpec  string
	noCache    bool
	verbose    bool
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		In:     os.Stdin,
		Out:    os.Stdout,
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "gridgen draws text grids of shape tokens as SVG",
		Long: `gridgen turns a plain-text grid of shape tokens into a deterministic SVG
image: one cell per token, drawn on square cells with optional grid lines.`,
		Version:       buildinfo.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if c.verbose {
				c.SetLogLevel(LogDebug)
				hooks := observability.NewLogHooks(c.Logger)
				observability.SetPipelineHooks(hooks)
				observability.SetCacheHooks(hooks)
				observability.SetServerHooks(hooks)
			}
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	pf := root.PersistentFlags()
	pf.BoolVarP(&c.verbose, "verbose", "v", false, "enable verbose logging")
	pf.StringVar(&c.configPath, "config", "", "config file (default: nearest "+config.FileName+")")
	pf.StringVar(&c.cacheSpec, "cache", "", `cache: a directory, "redis://host:port/db" or "none"`)
	pf.BoolVar(&c.noCache, "no-cache", false, "disable the artifact cache")

	root.AddCommand(c.renderCommand())
	root.AddCommand(c.checkCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.tokensCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Config and Runner Factory
// =============================================================================

// loadConfig loads --config, or the nearest gridgen.toml when the flag is
// unset. It returns nil when there is no config file.
func (c *CLI) loadConfig() (*config.File, error) {
	path := c.configPath
	if path == "" {
		found, ok, err := config.Find(".")
		if err != nil || !ok {
			return nil, err
		}
		path = found
	}
	f, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	c.Logger.Debug("loaded config", "path", f.Path)
	return f, nil
}

// resolveCacheSpec applies the cache precedence: --no-cache, --cache, the
// config file, then the default directory.
func (c *CLI) resolveCacheSpec(file *config.File) string {
	switch {
	case c.noCache:
		return cache.SpecNone
	case c.cacheSpec != "":
		return c.cacheSpec
	}
	def, err := cache.DefaultDir()
	if err != nil {
		def = cache.SpecNone
	}
	return file.CacheSpec(def)
}

// newRunner creates a pipeline runner for CLI use.
func (c *CLI) newRunner(ctx context.Context, file *config.File, keyer cache.Keyer) (*pipeline.Runner, error) {
	spec := c.resolveCacheSpec(file)
	ch, err := cache.New(ctx, spec)
	if err != nil {
		return nil, err
	}
	c.Logger.Debug("cache", "spec", spec)
	return pipeline.NewRunner(ch, keyer, c.Logger), nil
}

// =============================================================================
// Exit Codes
// =============================================================================

// ExitCode maps a command error to the process exit status.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, context.Canceled):
		return ExitInterrupted
	case gerrors.IsInternal(err):
		return ExitInternal
	default:
		return ExitUserError
	}
}
