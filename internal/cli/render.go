package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	gerrors "github.com/matzehuels/gridgen/pkg/errors"
	"github.com/matzehuels/gridgen/pkg/pipeline"
	"github.com/matzehuels/gridgen/pkg/render"
)

// stdioPath selects stdin for input and stdout for output.
const stdioPath = "-"

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	grid   gridFlags
	output string // single output path, "-" for stdout
	dist   string // output directory for batch runs
	jobs   int    // concurrent renders
}

// renderJob is one input file and where its artifact goes.
type renderJob struct {
	input  string
	output string
	result *pipeline.Result
	err    error
}

// renderCommand creates the render command.
func (c *CLI) renderCommand() *cobra.Command {
	opts := renderOpts{jobs: runtime.NumCPU()}

	cmd := &cobra.Command{
		Use:   "render FILE...",
		Short: "Render grid files to SVG, PNG or PDF",
		Long: `Render each grid file to an image next to it, or into --dist.

Missing files are skipped with a warning. Use "-" to read a grid from stdin,
and -o - to write a single result to stdout.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runRender(cmd, args, &opts)
		},
	}

	opts.grid.register(cmd.Flags(), true)
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", `output file for a single input ("-" for stdout)`)
	cmd.Flags().StringVarP(&opts.dist, "dist", "d", "", "directory for rendered files (default: next to each input)")
	cmd.Flags().IntVarP(&opts.jobs, "jobs", "j", opts.jobs, "number of files rendered concurrently")

	return cmd
}

func (c *CLI) runRender(cmd *cobra.Command, args []string, opts *renderOpts) error {
	ctx := cmd.Context()
	if opts.output != "" && len(args) > 1 {
		return gerrors.New(gerrors.ErrCodeInvalidInput, "-o takes a single input, got %d", len(args))
	}
	if opts.output != "" && opts.dist != "" {
		return gerrors.New(gerrors.ErrCodeInvalidInput, "-o and --dist are mutually exclusive")
	}
	if opts.jobs < 1 {
		return gerrors.New(gerrors.ErrCodeInvalidInput, "--jobs must be at least 1, got %d", opts.jobs)
	}
	if streamsToStdout(args, opts) {
		defer setStatusOutput(setStatusOutput(os.Stderr))
	}

	file, err := c.loadConfig()
	if err != nil {
		return err
	}
	pipeOpts, err := opts.grid.options(cmd, file)
	if err != nil {
		return err
	}
	pipeOpts.Logger = c.Logger
	if err := pipeOpts.ValidateAndSetDefaults(); err != nil {
		return err
	}

	runner, err := c.newRunner(ctx, file, nil)
	if err != nil {
		return err
	}
	defer runner.Close()

	jobs := c.planJobs(args, opts, pipeOpts.Format)
	if len(jobs) == 0 {
		printWarning("No input files to render")
		return nil
	}
	if opts.dist != "" {
		if err := os.MkdirAll(opts.dist, 0o755); err != nil {
			return gerrors.Wrap(gerrors.ErrCodeInvalidInput, err, "create output directory %s", opts.dist)
		}
	}

	prog := newProgress(c.Logger)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.jobs)
	for _, job := range jobs {
		g.Go(func() error {
			job.result, job.err = c.renderOne(gctx, runner, job, pipeOpts)
			return gctx.Err()
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	var failed []error
	for _, job := range jobs {
		if job.err != nil {
			printError("%s", describeError(job.input, job.err))
			failed = append(failed, job.err)
			continue
		}
		if job.output != stdioPath {
			printFile(job.input, job.output)
		}
		r := job.result
		printStats(r.Stats.Rows, r.Stats.Columns, r.Stats.Shapes, r.CacheInfo.RenderHit)
	}
	if len(failed) > 0 {
		return fmt.Errorf("%d of %d files failed: %w", len(failed), len(jobs), worst(failed))
	}
	prog.done(fmt.Sprintf("Rendered %d %s", len(jobs), plural(len(jobs), "grid", "grids")))
	return nil
}

// streamsToStdout reports whether an artifact will be written to stdout, in
// which case status lines move to stderr.
func streamsToStdout(args []string, opts *renderOpts) bool {
	if opts.output != "" {
		return opts.output == stdioPath
	}
	return opts.dist == "" && slices.Contains(args, stdioPath)
}

// planJobs resolves output paths and drops inputs that do not exist.
func (c *CLI) planJobs(args []string, opts *renderOpts, format render.Format) []*renderJob {
	var jobs []*renderJob
	for _, input := range args {
		if input != stdioPath {
			if _, err := os.Stat(input); errors.Is(err, fs.ErrNotExist) {
				printWarning("Skipping %s: file not found", input)
				continue
			}
		}
		jobs = append(jobs, &renderJob{input: input, output: outputPath(input, opts, format)})
	}
	return jobs
}

// outputPath names the artifact for input: -o wins, then --dist, then the
// input's own directory. Stdin renders to stdout unless -o says otherwise.
func outputPath(input string, opts *renderOpts, format render.Format) string {
	if opts.output != "" {
		return opts.output
	}
	if input == stdioPath {
		if opts.dist != "" {
			return filepath.Join(opts.dist, "stdin"+format.Ext())
		}
		return stdioPath
	}
	name := strings.TrimSuffix(filepath.Base(input), filepath.Ext(input)) + format.Ext()
	dir := opts.dist
	if dir == "" {
		dir = filepath.Dir(input)
	}
	return filepath.Join(dir, name)
}

func (c *CLI) renderOne(ctx context.Context, runner *pipeline.Runner, job *renderJob, opts pipeline.Options) (*pipeline.Result, error) {
	text, err := c.readInput(job.input)
	if err != nil {
		return nil, err
	}
	result, err := runner.Execute(ctx, job.input, text, opts)
	if err != nil {
		return nil, err
	}
	if err := c.writeOutput(job.output, result.Artifact); err != nil {
		return nil, err
	}
	c.Logger.Debugf("%s => %s", job.input, job.output)
	return result, nil
}

func (c *CLI) readInput(path string) (string, error) {
	var (
		data []byte
		err  error
	)
	if path == stdioPath {
		data, err = io.ReadAll(c.In)
	} else {
		data, err = os.ReadFile(path)
	}
	if errors.Is(err, fs.ErrNotExist) {
		return "", gerrors.Wrap(gerrors.ErrCodeFileNotFound, err, "%s not found", path)
	}
	if err != nil {
		return "", gerrors.Wrap(gerrors.ErrCodeInvalidInput, err, "read %s", path)
	}
	return string(data), nil
}

func (c *CLI) writeOutput(path string, data []byte) error {
	if path == stdioPath {
		_, err := c.Out.Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return gerrors.Wrap(gerrors.ErrCodeInvalidInput, err, "write %s", path)
	}
	return nil
}

// worst picks the error that decides the exit status: the first internal
// error if any, else the first error.
func worst(errs []error) error {
	for _, err := range errs {
		if gerrors.IsInternal(err) {
			return err
		}
	}
	return errs[0]
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
