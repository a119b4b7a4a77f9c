package pipeline

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/gridgen/pkg/cache"
	"github.com/matzehuels/gridgen/pkg/observability"
)

// cacheKeyType labels artifact entries in cache hooks.
const cacheKeyType = "artifact"

// Runner encapsulates pipeline execution with caching.
//
// The Runner is stateless except for the cache and logger, so multiple
// goroutines can safely use the same Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Execute runs the complete parse -> layout -> render pipeline. Parsing and
// layout always run so input errors are reported even for cached inputs;
// the rendered artifact is served from the cache when possible. Cache
// failures are logged and never fail the run.
func (r *Runner) Execute(ctx context.Context, name, text string, opts Options) (*Result, error) {
	result, err := r.Check(ctx, name, text, opts)
	if err != nil {
		return nil, err
	}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	key := r.Keyer.ArtifactKey(cache.Hash([]byte(text)), opts.ArtifactKeyOpts())
	if !opts.Refresh {
		data, hit, err := r.Cache.Get(ctx, key)
		switch {
		case err != nil:
			r.Logger.Warn("cache read failed", "input", name, "err", err)
		case hit:
			observability.Cache().OnCacheHit(ctx, cacheKeyType)
			result.Artifact = data
			result.CacheInfo.RenderHit = true
			r.Logger.Debug("cache hit", "input", name, "format", opts.Format)
			return result, nil
		default:
			observability.Cache().OnCacheMiss(ctx, cacheKeyType)
		}
	}

	hooks := observability.Pipeline()
	hooks.OnRenderStart(ctx, name, string(opts.Format))
	start := time.Now()
	data, err := Render(result.Layout, opts)
	result.Stats.RenderTime = time.Since(start)
	hooks.OnRenderComplete(ctx, name, string(opts.Format), len(data), result.Stats.RenderTime, err)
	if err != nil {
		return nil, err
	}
	result.Artifact = data

	if err := r.Cache.Set(ctx, key, data, cache.TTLArtifact); err != nil {
		r.Logger.Warn("cache write failed", "input", name, "err", err)
	} else {
		observability.Cache().OnCacheSet(ctx, cacheKeyType, len(data))
	}

	r.Logger.Debug("rendered",
		"input", name,
		"format", opts.Format,
		"bytes", len(data),
		"duration", result.Stats.RenderTime)
	return result, nil
}

// Check parses and lays out text without rendering.
func (r *Runner) Check(ctx context.Context, name, text string, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	hooks := observability.Pipeline()
	result := &Result{Name: name, Format: opts.Format}

	hooks.OnParseStart(ctx, name)
	start := time.Now()
	doc, err := Parse(text, opts)
	result.Stats.ParseTime = time.Since(start)
	if err != nil {
		hooks.OnParseComplete(ctx, name, 0, 0, result.Stats.ParseTime, err)
		return nil, err
	}
	hooks.OnParseComplete(ctx, name, doc.RowCount(), doc.ColumnCount(), result.Stats.ParseTime, nil)
	result.Document = doc
	result.Stats.Rows = doc.RowCount()
	result.Stats.Columns = doc.ColumnCount()
	result.Stats.Counts = doc.Count()

	hooks.OnLayoutStart(ctx, name, doc.RowCount()*doc.ColumnCount())
	start = time.Now()
	l, err := Layout(doc, opts)
	result.Stats.LayoutTime = time.Since(start)
	hooks.OnLayoutComplete(ctx, name, len(l.Shapes), result.Stats.LayoutTime, err)
	if err != nil {
		return nil, err
	}
	result.Layout = l
	result.Stats.Shapes = len(l.Shapes)

	r.Logger.Debug("laid out grid",
		"input", name,
		"rows", result.Stats.Rows,
		"cols", result.Stats.Columns,
		"shapes", result.Stats.Shapes)
	return result, nil
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}
