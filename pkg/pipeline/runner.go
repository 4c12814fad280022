package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/pinwall/pinwall/pkg/board"
	"github.com/pinwall/pinwall/pkg/cache"
	"github.com/pinwall/pinwall/pkg/layout"
	"github.com/pinwall/pinwall/pkg/observability"
)

// Runner encapsulates pipeline execution with caching.
// Both CLI and API can use this to avoid duplicating caching logic.
//
// The Runner is stateless except for the cache and logger - it doesn't
// store pipeline results. Multiple goroutines can safely use the same
// Runner with different options.
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

// Arrange runs the complete resolve → layout pipeline with caching.
// The input board is not modified; the result carries a copy with new
// positions.
func (r *Runner) Arrange(ctx context.Context, b board.Board, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	r.applyLogger(&opts)

	result := &Result{Board: b}
	result.Board.Items = nil

	// Stage 1: Resolve attachments. Cheap, but surfaced in stats so large
	// boards can be diagnosed.
	resolveStart := time.Now()
	observability.Pipeline().OnResolveStart(ctx, len(b.Items))
	attach := layout.ResolveAttachments(b.Items)
	attached := 0
	for _, ideas := range attach {
		attached += len(ideas)
	}
	result.Stats.ItemCount = len(b.Items)
	result.Stats.AnchorCount = len(attach)
	result.Stats.IdeaCount = attached
	result.Stats.ResolveTime = time.Since(resolveStart)
	observability.Pipeline().OnResolveComplete(ctx, len(attach), attached, result.Stats.ResolveTime)

	// Content hash keys the layout cache and lets API clients detect
	// board changes.
	boardData, err := board.Marshal(b)
	if err != nil {
		return nil, fmt.Errorf("hash board: %w", err)
	}
	result.BoardHash = cache.Hash(boardData)

	r.Logger.Info("resolved attachments",
		"items", result.Stats.ItemCount,
		"anchors", result.Stats.AnchorCount,
		"ideas", result.Stats.IdeaCount,
		"duration", result.Stats.ResolveTime)

	// Stage 2: Layout
	layoutStart := time.Now()
	items, layoutHit, err := r.arrangeWithCacheInfo(ctx, b, result.BoardHash, opts)
	if err != nil {
		return nil, fmt.Errorf("layout: %w", err)
	}
	result.Board.Items = items
	result.Board.Width = opts.Width
	result.Board.Height = opts.Height
	result.Stats.LayoutTime = time.Since(layoutStart)
	result.CacheInfo.LayoutHit = layoutHit

	r.Logger.Info("computed arrangement",
		"strategy", opts.Strategy,
		"cached", layoutHit,
		"duration", result.Stats.LayoutTime)

	return result, nil
}

// arrangeWithCacheInfo computes the arrangement with caching and reports
// whether the cache served it.
func (r *Runner) arrangeWithCacheInfo(ctx context.Context, b board.Board, boardHash string, opts Options) ([]board.Item, bool, error) {
	cacheKey := r.Keyer.LayoutKey(boardHash, opts.LayoutKeyOpts())

	// Try cache first (unless refresh requested)
	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
			var items []board.Item
			if err := json.Unmarshal(data, &items); err == nil {
				observability.Cache().OnCacheHit(ctx, "layout")
				return items, true, nil
			}
			// Corrupt entry, fall through and recompute.
		}
		observability.Cache().OnCacheMiss(ctx, "layout")
	}

	strategy, err := layout.ParseStrategy(opts.Strategy)
	if err != nil {
		return nil, false, err
	}

	observability.Pipeline().OnLayoutStart(ctx, opts.Strategy, len(b.Items))
	start := time.Now()
	items, err := layout.Apply(strategy, b.Items, opts.Width, opts.Height, opts.layoutOptions()...)
	observability.Pipeline().OnLayoutComplete(ctx, opts.Strategy, time.Since(start), err)
	if err != nil {
		return nil, false, err
	}

	// Cache the result
	if data, err := json.Marshal(items); err == nil {
		_ = r.Cache.Set(ctx, cacheKey, data, cache.LayoutTTL)
		observability.Cache().OnCacheSet(ctx, "layout", len(data))
	}

	return items, false, nil
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
