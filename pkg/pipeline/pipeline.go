// Package pipeline provides the core arrangement pipeline for Pinwall.
//
// This package implements the complete resolve → layout pipeline that can be
// used by CLI, API, and worker components. By centralizing this logic, we
// ensure consistent behavior across all entry points and avoid code
// duplication.
//
// # Architecture
//
// The pipeline consists of two stages:
//
//  1. Resolve: Walk the connection graph and assign every reachable idea to
//     its owning anchor
//  2. Layout: Compute canvas positions for every item with the selected
//     strategy
//
// Layout results are cached by board content hash and arrangement options, so
// re-arranging an unchanged board is a cache read.
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	opts := pipeline.Options{
//	    Strategy: "organized",
//	    Width:    3000,
//	    Height:   2000,
//	}
//	result, err := runner.Arrange(ctx, b, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	arranged := result.Board
package pipeline

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/pinwall/pinwall/pkg/board"
	"github.com/pinwall/pinwall/pkg/cache"
	pinerrors "github.com/pinwall/pinwall/pkg/errors"
	"github.com/pinwall/pinwall/pkg/layout"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI, API, and Worker
// =============================================================================

const (
	// DefaultWidth is the default canvas width in board units.
	DefaultWidth = 3000.0

	// DefaultHeight is the default canvas height in board units.
	DefaultHeight = 2000.0

	// DefaultSeed is the default random seed for reproducibility.
	DefaultSeed = layout.DefaultSeed
)

// DefaultStrategy is the default arrangement strategy.
const DefaultStrategy = layout.StrategyOrganized

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for the arrangement pipeline.
// This struct supports JSON serialization for API requests.
type Options struct {
	// Layout options
	Strategy    string  `json:"strategy,omitempty"`
	Width       float64 `json:"width,omitempty"`
	Height      float64 `json:"height,omitempty"`
	Seed        uint64  `json:"seed,omitempty"`
	Orientation string  `json:"orientation,omitempty"`

	// Refresh bypasses the layout cache and recomputes.
	Refresh bool `json:"refresh,omitempty"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool `json:"-"`
}

// ValidateAndSetDefaults checks fields and applies defaults.
// This method is idempotent - calling it multiple times has the same effect
// as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}

	if o.Strategy == "" {
		o.Strategy = string(DefaultStrategy)
	}
	if _, err := layout.ParseStrategy(o.Strategy); err != nil {
		return pinerrors.New(pinerrors.ErrCodeInvalidStrategy,
			"invalid strategy: %q (must be one of: %s)", o.Strategy, strategyNames())
	}

	if err := pinerrors.ValidateDimensions(o.Width, o.Height); err != nil {
		return err
	}
	if o.Width == 0 {
		o.Width = DefaultWidth
	}
	if o.Height == 0 {
		o.Height = DefaultHeight
	}
	if o.Seed == 0 {
		o.Seed = DefaultSeed
	}

	if o.Orientation == "" {
		o.Orientation = string(layout.OrientRows)
	}
	if _, err := layout.ParseOrientation(o.Orientation); err != nil {
		return pinerrors.New(pinerrors.ErrCodeInvalidInput,
			"invalid orientation: %q (must be rows or columns)", o.Orientation)
	}

	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}

	o.validated = true
	return nil
}

// LayoutKeyOpts returns cache key options for layout computation.
func (o *Options) LayoutKeyOpts() cache.LayoutKeyOpts {
	return cache.LayoutKeyOpts{
		Strategy:    o.Strategy,
		Width:       o.Width,
		Height:      o.Height,
		Seed:        o.Seed,
		Orientation: o.Orientation,
	}
}

// layoutOptions converts pipeline options into layout package options.
func (o *Options) layoutOptions() []layout.Option {
	orient, _ := layout.ParseOrientation(o.Orientation)
	return []layout.Option{
		layout.WithSeed(o.Seed),
		layout.WithOrientation(orient),
	}
}

func strategyNames() string {
	names := ""
	for i, s := range layout.Strategies {
		if i > 0 {
			names += ", "
		}
		names += string(s)
	}
	return names
}

// =============================================================================
// Result Types
// =============================================================================

// Result contains the outputs of a pipeline run.
type Result struct {
	// Board is the arranged board with updated item positions.
	Board board.Board

	// BoardHash is the content hash of the input board.
	BoardHash string

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks which stages hit the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	ItemCount   int
	AnchorCount int
	IdeaCount   int
	ResolveTime time.Duration
	LayoutTime  time.Duration
}

// CacheInfo tracks cache hits for each pipeline stage.
type CacheInfo struct {
	LayoutHit bool // Whether the arrangement came from cache
}
