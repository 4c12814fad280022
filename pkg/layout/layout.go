package layout

import (
	"fmt"
	"math/rand/v2"

	"github.com/pinwall/pinwall/pkg/board"
)

// Strategy names an arrangement algorithm.
type Strategy string

// Arrangement strategies.
const (
	StrategyMessy      Strategy = "messy"
	StrategyOrganized  Strategy = "organized"
	StrategyStructured Strategy = "structured"
	StrategyDiamond    Strategy = "diamond"
	StrategyCornered   Strategy = "cornered"
)

// Strategies lists all valid strategies in display order.
var Strategies = []Strategy{
	StrategyMessy,
	StrategyOrganized,
	StrategyStructured,
	StrategyDiamond,
	StrategyCornered,
}

// ParseStrategy converts a string to a Strategy.
// Returns an error listing the valid names if s doesn't match any.
func ParseStrategy(s string) (Strategy, error) {
	for _, st := range Strategies {
		if string(st) == s {
			return st, nil
		}
	}
	return "", fmt.Errorf("unknown strategy %q (must be one of: messy, organized, structured, diamond, cornered)", s)
}

// Orientation selects the level axis for the structured strategy.
type Orientation string

// Structured level orientations.
const (
	// OrientRows lays each dependency level out as a horizontal band,
	// top to bottom.
	OrientRows Orientation = "rows"

	// OrientColumns lays each dependency level out as a vertical column,
	// left to right.
	OrientColumns Orientation = "columns"
)

// ParseOrientation converts a string to an Orientation.
func ParseOrientation(s string) (Orientation, error) {
	switch Orientation(s) {
	case OrientRows, OrientColumns:
		return Orientation(s), nil
	case "":
		return OrientRows, nil
	default:
		return "", fmt.Errorf("unknown orientation %q (must be rows or columns)", s)
	}
}

// DefaultSeed is the seed used when none is supplied, for reproducibility.
const DefaultSeed = uint64(42)

// config holds per-invocation settings assembled from options.
type config struct {
	seed        uint64
	src         rand.Source
	orientation Orientation
}

// Option configures a layout invocation.
type Option func(*config)

// WithSeed sets the seed for the layout's random source. Two invocations
// with the same items, board size, and seed produce identical output.
func WithSeed(seed uint64) Option {
	return func(c *config) { c.seed = seed }
}

// WithSource injects a random source directly, overriding the seed.
// Tests use this to substitute a fixed-sequence generator.
func WithSource(src rand.Source) Option {
	return func(c *config) { c.src = src }
}

// WithOrientation sets the level axis for the structured strategy.
// Other strategies ignore it.
func WithOrientation(o Orientation) Option {
	return func(c *config) { c.orientation = o }
}

func newConfig(opts []Option) config {
	c := config{
		seed:        DefaultSeed,
		orientation: OrientRows,
	}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// rng builds the invocation's random generator: the injected source when
// present, otherwise a PCG seeded from the configured seed.
func (c config) rng() *rand.Rand {
	if c.src != nil {
		return rand.New(c.src)
	}
	return rand.New(rand.NewPCG(c.seed, c.seed^0xdeadbeef))
}

// Apply runs the named strategy over the items and returns the repositioned
// collection. The input slice is never mutated. Unknown strategies return
// an error; everything else follows the engine's no-error contract.
func Apply(s Strategy, items []board.Item, boardW, boardH float64, opts ...Option) ([]board.Item, error) {
	switch s {
	case StrategyMessy:
		return Messy(items, boardW, boardH, opts...), nil
	case StrategyOrganized:
		return Organized(items, boardW, boardH, opts...), nil
	case StrategyStructured:
		return Structured(items, boardW, boardH, opts...), nil
	case StrategyDiamond:
		return Diamond(items, boardW, boardH, opts...), nil
	case StrategyCornered:
		return Cornered(items, boardW, boardH, opts...), nil
	default:
		_, err := ParseStrategy(string(s))
		return nil, err
	}
}

// pass carries the working state of a single layout invocation: the random
// generator, the resolved attachments, and the boxes placed so far. It is
// local to one call and discarded afterwards.
type pass struct {
	rng    *rand.Rand
	idx    *board.Index
	attach Attachments
	placed []rect
	boardW float64
	boardH float64
}

// newPass clones nothing and mutates nothing: it only indexes the input and
// resolves attachments for the strategies to consume.
func newPass(items []board.Item, boardW, boardH float64, c config) *pass {
	idx := board.NewIndex(items)
	return &pass{
		rng:    c.rng(),
		idx:    idx,
		attach: resolveAttachments(items, idx),
		boardW: boardW,
		boardH: boardH,
	}
}

// attachedCount returns how many ideas are stacked beneath the anchor.
func (p *pass) attachedCount(anchorID string) int {
	return len(p.attach[anchorID])
}

// jitter returns a uniform value in [-max, max].
func (p *pass) jitter(max float64) float64 {
	return (p.rng.Float64()*2 - 1) * max
}
