// Package probe implements the precision boundary search: starting from a
// fixed exponent it walks downward, evaluating log(base^e) against a backend
// adapter until the backend fails or returns the negative-infinity sentinel.
// The exponent where that happens is the boundary of the backend's numeric
// representation.
package probe

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/edkrueger/log-precision/internal/backend"
)

// ErrNoBoundary is returned when the step budget is exhausted before any
// failure is observed. This happens when a backend's warning escalation is
// disabled, leaving the probe with no stopping condition.
var ErrNoBoundary = errors.New("probe: no failure boundary within step budget")

// Config fixes the search parameters. Immutable once a run starts.
type Config struct {
	// Base of the probed powers. Must be >= 2.
	Base int
	// Start is the first exponent evaluated.
	Start int
	// Step is added to the exponent after each successful evaluation.
	// Must be negative.
	Step int
	// MaxSteps bounds the search so a backend with no failure channel
	// cannot spin forever.
	MaxSteps int
}

// DefaultConfig returns the canonical probe settings: base 10, counting
// down from exponent 0 one step at a time. The step budget comfortably
// covers the decimal backend's boundary near -10^6.
func DefaultConfig() Config {
	return Config{
		Base:     10,
		Start:    0,
		Step:     -1,
		MaxSteps: 2_000_000,
	}
}

// Validate checks the configuration invariants.
func (c Config) Validate() error {
	if c.Base < 2 {
		return fmt.Errorf("probe: base must be >= 2, got %d", c.Base)
	}
	if c.Step >= 0 {
		return fmt.Errorf("probe: step must be negative, got %d", c.Step)
	}
	if c.MaxSteps <= 0 {
		return fmt.Errorf("probe: max steps must be positive, got %d", c.MaxSteps)
	}
	return nil
}

// Result reports a located boundary.
type Result struct {
	// Backend that was probed.
	Backend string
	// Boundary is the first exponent at which evaluation failed.
	Boundary int
	// LastFinite is Boundary - Step, the exponent of the last successful
	// evaluation. When the backend fails on the very first exponent no
	// evaluation succeeded: LastFinite then names an exponent that was
	// never visited and LastValue is empty.
	LastFinite int
	// LastValue is the logarithm computed at LastFinite, empty if the
	// first evaluation already failed.
	LastValue string
	// Steps is the number of evaluations performed, boundary included.
	Steps int
}

// Prober runs boundary searches against backend adapters. Runs share no
// state; a single Prober can probe any number of backends.
type Prober struct {
	cfg Config
	log *zap.Logger
}

// New returns a Prober for the given configuration. A nil logger disables
// logging.
func New(cfg Config, log *zap.Logger) (*Prober, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Prober{cfg: cfg, log: log}, nil
}

// Run walks the exponent sequence until b fails or reports the sentinel.
// Each exponent is evaluated exactly once; the walk halts on the first
// failure. Cancelling ctx aborts the search between evaluations.
func (p *Prober) Run(ctx context.Context, b backend.Backend) (Result, error) {
	exp := p.cfg.Start
	lastValue := ""
	for step := 1; step <= p.cfg.MaxSteps; step++ {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}
		res, err := b.Eval(exp)
		if err != nil {
			p.log.Debug("boundary located",
				zap.String("backend", b.Name()),
				zap.Int("exponent", exp),
				zap.NamedError("cause", err))
			return p.result(b, exp, lastValue, step), nil
		}
		if res.NegInf {
			p.log.Debug("boundary located",
				zap.String("backend", b.Name()),
				zap.Int("exponent", exp),
				zap.String("cause", "negative infinity sentinel"))
			return p.result(b, exp, lastValue, step), nil
		}
		lastValue = res.Value
		exp += p.cfg.Step
	}
	p.log.Warn("step budget exhausted",
		zap.String("backend", b.Name()),
		zap.Int("max_steps", p.cfg.MaxSteps))
	return Result{}, fmt.Errorf("%w (backend %s, %d steps)", ErrNoBoundary, b.Name(), p.cfg.MaxSteps)
}

func (p *Prober) result(b backend.Backend, boundary int, lastValue string, steps int) Result {
	return Result{
		Backend:    b.Name(),
		Boundary:   boundary,
		LastFinite: boundary - p.cfg.Step,
		LastValue:  lastValue,
		Steps:      steps,
	}
}
