// Package walk implements a deterministic, seed-driven random-walk
// generator. A Walker produces one connected 2D waypoint sequence at a
// fixed per-walk speed; a Simulation aggregates many independently seeded
// walkers and computes their shared bounding box.
//
// Every Walker owns its RNG stream exclusively, so two walkers built with
// the same step count and configuration produce bit-identical paths. A
// single Walker or Simulation has single-writer semantics and must not be
// mutated from multiple goroutines.
package walk

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/robolibs/entropy/geom"
	"go.uber.org/zap"
)

// superhumanHeadroom is the fraction of MaxSpeed added above the nominal
// maximum before the uniform speed draw. Draws landing in the headroom band
// classify as Superhuman.
const superhumanHeadroom = 0.025

// classifyThresholdFraction is the share of the configured speed range that
// separates the Slow/Normal and Normal/Fast tiers.
const classifyThresholdFraction = 0.25

// WalkerType is the qualitative speed tier of a walker, derived from its
// sampled speed relative to the configured bounds.
type WalkerType int

const (
	Slow WalkerType = iota
	Normal
	Fast
	Superhuman
)

// String returns the display name of the walker type.
func (t WalkerType) String() string {
	switch t {
	case Slow:
		return "Slow Walker"
	case Normal:
		return "Normal Walker"
	case Fast:
		return "Fast Walker"
	case Superhuman:
		return "Superhuman"
	default:
		return "Unknown"
	}
}

// classify buckets a sampled speed against the configured range. The
// boundary comparisons are part of the contract: speed == minSpeed is Slow
// (for a positive range), speed == maxSpeed is Fast, and anything above
// maxSpeed is Superhuman.
func classify(speed, minSpeed, maxSpeed float64) WalkerType {
	threshold := (maxSpeed - minSpeed) * classifyThresholdFraction

	switch {
	case speed < minSpeed+threshold:
		return Slow
	case speed < maxSpeed-threshold:
		return Normal
	case speed <= maxSpeed:
		return Fast
	default:
		return Superhuman
	}
}

// Walker generates a single random-walk path. It owns a private seeded RNG
// stream, a configuration snapshot and the generated path buffer.
type Walker struct {
	totalSteps int
	cfg        Config
	speed      float64
	path       geom.Path
	rng        *rand.Rand
	logger     *zap.Logger
}

// NewWalker creates a walker for totalSteps steps with the given
// configuration. The walker's speed is sampled immediately, so Speed and
// Type are valid before the first Generate call. Returns ErrInvalidArgument
// when totalSteps is not positive.
func NewWalker(totalSteps int, cfg Config) (*Walker, error) {
	if totalSteps <= 0 {
		return nil, fmt.Errorf("walk: total steps must be positive, got %d: %w", totalSteps, ErrInvalidArgument)
	}

	w := &Walker{
		totalSteps: totalSteps,
		cfg:        cfg,
		rng:        rand.New(rand.NewSource(cfg.Seed)),
		logger:     zap.NewNop(),
	}
	w.speed = w.sampleSpeed()
	return w, nil
}

// NewWalkerWithSeed creates a walker with the default configuration and the
// given seed.
func NewWalkerWithSeed(totalSteps int, seed int64) (*Walker, error) {
	return NewWalker(totalSteps, SeedConfig(seed))
}

// SetLogger replaces the walker's logger. Passing nil restores the no-op
// logger. The core only emits debug-level generation traces; errors always
// propagate to the caller instead of being logged.
func (w *Walker) SetLogger(logger *zap.Logger) {
	if logger == nil {
		logger = zap.NewNop()
	}
	w.logger = logger
}

// uniform draws one value uniformly from [lo, hi).
func (w *Walker) uniform(lo, hi float64) float64 {
	return lo + w.rng.Float64()*(hi-lo)
}

// sampleSpeed draws the per-walk speed uniformly from
// [MinSpeed, MaxSpeed*(1+superhumanHeadroom)). The headroom band is part of
// the same uniform interval, so it is hit with probability proportional to
// its width (about 2.5/102.5 of draws for a [0, max] range).
func (w *Walker) sampleSpeed() float64 {
	bonus := w.cfg.MaxSpeed * superhumanHeadroom
	return w.uniform(w.cfg.MinSpeed, w.cfg.MaxSpeed+bonus)
}

// sampleStart draws a randomized start point. Both coordinates are drawn
// independently from [-r, r] where r = sqrt(totalSteps)*StartRangeFactor,
// tying the start spread to the walk length.
func (w *Walker) sampleStart() geom.Point {
	r := math.Sqrt(float64(w.totalSteps)) * w.cfg.StartRangeFactor
	x := w.uniform(-r, r)
	y := w.uniform(-r, r)
	return geom.Point{X: x, Y: y}
}

// sampleDirection draws one direction uniformly from the configured
// pattern's direction set.
func (w *Walker) sampleDirection() Direction {
	if w.cfg.Pattern == EightDirection {
		return Direction(w.rng.Intn(8))
	}
	return cardinals[w.rng.Intn(4)]
}

// step returns the waypoint one move from current in the given direction.
// Each affected axis shifts by exactly the walker speed; Z passes through.
func (w *Walker) step(current geom.Point, dir Direction) geom.Point {
	dx, dy := dir.offsets()
	return geom.Point{
		X: current.X + dx*w.speed,
		Y: current.Y + dy*w.speed,
		Z: current.Z,
	}
}

// Generate discards any existing path and builds a fresh one: the start
// waypoint followed by exactly totalSteps sampled moves. Generation
// consumes the walker's RNG stream (one start draw when RandomStart is set,
// one direction draw per step); calling Generate again without SetSeed
// continues the same stream and yields a different path.
func (w *Walker) Generate() {
	waypoints := make([]geom.Pose, 0, w.totalSteps+1)

	start := geom.Point{}
	if w.cfg.RandomStart {
		start = w.sampleStart()
	}
	waypoints = append(waypoints, geom.Pose{Point: start})

	for i := 0; i < w.totalSteps; i++ {
		dir := w.sampleDirection()
		next := w.step(waypoints[len(waypoints)-1].Point, dir)
		waypoints = append(waypoints, geom.Pose{Point: next})
	}
	w.path = geom.Path{Waypoints: waypoints}

	w.logger.Debug("generated walk",
		zap.Int("steps", w.totalSteps),
		zap.Float64("speed", w.speed),
		zap.String("type", w.Type().String()),
	)
}

// Path returns the generated path. It is empty until the first Generate
// call.
func (w *Walker) Path() geom.Path {
	return w.path
}

// Speed returns the sampled per-walk speed. It is always consistent with
// the current seed and speed range, even before Generate.
func (w *Walker) Speed() float64 {
	return w.speed
}

// Type returns the walker's speed tier for the current speed and range.
func (w *Walker) Type() WalkerType {
	return classify(w.speed, w.cfg.MinSpeed, w.cfg.MaxSpeed)
}

// StartPoint returns the first waypoint position, or the zero point if the
// path has not been generated yet.
func (w *Walker) StartPoint() geom.Point {
	return w.path.First().Point
}

// EndPoint returns the last waypoint position, or the zero point if the
// path has not been generated yet.
func (w *Walker) EndPoint() geom.Point {
	return w.path.Last().Point
}

// TotalSteps returns the step count fixed at construction.
func (w *Walker) TotalSteps() int {
	return w.totalSteps
}

// SetSeed reseeds the walker's RNG stream and immediately resamples the
// speed, so Speed and Type reflect the new seed without another Generate.
func (w *Walker) SetSeed(seed int64) {
	w.cfg.Seed = seed
	w.rng = rand.New(rand.NewSource(seed))
	w.speed = w.sampleSpeed()
}

// SetSpeedRange replaces the speed bounds and immediately resamples the
// speed from the walker's current RNG stream.
func (w *Walker) SetSpeedRange(minSpeed, maxSpeed float64) {
	w.cfg.MinSpeed = minSpeed
	w.cfg.MaxSpeed = maxSpeed
	w.speed = w.sampleSpeed()
}

// SetMovePattern changes the direction set. Takes effect on the next
// Generate call; the current path is untouched.
func (w *Walker) SetMovePattern(p MovePattern) {
	w.cfg.Pattern = p
}

// SetRandomStart toggles start randomization. Takes effect on the next
// Generate call.
func (w *Walker) SetRandomStart(randomStart bool) {
	w.cfg.RandomStart = randomStart
}

// SetStartRangeFactor changes the start spread multiplier. Takes effect on
// the next Generate call.
func (w *Walker) SetStartRangeFactor(factor float64) {
	w.cfg.StartRangeFactor = factor
}
