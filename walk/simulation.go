package walk

import (
	"fmt"
	"math"

	"github.com/robolibs/entropy/geom"
	"go.uber.org/zap"
)

// Simulation owns a fixed-size collection of walkers derived from one base
// configuration. Walker i is seeded with base seed + i, so a simulation is
// reproducible for a fixed base seed while its walkers stay mutually
// distinct.
type Simulation struct {
	totalSteps int
	cfg        Config
	walkers    []*Walker
	logger     *zap.Logger
}

// NewSimulation builds numWalkers walkers of totalSteps steps each. Returns
// ErrInvalidArgument when either count is not positive. Construction never
// leaves a partially built simulation.
func NewSimulation(totalSteps, numWalkers int, cfg Config) (*Simulation, error) {
	if totalSteps <= 0 {
		return nil, fmt.Errorf("walk: total steps must be positive, got %d: %w", totalSteps, ErrInvalidArgument)
	}
	if numWalkers <= 0 {
		return nil, fmt.Errorf("walk: walker count must be positive, got %d: %w", numWalkers, ErrInvalidArgument)
	}

	walkers := make([]*Walker, 0, numWalkers)
	for i := 0; i < numWalkers; i++ {
		walkerCfg := cfg
		walkerCfg.Seed = cfg.Seed + int64(i)
		w, err := NewWalker(totalSteps, walkerCfg)
		if err != nil {
			return nil, fmt.Errorf("walk: building walker %d: %w", i, err)
		}
		walkers = append(walkers, w)
	}

	return &Simulation{
		totalSteps: totalSteps,
		cfg:        cfg,
		walkers:    walkers,
		logger:     zap.NewNop(),
	}, nil
}

// SetLogger replaces the simulation's logger and propagates it to every
// owned walker. Passing nil restores the no-op logger.
func (s *Simulation) SetLogger(logger *zap.Logger) {
	if logger == nil {
		logger = zap.NewNop()
	}
	s.logger = logger
	for _, w := range s.walkers {
		w.SetLogger(logger)
	}
}

// Generate regenerates every walker's path, in index order. Walkers do not
// interact; each consumes only its own RNG stream.
func (s *Simulation) Generate() {
	for _, w := range s.walkers {
		w.Generate()
	}
	s.logger.Debug("generated simulation",
		zap.Int("walkers", len(s.walkers)),
		zap.Int("steps", s.totalSteps),
	)
}

// Walkers returns the full ordered walker collection.
func (s *Simulation) Walkers() []*Walker {
	return s.walkers
}

// Walker returns the walker at the given index, or ErrOutOfRange when the
// index is not within [0, NumWalkers).
func (s *Simulation) Walker(index int) (*Walker, error) {
	if index < 0 || index >= len(s.walkers) {
		return nil, fmt.Errorf("walk: walker index %d not in [0, %d): %w", index, len(s.walkers), ErrOutOfRange)
	}
	return s.walkers[index], nil
}

// NumWalkers returns the walker count fixed at construction.
func (s *Simulation) NumWalkers() int {
	return len(s.walkers)
}

// Bounds computes the axis-aligned bounding box over every waypoint of
// every walker's current path, anchored at the centroid of the extents.
// The box is recomputed on each call; it does not stay stable across
// further Generate calls. With no waypoints (paths not generated yet) the
// zero box at the origin is returned.
func (s *Simulation) Bounds() geom.Box {
	minX, minY := math.MaxFloat64, math.MaxFloat64
	maxX, maxY := -math.MaxFloat64, -math.MaxFloat64

	seen := false
	for _, w := range s.walkers {
		for _, pose := range w.Path().Waypoints {
			seen = true
			minX = math.Min(minX, pose.Point.X)
			maxX = math.Max(maxX, pose.Point.X)
			minY = math.Min(minY, pose.Point.Y)
			maxY = math.Max(maxY, pose.Point.Y)
		}
	}
	if !seen {
		return geom.Box{}
	}

	center := geom.Point{X: (minX + maxX) / 2, Y: (minY + maxY) / 2}
	return geom.Box{
		Center: geom.Pose{Point: center},
		Size:   geom.Size{X: maxX - minX, Y: maxY - minY},
	}
}
