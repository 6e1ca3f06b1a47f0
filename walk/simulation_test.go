package walk

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSimulationValidation(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name       string
		totalSteps int
		numWalkers int
		wantErr    bool
	}{
		{name: "valid", totalSteps: 100, numWalkers: 5, wantErr: false},
		{name: "single_walker", totalSteps: 10, numWalkers: 1, wantErr: false},
		{name: "zero_steps", totalSteps: 0, numWalkers: 5, wantErr: true},
		{name: "negative_steps", totalSteps: -1, numWalkers: 5, wantErr: true},
		{name: "zero_walkers", totalSteps: 100, numWalkers: 0, wantErr: true},
		{name: "negative_walkers", totalSteps: 100, numWalkers: -3, wantErr: true},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			sim, err := NewSimulation(tc.totalSteps, tc.numWalkers, DefaultConfig())
			if tc.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidArgument)
				assert.Nil(t, sim)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.numWalkers, sim.NumWalkers())
			assert.Len(t, sim.Walkers(), tc.numWalkers)
			for _, w := range sim.Walkers() {
				assert.Equal(t, tc.totalSteps, w.TotalSteps())
			}
		})
	}
}

func TestSimulationWalkerIndex(t *testing.T) {
	t.Parallel()

	sim, err := NewSimulation(100, 5, DefaultConfig())
	require.NoError(t, err)

	w, err := sim.Walker(0)
	require.NoError(t, err)
	assert.NotNil(t, w)

	w, err = sim.Walker(4)
	require.NoError(t, err)
	assert.NotNil(t, w)

	for _, index := range []int{5, 100, -1} {
		w, err = sim.Walker(index)
		require.Error(t, err, "index %d", index)
		assert.ErrorIs(t, err, ErrOutOfRange)
		assert.Nil(t, w)
	}
}

func TestSimulationSeedDerivation(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	cfg.Seed = 4000
	cfg.MinSpeed = 0.5
	cfg.MaxSpeed = 2.5
	cfg.Pattern = FourDirection

	sim, err := NewSimulation(60, 4, cfg)
	require.NoError(t, err)
	sim.Generate()

	// Walker k must behave exactly like a standalone walker seeded with
	// base seed + k and the same remaining config.
	for k := 0; k < sim.NumWalkers(); k++ {
		standaloneCfg := cfg
		standaloneCfg.Seed = cfg.Seed + int64(k)
		standalone, err := NewWalker(60, standaloneCfg)
		require.NoError(t, err)
		standalone.Generate()

		simWalker, err := sim.Walker(k)
		require.NoError(t, err)

		assert.Equal(t, standalone.Speed(), simWalker.Speed(), "walker %d speed", k)
		assert.Empty(t, cmp.Diff(standalone.Path(), simWalker.Path()), "walker %d path", k)
	}
}

func TestSimulationWalkersAreDistinct(t *testing.T) {
	t.Parallel()

	sim, err := NewSimulation(50, 3, DefaultConfig())
	require.NoError(t, err)
	sim.Generate()

	// Adjacent seeds should diverge somewhere; compare pairwise end states.
	for i := 0; i < sim.NumWalkers(); i++ {
		for j := i + 1; j < sim.NumWalkers(); j++ {
			wi := sim.Walkers()[i]
			wj := sim.Walkers()[j]
			different := wi.Speed() != wj.Speed() ||
				wi.EndPoint().X != wj.EndPoint().X ||
				wi.EndPoint().Y != wj.EndPoint().Y
			assert.True(t, different, "walkers %d and %d are identical", i, j)
		}
	}
}

func TestSimulationBounds(t *testing.T) {
	t.Parallel()

	sim, err := NewSimulation(80, 4, SeedConfig(2024))
	require.NoError(t, err)
	sim.Generate()

	bounds := sim.Bounds()
	assert.GreaterOrEqual(t, bounds.Size.X, 0.0)
	assert.GreaterOrEqual(t, bounds.Size.Y, 0.0)

	// Recompute the extents independently and check the centroid anchoring.
	minX, minY := math.MaxFloat64, math.MaxFloat64
	maxX, maxY := -math.MaxFloat64, -math.MaxFloat64
	total := 0
	for _, w := range sim.Walkers() {
		for _, pose := range w.Path().Waypoints {
			minX = math.Min(minX, pose.Point.X)
			maxX = math.Max(maxX, pose.Point.X)
			minY = math.Min(minY, pose.Point.Y)
			maxY = math.Max(maxY, pose.Point.Y)
			total++
		}
	}
	require.Equal(t, 4*81, total)

	assert.Equal(t, (minX+maxX)/2, bounds.Center.Point.X)
	assert.Equal(t, (minY+maxY)/2, bounds.Center.Point.Y)
	assert.Equal(t, maxX-minX, bounds.Size.X)
	assert.Equal(t, maxY-minY, bounds.Size.Y)

	// Every waypoint lies inside the box.
	for _, w := range sim.Walkers() {
		for _, pose := range w.Path().Waypoints {
			assert.GreaterOrEqual(t, pose.Point.X, bounds.Center.Point.X-bounds.Size.X/2-1e-9)
			assert.LessOrEqual(t, pose.Point.X, bounds.Center.Point.X+bounds.Size.X/2+1e-9)
			assert.GreaterOrEqual(t, pose.Point.Y, bounds.Center.Point.Y-bounds.Size.Y/2-1e-9)
			assert.LessOrEqual(t, pose.Point.Y, bounds.Center.Point.Y+bounds.Size.Y/2+1e-9)
		}
	}
}

func TestSimulationBoundsBeforeGenerate(t *testing.T) {
	t.Parallel()

	sim, err := NewSimulation(10, 2, DefaultConfig())
	require.NoError(t, err)

	// No paths exist yet; the defined fallback is the zero box.
	assert.Zero(t, sim.Bounds())
}

func TestSimulationBoundsRecomputedPerCall(t *testing.T) {
	t.Parallel()

	sim, err := NewSimulation(200, 2, SeedConfig(77))
	require.NoError(t, err)

	sim.Generate()
	first := sim.Bounds()
	sim.Generate()
	second := sim.Bounds()

	// The RNG streams advanced, so the regenerated paths (and with
	// overwhelming probability the bounds) moved.
	assert.NotEqual(t, first, second)
}

func TestSimulationExampleScenario(t *testing.T) {
	t.Parallel()

	// The reference scenario: a 100-step walk with seed 42 has 101 poses,
	// zero steps fail construction, and walker index 5 of 5 is out of range.
	w, err := NewWalkerWithSeed(100, 42)
	require.NoError(t, err)
	w.Generate()
	assert.Equal(t, 101, w.Path().Len())

	_, err = NewWalkerWithSeed(0, 42)
	assert.ErrorIs(t, err, ErrInvalidArgument)

	sim, err := NewSimulation(100, 5, DefaultConfig())
	require.NoError(t, err)
	_, err = sim.Walker(5)
	assert.ErrorIs(t, err, ErrOutOfRange)
}
