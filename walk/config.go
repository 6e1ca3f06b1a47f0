package walk

import "fmt"

// Config holds the tunable parameters for a single walk generation. It is a
// plain value; a Walker takes its own copy at construction and mutates it
// only through the explicit setters.
//
// MinSpeed <= MaxSpeed is expected but deliberately not enforced; the
// uniform draw is taken over whatever interval the caller supplies.
type Config struct {
	// Seed for the walker's private RNG stream.
	Seed int64
	// MinSpeed and MaxSpeed bound the per-walk speed draw. The effective
	// upper bound is MaxSpeed*1.025 (see Walker speed sampling).
	MinSpeed float64
	MaxSpeed float64
	// Pattern selects the eligible direction set.
	Pattern MovePattern
	// RandomStart places the first waypoint uniformly in a square around
	// the origin instead of exactly at it.
	RandomStart bool
	// StartRangeFactor scales the random start spread: the half-width of
	// the start square is sqrt(totalSteps)*StartRangeFactor.
	StartRangeFactor float64
}

// DefaultConfig returns the stock configuration: seed 1337, speeds in
// [1, 3], eight-direction movement, randomized start with unit spread.
func DefaultConfig() Config {
	return Config{
		Seed:             1337,
		MinSpeed:         1.0,
		MaxSpeed:         3.0,
		Pattern:          EightDirection,
		RandomStart:      true,
		StartRangeFactor: 1.0,
	}
}

// SeedConfig returns the default configuration with the given seed.
func SeedConfig(seed int64) Config {
	cfg := DefaultConfig()
	cfg.Seed = seed
	return cfg
}

// ParsePattern maps a user-facing pattern name to a MovePattern. Accepted
// spellings: "4", "four", "neumann" and "8", "eight", "moore".
func ParsePattern(s string) (MovePattern, error) {
	switch s {
	case "4", "four", "neumann":
		return FourDirection, nil
	case "8", "eight", "moore":
		return EightDirection, nil
	default:
		return 0, fmt.Errorf("walk: unknown move pattern %q: %w", s, ErrInvalidArgument)
	}
}
