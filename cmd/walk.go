package cmd

import (
	"fmt"

	"github.com/robolibs/entropy/internal/observability"
	"github.com/robolibs/entropy/walk"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var walkFlags struct {
	steps            int
	walkers          int
	seed             int64
	minSpeed         float64
	maxSpeed         float64
	pattern          string
	fixedStart       bool
	startRangeFactor float64
}

var walkCmd = &cobra.Command{
	Use:   "walk",
	Short: "Generate a random walk and a multi-walker simulation summary.",
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := observability.GetLogger().Named("walk")
		out := cmd.OutOrStdout()

		walkCfg, err := buildWalkConfig()
		if err != nil {
			return err
		}

		walker, err := walk.NewWalker(walkFlags.steps, walkCfg)
		if err != nil {
			return err
		}
		walker.SetLogger(logger)
		walker.Generate()

		fmt.Fprintln(out, "Random Walk:")
		fmt.Fprintf(out, "  Type: %s\n", walker.Type())
		fmt.Fprintf(out, "  Speed: %.4f\n", walker.Speed())
		fmt.Fprintf(out, "  Start: (%.4f, %.4f)\n", walker.StartPoint().X, walker.StartPoint().Y)
		fmt.Fprintf(out, "  End: (%.4f, %.4f)\n", walker.EndPoint().X, walker.EndPoint().Y)
		fmt.Fprintf(out, "  Path length: %d poses\n", walker.Path().Len())

		sim, err := walk.NewSimulation(walkFlags.steps, walkFlags.walkers, walkCfg)
		if err != nil {
			return err
		}
		sim.SetLogger(logger)
		sim.Generate()

		fmt.Fprintf(out, "\nSimulation with %d walkers:\n", sim.NumWalkers())
		for i, w := range sim.Walkers() {
			fmt.Fprintf(out, "  Walker %d: %s (speed=%.4f)\n", i, w.Type(), w.Speed())
		}

		bounds := sim.Bounds()
		fmt.Fprintf(out, "  Bounds: center=(%.4f, %.4f) size=(%.4f, %.4f)\n",
			bounds.Center.Point.X, bounds.Center.Point.Y, bounds.Size.X, bounds.Size.Y)

		logger.Debug("walk command finished",
			zap.Int("steps", walkFlags.steps),
			zap.Int("walkers", sim.NumWalkers()),
		)
		return nil
	},
}

// buildWalkConfig merges the resolved configuration defaults with any flags
// the user set explicitly.
func buildWalkConfig() (walk.Config, error) {
	pattern, err := walk.ParsePattern(walkFlags.pattern)
	if err != nil {
		return walk.Config{}, err
	}
	return walk.Config{
		Seed:             walkFlags.seed,
		MinSpeed:         walkFlags.minSpeed,
		MaxSpeed:         walkFlags.maxSpeed,
		Pattern:          pattern,
		RandomStart:      !walkFlags.fixedStart,
		StartRangeFactor: walkFlags.startRangeFactor,
	}, nil
}

func init() {
	walkCmd.Flags().IntVar(&walkFlags.steps, "steps", 100, "steps per walk")
	walkCmd.Flags().IntVar(&walkFlags.walkers, "walkers", 3, "walkers in the simulation")
	walkCmd.Flags().Int64Var(&walkFlags.seed, "seed", 1337, "base RNG seed")
	walkCmd.Flags().Float64Var(&walkFlags.minSpeed, "min-speed", 1.0, "minimum walker speed")
	walkCmd.Flags().Float64Var(&walkFlags.maxSpeed, "max-speed", 3.0, "maximum walker speed")
	walkCmd.Flags().StringVar(&walkFlags.pattern, "pattern", "moore", "move pattern: 4|neumann or 8|moore")
	walkCmd.Flags().BoolVar(&walkFlags.fixedStart, "fixed-start", false, "start at the origin instead of a random point")
	walkCmd.Flags().Float64Var(&walkFlags.startRangeFactor, "start-range", 1.0, "random start spread factor")

	// Config-file values back the flag defaults once the root pre-run has
	// resolved them.
	walkCmd.PreRun = func(cmd *cobra.Command, args []string) {
		if cfg == nil {
			return
		}
		if !cmd.Flags().Changed("steps") {
			walkFlags.steps = cfg.Walk.Steps
		}
		if !cmd.Flags().Changed("walkers") {
			walkFlags.walkers = cfg.Walk.Walkers
		}
		if !cmd.Flags().Changed("seed") {
			walkFlags.seed = cfg.Walk.Seed
		}
		if !cmd.Flags().Changed("min-speed") {
			walkFlags.minSpeed = cfg.Walk.MinSpeed
		}
		if !cmd.Flags().Changed("max-speed") {
			walkFlags.maxSpeed = cfg.Walk.MaxSpeed
		}
		if !cmd.Flags().Changed("pattern") {
			walkFlags.pattern = cfg.Walk.Pattern
		}
		if !cmd.Flags().Changed("fixed-start") {
			walkFlags.fixedStart = !cfg.Walk.RandomStart
		}
		if !cmd.Flags().Changed("start-range") {
			walkFlags.startRangeFactor = cfg.Walk.StartRangeFactor
		}
	}

	rootCmd.AddCommand(walkCmd)
}
