package cmd

import (
	"fmt"

	"github.com/robolibs/entropy/internal/observability"
	"github.com/robolibs/entropy/noise"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var noiseFlags struct {
	seed      int64
	frequency float64
	width     int
	height    int
	spacing   float64
}

var noiseCmd = &cobra.Command{
	Use:   "noise",
	Short: "Print a sign grid of Perlin noise samples.",
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := observability.GetLogger().Named("noise")
		out := cmd.OutOrStdout()

		sampler := noise.NewSampler(noiseFlags.seed)
		sampler.SetFrequency(noiseFlags.frequency)

		fmt.Fprintln(out, "Perlin Noise samples:")
		for y := 0; y < noiseFlags.height; y++ {
			for x := 0; x < noiseFlags.width; x++ {
				val := sampler.At(float64(x)*noiseFlags.spacing, float64(y)*noiseFlags.spacing)
				if val > 0 {
					fmt.Fprint(out, "+")
				} else {
					fmt.Fprint(out, "-")
				}
			}
			fmt.Fprintln(out)
		}

		logger.Debug("noise command finished",
			zap.Int64("seed", noiseFlags.seed),
			zap.Float64("frequency", noiseFlags.frequency),
		)
		return nil
	},
}

func init() {
	noiseCmd.Flags().Int64Var(&noiseFlags.seed, "seed", 42, "noise field seed")
	noiseCmd.Flags().Float64Var(&noiseFlags.frequency, "frequency", 0.05, "sampling frequency")
	noiseCmd.Flags().IntVar(&noiseFlags.width, "width", 10, "grid width")
	noiseCmd.Flags().IntVar(&noiseFlags.height, "height", 5, "grid height")
	noiseCmd.Flags().Float64Var(&noiseFlags.spacing, "spacing", 10.0, "distance between grid samples")

	noiseCmd.PreRun = func(cmd *cobra.Command, args []string) {
		if cfg == nil {
			return
		}
		if !cmd.Flags().Changed("seed") {
			noiseFlags.seed = cfg.Noise.Seed
		}
		if !cmd.Flags().Changed("frequency") {
			noiseFlags.frequency = cfg.Noise.Frequency
		}
	}

	rootCmd.AddCommand(noiseCmd)
}
