package main

import (
	"github.com/spf13/cobra"

	"github.com/vanshika/oraculo/internal/generator"
)

func newDatagenCmd(opts *rootOptions) *cobra.Command {
	cfg := generator.DefaultConfig()
	var output, format string

	cmd := &cobra.Command{
		Use:   "datagen",
		Short: "Generate a synthetic batch file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := opts.logger(cmd).With("component", "datagen")

			items, err := generator.New(cfg).Generate(cmd.Context())
			if err != nil {
				return err
			}

			if output != "" {
				if err := generator.WriteFile(output, items); err != nil {
					return err
				}
				logger.Info("batch file written", "path", output, "items", len(items), "seed", cfg.Seed)
				return nil
			}

			outFormat := generator.Format(format)
			if outFormat == "" {
				outFormat = generator.FormatJSON
			}
			return generator.WriteItems(cmd.OutOrStdout(), items, outFormat)
		},
	}
	cmd.Flags().IntVar(&cfg.Count, "count", cfg.Count, "Number of people to generate")
	cmd.Flags().Int64Var(&cfg.Seed, "seed", cfg.Seed, "Random seed (0 for time-based)")
	cmd.Flags().IntVar(&cfg.MinYear, "min-year", cfg.MinYear, "Earliest birth year")
	cmd.Flags().IntVar(&cfg.MaxYear, "max-year", cfg.MaxYear, "Latest birth year")
	cmd.Flags().Float64Var(&cfg.NumerologyOnlyChance, "numerology-only", cfg.NumerologyOnlyChance, "Share of people without birth time")
	cmd.Flags().Float64Var(&cfg.AstrologyOnlyChance, "astrology-only", cfg.AstrologyOnlyChance, "Share of people without a name")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file (.json or .yaml); stdout when empty")
	cmd.Flags().StringVar(&format, "format", "json", "Stdout format: json or yaml")
	return cmd
}
