package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vanshika/oraculo/internal/numerology"
	"github.com/vanshika/oraculo/internal/service"
)

func newNumerologyCmd(opts *rootOptions) *cobra.Command {
	var name, date string

	cmd := &cobra.Command{
		Use:     "numerology",
		Short:   "Build the inverted pyramid for a full name",
		Example: `  oraculo numerology --name "Maria Silva" --date 1990-05-15`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := opts.readingService(cmd).CalculateNumerology(cmd.Context(), service.NumerologyInput{
				FullName:  name,
				BirthDate: date,
			})
			if err != nil {
				return err
			}
			printNumerology(cmd.OutOrStdout(), res.Reading)
			return nil
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "Full name")
	cmd.Flags().StringVar(&date, "date", "", "Birth date (YYYY-MM-DD)")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("date")
	return cmd
}

func newAstrologyCmd(opts *rootOptions) *cobra.Command {
	var in service.AstrologyInput

	cmd := &cobra.Command{
		Use:     "astrology",
		Short:   "Compute the birth chart for a date and time",
		Example: `  oraculo astrology --date 2000-01-01 --time 10:30 --city Lisboa --country Portugal`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := opts.readingService(cmd).CalculateAstrology(cmd.Context(), in)
			if err != nil {
				return err
			}
			printChart(cmd.OutOrStdout(), res)
			return nil
		},
	}
	cmd.Flags().StringVar(&in.BirthDate, "date", "", "Birth date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&in.BirthTime, "time", "", "Birth time (HH:MM)")
	cmd.Flags().StringVar(&in.BirthCity, "city", "", "Birth city")
	cmd.Flags().StringVar(&in.BirthCountry, "country", "", "Birth country")
	for _, flag := range []string{"date", "time", "city", "country"} {
		_ = cmd.MarkFlagRequired(flag)
	}
	return cmd
}

func printNumerology(w io.Writer, r numerology.Reading) {
	fmt.Fprintf(w, "Nome: %s\n", r.FullName)
	fmt.Fprintf(w, "Letras: %s\n\n", strings.Join(r.Letters, " "))

	width := len(r.Pyramid.Base())
	for _, row := range r.Pyramid {
		cells := make([]string, len(row))
		for j, n := range row {
			cells[j] = fmt.Sprint(n)
		}
		fmt.Fprintf(w, "%s%s\n", strings.Repeat(" ", width-len(row)), strings.Join(cells, " "))
	}

	fmt.Fprintf(w, "\nNúmero do destino: %d\n%s\n", r.DestinyNumber, r.Interpretations.Destiny)
	if len(r.Repetitions) == 0 {
		return
	}
	fmt.Fprintln(w, "\nSequências repetidas:")
	for _, rep := range r.Repetitions {
		fmt.Fprintf(w, "  %d × %d (linha %d): %s\n", rep.Number, rep.Count, rep.Row+1, rep.Meaning)
	}
}

func printChart(w io.Writer, res service.AstrologyResult) {
	chart := res.Chart
	fmt.Fprintf(w, "Sol: %s\nLua: %s\nAscendente: %s\n\n", chart.Sun, chart.Moon, chart.Ascendant)
	fmt.Fprintln(w, "Planetas:")
	for _, p := range chart.Planets {
		fmt.Fprintf(w, "  %-9s %s\n", p.Planet, p.Sign)
	}
	fmt.Fprintf(w, "\n%s\n", chart.Interpretations.Full)
}
