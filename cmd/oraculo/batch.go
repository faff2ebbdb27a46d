package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vanshika/oraculo/internal/generator"
	"github.com/vanshika/oraculo/internal/service"
)

// batchRecord is the flattened per-item output of a batch run.
type batchRecord struct {
	Index         int    `json:"index" yaml:"index"`
	FullName      string `json:"fullName,omitempty" yaml:"fullName,omitempty"`
	BirthDate     string `json:"birthDate" yaml:"birthDate"`
	DestinyNumber int    `json:"destinyNumber,omitempty" yaml:"destinyNumber,omitempty"`
	Apex          int    `json:"apex,omitempty" yaml:"apex,omitempty"`
	Repetitions   int    `json:"repetitions,omitempty" yaml:"repetitions,omitempty"`
	Sun           string `json:"sun,omitempty" yaml:"sun,omitempty"`
	Moon          string `json:"moon,omitempty" yaml:"moon,omitempty"`
	Ascendant     string `json:"ascendant,omitempty" yaml:"ascendant,omitempty"`
	Error         string `json:"error,omitempty" yaml:"error,omitempty"`
}

func newBatchCmd(opts *rootOptions) *cobra.Command {
	var (
		input   string
		output  string
		format  string
		workers int
	)

	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Compute readings for every person in a JSON or YAML file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := opts.logger(cmd).With("component", "batch")

			items, err := generator.ReadFile(input)
			if err != nil {
				return err
			}
			logger.Info("batch loaded", "items", len(items), "path", input)

			bulk := service.NewBulkCalculator(opts.readingService(cmd), workers)
			results, runErr := bulk.Calculate(cmd.Context(), items)

			var taskErr *service.TaskError
			if runErr != nil && !errors.As(runErr, &taskErr) {
				return runErr
			}

			records := make([]batchRecord, 0, len(results))
			for _, res := range results {
				records = append(records, newBatchRecord(res))
			}

			outFormat := generator.Format(format)
			if outFormat == "" {
				outFormat = generator.FormatFromPath(output)
			}
			write := func(w io.Writer) error { return writeRecords(w, records, outFormat) }
			if output == "" {
				err = write(cmd.OutOrStdout())
			} else {
				err = generator.CreateFile(output, write)
			}
			if err != nil {
				return err
			}

			if taskErr != nil {
				logger.Warn("batch finished with failures", "failed", len(taskErr.Errors), "total", len(items))
				return fmt.Errorf("%d of %d items failed", len(taskErr.Errors), len(items))
			}
			logger.Info("batch finished", "total", len(items))
			return nil
		},
	}
	cmd.Flags().StringVarP(&input, "input", "i", "", "Batch file (.json, .yaml or .yml)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file (default stdout)")
	cmd.Flags().StringVar(&format, "format", "", "Output format: json or yaml (default from --output extension)")
	cmd.Flags().IntVar(&workers, "workers", 4, "Number of concurrent workers")
	_ = cmd.MarkFlagRequired("input")
	return cmd
}

func newBatchRecord(res service.BatchResult) batchRecord {
	rec := batchRecord{
		Index:     res.Index,
		FullName:  res.Item.FullName,
		BirthDate: res.Item.BirthDate,
	}
	if res.Err != nil {
		rec.Error = res.Err.Error()
	}
	if num := res.Numerology; num != nil {
		rec.DestinyNumber = num.Reading.DestinyNumber
		rec.Apex = num.Reading.Pyramid.Apex()
		rec.Repetitions = len(num.Reading.Repetitions)
	}
	if chart := res.Astrology; chart != nil {
		rec.Sun = chart.Chart.Sun.String()
		rec.Moon = chart.Chart.Moon.String()
		rec.Ascendant = chart.Chart.Ascendant.String()
	}
	return rec
}

func writeRecords(w io.Writer, records []batchRecord, format generator.Format) error {
	switch format {
	case generator.FormatYAML:
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(2)
		if err := encoder.Encode(records); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return encoder.Close()
	case generator.FormatJSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(records)
	default:
		return fmt.Errorf("unsupported format %q", format)
	}
}
