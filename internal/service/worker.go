package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

// TaskError accumulates multiple errors produced during a batch run.
type TaskError struct {
	Errors []error
}

func (e *TaskError) Error() string {
	if len(e.Errors) == 0 {
		return "no errors"
	}
	if len(e.Errors) == 1 {
		return e.Errors[0].Error()
	}
	msg := "multiple errors:"
	for _, err := range e.Errors {
		msg += " " + err.Error() + ";"
	}
	return msg
}

func (e *TaskError) Unwrap() []error {
	return e.Errors
}

func (e *TaskError) append(err error) {
	if err == nil {
		return
	}
	e.Errors = append(e.Errors, err)
}

func (e *TaskError) asError() error {
	if len(e.Errors) == 0 {
		return nil
	}
	return e
}

// BatchItem is one person in a batch file. A numerology reading is produced
// when FullName is set and a chart when BirthTime is set.
type BatchItem struct {
	FullName     string `json:"fullName,omitempty" yaml:"fullName,omitempty"`
	BirthDate    string `json:"birthDate" yaml:"birthDate"`
	BirthTime    string `json:"birthTime,omitempty" yaml:"birthTime,omitempty"`
	BirthCity    string `json:"birthCity,omitempty" yaml:"birthCity,omitempty"`
	BirthCountry string `json:"birthCountry,omitempty" yaml:"birthCountry,omitempty"`
}

// BatchResult holds the outcome for the item at Index.
type BatchResult struct {
	Index      int
	Item       BatchItem
	Numerology *NumerologyResult
	Astrology  *AstrologyResult
	Err        error
}

// BulkCalculator runs readings for many items using a worker pool.
type BulkCalculator struct {
	service *ReadingService
	workers int
}

// NewBulkCalculator creates a BulkCalculator with the provided concurrency.
func NewBulkCalculator(service *ReadingService, workers int) *BulkCalculator {
	if workers <= 0 {
		workers = 4
	}
	return &BulkCalculator{
		service: service,
		workers: workers,
	}
}

// Calculate processes every item and returns results in input order. The
// error is a *TaskError when individual items failed, or the context error
// when the run was cancelled.
func (bc *BulkCalculator) Calculate(ctx context.Context, items []BatchItem) ([]BatchResult, error) {
	results := make([]BatchResult, len(items))
	err := bc.run(ctx, len(items), func(idx int) error {
		res := bc.calculateOne(ctx, items[idx])
		res.Index = idx
		results[idx] = res
		if res.Err != nil {
			return fmt.Errorf("item %d: %w", idx, res.Err)
		}
		return nil
	})
	return results, err
}

func (bc *BulkCalculator) calculateOne(ctx context.Context, item BatchItem) BatchResult {
	res := BatchResult{Item: item}
	if item.FullName == "" && item.BirthTime == "" {
		res.Err = invalid("fullName", "informe fullName, birthTime ou ambos")
		return res
	}
	if item.FullName != "" {
		num, err := bc.service.CalculateNumerology(ctx, NumerologyInput{FullName: item.FullName, BirthDate: item.BirthDate})
		if err != nil {
			res.Err = err
			return res
		}
		res.Numerology = &num
	}
	if item.BirthTime != "" {
		chart, err := bc.service.CalculateAstrology(ctx, AstrologyInput{
			BirthDate:    item.BirthDate,
			BirthTime:    item.BirthTime,
			BirthCity:    item.BirthCity,
			BirthCountry: item.BirthCountry,
		})
		if err != nil {
			res.Err = err
			return res
		}
		res.Astrology = &chart
	}
	return res
}

func (bc *BulkCalculator) run(ctx context.Context, total int, workerFn func(idx int) error) error {
	if total == 0 {
		return nil
	}
	indexCh := make(chan int)
	errs := make([]error, total)
	var wg sync.WaitGroup

	worker := func() {
		defer wg.Done()
		for idx := range indexCh {
			errs[idx] = workerFn(idx)
		}
	}

	for i := 0; i < bc.workers; i++ {
		wg.Add(1)
		go worker()
	}

Loop:
	for i := 0; i < total; i++ {
		select {
		case indexCh <- i:
		case <-ctx.Done():
			break Loop
		}
	}
	close(indexCh)
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return err
	}

	var taskErr TaskError
	for _, err := range errs {
		if err == nil {
			continue
		}
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return err
		}
		taskErr.append(err)
	}
	return taskErr.asError()
}
