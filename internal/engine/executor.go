// Package engine executes semantic queries against the registered data
// sources: validate, fetch (fan-out), filter, operate. The engine keeps no
// state between queries; every dependency is injected.
package engine

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/alishahamin403/Seline-sub014/internal/common"
	"github.com/alishahamin403/Seline-sub014/internal/filter"
	"github.com/alishahamin403/Seline-sub014/internal/model"
	"github.com/alishahamin403/Seline-sub014/internal/operation"
)

// Stage names the executor pipeline stages, for logging and failure
// reporting.
type Stage string

// Pipeline stages.
const (
	StageValidating Stage = "validating"
	StageFetching   Stage = "fetching"
	StageFiltering  Stage = "filtering"
	StageOperating  Stage = "operating"
	StageDone       Stage = "done"
	StageFailed     Stage = "failed"
)

// Config holds configuration options for the executor.
type Config struct {
	// FetchTimeout bounds each individual source fetch. A source that
	// exceeds it contributes an empty set and marks the result degraded.
	FetchTimeout time.Duration

	// Now supplies the clock for recency ranking; tests pin it.
	Now func() time.Time
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		FetchTimeout: 10 * time.Second,
		Now:          time.Now,
	}
}

// Executor runs semantic queries. Construct one per set of sources; it is
// safe for concurrent use since it holds no per-query state.
type Executor struct {
	sources map[model.RecordKind]Source
	config  Config
}

// New creates an executor over the given sources with default config.
func New(sources []Source) *Executor {
	return NewWithConfig(sources, DefaultConfig())
}

// NewWithConfig creates an executor with custom configuration.
func NewWithConfig(sources []Source, config Config) *Executor {
	if config.FetchTimeout <= 0 {
		config.FetchTimeout = DefaultConfig().FetchTimeout
	}
	if config.Now == nil {
		config.Now = time.Now
	}
	byKind := make(map[model.RecordKind]Source, len(sources))
	for _, s := range sources {
		byKind[s.Kind()] = s
	}
	return &Executor{sources: byKind, config: config}
}

// Execute runs one query through the pipeline. Fatal errors (invalid
// query, unsupported filter or operation variant) abort with no partial
// result; per-source fetch failures degrade that source to an empty
// contribution and are recorded on the result instead.
func (e *Executor) Execute(ctx context.Context, query model.SemanticQuery) (*model.QueryResult, error) {
	slog.Debug("executing query",
		"intent", query.Intent,
		"sources", len(query.DataSources),
		"filters", len(query.Filters),
		"operations", len(query.Operations),
		"confidence", query.Confidence)

	if err := validate(query); err != nil {
		return nil, err
	}

	records, sourceErrs, err := e.fetch(ctx, query.DataSources)
	if err != nil {
		return nil, stageError(StageFetching, err)
	}

	filtered, err := filter.Apply(query.Filters, records)
	if err != nil {
		return nil, stageError(StageFiltering, err)
	}

	result := &model.QueryResult{
		FilteredRecords: filtered,
		SourceErrors:    sourceErrs,
		Degraded:        len(sourceErrs) > 0,
		Confidence:      query.Confidence,
	}

	if err := e.operate(query, filtered, result); err != nil {
		return nil, stageError(StageOperating, err)
	}

	slog.Debug("query complete",
		"fetched", len(records),
		"filtered", len(filtered),
		"degraded", result.Degraded)
	return result, nil
}

func validate(query model.SemanticQuery) error {
	if len(query.DataSources) == 0 {
		return fmt.Errorf("%w: no data sources", common.ErrInvalidQuery)
	}
	if len(query.Operations) == 0 {
		return fmt.Errorf("%w: no operations", common.ErrInvalidQuery)
	}
	return nil
}

// fetch fans out one bounded fetch per data source and joins the results
// in source order, so the merged sequence is deterministic regardless of
// completion order.
func (e *Executor) fetch(ctx context.Context, refs []model.SourceRef) ([]model.Record, []model.SourceError, error) {
	type fetchResult struct {
		err     error
		records []model.Record
	}

	results := make([]fetchResult, len(refs))
	var wg sync.WaitGroup
	for i, ref := range refs {
		src, ok := e.sources[ref.Kind]
		if !ok {
			results[i] = fetchResult{err: fmt.Errorf("%w: no source for kind %q", common.ErrSourceFetchFailed, ref.Kind)}
			continue
		}

		wg.Add(1)
		go func(i int, ref model.SourceRef, src Source) {
			defer wg.Done()
			fetchCtx, cancel := context.WithTimeout(ctx, e.config.FetchTimeout)
			defer cancel()

			records, err := src.FetchAll(fetchCtx, ref.Scope)
			if err != nil {
				results[i] = fetchResult{err: fmt.Errorf("%w: %s: %w", common.ErrSourceFetchFailed, ref.Kind, err)}
				return
			}
			results[i] = fetchResult{records: records}
		}(i, ref, src)
	}
	wg.Wait()

	// Cancellation of the whole pipeline is fatal, not a degradation.
	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}

	var merged []model.Record
	var sourceErrs []model.SourceError
	for i, res := range results {
		if res.err != nil {
			slog.Warn("source fetch degraded", "kind", refs[i].Kind, "scope", refs[i].Scope, "error", res.err)
			sourceErrs = append(sourceErrs, model.SourceError{Source: refs[i], Err: res.err})
			continue
		}
		merged = append(merged, res.records...)
	}
	return merged, sourceErrs, nil
}

// operate applies each operation to the filtered set in listed order.
// Operations are independent transforms of the same filtered records;
// they never consume each other's output.
func (e *Executor) operate(query model.SemanticQuery, filtered []model.Record, result *model.QueryResult) error {
	for _, op := range query.Operations {
		switch op.Type {
		case model.OpAggregate:
			if op.Aggregate == nil {
				return fmt.Errorf("%w: %q has no payload", common.ErrUnsupportedOperation, op.Type)
			}
			agg, err := operation.Aggregate(*op.Aggregate, filtered)
			if err != nil {
				return err
			}
			result.Aggregations = agg
		case model.OpComparison:
			if op.Comparison == nil {
				return fmt.Errorf("%w: %q has no payload", common.ErrUnsupportedOperation, op.Type)
			}
			table, err := operation.Compare(*op.Comparison, filtered)
			if err != nil {
				return err
			}
			result.ComparisonTable = table
		case model.OpSearch:
			if op.Search == nil {
				return fmt.Errorf("%w: %q has no payload", common.ErrUnsupportedOperation, op.Type)
			}
			result.RankedRecords = operation.Search(*op.Search, filtered, e.config.Now())
		case model.OpTrend:
			if op.Trend == nil {
				return fmt.Errorf("%w: %q has no payload", common.ErrUnsupportedOperation, op.Type)
			}
			series, err := operation.Trend(*op.Trend, filtered, activeDateRange(query.Filters))
			if err != nil {
				return err
			}
			result.TrendSeries = series
		default:
			return fmt.Errorf("%w: %q", common.ErrUnsupportedOperation, op.Type)
		}
	}
	return nil
}

// activeDateRange finds the query's DateRange filter so trend buckets can
// span the full requested window, including empty buckets at the edges.
func activeDateRange(filters []model.Filter) *model.DateRangeFilter {
	for _, f := range filters {
		if f.Type == model.FilterDateRange && f.DateRange != nil {
			return f.DateRange
		}
	}
	return nil
}

func stageError(stage Stage, err error) error {
	return fmt.Errorf("%s: %w", stage, err)
}
