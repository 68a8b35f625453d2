package operation

import (
	"fmt"
	"time"

	"github.com/alishahamin403/Seline-sub014/internal/common"
	"github.com/alishahamin403/Seline-sub014/internal/model"
)

// bucketing defines one granularity: how to snap the range start to the
// unit boundary, how to advance one unit, and the bucket label layout.
type bucketing struct {
	truncate func(time.Time) time.Time
	step     func(time.Time) time.Time
	layout   string
}

// Trend buckets records over time. The bucket sequence spans the full
// range of activeRange (the query's DateRange filter) or, when nil, the
// min..max dates of the records; every granularity unit in the span
// appears in the series even when its value is 0. Buckets align to unit
// boundaries (midnight, first of month, Jan 1). Records without dates
// contribute to no bucket.
func Trend(op model.TrendOp, records []model.Record, activeRange *model.DateRangeFilter) ([]model.TrendPoint, error) {
	start, end, ok := trendSpan(records, activeRange)
	if !ok {
		return []model.TrendPoint{}, nil
	}

	buckets, err := granularityBuckets(op.Granularity)
	if err != nil {
		return nil, err
	}

	sum := op.Metric == "sum" || op.Metric == "amount" || op.Metric == "total"

	var series []model.TrendPoint
	for bucketStart := buckets.truncate(start); !bucketStart.After(end); bucketStart = buckets.step(bucketStart) {
		bucketEnd := buckets.step(bucketStart)
		var value float64
		for _, rec := range records {
			d := rec.Projection.Date
			if d == nil || d.Before(bucketStart) || !d.Before(bucketEnd) {
				continue
			}
			if sum {
				if rec.Projection.Amount != nil {
					value += *rec.Projection.Amount
				}
			} else {
				value++
			}
		}
		series = append(series, model.TrendPoint{
			Label: bucketStart.Format(buckets.layout),
			Value: value,
		})
	}
	return series, nil
}

func trendSpan(records []model.Record, activeRange *model.DateRangeFilter) (start, end time.Time, ok bool) {
	if activeRange != nil {
		return activeRange.Start, activeRange.End, true
	}
	for _, rec := range records {
		d := rec.Projection.Date
		if d == nil {
			continue
		}
		if !ok {
			start, end, ok = *d, *d, true
			continue
		}
		if d.Before(start) {
			start = *d
		}
		if d.After(end) {
			end = *d
		}
	}
	return start, end, ok
}

// granularityBuckets resolves a granularity to its bucketing. The cursor
// always steps from a unit boundary: AddDate normalizes overflow, so a
// month cursor started on day 29-31 would skip short months.
func granularityBuckets(g model.Granularity) (bucketing, error) {
	switch g {
	case model.GranularityDaily:
		return bucketing{truncate: startOfDay, step: addDays(1), layout: "2006-01-02"}, nil
	case model.GranularityWeekly:
		return bucketing{truncate: startOfDay, step: addDays(7), layout: "2006-01-02"}, nil
	case model.GranularityMonthly:
		return bucketing{
			truncate: func(t time.Time) time.Time {
				return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
			},
			step:   func(t time.Time) time.Time { return t.AddDate(0, 1, 0) },
			layout: "2006-01",
		}, nil
	case model.GranularityYearly:
		return bucketing{
			truncate: func(t time.Time) time.Time {
				return time.Date(t.Year(), time.January, 1, 0, 0, 0, 0, t.Location())
			},
			step:   func(t time.Time) time.Time { return t.AddDate(1, 0, 0) },
			layout: "2006",
		}, nil
	default:
		return bucketing{}, fmt.Errorf("%w: trend granularity %q", common.ErrUnsupportedOperation, g)
	}
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func addDays(n int) func(time.Time) time.Time {
	return func(t time.Time) time.Time { return t.AddDate(0, 0, n) }
}
