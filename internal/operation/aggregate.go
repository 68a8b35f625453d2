// Package operation implements the computations that run over a filtered
// record set: aggregate, comparison, ranked search, and trend analysis.
// Every operation is a pure, deterministic transform of its input; none of
// them mutates the records or depends on ambient state.
package operation

import (
	"fmt"
	"sort"
	"strings"

	"github.com/alishahamin403/Seline-sub014/internal/common"
	"github.com/alishahamin403/Seline-sub014/internal/model"
)

// dateGroupLayout buckets date groups at day resolution.
const dateGroupLayout = "2006-01-02"

// groupKey resolves a record's partition key for the given grouping. The
// second return is false when the record lacks the grouped field; such
// records belong to no partition.
func groupKey(by model.GroupBy, p model.Projection) (string, bool) {
	switch by {
	case model.GroupByCategory:
		if p.Category == nil {
			return "", false
		}
		return strings.ToLower(*p.Category), true
	case model.GroupByMerchant:
		if p.Counterparty == nil {
			return "", false
		}
		return strings.ToLower(*p.Counterparty), true
	case model.GroupByDate:
		if p.Date == nil {
			return "", false
		}
		return p.Date.Format(dateGroupLayout), true
	case model.GroupByStatus:
		if p.Status == nil {
			return "", false
		}
		return strings.ToLower(*p.Status), true
	default:
		return "", false
	}
}

// Aggregate partitions records by op.GroupBy and applies op.Fn to each
// partition. Group keys sort ascending; day-resolution date keys sort
// chronologically because the layout is lexicographic.
func Aggregate(op model.AggregateOp, records []model.Record) (map[string]float64, error) {
	groups := make(map[string][]model.Record)
	for _, rec := range records {
		key, ok := groupKey(op.GroupBy, rec.Projection)
		if !ok {
			continue
		}
		groups[key] = append(groups[key], rec)
	}

	out := make(map[string]float64, len(groups))
	for key, members := range groups {
		v, err := applyFn(op.Fn, members)
		if err != nil {
			return nil, err
		}
		out[key] = v
	}
	return out, nil
}

func applyFn(fn model.AggregateFn, records []model.Record) (float64, error) {
	switch fn {
	case model.FnCount:
		return float64(len(records)), nil
	case model.FnSum:
		return sumAmounts(records), nil
	case model.FnAverage:
		return averageAmount(records), nil
	case model.FnMin:
		v, _ := minMaxAmount(records)
		return v, nil
	case model.FnMax:
		_, v := minMaxAmount(records)
		return v, nil
	default:
		return 0, fmt.Errorf("%w: aggregate fn %q", common.ErrUnsupportedOperation, fn)
	}
}

func sumAmounts(records []model.Record) float64 {
	var total float64
	for _, rec := range records {
		if rec.Projection.Amount != nil {
			total += *rec.Projection.Amount
		}
	}
	return total
}

func averageAmount(records []model.Record) float64 {
	var total float64
	var n int
	for _, rec := range records {
		if rec.Projection.Amount != nil {
			total += *rec.Projection.Amount
			n++
		}
	}
	if n == 0 {
		return 0
	}
	return total / float64(n)
}

func minMaxAmount(records []model.Record) (minV, maxV float64) {
	first := true
	for _, rec := range records {
		if rec.Projection.Amount == nil {
			continue
		}
		a := *rec.Projection.Amount
		if first {
			minV, maxV = a, a
			first = false
			continue
		}
		if a < minV {
			minV = a
		}
		if a > maxV {
			maxV = a
		}
	}
	return minV, maxV
}

// SortedKeys returns the map's keys in ascending order. Aggregation and
// comparison results are maps; callers that need the deterministic group
// ordering iterate through this.
func SortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
