package operation

import (
	"fmt"
	"strings"

	"github.com/alishahamin403/Seline-sub014/internal/common"
	"github.com/alishahamin403/Seline-sub014/internal/model"
)

// totalGroup is the implicit single group when a comparison has no GroupBy.
const totalGroup = "total"

// Compare builds the slices-by-groups metric table. The table has no
// missing cells: every declared slice appears, and every group observed
// anywhere in the filtered set appears under every slice, with value 0
// when no records matched. Downstream rendering relies on the fixed shape.
func Compare(op model.ComparisonOp, records []model.Record) (map[string]map[string]float64, error) {
	if len(op.Slices) == 0 {
		return nil, fmt.Errorf("%w: comparison has no slices", common.ErrUnsupportedOperation)
	}

	// The group universe spans all filtered records, not just one slice,
	// so a group present in one slice still shows a 0 in the others.
	groups := groupUniverse(op.GroupBy, records)

	table := make(map[string]map[string]float64, len(op.Slices))
	for _, slice := range op.Slices {
		members, err := sliceMembers(op.Dimension, slice, records)
		if err != nil {
			return nil, err
		}

		column := make(map[string]float64, len(groups))
		for _, g := range groups {
			column[g] = 0
		}
		for g, cell := range partitionMetric(op, members) {
			column[g] = cell
		}
		table[slice.Label] = column
	}
	return table, nil
}

func groupUniverse(by model.GroupBy, records []model.Record) []string {
	if by == "" {
		return []string{totalGroup}
	}
	seen := make(map[string]struct{})
	var groups []string
	for _, rec := range records {
		key, ok := groupKey(by, rec.Projection)
		if !ok {
			continue
		}
		if _, dup := seen[key]; !dup {
			seen[key] = struct{}{}
			groups = append(groups, key)
		}
	}
	return groups
}

func sliceMembers(dim model.ComparisonDimension, slice model.Slice, records []model.Record) ([]model.Record, error) {
	var members []model.Record
	switch dim {
	case model.DimensionTime:
		if slice.Start == nil || slice.End == nil {
			return nil, fmt.Errorf("%w: time slice %q has no date range", common.ErrUnsupportedOperation, slice.Label)
		}
		for _, rec := range records {
			d := rec.Projection.Date
			if d == nil {
				continue
			}
			if !d.Before(*slice.Start) && !d.After(*slice.End) {
				members = append(members, rec)
			}
		}
	case model.DimensionCategory:
		for _, rec := range records {
			if rec.Projection.Category != nil && inValues(*rec.Projection.Category, slice.Values) {
				members = append(members, rec)
			}
		}
	case model.DimensionMerchant:
		for _, rec := range records {
			if rec.Projection.Counterparty != nil && inValues(*rec.Projection.Counterparty, slice.Values) {
				members = append(members, rec)
			}
		}
	default:
		return nil, fmt.Errorf("%w: comparison dimension %q", common.ErrUnsupportedOperation, dim)
	}
	return members, nil
}

func inValues(v string, values []string) bool {
	for _, candidate := range values {
		if strings.EqualFold(candidate, v) {
			return true
		}
	}
	return false
}

// partitionMetric computes the metric for each group present in members.
func partitionMetric(op model.ComparisonOp, members []model.Record) map[string]float64 {
	groups := make(map[string][]model.Record)
	if op.GroupBy == "" {
		groups[totalGroup] = members
	} else {
		for _, rec := range members {
			key, ok := groupKey(op.GroupBy, rec.Projection)
			if !ok {
				continue
			}
			groups[key] = append(groups[key], rec)
		}
	}

	out := make(map[string]float64, len(groups))
	for key, recs := range groups {
		switch op.Metric {
		case model.MetricCount:
			out[key] = float64(len(recs))
		case model.MetricAverage:
			out[key] = averageAmount(recs)
		default: // MetricTotal and unset
			out[key] = sumAmounts(recs)
		}
	}
	return out
}
