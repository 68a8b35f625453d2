package operation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alishahamin403/Seline-sub014/internal/common"
	"github.com/alishahamin403/Seline-sub014/internal/model"
)

func timeSlice(label string, start, end time.Time) model.Slice {
	return model.Slice{Label: label, Start: &start, End: &end}
}

func octNovComparison(groupBy model.GroupBy) model.ComparisonOp {
	return model.ComparisonOp{
		Dimension: model.DimensionTime,
		Metric:    model.MetricTotal,
		GroupBy:   groupBy,
		Slices: []model.Slice{
			timeSlice("Oct", day(2024, 10, 1), time.Date(2024, 10, 31, 23, 59, 59, 0, time.UTC)),
			timeSlice("Nov", day(2024, 11, 1), time.Date(2024, 11, 30, 23, 59, 59, 0, time.UTC)),
		},
	}
}

// Two October records (food $80, shopping $40) and one November record
// (food $60): November must still carry a shopping cell with value 0.
func TestCompare_TimeByCategory_NoMissingCells(t *testing.T) {
	got, err := Compare(octNovComparison(model.GroupByCategory), spendingRecords())
	require.NoError(t, err)

	assert.Equal(t, map[string]map[string]float64{
		"Oct": {"food": 80, "shopping": 40},
		"Nov": {"food": 60, "shopping": 0},
	}, got)
}

func TestCompare_NoGroupByUsesImplicitTotal(t *testing.T) {
	got, err := Compare(octNovComparison(""), spendingRecords())
	require.NoError(t, err)

	assert.Equal(t, map[string]map[string]float64{
		"Oct": {"total": 120},
		"Nov": {"total": 60},
	}, got)
}

// Comparison/aggregate consistency: a slice's column must equal the
// aggregate computed over that slice's records alone.
func TestCompare_ColumnsMatchSliceAggregates(t *testing.T) {
	records := spendingRecords()
	table, err := Compare(octNovComparison(model.GroupByCategory), records)
	require.NoError(t, err)

	var octRecords []model.Record
	for _, rec := range records {
		if rec.Projection.Date.Month() == time.October {
			octRecords = append(octRecords, rec)
		}
	}
	octAgg, err := Aggregate(model.AggregateOp{Fn: model.FnSum, GroupBy: model.GroupByCategory}, octRecords)
	require.NoError(t, err)

	for group, want := range octAgg {
		assert.Equal(t, want, table["Oct"][group], "group %s", group)
	}
}

func TestCompare_CategoryDimension(t *testing.T) {
	op := model.ComparisonOp{
		Dimension: model.DimensionCategory,
		Metric:    model.MetricCount,
		Slices: []model.Slice{
			{Label: "eating out", Values: []string{"food"}},
			{Label: "everything else", Values: []string{"shopping", "transport"}},
		},
	}

	got, err := Compare(op, spendingRecords())
	require.NoError(t, err)
	assert.Equal(t, map[string]map[string]float64{
		"eating out":      {"total": 2},
		"everything else": {"total": 1},
	}, got)
}

func TestCompare_MerchantDimensionAverage(t *testing.T) {
	op := model.ComparisonOp{
		Dimension: model.DimensionMerchant,
		Metric:    model.MetricAverage,
		Slices: []model.Slice{
			{Label: "Pizza Hut", Values: []string{"Pizza Hut"}},
			{Label: "Amazon", Values: []string{"Amazon"}},
		},
	}

	got, err := Compare(op, spendingRecords())
	require.NoError(t, err)
	assert.Equal(t, 70.0, got["Pizza Hut"]["total"])
	assert.Equal(t, 40.0, got["Amazon"]["total"])
}

func TestCompare_EmptySliceStillPresent(t *testing.T) {
	op := octNovComparison(model.GroupByCategory)
	op.Slices = append(op.Slices, timeSlice("Dec", day(2024, 12, 1), day(2024, 12, 31)))

	got, err := Compare(op, spendingRecords())
	require.NoError(t, err)

	require.Contains(t, got, "Dec")
	assert.Equal(t, map[string]float64{"food": 0, "shopping": 0}, got["Dec"])
}

func TestCompare_InvalidShapesFailClosed(t *testing.T) {
	_, err := Compare(model.ComparisonOp{Dimension: model.DimensionTime, Metric: model.MetricTotal}, spendingRecords())
	require.Error(t, err, "no slices")
	assert.ErrorIs(t, err, common.ErrUnsupportedOperation)

	_, err = Compare(model.ComparisonOp{
		Dimension: model.DimensionTime,
		Metric:    model.MetricTotal,
		Slices:    []model.Slice{{Label: "Oct"}},
	}, spendingRecords())
	require.Error(t, err, "time slice without range")
	assert.ErrorIs(t, err, common.ErrUnsupportedOperation)

	_, err = Compare(model.ComparisonOp{
		Dimension: "location",
		Metric:    model.MetricTotal,
		Slices:    []model.Slice{{Label: "x", Values: []string{"y"}}},
	}, spendingRecords())
	require.Error(t, err, "unknown dimension")
	assert.ErrorIs(t, err, common.ErrUnsupportedOperation)
}
