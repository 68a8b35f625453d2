package storage

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alishahamin403/Seline-sub014/internal/engine"
	"github.com/alishahamin403/Seline-sub014/internal/format"
	"github.com/alishahamin403/Seline-sub014/internal/model"
)

// End to end across real storage: seed SQLite, execute a comparison
// query, format the response.
func TestQueryAgainstSQLite(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()

	require.NoError(t, store.SaveFinancialRecords(ctx, []model.FinancialRecord{
		{ID: "f1", Date: day(2024, 10, 2), Merchant: "Pizza Hut", Category: "food", Amount: 80},
		{ID: "f2", Date: day(2024, 10, 9), Merchant: "Amazon", Category: "shopping", Amount: 40},
		{ID: "f3", Date: day(2024, 11, 5), Merchant: "Pizza Hut", Category: "food", Amount: 60},
	}, ""))

	exec := engine.New(store.Sources())

	octStart, octEnd := day(2024, 10, 1), time.Date(2024, 10, 31, 23, 59, 59, 0, time.UTC)
	novStart, novEnd := day(2024, 11, 1), time.Date(2024, 11, 30, 23, 59, 59, 0, time.UTC)
	query := model.SemanticQuery{
		Intent:      model.IntentCompare,
		DataSources: []model.SourceRef{{Kind: model.KindFinancial}},
		Operations: []model.Operation{
			{Type: model.OpComparison, Comparison: &model.ComparisonOp{
				Dimension: model.DimensionTime,
				Metric:    model.MetricTotal,
				GroupBy:   model.GroupByCategory,
				Slices: []model.Slice{
					{Label: "Oct", Start: &octStart, End: &octEnd},
					{Label: "Nov", Start: &novStart, End: &novEnd},
				},
			}},
		},
		Presentation: model.Presentation{Format: model.FormatTable, IncludeIndividualItems: true},
		Confidence:   0.9,
	}

	result, err := exec.Execute(ctx, query)
	require.NoError(t, err)

	assert.Equal(t, map[string]map[string]float64{
		"Oct": {"food": 80, "shopping": 40},
		"Nov": {"food": 60, "shopping": 0},
	}, result.ComparisonTable)

	resp := format.Format(result, query)
	assert.Empty(t, resp.ItemsToShow, "compare intent hides raw items even when requested")
	assert.Contains(t, resp.Text, "Oct: 120")
}
