package format

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alishahamin403/Seline-sub014/internal/model"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 12, 0, 0, 0, time.UTC)
}

func financial(id string, amount float64, date time.Time) model.Record {
	return model.FinancialRecord{
		ID:       id,
		Date:     date,
		Merchant: "Cafe",
		Category: "food",
		Amount:   amount,
	}.Record()
}

func someRecords(n int) []model.Record {
	records := make([]model.Record, n)
	for i := range records {
		records[i] = financial(fmt.Sprintf("%02d", i), 5, day(2024, 10, 1))
	}
	return records
}

func showItemsQuery(intent model.Intent) model.SemanticQuery {
	return model.SemanticQuery{
		Intent: intent,
		Presentation: model.Presentation{
			Format:                 model.FormatList,
			IncludeIndividualItems: true,
		},
	}
}

// The presentation hard rule: summary intents never show raw items, no
// matter what the generator requested.
func TestFormat_SummaryIntentsHideItems(t *testing.T) {
	result := &model.QueryResult{FilteredRecords: someRecords(5)}

	for _, intent := range []model.Intent{
		model.IntentCompare, model.IntentAnalyze, model.IntentSummarize, model.IntentPredict,
	} {
		t.Run(string(intent), func(t *testing.T) {
			resp := Format(result, showItemsQuery(intent))
			assert.Empty(t, resp.ItemsToShow, "intent %s must never show raw items", intent)
		})
	}
}

func TestFormat_ItemIntentsShowItems(t *testing.T) {
	result := &model.QueryResult{FilteredRecords: someRecords(5)}

	for _, intent := range []model.Intent{model.IntentSearch, model.IntentExplore, model.IntentTrack} {
		t.Run(string(intent), func(t *testing.T) {
			resp := Format(result, showItemsQuery(intent))
			assert.Len(t, resp.ItemsToShow, 5)
		})
	}
}

func TestFormat_ItemsCapAtTwenty(t *testing.T) {
	result := &model.QueryResult{FilteredRecords: someRecords(35)}

	resp := Format(result, showItemsQuery(model.IntentSearch))
	assert.Len(t, resp.ItemsToShow, model.MaxItemsToShow)
}

func TestFormat_IncludeIndividualItemsFalseHidesItems(t *testing.T) {
	result := &model.QueryResult{FilteredRecords: someRecords(5)}
	query := showItemsQuery(model.IntentSearch)
	query.Presentation.IncludeIndividualItems = false

	resp := Format(result, query)
	assert.Empty(t, resp.ItemsToShow)
}

func TestFormat_RankedRecordsWinOverFiltered(t *testing.T) {
	records := someRecords(3)
	result := &model.QueryResult{
		FilteredRecords: records,
		RankedRecords: []model.ScoredRecord{
			{Record: records[2], Score: 0.9},
			{Record: records[0], Score: 0.4},
		},
	}

	resp := Format(result, showItemsQuery(model.IntentSearch))
	require.Len(t, resp.ItemsToShow, 2)
	assert.Equal(t, "02", resp.ItemsToShow[0].Projection.ID)
	assert.Equal(t, "00", resp.ItemsToShow[1].Projection.ID)
}

func TestFormat_NoMatchesMessage(t *testing.T) {
	resp := Format(&model.QueryResult{}, showItemsQuery(model.IntentSearch))
	assert.Equal(t, "No matching records found.", resp.Text)
	assert.Empty(t, resp.ItemsToShow)

	degraded := Format(&model.QueryResult{Degraded: true}, showItemsQuery(model.IntentSearch))
	assert.Contains(t, degraded.Text, "No matching records found.")
	assert.Contains(t, degraded.Text, "sources were unavailable",
		"a degraded empty result must be distinguishable from a clean miss")
}

func TestFormat_AggregationText(t *testing.T) {
	result := &model.QueryResult{
		FilteredRecords: someRecords(3),
		Aggregations:    map[string]float64{"food": 140, "shopping": 40},
	}
	query := model.SemanticQuery{
		Intent: model.IntentAnalyze,
		Operations: []model.Operation{
			{Type: model.OpAggregate, Aggregate: &model.AggregateOp{Fn: model.FnSum, GroupBy: model.GroupByCategory}},
		},
	}

	resp := Format(result, query)
	assert.Equal(t, "180 total across 2 groups.", resp.Text)
}

func TestFormat_ComparisonTextReportsDelta(t *testing.T) {
	result := &model.QueryResult{
		FilteredRecords: someRecords(3),
		ComparisonTable: map[string]map[string]float64{
			"Oct": {"food": 80, "shopping": 40},
			"Nov": {"food": 60, "shopping": 0},
		},
	}
	query := model.SemanticQuery{
		Intent: model.IntentCompare,
		Operations: []model.Operation{
			{Type: model.OpComparison, Comparison: &model.ComparisonOp{
				Dimension: model.DimensionTime,
				Metric:    model.MetricTotal,
				Slices:    []model.Slice{{Label: "Oct"}, {Label: "Nov"}},
			}},
		},
	}

	resp := Format(result, query)
	assert.Contains(t, resp.Text, "Oct: 120")
	assert.Contains(t, resp.Text, "Nov: 60")
	assert.Contains(t, resp.Text, "down 60")
	assert.Empty(t, resp.ItemsToShow)
}

func TestFormat_TrendTextDirection(t *testing.T) {
	up := &model.QueryResult{
		FilteredRecords: someRecords(2),
		TrendSeries: []model.TrendPoint{
			{Label: "2024-10-01", Value: 1},
			{Label: "2024-10-08", Value: 2},
			{Label: "2024-10-15", Value: 5},
			{Label: "2024-10-22", Value: 6},
		},
	}
	resp := Format(up, model.SemanticQuery{Intent: model.IntentAnalyze})
	assert.Contains(t, resp.Text, "Trending up")
	assert.Contains(t, resp.Text, "4 periods")

	down := &model.QueryResult{
		FilteredRecords: someRecords(2),
		TrendSeries: []model.TrendPoint{
			{Label: "2024-10-01", Value: 6},
			{Label: "2024-10-08", Value: 1},
		},
	}
	resp = Format(down, model.SemanticQuery{Intent: model.IntentAnalyze})
	assert.Contains(t, resp.Text, "Trending down")
}

func TestFormat_SuggestionsBounded(t *testing.T) {
	result := &model.QueryResult{
		FilteredRecords: someRecords(2),
		ComparisonTable: map[string]map[string]float64{"Oct": {"total": 1}},
		Degraded:        true,
	}

	for _, intent := range []model.Intent{
		model.IntentSearch, model.IntentCompare, model.IntentAnalyze,
		model.IntentExplore, model.IntentTrack, model.IntentSummarize, model.IntentPredict,
	} {
		resp := Format(result, model.SemanticQuery{Intent: intent})
		assert.LessOrEqual(t, len(resp.Suggestions), 3, "intent %s", intent)
	}
}

func TestFormat_CompareSuggestsTrendFollowUp(t *testing.T) {
	result := &model.QueryResult{
		FilteredRecords: someRecords(2),
		ComparisonTable: map[string]map[string]float64{"Oct": {"total": 1}},
	}

	resp := Format(result, model.SemanticQuery{Intent: model.IntentCompare})
	require.NotEmpty(t, resp.Suggestions)
	assert.Contains(t, resp.Suggestions[0], "trend")
}
