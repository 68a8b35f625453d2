// Package format turns a QueryResult into the response the UI layer
// renders. Formatting is a pure function of the result and the query's
// presentation rules; it is deterministic and template-based, never
// model-backed.
package format

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alishahamin403/Seline-sub014/internal/model"
	"github.com/alishahamin403/Seline-sub014/internal/operation"
)

// summaryOnlyIntents force ItemsToShow empty no matter what the generator
// asked for: showing raw items for these intents is the wrong UX. This is
// a hard rule, not a heuristic.
var summaryOnlyIntents = map[model.Intent]bool{
	model.IntentCompare:   true,
	model.IntentAnalyze:   true,
	model.IntentSummarize: true,
	model.IntentPredict:   true,
}

// Format builds the user-facing response from a query result.
func Format(result *model.QueryResult, query model.SemanticQuery) model.FormattedResponse {
	return model.FormattedResponse{
		Text:        summaryText(result, query),
		ItemsToShow: itemsToShow(result, query),
		Suggestions: suggestions(query.Intent, result),
	}
}

func itemsToShow(result *model.QueryResult, query model.SemanticQuery) []model.Record {
	if summaryOnlyIntents[query.Intent] {
		return []model.Record{}
	}
	if !query.Presentation.IncludeIndividualItems {
		return []model.Record{}
	}

	// Ranked results win over the raw filtered order when both exist.
	var items []model.Record
	if len(result.RankedRecords) > 0 {
		for _, sr := range result.RankedRecords {
			items = append(items, sr.Record)
		}
	} else {
		items = append(items, result.FilteredRecords...)
	}

	if len(items) > model.MaxItemsToShow {
		items = items[:model.MaxItemsToShow]
	}
	if items == nil {
		items = []model.Record{}
	}
	return items
}

func summaryText(result *model.QueryResult, query model.SemanticQuery) string {
	if len(result.FilteredRecords) == 0 {
		return noMatchText(result)
	}

	var parts []string
	if len(result.Aggregations) > 0 {
		parts = append(parts, aggregationText(result.Aggregations, query))
	}
	if len(result.ComparisonTable) > 0 {
		parts = append(parts, comparisonText(result.ComparisonTable, query))
	}
	if len(result.TrendSeries) > 0 {
		parts = append(parts, trendText(result.TrendSeries))
	}
	if len(result.RankedRecords) > 0 {
		parts = append(parts, fmt.Sprintf("Found %d matching records.", len(result.RankedRecords)))
	}
	if len(parts) == 0 {
		parts = append(parts, fmt.Sprintf("Found %d matching records.", len(result.FilteredRecords)))
	}

	if result.Degraded {
		parts = append(parts, "Some sources were unavailable, so results may be incomplete.")
	}
	return strings.Join(parts, " ")
}

func noMatchText(result *model.QueryResult) string {
	if result.Degraded {
		return "No matching records found. Some sources were unavailable, so results may be incomplete."
	}
	return "No matching records found."
}

func aggregationText(agg map[string]float64, query model.SemanticQuery) string {
	var total float64
	for _, v := range agg {
		total += v
	}

	fn := aggregateFn(query)
	switch fn {
	case model.FnCount:
		return fmt.Sprintf("%s items across %d groups.", formatValue(total), len(agg))
	case model.FnAverage, model.FnMin, model.FnMax:
		parts := make([]string, 0, len(agg))
		for _, key := range operation.SortedKeys(agg) {
			parts = append(parts, fmt.Sprintf("%s: %s", key, formatValue(agg[key])))
		}
		return fmt.Sprintf("%s by group: %s.", capitalize(string(fn)), strings.Join(parts, ", "))
	default:
		return fmt.Sprintf("%s total across %d groups.", formatValue(total), len(agg))
	}
}

func aggregateFn(query model.SemanticQuery) model.AggregateFn {
	for _, op := range query.Operations {
		if op.Type == model.OpAggregate && op.Aggregate != nil {
			return op.Aggregate.Fn
		}
	}
	return model.FnSum
}

// comparisonText reports each slice's column total and the delta between
// the first and last slice, in the query's declared slice order.
func comparisonText(table map[string]map[string]float64, query model.SemanticQuery) string {
	labels := sliceLabels(query)
	if len(labels) == 0 {
		labels = operation.SortedKeys(table)
	}

	totals := make([]float64, len(labels))
	parts := make([]string, 0, len(labels))
	for i, label := range labels {
		for _, v := range table[label] {
			totals[i] += v
		}
		parts = append(parts, fmt.Sprintf("%s: %s", label, formatValue(totals[i])))
	}

	text := strings.Join(parts, ", ")
	if len(totals) >= 2 {
		delta := totals[len(totals)-1] - totals[0]
		switch {
		case delta > 0:
			text += fmt.Sprintf(" (up %s from %s to %s)", formatValue(delta), labels[0], labels[len(labels)-1])
		case delta < 0:
			text += fmt.Sprintf(" (down %s from %s to %s)", formatValue(-delta), labels[0], labels[len(labels)-1])
		default:
			text += fmt.Sprintf(" (unchanged from %s to %s)", labels[0], labels[len(labels)-1])
		}
	}
	return text + "."
}

func sliceLabels(query model.SemanticQuery) []string {
	for _, op := range query.Operations {
		if op.Type == model.OpComparison && op.Comparison != nil {
			labels := make([]string, len(op.Comparison.Slices))
			for i, s := range op.Comparison.Slices {
				labels[i] = s.Label
			}
			return labels
		}
	}
	return nil
}

// trendText describes the series direction by comparing the averages of
// its first and second halves.
func trendText(series []model.TrendPoint) string {
	if len(series) == 1 {
		return fmt.Sprintf("One period: %s at %s.", series[0].Label, formatValue(series[0].Value))
	}

	half := len(series) / 2
	firstAvg := averagePoints(series[:half])
	secondAvg := averagePoints(series[half:])

	span := fmt.Sprintf("across %d periods from %s to %s", len(series), series[0].Label, series[len(series)-1].Label)
	switch {
	case secondAvg > firstAvg:
		return fmt.Sprintf("Trending up %s.", span)
	case secondAvg < firstAvg:
		return fmt.Sprintf("Trending down %s.", span)
	default:
		return fmt.Sprintf("Holding steady %s.", span)
	}
}

func averagePoints(points []model.TrendPoint) float64 {
	if len(points) == 0 {
		return 0
	}
	var total float64
	for _, p := range points {
		total += p.Value
	}
	return total / float64(len(points))
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// formatValue renders whole numbers without decimals and everything else
// with two.
func formatValue(v float64) string {
	if v == float64(int64(v)) {
		return strconv.FormatInt(int64(v), 10)
	}
	return strconv.FormatFloat(v, 'f', 2, 64)
}
