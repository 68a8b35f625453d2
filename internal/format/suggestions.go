package format

import (
	"github.com/alishahamin403/Seline-sub014/internal/model"
)

// suggestions derives up to three template-based follow-up prompts from
// the intent and what the result actually contains.
func suggestions(intent model.Intent, result *model.QueryResult) []string {
	var out []string

	switch intent {
	case model.IntentCompare:
		out = append(out, "Show the trend over time instead")
		if len(result.ComparisonTable) > 0 {
			out = append(out, "Break this down by merchant")
		}
	case model.IntentAnalyze, model.IntentSummarize:
		out = append(out, "Compare this to the previous period")
		if len(result.Aggregations) > 1 {
			out = append(out, "Show only the largest group")
		}
	case model.IntentSearch, model.IntentExplore:
		if len(result.FilteredRecords) > 0 {
			out = append(out, "Narrow this down by date")
			out = append(out, "Summarize these results")
		}
	case model.IntentTrack:
		out = append(out, "Show related messages")
	case model.IntentPredict:
		out = append(out, "Show the history behind this forecast")
	}

	if result.Degraded {
		out = append(out, "Retry with all sources available")
	}

	if len(out) > 3 {
		out = out[:3]
	}
	return out
}
