package model

import "encoding/json"

// ScoredRecord pairs a record with its search ranking score.
type ScoredRecord struct {
	Record Record
	Score  float64
}

// TrendPoint is one bucket of a trend series.
type TrendPoint struct {
	Label string
	Value float64
}

// SourceError records a non-fatal per-source fetch failure. The failed
// source contributes an empty record set; the query still completes.
type SourceError struct {
	Source SourceRef
	Err    error
}

// MarshalJSON flattens Err to its message; a bare error interface would
// otherwise serialize as an empty object.
func (e SourceError) MarshalJSON() ([]byte, error) {
	msg := ""
	if e.Err != nil {
		msg = e.Err.Error()
	}
	return json.Marshal(struct {
		Source SourceRef `json:"source"`
		Error  string    `json:"error"`
	}{Source: e.Source, Error: msg})
}

// QueryResult is the output of executing one SemanticQuery. Only the
// fields belonging to the requested operations are populated; the rest
// stay empty. It is never mutated after the executor returns it.
type QueryResult struct {
	// FilteredRecords preserves source fetch order; only Search and
	// Trend re-order into their own fields.
	FilteredRecords []Record
	Aggregations    map[string]float64
	ComparisonTable map[string]map[string]float64
	RankedRecords   []ScoredRecord
	TrendSeries     []TrendPoint

	// SourceErrors holds per-source fetch failures that were absorbed
	// rather than aborting the query.
	SourceErrors []SourceError

	// Confidence is passed through from the generator unchanged. Values
	// below 0.5 never stop the pipeline; the caller decides whether to
	// take a fallback path.
	Confidence float64
	Degraded   bool
}

// MaxItemsToShow bounds how many raw records a response may carry.
const MaxItemsToShow = 20

// FormattedResponse is what the UI layer receives. The UI never inspects
// QueryResult internals directly.
type FormattedResponse struct {
	Text        string
	ItemsToShow []Record // at most MaxItemsToShow
	Suggestions []string // at most 3
}
