package model

import (
	"time"
)

// Intent is the high-level kind of transformation the user wants.
type Intent string

const (
	// IntentSearch looks up individual records.
	IntentSearch Intent = "search"
	// IntentCompare contrasts slices of the data against each other.
	IntentCompare Intent = "compare"
	// IntentAnalyze computes aggregates over the data.
	IntentAnalyze Intent = "analyze"
	// IntentExplore browses records without a precise target.
	IntentExplore Intent = "explore"
	// IntentTrack follows a known item (order, event) over time.
	IntentTrack Intent = "track"
	// IntentSummarize condenses the data into a short summary.
	IntentSummarize Intent = "summarize"
	// IntentPredict extrapolates a trend forward.
	IntentPredict Intent = "predict"
)

// SourceRef names one data source a query should draw from.
type SourceRef struct {
	Kind  RecordKind `json:"kind"`
	Scope string     `json:"scope,omitempty"` // e.g. a folder or account; empty means everything
}

// FilterType discriminates the filter variants.
type FilterType string

const (
	// FilterDateRange restricts records to an inclusive date window.
	FilterDateRange FilterType = "date_range"
	// FilterCategory includes/excludes records by category.
	FilterCategory FilterType = "category"
	// FilterTextSearch matches free text against record fields.
	FilterTextSearch FilterType = "text_search"
	// FilterStatus matches the record status against a value set.
	FilterStatus FilterType = "status"
	// FilterAmountRange restricts records to an amount window.
	FilterAmountRange FilterType = "amount_range"
	// FilterMerchant matches the record counterparty.
	FilterMerchant FilterType = "merchant"
)

// Filter is a tagged union of the filter variants. Exactly the payload
// named by Type is set; the executor fails closed on a Type it does not
// recognize rather than skipping the filter.
type Filter struct {
	DateRange   *DateRangeFilter   `json:"dateRange,omitempty"`
	Category    *CategoryFilter    `json:"category,omitempty"`
	TextSearch  *TextSearchFilter  `json:"textSearch,omitempty"`
	Status      *StatusFilter      `json:"status,omitempty"`
	AmountRange *AmountRangeFilter `json:"amountRange,omitempty"`
	Merchant    *MerchantFilter    `json:"merchant,omitempty"`
	Type        FilterType         `json:"type"`
}

// DateRangeFilter passes records dated within [Start, End], inclusive on
// both ends.
type DateRangeFilter struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// CategoryFilter passes records whose category is in Include (or any
// category when Include is empty) and not in Exclude. Exclude is checked
// last and wins when both name the same category.
type CategoryFilter struct {
	Include []string `json:"include,omitempty"`
	Exclude []string `json:"exclude,omitempty"`
}

// TextSearchFilter matches Query against the named fields, or all
// text-bearing fields when Fields is empty.
type TextSearchFilter struct {
	Query  string   `json:"query"`
	Fields []string `json:"fields,omitempty"`
	Fuzzy  bool     `json:"fuzzy,omitempty"`
}

// StatusFilter passes records whose status is one of Values.
type StatusFilter struct {
	Values []string `json:"values"`
}

// AmountRangeFilter passes records whose amount lies within the set
// bounds. A record without an amount never passes a bound that is set.
type AmountRangeFilter struct {
	Min *float64 `json:"min,omitempty"`
	Max *float64 `json:"max,omitempty"`
}

// MerchantFilter matches the record counterparty against Names, with the
// same substring/fuzzy semantics as TextSearchFilter.
type MerchantFilter struct {
	Names []string `json:"names"`
	Fuzzy bool     `json:"fuzzy,omitempty"`
}

// OperationType discriminates the operation variants.
type OperationType string

const (
	// OpAggregate groups the filtered records and applies a function per group.
	OpAggregate OperationType = "aggregate"
	// OpComparison builds a slices-by-groups metric table.
	OpComparison OperationType = "comparison"
	// OpSearch ranks the filtered records against a query string.
	OpSearch OperationType = "search"
	// OpTrend buckets the filtered records over time.
	OpTrend OperationType = "trend"
)

// Operation is a tagged union of the operation variants, with the same
// fail-closed dispatch rule as Filter.
type Operation struct {
	Aggregate  *AggregateOp  `json:"aggregate,omitempty"`
	Comparison *ComparisonOp `json:"comparison,omitempty"`
	Search     *SearchOp     `json:"search,omitempty"`
	Trend      *TrendOp      `json:"trend,omitempty"`
	Type       OperationType `json:"type"`
}

// AggregateFn names the per-group computation.
type AggregateFn string

// Aggregate functions.
const (
	FnSum     AggregateFn = "sum"
	FnCount   AggregateFn = "count"
	FnAverage AggregateFn = "average"
	FnMin     AggregateFn = "min"
	FnMax     AggregateFn = "max"
)

// GroupBy names the partitioning key for aggregates and comparisons.
type GroupBy string

// Grouping keys.
const (
	GroupByCategory GroupBy = "category"
	GroupByMerchant GroupBy = "merchant"
	GroupByDate     GroupBy = "date"
	GroupByStatus   GroupBy = "status"
)

// AggregateOp partitions the filtered records by GroupBy and applies Fn to
// each partition.
type AggregateOp struct {
	Fn      AggregateFn `json:"fn"`
	GroupBy GroupBy     `json:"groupBy"`
}

// ComparisonDimension names what the comparison slices cut across.
type ComparisonDimension string

// Comparison dimensions.
const (
	DimensionTime     ComparisonDimension = "time"
	DimensionCategory ComparisonDimension = "category"
	DimensionMerchant ComparisonDimension = "merchant"
)

// ComparisonMetric names the per-cell computation.
type ComparisonMetric string

// Comparison metrics.
const (
	MetricTotal   ComparisonMetric = "total"
	MetricCount   ComparisonMetric = "count"
	MetricAverage ComparisonMetric = "average"
)

// Slice is one labeled column of a comparison: a date sub-range for the
// time dimension, a value set for category/merchant.
type Slice struct {
	Start  *time.Time `json:"start,omitempty"`
	End    *time.Time `json:"end,omitempty"`
	Label  string     `json:"label"`
	Values []string   `json:"values,omitempty"`
}

// ComparisonOp builds a slices-by-groups table. When GroupBy is empty the
// table has the single implicit group "total".
type ComparisonOp struct {
	GroupBy   GroupBy             `json:"groupBy,omitempty"`
	Dimension ComparisonDimension `json:"dimension"`
	Metric    ComparisonMetric    `json:"metric"`
	Slices    []Slice             `json:"slices"`
}

// RankBy names the ranking signal for a search operation.
type RankBy string

// Ranking signals.
const (
	RankByRelevance RankBy = "relevance"
	RankByDate      RankBy = "date"
	RankByAmount    RankBy = "amount"
)

// SearchOp ranks the filtered records against Query and keeps the top
// Limit results (10 when unset).
type SearchOp struct {
	Query  string `json:"query"`
	RankBy RankBy `json:"rankBy,omitempty"`
	Limit  int    `json:"limit,omitempty"`
}

// Granularity is the bucket width for trend analysis.
type Granularity string

// Trend granularities.
const (
	GranularityDaily   Granularity = "daily"
	GranularityWeekly  Granularity = "weekly"
	GranularityMonthly Granularity = "monthly"
	GranularityYearly  Granularity = "yearly"
)

// TrendOp buckets the filtered records over the active date range. Metric
// "sum" totals amounts per bucket; anything else counts records.
type TrendOp struct {
	Metric      string      `json:"metric,omitempty"`
	Granularity Granularity `json:"granularity"`
}

// PresentationFormat is the rendering the generator asked for.
type PresentationFormat string

// Presentation formats.
const (
	FormatList     PresentationFormat = "list"
	FormatTable    PresentationFormat = "table"
	FormatSummary  PresentationFormat = "summary"
	FormatForecast PresentationFormat = "forecast"
)

// SummaryLevel controls how much detail the summary text carries.
type SummaryLevel string

// Summary levels.
const (
	SummaryBrief    SummaryLevel = "brief"
	SummaryStandard SummaryLevel = "standard"
	SummaryDetailed SummaryLevel = "detailed"
)

// Presentation is the generator's rendering request. The formatter applies
// its own hard rules on top of it; see format.Format.
type Presentation struct {
	Format                 PresentationFormat `json:"format"`
	SummaryLevel           SummaryLevel       `json:"summaryLevel,omitempty"`
	IncludeIndividualItems bool               `json:"includeIndividualItems"`
}

// SemanticQuery is the structured query produced by the external
// natural-language generator. It is the wire contract between the
// generator and this engine; it is never mutated after construction.
type SemanticQuery struct {
	Intent       Intent       `json:"intent"`
	DataSources  []SourceRef  `json:"dataSources"`
	Filters      []Filter     `json:"filters,omitempty"`
	Operations   []Operation  `json:"operations"`
	Presentation Presentation `json:"presentation"`
	Confidence   float64      `json:"confidence"`
}
