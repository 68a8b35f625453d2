package operation

import (
	"sort"
	"time"

	"github.com/alishahamin403/Seline-sub014/internal/filter"
	"github.com/alishahamin403/Seline-sub014/internal/model"
)

// defaultSearchLimit caps results when the query does not set one.
const defaultSearchLimit = 10

// recencyHalfLife controls how fast the recency bonus decays for
// RankBy=date searches. A record this old scores half the bonus.
const recencyHalfLife = 30 * 24 * time.Hour

// recencyWeight bounds the recency/amount contribution so text relevance
// stays the primary signal.
const recencyWeight = 0.5

// Search ranks records against op.Query: descending score, ties broken by
// date descending, remaining ties by stable input order. Every filtered
// record is ranked; the result is truncated to the limit.
func Search(op model.SearchOp, records []model.Record, now time.Time) []model.ScoredRecord {
	limit := op.Limit
	if limit <= 0 {
		limit = defaultSearchLimit
	}

	scored := make([]model.ScoredRecord, len(records))
	for i, rec := range records {
		scored[i] = model.ScoredRecord{Record: rec, Score: score(op, rec.Projection, records, now)}
	}

	sort.SliceStable(scored, func(i, j int) bool {
		if scored[i].Score != scored[j].Score {
			return scored[i].Score > scored[j].Score
		}
		return laterDate(scored[i].Record.Projection.Date, scored[j].Record.Projection.Date)
	})

	if len(scored) > limit {
		scored = scored[:limit]
	}
	return scored
}

// score is the normalized text-relevance contribution plus, depending on
// RankBy, a bounded recency or amount term.
func score(op model.SearchOp, p model.Projection, all []model.Record, now time.Time) float64 {
	s := relevance(op.Query, p)

	switch op.RankBy {
	case model.RankByDate:
		if p.Date != nil {
			s += recencyWeight * recency(*p.Date, now)
		}
	case model.RankByAmount:
		if p.Amount != nil {
			s += recencyWeight * normalizedAmount(*p.Amount, all)
		}
	}
	return s
}

// relevance is the best similarity of the query against any text-bearing
// field of the projection.
func relevance(query string, p model.Projection) float64 {
	best := filter.Similarity(query, p.Title)
	if s := filter.Similarity(query, p.Text); s > best {
		best = s
	}
	if p.Counterparty != nil {
		if s := filter.Similarity(query, *p.Counterparty); s > best {
			best = s
		}
	}
	if p.Category != nil {
		if s := filter.Similarity(query, *p.Category); s > best {
			best = s
		}
	}
	return best
}

// recency maps age to (0,1], monotonically favoring newer records.
func recency(d, now time.Time) float64 {
	age := now.Sub(d)
	if age < 0 {
		age = 0
	}
	return float64(recencyHalfLife) / float64(recencyHalfLife+age)
}

func normalizedAmount(amount float64, all []model.Record) float64 {
	var maxAmount float64
	for _, rec := range all {
		if rec.Projection.Amount != nil && *rec.Projection.Amount > maxAmount {
			maxAmount = *rec.Projection.Amount
		}
	}
	if maxAmount == 0 {
		return 0
	}
	if amount < 0 {
		amount = -amount
	}
	return amount / maxAmount
}

func laterDate(a, b *time.Time) bool {
	if a == nil || b == nil {
		return a != nil && b == nil
	}
	return a.After(*b)
}
