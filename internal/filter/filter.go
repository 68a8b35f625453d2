// Package filter evaluates query filters against records. Every filter is
// a pure predicate over the common record projection: a filter referencing
// a field the record lacks evaluates to false, never errors.
package filter

import (
	"fmt"
	"strings"

	"github.com/alishahamin403/Seline-sub014/internal/common"
	"github.com/alishahamin403/Seline-sub014/internal/model"
)

// Text-bearing projection fields a TextSearch filter may name.
const (
	FieldTitle        = "title"
	FieldText         = "text"
	FieldCounterparty = "counterparty"
	FieldCategory     = "category"
)

// Evaluate applies one filter to one record. An unknown filter type, or a
// type whose payload is missing, returns common.ErrUnsupportedFilter so
// the executor can fail closed instead of silently widening results.
func Evaluate(f model.Filter, rec model.Record) (bool, error) {
	p := rec.Projection

	switch f.Type {
	case model.FilterDateRange:
		if f.DateRange == nil {
			return false, missingPayload(f.Type)
		}
		return evalDateRange(*f.DateRange, p), nil
	case model.FilterCategory:
		if f.Category == nil {
			return false, missingPayload(f.Type)
		}
		return evalCategory(*f.Category, p), nil
	case model.FilterTextSearch:
		if f.TextSearch == nil {
			return false, missingPayload(f.Type)
		}
		return evalTextSearch(*f.TextSearch, p), nil
	case model.FilterStatus:
		if f.Status == nil {
			return false, missingPayload(f.Type)
		}
		return evalStatus(*f.Status, p), nil
	case model.FilterAmountRange:
		if f.AmountRange == nil {
			return false, missingPayload(f.Type)
		}
		return evalAmountRange(*f.AmountRange, p), nil
	case model.FilterMerchant:
		if f.Merchant == nil {
			return false, missingPayload(f.Type)
		}
		return evalMerchant(*f.Merchant, p), nil
	default:
		return false, fmt.Errorf("%w: %q", common.ErrUnsupportedFilter, f.Type)
	}
}

// Apply runs every filter against every record, keeping input order.
// Filters compose as strict AND: a record passes only if it passes all of
// them.
func Apply(filters []model.Filter, records []model.Record) ([]model.Record, error) {
	if len(filters) == 0 {
		return records, nil
	}

	out := make([]model.Record, 0, len(records))
	for _, rec := range records {
		pass := true
		for _, f := range filters {
			ok, err := Evaluate(f, rec)
			if err != nil {
				return nil, err
			}
			if !ok {
				pass = false
				break
			}
		}
		if pass {
			out = append(out, rec)
		}
	}
	return out, nil
}

func missingPayload(t model.FilterType) error {
	return fmt.Errorf("%w: %q has no payload", common.ErrUnsupportedFilter, t)
}

func evalDateRange(f model.DateRangeFilter, p model.Projection) bool {
	if p.Date == nil {
		return false
	}
	d := *p.Date
	return !d.Before(f.Start) && !d.After(f.End)
}

func evalCategory(f model.CategoryFilter, p model.Projection) bool {
	if p.Category == nil {
		return false
	}
	cat := strings.ToLower(*p.Category)

	included := len(f.Include) == 0
	for _, c := range f.Include {
		if strings.EqualFold(c, cat) {
			included = true
			break
		}
	}
	if !included {
		return false
	}
	// Exclusion is checked last and wins when both sets name the category.
	for _, c := range f.Exclude {
		if strings.EqualFold(c, cat) {
			return false
		}
	}
	return true
}

func evalTextSearch(f model.TextSearchFilter, p model.Projection) bool {
	for _, text := range textFields(f.Fields, p) {
		if Matches(f.Query, text, f.Fuzzy) {
			return true
		}
	}
	return false
}

// textFields resolves the named fields to their projection values,
// skipping fields the record lacks. Empty names means all text-bearing
// fields.
func textFields(names []string, p model.Projection) []string {
	if len(names) == 0 {
		names = []string{FieldTitle, FieldText, FieldCounterparty, FieldCategory}
	}
	var out []string
	for _, name := range names {
		switch strings.ToLower(name) {
		case FieldTitle:
			if p.Title != "" {
				out = append(out, p.Title)
			}
		case FieldText:
			if p.Text != "" {
				out = append(out, p.Text)
			}
		case FieldCounterparty:
			if p.Counterparty != nil {
				out = append(out, *p.Counterparty)
			}
		case FieldCategory:
			if p.Category != nil {
				out = append(out, *p.Category)
			}
		}
	}
	return out
}

func evalStatus(f model.StatusFilter, p model.Projection) bool {
	if p.Status == nil {
		return false
	}
	for _, v := range f.Values {
		if strings.EqualFold(v, *p.Status) {
			return true
		}
	}
	return false
}

func evalAmountRange(f model.AmountRangeFilter, p model.Projection) bool {
	if p.Amount == nil {
		return f.Min == nil && f.Max == nil
	}
	amount := *p.Amount
	if f.Min != nil && amount < *f.Min {
		return false
	}
	if f.Max != nil && amount > *f.Max {
		return false
	}
	return true
}

func evalMerchant(f model.MerchantFilter, p model.Projection) bool {
	if p.Counterparty == nil {
		return false
	}
	for _, name := range f.Names {
		if Matches(name, *p.Counterparty, f.Fuzzy) {
			return true
		}
	}
	return false
}
