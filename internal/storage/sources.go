package storage

import (
	"context"

	"github.com/alishahamin403/Seline-sub014/internal/engine"
	"github.com/alishahamin403/Seline-sub014/internal/model"
)

// KindSource adapts one record kind of a SQLiteStorage to the engine's
// Source contract. Fetches are read-only, so sources for different kinds
// are safe to run concurrently against the same store.
type KindSource struct {
	kind  model.RecordKind
	fetch func(ctx context.Context, scope string) ([]model.Record, error)
}

// Kind implements engine.Source.
func (k *KindSource) Kind() model.RecordKind {
	return k.kind
}

// FetchAll implements engine.Source.
func (k *KindSource) FetchAll(ctx context.Context, scope string) ([]model.Record, error) {
	return k.fetch(ctx, scope)
}

// Sources returns one engine source per record kind held by this store.
func (s *SQLiteStorage) Sources() []engine.Source {
	return []engine.Source{
		&KindSource{kind: model.KindFinancial, fetch: s.FetchFinancialRecords},
		&KindSource{kind: model.KindMessage, fetch: s.FetchMessages},
		&KindSource{kind: model.KindCalendar, fetch: s.FetchCalendarItems},
		&KindSource{kind: model.KindNote, fetch: s.FetchNotes},
		&KindSource{kind: model.KindVisit, fetch: s.FetchPlaceVisits},
	}
}
