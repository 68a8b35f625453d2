package engine

import (
	"context"

	"github.com/alishahamin403/Seline-sub014/internal/model"
)

// Source is the fetch contract a data store exposes to the executor. A
// source returns every record in the given scope (empty scope means all);
// it must not mutate shared state and must be safe to call concurrently
// with other sources. Storage, sync, and persistence stay behind this
// boundary.
type Source interface {
	// Kind identifies which record kind this source serves.
	Kind() model.RecordKind

	// FetchAll returns all records in scope, already projected. Fetch
	// order must be stable for an unchanged store; the executor preserves
	// it through filtering.
	FetchAll(ctx context.Context, scope string) ([]model.Record, error)
}
