package engine

import (
	"context"

	"github.com/alishahamin403/Seline-sub014/internal/model"
)

// MockSource is a Source backed by an in-memory slice, for tests and
// wiring examples.
type MockSource struct {
	Err     error
	RecKind model.RecordKind
	Records []model.Record
	Delay   func(ctx context.Context) error // optional; simulates a slow fetch
	ByScope map[string][]model.Record
	Fetches int
}

// Kind implements Source.
func (m *MockSource) Kind() model.RecordKind {
	return m.RecKind
}

// FetchAll implements Source. When ByScope is set and the scope is known,
// the scoped records win over Records.
func (m *MockSource) FetchAll(ctx context.Context, scope string) ([]model.Record, error) {
	m.Fetches++
	if m.Delay != nil {
		if err := m.Delay(ctx); err != nil {
			return nil, err
		}
	}
	if m.Err != nil {
		return nil, m.Err
	}
	if scoped, ok := m.ByScope[scope]; ok {
		return scoped, nil
	}
	return m.Records, nil
}
