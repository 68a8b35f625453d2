package model

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The --json surface of a degraded result must carry the failure message,
// not an empty object.
func TestSourceError_MarshalJSON(t *testing.T) {
	se := SourceError{
		Source: SourceRef{Kind: KindMessage, Scope: "inbox"},
		Err:    errors.New("store offline"),
	}

	raw, err := json.Marshal(se)
	require.NoError(t, err)

	var got struct {
		Source SourceRef `json:"source"`
		Error  string    `json:"error"`
	}
	require.NoError(t, json.Unmarshal(raw, &got))
	assert.Equal(t, KindMessage, got.Source.Kind)
	assert.Equal(t, "inbox", got.Source.Scope)
	assert.Equal(t, "store offline", got.Error)
}

func TestSourceError_MarshalJSON_NilErr(t *testing.T) {
	raw, err := json.Marshal(SourceError{Source: SourceRef{Kind: KindNote}})
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"error":""`)
}
