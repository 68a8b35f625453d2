package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjection_MissingFieldsAreNil(t *testing.T) {
	note := Note{ID: "n1", Title: "groceries list", Body: "milk, eggs"}.Record()

	p := note.Projection
	assert.Equal(t, KindNote, note.Kind)
	assert.Nil(t, p.Date, "an undated note has no date, not a zero date")
	assert.Nil(t, p.Amount, "notes never carry amounts")
	assert.Nil(t, p.Status)
	assert.Nil(t, p.Category, "empty folder means no category")
	assert.Equal(t, "groceries list", p.Title)
}

func TestProjection_FinancialRecord(t *testing.T) {
	date := time.Date(2024, 10, 2, 12, 0, 0, 0, time.UTC)
	rec := FinancialRecord{
		ID:       "f1",
		Date:     date,
		Merchant: "Pizza Hut",
		Category: "food",
		Status:   "posted",
		Amount:   24.50,
	}.Record()

	p := rec.Projection
	require.NotNil(t, p.Amount)
	assert.Equal(t, 24.50, *p.Amount)
	require.NotNil(t, p.Date)
	assert.True(t, p.Date.Equal(date))
	require.NotNil(t, p.Counterparty)
	assert.Equal(t, "Pizza Hut", *p.Counterparty)
	assert.Equal(t, "Pizza Hut", p.Title)
}

func TestProjection_ZeroAmountIsNotMissing(t *testing.T) {
	rec := FinancialRecord{ID: "f1", Date: time.Now(), Merchant: "Refund", Amount: 0}.Record()

	require.NotNil(t, rec.Projection.Amount, "a $0.00 record still has an amount")
	assert.Equal(t, 0.0, *rec.Projection.Amount)
}

func TestProjection_VisitCounterpartyIsPlace(t *testing.T) {
	rec := PlaceVisit{
		ID:        "v1",
		ArrivedAt: time.Date(2024, 10, 3, 9, 0, 0, 0, time.UTC),
		Place:     "Blue Bottle Coffee",
		Category:  "cafe",
	}.Record()

	require.NotNil(t, rec.Projection.Counterparty)
	assert.Equal(t, "Blue Bottle Coffee", *rec.Projection.Counterparty)
	require.NotNil(t, rec.Projection.Category)
	assert.Equal(t, "cafe", *rec.Projection.Category)
}
