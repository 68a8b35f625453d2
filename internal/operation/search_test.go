package operation

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alishahamin403/Seline-sub014/internal/model"
)

func TestSearch_RanksTextOverlapFirst(t *testing.T) {
	now := day(2024, 10, 10)
	msg := model.Message{
		ID:      "m1",
		Date:    day(2024, 10, 2),
		Sender:  "orders@pizzahut.com",
		Subject: "Order update",
		Body:    "Your pizza is almost ready. Estimated delivery 19:56.",
	}.Record()
	fin := financial("f1", "Pizza Hut", "food", 24.50, day(2024, 10, 2))

	got := Search(model.SearchOp{Query: "pizza ready", RankBy: model.RankByRelevance}, []model.Record{fin, msg}, now)

	require.Len(t, got, 2, "every filtered record is ranked")
	assert.Equal(t, "m1", got[0].Record.Projection.ID,
		"the message overlaps both terms and must outrank the transaction")
	assert.Equal(t, "f1", got[1].Record.Projection.ID)
	assert.GreaterOrEqual(t, got[0].Score, got[1].Score)
}

func TestSearch_DefaultLimit(t *testing.T) {
	now := day(2024, 10, 10)
	var records []model.Record
	for i := 0; i < 25; i++ {
		records = append(records, financial(fmt.Sprintf("%02d", i), "Cafe", "food", 5, day(2024, 10, 1)))
	}

	got := Search(model.SearchOp{Query: "cafe"}, records, now)
	assert.Len(t, got, 10, "limit defaults to 10")

	got = Search(model.SearchOp{Query: "cafe", Limit: 3}, records, now)
	assert.Len(t, got, 3)
}

func TestSearch_TiesBreakByDateThenInputOrder(t *testing.T) {
	now := day(2024, 10, 10)
	records := []model.Record{
		financial("older", "Cafe", "food", 5, day(2024, 9, 1)),
		financial("newer", "Cafe", "food", 5, day(2024, 10, 1)),
		financial("same-a", "Cafe", "food", 5, day(2024, 8, 1)),
		financial("same-b", "Cafe", "food", 5, day(2024, 8, 1)),
	}

	got := Search(model.SearchOp{Query: "cafe"}, records, now)
	require.Len(t, got, 4)
	assert.Equal(t, "newer", got[0].Record.Projection.ID)
	assert.Equal(t, "older", got[1].Record.Projection.ID)
	// Equal score and equal date keep stable input order.
	assert.Equal(t, "same-a", got[2].Record.Projection.ID)
	assert.Equal(t, "same-b", got[3].Record.Projection.ID)
}

func TestSearch_RankByDateAddsRecency(t *testing.T) {
	now := day(2024, 10, 10)
	recent := financial("recent", "Cafe", "food", 5, day(2024, 10, 9))
	stale := financial("stale", "Cafe", "food", 5, day(2023, 1, 1))

	got := Search(model.SearchOp{Query: "cafe", RankBy: model.RankByDate}, []model.Record{stale, recent}, now)
	require.Len(t, got, 2)
	assert.Equal(t, "recent", got[0].Record.Projection.ID)
	assert.Greater(t, got[0].Score, got[1].Score, "recency must separate equal text relevance")
}

func TestSearch_RankByAmount(t *testing.T) {
	now := day(2024, 10, 10)
	big := financial("big", "Cafe", "food", 500, day(2024, 10, 1))
	small := financial("small", "Cafe", "food", 5, day(2024, 10, 1))

	got := Search(model.SearchOp{Query: "cafe", RankBy: model.RankByAmount}, []model.Record{small, big}, now)
	require.Len(t, got, 2)
	assert.Equal(t, "big", got[0].Record.Projection.ID)
}

func TestSearch_Deterministic(t *testing.T) {
	now := day(2024, 10, 10)
	records := spendingRecords()

	first := Search(model.SearchOp{Query: "pizza"}, records, now)
	second := Search(model.SearchOp{Query: "pizza"}, records, now)
	assert.Equal(t, first, second)
}
