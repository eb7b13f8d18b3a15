package finance

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sofiahutsulo/finance-server/models"
)

func TestFeedDeliversToAllSubscribersInOrder(t *testing.T) {
	feed := NewFeed()
	var order []int
	feed.Subscribe(func(Snapshot) { order = append(order, 1) })
	feed.Subscribe(func(Snapshot) { order = append(order, 2) })

	feed.Publish(Snapshot{})
	feed.Publish(Snapshot{})
	assert.Equal(t, []int{1, 2, 1, 2}, order)
}

// A publish drives a pure recompute: the subscriber derives fresh statistics
// from the snapshot alone, and the latest publish supersedes earlier ones.
func TestFeedDrivesRecompute(t *testing.T) {
	feed := NewFeed()
	now := date("2024-03-15")

	var latest Statistics
	feed.Subscribe(func(s Snapshot) {
		latest = Aggregate(s.Transactions, s.Categories, PeriodMonth, now, Options{})
	})

	feed.Publish(Snapshot{Transactions: []models.Transaction{
		tx(models.TypeExpense, "40", 1, "2024-03-02"),
	}})
	require.True(t, latest.Totals.TotalExpense.Equal(decimal.RequireFromString("40")))

	feed.Publish(Snapshot{Transactions: []models.Transaction{
		tx(models.TypeExpense, "40", 1, "2024-03-02"),
		tx(models.TypeExpense, "60", 1, "2024-03-03"),
	}})
	assert.True(t, latest.Totals.TotalExpense.Equal(decimal.RequireFromString("100")))
}

func TestFeedWithoutSubscribers(t *testing.T) {
	assert.NotPanics(t, func() { NewFeed().Publish(Snapshot{}) })
}
