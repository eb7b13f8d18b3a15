package main

import (
	"log/slog"

	"github.com/sofiahutsulo/finance-server/pkg/finance"
)

// changeFeed broadcasts a fresh data snapshot after every write that can
// change derived views (budget status, statistics). Subscribers recompute
// from the snapshot instead of invalidating caches piecemeal.
var changeFeed = finance.NewFeed()

// publishChanges loads the user's current data and pushes it to the feed.
// Runs off the request path; a failed load is logged and skipped.
func publishChanges(userID uint) {
	var snap finance.Snapshot
	if err := db.Where("user_id = ?", userID).Find(&snap.Transactions).Error; err != nil {
		slog.Warn("change feed snapshot failed", "user_id", userID, "error", err)
		return
	}
	if err := db.Find(&snap.Categories).Error; err != nil {
		slog.Warn("change feed snapshot failed", "user_id", userID, "error", err)
		return
	}
	if err := db.Where("user_id = ?", userID).Find(&snap.Budgets).Error; err != nil {
		slog.Warn("change feed snapshot failed", "user_id", userID, "error", err)
		return
	}
	changeFeed.Publish(snap)
}
