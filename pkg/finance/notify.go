package finance

import (
	"sync"

	"github.com/sofiahutsulo/finance-server/models"
)

// Snapshot carries one consistent read of the data a recompute needs. The
// publisher fills it from storage; subscribers only derive views from it, so
// no ambient state leaks into the aggregation.
type Snapshot struct {
	Transactions []models.Transaction
	Categories   []models.Category
	Budgets      []models.Budget
}

// Feed is a minimal subscribe/notify hub: every data change publishes a fresh
// snapshot and each subscriber recomputes from it. A later publish supersedes
// an earlier one; subscribers never observe partial data.
type Feed struct {
	mu   sync.Mutex
	subs []func(Snapshot)
}

func NewFeed() *Feed { return &Feed{} }

// Subscribe registers fn to run on every published snapshot.
func (f *Feed) Subscribe(fn func(Snapshot)) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.subs = append(f.subs, fn)
}

// Publish delivers snap to all subscribers in registration order. Delivery is
// synchronous: when Publish returns, every subscriber has seen the snapshot.
func (f *Feed) Publish(snap Snapshot) {
	f.mu.Lock()
	subs := make([]func(Snapshot), len(f.subs))
	copy(subs, f.subs)
	f.mu.Unlock()
	for _, fn := range subs {
		fn(snap)
	}
}
