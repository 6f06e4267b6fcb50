// internal/domain/catalog/feed_port.go
package catalog

// Snapshot is a full replacement view of the plants collection.
// Every upstream change swaps the whole sequence atomically; consumers
// never observe a partially applied update.
type Snapshot struct {
	// Revision increases by one per applied upstream change.
	Revision int64 `json:"revision"`

	Products []Product `json:"products"`
}

// Subscription is a handle for one feed registration.
// Cancel must release the registration; calling it more than once is
// harmless (implementations guard with sync.Once).
type Subscription interface {
	Cancel()
}

// Feed is the read port for the continuously updated plants collection.
type Feed interface {
	// Current returns the latest snapshot (empty before the first
	// upstream delivery).
	Current() Snapshot

	// Subscribe registers fn to run after each snapshot swap.
	Subscribe(fn func(Snapshot)) Subscription
}
