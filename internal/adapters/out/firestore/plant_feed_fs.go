// internal/adapters/out/firestore/plant_feed_fs.go
package firestore

import (
	"context"
	"errors"
	"log"
	"strings"
	"sync"

	"cloud.google.com/go/firestore"

	"sprout/internal/domain/catalog"
)

// PlantFeedFS implements catalog.Feed on a Firestore snapshot listener.
//
// Collection design:
//   - storefronts/{namespace}/plants
//   - docId: opaque stable product id (source of truth for Product.ID)
//   - fields: name, description, price, imageUrl (+ anything else the
//     content pipeline adds; unknown fields are ignored)
//
// The listener replaces the whole snapshot on every upstream change;
// readers always get a fully consistent sequence. This is the PRIMARY
// feed: a broken listener is fatal for the storefront.
type PlantFeedFS struct {
	Client    *firestore.Client
	Namespace string

	mu   sync.RWMutex
	snap catalog.Snapshot

	subMu   sync.Mutex
	subs    map[int]func(catalog.Snapshot)
	nextSub int

	stop    context.CancelFunc
	stopped sync.Once
}

func NewPlantFeedFS(client *firestore.Client, namespace string) *PlantFeedFS {
	return &PlantFeedFS{
		Client:    client,
		Namespace: strings.TrimSpace(namespace),
		subs:      map[int]func(catalog.Snapshot){},
	}
}

func (f *PlantFeedFS) col() firestore.Query {
	return f.Client.Collection("storefronts").Doc(f.Namespace).Collection("plants").Query
}

// Start begins listening on its own goroutine. onFatal is invoked at
// most once, when the listener dies with a non-cancellation error.
func (f *PlantFeedFS) Start(ctx context.Context, onFatal func(error)) error {
	if f == nil || f.Client == nil {
		return errors.New("plant_feed_fs: firestore client is nil")
	}
	if f.Namespace == "" {
		return errors.New("plant_feed_fs: namespace is empty")
	}

	ctx, cancel := context.WithCancel(ctx)
	f.stop = cancel

	go listenQuery(ctx, f.col(), "plants", f.apply, onFatal)
	log.Printf("[feed:plants] listening (namespace=%s)", f.Namespace)
	return nil
}

// Stop cancels the listener. Safe to call more than once.
func (f *PlantFeedFS) Stop() {
	f.stopped.Do(func() {
		if f.stop != nil {
			f.stop()
		}
	})
}

// Current returns the latest snapshot (empty before first delivery).
func (f *PlantFeedFS) Current() catalog.Snapshot {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.snap
}

// Subscribe registers fn to run after each snapshot swap.
func (f *PlantFeedFS) Subscribe(fn func(catalog.Snapshot)) catalog.Subscription {
	f.subMu.Lock()
	id := f.nextSub
	f.nextSub++
	f.subs[id] = fn
	f.subMu.Unlock()

	var once sync.Once
	return &feedSubscription{cancel: func() {
		once.Do(func() {
			f.subMu.Lock()
			delete(f.subs, id)
			f.subMu.Unlock()
		})
	}}
}

// apply decodes all documents and swaps the snapshot atomically.
func (f *PlantFeedFS) apply(docs []*firestore.DocumentSnapshot) {
	products := make([]catalog.Product, 0, len(docs))
	for _, d := range docs {
		products = append(products, catalog.ProductFromDoc(d.Ref.ID, d.Data()))
	}

	f.mu.Lock()
	f.snap = catalog.Snapshot{
		Revision: f.snap.Revision + 1,
		Products: products,
	}
	snap := f.snap
	f.mu.Unlock()

	log.Printf("[feed:plants] snapshot rev=%d products=%d", snap.Revision, len(snap.Products))
	f.notify(snap)
}

func (f *PlantFeedFS) notify(snap catalog.Snapshot) {
	f.subMu.Lock()
	fns := make([]func(catalog.Snapshot), 0, len(f.subs))
	for _, fn := range f.subs {
		fns = append(fns, fn)
	}
	f.subMu.Unlock()

	for _, fn := range fns {
		fn(snap)
	}
}
