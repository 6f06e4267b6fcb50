// internal/adapters/out/firestore/faq_feed_fs.go
package firestore

import (
	"context"
	"errors"
	"log"
	"strings"
	"sync"

	"cloud.google.com/go/firestore"

	"sprout/internal/domain/faq"
)

// FAQFeedFS implements faq.Feed on a Firestore snapshot listener.
//
// Collection design:
//   - storefronts/{namespace}/faqs
//   - docId: opaque stable entry id
//   - fields: question, answer
//
// This is the SECONDARY feed: a broken listener is logged and
// swallowed. The help view keeps serving whatever snapshot was last
// received (possibly nothing).
type FAQFeedFS struct {
	Client    *firestore.Client
	Namespace string

	mu   sync.RWMutex
	snap faq.Snapshot

	subMu   sync.Mutex
	subs    map[int]func(faq.Snapshot)
	nextSub int

	stop    context.CancelFunc
	stopped sync.Once
}

func NewFAQFeedFS(client *firestore.Client, namespace string) *FAQFeedFS {
	return &FAQFeedFS{
		Client:    client,
		Namespace: strings.TrimSpace(namespace),
		subs:      map[int]func(faq.Snapshot){},
	}
}

func (f *FAQFeedFS) col() firestore.Query {
	return f.Client.Collection("storefronts").Doc(f.Namespace).Collection("faqs").Query
}

// Start begins listening on its own goroutine. Listener errors are
// logged here, never escalated.
func (f *FAQFeedFS) Start(ctx context.Context) error {
	if f == nil || f.Client == nil {
		return errors.New("faq_feed_fs: firestore client is nil")
	}
	if f.Namespace == "" {
		return errors.New("faq_feed_fs: namespace is empty")
	}

	ctx, cancel := context.WithCancel(ctx)
	f.stop = cancel

	go listenQuery(ctx, f.col(), "faqs", f.apply, func(err error) {
		// non-fatal: the help page degrades to its last snapshot
		log.Printf("[feed:faqs] listener error (non-fatal): %v", err)
	})
	log.Printf("[feed:faqs] listening (namespace=%s)", f.Namespace)
	return nil
}

// Stop cancels the listener. Safe to call more than once.
func (f *FAQFeedFS) Stop() {
	f.stopped.Do(func() {
		if f.stop != nil {
			f.stop()
		}
	})
}

// Current returns the latest snapshot (empty before first delivery).
func (f *FAQFeedFS) Current() faq.Snapshot {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.snap
}

// Subscribe registers fn to run after each snapshot swap.
func (f *FAQFeedFS) Subscribe(fn func(faq.Snapshot)) faq.Subscription {
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

func (f *FAQFeedFS) apply(docs []*firestore.DocumentSnapshot) {
	entries := make([]faq.Entry, 0, len(docs))
	for _, d := range docs {
		entries = append(entries, faq.EntryFromDoc(d.Ref.ID, d.Data()))
	}

	f.mu.Lock()
	f.snap = faq.Snapshot{
		Revision: f.snap.Revision + 1,
		Entries:  entries,
	}
	snap := f.snap
	f.mu.Unlock()

	log.Printf("[feed:faqs] snapshot rev=%d entries=%d", snap.Revision, len(snap.Entries))
	f.notify(snap)
}

func (f *FAQFeedFS) notify(snap faq.Snapshot) {
	f.subMu.Lock()
	fns := make([]func(faq.Snapshot), 0, len(f.subs))
	for _, fn := range f.subs {
		fns = append(fns, fn)
	}
	f.subMu.Unlock()

	for _, fn := range fns {
		fn(snap)
	}
}
