// internal/adapters/out/firestore/feed_listen_fs.go
package firestore

import (
	"context"
	"log"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// listenQuery consumes the query's snapshot stream until ctx is done.
// Every delivered snapshot is a full-collection read; apply receives
// all documents so the caller can swap its sequence atomically.
//
// A stream error other than cancellation stops the listener and is
// reported through onError exactly once. Severity is the caller's
// call: the plants feed treats it as fatal, the faqs feed only logs.
func listenQuery(ctx context.Context, q firestore.Query, tag string, apply func(docs []*firestore.DocumentSnapshot), onError func(error)) {
	it := q.Snapshots(ctx)
	defer it.Stop()

	for {
		qsnap, err := it.Next()
		if err != nil {
			if status.Code(err) == codes.Canceled || ctx.Err() != nil {
				log.Printf("[feed:%s] listener stopped", tag)
				return
			}
			if onError != nil {
				onError(err)
			}
			return
		}

		docs, err := qsnap.Documents.GetAll()
		if err != nil {
			if onError != nil {
				onError(err)
			}
			return
		}
		apply(docs)
	}
}

// feedSubscription is the cancellable handle returned by Subscribe.
// Cancel detaches exactly once; extra calls are no-ops.
type feedSubscription struct {
	cancel func()
}

func (s *feedSubscription) Cancel() {
	if s == nil || s.cancel == nil {
		return
	}
	s.cancel()
}
