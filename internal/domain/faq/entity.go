// internal/domain/faq/entity.go
package faq

// Entry is one question/answer pair on the help page.
// Owned externally, read-only here, decoded tolerantly like the catalog.
type Entry struct {
	// ID is the Firestore docId.
	ID string `json:"id" firestore:"-"`

	Question string `json:"question" firestore:"question"`
	Answer   string `json:"answer" firestore:"answer"`
}

// EntryFromDoc builds an Entry from a raw document.
func EntryFromDoc(id string, data map[string]any) Entry {
	e := Entry{ID: id}
	if data == nil {
		return e
	}
	if q, ok := data["question"].(string); ok {
		e.Question = q
	}
	if a, ok := data["answer"].(string); ok {
		e.Answer = a
	}
	return e
}

// Snapshot is a full replacement view of the faqs collection.
type Snapshot struct {
	Revision int64   `json:"revision"`
	Entries  []Entry `json:"entries"`
}

// Subscription is a handle for one feed registration.
type Subscription interface {
	Cancel()
}

// Feed is the read port for the continuously updated faqs collection.
// Unlike the plants feed, a broken faqs feed is non-fatal: the help
// page keeps rendering the last received snapshot (possibly empty).
type Feed interface {
	Current() Snapshot
	Subscribe(fn func(Snapshot)) Subscription
}
