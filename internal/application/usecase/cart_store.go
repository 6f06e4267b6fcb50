// internal/application/usecase/cart_store.go
package usecase

import (
	"sync"

	cartdom "sprout/internal/domain/cart"
	"sprout/internal/domain/catalog"
)

// CartStore owns the cart state for one UI session.
//
// It wraps the cart entity with two things the entity itself does not
// carry: serialization (handlers run on arbitrary goroutines, so the
// store takes a mutex; operations apply strictly in arrival order) and
// change notification (an explicit observer registration instead of
// framework reactivity — every mutation wakes all subscribers so views
// can re-render).
//
// There is no persistence behind this store. State dies with the
// session.
type CartStore struct {
	mu   sync.Mutex
	cart *cartdom.Cart

	subMu   sync.Mutex
	subs    map[int]func()
	nextSub int
}

func NewCartStore() *CartStore {
	return &CartStore{
		cart: cartdom.New(),
		subs: map[int]func(){},
	}
}

// AddToCart applies cart.Add and notifies subscribers.
func (s *CartStore) AddToCart(p catalog.Product) {
	s.mu.Lock()
	s.cart.Add(p)
	s.mu.Unlock()
	s.notify()
}

// RemoveFromCart applies cart.Remove and notifies subscribers.
func (s *CartStore) RemoveFromCart(productID string) {
	s.mu.Lock()
	s.cart.Remove(productID)
	s.mu.Unlock()
	s.notify()
}

// UpdateQuantity applies cart.SetQuantity and notifies subscribers.
func (s *CartStore) UpdateQuantity(productID string, qty int) {
	s.mu.Lock()
	s.cart.SetQuantity(productID, qty)
	s.mu.Unlock()
	s.notify()
}

// ClearCart resets the cart and notifies subscribers.
func (s *CartStore) ClearCart() {
	s.mu.Lock()
	s.cart.Clear()
	s.mu.Unlock()
	s.notify()
}

// Lines returns the current lines in insertion order.
func (s *CartStore) Lines() []cartdom.Line {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.Lines()
}

// Total returns the derived cart total, recomputed from current state.
func (s *CartStore) Total() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.Total()
}

// Len returns the current line count.
func (s *CartStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.Len()
}

// Subscribe registers fn to run after every mutation and returns the
// unsubscribe func. Unsubscribing twice is harmless.
func (s *CartStore) Subscribe(fn func()) func() {
	s.subMu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	s.subMu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.subMu.Lock()
			delete(s.subs, id)
			s.subMu.Unlock()
		})
	}
}

// notify runs subscribers outside the state lock so a subscriber may
// read Lines/Total without deadlocking.
func (s *CartStore) notify() {
	s.subMu.Lock()
	fns := make([]func(), 0, len(s.subs))
	for _, fn := range s.subs {
		fns = append(fns, fn)
	}
	s.subMu.Unlock()

	for _, fn := range fns {
		fn()
	}
}
