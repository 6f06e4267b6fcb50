// internal/application/usecase/cart_store_test.go
package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sprout/internal/domain/catalog"
)

func monstera() catalog.Product {
	return catalog.Product{ID: "monstera", Name: "Monstera", Price: 10.00}
}

func fern() catalog.Product {
	return catalog.Product{ID: "fern", Name: "Fern", Price: 5.50}
}

func TestCartStore_Operations(t *testing.T) {
	s := NewCartStore()

	s.AddToCart(monstera())
	s.AddToCart(monstera())
	s.AddToCart(fern())

	lines := s.Lines()
	require.Len(t, lines, 2)
	assert.Equal(t, 2, lines[0].Quantity)
	assert.Equal(t, 25.50, s.Total())

	s.UpdateQuantity("monstera", 0)
	lines = s.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, "fern", lines[0].Product.ID)
	assert.Equal(t, 5.50, s.Total())

	s.ClearCart()
	assert.Equal(t, 0, s.Len())
	assert.Equal(t, 0.0, s.Total())
}

func TestCartStore_NotifiesAfterEveryMutation(t *testing.T) {
	s := NewCartStore()

	notified := 0
	unsub := s.Subscribe(func() { notified++ })
	defer unsub()

	s.AddToCart(monstera())
	s.UpdateQuantity("monstera", 3)
	s.RemoveFromCart("monstera")
	s.ClearCart()

	assert.Equal(t, 4, notified)
}

func TestCartStore_SubscriberSeesCurrentState(t *testing.T) {
	s := NewCartStore()

	var observedTotal float64
	unsub := s.Subscribe(func() {
		// reading from inside the notification must not deadlock and
		// must reflect the mutation that triggered it
		observedTotal = s.Total()
	})
	defer unsub()

	s.AddToCart(monstera())
	assert.Equal(t, 10.00, observedTotal)

	s.UpdateQuantity("monstera", 4)
	assert.Equal(t, 40.00, observedTotal)
}

func TestCartStore_Unsubscribe(t *testing.T) {
	s := NewCartStore()

	notified := 0
	unsub := s.Subscribe(func() { notified++ })

	s.AddToCart(monstera())
	assert.Equal(t, 1, notified)

	unsub()
	unsub() // second call is harmless

	s.AddToCart(fern())
	assert.Equal(t, 1, notified)
}

func TestCartStore_MultipleSubscribers(t *testing.T) {
	s := NewCartStore()

	a, b := 0, 0
	unsubA := s.Subscribe(func() { a++ })
	defer unsubA()
	unsubB := s.Subscribe(func() { b++ })
	defer unsubB()

	s.AddToCart(monstera())
	assert.Equal(t, 1, a)
	assert.Equal(t, 1, b)
}
