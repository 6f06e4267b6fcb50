// internal/application/query/storefront_query_test.go
package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cartdom "sprout/internal/domain/cart"
	"sprout/internal/domain/catalog"
	"sprout/internal/domain/faq"
)

// stubPlantFeed serves a fixed snapshot.
type stubPlantFeed struct {
	snap catalog.Snapshot
}

func (s *stubPlantFeed) Current() catalog.Snapshot { return s.snap }
func (s *stubPlantFeed) Subscribe(func(catalog.Snapshot)) catalog.Subscription {
	return noopSub{}
}

type stubFAQFeed struct {
	snap faq.Snapshot
}

func (s *stubFAQFeed) Current() faq.Snapshot { return s.snap }
func (s *stubFAQFeed) Subscribe(func(faq.Snapshot)) faq.Subscription {
	return noopSub{}
}

type noopSub struct{}

func (noopSub) Cancel() {}

// stubCart is a CartReader with fixed lines.
type stubCart struct {
	lines []cartdom.Line
	total float64
}

func (s *stubCart) Lines() []cartdom.Line { return s.lines }
func (s *stubCart) Total() float64        { return s.total }

func plants(n int) []catalog.Product {
	out := make([]catalog.Product, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, catalog.Product{ID: string(rune('a' + i)), Price: float64(i)})
	}
	return out
}

func TestParseView(t *testing.T) {
	for _, tc := range []struct {
		in   string
		want View
	}{
		{"home", ViewHome},
		{"catalog", ViewCatalog},
		{"cart", ViewCart},
		{"help", ViewHelp},
		{" Help ", ViewHelp},
	} {
		got, err := ParseView(tc.in)
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got)
	}

	_, err := ParseView("checkout")
	assert.ErrorIs(t, err, ErrUnknownView)
	_, err = ParseView("")
	assert.ErrorIs(t, err, ErrUnknownView)
}

func TestStorefrontQuery_HomeView(t *testing.T) {
	q := NewStorefrontQuery("Sprout Nursery", "Houseplants, happily homed.",
		&stubPlantFeed{snap: catalog.Snapshot{Revision: 7, Products: plants(5)}},
		&stubFAQFeed{},
	)

	v := q.HomeView()
	assert.Equal(t, ViewHome, v.View)
	assert.Equal(t, "Sprout Nursery", v.StoreName)
	assert.Len(t, v.Featured, 3)
	assert.Equal(t, 5, v.ProductCount)
	assert.Equal(t, int64(7), v.Revision)
}

func TestStorefrontQuery_CatalogView(t *testing.T) {
	t.Run("serves the current snapshot", func(t *testing.T) {
		feed := &stubPlantFeed{snap: catalog.Snapshot{Revision: 3, Products: plants(2)}}
		q := NewStorefrontQuery("s", "t", feed, &stubFAQFeed{})

		v := q.CatalogView()
		assert.Equal(t, ViewCatalog, v.View)
		assert.Len(t, v.Products, 2)
		assert.Equal(t, int64(3), v.Revision)
	})

	t.Run("empty before first delivery, never nil", func(t *testing.T) {
		q := NewStorefrontQuery("s", "t", &stubPlantFeed{}, &stubFAQFeed{})
		v := q.CatalogView()
		require.NotNil(t, v.Products)
		assert.Empty(t, v.Products)
	})
}

func TestStorefrontQuery_CartView(t *testing.T) {
	q := NewStorefrontQuery("s", "t", &stubPlantFeed{}, &stubFAQFeed{})

	v := q.CartView(&stubCart{
		lines: []cartdom.Line{
			{Product: catalog.Product{ID: "a", Price: 10}, Quantity: 2},
			{Product: catalog.Product{ID: "b", Price: 5.5}, Quantity: 1},
		},
		total: 25.50,
	})
	assert.Equal(t, ViewCart, v.View)
	assert.Equal(t, 3, v.ItemCount)
	assert.Equal(t, 25.50, v.Total)
}

func TestStorefrontQuery_HelpView(t *testing.T) {
	t.Run("serves faq entries", func(t *testing.T) {
		q := NewStorefrontQuery("s", "t", &stubPlantFeed{}, &stubFAQFeed{
			snap: faq.Snapshot{Revision: 2, Entries: []faq.Entry{{ID: "q1", Question: "Water?", Answer: "Weekly."}}},
		})
		v := q.HelpView()
		assert.Equal(t, ViewHelp, v.View)
		require.Len(t, v.Entries, 1)
		assert.Equal(t, "Weekly.", v.Entries[0].Answer)
	})

	t.Run("degrades to an empty list when the feed never delivered", func(t *testing.T) {
		q := NewStorefrontQuery("s", "t", &stubPlantFeed{}, &stubFAQFeed{})
		v := q.HelpView()
		require.NotNil(t, v.Entries)
		assert.Empty(t, v.Entries)
	})
}
