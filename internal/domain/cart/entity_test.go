// internal/domain/cart/entity_test.go
package cart

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sprout/internal/domain/catalog"
)

func plantA() catalog.Product {
	return catalog.Product{ID: "plant-a", Name: "Monstera", Price: 10.00}
}

func plantB() catalog.Product {
	return catalog.Product{ID: "plant-b", Name: "Fern", Price: 5.50}
}

func TestCart_Add(t *testing.T) {
	t.Run("repeated add of same id keeps one line and counts quantity", func(t *testing.T) {
		c := New()
		for i := 0; i < 5; i++ {
			c.Add(plantA())
		}
		lines := c.Lines()
		require.Len(t, lines, 1)
		assert.Equal(t, "plant-a", lines[0].Product.ID)
		assert.Equal(t, 5, lines[0].Quantity)
	})

	t.Run("new products append in insertion order", func(t *testing.T) {
		c := New()
		c.Add(plantA())
		c.Add(plantA())
		c.Add(plantB())
		lines := c.Lines()
		require.Len(t, lines, 2)
		assert.Equal(t, "plant-a", lines[0].Product.ID)
		assert.Equal(t, 2, lines[0].Quantity)
		assert.Equal(t, "plant-b", lines[1].Product.ID)
		assert.Equal(t, 1, lines[1].Quantity)
		assert.Equal(t, 25.50, c.Total())
	})

	t.Run("re-add does not refresh the stored snapshot", func(t *testing.T) {
		c := New()
		c.Add(plantA())

		// upstream price change arrives before the second add
		changed := plantA()
		changed.Price = 99.99
		changed.Name = "Monstera Deliciosa"
		c.Add(changed)

		lines := c.Lines()
		require.Len(t, lines, 1)
		assert.Equal(t, 2, lines[0].Quantity)
		assert.Equal(t, 10.00, lines[0].Product.Price)
		assert.Equal(t, "Monstera", lines[0].Product.Name)
		assert.Equal(t, 20.00, c.Total())
	})
}

func TestCart_Remove(t *testing.T) {
	t.Run("removes the matching line", func(t *testing.T) {
		c := New()
		c.Add(plantA())
		c.Add(plantB())
		c.Remove("plant-a")
		lines := c.Lines()
		require.Len(t, lines, 1)
		assert.Equal(t, "plant-b", lines[0].Product.ID)
	})

	t.Run("idempotent: second remove is a no-op", func(t *testing.T) {
		c := New()
		c.Add(plantA())
		c.Remove("plant-a")
		c.Remove("plant-a")
		assert.Equal(t, 0, c.Len())
	})

	t.Run("absent id is a no-op", func(t *testing.T) {
		c := New()
		c.Add(plantA())
		c.Remove("nope")
		assert.Equal(t, 1, c.Len())
	})
}

func TestCart_SetQuantity(t *testing.T) {
	t.Run("absolute set regardless of prior value", func(t *testing.T) {
		c := New()
		c.Add(plantA())
		c.Add(plantA())
		c.SetQuantity("plant-a", 7)
		assert.Equal(t, 7, c.Lines()[0].Quantity)
		c.SetQuantity("plant-a", 1)
		assert.Equal(t, 1, c.Lines()[0].Quantity)
	})

	t.Run("quantity below 1 removes the line", func(t *testing.T) {
		for _, qty := range []int{0, -1, -100} {
			c := New()
			c.Add(plantA())
			c.Add(plantB())
			c.SetQuantity("plant-a", qty)
			lines := c.Lines()
			require.Len(t, lines, 1)
			assert.Equal(t, "plant-b", lines[0].Product.ID)
		}
	})

	t.Run("update preserves line position", func(t *testing.T) {
		c := New()
		c.Add(plantA())
		c.Add(plantB())
		c.SetQuantity("plant-a", 3)
		lines := c.Lines()
		assert.Equal(t, "plant-a", lines[0].Product.ID)
		assert.Equal(t, 3, lines[0].Quantity)
	})

	t.Run("absent id is a no-op", func(t *testing.T) {
		c := New()
		c.Add(plantA())
		c.SetQuantity("nope", 4)
		lines := c.Lines()
		require.Len(t, lines, 1)
		assert.Equal(t, 1, lines[0].Quantity)
	})
}

func TestCart_Clear(t *testing.T) {
	c := New()
	c.Add(plantA())
	c.Add(plantB())
	c.Clear()
	assert.Equal(t, 0, c.Len())
	assert.Equal(t, 0.0, c.Total())

	// clearing an empty cart stays empty
	c.Clear()
	assert.Equal(t, 0, c.Len())
}

func TestCart_Total(t *testing.T) {
	t.Run("2x10.00 + 1x5.50", func(t *testing.T) {
		c := New()
		c.Add(plantA())
		c.Add(plantA())
		c.Add(plantB())
		assert.Equal(t, 25.50, c.Total())

		c.SetQuantity("plant-a", 0)
		assert.Equal(t, 5.50, c.Total())
	})

	t.Run("missing price counts as zero", func(t *testing.T) {
		c := New()
		c.Add(catalog.Product{ID: "free", Name: "Mystery seedling"})
		c.Add(plantB())
		assert.Equal(t, 5.50, c.Total())
	})

	t.Run("non-numeric price counts as zero", func(t *testing.T) {
		c := New()
		c.Add(catalog.Product{ID: "nan", Price: math.NaN()})
		c.Add(catalog.Product{ID: "inf", Price: math.Inf(1)})
		c.Add(plantA())
		assert.Equal(t, 10.00, c.Total())
	})

	t.Run("recomputed after every mutation", func(t *testing.T) {
		c := New()
		assert.Equal(t, 0.0, c.Total())
		c.Add(plantA())
		assert.Equal(t, 10.00, c.Total())
		c.SetQuantity("plant-a", 3)
		assert.Equal(t, 30.00, c.Total())
		c.Remove("plant-a")
		assert.Equal(t, 0.0, c.Total())
	})
}

func TestCart_LinesIsACopy(t *testing.T) {
	c := New()
	c.Add(plantA())
	lines := c.Lines()
	lines[0].Quantity = 99
	assert.Equal(t, 1, c.Lines()[0].Quantity)
}
