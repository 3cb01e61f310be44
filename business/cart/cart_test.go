package cart

import (
	"testing"
	"urbankicks/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	runner = domain.Product{ID: 1, Title: "Street Runner", Price: 650}
	court  = domain.Product{ID: 2, Title: "Court Classic", Price: 480}
)

func TestAddMergesSameProductAndSize(t *testing.T) {
	c := New()

	c.Add(runner, "10")
	c.Add(runner, "10")

	items := c.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 2, items[0].Quantity)
	assert.Equal(t, 2, c.TotalItems())
}

func TestAddSameProductDifferentSizeIsSeparateLine(t *testing.T) {
	c := New()

	c.Add(runner, "10")
	c.Add(runner, "11")

	assert.Len(t, c.Items(), 2)
	assert.Equal(t, 2, c.TotalItems())
}

func TestAddDefaultsSize(t *testing.T) {
	c := New()

	c.Add(runner, "")

	items := c.Items()
	require.Len(t, items, 1)
	assert.Equal(t, DefaultSize, items[0].Size)
}

func TestUpdateQuantity(t *testing.T) {
	c := New()
	c.Add(runner, "10")

	c.UpdateQuantity(runner.ID, "10", 5)

	items := c.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 5, items[0].Quantity)
	assert.Equal(t, 5, c.TotalItems())
}

func TestUpdateQuantityZeroRemovesLine(t *testing.T) {
	c := New()
	c.Add(runner, "10")
	c.Add(court, "9")

	c.UpdateQuantity(runner.ID, "10", 0)

	items := c.Items()
	require.Len(t, items, 1)
	assert.Equal(t, court.ID, items[0].ProductID)
}

func TestUpdateQuantityNegativeRemovesLine(t *testing.T) {
	c := New()
	c.Add(runner, "10")

	c.UpdateQuantity(runner.ID, "10", -3)

	assert.Empty(t, c.Items())
}

func TestUpdateSizeMergesIntoExistingLine(t *testing.T) {
	c := New()
	c.Add(runner, "10")
	c.Add(runner, "10")
	c.Add(runner, "11")

	c.UpdateSize(runner.ID, "10", "11")

	items := c.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "11", items[0].Size)
	assert.Equal(t, 3, items[0].Quantity)
}

func TestUpdateSizeMovesLine(t *testing.T) {
	c := New()
	c.Add(runner, "10")

	c.UpdateSize(runner.ID, "10", "12")

	items := c.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "12", items[0].Size)
	assert.Equal(t, 1, items[0].Quantity)
}

func TestRemove(t *testing.T) {
	c := New()
	c.Add(runner, "10")
	c.Add(court, "9")

	c.Remove(runner.ID, "10")

	items := c.Items()
	require.Len(t, items, 1)
	assert.Equal(t, court.ID, items[0].ProductID)
}

func TestSubtotal(t *testing.T) {
	c := New()
	c.Add(runner, "10")
	c.Add(runner, "10")
	c.Add(court, "9")

	assert.InDelta(t, 650*2+480, c.Subtotal(), 0.001)
}

func TestItemsReturnsSnapshot(t *testing.T) {
	c := New()
	c.Add(runner, "10")

	snapshot := c.Items()
	c.Add(runner, "10")

	assert.Equal(t, 1, snapshot[0].Quantity)
	assert.Equal(t, 2, c.Items()[0].Quantity)
}

func TestClear(t *testing.T) {
	c := New()
	c.Add(runner, "10")
	c.Add(court, "9")

	c.Clear()

	assert.Empty(t, c.Items())
	assert.Zero(t, c.TotalItems())
	assert.Zero(t, c.Subtotal())
}
