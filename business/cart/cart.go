package cart

import "urbankicks/domain"

// DefaultSize is applied when a product is added without an explicit
// size selection.
const DefaultSize = "9"

// Cart holds the items a shopper has picked during the current session.
// It lives in memory only and is driven by one session at a time, so no
// locking is done here.
type Cart struct {
	items []domain.CartItem
}

func New() *Cart {
	return &Cart{}
}

// Add merges by (product, size): an existing line gets its quantity
// bumped, otherwise a new line with quantity 1 is appended.
func (c *Cart) Add(product domain.Product, size string) {
	if size == "" {
		size = DefaultSize
	}

	for i := range c.items {
		if c.items[i].ProductID == product.ID && c.items[i].Size == size {
			c.items[i].Quantity++
			return
		}
	}

	c.items = append(c.items, domain.CartItem{
		ProductID: product.ID,
		Title:     product.Title,
		Price:     product.Price,
		Quantity:  1,
		Size:      size,
		Image:     product.Image,
	})
}

// UpdateQuantity sets the quantity of a line. A result of zero or less
// removes the line entirely.
func (c *Cart) UpdateQuantity(productID uint64, size string, quantity int) {
	if quantity <= 0 {
		c.Remove(productID, size)
		return
	}

	for i := range c.items {
		if c.items[i].ProductID == productID && c.items[i].Size == size {
			c.items[i].Quantity = quantity
			return
		}
	}
}

// UpdateSize changes a line's size in place. If a line with the target
// size already exists the two lines are merged.
func (c *Cart) UpdateSize(productID uint64, oldSize, newSize string) {
	if newSize == "" || oldSize == newSize {
		return
	}

	src := -1
	dst := -1
	for i := range c.items {
		if c.items[i].ProductID != productID {
			continue
		}
		switch c.items[i].Size {
		case oldSize:
			src = i
		case newSize:
			dst = i
		}
	}

	if src == -1 {
		return
	}

	if dst == -1 {
		c.items[src].Size = newSize
		return
	}

	c.items[dst].Quantity += c.items[src].Quantity
	c.items = append(c.items[:src], c.items[src+1:]...)
}

func (c *Cart) Remove(productID uint64, size string) {
	kept := c.items[:0]
	for _, item := range c.items {
		if item.ProductID == productID && item.Size == size {
			continue
		}
		kept = append(kept, item)
	}
	c.items = kept
}

// TotalItems is the sum of quantities across all lines.
func (c *Cart) TotalItems() int {
	total := 0
	for _, item := range c.items {
		total += item.Quantity
	}
	return total
}

func (c *Cart) Subtotal() float64 {
	subtotal := 0.0
	for _, item := range c.items {
		subtotal += item.Price * float64(item.Quantity)
	}
	return subtotal
}

// Items returns a snapshot copy, so later cart edits cannot mutate an
// order assembled from it.
func (c *Cart) Items() []domain.CartItem {
	out := make([]domain.CartItem, len(c.items))
	copy(out, c.items)
	return out
}

func (c *Cart) Clear() {
	c.items = nil
}
