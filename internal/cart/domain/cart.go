// Package domain holds the cart reducer. A Cart is an ordered set of line
// items keyed by product id; it is not safe for concurrent use.
package domain

import (
	catalog "github.com/dwikikusuma/partshop/internal/catalog/domain"
	"github.com/shopspring/decimal"
)

type LineItem struct {
	Product  catalog.Product
	Quantity int
}

func (li LineItem) Subtotal() decimal.Decimal {
	return li.Product.Price.Mul(decimal.NewFromInt(int64(li.Quantity)))
}

type Cart struct {
	items []LineItem
	index map[int64]int // product id -> position in items
}

func NewCart() *Cart {
	return &Cart{index: make(map[int64]int)}
}

// Add increments the quantity of an existing line or appends a new one with
// quantity 1.
func (c *Cart) Add(p catalog.Product) {
	if c.index == nil {
		c.index = make(map[int64]int)
	}
	if i, ok := c.index[p.ID]; ok {
		c.items[i].Quantity++
		return
	}
	c.index[p.ID] = len(c.items)
	c.items = append(c.items, LineItem{Product: p, Quantity: 1})
}

func (c *Cart) Remove(productID int64) {
	i, ok := c.index[productID]
	if !ok {
		return
	}
	c.items = append(c.items[:i], c.items[i+1:]...)
	delete(c.index, productID)
	for j := i; j < len(c.items); j++ {
		c.index[c.items[j].Product.ID] = j
	}
}

// SetQuantity sets the quantity of a present line. A quantity of zero or
// less removes the line; absent ids are ignored.
func (c *Cart) SetQuantity(productID int64, quantity int) {
	if quantity <= 0 {
		c.Remove(productID)
		return
	}
	if i, ok := c.index[productID]; ok {
		c.items[i].Quantity = quantity
	}
}

func (c *Cart) Clear() {
	c.items = nil
	c.index = make(map[int64]int)
}

func (c *Cart) TotalPrice() decimal.Decimal {
	total := decimal.Zero
	for _, li := range c.items {
		total = total.Add(li.Subtotal())
	}
	return total
}

func (c *Cart) TotalItemCount() int {
	n := 0
	for _, li := range c.items {
		n += li.Quantity
	}
	return n
}

// Items returns the lines in insertion order. The slice is a copy.
func (c *Cart) Items() []LineItem {
	out := make([]LineItem, len(c.items))
	copy(out, c.items)
	return out
}

func (c *Cart) Item(productID int64) (LineItem, bool) {
	i, ok := c.index[productID]
	if !ok {
		return LineItem{}, false
	}
	return c.items[i], true
}

func (c *Cart) Len() int {
	return len(c.items)
}

func (c *Cart) Clone() *Cart {
	out := &Cart{
		items: c.Items(),
		index: make(map[int64]int, len(c.index)),
	}
	for id, i := range c.index {
		out.index[id] = i
	}
	return out
}
