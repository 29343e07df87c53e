package domain

// CartItem is a single (product, quantity) line within a cart.
// Quantity is always >= 1 in persisted state; a line that would drop to
// zero is removed instead.
type CartItem struct {
	ProductID string `json:"product_id" bson:"product_id"`
	Quantity  int    `json:"quantity" bson:"quantity"`
}

// Cart is the single cart belonging to one user. A user with no cart yet
// is represented by an unsaved shell (ID empty, Items empty) — absence is
// a valid state, never an error.
type Cart struct {
	ID     string     `json:"id" bson:"_id,omitempty"`
	UserID string     `json:"user_id" bson:"user_id"`
	Items  []CartItem `json:"items" bson:"items"`
}

// IndexOf returns the position of the line holding productID, or -1.
func (c *Cart) IndexOf(productID string) int {
	for i, item := range c.Items {
		if item.ProductID == productID {
			return i
		}
	}
	return -1
}

// TotalQuantity sums quantities across all lines.
func (c *Cart) TotalQuantity() int {
	total := 0
	for _, item := range c.Items {
		total += item.Quantity
	}
	return total
}
