package domain

// CartItem is a line in the shopping cart. Lines are keyed by
// (ProductID, Size); adding the same pair again bumps Quantity.
type CartItem struct {
	ProductID uint64  `json:"id"`
	Title     string  `json:"title"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
	Size      string  `json:"size"`
	Color     string  `json:"color,omitempty"`
	Image     string  `json:"image,omitempty"`
}
