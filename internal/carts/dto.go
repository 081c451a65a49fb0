package carts

import "github.com/angelmondragon/shop-api/pkg/pagination"

// Collection names carts in not-found errors.
const Collection = "cart"

// Cart is the stored multiset of item references in insertion order.
type Cart struct {
	ID      int   `json:"id"`
	ItemIDs []int `json:"item_ids"`
}

// CartItem is one aggregated line of a cart view.
type CartItem struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"`
	Available bool   `json:"available"`
}

// CartView is the materialized cart with a price computed from live item state.
type CartView struct {
	ID    int        `json:"id"`
	Items []CartItem `json:"items"`
	Price float64    `json:"price"`
}

// TotalQuantity sums the quantities of every line, available or not.
func (v CartView) TotalQuantity() int {
	total := 0
	for _, line := range v.Items {
		total += line.Quantity
	}
	return total
}

// ListCartsInput filters cart views. All bounds are inclusive.
type ListCartsInput struct {
	Page        pagination.Params
	MinPrice    *float64
	MaxPrice    *float64
	MinQuantity *int
	MaxQuantity *int
}

func (in ListCartsInput) matches(view CartView) bool {
	if in.MinPrice != nil && view.Price < *in.MinPrice {
		return false
	}
	if in.MaxPrice != nil && view.Price > *in.MaxPrice {
		return false
	}
	if in.MinQuantity == nil && in.MaxQuantity == nil {
		return true
	}
	qty := view.TotalQuantity()
	if in.MinQuantity != nil && qty < *in.MinQuantity {
		return false
	}
	if in.MaxQuantity != nil && qty > *in.MaxQuantity {
		return false
	}
	return true
}
