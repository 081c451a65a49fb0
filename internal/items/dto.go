package items

import "github.com/angelmondragon/shop-api/pkg/pagination"

// Collection names items in not-found errors.
const Collection = "item"

// Item is a catalog entry. Deleted items stay referenceable by carts.
type Item struct {
	ID      int     `json:"id"`
	Name    string  `json:"name"`
	Price   float64 `json:"price"`
	Deleted bool    `json:"deleted"`
}

// CreateItemInput holds the full item representation used by create and replace.
type CreateItemInput struct {
	Name  string
	Price float64
}

// UpdateItemInput holds optional fields; nil fields are left untouched.
type UpdateItemInput struct {
	Name  *string
	Price *float64
}

// ListItemsInput filters the catalog listing. Price bounds are inclusive.
type ListItemsInput struct {
	Page        pagination.Params
	MinPrice    *float64
	MaxPrice    *float64
	ShowDeleted bool
}

func (in ListItemsInput) matches(item Item) bool {
	if in.MinPrice != nil && item.Price < *in.MinPrice {
		return false
	}
	if in.MaxPrice != nil && item.Price > *in.MaxPrice {
		return false
	}
	return in.ShowDeleted || !item.Deleted
}
