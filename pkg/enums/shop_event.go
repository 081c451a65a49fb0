package enums

import "fmt"

// ShopEvent names a catalog or cart mutation reported to metrics.
type ShopEvent string

const (
	ShopEventItemCreated   ShopEvent = "item_created"
	ShopEventItemReplaced  ShopEvent = "item_replaced"
	ShopEventItemUpdated   ShopEvent = "item_updated"
	ShopEventItemDeleted   ShopEvent = "item_deleted"
	ShopEventCartCreated   ShopEvent = "cart_created"
	ShopEventCartItemAdded ShopEvent = "cart_item_added"
)

var validShopEvents = []ShopEvent{
	ShopEventItemCreated,
	ShopEventItemReplaced,
	ShopEventItemUpdated,
	ShopEventItemDeleted,
	ShopEventCartCreated,
	ShopEventCartItemAdded,
}

// String implements fmt.Stringer.
func (e ShopEvent) String() string {
	return string(e)
}

// IsValid reports whether the value is a known ShopEvent.
func (e ShopEvent) IsValid() bool {
	for _, candidate := range validShopEvents {
		if candidate == e {
			return true
		}
	}
	return false
}

// ParseShopEvent converts raw input into a ShopEvent.
func ParseShopEvent(value string) (ShopEvent, error) {
	for _, candidate := range validShopEvents {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid shop event %q", value)
}
