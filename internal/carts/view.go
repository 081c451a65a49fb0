package carts

import (
	"context"

	"github.com/shopspring/decimal"

	pkgerrors "github.com/angelmondragon/shop-api/pkg/errors"
)

// buildView aggregates duplicate item ids into lines ordered by first
// appearance and prices the available ones. Unknown items are listed as
// unavailable with an empty name.
func (s *service) buildView(ctx context.Context, cart Cart) (CartView, error) {
	counts := make(map[int]int, len(cart.ItemIDs))
	order := make([]int, 0, len(cart.ItemIDs))
	for _, id := range cart.ItemIDs {
		if counts[id] == 0 {
			order = append(order, id)
		}
		counts[id]++
	}

	lines := make([]CartItem, 0, len(order))
	total := decimal.Zero
	for _, id := range order {
		line := CartItem{ID: id, Quantity: counts[id]}
		item, err := s.items.FindItem(ctx, id)
		switch {
		case err == nil:
			line.Name = item.Name
			line.Available = !item.Deleted
		case pkgerrors.IsNotFound(err):
		default:
			return CartView{}, err
		}
		if line.Available {
			total = total.Add(decimal.NewFromFloat(item.Price).Mul(decimal.NewFromInt(int64(line.Quantity))))
		}
		lines = append(lines, line)
	}

	return CartView{
		ID:    cart.ID,
		Items: lines,
		Price: total.InexactFloat64(),
	}, nil
}
