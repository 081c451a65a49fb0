package carts

import (
	"context"
	"fmt"

	"github.com/angelmondragon/shop-api/internal/items"
	"github.com/angelmondragon/shop-api/internal/memstore"
	"github.com/angelmondragon/shop-api/pkg/enums"
	"github.com/angelmondragon/shop-api/pkg/pagination"
)

// Service exposes cart operations.
type Service interface {
	CreateCart(ctx context.Context) (Cart, error)
	AddItem(ctx context.Context, cartID, itemID int) error
	GetCart(ctx context.Context, cartID int) (CartView, error)
	ListCarts(ctx context.Context, input ListCartsInput) ([]CartView, error)
}

type itemFinder interface {
	FindItem(ctx context.Context, id int) (items.Item, error)
}

type eventRecorder interface {
	IncEvent(event string)
}

type service struct {
	store   *memstore.Store[Cart]
	items   itemFinder
	metrics eventRecorder
}

// NewService constructs an empty cart store reading item state from itemSvc.
func NewService(itemSvc itemFinder, metrics eventRecorder) (Service, error) {
	if itemSvc == nil {
		return nil, fmt.Errorf("item service required")
	}
	return &service{
		store:   memstore.New[Cart](Collection),
		items:   itemSvc,
		metrics: metrics,
	}, nil
}

// CreateCart stores an empty cart under the next cart id.
func (s *service) CreateCart(ctx context.Context) (Cart, error) {
	cart := s.store.Insert(func(id int) Cart {
		return Cart{ID: id, ItemIDs: []int{}}
	})
	s.record(enums.ShopEventCartCreated)
	return cart, nil
}

// AddItem appends itemID to the cart. The cart is checked before the item;
// deleted items may be added, unknown ones may not.
func (s *service) AddItem(ctx context.Context, cartID, itemID int) error {
	_, err := s.store.Mutate(cartID, func(cart *Cart) error {
		if _, err := s.items.FindItem(ctx, itemID); err != nil {
			return err
		}
		cart.ItemIDs = append(cart.ItemIDs, itemID)
		return nil
	})
	if err != nil {
		return err
	}
	s.record(enums.ShopEventCartItemAdded)
	return nil
}

// GetCart materializes the cart view from current item state.
func (s *service) GetCart(ctx context.Context, cartID int) (CartView, error) {
	cart, err := s.store.Find(cartID)
	if err != nil {
		return CartView{}, err
	}
	return s.buildView(ctx, cart)
}

// ListCarts materializes every cart in creation order, filters on computed
// price and total quantity, then applies the page window.
func (s *service) ListCarts(ctx context.Context, input ListCartsInput) ([]CartView, error) {
	all := s.store.Snapshot()
	filtered := make([]CartView, 0, len(all))
	for _, cart := range all {
		view, err := s.buildView(ctx, cart)
		if err != nil {
			return nil, err
		}
		if input.matches(view) {
			filtered = append(filtered, view)
		}
	}
	return pagination.Window(filtered, input.Page), nil
}

func (s *service) record(event enums.ShopEvent) {
	if s.metrics != nil {
		s.metrics.IncEvent(event.String())
	}
}
