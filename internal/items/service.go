package items

import (
	"context"

	"github.com/angelmondragon/shop-api/internal/memstore"
	"github.com/angelmondragon/shop-api/pkg/enums"
	pkgerrors "github.com/angelmondragon/shop-api/pkg/errors"
	"github.com/angelmondragon/shop-api/pkg/pagination"
)

// Service exposes item catalog operations.
type Service interface {
	CreateItem(ctx context.Context, input CreateItemInput) (Item, error)
	GetItem(ctx context.Context, id int) (Item, error)
	FindItem(ctx context.Context, id int) (Item, error)
	ReplaceItem(ctx context.Context, id int, input CreateItemInput) (Item, error)
	UpdateItem(ctx context.Context, id int, input UpdateItemInput) (Item, bool, error)
	DeleteItem(ctx context.Context, id int) error
	ListItems(ctx context.Context, input ListItemsInput) ([]Item, error)
}

type eventRecorder interface {
	IncEvent(event string)
}

type service struct {
	store   *memstore.Store[Item]
	metrics eventRecorder
}

// NewService constructs an empty in-memory catalog. metrics may be nil.
func NewService(metrics eventRecorder) Service {
	return &service{
		store:   memstore.New[Item](Collection),
		metrics: metrics,
	}
}

// CreateItem stores a new, non-deleted item under the next id.
func (s *service) CreateItem(ctx context.Context, input CreateItemInput) (Item, error) {
	item := s.store.Insert(func(id int) Item {
		return Item{ID: id, Name: input.Name, Price: input.Price}
	})
	s.record(enums.ShopEventItemCreated)
	return item, nil
}

// GetItem returns a visible item. Deleted items are reported as not found.
func (s *service) GetItem(ctx context.Context, id int) (Item, error) {
	item, err := s.store.Find(id)
	if err != nil {
		return Item{}, err
	}
	if item.Deleted {
		return Item{}, pkgerrors.Deleted(Collection, id)
	}
	return item, nil
}

// FindItem returns the item regardless of its deletion state.
func (s *service) FindItem(ctx context.Context, id int) (Item, error) {
	return s.store.Find(id)
}

// ReplaceItem overwrites name and price and always clears the deleted flag.
func (s *service) ReplaceItem(ctx context.Context, id int, input CreateItemInput) (Item, error) {
	item, err := s.store.Mutate(id, func(item *Item) error {
		*item = Item{ID: id, Name: input.Name, Price: input.Price}
		return nil
	})
	if err != nil {
		return Item{}, err
	}
	s.record(enums.ShopEventItemReplaced)
	return item, nil
}

// UpdateItem applies the supplied fields. A deleted item is left as is and
// reported as not modified.
func (s *service) UpdateItem(ctx context.Context, id int, input UpdateItemInput) (Item, bool, error) {
	modified := false
	item, err := s.store.Mutate(id, func(item *Item) error {
		if item.Deleted {
			return nil
		}
		if input.Name != nil {
			item.Name = *input.Name
		}
		if input.Price != nil {
			item.Price = *input.Price
		}
		modified = true
		return nil
	})
	if err != nil {
		return Item{}, false, err
	}
	if modified {
		s.record(enums.ShopEventItemUpdated)
	}
	return item, modified, nil
}

// DeleteItem soft-deletes the item. Deleting twice is a no-op.
func (s *service) DeleteItem(ctx context.Context, id int) error {
	_, err := s.store.Mutate(id, func(item *Item) error {
		item.Deleted = true
		return nil
	})
	if err != nil {
		return err
	}
	s.record(enums.ShopEventItemDeleted)
	return nil
}

// ListItems filters in insertion order and then applies the page window.
func (s *service) ListItems(ctx context.Context, input ListItemsInput) ([]Item, error) {
	all := s.store.Snapshot()
	filtered := make([]Item, 0, len(all))
	for _, item := range all {
		if input.matches(item) {
			filtered = append(filtered, item)
		}
	}
	return pagination.Window(filtered, input.Page), nil
}

func (s *service) record(event enums.ShopEvent) {
	if s.metrics != nil {
		s.metrics.IncEvent(event.String())
	}
}
