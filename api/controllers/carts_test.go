package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/angelmondragon/shop-api/internal/carts"
	"github.com/angelmondragon/shop-api/internal/items"
	pkgerrors "github.com/angelmondragon/shop-api/pkg/errors"
	"github.com/angelmondragon/shop-api/pkg/types"
)

type stubCartService struct {
	cart  carts.Cart
	view  carts.CartView
	views []carts.CartView
	err   error

	added     [2]int
	listInput carts.ListCartsInput
}

func (s *stubCartService) CreateCart(ctx context.Context) (carts.Cart, error) {
	return s.cart, s.err
}

func (s *stubCartService) AddItem(ctx context.Context, cartID, itemID int) error {
	s.added = [2]int{cartID, itemID}
	return s.err
}

func (s *stubCartService) GetCart(ctx context.Context, cartID int) (carts.CartView, error) {
	return s.view, s.err
}

func (s *stubCartService) ListCarts(ctx context.Context, input carts.ListCartsInput) ([]carts.CartView, error) {
	s.listInput = input
	return s.views, s.err
}

func TestCreateCart(t *testing.T) {
	svc := &stubCartService{cart: carts.Cart{ID: 2, ItemIDs: []int{}}}
	resp := httptest.NewRecorder()
	CreateCart(svc, nil).ServeHTTP(resp, httptest.NewRequest(http.MethodPost, "/cart", nil))

	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201 got %d", resp.Code)
	}
	if resp.Header().Get("Location") != "/cart/2" {
		t.Fatalf("unexpected location %q", resp.Header().Get("Location"))
	}
	var body types.CartCreated
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if body.ID != 2 {
		t.Fatalf("expected id 2 got %d", body.ID)
	}
}

func TestGetCart(t *testing.T) {
	svc := &stubCartService{view: carts.CartView{
		ID:    1,
		Items: []carts.CartItem{{ID: 1, Name: "Tea", Quantity: 2, Available: true}},
		Price: 20,
	}}
	req := requestWithParams(http.MethodGet, "/cart/1", nil, map[string]string{"id": "1"})
	resp := httptest.NewRecorder()
	GetCart(svc, nil).ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
	var body carts.CartView
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if body.Price != 20 || len(body.Items) != 1 || body.Items[0].Quantity != 2 {
		t.Fatalf("unexpected view %+v", body)
	}
}

func TestGetCartNotFound(t *testing.T) {
	svc := &stubCartService{err: pkgerrors.NotFound(carts.Collection, 7)}
	req := requestWithParams(http.MethodGet, "/cart/7", nil, map[string]string{"id": "7"})
	resp := httptest.NewRecorder()
	GetCart(svc, nil).ServeHTTP(resp, req)

	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404 got %d", resp.Code)
	}
}

func TestListCartsParsesQuery(t *testing.T) {
	svc := &stubCartService{views: []carts.CartView{}}
	req := httptest.NewRequest(http.MethodGet, "/cart?offset=1&limit=3&min_price=0&max_price=50&min_quantity=1&max_quantity=4", nil)
	resp := httptest.NewRecorder()
	ListCarts(svc, 10, nil).ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
	in := svc.listInput
	if in.Page.Offset != 1 || in.Page.Limit != 3 {
		t.Fatalf("unexpected page %+v", in.Page)
	}
	if in.MinQuantity == nil || *in.MinQuantity != 1 || in.MaxQuantity == nil || *in.MaxQuantity != 4 {
		t.Fatalf("unexpected quantity bounds %+v", in)
	}
	if in.MinPrice == nil || *in.MinPrice != 0 || in.MaxPrice == nil || *in.MaxPrice != 50 {
		t.Fatalf("unexpected price bounds %+v", in)
	}
}

func TestListCartsRejectsNegativeQuantity(t *testing.T) {
	resp := httptest.NewRecorder()
	ListCarts(&stubCartService{}, 10, nil).ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/cart?min_quantity=-1", nil))
	if resp.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422 got %d", resp.Code)
	}
}

func TestAddItemToCart(t *testing.T) {
	svc := &stubCartService{}
	req := requestWithParams(http.MethodPost, "/cart/1/add/5", nil, map[string]string{"cart_id": "1", "item_id": "5"})
	resp := httptest.NewRecorder()
	AddItemToCart(svc, nil).ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
	if svc.added != [2]int{1, 5} {
		t.Fatalf("unexpected add call %v", svc.added)
	}
}

func TestAddItemToCartUnknownItem(t *testing.T) {
	svc := &stubCartService{err: pkgerrors.NotFound(items.Collection, 99)}
	req := requestWithParams(http.MethodPost, "/cart/1/add/99", nil, map[string]string{"cart_id": "1", "item_id": "99"})
	resp := httptest.NewRecorder()
	AddItemToCart(svc, nil).ServeHTTP(resp, req)

	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404 got %d", resp.Code)
	}
	if code := decodeErrorCode(t, resp); code != string(pkgerrors.CodeNotFound) {
		t.Fatalf("unexpected code %s", code)
	}
}
