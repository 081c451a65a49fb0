package controllers

import (
	"fmt"
	"net/http"

	"github.com/angelmondragon/shop-api/api/responses"
	"github.com/angelmondragon/shop-api/api/validators"
	"github.com/angelmondragon/shop-api/internal/carts"
	pkgerrors "github.com/angelmondragon/shop-api/pkg/errors"
	"github.com/angelmondragon/shop-api/pkg/logger"
	"github.com/angelmondragon/shop-api/pkg/types"
)

// CreateCart handles POST /cart.
func CreateCart(svc carts.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart service unavailable"))
			return
		}

		cart, err := svc.CreateCart(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if logg != nil {
			logg.Info(logg.WithCartID(r.Context(), cart.ID), "cart.created")
		}
		responses.WriteCreated(w, fmt.Sprintf("/cart/%d", cart.ID), types.CartCreated{ID: cart.ID})
	}
}

// GetCart handles GET /cart/{id}.
func GetCart(svc carts.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart service unavailable"))
			return
		}

		id, err := validators.ParsePathID(r, "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		view, err := svc.GetCart(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, view)
	}
}

// ListCarts handles GET /cart.
func ListCarts(svc carts.Service, defaultLimit int, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart service unavailable"))
			return
		}

		page, err := parsePage(r, defaultLimit)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		input := carts.ListCartsInput{Page: page}
		if input.MinPrice, err = validators.ParseOptionalFloat(r, "min_price", 0); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		if input.MaxPrice, err = validators.ParseOptionalFloat(r, "max_price", 0); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		if input.MinQuantity, err = validators.ParseOptionalInt(r, "min_quantity", 0); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		if input.MaxQuantity, err = validators.ParseOptionalInt(r, "max_quantity", 0); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		views, err := svc.ListCarts(r.Context(), input)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, views)
	}
}

// AddItemToCart handles POST /cart/{cart_id}/add/{item_id}.
func AddItemToCart(svc carts.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart service unavailable"))
			return
		}

		cartID, err := validators.ParsePathID(r, "cart_id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		itemID, err := validators.ParsePathID(r, "item_id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := svc.AddItem(r.Context(), cartID, itemID); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if logg != nil {
			logg.Info(logg.WithItemID(logg.WithCartID(r.Context(), cartID), itemID), "cart.item_added")
		}
		responses.WriteEmpty(w, http.StatusOK)
	}
}
