package controllers

import (
	"fmt"
	"net/http"

	"github.com/angelmondragon/shop-api/api/responses"
	"github.com/angelmondragon/shop-api/api/validators"
	"github.com/angelmondragon/shop-api/internal/items"
	pkgerrors "github.com/angelmondragon/shop-api/pkg/errors"
	"github.com/angelmondragon/shop-api/pkg/logger"
	"github.com/angelmondragon/shop-api/pkg/pagination"
)

type itemRequest struct {
	Name  *string  `json:"name" validate:"required"`
	Price *float64 `json:"price" validate:"required"`
}

func (r itemRequest) toInput() items.CreateItemInput {
	return items.CreateItemInput{Name: *r.Name, Price: *r.Price}
}

type patchItemRequest struct {
	Name  *string  `json:"name"`
	Price *float64 `json:"price"`
}

// CreateItem handles POST /item.
func CreateItem(svc items.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "item service unavailable"))
			return
		}

		var payload itemRequest
		if err := validators.DecodeJSONBodyLenient(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		item, err := svc.CreateItem(r.Context(), payload.toInput())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if logg != nil {
			logg.Info(logg.WithItemID(r.Context(), item.ID), "item.created")
		}
		responses.WriteCreated(w, fmt.Sprintf("/item/%d", item.ID), item)
	}
}

// GetItem handles GET /item/{id}. Deleted items are reported as not found.
func GetItem(svc items.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "item service unavailable"))
			return
		}

		id, err := validators.ParsePathID(r, "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		item, err := svc.GetItem(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, item)
	}
}

// ListItems handles GET /item.
func ListItems(svc items.Service, defaultLimit int, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "item service unavailable"))
			return
		}

		page, err := parsePage(r, defaultLimit)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		minPrice, err := validators.ParseOptionalFloat(r, "min_price", 0)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		maxPrice, err := validators.ParseOptionalFloat(r, "max_price", 0)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		showDeleted, err := validators.ParseQueryBool(r, "show_deleted", true)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		list, err := svc.ListItems(r.Context(), items.ListItemsInput{
			Page:        page,
			MinPrice:    minPrice,
			MaxPrice:    maxPrice,
			ShowDeleted: showDeleted,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, list)
	}
}

// ReplaceItem handles PUT /item/{id}. A deleted item is restored.
func ReplaceItem(svc items.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "item service unavailable"))
			return
		}

		id, err := validators.ParsePathID(r, "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload itemRequest
		if err := validators.DecodeJSONBodyLenient(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		item, err := svc.ReplaceItem(r.Context(), id, payload.toInput())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if logg != nil {
			logg.Info(logg.WithItemID(r.Context(), item.ID), "item.replaced")
		}
		responses.WriteSuccess(w, item)
	}
}

// PatchItem handles PATCH /item/{id}. Patching a deleted item answers 304.
func PatchItem(svc items.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "item service unavailable"))
			return
		}

		id, err := validators.ParsePathID(r, "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload patchItemRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		item, modified, err := svc.UpdateItem(r.Context(), id, items.UpdateItemInput{
			Name:  payload.Name,
			Price: payload.Price,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if !modified {
			responses.WriteSuccessStatus(w, http.StatusNotModified, item)
			return
		}

		if logg != nil {
			logg.Info(logg.WithItemID(r.Context(), item.ID), "item.updated")
		}
		responses.WriteSuccess(w, item)
	}
}

// DeleteItem handles DELETE /item/{id}. Repeated deletes succeed.
func DeleteItem(svc items.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "item service unavailable"))
			return
		}

		id, err := validators.ParsePathID(r, "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := svc.DeleteItem(r.Context(), id); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if logg != nil {
			logg.Info(logg.WithItemID(r.Context(), id), "item.deleted")
		}
		responses.WriteEmpty(w, http.StatusOK)
	}
}

func parsePage(r *http.Request, defaultLimit int) (pagination.Params, error) {
	if defaultLimit <= 0 {
		defaultLimit = pagination.DefaultLimit
	}
	offset, err := validators.ParseQueryInt(r, "offset", 0, 0)
	if err != nil {
		return pagination.Params{}, err
	}
	limit, err := validators.ParseQueryInt(r, "limit", defaultLimit, 1)
	if err != nil {
		return pagination.Params{}, err
	}
	return pagination.Params{Offset: offset, Limit: limit}, nil
}
