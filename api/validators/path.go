package validators

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	pkgerrors "github.com/angelmondragon/shop-api/pkg/errors"
)

// ParsePathID reads an integer route parameter.
func ParsePathID(r *http.Request, key string) (int, error) {
	raw := chi.URLParam(r, key)
	id, err := strconv.Atoi(raw)
	if err != nil {
		return 0, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "path parameter must be an integer").WithDetails(map[string]any{"field": key})
	}
	return id, nil
}
