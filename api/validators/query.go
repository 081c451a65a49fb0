package validators

import (
	"net/http"
	"strconv"
	"strings"

	pkgerrors "github.com/angelmondragon/shop-api/pkg/errors"
)

func queryValue(r *http.Request, key string) string {
	return strings.TrimSpace(r.URL.Query().Get(key))
}

// ParseQueryInt reads an integer parameter that must be at least min.
func ParseQueryInt(r *http.Request, key string, defaultVal, min int) (int, error) {
	value, err := ParseOptionalInt(r, key, min)
	if err != nil {
		return 0, err
	}
	if value == nil {
		return defaultVal, nil
	}
	return *value, nil
}

// ParseOptionalInt returns nil when the parameter is absent.
func ParseOptionalInt(r *http.Request, key string, min int) (*int, error) {
	raw := queryValue(r, key)
	if raw == "" {
		return nil, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "query parameter must be an integer").WithDetails(map[string]any{"field": key})
	}
	if value < min {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "query parameter out of range").WithDetails(map[string]any{"field": key, "min": min})
	}
	return &value, nil
}

// ParseOptionalFloat returns nil when the parameter is absent.
func ParseOptionalFloat(r *http.Request, key string, min float64) (*float64, error) {
	raw := queryValue(r, key)
	if raw == "" {
		return nil, nil
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "query parameter must be a number").WithDetails(map[string]any{"field": key})
	}
	if value < min {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "query parameter out of range").WithDetails(map[string]any{"field": key, "min": min})
	}
	return &value, nil
}

// ParseQueryBool accepts the usual spellings: true/false, 1/0, yes/no, on/off.
func ParseQueryBool(r *http.Request, key string, defaultVal bool) (bool, error) {
	switch strings.ToLower(queryValue(r, key)) {
	case "":
		return defaultVal, nil
	case "true", "1", "yes", "on":
		return true, nil
	case "false", "0", "no", "off":
		return false, nil
	}
	return false, pkgerrors.New(pkgerrors.CodeValidation, "query parameter must be a boolean").WithDetails(map[string]any{"field": key})
}
