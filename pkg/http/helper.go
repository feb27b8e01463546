package http

import (
	"net/http"
	"strconv"
	"time"

	apperrors "innkeep/pkg/errors"
)

// ParseDateParam reads a query parameter as either a date (2006-01-02) or a
// full RFC 3339 timestamp.
func ParseDateParam(r *http.Request, name string) (time.Time, error) {
	value := r.URL.Query().Get(name)
	if value == "" {
		return time.Time{}, apperrors.InvalidInput("missing " + name + " parameter")
	}

	if t, err := time.Parse("2006-01-02", value); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return time.Time{}, apperrors.InvalidInput("invalid " + name + " parameter: " + value)
}

// ParseOptionalIntParam reads a query parameter as an int, returning fallback
// when absent.
func ParseOptionalIntParam(r *http.Request, name string, fallback int) (int, error) {
	value := r.URL.Query().Get(name)
	if value == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, apperrors.InvalidInput("invalid " + name + " parameter: " + value)
	}
	return n, nil
}
