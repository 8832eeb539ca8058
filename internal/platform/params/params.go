// Package params parses typed path parameters for echo handlers.
package params

import (
	"errors"
	"math"
	"net/url"
	"strconv"

	"github.com/labstack/echo/v4"
)

// ErrOutOfRange reports a well-formed id too large for int. Int returns
// math.MaxInt alongside it, the same way strconv.Atoi does for ErrRange.
var ErrOutOfRange = errors.New("id out of range")

// Int returns the named path parameter as a non-negative integer. The raw
// segment is percent-decoded first; after that only plain decimal digits are
// accepted. Signs, spaces and empty values are rejected with echo.ErrNotFound
// so a malformed id behaves like an unmatched route.
func Int(c echo.Context, name string) (int, error) {
	raw, err := url.PathUnescape(c.Param(name))
	if err != nil || raw == "" {
		return 0, echo.ErrNotFound
	}
	for i := 0; i < len(raw); i++ {
		if raw[i] < '0' || raw[i] > '9' {
			return 0, echo.ErrNotFound
		}
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return math.MaxInt, ErrOutOfRange
	}
	return n, nil
}
