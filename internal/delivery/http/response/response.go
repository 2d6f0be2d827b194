// Package response renders the storefront wire format. The shapes are part
// of the public contract with the SPA: bare arrays for listings, literal
// null for an absent single item, {"success":true} acknowledgements and
// flat {"error": msg} failures.
package response

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// JSON writes data verbatim with status 200. A typed nil must be converted
// to a nil any by the caller to render as literal null.
func JSON(c echo.Context, data any) error {
	return c.JSON(http.StatusOK, data)
}

// OK acknowledges a mutation: {"success":true}.
func OK(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{"success": true})
}

// Created acknowledges a creation, echoing the caller-supplied id.
func Created(c echo.Context, id string) error {
	return c.JSON(http.StatusOK, map[string]any{"success": true, "id": id})
}

// Error writes the flat error shape the SPA expects.
func Error(c echo.Context, statusCode int, message string) error {
	return c.JSON(statusCode, map[string]string{"error": message})
}
