package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ctxOwner extracts the owner id injected by the Auth middleware. A token
// that verified but carries no owner identity is rejected before any
// service call.
func ctxOwner(c echo.Context) (string, error) {
	ownerID, _ := c.Get("owner_id").(string)
	if ownerID == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "token missing owner identity")
	}
	return ownerID, nil
}
