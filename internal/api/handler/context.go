package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/minimarket/catalog-api/internal/core/domain"
)

// ctxSession extracts the Session injected by the Auth middleware. Its
// presence proves the middleware ran; a missing session is a wiring fault
// surfaced as 401 rather than a panic.
func ctxSession(c echo.Context) (domain.Session, error) {
	session, ok := c.Get("session").(domain.Session)
	if !ok {
		return domain.Session{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return session, nil
}

// pathID parses the numeric :id path parameter.
func pathID(c echo.Context) (int, error) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	return id, nil
}
