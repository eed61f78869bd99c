package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// reqCtx derives a bounded context for database work from the request.
func reqCtx(c echo.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.Request().Context(), 5*time.Second)
}

// serverError renders the standard 500 body: a fixed message plus the
// underlying error text passed through in an "error" field.
func serverError(c echo.Context, err error) error {
	return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Server error", "error": err.Error()})
}

// notFound renders a 404 with the given message.
func notFound(c echo.Context, msg string) error {
	return c.JSON(http.StatusNotFound, echo.Map{"message": msg})
}

// badRequest renders a 400 with the given message.
func badRequest(c echo.Context, msg string) error {
	return c.JSON(http.StatusBadRequest, echo.Map{"message": msg})
}
