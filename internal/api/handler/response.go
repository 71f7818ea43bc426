package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/OscarMG4/space-booking-app/internal/core/ports"
)

// response is the gateway's success envelope, mirroring the backend's shape
// so browser code can treat both uniformly.
type response struct {
	Success bool            `json:"success"`
	Data    any             `json:"data,omitempty"`
	Message string          `json:"message,omitempty"`
	Meta    *ports.PageMeta `json:"meta,omitempty"`
}

func ok(c echo.Context, code int, data any) error {
	return c.JSON(code, response{Success: true, Data: data})
}

func okPage(c echo.Context, data any, meta ports.PageMeta) error {
	return c.JSON(http.StatusOK, response{Success: true, Data: data, Meta: &meta})
}

func okMessage(c echo.Context, code int, message string) error {
	return c.JSON(code, response{Success: true, Message: message})
}
