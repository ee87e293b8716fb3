package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/eventhub/event-management-api/pkg/pagination"
)

// Meta carries pagination metadata for list responses.
type Meta struct {
	Total int64 `json:"total"`
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
}

// pageMeta derives Meta from the same normalization the repositories use,
// so the reported page and limit always match what was actually served.
func pageMeta(opts pagination.Options, total int64) Meta {
	pg := pagination.Normalize(opts)
	return Meta{Total: total, Page: pg.Page, Limit: pg.Limit}
}

// envelope is the canonical success shape for every endpoint:
// {success, message, meta?, data?}.
type envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Meta    *Meta  `json:"meta,omitempty"`
	Data    any    `json:"data,omitempty"`
}

func respond(c echo.Context, status int, message string, data any) error {
	return c.JSON(status, envelope{Success: true, Message: message, Data: data})
}

func respondPage(c echo.Context, status int, message string, meta Meta, data any) error {
	return c.JSON(status, envelope{Success: true, Message: message, Meta: &meta, Data: data})
}
