package handlers

import (
	"net/http"
	"os"

	"github.com/campusmkt/marketplace/internal/uploads"
	"github.com/labstack/echo/v4"
)

// UploadHandler serves stored listing images back by filename
type UploadHandler struct {
	store *uploads.Store
}

// NewUploadHandler creates a new UploadHandler
func NewUploadHandler(store *uploads.Store) *UploadHandler {
	return &UploadHandler{store: store}
}

// RegisterUploadRoutes registers the image-serving route
func (h *UploadHandler) RegisterUploadRoutes(e *echo.Echo) {
	e.GET("/uploads/:filename", h.Serve)
}

// Serve streams a stored image or responds 404
func (h *UploadHandler) Serve(c echo.Context) error {
	path := h.store.Path(c.Param("filename"))
	if _, err := os.Stat(path); err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "File not found")
	}
	return c.File(path)
}
