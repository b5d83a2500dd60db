package handler

import (
	"log/slog"
	"net/http"

	"bazaar/internal/delivery/http/middleware"
	"bazaar/internal/delivery/http/response"
	"bazaar/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// MediaHandler holds dependencies for image upload handlers.
type MediaHandler struct {
	uc     usecase.MediaUsecase
	logger *slog.Logger
}

// NewMediaHandler is the constructor for MediaHandler, injected by Fx.
func NewMediaHandler(uc usecase.MediaUsecase, logger *slog.Logger) *MediaHandler {
	return &MediaHandler{
		uc:     uc,
		logger: logger,
	}
}

// Upload stores one multipart image and returns its public URL.
func (h *MediaHandler) Upload(c echo.Context) error {
	session := middleware.SessionFromContext(c)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Missing file field")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Unreadable file upload")
	}
	defer file.Close()

	output, err := h.uc.UploadImage(c.Request().Context(), session, &usecase.UploadImageInput{
		Filename:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get("Content-Type"),
		Content:     file,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, output, "Image uploaded successfully")
}

// Delete removes an uploaded image by its public URL.
func (h *MediaHandler) Delete(c echo.Context) error {
	session := middleware.SessionFromContext(c)

	publicURL := c.QueryParam("url")
	if publicURL == "" {
		return response.BadRequest(c, "INVALID_INPUT", "Missing url parameter")
	}

	if err := h.uc.DeleteImage(c.Request().Context(), session, publicURL); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Image deleted"}, "Image deleted successfully")
}
