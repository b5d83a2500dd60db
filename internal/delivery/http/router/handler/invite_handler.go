package handler

import (
	"encoding/base64"
	"log/slog"
	"net/http"
	"strconv"

	"bazaar/internal/delivery/http/middleware"
	"bazaar/internal/delivery/http/response"
	"bazaar/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// InviteHandler holds dependencies for customer-invite handlers.
type InviteHandler struct {
	uc     usecase.InviteUsecase
	logger *slog.Logger
}

// NewInviteHandler is the constructor for InviteHandler, injected by Fx.
func NewInviteHandler(uc usecase.InviteUsecase, logger *slog.Logger) *InviteHandler {
	return &InviteHandler{
		uc:     uc,
		logger: logger,
	}
}

// Generate returns the seller's invite link and its QR code. The PNG travels
// base64-encoded so the whole payload stays JSON.
func (h *InviteHandler) Generate(c echo.Context) error {
	session := middleware.SessionFromContext(c)

	sellerID, err := strconv.ParseInt(c.Param("sellerID"), 10, 64)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid seller id")
	}

	output, err := h.uc.GenerateInviteLink(c.Request().Context(), session, sellerID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{
		"link":   output.Link,
		"qrPng":  base64.StdEncoding.EncodeToString(output.QRPNG),
		"format": "image/png;base64",
	}, "Invite link generated successfully")
}

// QRImage serves the invite QR code directly as a PNG, for <img> embedding.
func (h *InviteHandler) QRImage(c echo.Context) error {
	session := middleware.SessionFromContext(c)

	sellerID, err := strconv.ParseInt(c.Param("sellerID"), 10, 64)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid seller id")
	}

	output, err := h.uc.GenerateInviteLink(c.Request().Context(), session, sellerID)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", output.QRPNG)
}
