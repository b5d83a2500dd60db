package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"bazaar/internal/delivery/http/middleware"
	"bazaar/internal/delivery/http/response"
	"bazaar/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// SellerHandler holds dependencies for seller management handlers.
type SellerHandler struct {
	uc     usecase.SellerUsecase
	logger *slog.Logger
}

// NewSellerHandler is the constructor for SellerHandler, injected by Fx.
func NewSellerHandler(uc usecase.SellerUsecase, logger *slog.Logger) *SellerHandler {
	return &SellerHandler{
		uc:     uc,
		logger: logger,
	}
}

// registerSellerRequest is the seller registration payload. The phone number
// is a bare 10-digit string.
type registerSellerRequest struct {
	Name      string `json:"name" validate:"required"`
	GroupName string `json:"groupName" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Phone     string `json:"phone" validate:"required,len=10,numeric"`
}

// Register handles the passwordless seller registration request.
func (h *SellerHandler) Register(c echo.Context) error {
	var req registerSellerRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid seller registration input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	seller, err := h.uc.RegisterSeller(c.Request().Context(), &usecase.RegisterSellerInput{
		Name:      req.Name,
		GroupName: req.GroupName,
		Email:     req.Email,
		Phone:     req.Phone,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, seller, "Seller registered, pending verification")
}

// List returns sellers for the owner, optionally filtered by ?verified=.
func (h *SellerHandler) List(c echo.Context) error {
	session := middleware.SessionFromContext(c)

	var verified *bool
	if raw := c.QueryParam("verified"); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			return response.BadRequest(c, "INVALID_INPUT", "verified must be true or false")
		}
		verified = &parsed
	}

	sellers, err := h.uc.ListSellers(c.Request().Context(), session, verified)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, sellers, "Sellers retrieved successfully")
}

// Get returns one seller.
func (h *SellerHandler) Get(c echo.Context) error {
	session := middleware.SessionFromContext(c)

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid seller id")
	}

	seller, err := h.uc.GetSeller(c.Request().Context(), session, id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, seller, "Seller retrieved successfully")
}

// Panel returns the seller for its admin's panel. Unlike the owner routes,
// the panel routes carry the seller id under the sellerID param.
func (h *SellerHandler) Panel(c echo.Context) error {
	session := middleware.SessionFromContext(c)

	sellerID, err := strconv.ParseInt(c.Param("sellerID"), 10, 64)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid seller id")
	}

	seller, err := h.uc.GetSeller(c.Request().Context(), session, sellerID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, seller, "Seller retrieved successfully")
}

// Verify marks a seller verified and returns the provisioned admin
// credentials. The generated password appears in this response only.
func (h *SellerHandler) Verify(c echo.Context) error {
	session := middleware.SessionFromContext(c)

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid seller id")
	}

	output, err := h.uc.VerifySeller(c.Request().Context(), session, id)
	if err != nil {
		return errors.WithStack(err)
	}

	admin := output.Admin.Sanitized()

	return response.Success(c, http.StatusOK, map[string]any{
		"seller":   output.Seller,
		"admin":    admin,
		"password": output.Password,
	}, "Seller verified successfully")
}

// updateControlsRequest is the owner's seller-control payload.
type updateControlsRequest struct {
	Blocked    *bool  `json:"blocked"`
	PriceRange *int64 `json:"priceRange"`
}

// UpdateControls applies the owner's block flag and price range.
func (h *SellerHandler) UpdateControls(c echo.Context) error {
	session := middleware.SessionFromContext(c)

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid seller id")
	}

	var req updateControlsRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid seller controls input")
	}

	seller, err := h.uc.UpdateSellerControls(c.Request().Context(), session, &usecase.UpdateSellerControlsInput{
		SellerID:   id,
		Blocked:    req.Blocked,
		PriceRange: req.PriceRange,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, seller, "Seller controls updated successfully")
}

// updateCredentialsRequest carries replacement admin login credentials.
type updateCredentialsRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required,min=8"`
}

// UpdateCredentials replaces the provisioned admin credentials of a seller.
func (h *SellerHandler) UpdateCredentials(c echo.Context) error {
	session := middleware.SessionFromContext(c)

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid seller id")
	}

	var req updateCredentialsRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid credentials input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	admin, err := h.uc.UpdateAdminCredentials(c.Request().Context(), session, &usecase.UpdateAdminCredentialsInput{
		SellerID: id,
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, admin.Sanitized(), "Admin credentials updated successfully")
}
