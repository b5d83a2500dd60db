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

// ProductHandler holds dependencies for catalog handlers.
type ProductHandler struct {
	uc     usecase.ProductUsecase
	logger *slog.Logger
}

// NewProductHandler is the constructor for ProductHandler, injected by Fx.
func NewProductHandler(uc usecase.ProductUsecase, logger *slog.Logger) *ProductHandler {
	return &ProductHandler{
		uc:     uc,
		logger: logger,
	}
}

// List returns one page of the seller's catalog.
func (h *ProductHandler) List(c echo.Context) error {
	session := middleware.SessionFromContext(c)

	sellerID, err := strconv.ParseInt(c.Param("sellerID"), 10, 64)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid seller id")
	}

	page, _ := strconv.Atoi(c.QueryParam("page"))
	publishedOnly, _ := strconv.ParseBool(c.QueryParam("published"))

	output, err := h.uc.ListProducts(c.Request().Context(), session, &usecase.ListProductsInput{
		SellerID:      sellerID,
		Search:        c.QueryParam("search"),
		Page:          page,
		PublishedOnly: publishedOnly,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Products retrieved successfully")
}

// Storefront returns one page of a seller's published products. The route
// guard has already confirmed the caller belongs to this storefront.
func (h *ProductHandler) Storefront(c echo.Context) error {
	sellerID, err := strconv.ParseInt(c.Param("sellerID"), 10, 64)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid seller id")
	}

	page, _ := strconv.Atoi(c.QueryParam("page"))

	output, err := h.uc.ListStorefront(c.Request().Context(), sellerID, page, c.QueryParam("search"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Products retrieved successfully")
}

// Get returns a single product.
func (h *ProductHandler) Get(c echo.Context) error {
	session := middleware.SessionFromContext(c)

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid product id")
	}

	product, err := h.uc.GetProduct(c.Request().Context(), session, id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, product, "Product retrieved successfully")
}

// Create adds a product to the seller's catalog.
func (h *ProductHandler) Create(c echo.Context) error {
	session := middleware.SessionFromContext(c)

	sellerID, err := strconv.ParseInt(c.Param("sellerID"), 10, 64)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid seller id")
	}

	var input *usecase.CreateProductInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product input")
	}
	input.SellerID = sellerID

	product, err := h.uc.CreateProduct(c.Request().Context(), session, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, product, "Product created successfully")
}

// Update replaces an existing product.
func (h *ProductHandler) Update(c echo.Context) error {
	session := middleware.SessionFromContext(c)

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid product id")
	}

	var input *usecase.UpdateProductInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product input")
	}
	input.ID = id

	product, err := h.uc.UpdateProduct(c.Request().Context(), session, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, product, "Product updated successfully")
}

// updateStockRequest carries the new stock counter.
type updateStockRequest struct {
	CountInStock int64 `json:"countInStock"`
}

// UpdateStock sets the stock counter of a product.
func (h *ProductHandler) UpdateStock(c echo.Context) error {
	session := middleware.SessionFromContext(c)

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid product id")
	}

	var req updateStockRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid stock input")
	}

	if err := h.uc.UpdateStock(c.Request().Context(), session, id, req.CountInStock); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Stock updated"}, "Stock updated successfully")
}

// setPublishedRequest carries the storefront visibility flag.
type setPublishedRequest struct {
	IsPublished bool `json:"isPublished"`
}

// SetPublished flips the storefront visibility of a product.
func (h *ProductHandler) SetPublished(c echo.Context) error {
	session := middleware.SessionFromContext(c)

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid product id")
	}

	var req setPublishedRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid publish input")
	}

	if err := h.uc.SetPublished(c.Request().Context(), session, id, req.IsPublished); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Visibility updated"}, "Visibility updated successfully")
}

// Delete removes a product from the catalog.
func (h *ProductHandler) Delete(c echo.Context) error {
	session := middleware.SessionFromContext(c)

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid product id")
	}

	if err := h.uc.DeleteProduct(c.Request().Context(), session, id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Product deleted"}, "Product deleted successfully")
}
