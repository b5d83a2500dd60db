package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "bazaar/internal/delivery/context"
	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	"bazaar/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// productPageSize is the fixed page size of catalog listings.
const productPageSize = 10

// productService implements the ProductUsecase interface.
type productService struct {
	productRepo repository.ProductRepository
	logger      *slog.Logger
}

// ProductServiceParams holds dependencies for productService, injected by Fx.
type ProductServiceParams struct {
	fx.In

	ProductRepo repository.ProductRepository
	Logger      *slog.Logger
}

// NewProductService is the constructor for productService.
func NewProductService(params ProductServiceParams) usecase.ProductUsecase {
	return &productService{
		productRepo: params.ProductRepo,
		logger:      params.Logger,
	}
}

func (srv *productService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// authorizeSeller checks that the session may manage the given seller's
// catalog: the owner always may, an admin only for its own seller.
func authorizeSeller(session *entity.Session, sellerID int64) error {
	if session.IsOwner() || session.AdminOf(sellerID) {
		return nil
	}

	return domainerrors.ErrForbidden.WrapMessage("not an admin of this seller")
}

// ListProducts returns one page of the seller's catalog, newest first.
func (srv *productService) ListProducts(ctx context.Context, session *entity.Session, input *usecase.ListProductsInput) (*usecase.ListProductsOutput, error) {
	if err := authorizeSeller(session, input.SellerID); err != nil {
		return nil, err
	}

	return srv.listPage(ctx, input.SellerID, repository.ProductQuery{
		Search:        input.Search,
		Page:          input.Page,
		PageSize:      productPageSize,
		PublishedOnly: input.PublishedOnly,
	})
}

// ListStorefront returns one page of the seller's published products. The
// route guard has already decided the caller may see this storefront.
func (srv *productService) ListStorefront(ctx context.Context, sellerID int64, page int, search string) (*usecase.ListProductsOutput, error) {
	return srv.listPage(ctx, sellerID, repository.ProductQuery{
		Search:        search,
		Page:          page,
		PageSize:      productPageSize,
		PublishedOnly: true,
	})
}

func (srv *productService) listPage(ctx context.Context, sellerID int64, query repository.ProductQuery) (*usecase.ListProductsOutput, error) {
	products, total, err := srv.productRepo.ListBySeller(ctx, sellerID, query)
	if err != nil {
		srv.log(ctx).Error("Failed to list products", slog.Int64("sellerID", sellerID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list products")
	}

	page := query.Page
	if page < 1 {
		page = 1
	}
	totalPages := int((total + productPageSize - 1) / productPageSize)

	return &usecase.ListProductsOutput{
		Products:   products,
		Total:      total,
		Page:       page,
		PageSize:   productPageSize,
		TotalPages: totalPages,
	}, nil
}

// GetProduct returns a single product of the seller.
func (srv *productService) GetProduct(ctx context.Context, session *entity.Session, id int64) (*entity.Product, error) {
	product, err := srv.findProduct(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := authorizeSeller(session, product.SellerID); err != nil {
		return nil, err
	}

	return product, nil
}

// CreateProduct adds a product to the seller's catalog.
func (srv *productService) CreateProduct(ctx context.Context, session *entity.Session, input *usecase.CreateProductInput) (*entity.Product, error) {
	if err := authorizeSeller(session, input.SellerID); err != nil {
		return nil, err
	}
	if len(input.Images) > entity.MaxProductImages {
		return nil, domainerrors.ErrTooManyImages
	}

	product := &entity.Product{
		SellerID:     input.SellerID,
		Name:         input.Name,
		Slug:         generateSlug(input.Name),
		Category:     input.Category,
		Brand:        input.Brand,
		Description:  input.Description,
		Price:        input.Price,
		ListPrice:    input.ListPrice,
		CountInStock: input.CountInStock,
		Images:       input.Images,
		Tags:         splitTags(input.Tags),
		Colors:       input.Colors,
		Sizes:        input.Sizes,
		SizePrices:   input.SizePrices,
		IsPublished:  input.IsPublished,
	}

	if err := srv.productRepo.Create(ctx, product); err != nil {
		srv.log(ctx).Error("Failed to create product", slog.Int64("sellerID", input.SellerID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create product")
	}

	srv.log(ctx).Info("Product created", slog.Int64("productID", product.ID), slog.Int64("sellerID", product.SellerID))

	return product, nil
}

// UpdateProduct replaces an existing product whole-row, last write wins.
func (srv *productService) UpdateProduct(ctx context.Context, session *entity.Session, input *usecase.UpdateProductInput) (*entity.Product, error) {
	existing, err := srv.findProduct(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if err := authorizeSeller(session, existing.SellerID); err != nil {
		return nil, err
	}
	if len(input.Images) > entity.MaxProductImages {
		return nil, domainerrors.ErrTooManyImages
	}

	product := &entity.Product{
		ID:           existing.ID,
		SellerID:     existing.SellerID,
		Name:         input.Name,
		Slug:         generateSlug(input.Name),
		Category:     input.Category,
		Brand:        input.Brand,
		Description:  input.Description,
		Price:        input.Price,
		ListPrice:    input.ListPrice,
		CountInStock: input.CountInStock,
		Images:       input.Images,
		Tags:         splitTags(input.Tags),
		Colors:       input.Colors,
		Sizes:        input.Sizes,
		SizePrices:   input.SizePrices,
		IsPublished:  input.IsPublished,
		NumSales:     existing.NumSales,
		CreatedAt:    existing.CreatedAt,
	}

	if err := srv.productRepo.Update(ctx, product); err != nil {
		srv.log(ctx).Error("Failed to update product", slog.Int64("productID", input.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to update product")
	}

	return product, nil
}

// UpdateStock sets the freely editable stock counter.
func (srv *productService) UpdateStock(ctx context.Context, session *entity.Session, id int64, countInStock int64) error {
	product, err := srv.findProduct(ctx, id)
	if err != nil {
		return err
	}
	if err := authorizeSeller(session, product.SellerID); err != nil {
		return err
	}

	if err := srv.productRepo.UpdateStock(ctx, id, countInStock); err != nil {
		srv.log(ctx).Error("Failed to update stock", slog.Int64("productID", id), slog.Any("error", err))

		return errors.Wrap(err, "failed to update stock")
	}

	return nil
}

// SetPublished flips the storefront visibility of a product.
func (srv *productService) SetPublished(ctx context.Context, session *entity.Session, id int64, published bool) error {
	product, err := srv.findProduct(ctx, id)
	if err != nil {
		return err
	}
	if err := authorizeSeller(session, product.SellerID); err != nil {
		return err
	}

	product.IsPublished = published
	if err := srv.productRepo.Update(ctx, product); err != nil {
		srv.log(ctx).Error("Failed to set published flag", slog.Int64("productID", id), slog.Any("error", err))

		return errors.Wrap(err, "failed to set published flag")
	}

	return nil
}

// DeleteProduct removes a product from the catalog.
func (srv *productService) DeleteProduct(ctx context.Context, session *entity.Session, id int64) error {
	product, err := srv.findProduct(ctx, id)
	if err != nil {
		return err
	}
	if err := authorizeSeller(session, product.SellerID); err != nil {
		return err
	}

	if err := srv.productRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return domainerrors.ErrProductNotFound
		}
		srv.log(ctx).Error("Failed to delete product", slog.Int64("productID", id), slog.Any("error", err))

		return errors.Wrap(err, "failed to delete product")
	}

	srv.log(ctx).Info("Product deleted", slog.Int64("productID", id))

	return nil
}

func (srv *productService) findProduct(ctx context.Context, id int64) (*entity.Product, error) {
	product, err := srv.productRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product")
	}

	return product, nil
}

// generateSlug lowercases the name, collapses every non-alphanumeric run into
// a single dash and trims dashes from both ends.
func generateSlug(name string) string {
	var b strings.Builder
	lastDash := true
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		default:
			if !lastDash {
				b.WriteByte('-')
				lastDash = true
			}
		}
	}

	return strings.TrimRight(b.String(), "-")
}

// splitTags turns a comma-separated tag string into a trimmed list, dropping
// empty entries.
func splitTags(raw string) []string {
	parts := strings.Split(raw, ",")
	tags := make([]string, 0, len(parts))
	for _, part := range parts {
		if tag := strings.TrimSpace(part); tag != "" {
			tags = append(tags, tag)
		}
	}

	return tags
}
