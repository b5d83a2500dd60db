package postgres

import (
	"context"

	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	"bazaar/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const defaultProductPageSize = 10

// productRepository implements repository.ProductRepository.
type productRepository struct {
	db *gorm.DB
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepository{
		db: db,
	}
}

// ListBySeller retrieves one page of a seller's products, newest first,
// along with the total row count for the query.
func (repo *productRepository) ListBySeller(ctx context.Context, sellerID int64, query repository.ProductQuery) ([]*entity.Product, int64, error) {
	page := query.Page
	if page < 1 {
		page = 1
	}
	pageSize := query.PageSize
	if pageSize < 1 {
		pageSize = defaultProductPageSize
	}

	base := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("seller_id = ?", sellerID)
	if query.Search != "" {
		base = base.Where("name ILIKE ?", "%"+query.Search+"%")
	}
	if query.PublishedOnly {
		base = base.Where("is_published = ?", true)
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count products")
	}

	var productModels []*model.ProductModel
	if err := base.
		Order("created_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&productModels).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list products")
	}

	products := make([]*entity.Product, 0, len(productModels))
	for _, productM := range productModels {
		products = append(products, toProductDomain(productM))
	}

	return products, total, nil
}

// FindByID retrieves a single product by id.
func (repo *productRepository) FindByID(ctx context.Context, id int64) (*entity.Product, error) {
	var productM model.ProductModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&productM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product by ID")
	}

	return toProductDomain(&productM), nil
}

// Create persists a new product.
func (repo *productRepository) Create(ctx context.Context, product *entity.Product) error {
	productM := fromProductDomain(product)

	if err := repo.db.WithContext(ctx).Create(productM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrSellerNotFound.WrapMessage("invalid seller reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required product information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create product")
	}

	product.ID = productM.ID
	product.CreatedAt = productM.CreatedAt
	product.UpdatedAt = productM.UpdatedAt

	return nil
}

// Update modifies an existing product (whole-row, last write wins).
func (repo *productRepository) Update(ctx context.Context, product *entity.Product) error {
	productM := fromProductDomain(product)

	result := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("id = ?", productM.ID).
		Select("*").
		Omit("id", "seller_id", "created_at").
		Updates(productM)

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update product")
	}

	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

// UpdateStock sets the freely editable stock counter.
func (repo *productRepository) UpdateStock(ctx context.Context, id int64, countInStock int64) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("id = ?", id).
		Update("count_in_stock", countInStock)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update product stock")
	}

	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

// Delete removes a product.
func (repo *productRepository) Delete(ctx context.Context, id int64) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.ProductModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete product")
	}

	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toProductDomain(data *model.ProductModel) *entity.Product {
	if data == nil {
		return nil
	}

	return &entity.Product{
		ID:           data.ID,
		SellerID:     data.SellerID,
		Name:         data.Name,
		Slug:         data.Slug,
		Category:     data.Category,
		Brand:        data.Brand,
		Description:  data.Description,
		Price:        data.Price,
		ListPrice:    data.ListPrice,
		CountInStock: data.CountInStock,
		Images:       data.Images,
		Tags:         data.Tags,
		Colors:       data.Colors,
		Sizes:        data.Sizes,
		SizePrices:   data.SizePrices.Data(),
		IsPublished:  data.IsPublished,
		NumSales:     data.NumSales,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

func fromProductDomain(data *entity.Product) *model.ProductModel {
	if data == nil {
		return nil
	}

	return &model.ProductModel{
		ID:           data.ID,
		SellerID:     data.SellerID,
		Name:         data.Name,
		Slug:         data.Slug,
		Category:     data.Category,
		Brand:        data.Brand,
		Description:  data.Description,
		Price:        data.Price,
		ListPrice:    data.ListPrice,
		CountInStock: data.CountInStock,
		Images:       datatypes.NewJSONSlice(data.Images),
		Tags:         datatypes.NewJSONSlice(data.Tags),
		Colors:       datatypes.NewJSONSlice(data.Colors),
		Sizes:        datatypes.NewJSONSlice(data.Sizes),
		SizePrices:   datatypes.NewJSONType(data.SizePrices),
		IsPublished:  data.IsPublished,
		NumSales:     data.NumSales,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}
