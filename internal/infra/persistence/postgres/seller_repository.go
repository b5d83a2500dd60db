package postgres

import (
	"context"

	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	"bazaar/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// sellerRepository implements repository.SellerRepository.
type sellerRepository struct {
	db *gorm.DB
}

// NewSellerRepository is the constructor for sellerRepository.
func NewSellerRepository(db *gorm.DB) repository.SellerRepository {
	return &sellerRepository{
		db: db,
	}
}

// FindByID retrieves a single seller by id.
func (repo *sellerRepository) FindByID(ctx context.Context, id int64) (*entity.Seller, error) {
	var sellerM model.SellerModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&sellerM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSellerNotFound
		}

		return nil, errors.Wrap(err, "failed to find seller by ID")
	}

	return toSellerDomain(&sellerM), nil
}

// FindByEmail retrieves a single seller by email address.
func (repo *sellerRepository) FindByEmail(ctx context.Context, email string) (*entity.Seller, error) {
	var sellerM model.SellerModel

	if err := repo.db.WithContext(ctx).
		Where("email = ?", email).
		First(&sellerM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSellerNotFound
		}

		return nil, errors.Wrap(err, "failed to find seller by email")
	}

	return toSellerDomain(&sellerM), nil
}

// List retrieves sellers, optionally filtered by verification state.
func (repo *sellerRepository) List(ctx context.Context, verified *bool) ([]*entity.Seller, error) {
	var sellerModels []*model.SellerModel

	query := repo.db.WithContext(ctx).Order("created_at DESC")
	if verified != nil {
		query = query.Where("verified = ?", *verified)
	}

	if err := query.Find(&sellerModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list sellers")
	}

	sellers := make([]*entity.Seller, 0, len(sellerModels))
	for _, sellerM := range sellerModels {
		sellers = append(sellers, toSellerDomain(sellerM))
	}

	return sellers, nil
}

// Create persists a new seller registration.
func (repo *sellerRepository) Create(ctx context.Context, seller *entity.Seller) error {
	sellerM := fromSellerDomain(seller)

	if err := repo.db.WithContext(ctx).Create(sellerM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrSellerAlreadyRegistered
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required seller information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create seller")
	}

	seller.ID = sellerM.ID
	seller.CreatedAt = sellerM.CreatedAt
	seller.UpdatedAt = sellerM.UpdatedAt

	return nil
}

// Update modifies an existing seller (whole-row, last write wins).
func (repo *sellerRepository) Update(ctx context.Context, seller *entity.Seller) error {
	sellerM := fromSellerDomain(seller)

	result := repo.db.WithContext(ctx).
		Model(&model.SellerModel{}).
		Where("id = ?", sellerM.ID).
		Select("*").
		Omit("id", "created_at").
		Updates(sellerM)

	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return domainerrors.ErrSellerAlreadyRegistered
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update seller")
	}

	if result.RowsAffected == 0 {
		return repository.ErrSellerNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toSellerDomain(data *model.SellerModel) *entity.Seller {
	if data == nil {
		return nil
	}

	return &entity.Seller{
		ID:         data.ID,
		Name:       data.Name,
		GroupName:  data.GroupName,
		Email:      data.Email,
		Phone:      data.Phone,
		Verified:   data.Verified,
		Blocked:    data.Blocked,
		PriceRange: data.PriceRange,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}

func fromSellerDomain(data *entity.Seller) *model.SellerModel {
	if data == nil {
		return nil
	}

	return &model.SellerModel{
		ID:         data.ID,
		Name:       data.Name,
		GroupName:  data.GroupName,
		Email:      data.Email,
		Phone:      data.Phone,
		Verified:   data.Verified,
		Blocked:    data.Blocked,
		PriceRange: data.PriceRange,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}
