package impl

import (
	"context"
	"log/slog"

	deliverycontext "bazaar/internal/delivery/context"
	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	"bazaar/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// categoryService implements the CategoryUsecase interface.
type categoryService struct {
	categoryRepo repository.CategoryRepository
	logger       *slog.Logger
}

// CategoryServiceParams holds dependencies for categoryService, injected by Fx.
type CategoryServiceParams struct {
	fx.In

	CategoryRepo repository.CategoryRepository
	Logger       *slog.Logger
}

// NewCategoryService is the constructor for categoryService.
func NewCategoryService(params CategoryServiceParams) usecase.CategoryUsecase {
	return &categoryService{
		categoryRepo: params.CategoryRepo,
		logger:       params.Logger,
	}
}

func (srv *categoryService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetTree loads the flat category set and derives the forest. When a search
// term filtered out a parent, its matched children surface as roots.
func (srv *categoryService) GetTree(ctx context.Context, search string) ([]*entity.Category, error) {
	flat, err := srv.categoryRepo.List(ctx, search)
	if err != nil {
		srv.log(ctx).Error("Failed to list categories", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list categories")
	}

	return entity.BuildForest(flat), nil
}

// GetCategory returns a single flat category record.
func (srv *categoryService) GetCategory(ctx context.Context, id int64) (*entity.Category, error) {
	category, err := srv.categoryRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			return nil, domainerrors.ErrCategoryNotFound
		}

		return nil, errors.Wrap(err, "failed to find category")
	}

	return category, nil
}

// CreateCategory adds a category under the given parent, or at top level.
// A dangling parent id is accepted; the node simply renders as a root.
func (srv *categoryService) CreateCategory(ctx context.Context, input *usecase.CreateCategoryInput) (*entity.Category, error) {
	category := &entity.Category{
		Name:        input.Name,
		ParentID:    input.ParentID,
		Description: input.Description,
	}

	if err := srv.categoryRepo.Create(ctx, category); err != nil {
		srv.log(ctx).Error("Failed to create category", slog.String("name", input.Name), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create category")
	}

	srv.log(ctx).Info("Category created", slog.Int64("categoryID", category.ID), slog.String("name", category.Name))

	return category, nil
}

// UpdateCategory edits name, description and parent of a category.
func (srv *categoryService) UpdateCategory(ctx context.Context, input *usecase.UpdateCategoryInput) (*entity.Category, error) {
	category, err := srv.categoryRepo.FindByID(ctx, input.ID)
	if err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			return nil, domainerrors.ErrCategoryNotFound
		}

		return nil, errors.Wrap(err, "failed to find category for update")
	}

	category.Name = input.Name
	category.ParentID = input.ParentID
	category.Description = input.Description

	if err := srv.categoryRepo.Update(ctx, category); err != nil {
		srv.log(ctx).Error("Failed to update category", slog.Int64("categoryID", input.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to update category")
	}

	return category, nil
}

// DeleteCategory removes one category without touching its children; they
// keep the dangling reference and surface as roots on the next tree read.
func (srv *categoryService) DeleteCategory(ctx context.Context, id int64) error {
	if err := srv.categoryRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			return domainerrors.ErrCategoryNotFound
		}
		srv.log(ctx).Error("Failed to delete category", slog.Int64("categoryID", id), slog.Any("error", err))

		return errors.Wrap(err, "failed to delete category")
	}

	srv.log(ctx).Info("Category deleted", slog.Int64("categoryID", id))

	return nil
}
