package impl

import (
	"context"
	"testing"

	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	mockRepo "bazaar/internal/mocks/repository"
	"bazaar/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type categoryServiceFixture struct {
	categoryRepo *mockRepo.MockCategoryRepository
	service      usecase.CategoryUsecase
}

func createTestCategoryService(t *testing.T) *categoryServiceFixture {
	fx := &categoryServiceFixture{
		categoryRepo: mockRepo.NewMockCategoryRepository(t),
	}
	fx.service = NewCategoryService(CategoryServiceParams{
		CategoryRepo: fx.categoryRepo,
		Logger:       newDiscardLogger(),
	})

	return fx
}

func TestCategoryService_GetTree_BuildsForest(t *testing.T) {
	fx := createTestCategoryService(t)
	ctx := context.Background()

	rootID := int64(1)
	flat := []*entity.Category{
		{ID: 1, Name: "Clothing"},
		{ID: 2, Name: "Shirts", ParentID: &rootID},
		{ID: 3, Name: "Food"},
	}

	fx.categoryRepo.EXPECT().List(ctx, "").Return(flat, nil)

	forest, err := fx.service.GetTree(ctx, "")

	require.NoError(t, err)
	require.Len(t, forest, 2)
	assert.Equal(t, "Clothing", forest[0].Name)
	require.Len(t, forest[0].Children, 1)
	assert.Equal(t, "Shirts", forest[0].Children[0].Name)
	assert.Equal(t, "Food", forest[1].Name)
}

func TestCategoryService_GetTree_DanglingParentBecomesRoot(t *testing.T) {
	fx := createTestCategoryService(t)
	ctx := context.Background()

	missingParent := int64(99)
	flat := []*entity.Category{
		{ID: 2, Name: "Shirts", ParentID: &missingParent},
	}

	fx.categoryRepo.EXPECT().List(ctx, "shirt").Return(flat, nil)

	forest, err := fx.service.GetTree(ctx, "shirt")

	require.NoError(t, err)
	require.Len(t, forest, 1)
	assert.Equal(t, "Shirts", forest[0].Name)
}

func TestCategoryService_CreateCategory(t *testing.T) {
	fx := createTestCategoryService(t)
	ctx := context.Background()

	parentID := int64(1)

	fx.categoryRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Category")).
		Run(func(ctx context.Context, category *entity.Category) {
			category.ID = 2
		}).
		Return(nil)

	category, err := fx.service.CreateCategory(ctx, &usecase.CreateCategoryInput{
		Name:     "Shirts",
		ParentID: &parentID,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(2), category.ID)
	require.NotNil(t, category.ParentID)
	assert.Equal(t, parentID, *category.ParentID)
}

func TestCategoryService_UpdateCategory_NotFound(t *testing.T) {
	fx := createTestCategoryService(t)
	ctx := context.Background()

	fx.categoryRepo.EXPECT().FindByID(ctx, int64(99)).Return(nil, repository.ErrCategoryNotFound)

	category, err := fx.service.UpdateCategory(ctx, &usecase.UpdateCategoryInput{ID: 99, Name: "Shoes"})

	require.Error(t, err)
	assert.Nil(t, category)
	assert.ErrorIs(t, err, domainerrors.ErrCategoryNotFound)
}

func TestCategoryService_UpdateCategory_Success(t *testing.T) {
	fx := createTestCategoryService(t)
	ctx := context.Background()

	existing := &entity.Category{ID: 2, Name: "Shirts"}

	fx.categoryRepo.EXPECT().FindByID(ctx, int64(2)).Return(existing, nil)
	fx.categoryRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Category")).
		Run(func(ctx context.Context, category *entity.Category) {
			assert.Equal(t, "Shoes", category.Name)
			assert.Nil(t, category.ParentID)
		}).
		Return(nil)

	category, err := fx.service.UpdateCategory(ctx, &usecase.UpdateCategoryInput{ID: 2, Name: "Shoes"})

	require.NoError(t, err)
	assert.Equal(t, "Shoes", category.Name)
}

func TestCategoryService_DeleteCategory_NotFound(t *testing.T) {
	fx := createTestCategoryService(t)
	ctx := context.Background()

	fx.categoryRepo.EXPECT().Delete(ctx, int64(99)).Return(repository.ErrCategoryNotFound)

	err := fx.service.DeleteCategory(ctx, 99)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrCategoryNotFound)
}
