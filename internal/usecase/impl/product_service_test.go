package impl

import (
	"context"
	"testing"
	"time"

	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	mockRepo "bazaar/internal/mocks/repository"
	"bazaar/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type productServiceFixture struct {
	productRepo *mockRepo.MockProductRepository
	service     usecase.ProductUsecase
}

func createTestProductService(t *testing.T) *productServiceFixture {
	fx := &productServiceFixture{
		productRepo: mockRepo.NewMockProductRepository(t),
	}
	fx.service = NewProductService(ProductServiceParams{
		ProductRepo: fx.productRepo,
		Logger:      newDiscardLogger(),
	})

	return fx
}

func TestGenerateSlug(t *testing.T) {
	cases := []struct {
		name     string
		input    string
		expected string
	}{
		{"simple", "Wool Sweater", "wool-sweater"},
		{"mixed case and symbols", "Ultra!! Comfort's  Hoodie", "ultra-comfort-s-hoodie"},
		{"leading and trailing junk", "  --Premium Tea--  ", "premium-tea"},
		{"digits kept", "Size 42 Boots", "size-42-boots"},
		{"all symbols", "!!!", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, generateSlug(tc.input))
		})
	}
}

func TestSplitTags(t *testing.T) {
	assert.Equal(t, []string{"new", "sale", "winter"}, splitTags("new, sale ,winter"))
	assert.Empty(t, splitTags(" , ,"))
	assert.Empty(t, splitTags(""))
}

func TestProductService_ListProducts_Paging(t *testing.T) {
	fx := createTestProductService(t)
	ctx := context.Background()

	products := []*entity.Product{{ID: 1, SellerID: 7}, {ID: 2, SellerID: 7}}

	fx.productRepo.EXPECT().
		ListBySeller(ctx, int64(7), repository.ProductQuery{
			Search:   "tea",
			Page:     2,
			PageSize: productPageSize,
		}).
		Return(products, int64(25), nil)

	output, err := fx.service.ListProducts(ctx, adminSession(7), &usecase.ListProductsInput{
		SellerID: 7,
		Search:   "tea",
		Page:     2,
	})

	require.NoError(t, err)
	assert.Equal(t, products, output.Products)
	assert.Equal(t, int64(25), output.Total)
	assert.Equal(t, 2, output.Page)
	assert.Equal(t, productPageSize, output.PageSize)
	assert.Equal(t, 3, output.TotalPages)
}

func TestProductService_ListStorefront_PublishedOnlyForced(t *testing.T) {
	fx := createTestProductService(t)
	ctx := context.Background()

	products := []*entity.Product{{ID: 3, SellerID: 7, IsPublished: true}}

	fx.productRepo.EXPECT().
		ListBySeller(ctx, int64(7), repository.ProductQuery{
			Page:          1,
			PageSize:      productPageSize,
			PublishedOnly: true,
		}).
		Return(products, int64(1), nil)

	output, err := fx.service.ListStorefront(ctx, 7, 1, "")

	require.NoError(t, err)
	assert.Equal(t, products, output.Products)
	assert.Equal(t, 1, output.TotalPages)
}

func TestProductService_ListProducts_ForeignAdminForbidden(t *testing.T) {
	fx := createTestProductService(t)
	ctx := context.Background()

	output, err := fx.service.ListProducts(ctx, adminSession(8), &usecase.ListProductsInput{SellerID: 7})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestProductService_CreateProduct_Success(t *testing.T) {
	fx := createTestProductService(t)
	ctx := context.Background()

	input := &usecase.CreateProductInput{
		SellerID:    7,
		Name:        "Green Tea 100g",
		Category:    "Tea",
		Price:       12.5,
		Images:      []string{"https://cdn.example.com/a.png"},
		Tags:        "new, organic",
		IsPublished: true,
	}

	fx.productRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Product")).
		Run(func(ctx context.Context, product *entity.Product) {
			product.ID = 11
			assert.Equal(t, "green-tea-100g", product.Slug)
			assert.Equal(t, []string{"new", "organic"}, product.Tags)
		}).
		Return(nil)

	product, err := fx.service.CreateProduct(ctx, adminSession(7), input)

	require.NoError(t, err)
	assert.Equal(t, int64(11), product.ID)
	assert.Equal(t, int64(7), product.SellerID)
}

func TestProductService_CreateProduct_TooManyImages(t *testing.T) {
	fx := createTestProductService(t)
	ctx := context.Background()

	input := &usecase.CreateProductInput{
		SellerID: 7,
		Name:     "Green Tea",
		Images:   []string{"a", "b", "c", "d"},
	}

	product, err := fx.service.CreateProduct(ctx, ownerSession(), input)

	require.Error(t, err)
	assert.Nil(t, product)
	assert.ErrorIs(t, err, domainerrors.ErrTooManyImages)
}

func TestProductService_CreateProduct_CustomerForbidden(t *testing.T) {
	fx := createTestProductService(t)
	ctx := context.Background()

	product, err := fx.service.CreateProduct(ctx, customerSession(), &usecase.CreateProductInput{SellerID: 7})

	require.Error(t, err)
	assert.Nil(t, product)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestProductService_UpdateProduct_PreservesImmutableFields(t *testing.T) {
	fx := createTestProductService(t)
	ctx := context.Background()

	createdAt := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	existing := &entity.Product{
		ID:        11,
		SellerID:  7,
		Name:      "Green Tea 100g",
		NumSales:  5,
		CreatedAt: createdAt,
	}

	fx.productRepo.EXPECT().FindByID(ctx, int64(11)).Return(existing, nil)
	fx.productRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Product")).
		Run(func(ctx context.Context, product *entity.Product) {
			assert.Equal(t, int64(7), product.SellerID)
			assert.Equal(t, int64(5), product.NumSales)
			assert.Equal(t, createdAt, product.CreatedAt)
			assert.Equal(t, "black-tea-100g", product.Slug)
		}).
		Return(nil)

	product, err := fx.service.UpdateProduct(ctx, adminSession(7), &usecase.UpdateProductInput{
		ID:   11,
		Name: "Black Tea 100g",
	})

	require.NoError(t, err)
	assert.Equal(t, "Black Tea 100g", product.Name)
}

func TestProductService_UpdateStock(t *testing.T) {
	fx := createTestProductService(t)
	ctx := context.Background()

	existing := &entity.Product{ID: 11, SellerID: 7}

	fx.productRepo.EXPECT().FindByID(ctx, int64(11)).Return(existing, nil)
	fx.productRepo.EXPECT().UpdateStock(ctx, int64(11), int64(30)).Return(nil)

	err := fx.service.UpdateStock(ctx, adminSession(7), 11, 30)

	require.NoError(t, err)
}

func TestProductService_SetPublished(t *testing.T) {
	fx := createTestProductService(t)
	ctx := context.Background()

	existing := &entity.Product{ID: 11, SellerID: 7}

	fx.productRepo.EXPECT().FindByID(ctx, int64(11)).Return(existing, nil)
	fx.productRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Product")).
		Run(func(ctx context.Context, product *entity.Product) {
			assert.True(t, product.IsPublished)
		}).
		Return(nil)

	err := fx.service.SetPublished(ctx, ownerSession(), 11, true)

	require.NoError(t, err)
}

func TestProductService_DeleteProduct_NotFound(t *testing.T) {
	fx := createTestProductService(t)
	ctx := context.Background()

	fx.productRepo.EXPECT().FindByID(ctx, int64(99)).Return(nil, repository.ErrProductNotFound)

	err := fx.service.DeleteProduct(ctx, ownerSession(), 99)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}

func TestProductService_GetProduct_ForeignAdminForbidden(t *testing.T) {
	fx := createTestProductService(t)
	ctx := context.Background()

	existing := &entity.Product{ID: 11, SellerID: 7}

	fx.productRepo.EXPECT().FindByID(ctx, int64(11)).Return(existing, nil)

	product, err := fx.service.GetProduct(ctx, adminSession(8), 11)

	require.Error(t, err)
	assert.Nil(t, product)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}
