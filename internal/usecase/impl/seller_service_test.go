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

type sellerServiceFixture struct {
	txManager  *mockRepo.MockTransactionManager
	sellerRepo *mockRepo.MockSellerRepository
	userRepo   *mockRepo.MockUserRepository
	service    usecase.SellerUsecase
}

func createTestSellerService(t *testing.T) *sellerServiceFixture {
	fx := &sellerServiceFixture{
		txManager:  mockRepo.NewMockTransactionManager(t),
		sellerRepo: mockRepo.NewMockSellerRepository(t),
		userRepo:   mockRepo.NewMockUserRepository(t),
	}
	fx.service = NewSellerService(SellerServiceParams{
		TxManager:  fx.txManager,
		SellerRepo: fx.sellerRepo,
		UserRepo:   fx.userRepo,
		Logger:     newDiscardLogger(),
	})

	return fx
}

func TestSellerService_RegisterSeller_Success(t *testing.T) {
	fx := createTestSellerService(t)
	ctx := context.Background()

	input := &usecase.RegisterSellerInput{
		Name:      "Fresh Foods",
		GroupName: "Fresh Foods Group",
		Email:     "contact@freshfoods.example.com",
		Phone:     "+886912345678",
	}

	fx.sellerRepo.EXPECT().
		FindByEmail(ctx, input.Email).
		Return(nil, repository.ErrSellerNotFound)
	fx.sellerRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Seller")).
		Run(func(ctx context.Context, seller *entity.Seller) {
			seller.ID = 7
			assert.False(t, seller.Verified)
		}).
		Return(nil)

	seller, err := fx.service.RegisterSeller(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, int64(7), seller.ID)
	assert.Equal(t, input.Email, seller.Email)
	assert.False(t, seller.Verified)
}

func TestSellerService_RegisterSeller_DuplicateEmail(t *testing.T) {
	fx := createTestSellerService(t)
	ctx := context.Background()

	fx.sellerRepo.EXPECT().
		FindByEmail(ctx, "contact@freshfoods.example.com").
		Return(&entity.Seller{ID: 7}, nil)

	seller, err := fx.service.RegisterSeller(ctx, &usecase.RegisterSellerInput{
		Name:  "Fresh Foods",
		Email: "contact@freshfoods.example.com",
	})

	require.Error(t, err)
	assert.Nil(t, seller)
	assert.ErrorIs(t, err, domainerrors.ErrSellerAlreadyRegistered)
}

func TestSellerService_ListSellers_OwnerOnly(t *testing.T) {
	fx := createTestSellerService(t)
	ctx := context.Background()

	sellers, err := fx.service.ListSellers(ctx, adminSession(7), nil)

	require.Error(t, err)
	assert.Nil(t, sellers)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestSellerService_ListSellers_VerifiedFilter(t *testing.T) {
	fx := createTestSellerService(t)
	ctx := context.Background()

	verified := true
	expected := []*entity.Seller{{ID: 7, Verified: true}}

	fx.sellerRepo.EXPECT().List(ctx, &verified).Return(expected, nil)

	sellers, err := fx.service.ListSellers(ctx, ownerSession(), &verified)

	require.NoError(t, err)
	assert.Equal(t, expected, sellers)
}

func TestSellerService_GetSeller_AdminOfOtherSeller(t *testing.T) {
	fx := createTestSellerService(t)
	ctx := context.Background()

	seller, err := fx.service.GetSeller(ctx, adminSession(8), 7)

	require.Error(t, err)
	assert.Nil(t, seller)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestSellerService_VerifySeller_ProvisionsAdmin(t *testing.T) {
	fx := createTestSellerService(t)
	ctx := context.Background()

	priceRange := int64(500)
	seller := &entity.Seller{
		ID:         7,
		Name:       "Fresh Foods",
		Email:      "contact@freshfoods.example.com",
		PriceRange: &priceRange,
	}

	var provisioned *entity.User

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			txSellerRepo := mockRepo.NewMockSellerRepository(t)
			txUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().NewSellerRepository().Return(txSellerRepo)
			mockFactory.EXPECT().NewUserRepository().Return(txUserRepo)

			txSellerRepo.EXPECT().FindByID(ctx, int64(7)).Return(seller, nil)
			txSellerRepo.EXPECT().
				Update(ctx, mock.AnythingOfType("*entity.Seller")).
				Run(func(ctx context.Context, updated *entity.Seller) {
					assert.True(t, updated.Verified)
				}).
				Return(nil)
			txUserRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.User")).
				Run(func(ctx context.Context, user *entity.User) {
					user.ID = 42
					provisioned = user
				}).
				Return(nil)

			require.NoError(t, fn(mockFactory))
		}).
		Return(nil)

	output, err := fx.service.VerifySeller(ctx, ownerSession(), 7)

	require.NoError(t, err)
	require.NotNil(t, provisioned)
	assert.True(t, output.Seller.Verified)
	assert.Equal(t, provisioned, output.Admin)
	assert.Equal(t, "contact", provisioned.Username)
	assert.Equal(t, seller.Email, provisioned.Email)
	assert.Equal(t, entity.RoleAdmin, provisioned.Role)
	require.NotNil(t, provisioned.AdminForSellerID)
	assert.Equal(t, int64(7), *provisioned.AdminForSellerID)
	require.NotNil(t, provisioned.PriceRange)
	assert.Equal(t, priceRange, *provisioned.PriceRange)
	assert.Len(t, output.Password, generatedPasswordLength)
	assert.Equal(t, output.Password, provisioned.Password)
}

func TestSellerService_VerifySeller_AlreadyVerified(t *testing.T) {
	fx := createTestSellerService(t)
	ctx := context.Background()

	seller := &entity.Seller{ID: 7, Email: "contact@freshfoods.example.com", Verified: true}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			txSellerRepo := mockRepo.NewMockSellerRepository(t)
			txUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().NewSellerRepository().Return(txSellerRepo)
			mockFactory.EXPECT().NewUserRepository().Return(txUserRepo)

			txSellerRepo.EXPECT().FindByID(ctx, int64(7)).Return(seller, nil)

			return fn(mockFactory)
		})

	output, err := fx.service.VerifySeller(ctx, ownerSession(), 7)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrConflict)
}

func TestSellerService_VerifySeller_OwnerOnly(t *testing.T) {
	fx := createTestSellerService(t)
	ctx := context.Background()

	output, err := fx.service.VerifySeller(ctx, adminSession(7), 7)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestSellerService_UpdateSellerControls_PropagatesToAdmin(t *testing.T) {
	fx := createTestSellerService(t)
	ctx := context.Background()

	blocked := true
	priceRange := int64(300)
	sellerID := int64(7)
	seller := &entity.Seller{ID: sellerID, Verified: true}
	admin := &entity.User{ID: 42, Role: entity.RoleAdmin, AdminForSellerID: &sellerID}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			txSellerRepo := mockRepo.NewMockSellerRepository(t)
			txUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().NewSellerRepository().Return(txSellerRepo)
			mockFactory.EXPECT().NewUserRepository().Return(txUserRepo)

			txSellerRepo.EXPECT().FindByID(ctx, sellerID).Return(seller, nil)
			txSellerRepo.EXPECT().
				Update(ctx, mock.AnythingOfType("*entity.Seller")).
				Run(func(ctx context.Context, updated *entity.Seller) {
					assert.True(t, updated.Blocked)
					require.NotNil(t, updated.PriceRange)
					assert.Equal(t, priceRange, *updated.PriceRange)
				}).
				Return(nil)
			txUserRepo.EXPECT().FindAdminForSeller(ctx, sellerID).Return(admin, nil)
			txUserRepo.EXPECT().
				Update(ctx, mock.AnythingOfType("*entity.User")).
				Run(func(ctx context.Context, updated *entity.User) {
					assert.True(t, updated.Blocked)
					require.NotNil(t, updated.PriceRange)
					assert.Equal(t, priceRange, *updated.PriceRange)
				}).
				Return(nil)

			return fn(mockFactory)
		})

	updated, err := fx.service.UpdateSellerControls(ctx, ownerSession(), &usecase.UpdateSellerControlsInput{
		SellerID:   sellerID,
		Blocked:    &blocked,
		PriceRange: &priceRange,
	})

	require.NoError(t, err)
	assert.True(t, updated.Blocked)
}

func TestSellerService_UpdateSellerControls_UnverifiedSellerHasNoAdmin(t *testing.T) {
	fx := createTestSellerService(t)
	ctx := context.Background()

	blocked := true
	sellerID := int64(7)
	seller := &entity.Seller{ID: sellerID}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			txSellerRepo := mockRepo.NewMockSellerRepository(t)
			txUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().NewSellerRepository().Return(txSellerRepo)
			mockFactory.EXPECT().NewUserRepository().Return(txUserRepo)

			txSellerRepo.EXPECT().FindByID(ctx, sellerID).Return(seller, nil)
			txSellerRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.Seller")).Return(nil)
			txUserRepo.EXPECT().FindAdminForSeller(ctx, sellerID).Return(nil, repository.ErrUserNotFound)

			return fn(mockFactory)
		})

	updated, err := fx.service.UpdateSellerControls(ctx, ownerSession(), &usecase.UpdateSellerControlsInput{
		SellerID: sellerID,
		Blocked:  &blocked,
	})

	require.NoError(t, err)
	assert.True(t, updated.Blocked)
}

func TestSellerService_UpdateAdminCredentials_Success(t *testing.T) {
	fx := createTestSellerService(t)
	ctx := context.Background()

	sellerID := int64(7)
	admin := &entity.User{
		ID:               42,
		Role:             entity.RoleAdmin,
		Username:         "contact",
		Password:         "old-password",
		AdminForSellerID: &sellerID,
	}

	fx.userRepo.EXPECT().
		FindAdminForSeller(ctx, sellerID).
		Return(admin, nil)
	fx.userRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(ctx context.Context, user *entity.User) {
			assert.Equal(t, "freshfoods", user.Username)
			assert.Equal(t, "new-password", user.Password)
			assert.Equal(t, int64(42), user.ID)
		}).
		Return(nil)

	updated, err := fx.service.UpdateAdminCredentials(ctx, ownerSession(), &usecase.UpdateAdminCredentialsInput{
		SellerID: sellerID,
		Username: "freshfoods",
		Password: "new-password",
	})

	require.NoError(t, err)
	assert.Equal(t, "freshfoods", updated.Username)
	assert.Equal(t, "new-password", updated.Password)
}

func TestSellerService_UpdateAdminCredentials_OwnerOnly(t *testing.T) {
	fx := createTestSellerService(t)
	ctx := context.Background()

	_, err := fx.service.UpdateAdminCredentials(ctx, adminSession(7), &usecase.UpdateAdminCredentialsInput{
		SellerID: 7,
		Username: "freshfoods",
		Password: "new-password",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestSellerService_UpdateAdminCredentials_UnverifiedSellerHasNoAdmin(t *testing.T) {
	fx := createTestSellerService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().
		FindAdminForSeller(ctx, int64(9)).
		Return(nil, repository.ErrUserNotFound)

	_, err := fx.service.UpdateAdminCredentials(ctx, ownerSession(), &usecase.UpdateAdminCredentialsInput{
		SellerID: 9,
		Username: "freshfoods",
		Password: "new-password",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}
