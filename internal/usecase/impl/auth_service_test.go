package impl

import (
	"context"
	"testing"
	"time"

	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	mockRepo "bazaar/internal/mocks/repository"
	mockService "bazaar/internal/mocks/service"
	"bazaar/internal/usecase"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type authServiceFixture struct {
	identityProvider *mockService.MockIdentityProvider
	userRepo         *mockRepo.MockUserRepository
	accountRepo      *mockRepo.MockAccountRepository
	refreshTokenRepo *mockRepo.MockRefreshTokenRepository
	tokenService     *mockService.MockTokenService
	service          usecase.AuthUsecase
}

func createTestAuthService(t *testing.T) *authServiceFixture {
	fx := &authServiceFixture{
		identityProvider: mockService.NewMockIdentityProvider(t),
		userRepo:         mockRepo.NewMockUserRepository(t),
		accountRepo:      mockRepo.NewMockAccountRepository(t),
		refreshTokenRepo: mockRepo.NewMockRefreshTokenRepository(t),
		tokenService:     mockService.NewMockTokenService(t),
	}
	fx.service = NewAuthService(AuthServiceParams{
		IdentityProvider: fx.identityProvider,
		UserRepo:         fx.userRepo,
		AccountRepo:      fx.accountRepo,
		RefreshTokenRepo: fx.refreshTokenRepo,
		TokenService:     fx.tokenService,
		Config:           newTestConfig(),
		Logger:           newDiscardLogger(),
	})

	return fx
}

func TestAuthService_SignUp_Success(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	sellerID := int64(7)
	input := &usecase.SignUpInput{
		Name:     "Ada",
		Email:    "ada@example.com",
		Phone:    "0912345678",
		Password: "secret123",
		SellerID: &sellerID,
	}
	account := &entity.Account{
		ID:    uuid.New(),
		Email: input.Email,
		Metadata: entity.AccountMetadata{
			Name:     input.Name,
			Phone:    input.Phone,
			Role:     entity.RoleCustomer,
			SellerID: &sellerID,
		},
	}

	fx.identityProvider.EXPECT().
		SignUp(ctx, input.Email, input.Password, entity.AccountMetadata{
			Name:     input.Name,
			Phone:    input.Phone,
			Role:     entity.RoleCustomer,
			SellerID: &sellerID,
		}).
		Return(account, nil)

	output, err := fx.service.SignUp(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, account, output.Account)
}

func TestAuthService_Login_ProviderSuccess(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	account := &entity.Account{
		ID:    uuid.New(),
		Email: "ada@example.com",
		Metadata: entity.AccountMetadata{
			Name: "Ada",
			Role: entity.RoleCustomer,
		},
	}
	expectedSession := &entity.Session{
		UserID: account.ID.String(),
		Email:  account.Email,
		Name:   "Ada",
		Role:   entity.RoleCustomer,
	}

	fx.identityProvider.EXPECT().
		SignIn(ctx, "ada@example.com", "secret123").
		Return(account, nil)
	fx.tokenService.EXPECT().
		GenerateTokens(expectedSession).
		Return("access-token", "refresh-token", nil)
	fx.tokenService.EXPECT().HashToken("refresh-token").Return("refresh-hash")
	fx.tokenService.EXPECT().GetRefreshTokenDuration().Return(time.Hour)
	fx.refreshTokenRepo.EXPECT().
		CreateRefreshToken(ctx, mock.AnythingOfType("*entity.RefreshToken")).
		Run(func(ctx context.Context, token *entity.RefreshToken) {
			assert.Equal(t, account.ID.String(), token.UserID)
			assert.Equal(t, "refresh-hash", token.TokenHash)
		}).
		Return(nil)

	// No expectation on userRepo: the directory must not be consulted when
	// the identity provider accepts the credentials.
	output, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "ada@example.com", Password: "secret123"})

	require.NoError(t, err)
	assert.Equal(t, "access-token", output.AccessToken)
	assert.Equal(t, "refresh-token", output.RefreshToken)
	assert.Equal(t, expectedSession, output.Session)
}

func TestAuthService_Login_ProviderRoleDefaultsToCustomer(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	account := &entity.Account{ID: uuid.New(), Email: "bare@example.com"}

	fx.identityProvider.EXPECT().SignIn(ctx, "bare@example.com", "pw").Return(account, nil)
	fx.tokenService.EXPECT().
		GenerateTokens(mock.AnythingOfType("*entity.Session")).
		Run(func(session *entity.Session) {
			assert.Equal(t, entity.RoleCustomer, session.Role)
		}).
		Return("access-token", "refresh-token", nil)
	fx.tokenService.EXPECT().HashToken("refresh-token").Return("refresh-hash")
	fx.tokenService.EXPECT().GetRefreshTokenDuration().Return(time.Hour)
	fx.refreshTokenRepo.EXPECT().
		CreateRefreshToken(ctx, mock.AnythingOfType("*entity.RefreshToken")).
		Return(nil)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "bare@example.com", Password: "pw"})

	require.NoError(t, err)
	assert.Equal(t, entity.RoleCustomer, output.Session.Role)
}

func TestAuthService_Login_DirectoryFallback(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	sellerID := int64(5)
	user := &entity.User{
		ID:               42,
		Email:            "admin@example.com",
		Name:             "Seller Admin",
		Role:             entity.RoleAdmin,
		Password:         "plaintext",
		AdminForSellerID: &sellerID,
	}

	fx.identityProvider.EXPECT().
		SignIn(ctx, "admin@example.com", "plaintext").
		Return(nil, domainerrors.ErrInvalidCredentials)
	fx.userRepo.EXPECT().
		FindByCredentials(ctx, "admin@example.com", "plaintext").
		Return(user, nil)
	fx.tokenService.EXPECT().
		GenerateTokens(mock.AnythingOfType("*entity.Session")).
		Run(func(session *entity.Session) {
			assert.Equal(t, "42", session.UserID)
			assert.Equal(t, entity.RoleAdmin, session.Role)
			require.NotNil(t, session.AdminForSellerID)
			assert.Equal(t, sellerID, *session.AdminForSellerID)
		}).
		Return("access-token", "refresh-token", nil)
	fx.tokenService.EXPECT().HashToken("refresh-token").Return("refresh-hash")
	fx.tokenService.EXPECT().GetRefreshTokenDuration().Return(time.Hour)
	fx.refreshTokenRepo.EXPECT().
		CreateRefreshToken(ctx, mock.AnythingOfType("*entity.RefreshToken")).
		Return(nil)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "admin@example.com", Password: "plaintext"})

	require.NoError(t, err)
	assert.Equal(t, "42", output.Session.UserID)
}

func TestAuthService_Login_BothStoresReject_PrimaryErrorSurfaces(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.identityProvider.EXPECT().
		SignIn(ctx, "nobody@example.com", "wrong").
		Return(nil, domainerrors.ErrInvalidCredentials)
	fx.userRepo.EXPECT().
		FindByCredentials(ctx, "nobody@example.com", "wrong").
		Return(nil, repository.ErrUserNotFound)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "nobody@example.com", Password: "wrong"})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthService_Login_BlockedDirectoryUser(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	user := &entity.User{ID: 42, Email: "blocked@example.com", Role: entity.RoleAdmin, Blocked: true}

	fx.identityProvider.EXPECT().
		SignIn(ctx, "blocked@example.com", "pw").
		Return(nil, domainerrors.ErrInvalidCredentials)
	fx.userRepo.EXPECT().
		FindByCredentials(ctx, "blocked@example.com", "pw").
		Return(user, nil)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "blocked@example.com", Password: "pw"})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestAuthService_RefreshToken_DirectoryUser(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	user := &entity.User{ID: 42, Email: "admin@example.com", Role: entity.RoleAdmin}
	stored := &entity.RefreshToken{
		ID:        uuid.New(),
		UserID:    "42",
		TokenHash: "refresh-hash",
		ExpiresAt: time.Now().Add(time.Hour),
	}

	fx.tokenService.EXPECT().
		ValidateToken("refresh-token", "refresh-secret").
		Return(&jwt.Token{Valid: true}, nil)
	fx.tokenService.EXPECT().HashToken("refresh-token").Return("refresh-hash")
	fx.refreshTokenRepo.EXPECT().FindRefreshTokenByHash(ctx, "refresh-hash").Return(stored, nil)
	fx.userRepo.EXPECT().FindByID(ctx, int64(42)).Return(user, nil)
	fx.tokenService.EXPECT().
		GenerateTokens(mock.AnythingOfType("*entity.Session")).
		Return("new-access-token", "unused-refresh", nil)

	output, err := fx.service.RefreshToken(ctx, &usecase.RefreshTokenInput{RefreshToken: "refresh-token"})

	require.NoError(t, err)
	assert.Equal(t, "new-access-token", output.AccessToken)
}

func TestAuthService_RefreshToken_AccountUser(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	account := &entity.Account{
		ID:       uuid.New(),
		Email:    "ada@example.com",
		Metadata: entity.AccountMetadata{Name: "Ada", Role: entity.RoleCustomer},
	}
	stored := &entity.RefreshToken{
		ID:        uuid.New(),
		UserID:    account.ID.String(),
		TokenHash: "refresh-hash",
		ExpiresAt: time.Now().Add(time.Hour),
	}

	fx.tokenService.EXPECT().
		ValidateToken("refresh-token", "refresh-secret").
		Return(&jwt.Token{Valid: true}, nil)
	fx.tokenService.EXPECT().HashToken("refresh-token").Return("refresh-hash")
	fx.refreshTokenRepo.EXPECT().FindRefreshTokenByHash(ctx, "refresh-hash").Return(stored, nil)
	fx.accountRepo.EXPECT().FindByID(ctx, account.ID).Return(account, nil)
	fx.tokenService.EXPECT().
		GenerateTokens(mock.AnythingOfType("*entity.Session")).
		Return("new-access-token", "unused-refresh", nil)

	output, err := fx.service.RefreshToken(ctx, &usecase.RefreshTokenInput{RefreshToken: "refresh-token"})

	require.NoError(t, err)
	assert.Equal(t, "new-access-token", output.AccessToken)
}

func TestAuthService_RefreshToken_InvalidToken(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.tokenService.EXPECT().
		ValidateToken("garbage", "refresh-secret").
		Return(nil, errors.New("token is malformed"))

	output, err := fx.service.RefreshToken(ctx, &usecase.RefreshTokenInput{RefreshToken: "garbage"})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrRefreshTokenInvalid)
}

func TestAuthService_RefreshToken_StoredTokenExpired(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	stored := &entity.RefreshToken{
		ID:        uuid.New(),
		UserID:    "42",
		TokenHash: "refresh-hash",
		ExpiresAt: time.Now().Add(-time.Minute),
	}

	fx.tokenService.EXPECT().
		ValidateToken("refresh-token", "refresh-secret").
		Return(&jwt.Token{Valid: true}, nil)
	fx.tokenService.EXPECT().HashToken("refresh-token").Return("refresh-hash")
	fx.refreshTokenRepo.EXPECT().FindRefreshTokenByHash(ctx, "refresh-hash").Return(stored, nil)

	output, err := fx.service.RefreshToken(ctx, &usecase.RefreshTokenInput{RefreshToken: "refresh-token"})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrRefreshTokenInvalid)
}

func TestAuthService_RefreshToken_NotStored(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.tokenService.EXPECT().
		ValidateToken("refresh-token", "refresh-secret").
		Return(&jwt.Token{Valid: true}, nil)
	fx.tokenService.EXPECT().HashToken("refresh-token").Return("refresh-hash")
	fx.refreshTokenRepo.EXPECT().
		FindRefreshTokenByHash(ctx, "refresh-hash").
		Return(nil, repository.ErrRefreshTokenNotFound)

	output, err := fx.service.RefreshToken(ctx, &usecase.RefreshTokenInput{RefreshToken: "refresh-token"})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrRefreshTokenInvalid)
}

func TestAuthService_Logout_Success(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.tokenService.EXPECT().
		ValidateToken("refresh-token", "refresh-secret").
		Return(&jwt.Token{Valid: true}, nil)
	fx.tokenService.EXPECT().HashToken("refresh-token").Return("refresh-hash")
	fx.refreshTokenRepo.EXPECT().DeleteRefreshTokenByHash(ctx, "refresh-hash").Return(nil)

	err := fx.service.Logout(ctx, &usecase.LogoutInput{RefreshToken: "refresh-token"})

	require.NoError(t, err)
}

func TestAuthService_Logout_UnknownTokenIsIdempotent(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.tokenService.EXPECT().
		ValidateToken("refresh-token", "refresh-secret").
		Return(&jwt.Token{Valid: true}, nil)
	fx.tokenService.EXPECT().HashToken("refresh-token").Return("refresh-hash")
	fx.refreshTokenRepo.EXPECT().
		DeleteRefreshTokenByHash(ctx, "refresh-hash").
		Return(repository.ErrRefreshTokenNotFound)

	err := fx.service.Logout(ctx, &usecase.LogoutInput{RefreshToken: "refresh-token"})

	require.NoError(t, err)
}

func TestAuthService_LogoutAllDevices(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.refreshTokenRepo.EXPECT().DeleteRefreshTokensByUser(ctx, "42").Return(nil)

	err := fx.service.LogoutAllDevices(ctx, "42")

	require.NoError(t, err)
}
