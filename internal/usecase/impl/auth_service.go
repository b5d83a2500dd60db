// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	"bazaar/config"
	deliverycontext "bazaar/internal/delivery/context"
	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	"bazaar/internal/domain/service"
	"bazaar/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// authService implements the AuthUsecase interface. Login resolution tries
// the identity provider first and falls back to the legacy staff directory,
// normalizing either outcome into one session shape.
type authService struct {
	identityProvider service.IdentityProvider
	userRepo         repository.UserRepository
	accountRepo      repository.AccountRepository
	refreshTokenRepo repository.RefreshTokenRepository
	tokenService     service.TokenService
	refreshSecret    string
	logger           *slog.Logger
}

// AuthServiceParams holds dependencies for authService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	IdentityProvider service.IdentityProvider
	UserRepo         repository.UserRepository
	AccountRepo      repository.AccountRepository
	RefreshTokenRepo repository.RefreshTokenRepository
	TokenService     service.TokenService
	Config           *config.Config
	Logger           *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		identityProvider: params.IdentityProvider,
		userRepo:         params.UserRepo,
		accountRepo:      params.AccountRepo,
		refreshTokenRepo: params.RefreshTokenRepo,
		tokenService:     params.TokenService,
		refreshSecret:    params.Config.SecretKey.Refresh,
		logger:           params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// SignUp registers a customer through the identity provider. The password is
// hashed inside the provider; it never reaches a repository in plain text.
func (srv *authService) SignUp(ctx context.Context, input *usecase.SignUpInput) (*usecase.SignUpOutput, error) {
	srv.log(ctx).Info("Starting customer sign-up", slog.String("email", input.Email))

	metadata := entity.AccountMetadata{
		Name:     input.Name,
		Phone:    input.Phone,
		Role:     entity.RoleCustomer,
		SellerID: input.SellerID,
	}

	account, err := srv.identityProvider.SignUp(ctx, input.Email, input.Password, metadata)
	if err != nil {
		srv.log(ctx).Warn("Sign-up failed", slog.String("email", input.Email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to sign up customer")
	}

	srv.log(ctx).Debug("Customer signed up", slog.Any("accountID", account.ID))

	return &usecase.SignUpOutput{Account: account}, nil
}

// Login resolves credentials against both stores. The identity provider is
// authoritative: the directory lookup runs only after the provider rejected
// the credentials, and when both reject, the provider's error is the one the
// caller sees.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	srv.log(ctx).Debug("Starting login", slog.String("email", input.Email))

	session, err := srv.resolveLogin(ctx, input.Email, input.Password)
	if err != nil {
		srv.log(ctx).Warn("Login failed", slog.String("email", input.Email), slog.Any("error", err))

		return nil, err
	}

	accessToken, refreshTokenString, err := srv.tokenService.GenerateTokens(session)
	if err != nil {
		srv.log(ctx).Error("Failed to generate tokens", slog.String("email", input.Email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to generate tokens")
	}

	if err := srv.storeRefreshToken(ctx, session.UserID, refreshTokenString); err != nil {
		srv.log(ctx).Error("Failed to store refresh token", slog.String("email", input.Email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create refresh token during login")
	}

	srv.log(ctx).Debug("Login succeeded", slog.String("userID", session.UserID), slog.String("role", session.Role.String()))

	return &usecase.LoginOutput{
		AccessToken:  accessToken,
		RefreshToken: refreshTokenString,
		Session:      session,
	}, nil
}

// resolveLogin performs the two-store credential resolution and returns the
// normalized session.
func (srv *authService) resolveLogin(ctx context.Context, email, password string) (*entity.Session, error) {
	account, primaryErr := srv.identityProvider.SignIn(ctx, email, password)
	if primaryErr == nil {
		return sessionFromAccount(account), nil
	}

	user, fallbackErr := srv.userRepo.FindByCredentials(ctx, email, password)
	if fallbackErr != nil {
		if !errors.Is(fallbackErr, repository.ErrUserNotFound) {
			srv.log(ctx).Error("Directory lookup failed during login", slog.String("email", email), slog.Any("error", fallbackErr))
		}

		// Both stores rejected: the primary store's error is the one reported.
		return nil, errors.Wrap(primaryErr, "login failed")
	}

	if user.Blocked {
		return nil, domainerrors.ErrForbidden.WrapMessage("account is blocked")
	}

	return sessionFromUser(user), nil
}

// RefreshToken issues a new access token for a stored session. The refresh
// token itself remains unchanged.
func (srv *authService) RefreshToken(ctx context.Context, input *usecase.RefreshTokenInput) (*usecase.RefreshTokenOutput, error) {
	srv.log(ctx).Debug("Attempting to refresh access token")

	token, err := srv.tokenService.ValidateToken(input.RefreshToken, srv.refreshSecret)
	if err != nil || !token.Valid {
		return nil, domainerrors.ErrRefreshTokenInvalid.WrapMessage("invalid refresh token")
	}

	tokenHash := srv.tokenService.HashToken(input.RefreshToken)
	stored, err := srv.refreshTokenRepo.FindRefreshTokenByHash(ctx, tokenHash)
	if err != nil {
		if errors.Is(err, repository.ErrRefreshTokenNotFound) {
			return nil, domainerrors.ErrRefreshTokenInvalid.WrapMessage("refresh token not found")
		}

		return nil, errors.Wrap(err, "failed to find refresh token")
	}
	if time.Now().After(stored.ExpiresAt) {
		return nil, domainerrors.ErrRefreshTokenInvalid.WrapMessage("refresh token expired")
	}

	session, err := srv.loadSession(ctx, stored.UserID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to rebuild session for refresh")
	}

	accessToken, _, err := srv.tokenService.GenerateTokens(session)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate new access token")
	}

	return &usecase.RefreshTokenOutput{AccessToken: accessToken}, nil
}

// Logout deletes the stored session for the presented refresh token.
func (srv *authService) Logout(ctx context.Context, input *usecase.LogoutInput) error {
	srv.log(ctx).Info("Attempting to log out")

	if _, err := srv.tokenService.ValidateToken(input.RefreshToken, srv.refreshSecret); err != nil {
		// Even with an invalid token, proceed to delete the stored record.
		srv.log(ctx).Warn("Logout with invalid token", slog.Any("error", err))
	}

	tokenHash := srv.tokenService.HashToken(input.RefreshToken)
	if err := srv.refreshTokenRepo.DeleteRefreshTokenByHash(ctx, tokenHash); err != nil {
		if errors.Is(err, repository.ErrRefreshTokenNotFound) {
			return nil
		}
		srv.log(ctx).Error("Failed to delete refresh token", slog.Any("error", err))

		return errors.Wrap(err, "failed to delete refresh token")
	}

	return nil
}

// LogoutAllDevices deletes every stored session of the user.
func (srv *authService) LogoutAllDevices(ctx context.Context, userID string) error {
	srv.log(ctx).Info("Logging out all devices", slog.String("userID", userID))

	if err := srv.refreshTokenRepo.DeleteRefreshTokensByUser(ctx, userID); err != nil {
		srv.log(ctx).Error("Failed to delete refresh tokens", slog.String("userID", userID), slog.Any("error", err))

		return errors.Wrap(err, "failed to delete refresh tokens")
	}

	return nil
}

// loadSession rebuilds the session from whichever store owns the user id.
// Directory ids are numeric; identity-provider ids are UUIDs.
func (srv *authService) loadSession(ctx context.Context, userID string) (*entity.Session, error) {
	if numericID, err := strconv.ParseInt(userID, 10, 64); err == nil {
		user, err := srv.userRepo.FindByID(ctx, numericID)
		if err != nil {
			return nil, errors.Wrap(err, "failed to load directory user")
		}
		if user.Blocked {
			return nil, domainerrors.ErrForbidden.WrapMessage("account is blocked")
		}

		return sessionFromUser(user), nil
	}

	accountID, err := uuid.Parse(userID)
	if err != nil {
		return nil, errors.Wrap(err, "malformed user id")
	}

	account, err := srv.accountRepo.FindByID(ctx, accountID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load account")
	}

	return sessionFromAccount(account), nil
}

// storeRefreshToken persists the hash of a freshly minted refresh token.
func (srv *authService) storeRefreshToken(ctx context.Context, userID, refreshTokenString string) error {
	newRefreshToken := &entity.RefreshToken{
		UserID:    userID,
		TokenHash: srv.tokenService.HashToken(refreshTokenString),
		ExpiresAt: time.Now().Add(srv.tokenService.GetRefreshTokenDuration()),
	}

	if err := srv.refreshTokenRepo.CreateRefreshToken(ctx, newRefreshToken); err != nil {
		return errors.Wrap(err, "failed to store refresh token")
	}

	return nil
}

// sessionFromAccount normalizes an identity-provider account. An empty role
// in the metadata bag means customer.
func sessionFromAccount(account *entity.Account) *entity.Session {
	role := account.Metadata.Role
	if role == "" {
		role = entity.RoleCustomer
	}

	return &entity.Session{
		UserID:   account.ID.String(),
		Email:    account.Email,
		Name:     account.Metadata.Name,
		Role:     role,
		SellerID: account.Metadata.SellerID,
	}
}

// sessionFromUser normalizes a legacy directory user. The password never
// crosses this boundary.
func sessionFromUser(user *entity.User) *entity.Session {
	return &entity.Session{
		UserID:           strconv.FormatInt(user.ID, 10),
		Email:            user.Email,
		Name:             user.Name,
		Role:             user.Role,
		AdminForSellerID: user.AdminForSellerID,
	}
}
