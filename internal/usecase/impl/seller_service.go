package impl

import (
	"context"
	"crypto/rand"
	"log/slog"
	"math/big"
	"strings"

	deliverycontext "bazaar/internal/delivery/context"
	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	"bazaar/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const generatedPasswordLength = 8

// sellerService implements the SellerUsecase interface.
type sellerService struct {
	txManager  repository.TransactionManager
	sellerRepo repository.SellerRepository
	userRepo   repository.UserRepository
	logger     *slog.Logger
}

// SellerServiceParams holds dependencies for sellerService, injected by Fx.
type SellerServiceParams struct {
	fx.In

	TxManager  repository.TransactionManager
	SellerRepo repository.SellerRepository
	UserRepo   repository.UserRepository
	Logger     *slog.Logger
}

// NewSellerService is the constructor for sellerService.
func NewSellerService(params SellerServiceParams) usecase.SellerUsecase {
	return &sellerService{
		txManager:  params.TxManager,
		sellerRepo: params.SellerRepo,
		userRepo:   params.UserRepo,
		logger:     params.Logger,
	}
}

func (srv *sellerService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// RegisterSeller records a pending seller registration. No credentials are
// taken; login becomes possible only after owner verification provisions the
// admin user.
func (srv *sellerService) RegisterSeller(ctx context.Context, input *usecase.RegisterSellerInput) (*entity.Seller, error) {
	srv.log(ctx).Info("Registering seller", slog.String("email", input.Email))

	_, err := srv.sellerRepo.FindByEmail(ctx, input.Email)
	if err == nil {
		return nil, domainerrors.ErrSellerAlreadyRegistered
	}
	if !errors.Is(err, repository.ErrSellerNotFound) {
		return nil, errors.Wrap(err, "failed to check existing seller")
	}

	seller := &entity.Seller{
		Name:      input.Name,
		GroupName: input.GroupName,
		Email:     input.Email,
		Phone:     input.Phone,
	}

	if err := srv.sellerRepo.Create(ctx, seller); err != nil {
		srv.log(ctx).Error("Failed to create seller", slog.String("email", input.Email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create seller")
	}

	srv.log(ctx).Info("Seller registered", slog.Int64("sellerID", seller.ID))

	return seller, nil
}

// ListSellers returns sellers, optionally filtered by verification state.
func (srv *sellerService) ListSellers(ctx context.Context, session *entity.Session, verified *bool) ([]*entity.Seller, error) {
	if !session.IsOwner() {
		return nil, domainerrors.ErrForbidden.WrapMessage("owner only")
	}

	sellers, err := srv.sellerRepo.List(ctx, verified)
	if err != nil {
		srv.log(ctx).Error("Failed to list sellers", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list sellers")
	}

	return sellers, nil
}

// GetSeller returns one seller for the owner or the seller's own admin.
func (srv *sellerService) GetSeller(ctx context.Context, session *entity.Session, id int64) (*entity.Seller, error) {
	if !session.IsOwner() && !session.AdminOf(id) {
		return nil, domainerrors.ErrForbidden.WrapMessage("not an admin of this seller")
	}

	seller, err := srv.sellerRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrSellerNotFound) {
			return nil, domainerrors.ErrSellerNotFound
		}

		return nil, errors.Wrap(err, "failed to find seller")
	}

	return seller, nil
}

// VerifySeller marks a seller verified and provisions its admin directory
// user in one transaction. The generated password is returned once and never
// stored outside the directory row.
func (srv *sellerService) VerifySeller(ctx context.Context, session *entity.Session, sellerID int64) (*usecase.VerifySellerOutput, error) {
	if !session.IsOwner() {
		return nil, domainerrors.ErrForbidden.WrapMessage("owner only")
	}

	srv.log(ctx).Info("Verifying seller", slog.Int64("sellerID", sellerID))

	password, err := generatePassword(generatedPasswordLength)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate admin password")
	}

	var verifiedSeller *entity.Seller
	var adminUser *entity.User

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		sellerRepo := repoFactory.NewSellerRepository()
		userRepo := repoFactory.NewUserRepository()

		seller, err := sellerRepo.FindByID(ctx, sellerID)
		if err != nil {
			if errors.Is(err, repository.ErrSellerNotFound) {
				return domainerrors.ErrSellerNotFound
			}

			return errors.Wrap(err, "failed to find seller for verification")
		}
		if seller.Verified {
			return domainerrors.ErrConflict.WrapMessage("seller already verified")
		}

		seller.Verified = true
		if err := sellerRepo.Update(ctx, seller); err != nil {
			return errors.Wrap(err, "failed to mark seller verified")
		}

		sid := seller.ID
		admin := &entity.User{
			Email:            seller.Email,
			Name:             seller.Name,
			Role:             entity.RoleAdmin,
			Username:         usernameFromEmail(seller.Email),
			Password:         password,
			AdminForSellerID: &sid,
			Verified:         true,
			PriceRange:       seller.PriceRange,
		}
		if err := userRepo.Create(ctx, admin); err != nil {
			return errors.Wrap(err, "failed to provision admin user")
		}

		verifiedSeller = seller
		adminUser = admin

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to verify seller", slog.Int64("sellerID", sellerID), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Info("Seller verified", slog.Int64("sellerID", sellerID), slog.Int64("adminID", adminUser.ID))

	return &usecase.VerifySellerOutput{
		Seller:   verifiedSeller,
		Admin:    adminUser,
		Password: password,
	}, nil
}

// UpdateSellerControls applies the owner's block flag and price range to the
// seller and, when one exists, its admin user, atomically.
func (srv *sellerService) UpdateSellerControls(ctx context.Context, session *entity.Session, input *usecase.UpdateSellerControlsInput) (*entity.Seller, error) {
	if !session.IsOwner() {
		return nil, domainerrors.ErrForbidden.WrapMessage("owner only")
	}

	var updated *entity.Seller

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		sellerRepo := repoFactory.NewSellerRepository()
		userRepo := repoFactory.NewUserRepository()

		seller, err := sellerRepo.FindByID(ctx, input.SellerID)
		if err != nil {
			if errors.Is(err, repository.ErrSellerNotFound) {
				return domainerrors.ErrSellerNotFound
			}

			return errors.Wrap(err, "failed to find seller")
		}

		if input.Blocked != nil {
			seller.Blocked = *input.Blocked
		}
		if input.PriceRange != nil {
			seller.PriceRange = input.PriceRange
		}
		if err := sellerRepo.Update(ctx, seller); err != nil {
			return errors.Wrap(err, "failed to update seller")
		}

		admin, err := userRepo.FindAdminForSeller(ctx, seller.ID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				// Unverified sellers have no admin user yet.
				updated = seller

				return nil
			}

			return errors.Wrap(err, "failed to find seller admin")
		}

		if input.Blocked != nil {
			admin.Blocked = *input.Blocked
		}
		if input.PriceRange != nil {
			admin.PriceRange = input.PriceRange
		}
		if err := userRepo.Update(ctx, admin); err != nil {
			return errors.Wrap(err, "failed to update seller admin")
		}

		updated = seller

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to update seller controls", slog.Int64("sellerID", input.SellerID), slog.Any("error", err))

		return nil, err
	}

	return updated, nil
}

// UpdateAdminCredentials replaces the provisioned username and password of a
// seller's admin user.
func (srv *sellerService) UpdateAdminCredentials(ctx context.Context, session *entity.Session, input *usecase.UpdateAdminCredentialsInput) (*entity.User, error) {
	if !session.IsOwner() {
		return nil, domainerrors.ErrForbidden.WrapMessage("owner only")
	}

	admin, err := srv.userRepo.FindAdminForSeller(ctx, input.SellerID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			// Unverified sellers have no admin user to re-credential.
			return nil, domainerrors.ErrUserNotFound.WrapMessage("seller has no admin user")
		}

		return nil, errors.Wrap(err, "failed to find seller admin")
	}

	admin.Username = input.Username
	admin.Password = input.Password
	if err := srv.userRepo.Update(ctx, admin); err != nil {
		srv.log(ctx).Error("Failed to update admin credentials", slog.Int64("sellerID", input.SellerID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to update admin credentials")
	}

	srv.log(ctx).Info("Admin credentials updated", slog.Int64("sellerID", input.SellerID), slog.Int64("adminID", admin.ID))

	return admin, nil
}

// usernameFromEmail derives the provisioned login name from the local part of
// the seller's email address.
func usernameFromEmail(email string) string {
	local, _, found := strings.Cut(email, "@")
	if !found || local == "" {
		return email
	}

	return local
}

const passwordAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// generatePassword returns a random alphanumeric password.
func generatePassword(length int) (string, error) {
	var b strings.Builder
	b.Grow(length)
	for range length {
		idx, err := rand.Int(rand.Reader, big.NewInt(int64(len(passwordAlphabet))))
		if err != nil {
			return "", err
		}
		b.WriteByte(passwordAlphabet[idx.Int64()])
	}

	return b.String(), nil
}
