package impl

import (
	"context"
	"log/slog"

	deliverycontext "kolotebe/internal/delivery/context"
	"kolotebe/internal/domain/entity"
	domainerrors "kolotebe/internal/domain/errors"
	"kolotebe/internal/domain/repository"
	"kolotebe/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// profileService implements the ProfileUsecase interface.
type profileService struct {
	userRepo     repository.UserRepository
	balanceRepo  repository.BalanceRepository
	transferRepo repository.TransferRepository
	logger       *slog.Logger
}

// ProfileServiceParams holds dependencies for profileService, injected by Fx.
type ProfileServiceParams struct {
	fx.In

	UserRepo     repository.UserRepository
	BalanceRepo  repository.BalanceRepository
	TransferRepo repository.TransferRepository
	Logger       *slog.Logger
}

// NewProfileService is the constructor for profileService.
func NewProfileService(params ProfileServiceParams) usecase.ProfileUsecase {
	return &profileService{
		userRepo:     params.UserRepo,
		balanceRepo:  params.BalanceRepo,
		transferRepo: params.TransferRepo,
		logger:       params.Logger,
	}
}

func (srv *profileService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetProfile retrieves the caller's profile with balance and counts. A user
// who never added a book has no balance row yet; that reads as zero.
func (srv *profileService) GetProfile(ctx context.Context, userID uuid.UUID) (*usecase.ProfileOutput, error) {
	user, err := srv.findUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	balance := 0
	userBalance, err := srv.balanceRepo.FindByUser(ctx, userID)
	if err == nil {
		balance = userBalance.Balance
	} else if !errors.Is(err, repository.ErrBalanceNotFound) {
		return nil, errors.Wrap(err, "failed to load balance")
	}

	counts, err := srv.userRepo.CountProfileStats(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load profile counts")
	}

	return &usecase.ProfileOutput{
		User:           user,
		Balance:        balance,
		BookCopies:     counts.BookCopies,
		ActiveListings: counts.ActiveListings,
	}, nil
}

// UpdateProfile applies a partial profile update. Only non-nil fields replace
// the stored value.
func (srv *profileService) UpdateProfile(ctx context.Context, input *usecase.UpdateProfileInput) (*entity.User, error) {
	user, err := srv.findUser(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		user.Name = *input.Name
	}
	if input.Bio != nil {
		user.Bio = *input.Bio
	}
	if input.Location != nil {
		user.Location = *input.Location
	}
	if input.Phone != nil {
		// Replacing the phone number invalidates any earlier verification.
		if user.Phone != *input.Phone {
			user.PhoneVerified = false
		}
		user.Phone = *input.Phone
	}
	if input.Image != nil {
		user.Image = *input.Image
	}

	if err := srv.userRepo.Update(ctx, user); err != nil {
		srv.log(ctx).Warn("Failed to update profile", slog.Any("userID", input.UserID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to update profile")
	}

	srv.log(ctx).Debug("Profile updated", slog.Any("userID", input.UserID))

	return user, nil
}

// ListTransactions retrieves the caller's Kolocoin ledger, newest first.
func (srv *profileService) ListTransactions(ctx context.Context, userID uuid.UUID) ([]*entity.BalanceTransaction, error) {
	transactions, err := srv.balanceRepo.ListTransactions(ctx, userID)
	if err != nil {
		srv.log(ctx).Error("Failed to list transactions", slog.Any("userID", userID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list transactions")
	}

	return transactions, nil
}

// ListTransfers retrieves the caller's incoming and outgoing transfers.
func (srv *profileService) ListTransfers(ctx context.Context, userID uuid.UUID) (*usecase.TransfersOutput, error) {
	incoming, err := srv.transferRepo.FindIncoming(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list incoming transfers")
	}

	outgoing, err := srv.transferRepo.FindOutgoing(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list outgoing transfers")
	}

	return &usecase.TransfersOutput{
		Incoming: incoming,
		Outgoing: outgoing,
	}, nil
}

func (srv *profileService) findUser(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUserNotFound, "user lookup failed")
		}

		return nil, errors.Wrap(err, "failed to load user")
	}

	return user, nil
}
