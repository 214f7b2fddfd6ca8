package impl

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	deliverycontext "spotter/internal/delivery/context"
	"spotter/internal/domain/entity"
	domainerrors "spotter/internal/domain/errors"
	"spotter/internal/domain/repository"
	"spotter/internal/domain/service"
	"spotter/internal/usecase"
)

// userService implements the UserUsecase interface.
type userService struct {
	txManager repository.TransactionManager
	uploader  service.Uploader
	logger    *slog.Logger
}

// NewUserService is the constructor for userService.
func NewUserService(
	txManager repository.TransactionManager,
	uploader service.Uploader,
	logger *slog.Logger,
) usecase.UserUsecase {
	return &userService{
		txManager: txManager,
		uploader:  uploader,
		logger:    logger,
	}
}

func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Me returns the user's profile.
func (srv *userService) Me(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	var user *entity.User

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.UserRepo().FindByID(ctx, userID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrUserNotFound, "user not found")
			}

			return errors.Wrap(err, "failed to find user")
		}
		user = found

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to load profile", slog.Any("error", err), slog.Any("user_id", userID))

		return nil, err
	}

	return user, nil
}

// UpdateImage stores a new profile image and points the user at it.
func (srv *userService) UpdateImage(ctx context.Context, userID uuid.UUID, contentType string, data []byte) (*entity.User, error) {
	if len(data) == 0 {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "empty image upload")
	}

	key := fmt.Sprintf("avatars/%s/%s", userID, uuid.New().String())
	imageURL, err := srv.uploader.Upload(ctx, key, contentType, data)
	if err != nil {
		srv.log(ctx).Error("Image upload failed", slog.Any("error", err), slog.Any("user_id", userID))

		return nil, errors.Wrap(err, "failed to upload image")
	}

	var user *entity.User

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		found, err := userRepo.FindByID(ctx, userID)
		if err != nil {
			return errors.Wrap(err, "failed to find user")
		}

		found.ImageURL = imageURL
		if err := userRepo.Update(ctx, found); err != nil {
			return errors.Wrap(err, "failed to update user")
		}
		user = found

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to update profile image", slog.Any("error", err), slog.Any("user_id", userID))

		return nil, err
	}
	srv.log(ctx).Info("Profile image updated", slog.Any("user_id", userID))

	return user, nil
}
