package impl

import (
	"context"
	"log/slog"

	"github.com/pkg/errors"

	deliverycontext "spotter/internal/delivery/context"
	"spotter/internal/domain/entity"
	domainerrors "spotter/internal/domain/errors"
	"spotter/internal/domain/repository"
	"spotter/internal/usecase"
)

// spotService implements the SpotUsecase interface.
type spotService struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// NewSpotService is the constructor for spotService.
func NewSpotService(
	txManager repository.TransactionManager,
	logger *slog.Logger,
) usecase.SpotUsecase {
	return &spotService{
		txManager: txManager,
		logger:    logger,
	}
}

func (srv *spotService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListActive returns a page of active spots, newest first.
func (srv *spotService) ListActive(ctx context.Context, page, pageSize int) (*usecase.SpotPage, error) {
	return srv.list(ctx, true, page, pageSize)
}

// ListNonActive returns a page of deactivated spots.
func (srv *spotService) ListNonActive(ctx context.Context, page, pageSize int) (*usecase.SpotPage, error) {
	return srv.list(ctx, false, page, pageSize)
}

func (srv *spotService) list(ctx context.Context, active bool, page, pageSize int) (*usecase.SpotPage, error) {
	var result *usecase.SpotPage

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		spotRepo := repoFactory.SpotRepo()

		spots, err := spotRepo.ListByActive(ctx, active, page, pageSize)
		if err != nil {
			return errors.Wrap(err, "failed to list spots")
		}

		// An empty catalogue is an error by contract, not an empty page.
		if len(spots) == 0 {
			return errors.Wrap(domainerrors.ErrNoSpots, "no spots matched")
		}

		total, err := spotRepo.CountByActive(ctx, active)
		if err != nil {
			return errors.Wrap(err, "failed to count spots")
		}

		result = &usecase.SpotPage{Spots: spots, Total: total}

		return nil
	})
	if err != nil {
		srv.log(ctx).Debug("Spot listing failed", slog.Any("error", err), slog.Bool("active", active))

		return nil, err
	}

	return result, nil
}

// Create publishes a new spot.
func (srv *spotService) Create(ctx context.Context, input usecase.CreateSpotInput) (*entity.Spot, error) {
	spot := &entity.Spot{
		Title:       input.Title,
		Description: input.Description,
		Latitude:    input.Latitude,
		Longitude:   input.Longitude,
		ImageURL:    input.ImageURL,
		IsActive:    true,
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.SpotRepo().Create(ctx, spot); err != nil {
			return errors.Wrap(err, "failed to create spot")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to create spot", slog.Any("error", err))

		return nil, err
	}
	srv.log(ctx).Info("Spot created", slog.Any("spot_id", spot.ID))

	return spot, nil
}
