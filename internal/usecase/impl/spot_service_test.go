package impl

import (
	"context"
	"fmt"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainerrors "spotter/internal/domain/errors"
	"spotter/internal/usecase"
)

func newSpotFixture() (usecase.SpotUsecase, *fakeSpotRepo) {
	spotRepo := &fakeSpotRepo{}
	txManager := &fakeTxManager{factory: &fakeRepoFactory{spotRepo: spotRepo}}

	return NewSpotService(txManager, slog.Default()), spotRepo
}

func TestSpotCreateAndList(t *testing.T) {
	spots, _ := newSpotFixture()

	created, err := spots.Create(context.Background(), usecase.CreateSpotInput{
		Title:     "Harbour wall",
		Latitude:  51.49,
		Longitude: -0.12,
	})
	require.NoError(t, err)
	assert.True(t, created.IsActive)
	assert.NotZero(t, created.ID)

	page, err := spots.ListActive(context.Background(), 1, 20)
	require.NoError(t, err)
	require.Len(t, page.Spots, 1)
	assert.Equal(t, created.ID, page.Spots[0].ID)
	assert.Equal(t, int64(1), page.Total)
}

func TestListActive_EmptyCatalogueIsAnError(t *testing.T) {
	spots, _ := newSpotFixture()

	_, err := spots.ListActive(context.Background(), 1, 20)
	assertAppError(t, err, domainerrors.ErrNoSpots)
}

func TestListActive_PastLastPageIsAnError(t *testing.T) {
	spots, _ := newSpotFixture()

	_, err := spots.Create(context.Background(), usecase.CreateSpotInput{Title: "Only one"})
	require.NoError(t, err)

	_, err = spots.ListActive(context.Background(), 99, 20)
	assertAppError(t, err, domainerrors.ErrNoSpots)
}

func TestListActive_Pagination(t *testing.T) {
	spots, _ := newSpotFixture()

	for i := range 5 {
		_, err := spots.Create(context.Background(), usecase.CreateSpotInput{
			Title: fmt.Sprintf("Spot %d", i),
		})
		require.NoError(t, err)
	}

	page, err := spots.ListActive(context.Background(), 2, 2)
	require.NoError(t, err)
	assert.Len(t, page.Spots, 2)
	assert.Equal(t, int64(5), page.Total)
}

func TestListNonActive(t *testing.T) {
	spots, spotRepo := newSpotFixture()

	created, err := spots.Create(context.Background(), usecase.CreateSpotInput{Title: "Retired"})
	require.NoError(t, err)

	// Active and non-active listings must not bleed into each other.
	_, err = spots.ListNonActive(context.Background(), 1, 20)
	assertAppError(t, err, domainerrors.ErrNoSpots)

	spotRepo.spots[0].IsActive = false

	page, err := spots.ListNonActive(context.Background(), 1, 20)
	require.NoError(t, err)
	require.Len(t, page.Spots, 1)
	assert.Equal(t, created.ID, page.Spots[0].ID)

	_, err = spots.ListActive(context.Background(), 1, 20)
	assertAppError(t, err, domainerrors.ErrNoSpots)
}
