package impl

import (
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"spotter/internal/domain/entity"
	domainerrors "spotter/internal/domain/errors"
	"spotter/internal/usecase"
)

func newUserFixture() (usecase.UserUsecase, *fakeUserRepo, *fakeUploader) {
	userRepo := newFakeUserRepo()
	uploader := &fakeUploader{}
	txManager := &fakeTxManager{factory: &fakeRepoFactory{userRepo: userRepo}}

	return NewUserService(txManager, uploader, slog.Default()), userRepo, uploader
}

func seedUser(t *testing.T, userRepo *fakeUserRepo) *entity.User {
	t.Helper()

	user := &entity.User{
		Email:    "ada@example.com",
		Username: "ada",
		Role:     entity.RoleUser,
	}
	require.NoError(t, userRepo.Create(context.Background(), user))

	return user
}

func TestMe(t *testing.T) {
	users, userRepo, _ := newUserFixture()
	seeded := seedUser(t, userRepo)

	user, err := users.Me(context.Background(), seeded.ID)
	require.NoError(t, err)
	assert.Equal(t, seeded.Email, user.Email)
}

func TestMe_UnknownUser(t *testing.T) {
	users, _, _ := newUserFixture()

	_, err := users.Me(context.Background(), uuid.New())
	assertAppError(t, err, domainerrors.ErrUserNotFound)
}

func TestUpdateImage(t *testing.T) {
	users, userRepo, uploader := newUserFixture()
	seeded := seedUser(t, userRepo)

	user, err := users.UpdateImage(context.Background(), seeded.ID, "image/png", []byte("png bytes"))
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(uploader.lastKey, "avatars/"+seeded.ID.String()+"/"))
	assert.Equal(t, "https://cdn.example.com/"+uploader.lastKey, user.ImageURL)

	// The new URL must be persisted, not just returned.
	reloaded, err := users.Me(context.Background(), seeded.ID)
	require.NoError(t, err)
	assert.Equal(t, user.ImageURL, reloaded.ImageURL)
}

func TestUpdateImage_EmptyUpload(t *testing.T) {
	users, userRepo, _ := newUserFixture()
	seeded := seedUser(t, userRepo)

	_, err := users.UpdateImage(context.Background(), seeded.ID, "image/png", nil)
	assertAppError(t, err, domainerrors.ErrValidationFailed)
}
