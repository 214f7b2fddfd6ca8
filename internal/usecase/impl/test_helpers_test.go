package impl

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"spotter/internal/domain/entity"
	domainerrors "spotter/internal/domain/errors"
	"spotter/internal/domain/repository"
	"spotter/internal/domain/service"
)

// fakeUserRepo is an in-memory UserRepository with the same compare-and-swap
// semantics as the real one.
type fakeUserRepo struct {
	mu    sync.Mutex
	users map[uuid.UUID]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[uuid.UUID]*entity.User{}}
}

func cloneUser(u *entity.User) *entity.User {
	cloned := *u
	if u.PasswordHash != nil {
		hash := *u.PasswordHash
		cloned.PasswordHash = &hash
	}
	if u.RefreshTokenHash != nil {
		hash := *u.RefreshTokenHash
		cloned.RefreshTokenHash = &hash
	}

	return &cloned
}

func (r *fakeUserRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[id]
	if !ok {
		return nil, domainerrors.ErrUserNotFound
	}

	return cloneUser(user), nil
}

func (r *fakeUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, user := range r.users {
		if user.Email == email {
			return cloneUser(user), nil
		}
	}

	return nil, repository.ErrUserNotFound
}

func (r *fakeUserRepo) Create(_ context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.users {
		if existing.Email == user.Email || existing.Username == user.Username {
			return domainerrors.New("A user with the same unique field already exists. Please use a different value.", 409)
		}
	}

	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	r.users[user.ID] = cloneUser(user)

	return nil
}

func (r *fakeUserRepo) Update(_ context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[user.ID]; !ok {
		return domainerrors.ErrUserNotFound
	}
	user.UpdatedAt = time.Now()
	r.users[user.ID] = cloneUser(user)

	return nil
}

func (r *fakeUserRepo) SetRefreshTokenHash(_ context.Context, userID uuid.UUID, hash *string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[userID]
	if !ok {
		return domainerrors.ErrUserNotFound
	}
	user.RefreshTokenHash = hash

	return nil
}

func (r *fakeUserRepo) SwapRefreshTokenHash(_ context.Context, userID uuid.UUID, oldHash, newHash string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[userID]
	if !ok {
		return false, nil
	}
	if user.RefreshTokenHash == nil || *user.RefreshTokenHash != oldHash {
		return false, nil
	}
	user.RefreshTokenHash = &newHash

	return true, nil
}

// anchoredHash reads the stored refresh token hash directly, bypassing the
// repository interface.
func (r *fakeUserRepo) anchoredHash(userID uuid.UUID) *string {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[userID]
	if !ok {
		return nil
	}

	return user.RefreshTokenHash
}

// fakeSpotRepo is an in-memory SpotRepository.
type fakeSpotRepo struct {
	mu    sync.Mutex
	spots []*entity.Spot
}

func (r *fakeSpotRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Spot, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, spot := range r.spots {
		if spot.ID == id {
			return spot, nil
		}
	}

	return nil, domainerrors.ErrNotFound
}

func (r *fakeSpotRepo) List(_ context.Context, page, pageSize int) ([]*entity.Spot, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return pageOf(r.spots, page, pageSize), nil
}

func (r *fakeSpotRepo) ListByActive(_ context.Context, active bool, page, pageSize int) ([]*entity.Spot, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var matched []*entity.Spot
	for _, spot := range r.spots {
		if spot.IsActive == active {
			matched = append(matched, spot)
		}
	}

	return pageOf(matched, page, pageSize), nil
}

func (r *fakeSpotRepo) Create(_ context.Context, spot *entity.Spot) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if spot.ID == uuid.Nil {
		spot.ID = uuid.New()
	}
	spot.CreatedAt = time.Now()
	spot.UpdatedAt = spot.CreatedAt
	r.spots = append(r.spots, spot)

	return nil
}

func (r *fakeSpotRepo) Count(_ context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return int64(len(r.spots)), nil
}

func (r *fakeSpotRepo) CountByActive(_ context.Context, active bool) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var total int64
	for _, spot := range r.spots {
		if spot.IsActive == active {
			total++
		}
	}

	return total, nil
}

func pageOf(spots []*entity.Spot, page, pageSize int) []*entity.Spot {
	if page < 1 {
		page = 1
	}
	start := (page - 1) * pageSize
	if start >= len(spots) {
		return nil
	}
	end := start + pageSize
	if end > len(spots) {
		end = len(spots)
	}

	return spots[start:end]
}

// fakeTxManager runs the callback directly against a fixed factory; there is
// no transactionality to emulate for these tests.
type fakeTxManager struct {
	factory repository.RepositoryFactory
}

func (m *fakeTxManager) Execute(_ context.Context, fn func(repository.RepositoryFactory) error) error {
	return fn(m.factory)
}

type fakeRepoFactory struct {
	userRepo repository.UserRepository
	spotRepo repository.SpotRepository
}

func (f *fakeRepoFactory) UserRepo() repository.UserRepository {
	return f.userRepo
}

func (f *fakeRepoFactory) SpotRepo() repository.SpotRepository {
	return f.spotRepo
}

// fakeTokenService mints transparent tokens of the form
// "<type>.<userID>.<seq>" so tests can assert on rotation without real
// signing. Tokens listed in expired are rejected on verification.
type fakeTokenService struct {
	mu      sync.Mutex
	seq     int
	expired map[string]bool
}

func newFakeTokenService() *fakeTokenService {
	return &fakeTokenService{expired: map[string]bool{}}
}

func (s *fakeTokenService) mint(kind string, userID uuid.UUID) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq++

	return fmt.Sprintf("%s.%s.%d", kind, userID, s.seq)
}

func (s *fakeTokenService) GenerateAccessToken(userID uuid.UUID) (string, error) {
	return s.mint("access", userID), nil
}

func (s *fakeTokenService) GenerateRefreshToken(userID uuid.UUID) (string, error) {
	return s.mint("refresh", userID), nil
}

func (s *fakeTokenService) verify(token, kind string) (*service.Claims, error) {
	s.mu.Lock()
	isExpired := s.expired[token]
	s.mu.Unlock()
	if isExpired {
		return nil, domainerrors.ErrInvalidToken
	}

	parts := strings.Split(token, ".")
	if len(parts) != 3 || parts[0] != kind {
		return nil, domainerrors.ErrInvalidToken
	}
	userID, err := uuid.Parse(parts[1])
	if err != nil {
		return nil, domainerrors.ErrInvalidToken
	}

	return &service.Claims{UserID: userID, Type: kind}, nil
}

func (s *fakeTokenService) VerifyAccessToken(token string) (*service.Claims, error) {
	return s.verify(token, "access")
}

func (s *fakeTokenService) VerifyRefreshToken(token string) (*service.Claims, error) {
	return s.verify(token, "refresh")
}

func (s *fakeTokenService) HashToken(token string) string {
	return "sha256." + token
}

func (s *fakeTokenService) RefreshTokenTTL() time.Duration {
	return 30 * 24 * time.Hour
}

func (s *fakeTokenService) expire(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.expired[token] = true
}

// fakeHasher marks passwords instead of hashing them.
type fakeHasher struct{}

func (fakeHasher) Hash(password string) (string, error) {
	return "hashed." + password, nil
}

func (fakeHasher) Check(password, hash string) bool {
	return hash == "hashed."+password
}

// fakeOAuthVerifier returns a fixed identity or error.
type fakeOAuthVerifier struct {
	identity *service.OAuthUser
	err      error
}

func (v *fakeOAuthVerifier) VerifyIDToken(context.Context, string) (*service.OAuthUser, error) {
	if v.err != nil {
		return nil, v.err
	}

	return v.identity, nil
}

// fakeUploader records the last upload and returns a deterministic URL.
type fakeUploader struct {
	mu      sync.Mutex
	lastKey string
	err     error
}

func (u *fakeUploader) Upload(_ context.Context, key, _ string, _ []byte) (string, error) {
	u.mu.Lock()
	defer u.mu.Unlock()
	if u.err != nil {
		return "", u.err
	}
	u.lastKey = key

	return "https://cdn.example.com/" + key, nil
}
