// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	deliverycontext "spotter/internal/delivery/context"
	"spotter/internal/domain/entity"
	domainerrors "spotter/internal/domain/errors"
	"spotter/internal/domain/repository"
	"spotter/internal/domain/service"
	"spotter/internal/usecase"
)

// authService implements the AuthUsecase interface.
type authService struct {
	txManager repository.TransactionManager
	tokens    service.TokenService
	hasher    service.PasswordHasher
	google    service.OAuthVerifier
	logger    *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(
	txManager repository.TransactionManager,
	tokens service.TokenService,
	hasher service.PasswordHasher,
	google service.OAuthVerifier,
	logger *slog.Logger,
) usecase.AuthUsecase {
	return &authService{
		txManager: txManager,
		tokens:    tokens,
		hasher:    hasher,
		google:    google,
		logger:    logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates a new account and opens a session for it.
func (srv *authService) Register(ctx context.Context, input usecase.RegisterInput) (*usecase.AuthOutput, error) {
	srv.log(ctx).Debug("Registering user", slog.String("email", input.Email))

	passwordHash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash password")
	}

	var output *usecase.AuthOutput

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		// 1. Reject duplicate emails up front for a clean 409.
		if _, err := userRepo.FindByEmail(ctx, input.Email); err == nil {
			return errors.Wrap(domainerrors.ErrEmailTaken, "email already registered")
		} else if !errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(err, "failed to check email")
		}

		// 2. Create the account.
		user := &entity.User{
			Email:        input.Email,
			Username:     input.Username,
			PasswordHash: &passwordHash,
			Role:         entity.RoleUser,
			ImageURL:     defaultAvatarURL(input.Username),
		}
		if err := userRepo.Create(ctx, user); err != nil {
			return errors.Wrap(err, "failed to create user")
		}

		// 3. Open a session.
		tokens, err := srv.openSession(ctx, userRepo, user)
		if err != nil {
			return err
		}

		output = &usecase.AuthOutput{User: user, Tokens: tokens}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Registration failed", slog.Any("error", err), slog.String("email", input.Email))

		return nil, err
	}
	srv.log(ctx).Info("User registered", slog.Any("user_id", output.User.ID))

	return output, nil
}

// Login authenticates an email/password pair and opens a session.
func (srv *authService) Login(ctx context.Context, input usecase.LoginInput) (*usecase.AuthOutput, error) {
	srv.log(ctx).Debug("Logging in user", slog.String("email", input.Email))

	var output *usecase.AuthOutput

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		user, err := userRepo.FindByEmail(ctx, input.Email)
		if errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(domainerrors.ErrInvalidCredentials, "unknown email")
		}
		if err != nil {
			return errors.Wrap(err, "failed to find user")
		}

		// Accounts created through Google sign-in have no password. They get
		// a distinct 401 so the client can steer the user to the right flow.
		if !user.HasPassword() {
			return errors.Wrap(domainerrors.ErrPasswordlessAccount, "account has no password")
		}

		if !srv.hasher.Check(input.Password, *user.PasswordHash) {
			return errors.Wrap(domainerrors.ErrInvalidCredentials, "wrong password")
		}

		tokens, err := srv.openSession(ctx, userRepo, user)
		if err != nil {
			return err
		}

		output = &usecase.AuthOutput{User: user, Tokens: tokens}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Login failed", slog.Any("error", err), slog.String("email", input.Email))

		return nil, err
	}
	srv.log(ctx).Info("User logged in", slog.Any("user_id", output.User.ID))

	return output, nil
}

// GoogleSignIn verifies a Google ID token and opens a session, creating a
// passwordless account on first sign-in.
func (srv *authService) GoogleSignIn(ctx context.Context, input usecase.GoogleSignInInput) (*usecase.AuthOutput, error) {
	identity, err := srv.google.VerifyIDToken(ctx, input.IDToken)
	if err != nil {
		srv.log(ctx).Warn("Google sign-in rejected", slog.Any("error", err))

		return nil, err
	}

	var output *usecase.AuthOutput

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		user, err := userRepo.FindByEmail(ctx, identity.Email)
		if errors.Is(err, repository.ErrUserNotFound) {
			user = &entity.User{
				Email:    identity.Email,
				Username: usernameFromEmail(identity.Email),
				Role:     entity.RoleUser,
				ImageURL: identity.Picture,
			}
			if user.ImageURL == "" {
				user.ImageURL = defaultAvatarURL(user.Username)
			}
			if err := userRepo.Create(ctx, user); err != nil {
				return errors.Wrap(err, "failed to create user")
			}
		} else if err != nil {
			return errors.Wrap(err, "failed to find user")
		}

		tokens, err := srv.openSession(ctx, userRepo, user)
		if err != nil {
			return err
		}

		output = &usecase.AuthOutput{User: user, Tokens: tokens}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Google sign-in failed", slog.Any("error", err))

		return nil, err
	}
	srv.log(ctx).Info("User signed in with Google", slog.Any("user_id", output.User.ID))

	return output, nil
}

// Refresh rotates a refresh token into a fresh pair.
func (srv *authService) Refresh(ctx context.Context, refreshToken string) (*usecase.AuthOutput, error) {
	claims, err := srv.tokens.VerifyRefreshToken(refreshToken)
	if err != nil {
		return nil, err
	}

	oldHash := srv.tokens.HashToken(refreshToken)

	var output *usecase.AuthOutput

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		// Only a missing user invalidates the token. Anything else is an
		// infrastructure failure and must not read as a revoked session.
		user, err := userRepo.FindByID(ctx, claims.UserID)
		if err != nil {
			var appErr domainerrors.AppError
			if errors.As(err, &appErr) && appErr.HTTPCode() == http.StatusNotFound {
				return errors.Wrap(domainerrors.ErrTokenReuse, "user no longer exists")
			}

			return errors.Wrap(err, "failed to find user")
		}

		// The token must still be the anchored one. A cryptographically valid
		// token whose hash no longer matches was already rotated or revoked:
		// either an old copy is being replayed or the session is gone.
		if user.RefreshTokenHash == nil || *user.RefreshTokenHash != oldHash {
			return errors.Wrap(domainerrors.ErrTokenReuse, "refresh token not anchored")
		}

		access, err := srv.tokens.GenerateAccessToken(user.ID)
		if err != nil {
			return errors.Wrap(err, "failed to generate access token")
		}
		refresh, err := srv.tokens.GenerateRefreshToken(user.ID)
		if err != nil {
			return errors.Wrap(err, "failed to generate refresh token")
		}

		// Compare-and-swap so concurrent rotations of the same token cannot
		// both succeed; the loser is treated as reuse.
		swapped, err := userRepo.SwapRefreshTokenHash(ctx, user.ID, oldHash, srv.tokens.HashToken(refresh))
		if err != nil {
			return errors.Wrap(err, "failed to rotate refresh token")
		}
		if !swapped {
			return errors.Wrap(domainerrors.ErrTokenReuse, "refresh token rotated concurrently")
		}

		output = &usecase.AuthOutput{
			User:   user,
			Tokens: entity.TokenPair{AccessToken: access, RefreshToken: refresh},
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Refresh failed", slog.Any("error", err), slog.Any("user_id", claims.UserID))

		return nil, err
	}
	srv.log(ctx).Debug("Refresh token rotated", slog.Any("user_id", output.User.ID))

	return output, nil
}

// Logout revokes the session anchored to the refresh token. Dead or foreign
// tokens are ignored: logout must succeed even without a live session.
func (srv *authService) Logout(ctx context.Context, refreshToken string) error {
	claims, err := srv.tokens.VerifyRefreshToken(refreshToken)
	if err != nil {
		srv.log(ctx).Debug("Logout with unusable refresh token", slog.Any("error", err))

		return nil
	}

	hash := srv.tokens.HashToken(refreshToken)

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		user, err := userRepo.FindByID(ctx, claims.UserID)
		if err != nil {
			return nil
		}
		if user.RefreshTokenHash == nil || *user.RefreshTokenHash != hash {
			return nil
		}

		return userRepo.SetRefreshTokenHash(ctx, user.ID, nil)
	})
	if err != nil {
		srv.log(ctx).Error("Logout cleanup failed", slog.Any("error", err), slog.Any("user_id", claims.UserID))

		return nil
	}
	srv.log(ctx).Info("User logged out", slog.Any("user_id", claims.UserID))

	return nil
}

// Authenticate resolves the caller's identity, silently rotating the session
// when the access token is expired but a refresh token is available.
func (srv *authService) Authenticate(ctx context.Context, accessToken, refreshToken string) (*usecase.AuthDecision, error) {
	if accessToken != "" {
		claims, err := srv.tokens.VerifyAccessToken(accessToken)
		if err == nil {
			return &usecase.AuthDecision{UserID: claims.UserID}, nil
		}
	}

	if refreshToken == "" {
		return nil, errors.Wrap(domainerrors.ErrUnauthorized, "no usable credentials")
	}

	output, err := srv.Refresh(ctx, refreshToken)
	if err != nil {
		return nil, err
	}

	return &usecase.AuthDecision{UserID: output.User.ID, Rotated: &output.Tokens}, nil
}

// openSession mints a token pair for the user and anchors the refresh
// token's hash on the user row, displacing any previous session.
func (srv *authService) openSession(ctx context.Context, userRepo repository.UserRepository, user *entity.User) (entity.TokenPair, error) {
	access, err := srv.tokens.GenerateAccessToken(user.ID)
	if err != nil {
		return entity.TokenPair{}, errors.Wrap(err, "failed to generate access token")
	}
	refresh, err := srv.tokens.GenerateRefreshToken(user.ID)
	if err != nil {
		return entity.TokenPair{}, errors.Wrap(err, "failed to generate refresh token")
	}

	hash := srv.tokens.HashToken(refresh)
	if err := userRepo.SetRefreshTokenHash(ctx, user.ID, &hash); err != nil {
		return entity.TokenPair{}, errors.Wrap(err, "failed to anchor refresh token")
	}
	user.RefreshTokenHash = &hash

	return entity.TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

// usernameFromEmail derives a unique-enough username for a first Google
// sign-in from the address's local part.
func usernameFromEmail(email string) string {
	local := email
	if at := strings.IndexByte(email, '@'); at > 0 {
		local = email[:at]
	}
	if len(local) > 22 {
		local = local[:22]
	}

	return fmt.Sprintf("%s-%s", local, uuid.New().String()[:7])
}

func defaultAvatarURL(username string) string {
	return "https://ui-avatars.com/api/?name=" + url.QueryEscape(username)
}
