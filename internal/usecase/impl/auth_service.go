// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"time"

	"syncfloww/config"
	deliverycontext "syncfloww/internal/delivery/context"
	"syncfloww/internal/domain/entity"
	domainerrors "syncfloww/internal/domain/errors"
	"syncfloww/internal/domain/repository"
	"syncfloww/internal/domain/service"
	"syncfloww/internal/errors"
	"syncfloww/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

const msgPasswordMismatch = "Password fields didn't match."

// authService implements the AuthUsecase interface.
type authService struct {
	txManager         repository.TransactionManager
	userRepo          repository.UserRepository
	authRepo          repository.AuthRepository
	refreshTokenRepo  repository.RefreshTokenRepository
	hasher            service.PasswordHasher
	tokenService      service.TokenService
	providers         map[entity.ProviderType]service.OAuthProvider
	maxActiveSessions int
	logger            *slog.Logger
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	TxManager        repository.TransactionManager
	UserRepo         repository.UserRepository
	AuthRepo         repository.AuthRepository
	RefreshTokenRepo repository.RefreshTokenRepository
	Hasher           service.PasswordHasher
	TokenService     service.TokenService
	OAuthProviders   []service.OAuthProvider `group:"oauth_providers"`
	Config           *config.Config
	Logger           *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	maxActiveSessions := 0
	if params.Config != nil && params.Config.Auth != nil {
		maxActiveSessions = params.Config.Auth.MaxActiveSessions
	}

	providers := make(map[entity.ProviderType]service.OAuthProvider, len(params.OAuthProviders))
	for _, p := range params.OAuthProviders {
		providers[p.GetProvider()] = p
	}

	return &authService{
		txManager:         params.TxManager,
		userRepo:          params.UserRepo,
		authRepo:          params.AuthRepo,
		refreshTokenRepo:  params.RefreshTokenRepo,
		hasher:            params.Hasher,
		tokenService:      params.TokenService,
		providers:         providers,
		maxActiveSessions: maxActiveSessions,
		logger:            params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates the user, its email credential and its profile in one transaction.
func (srv *authService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.AuthOutput, error) {
	email := entity.NormalizeEmail(input.Email)
	srv.log(ctx).Info("Starting registration", slog.String("email", email))

	validationErr := domainerrors.NewValidationError(nil)
	if input.Password != input.PasswordConfirm {
		validationErr.Add("password_confirm", msgPasswordMismatch)
	}
	for _, problem := range srv.hasher.ValidatePasswordStrength(input.Password) {
		validationErr.Add("password", problem)
	}
	if validationErr.HasErrors() {
		srv.log(ctx).Warn("Registration input rejected", slog.String("email", email), slog.Any("fields", validationErr.Fields()))

		return nil, validationErr
	}

	// Hash outside the transaction (bcrypt is CPU-bound).
	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
	}

	var registered *entity.User
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		if _, findErr := userRepo.FindByEmail(ctx, email); findErr == nil {
			return domainerrors.ErrUserAlreadyExists.WrapMessage("email already registered")
		} else if !errors.Is(findErr, repository.ErrUserNotFound) {
			return errors.Wrap(findErr, "failed to check existing user")
		}

		newUser := &entity.User{Email: email, FullName: input.FullName}

		return srv.createUserWithIdentity(ctx, repoFactory, newUser, &entity.Authentication{
			Provider:       entity.ProviderTypeEmail,
			ProviderUserID: email,
			PasswordHash:   hashedPassword,
		}, &registered)
	})
	if err != nil {
		srv.log(ctx).Warn("Registration failed", slog.String("email", email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute user registration transaction")
	}

	tokens, err := srv.issueSession(ctx, registered)
	if err != nil {
		return nil, err
	}
	srv.log(ctx).Debug("Registration completed", slog.Any("userID", registered.ID))

	return &usecase.AuthOutput{User: registered, Tokens: *tokens}, nil
}

// createUserWithIdentity must run inside a transaction.
func (srv *authService) createUserWithIdentity(
	ctx context.Context,
	repoFactory repository.RepositoryFactory,
	newUser *entity.User,
	identity *entity.Authentication,
	created **entity.User,
) error {
	if err := repoFactory.UserRepo().Create(ctx, newUser); err != nil {
		return errors.Wrap(err, "failed to create user")
	}

	identity.UserID = newUser.ID
	if err := repoFactory.AuthRepo().CreateAuthentication(ctx, identity); err != nil {
		return errors.Wrap(err, "failed to create authentication")
	}

	profile := &entity.Profile{UserID: newUser.ID, FullName: newUser.FullName, AvatarURL: newUser.AvatarURL}
	if err := repoFactory.ProfileRepo().Create(ctx, profile); err != nil {
		return errors.Wrap(err, "failed to create profile")
	}

	*created = newUser

	return nil
}

// Login orchestrates the email login process.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.AuthOutput, error) {
	email := entity.NormalizeEmail(input.Email)
	srv.log(ctx).Debug("Starting user login", slog.String("email", email))

	authRecord, err := srv.authRepo.FindAuthentication(ctx, entity.ProviderTypeEmail, email)
	if err != nil {
		if errors.Is(err, repository.ErrAuthNotFound) {
			srv.log(ctx).Warn("Login failed", slog.String("email", email), slog.String("reason", "unknown email"))

			return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
		}

		return nil, errors.Wrap(err, "failed to find authentication")
	}

	if !srv.hasher.Check(input.Password, authRecord.PasswordHash) {
		srv.log(ctx).Warn("Login failed", slog.String("email", email), slog.String("reason", "password mismatch"))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
	}

	user, err := srv.userRepo.FindByID(ctx, authRecord.UserID)
	if err != nil {
		return nil, srv.mapUserError(err)
	}

	tokens, err := srv.issueSession(ctx, user)
	if err != nil {
		return nil, err
	}
	srv.log(ctx).Debug("User logged in successfully", slog.Any("userID", user.ID))

	return &usecase.AuthOutput{User: user, Tokens: *tokens}, nil
}

// RefreshToken revokes the presented refresh token and issues a new pair in the same transaction.
func (srv *authService) RefreshToken(ctx context.Context, refreshToken string) (*usecase.TokenPair, error) {
	srv.log(ctx).Info("Attempting to rotate refresh token")

	claims, err := srv.tokenService.ValidateToken(refreshToken)
	if err != nil || claims.Type != service.TokenTypeRefresh {
		srv.log(ctx).Warn("Refresh rejected", slog.Any("error", err))

		return nil, domainerrors.ErrRefreshTokenInvalid
	}

	var pair *usecase.TokenPair
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		refreshRepo := repoFactory.RefreshTokenRepo()
		tokenHash := srv.tokenService.HashToken(refreshToken)

		if _, findErr := refreshRepo.FindRefreshTokenByHash(ctx, tokenHash); findErr != nil {
			if errors.IsAny(findErr, repository.ErrRefreshTokenNotFound, repository.ErrRefreshTokenExpired) {
				return domainerrors.ErrRefreshTokenInvalid
			}

			return errors.Wrap(findErr, "failed to find refresh token")
		}

		// A concurrent rotation may have consumed the token between find and delete.
		if delErr := refreshRepo.DeleteRefreshTokenByHash(ctx, tokenHash); delErr != nil {
			if errors.Is(delErr, repository.ErrRefreshTokenNotFound) {
				return domainerrors.ErrRefreshTokenInvalid
			}

			return errors.Wrap(delErr, "failed to revoke refresh token")
		}

		user, findErr := repoFactory.UserRepo().FindByID(ctx, claims.UserID)
		if findErr != nil {
			if errors.Is(findErr, repository.ErrUserNotFound) {
				return domainerrors.ErrRefreshTokenInvalid
			}

			return errors.Wrap(findErr, "failed to find user")
		}

		access, refresh, genErr := srv.tokenService.GenerateTokens(user.ID, user.Roles().ToStrings())
		if genErr != nil {
			return errors.Wrap(genErr, "failed to generate tokens")
		}

		if storeErr := srv.storeRefreshTokenWithRepo(ctx, refreshRepo, user.ID, refresh); storeErr != nil {
			return storeErr
		}
		pair = &usecase.TokenPair{AccessToken: access, RefreshToken: refresh}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to rotate refresh token", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute refresh token transaction")
	}

	return pair, nil
}

// Logout deletes the session behind refreshToken. The token must belong to userID.
func (srv *authService) Logout(ctx context.Context, userID uuid.UUID, refreshToken string) error {
	srv.log(ctx).Info("Attempting to log out", slog.Any("userID", userID))

	claims, err := srv.tokenService.ValidateToken(refreshToken)
	if err != nil || claims.Type != service.TokenTypeRefresh || claims.UserID != userID {
		srv.log(ctx).Warn("Logout with invalid token", slog.Any("error", err))

		return domainerrors.ErrLogoutTokenInvalid
	}

	if err := srv.refreshTokenRepo.DeleteRefreshTokenByHash(ctx, srv.tokenService.HashToken(refreshToken)); err != nil {
		if errors.Is(err, repository.ErrRefreshTokenNotFound) {
			return domainerrors.ErrLogoutTokenInvalid
		}
		srv.log(ctx).Error("Failed to delete refresh token", slog.Any("error", err))

		return errors.Wrap(err, "failed to delete refresh token")
	}
	srv.log(ctx).Info("Successfully logged out", slog.Any("userID", userID))

	return nil
}

// OAuthLogin exchanges the provider token, then gets or creates the user by email.
func (srv *authService) OAuthLogin(ctx context.Context, input *usecase.OAuthLoginInput) (*usecase.AuthOutput, error) {
	if input.Provider == entity.ProviderTypeApple {
		return nil, domainerrors.ErrOAuthProviderNotImplemented
	}

	provider, ok := srv.providers[input.Provider]
	if !ok {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unsupported provider: " + input.Provider.String())
	}

	oauthUser, err := provider.FetchUser(ctx, service.OAuthCredential{AccessToken: input.AccessToken, IDToken: input.IDToken})
	if err != nil {
		return nil, srv.mapOAuthError(ctx, input.Provider, err)
	}
	oauthUser.Email = entity.NormalizeEmail(oauthUser.Email)

	var user *entity.User
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var txErr error
		user, txErr = srv.findOrCreateOAuthUser(ctx, repoFactory, oauthUser)

		return txErr
	})
	if err != nil {
		srv.log(ctx).Error("Failed to resolve OAuth user", slog.String("provider", input.Provider.String()), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute OAuth user transaction")
	}

	tokens, err := srv.issueSession(ctx, user)
	if err != nil {
		return nil, err
	}

	return &usecase.AuthOutput{User: user, Tokens: *tokens}, nil
}

func (srv *authService) mapOAuthError(ctx context.Context, provider entity.ProviderType, err error) error {
	invalid, missing := domainerrors.ErrGoogleTokenInvalid, domainerrors.ErrGoogleEmailMissing
	if provider == entity.ProviderTypeFacebook {
		invalid, missing = domainerrors.ErrFacebookTokenInvalid, domainerrors.ErrFacebookEmailMissing
	}

	switch {
	case errors.Is(err, service.ErrOAuthTokenInvalid):
		srv.log(ctx).Warn("OAuth token rejected", slog.String("provider", provider.String()), slog.Any("error", err))

		return invalid
	case errors.Is(err, service.ErrOAuthEmailMissing):
		return missing
	default:
		// The provider failure is logged, never returned to the client.
		srv.log(ctx).Error("OAuth exchange failed", slog.String("provider", provider.String()), slog.Any("error", err))

		return domainerrors.ErrInternalError
	}
}

// findOrCreateOAuthUser must run inside a transaction. A known provider identity wins over the email match.
func (srv *authService) findOrCreateOAuthUser(ctx context.Context, repoFactory repository.RepositoryFactory, oauthUser *service.OAuthUser) (*entity.User, error) {
	userRepo := repoFactory.UserRepo()
	authRepo := repoFactory.AuthRepo()

	authRecord, err := authRepo.FindAuthentication(ctx, oauthUser.Provider, oauthUser.ID)
	switch {
	case err == nil:
		linked, findErr := userRepo.FindByID(ctx, authRecord.UserID)
		if findErr != nil {
			return nil, errors.Wrap(findErr, "failed to find linked user")
		}

		return linked, srv.applyOAuthProfile(ctx, userRepo, linked, oauthUser)
	case !errors.Is(err, repository.ErrAuthNotFound):
		return nil, errors.Wrap(err, "failed to find authentication")
	}

	existing, err := userRepo.FindByEmail(ctx, oauthUser.Email)
	if errors.Is(err, repository.ErrUserNotFound) {
		srv.log(ctx).Info("OAuth user not found, creating new user", slog.String("email", oauthUser.Email))

		var created *entity.User
		newUser := &entity.User{
			Email:          oauthUser.Email,
			FullName:       oauthUser.Name,
			AvatarURL:      oauthUser.AvatarURL,
			EmailConfirmed: true,
		}
		createErr := srv.createUserWithIdentity(ctx, repoFactory, newUser, &entity.Authentication{
			Provider:       oauthUser.Provider,
			ProviderUserID: oauthUser.ID,
		}, &created)

		return created, createErr
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find user by email")
	}

	if err := srv.applyOAuthProfile(ctx, userRepo, existing, oauthUser); err != nil {
		return nil, err
	}

	identities, err := authRepo.FindByUserID(ctx, existing.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load user identities")
	}
	if !hasOAuthIdentity(identities) {
		if err := authRepo.CreateAuthentication(ctx, &entity.Authentication{
			UserID:         existing.ID,
			Provider:       oauthUser.Provider,
			ProviderUserID: oauthUser.ID,
		}); err != nil {
			return nil, errors.Wrap(err, "failed to link OAuth identity")
		}
	}

	return existing, nil
}

// applyOAuthProfile copies the provider's name and avatar onto the user.
func (srv *authService) applyOAuthProfile(ctx context.Context, userRepo repository.UserRepository, user *entity.User, oauthUser *service.OAuthUser) error {
	if oauthUser.Name != "" {
		user.FullName = oauthUser.Name
	}
	if oauthUser.AvatarURL != "" {
		user.AvatarURL = oauthUser.AvatarURL
	}
	user.EmailConfirmed = user.EmailConfirmed || oauthUser.EmailVerified

	if err := userRepo.Update(ctx, user); err != nil {
		return errors.Wrap(err, "failed to update user from OAuth profile")
	}

	return nil
}

// hasOAuthIdentity reports whether the user already has its one external provider link.
func hasOAuthIdentity(identities []*entity.Authentication) bool {
	for _, identity := range identities {
		switch identity.Provider {
		case entity.ProviderTypeGoogle, entity.ProviderTypeFacebook, entity.ProviderTypeApple:
			return true
		}
	}

	return false
}

func (srv *authService) CurrentUser(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, srv.mapUserError(err)
	}

	return user, nil
}

// ResolveExternalUser returns the user linked to identity.Subject. An unknown subject is linked to the
// account with the same email only when the issuer marks the email verified; otherwise a new user is created.
func (srv *authService) ResolveExternalUser(ctx context.Context, identity *service.ExternalIdentity) (*entity.User, error) {
	user, err := srv.findExternalUser(ctx, identity.Subject)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, repository.ErrAuthNotFound) {
		return nil, err
	}

	email := entity.NormalizeEmail(identity.Email)
	existing, err := srv.userRepo.FindByEmail(ctx, email)
	switch {
	case err == nil:
		return srv.linkExternalIdentity(ctx, existing, identity)
	case !errors.Is(err, repository.ErrUserNotFound):
		return nil, errors.Wrap(err, "failed to find external user")
	}

	srv.log(ctx).Info("Creating user for external identity", slog.String("email", email))

	var created *entity.User
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		newUser := &entity.User{Email: email, FullName: identity.Name, EmailConfirmed: identity.EmailVerified}

		return srv.createUserWithIdentity(ctx, repoFactory, newUser, &entity.Authentication{
			Provider:       entity.ProviderTypeExternal,
			ProviderUserID: identity.Subject,
		}, &created)
	})
	if errors.Is(err, domainerrors.ErrUserAlreadyExists) {
		// Lost a race with a concurrent first request for the same identity.
		return srv.findExternalUser(ctx, identity.Subject)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to create external user")
	}

	return created, nil
}

// findExternalUser returns repository.ErrAuthNotFound when the subject was never linked.
func (srv *authService) findExternalUser(ctx context.Context, subject string) (*entity.User, error) {
	authRecord, err := srv.authRepo.FindAuthentication(ctx, entity.ProviderTypeExternal, subject)
	if err != nil {
		if errors.Is(err, repository.ErrAuthNotFound) {
			return nil, err
		}

		return nil, errors.Wrap(err, "failed to find external identity")
	}

	user, err := srv.userRepo.FindByID(ctx, authRecord.UserID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find linked user")
	}

	return user, nil
}

func (srv *authService) linkExternalIdentity(ctx context.Context, user *entity.User, identity *service.ExternalIdentity) (*entity.User, error) {
	if !identity.EmailVerified {
		srv.log(ctx).Warn("Refusing to link external identity with unverified email",
			slog.Any("userID", user.ID),
			slog.String("subject", identity.Subject),
		)

		return nil, domainerrors.ErrExternalEmailUnverified
	}

	err := srv.authRepo.CreateAuthentication(ctx, &entity.Authentication{
		UserID:         user.ID,
		Provider:       entity.ProviderTypeExternal,
		ProviderUserID: identity.Subject,
	})
	if errors.Is(err, domainerrors.ErrUserAlreadyExists) {
		return srv.findExternalUser(ctx, identity.Subject)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to link external identity")
	}

	return user, nil
}

func (srv *authService) mapUserError(err error) error {
	if errors.Is(err, repository.ErrUserNotFound) {
		return domainerrors.ErrUserNotFound
	}

	return errors.Wrap(err, "failed to find user")
}

// issueSession generates a token pair and stores the refresh token hash.
func (srv *authService) issueSession(ctx context.Context, user *entity.User) (*usecase.TokenPair, error) {
	access, refresh, err := srv.tokenService.GenerateTokens(user.ID, user.Roles().ToStrings())
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tokens")
	}

	if srv.maxActiveSessions > 0 {
		// Keep lock/count/insert in one short transaction.
		err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
			if lockErr := repoFactory.UserRepo().LockByID(ctx, user.ID); lockErr != nil {
				return errors.Wrap(lockErr, "failed to lock user row for session limit check")
			}

			refreshRepo := repoFactory.RefreshTokenRepo()
			active, countErr := refreshRepo.CountActiveSessionsByUserID(ctx, user.ID)
			if countErr != nil {
				return errors.Wrap(countErr, "failed to count active sessions")
			}
			if active >= srv.maxActiveSessions {
				return errors.Wrap(domainerrors.ErrSessionLimitExceeded, "active session limit exceeded")
			}

			return srv.storeRefreshTokenWithRepo(ctx, refreshRepo, user.ID, refresh)
		})
	} else {
		err = srv.storeRefreshTokenWithRepo(ctx, srv.refreshTokenRepo, user.ID, refresh)
	}
	if err != nil {
		srv.log(ctx).Warn("Failed to store session", slog.Any("userID", user.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to store refresh token")
	}

	return &usecase.TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

func (srv *authService) storeRefreshTokenWithRepo(ctx context.Context, refreshRepo repository.RefreshTokenRepository, userID uuid.UUID, refreshToken string) error {
	newRefreshToken := &entity.RefreshToken{
		UserID:    userID,
		TokenHash: srv.tokenService.HashToken(refreshToken),
		ExpiresAt: time.Now().Add(srv.tokenService.GetRefreshTokenDuration()),
	}

	if err := refreshRepo.CreateRefreshToken(ctx, newRefreshToken); err != nil {
		return errors.Wrap(err, "failed to store refresh token")
	}

	return nil
}
