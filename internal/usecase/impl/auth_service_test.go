package impl

import (
	"context"
	"testing"
	"time"

	"syncfloww/config"
	"syncfloww/internal/domain/entity"
	domainerrors "syncfloww/internal/domain/errors"
	"syncfloww/internal/domain/repository"
	"syncfloww/internal/domain/service"
	"syncfloww/internal/errors"
	mockRepo "syncfloww/internal/mocks/repository"
	mockSvc "syncfloww/internal/mocks/service"
	"syncfloww/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// authServiceFixtures holds all test dependencies for auth service tests.
type authServiceFixtures struct {
	service          usecase.AuthUsecase
	txManager        *mockRepo.MockTransactionManager
	userRepo         *mockRepo.MockUserRepository
	authRepo         *mockRepo.MockAuthRepository
	refreshTokenRepo *mockRepo.MockRefreshTokenRepository
	hasher           *mockSvc.MockPasswordHasher
	tokenService     *mockSvc.MockTokenService
	google           *mockSvc.MockOAuthProvider
	facebook         *mockSvc.MockOAuthProvider
}

func createTestAuthService(t *testing.T, maxActiveSessions int) authServiceFixtures {
	fx := authServiceFixtures{
		txManager:        mockRepo.NewMockTransactionManager(t),
		userRepo:         mockRepo.NewMockUserRepository(t),
		authRepo:         mockRepo.NewMockAuthRepository(t),
		refreshTokenRepo: mockRepo.NewMockRefreshTokenRepository(t),
		hasher:           mockSvc.NewMockPasswordHasher(t),
		tokenService:     mockSvc.NewMockTokenService(t),
		google:           mockSvc.NewMockOAuthProvider(t),
		facebook:         mockSvc.NewMockOAuthProvider(t),
	}
	fx.google.EXPECT().GetProvider().Return(entity.ProviderTypeGoogle)
	fx.facebook.EXPECT().GetProvider().Return(entity.ProviderTypeFacebook)

	fx.service = NewAuthService(AuthServiceParams{
		TxManager:        fx.txManager,
		UserRepo:         fx.userRepo,
		AuthRepo:         fx.authRepo,
		RefreshTokenRepo: fx.refreshTokenRepo,
		Hasher:           fx.hasher,
		TokenService:     fx.tokenService,
		OAuthProviders:   []service.OAuthProvider{fx.google, fx.facebook},
		Config:           &config.Config{Auth: &config.AuthConfig{MaxActiveSessions: maxActiveSessions}},
		Logger:           newDiscardLogger(),
	})

	return fx
}

// expectTx runs the transaction body against factory.
func expectTx(txManager *mockRepo.MockTransactionManager, factory repository.RepositoryFactory) {
	txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		}).
		Once()
}

// expectSessionStored covers issueSession without a session limit.
func (fx authServiceFixtures) expectSessionStored(userID uuid.UUID, roles []string) {
	fx.tokenService.EXPECT().GenerateTokens(userID, roles).Return("access-token", "refresh-token", nil).Once()
	fx.tokenService.EXPECT().HashToken("refresh-token").Return("refresh-hash").Once()
	fx.tokenService.EXPECT().GetRefreshTokenDuration().Return(24 * time.Hour).Once()
	fx.refreshTokenRepo.EXPECT().
		CreateRefreshToken(mock.Anything, mock.MatchedBy(func(token *entity.RefreshToken) bool {
			return token.UserID == userID && token.TokenHash == "refresh-hash" && token.ExpiresAt.After(time.Now())
		})).
		Return(nil).
		Once()
}

func TestAuthService_Register_Success(t *testing.T) {
	fx := createTestAuthService(t, 0)
	ctx := context.Background()
	userID := uuid.New()

	input := &usecase.RegisterInput{
		Email:           "  New.User@Example.com ",
		Password:        "Str0ngPassword!",
		PasswordConfirm: "Str0ngPassword!",
		FullName:        "New User",
	}

	fx.hasher.EXPECT().ValidatePasswordStrength(input.Password).Return(nil)
	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)

	factory := mockRepo.NewMockRepositoryFactory(t)
	txUserRepo := mockRepo.NewMockUserRepository(t)
	txAuthRepo := mockRepo.NewMockAuthRepository(t)
	txProfileRepo := mockRepo.NewMockProfileRepository(t)
	factory.EXPECT().UserRepo().Return(txUserRepo)
	factory.EXPECT().AuthRepo().Return(txAuthRepo)
	factory.EXPECT().ProfileRepo().Return(txProfileRepo)
	expectTx(fx.txManager, factory)

	txUserRepo.EXPECT().FindByEmail(ctx, "new.user@example.com").Return(nil, repository.ErrUserNotFound)
	txUserRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(ctx context.Context, user *entity.User) {
			user.ID = userID
		}).
		Return(nil)
	txAuthRepo.EXPECT().
		CreateAuthentication(ctx, mock.MatchedBy(func(auth *entity.Authentication) bool {
			return auth.UserID == userID &&
				auth.Provider == entity.ProviderTypeEmail &&
				auth.ProviderUserID == "new.user@example.com" &&
				auth.PasswordHash == "hashed_password"
		})).
		Return(nil)
	txProfileRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(profile *entity.Profile) bool {
			return profile.UserID == userID && profile.FullName == "New User"
		})).
		Return(nil)

	fx.expectSessionStored(userID, []string{"user"})

	output, err := fx.service.Register(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, "new.user@example.com", output.User.Email)
	assert.Equal(t, "New User", output.User.FullName)
	assert.Equal(t, "access-token", output.Tokens.AccessToken)
	assert.Equal(t, "refresh-token", output.Tokens.RefreshToken)
}

func TestAuthService_Register_PasswordMismatch(t *testing.T) {
	fx := createTestAuthService(t, 0)

	fx.hasher.EXPECT().ValidatePasswordStrength("Str0ngPassword!").Return(nil)

	output, err := fx.service.Register(context.Background(), &usecase.RegisterInput{
		Email:           "user@example.com",
		Password:        "Str0ngPassword!",
		PasswordConfirm: "Different1!",
	})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))

	var verr *domainerrors.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, []string{"Password fields didn't match."}, verr.Fields()["password_confirm"])
}

func TestAuthService_Register_WeakPassword(t *testing.T) {
	fx := createTestAuthService(t, 0)

	fx.hasher.EXPECT().ValidatePasswordStrength("short").Return([]string{"This password is too short."})

	_, err := fx.service.Register(context.Background(), &usecase.RegisterInput{
		Email:           "user@example.com",
		Password:        "short",
		PasswordConfirm: "short",
	})

	var verr *domainerrors.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, []string{"This password is too short."}, verr.Fields()["password"])
	assert.NotContains(t, verr.Fields(), "password_confirm")
}

func TestAuthService_Register_EmailTaken(t *testing.T) {
	fx := createTestAuthService(t, 0)
	ctx := context.Background()

	fx.hasher.EXPECT().ValidatePasswordStrength(mock.Anything).Return(nil)
	fx.hasher.EXPECT().Hash(mock.Anything).Return("hashed_password", nil)

	factory := mockRepo.NewMockRepositoryFactory(t)
	txUserRepo := mockRepo.NewMockUserRepository(t)
	factory.EXPECT().UserRepo().Return(txUserRepo)
	expectTx(fx.txManager, factory)

	txUserRepo.EXPECT().FindByEmail(ctx, "taken@example.com").Return(&entity.User{ID: uuid.New()}, nil)

	output, err := fx.service.Register(ctx, &usecase.RegisterInput{
		Email:           "taken@example.com",
		Password:        "Str0ngPassword!",
		PasswordConfirm: "Str0ngPassword!",
	})

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrUserAlreadyExists))
}

func TestAuthService_Login(t *testing.T) {
	userID := uuid.New()
	authRecord := &entity.Authentication{UserID: userID, Provider: entity.ProviderTypeEmail, PasswordHash: "hashed"}

	t.Run("success", func(t *testing.T) {
		fx := createTestAuthService(t, 0)
		ctx := context.Background()

		fx.authRepo.EXPECT().FindAuthentication(ctx, entity.ProviderTypeEmail, "user@example.com").Return(authRecord, nil)
		fx.hasher.EXPECT().Check("Password1!", "hashed").Return(true)
		fx.userRepo.EXPECT().FindByID(ctx, userID).Return(&entity.User{ID: userID, Email: "user@example.com", IsStaff: true}, nil)
		fx.expectSessionStored(userID, []string{"user", "staff"})

		output, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "USER@example.com", Password: "Password1!"})

		require.NoError(t, err)
		assert.Equal(t, userID, output.User.ID)
		assert.Equal(t, "refresh-token", output.Tokens.RefreshToken)
	})

	t.Run("wrong password", func(t *testing.T) {
		fx := createTestAuthService(t, 0)
		ctx := context.Background()

		fx.authRepo.EXPECT().FindAuthentication(ctx, entity.ProviderTypeEmail, "user@example.com").Return(authRecord, nil)
		fx.hasher.EXPECT().Check("nope", "hashed").Return(false)

		output, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "user@example.com", Password: "nope"})

		assert.Nil(t, output)
		assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
	})

	t.Run("unknown email", func(t *testing.T) {
		fx := createTestAuthService(t, 0)
		ctx := context.Background()

		fx.authRepo.EXPECT().FindAuthentication(ctx, entity.ProviderTypeEmail, "ghost@example.com").Return(nil, repository.ErrAuthNotFound)

		_, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "ghost@example.com", Password: "whatever"})

		assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
	})
}

func TestAuthService_Login_SessionLimitExceeded(t *testing.T) {
	fx := createTestAuthService(t, 2)
	ctx := context.Background()
	userID := uuid.New()

	fx.authRepo.EXPECT().
		FindAuthentication(ctx, entity.ProviderTypeEmail, "user@example.com").
		Return(&entity.Authentication{UserID: userID, PasswordHash: "hashed"}, nil)
	fx.hasher.EXPECT().Check("Password1!", "hashed").Return(true)
	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(&entity.User{ID: userID}, nil)
	fx.tokenService.EXPECT().GenerateTokens(userID, []string{"user"}).Return("access-token", "refresh-token", nil)

	factory := mockRepo.NewMockRepositoryFactory(t)
	txUserRepo := mockRepo.NewMockUserRepository(t)
	txRefreshRepo := mockRepo.NewMockRefreshTokenRepository(t)
	factory.EXPECT().UserRepo().Return(txUserRepo)
	factory.EXPECT().RefreshTokenRepo().Return(txRefreshRepo)
	expectTx(fx.txManager, factory)

	txUserRepo.EXPECT().LockByID(ctx, userID).Return(nil)
	txRefreshRepo.EXPECT().CountActiveSessionsByUserID(ctx, userID).Return(2, nil)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "user@example.com", Password: "Password1!"})

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrSessionLimitExceeded))
}

func TestAuthService_RefreshToken_Rotates(t *testing.T) {
	fx := createTestAuthService(t, 0)
	ctx := context.Background()
	userID := uuid.New()

	fx.tokenService.EXPECT().ValidateToken("old-refresh").
		Return(&service.Claims{UserID: userID, Type: service.TokenTypeRefresh}, nil)

	factory := mockRepo.NewMockRepositoryFactory(t)
	txUserRepo := mockRepo.NewMockUserRepository(t)
	txRefreshRepo := mockRepo.NewMockRefreshTokenRepository(t)
	factory.EXPECT().UserRepo().Return(txUserRepo)
	factory.EXPECT().RefreshTokenRepo().Return(txRefreshRepo)
	expectTx(fx.txManager, factory)

	fx.tokenService.EXPECT().HashToken("old-refresh").Return("old-hash")
	txRefreshRepo.EXPECT().FindRefreshTokenByHash(ctx, "old-hash").
		Return(&entity.RefreshToken{UserID: userID, TokenHash: "old-hash"}, nil)
	txRefreshRepo.EXPECT().DeleteRefreshTokenByHash(ctx, "old-hash").Return(nil)
	txUserRepo.EXPECT().FindByID(ctx, userID).Return(&entity.User{ID: userID}, nil)
	fx.tokenService.EXPECT().GenerateTokens(userID, []string{"user"}).Return("new-access", "new-refresh", nil)
	fx.tokenService.EXPECT().HashToken("new-refresh").Return("new-hash")
	fx.tokenService.EXPECT().GetRefreshTokenDuration().Return(time.Hour)
	txRefreshRepo.EXPECT().
		CreateRefreshToken(ctx, mock.MatchedBy(func(token *entity.RefreshToken) bool {
			return token.TokenHash == "new-hash" && token.UserID == userID
		})).
		Return(nil)

	pair, err := fx.service.RefreshToken(ctx, "old-refresh")

	require.NoError(t, err)
	assert.Equal(t, "new-access", pair.AccessToken)
	assert.Equal(t, "new-refresh", pair.RefreshToken)
}

func TestAuthService_RefreshToken_Reused(t *testing.T) {
	fx := createTestAuthService(t, 0)
	ctx := context.Background()
	userID := uuid.New()

	fx.tokenService.EXPECT().ValidateToken("used-refresh").
		Return(&service.Claims{UserID: userID, Type: service.TokenTypeRefresh}, nil)

	factory := mockRepo.NewMockRepositoryFactory(t)
	txRefreshRepo := mockRepo.NewMockRefreshTokenRepository(t)
	factory.EXPECT().RefreshTokenRepo().Return(txRefreshRepo)
	expectTx(fx.txManager, factory)

	fx.tokenService.EXPECT().HashToken("used-refresh").Return("used-hash")
	txRefreshRepo.EXPECT().FindRefreshTokenByHash(ctx, "used-hash").Return(nil, repository.ErrRefreshTokenNotFound)

	pair, err := fx.service.RefreshToken(ctx, "used-refresh")

	assert.Nil(t, pair)
	assert.True(t, errors.Is(err, domainerrors.ErrRefreshTokenInvalid))
}

func TestAuthService_RefreshToken_RejectsAccessToken(t *testing.T) {
	fx := createTestAuthService(t, 0)

	fx.tokenService.EXPECT().ValidateToken("access").
		Return(&service.Claims{UserID: uuid.New(), Type: service.TokenTypeAccess}, nil)

	_, err := fx.service.RefreshToken(context.Background(), "access")

	assert.True(t, errors.Is(err, domainerrors.ErrRefreshTokenInvalid))
}

func TestAuthService_Logout(t *testing.T) {
	userID := uuid.New()

	t.Run("deletes the session", func(t *testing.T) {
		fx := createTestAuthService(t, 0)
		ctx := context.Background()

		fx.tokenService.EXPECT().ValidateToken("refresh").
			Return(&service.Claims{UserID: userID, Type: service.TokenTypeRefresh}, nil)
		fx.tokenService.EXPECT().HashToken("refresh").Return("hash")
		fx.refreshTokenRepo.EXPECT().DeleteRefreshTokenByHash(ctx, "hash").Return(nil)

		assert.NoError(t, fx.service.Logout(ctx, userID, "refresh"))
	})

	t.Run("token of another user", func(t *testing.T) {
		fx := createTestAuthService(t, 0)

		fx.tokenService.EXPECT().ValidateToken("refresh").
			Return(&service.Claims{UserID: uuid.New(), Type: service.TokenTypeRefresh}, nil)

		err := fx.service.Logout(context.Background(), userID, "refresh")

		assert.True(t, errors.Is(err, domainerrors.ErrLogoutTokenInvalid))
	})

	t.Run("already revoked", func(t *testing.T) {
		fx := createTestAuthService(t, 0)
		ctx := context.Background()

		fx.tokenService.EXPECT().ValidateToken("refresh").
			Return(&service.Claims{UserID: userID, Type: service.TokenTypeRefresh}, nil)
		fx.tokenService.EXPECT().HashToken("refresh").Return("hash")
		fx.refreshTokenRepo.EXPECT().DeleteRefreshTokenByHash(ctx, "hash").Return(repository.ErrRefreshTokenNotFound)

		err := fx.service.Logout(ctx, userID, "refresh")

		assert.True(t, errors.Is(err, domainerrors.ErrLogoutTokenInvalid))
	})
}

func TestAuthService_OAuthLogin_CreatesUser(t *testing.T) {
	fx := createTestAuthService(t, 0)
	ctx := context.Background()
	userID := uuid.New()

	fx.google.EXPECT().
		FetchUser(ctx, service.OAuthCredential{AccessToken: "google-token"}).
		Return(&service.OAuthUser{
			ID:            "google-123",
			Email:         "Jane@Example.com",
			Name:          "Jane",
			Provider:      entity.ProviderTypeGoogle,
			AvatarURL:     "https://example.com/jane.png",
			EmailVerified: true,
		}, nil)

	factory := mockRepo.NewMockRepositoryFactory(t)
	txUserRepo := mockRepo.NewMockUserRepository(t)
	txAuthRepo := mockRepo.NewMockAuthRepository(t)
	txProfileRepo := mockRepo.NewMockProfileRepository(t)
	factory.EXPECT().UserRepo().Return(txUserRepo)
	factory.EXPECT().AuthRepo().Return(txAuthRepo)
	factory.EXPECT().ProfileRepo().Return(txProfileRepo)
	expectTx(fx.txManager, factory)

	txAuthRepo.EXPECT().FindAuthentication(ctx, entity.ProviderTypeGoogle, "google-123").Return(nil, repository.ErrAuthNotFound)
	txUserRepo.EXPECT().FindByEmail(ctx, "jane@example.com").Return(nil, repository.ErrUserNotFound)
	txUserRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(user *entity.User) bool {
			return user.Email == "jane@example.com" && user.EmailConfirmed && user.AvatarURL == "https://example.com/jane.png"
		})).
		Run(func(ctx context.Context, user *entity.User) {
			user.ID = userID
		}).
		Return(nil)
	txAuthRepo.EXPECT().
		CreateAuthentication(ctx, mock.MatchedBy(func(auth *entity.Authentication) bool {
			return auth.Provider == entity.ProviderTypeGoogle && auth.ProviderUserID == "google-123" && auth.UserID == userID
		})).
		Return(nil)
	txProfileRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Profile")).Return(nil)

	fx.expectSessionStored(userID, []string{"user"})

	output, err := fx.service.OAuthLogin(ctx, &usecase.OAuthLoginInput{
		Provider:    entity.ProviderTypeGoogle,
		AccessToken: "google-token",
	})

	require.NoError(t, err)
	assert.Equal(t, userID, output.User.ID)
	assert.Equal(t, "Jane", output.User.FullName)
}

func TestAuthService_OAuthLogin_LinksExistingEmailUser(t *testing.T) {
	fx := createTestAuthService(t, 0)
	ctx := context.Background()
	existing := &entity.User{ID: uuid.New(), Email: "jane@example.com", FullName: "Old Name"}

	fx.facebook.EXPECT().
		FetchUser(ctx, service.OAuthCredential{AccessToken: "fb-token"}).
		Return(&service.OAuthUser{
			ID:            "fb-9",
			Email:         "jane@example.com",
			Name:          "Jane FB",
			Provider:      entity.ProviderTypeFacebook,
			EmailVerified: true,
		}, nil)

	factory := mockRepo.NewMockRepositoryFactory(t)
	txUserRepo := mockRepo.NewMockUserRepository(t)
	txAuthRepo := mockRepo.NewMockAuthRepository(t)
	factory.EXPECT().UserRepo().Return(txUserRepo)
	factory.EXPECT().AuthRepo().Return(txAuthRepo)
	expectTx(fx.txManager, factory)

	txAuthRepo.EXPECT().FindAuthentication(ctx, entity.ProviderTypeFacebook, "fb-9").Return(nil, repository.ErrAuthNotFound)
	txUserRepo.EXPECT().FindByEmail(ctx, "jane@example.com").Return(existing, nil)
	txUserRepo.EXPECT().
		Update(ctx, mock.MatchedBy(func(user *entity.User) bool {
			return user.FullName == "Jane FB" && user.EmailConfirmed
		})).
		Return(nil)
	txAuthRepo.EXPECT().FindByUserID(ctx, existing.ID).
		Return([]*entity.Authentication{{UserID: existing.ID, Provider: entity.ProviderTypeEmail}}, nil)
	txAuthRepo.EXPECT().
		CreateAuthentication(ctx, mock.MatchedBy(func(auth *entity.Authentication) bool {
			return auth.Provider == entity.ProviderTypeFacebook && auth.UserID == existing.ID
		})).
		Return(nil)

	fx.expectSessionStored(existing.ID, []string{"user"})

	output, err := fx.service.OAuthLogin(ctx, &usecase.OAuthLoginInput{
		Provider:    entity.ProviderTypeFacebook,
		AccessToken: "fb-token",
	})

	require.NoError(t, err)
	assert.Equal(t, existing.ID, output.User.ID)
}

func TestAuthService_OAuthLogin_Errors(t *testing.T) {
	tests := []struct {
		name     string
		provider entity.ProviderType
		fetchErr error
		want     error
	}{
		{"apple is not implemented", entity.ProviderTypeApple, nil, domainerrors.ErrOAuthProviderNotImplemented},
		{"unknown provider", entity.ProviderType("github"), nil, domainerrors.ErrValidationFailed},
		{"google token rejected", entity.ProviderTypeGoogle, service.ErrOAuthTokenInvalid, domainerrors.ErrGoogleTokenInvalid},
		{"facebook email missing", entity.ProviderTypeFacebook, service.ErrOAuthEmailMissing, domainerrors.ErrFacebookEmailMissing},
		{"provider outage", entity.ProviderTypeGoogle, errors.New("connection reset"), domainerrors.ErrInternalError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestAuthService(t, 0)
			ctx := context.Background()

			switch tt.provider {
			case entity.ProviderTypeGoogle:
				fx.google.EXPECT().FetchUser(ctx, mock.Anything).Return(nil, errors.Wrap(tt.fetchErr, "fetch"))
			case entity.ProviderTypeFacebook:
				fx.facebook.EXPECT().FetchUser(ctx, mock.Anything).Return(nil, errors.Wrap(tt.fetchErr, "fetch"))
			}

			output, err := fx.service.OAuthLogin(ctx, &usecase.OAuthLoginInput{Provider: tt.provider, AccessToken: "token"})

			assert.Nil(t, output)
			assert.True(t, errors.Is(err, tt.want), "got %v", err)
		})
	}
}

func TestAuthService_CurrentUser_NotFound(t *testing.T) {
	fx := createTestAuthService(t, 0)
	userID := uuid.New()

	fx.userRepo.EXPECT().FindByID(mock.Anything, userID).Return(nil, repository.ErrUserNotFound)

	_, err := fx.service.CurrentUser(context.Background(), userID)

	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}

func TestAuthService_ResolveExternalUser(t *testing.T) {
	identity := &service.ExternalIdentity{Subject: "ext|42", Email: "Ext@Example.com", Name: "Ext User"}

	t.Run("linked subject", func(t *testing.T) {
		fx := createTestAuthService(t, 0)
		user := &entity.User{ID: uuid.New(), Email: "ext@example.com"}

		fx.authRepo.EXPECT().FindAuthentication(mock.Anything, entity.ProviderTypeExternal, "ext|42").
			Return(&entity.Authentication{UserID: user.ID}, nil)
		fx.userRepo.EXPECT().FindByID(mock.Anything, user.ID).Return(user, nil)

		got, err := fx.service.ResolveExternalUser(context.Background(), identity)

		require.NoError(t, err)
		assert.Same(t, user, got)
	})

	t.Run("unverified email does not take over an existing account", func(t *testing.T) {
		fx := createTestAuthService(t, 0)
		staff := &entity.User{ID: uuid.New(), Email: "ext@example.com", IsStaff: true}

		fx.authRepo.EXPECT().FindAuthentication(mock.Anything, entity.ProviderTypeExternal, "ext|42").
			Return(nil, repository.ErrAuthNotFound)
		fx.userRepo.EXPECT().FindByEmail(mock.Anything, "ext@example.com").Return(staff, nil)

		got, err := fx.service.ResolveExternalUser(context.Background(), identity)

		assert.Nil(t, got)
		assert.ErrorIs(t, err, domainerrors.ErrExternalEmailUnverified)
	})

	t.Run("verified email links the existing account", func(t *testing.T) {
		fx := createTestAuthService(t, 0)
		user := &entity.User{ID: uuid.New(), Email: "ext@example.com"}
		verified := *identity
		verified.EmailVerified = true

		fx.authRepo.EXPECT().FindAuthentication(mock.Anything, entity.ProviderTypeExternal, "ext|42").
			Return(nil, repository.ErrAuthNotFound)
		fx.userRepo.EXPECT().FindByEmail(mock.Anything, "ext@example.com").Return(user, nil)
		fx.authRepo.EXPECT().
			CreateAuthentication(mock.Anything, mock.MatchedBy(func(auth *entity.Authentication) bool {
				return auth.UserID == user.ID && auth.Provider == entity.ProviderTypeExternal && auth.ProviderUserID == "ext|42"
			})).
			Return(nil)

		got, err := fx.service.ResolveExternalUser(context.Background(), &verified)

		require.NoError(t, err)
		assert.Same(t, user, got)
	})

	t.Run("first sight creates the user", func(t *testing.T) {
		fx := createTestAuthService(t, 0)
		ctx := context.Background()
		userID := uuid.New()

		fx.authRepo.EXPECT().FindAuthentication(ctx, entity.ProviderTypeExternal, "ext|42").
			Return(nil, repository.ErrAuthNotFound)
		fx.userRepo.EXPECT().FindByEmail(ctx, "ext@example.com").Return(nil, repository.ErrUserNotFound)

		factory := mockRepo.NewMockRepositoryFactory(t)
		txUserRepo := mockRepo.NewMockUserRepository(t)
		txAuthRepo := mockRepo.NewMockAuthRepository(t)
		txProfileRepo := mockRepo.NewMockProfileRepository(t)
		factory.EXPECT().UserRepo().Return(txUserRepo)
		factory.EXPECT().AuthRepo().Return(txAuthRepo)
		factory.EXPECT().ProfileRepo().Return(txProfileRepo)
		expectTx(fx.txManager, factory)

		txUserRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.User")).
			Run(func(ctx context.Context, user *entity.User) {
				user.ID = userID
			}).
			Return(nil)
		txAuthRepo.EXPECT().
			CreateAuthentication(ctx, mock.MatchedBy(func(auth *entity.Authentication) bool {
				return auth.Provider == entity.ProviderTypeExternal && auth.ProviderUserID == "ext|42"
			})).
			Return(nil)
		txProfileRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Profile")).Return(nil)

		got, err := fx.service.ResolveExternalUser(ctx, identity)

		require.NoError(t, err)
		assert.Equal(t, userID, got.ID)
		assert.Equal(t, "Ext User", got.FullName)
		assert.False(t, got.EmailConfirmed)
	})
}
