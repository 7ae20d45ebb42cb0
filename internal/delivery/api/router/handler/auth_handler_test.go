package handler

import (
	"net/http"
	"testing"
	"time"

	"syncfloww/internal/domain/entity"
	domainerrors "syncfloww/internal/domain/errors"
	mockusecase "syncfloww/internal/mocks/usecase"
	"syncfloww/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newAuthTestServer(t *testing.T, userID uuid.UUID) (*echo.Echo, *mockusecase.MockAuthUsecase) {
	authUC := mockusecase.NewMockAuthUsecase(t)
	h := NewAuthHandler(AuthHandlerParams{AuthUC: authUC, Logger: testLogger})

	e := newTestEcho()
	g := e.Group("/api/users/auth")
	g.POST("/register", h.Register)
	g.POST("/login", h.Login)
	g.POST("/refresh", h.RefreshToken)
	g.POST("/logout", h.Logout, asUser(userID))
	g.POST("/google", h.Google)
	g.POST("/facebook", h.Facebook)
	g.POST("/apple", h.Apple)
	e.GET("/api/users/me/account", h.Me, asUser(userID))

	return e, authUC
}

func TestAuthHandler_Register(t *testing.T) {
	user := &entity.User{ID: uuid.New(), Email: "ana@example.com", FullName: "Ana", CreatedAt: time.Now()}

	t.Run("created", func(t *testing.T) {
		e, authUC := newAuthTestServer(t, uuid.New())
		authUC.EXPECT().Register(mock.Anything, &usecase.RegisterInput{
			Email:           "ana@example.com",
			Password:        "Secret123!",
			PasswordConfirm: "Secret123!",
			FullName:        "Ana",
		}).Return(&usecase.AuthOutput{User: user, Tokens: usecase.TokenPair{AccessToken: "a", RefreshToken: "r"}}, nil)

		rec := doRequest(e, http.MethodPost, "/api/users/auth/register/",
			`{"email":"ana@example.com","password":"Secret123!","password_confirm":"Secret123!","full_name":"Ana"}`)

		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
		assert.JSONEq(t, `{"access":"a","refresh":"r"}`, extractJSON(t, rec, "tokens"))
	})

	t.Run("invalid email", func(t *testing.T) {
		e, _ := newAuthTestServer(t, uuid.New())

		rec := doRequest(e, http.MethodPost, "/api/users/auth/register",
			`{"email":"nope","password":"x","password_confirm":"x"}`)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		env := decodeEnvelope(t, rec)
		assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
		assert.Equal(t, []string{"Enter a valid email address."}, fieldDetails(t, env)["email"])
	})

	t.Run("email taken", func(t *testing.T) {
		e, authUC := newAuthTestServer(t, uuid.New())
		authUC.EXPECT().Register(mock.Anything, mock.Anything).Return(nil, domainerrors.ErrUserAlreadyExists)

		rec := doRequest(e, http.MethodPost, "/api/users/auth/register",
			`{"email":"ana@example.com","password":"x","password_confirm":"x"}`)

		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("malformed body", func(t *testing.T) {
		e, _ := newAuthTestServer(t, uuid.New())

		rec := doRequest(e, http.MethodPost, "/api/users/auth/register", `{"email":`)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "INVALID_INPUT", decodeEnvelope(t, rec).Error.Code)
	})
}

func TestAuthHandler_Login(t *testing.T) {
	e, authUC := newAuthTestServer(t, uuid.New())
	authUC.EXPECT().Login(mock.Anything, &usecase.LoginInput{Email: "ana@example.com", Password: "bad"}).
		Return(nil, domainerrors.ErrInvalidCredentials)

	rec := doRequest(e, http.MethodPost, "/api/users/auth/login", `{"email":"ana@example.com","password":"bad"}`)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.Equal(t, "Invalid credentials", env.Error.Message)
	assert.Nil(t, env.Error.Details)
}

func TestAuthHandler_RefreshAndLogout(t *testing.T) {
	userID := uuid.New()

	t.Run("refresh returns the new pair", func(t *testing.T) {
		e, authUC := newAuthTestServer(t, userID)
		authUC.EXPECT().RefreshToken(mock.Anything, "old").
			Return(&usecase.TokenPair{AccessToken: "a2", RefreshToken: "r2"}, nil)

		rec := doRequest(e, http.MethodPost, "/api/users/auth/refresh", `{"refresh":"old"}`)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"access":"a2","refresh":"r2"}`, string(decodeEnvelope(t, rec).Data))
	})

	t.Run("logout", func(t *testing.T) {
		e, authUC := newAuthTestServer(t, userID)
		authUC.EXPECT().Logout(mock.Anything, userID, "r").Return(nil)

		rec := doRequest(e, http.MethodPost, "/api/users/auth/logout", `{"refresh":"r"}`)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"message":"Successfully logged out"}`, string(decodeEnvelope(t, rec).Data))
	})

	t.Run("logout with unknown token", func(t *testing.T) {
		e, authUC := newAuthTestServer(t, userID)
		authUC.EXPECT().Logout(mock.Anything, userID, "r").Return(domainerrors.ErrLogoutTokenInvalid)

		rec := doRequest(e, http.MethodPost, "/api/users/auth/logout", `{"refresh":"r"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestAuthHandler_OAuth(t *testing.T) {
	user := &entity.User{ID: uuid.New(), Email: "ana@example.com"}
	out := &usecase.AuthOutput{User: user, Tokens: usecase.TokenPair{AccessToken: "a", RefreshToken: "r"}}

	t.Run("google id token", func(t *testing.T) {
		e, authUC := newAuthTestServer(t, uuid.New())
		authUC.EXPECT().OAuthLogin(mock.Anything, &usecase.OAuthLoginInput{
			Provider: entity.ProviderTypeGoogle,
			IDToken:  "idt",
		}).Return(out, nil)

		rec := doRequest(e, http.MethodPost, "/api/users/auth/google", `{"id_token":"idt"}`)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("facebook ignores id tokens", func(t *testing.T) {
		e, _ := newAuthTestServer(t, uuid.New())

		rec := doRequest(e, http.MethodPost, "/api/users/auth/facebook", `{"id_token":"idt"}`)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, fieldDetails(t, decodeEnvelope(t, rec)), "access_token")
	})

	t.Run("facebook token rejected", func(t *testing.T) {
		e, authUC := newAuthTestServer(t, uuid.New())
		authUC.EXPECT().OAuthLogin(mock.Anything, &usecase.OAuthLoginInput{
			Provider:    entity.ProviderTypeFacebook,
			AccessToken: "bad",
		}).Return(nil, domainerrors.ErrFacebookTokenInvalid)

		rec := doRequest(e, http.MethodPost, "/api/users/auth/facebook", `{"access_token":"bad"}`)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Invalid Facebook token", decodeEnvelope(t, rec).Error.Message)
	})

	t.Run("apple is not implemented", func(t *testing.T) {
		e, _ := newAuthTestServer(t, uuid.New())

		rec := doRequest(e, http.MethodPost, "/api/users/auth/apple", `{}`)

		require.Equal(t, http.StatusNotImplemented, rec.Code)
		assert.Equal(t, "Apple OAuth not fully implemented", decodeEnvelope(t, rec).Error.Message)
	})
}

func TestAuthHandler_Me(t *testing.T) {
	userID := uuid.New()
	e, authUC := newAuthTestServer(t, userID)
	authUC.EXPECT().CurrentUser(mock.Anything, userID).Return(&entity.User{ID: userID, Email: "ana@example.com"}, nil)

	rec := doRequest(e, http.MethodGet, "/api/users/me/account", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, string(decodeEnvelope(t, rec).Data), `"email":"ana@example.com"`)
}
