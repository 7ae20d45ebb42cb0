package handler

import (
	"log/slog"
	"net/http"
	"time"

	"syncfloww/internal/delivery/api/response"
	"syncfloww/internal/domain/entity"
	domainerrors "syncfloww/internal/domain/errors"
	"syncfloww/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AuthHandlerParams holds dependencies for AuthHandler, injected by Fx.
type AuthHandlerParams struct {
	fx.In

	AuthUC usecase.AuthUsecase
	Logger *slog.Logger
}

// AuthHandler serves registration, login, session and OAuth endpoints.
type AuthHandler struct {
	authUC usecase.AuthUsecase
	logger *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler
func NewAuthHandler(params AuthHandlerParams) *AuthHandler {
	return &AuthHandler{
		authUC: params.AuthUC,
		logger: params.Logger,
	}
}

type RegisterRequest struct {
	Email           string `json:"email" validate:"required,email,max=254"`
	Password        string `json:"password" validate:"required"`
	PasswordConfirm string `json:"password_confirm" validate:"required"`
	FullName        string `json:"full_name" validate:"max=255"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type RefreshRequest struct {
	Refresh string `json:"refresh" validate:"required"`
}

type OAuthRequest struct {
	AccessToken string `json:"access_token"`
	IDToken     string `json:"id_token"`
}

type UserResponse struct {
	ID             uuid.UUID `json:"id"`
	Email          string    `json:"email"`
	FullName       string    `json:"full_name"`
	AvatarURL      string    `json:"avatar_url"`
	IsStaff        bool      `json:"is_staff"`
	EmailConfirmed bool      `json:"email_confirmed"`
	CreatedAt      time.Time `json:"created_at"`
}

type TokensResponse struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

type AuthResponse struct {
	User   UserResponse   `json:"user"`
	Tokens TokensResponse `json:"tokens"`
}

func toUserResponse(u *entity.User) UserResponse {
	return UserResponse{
		ID:             u.ID,
		Email:          u.Email,
		FullName:       u.FullName,
		AvatarURL:      u.AvatarURL,
		IsStaff:        u.IsStaff,
		EmailConfirmed: u.EmailConfirmed,
		CreatedAt:      u.CreatedAt,
	}
}

func toAuthResponse(out *usecase.AuthOutput) AuthResponse {
	return AuthResponse{
		User: toUserResponse(out.User),
		Tokens: TokensResponse{
			Access:  out.Tokens.AccessToken,
			Refresh: out.Tokens.RefreshToken,
		},
	}
}

// Register creates an email account and signs it in.
func (h *AuthHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	out, err := h.authUC.Register(c.Request().Context(), &usecase.RegisterInput{
		Email:           req.Email,
		Password:        req.Password,
		PasswordConfirm: req.PasswordConfirm,
		FullName:        req.FullName,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, toAuthResponse(out))
}

func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	out, err := h.authUC.Login(c.Request().Context(), &usecase.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toAuthResponse(out))
}

// RefreshToken rotates the session behind the presented refresh token.
func (h *AuthHandler) RefreshToken(c echo.Context) error {
	var req RefreshRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	pair, err := h.authUC.RefreshToken(c.Request().Context(), req.Refresh)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, TokensResponse{Access: pair.AccessToken, Refresh: pair.RefreshToken})
}

func (h *AuthHandler) Logout(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req RefreshRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.authUC.Logout(c.Request().Context(), userID, req.Refresh); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Successfully logged out"})
}

func (h *AuthHandler) Google(c echo.Context) error {
	return h.oauthLogin(c, entity.ProviderTypeGoogle, true)
}

func (h *AuthHandler) Facebook(c echo.Context) error {
	return h.oauthLogin(c, entity.ProviderTypeFacebook, false)
}

// Apple is accepted on the route but not implemented.
func (h *AuthHandler) Apple(c echo.Context) error {
	return response.HandleAppError(c, domainerrors.ErrOAuthProviderNotImplemented)
}

func (h *AuthHandler) oauthLogin(c echo.Context, provider entity.ProviderType, allowIDToken bool) error {
	var req OAuthRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}
	if !allowIDToken {
		req.IDToken = ""
	}
	if req.AccessToken == "" && req.IDToken == "" {
		return response.HandleAppError(c, domainerrors.NewFieldError("access_token", "This field is required."))
	}

	out, err := h.authUC.OAuthLogin(c.Request().Context(), &usecase.OAuthLoginInput{
		Provider:    provider,
		AccessToken: req.AccessToken,
		IDToken:     req.IDToken,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toAuthResponse(out))
}

// Me returns the authenticated account.
func (h *AuthHandler) Me(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	user, err := h.authUC.CurrentUser(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toUserResponse(user))
}
