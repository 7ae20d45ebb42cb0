package middleware

import (
	"log/slog"
	"slices"
	"strings"

	"syncfloww/internal/delivery/api/response"
	deliverycontext "syncfloww/internal/delivery/context"
	"syncfloww/internal/domain/entity"
	"syncfloww/internal/domain/service"
	"syncfloww/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const (
	contextKeyUserID = "userID"
	contextKeyRoles  = "roles"

	codeUnauthorized = "UNAUTHORIZED"
)

// AuthMiddlewareParams holds dependencies for AuthMiddleware, injected by Fx.
type AuthMiddlewareParams struct {
	fx.In

	TokenSvc service.TokenService
	// Verifier is nil unless externalAuth is configured.
	Verifier service.ExternalTokenVerifier `optional:"true"`
	AuthUC   usecase.AuthUsecase
	Logger   *slog.Logger
}

// AuthMiddleware authenticates bearer tokens and authorizes roles.
type AuthMiddleware struct {
	tokenSvc service.TokenService
	verifier service.ExternalTokenVerifier
	authUC   usecase.AuthUsecase
	logger   *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(params AuthMiddlewareParams) *AuthMiddleware {
	return &AuthMiddleware{
		tokenSvc: params.TokenSvc,
		verifier: params.Verifier,
		authUC:   params.AuthUC,
		logger:   params.Logger,
	}
}

// Authenticate accepts our own access tokens and, when configured, third-party JWTs.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return response.Unauthorized(c, codeUnauthorized, "Authentication credentials were not provided.")
		}

		tokenString, found := strings.CutPrefix(authHeader, "Bearer ")
		if !found || tokenString == "" {
			return response.Unauthorized(c, codeUnauthorized, "Invalid token format, must be Bearer token")
		}

		if claims, err := m.tokenSvc.ValidateToken(tokenString); err == nil && claims.Type == service.TokenTypeAccess {
			SetIdentity(c, claims.UserID, claims.Roles)

			return next(c)
		}

		if m.verifier == nil {
			return response.Unauthorized(c, codeUnauthorized, "Given token not valid for any token type")
		}

		ctx := c.Request().Context()
		identity, err := m.verifier.Verify(ctx, tokenString)
		if err != nil {
			deliverycontext.GetLoggerOrDefault(ctx, m.logger).Debug("External token rejected", slog.Any("error", err))

			return response.Unauthorized(c, codeUnauthorized, "Given token not valid for any token type")
		}

		user, err := m.authUC.ResolveExternalUser(ctx, identity)
		if err != nil {
			return response.HandleAppError(c, err)
		}
		SetIdentity(c, user.ID, user.Roles().ToStrings())

		return next(c)
	}
}

// RequireRole must be used after Authenticate.
func (m *AuthMiddleware) RequireRole(requiredRole entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			roles, ok := GetRoles(c)
			if !ok || !slices.Contains(roles, requiredRole.String()) {
				return response.Forbidden(c, "FORBIDDEN", "You do not have permission to perform this action.")
			}

			return next(c)
		}
	}
}

// SetIdentity records the authenticated user on the request.
func SetIdentity(c echo.Context, userID uuid.UUID, roles []string) {
	c.Set(contextKeyUserID, userID)
	c.Set(contextKeyRoles, roles)
}

// GetUserID returns the authenticated user id.
func GetUserID(c echo.Context) (uuid.UUID, bool) {
	userID, ok := c.Get(contextKeyUserID).(uuid.UUID)

	return userID, ok && userID != uuid.Nil
}

// GetRoles returns the authenticated user's roles.
func GetRoles(c echo.Context) ([]string, bool) {
	roles, ok := c.Get(contextKeyRoles).([]string)

	return roles, ok
}

// IsStaff reports whether the authenticated user carries the staff role.
func IsStaff(c echo.Context) bool {
	roles, _ := GetRoles(c)

	return slices.Contains(roles, entity.RoleStaff.String())
}
