package handler

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"syncfloww/internal/delivery/api/response"
	"syncfloww/internal/domain/entity"
	domainerrors "syncfloww/internal/domain/errors"
	"syncfloww/internal/domain/repository"
	"syncfloww/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type SocialHandlerParams struct {
	fx.In

	SocialUC    usecase.SocialUsecase
	AnalyticsUC usecase.AnalyticsUsecase
	Logger      *slog.Logger
}

// SocialHandler serves connected social accounts and their daily analytics.
type SocialHandler struct {
	socialUC    usecase.SocialUsecase
	analyticsUC usecase.AnalyticsUsecase
	logger      *slog.Logger
}

func NewSocialHandler(params SocialHandlerParams) *SocialHandler {
	return &SocialHandler{
		socialUC:    params.SocialUC,
		analyticsUC: params.AnalyticsUC,
		logger:      params.Logger,
	}
}

type ListSocialAccountsQuery struct {
	Platform string `query:"platform" validate:"omitempty,oneof=tiktok instagram youtube twitter facebook"`
}

// CreateSocialAccountRequest registers an account connected outside the service.
type CreateSocialAccountRequest struct {
	Platform        string     `json:"platform" validate:"required,oneof=tiktok instagram youtube twitter facebook"`
	AccountID       string     `json:"account_id" validate:"required,max=255"`
	Username        string     `json:"username" validate:"max=255"`
	DisplayName     string     `json:"display_name" validate:"max=255"`
	ProfileImageURL string     `json:"profile_image_url"`
	Brand           *uuid.UUID `json:"brand"`
	AccessToken     string     `json:"access_token"`
	RefreshToken    string     `json:"refresh_token"`
	TokenExpiresAt  *time.Time `json:"token_expires_at"`
	IsActive        *bool      `json:"is_active"`
}

// UpdateSocialAccountRequest sets "brand" to null to unassign the account.
type UpdateSocialAccountRequest struct {
	Brand    NullableUUID `json:"brand"`
	IsActive *bool        `json:"is_active"`
}

// AnalyticsRequest is the metrics vector of one day. Absent metrics are stored as 0.
type AnalyticsRequest struct {
	Followers     int64 `json:"followers"`
	Following     int64 `json:"following"`
	Likes         int64 `json:"likes"`
	Comments      int64 `json:"comments"`
	Shares        int64 `json:"shares"`
	Impressions   int64 `json:"impressions"`
	Reach         int64 `json:"reach"`
	ProfileViews  int64 `json:"profile_views"`
	WebsiteClicks int64 `json:"website_clicks"`
}

// SocialAccountResponse never carries the platform tokens.
type SocialAccountResponse struct {
	ID              uuid.UUID  `json:"id"`
	Platform        string     `json:"platform"`
	AccountID       string     `json:"account_id"`
	Username        string     `json:"username"`
	DisplayName     string     `json:"display_name"`
	ProfileImageURL string     `json:"profile_image_url"`
	Brand           *uuid.UUID `json:"brand"`
	BrandName       *string    `json:"brand_name"`
	IsActive        bool       `json:"is_active"`
	TokenExpiresAt  *time.Time `json:"token_expires_at"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

type ConnectResponse struct {
	Status   string `json:"status"`
	Platform string `json:"platform"`
	URL      string `json:"url"`
}

type AnalyticsResponse struct {
	ID            uuid.UUID `json:"id"`
	SocialAccount uuid.UUID `json:"social_account"`
	Date          string    `json:"date"`
	Followers     int64     `json:"followers"`
	Following     int64     `json:"following"`
	Likes         int64     `json:"likes"`
	Comments      int64     `json:"comments"`
	Shares        int64     `json:"shares"`
	Impressions   int64     `json:"impressions"`
	Reach         int64     `json:"reach"`
	ProfileViews  int64     `json:"profile_views"`
	WebsiteClicks int64     `json:"website_clicks"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func toSocialAccountResponse(a *entity.SocialAccount) SocialAccountResponse {
	resp := SocialAccountResponse{
		ID:              a.ID,
		Platform:        string(a.Platform),
		AccountID:       a.AccountID,
		Username:        a.Username,
		DisplayName:     a.DisplayName,
		ProfileImageURL: a.ProfileImageURL,
		Brand:           a.BrandID,
		IsActive:        a.IsActive,
		TokenExpiresAt:  a.TokenExpiresAt,
		CreatedAt:       a.CreatedAt,
		UpdatedAt:       a.UpdatedAt,
	}
	if a.BrandID != nil {
		name := a.BrandName
		resp.BrandName = &name
	}

	return resp
}

func toAnalyticsResponse(d *entity.AnalyticsData) AnalyticsResponse {
	return AnalyticsResponse{
		ID:            d.ID,
		SocialAccount: d.SocialAccountID,
		Date:          d.Date.Format(entity.DateLayout),
		Followers:     d.Followers,
		Following:     d.Following,
		Likes:         d.Likes,
		Comments:      d.Comments,
		Shares:        d.Shares,
		Impressions:   d.Impressions,
		Reach:         d.Reach,
		ProfileViews:  d.ProfileViews,
		WebsiteClicks: d.WebsiteClicks,
		CreatedAt:     d.CreatedAt,
		UpdatedAt:     d.UpdatedAt,
	}
}

func (h *SocialHandler) ListAccounts(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	page, err := pageRequest(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	brandID, err := optionalUUIDQuery(c, "brand")
	if err != nil {
		return response.HandleAppError(c, err)
	}
	var q ListSocialAccountsQuery
	if err := bindAndValidate(c, &q); err != nil {
		return response.HandleAppError(c, err)
	}

	accounts, err := h.socialUC.ListAccounts(c.Request().Context(), repository.SocialAccountFilter{
		UserID:   userID,
		Platform: entity.Platform(q.Platform),
		BrandID:  brandID,
		Page:     page,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Paginated(c, accounts, toSocialAccountResponse)
}

func (h *SocialHandler) CreateAccount(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	var req CreateSocialAccountRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	account, err := h.socialUC.CreateAccount(c.Request().Context(), userID, &usecase.CreateSocialAccountInput{
		Platform:        req.Platform,
		AccountID:       req.AccountID,
		Username:        req.Username,
		DisplayName:     req.DisplayName,
		ProfileImageURL: req.ProfileImageURL,
		BrandID:         req.Brand,
		AccessToken:     req.AccessToken,
		RefreshToken:    req.RefreshToken,
		TokenExpiresAt:  req.TokenExpiresAt,
		IsActive:        req.IsActive,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, toSocialAccountResponse(account))
}

func (h *SocialHandler) GetAccount(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	id, err := pathID(c, "id", domainerrors.ErrSocialAccountNotFound)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	account, err := h.socialUC.GetAccount(c.Request().Context(), userID, id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toSocialAccountResponse(account))
}

func (h *SocialHandler) UpdateAccount(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	id, err := pathID(c, "id", domainerrors.ErrSocialAccountNotFound)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	var req UpdateSocialAccountRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	input := &usecase.UpdateSocialAccountInput{IsActive: req.IsActive}
	if req.Brand.Set {
		input.BrandID = req.Brand.Value
		input.ClearBrand = req.Brand.Value == nil
	}

	account, err := h.socialUC.UpdateAccount(c.Request().Context(), userID, id, input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toSocialAccountResponse(account))
}

// Connect starts the platform connection flow.
func (h *SocialHandler) Connect(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	result, err := h.socialUC.Connect(c.Request().Context(), userID, strings.ToLower(c.Param("platform")))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, ConnectResponse{
		Status:   result.Status,
		Platform: string(result.Platform),
		URL:      result.URL,
	})
}

// Disconnect deletes the account. Accounts of other users are reported as missing.
func (h *SocialHandler) Disconnect(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	id, err := pathID(c, "id", domainerrors.ErrSocialAccountNotFound)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.socialUC.Disconnect(c.Request().Context(), userID, id); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// UpsertAnalytics writes the metrics of one account for one day.
func (h *SocialHandler) UpsertAnalytics(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	id, err := pathID(c, "id", domainerrors.ErrSocialAccountNotFound)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	date, err := time.Parse(entity.DateLayout, c.Param("date"))
	if err != nil {
		return response.HandleAppError(c, domainerrors.NewFieldError("date", "Date has wrong format. Use YYYY-MM-DD."))
	}
	var req AnalyticsRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	data, err := h.analyticsUC.Upsert(c.Request().Context(), userID, id, date, entity.AnalyticsMetrics{
		Followers:     req.Followers,
		Following:     req.Following,
		Likes:         req.Likes,
		Comments:      req.Comments,
		Shares:        req.Shares,
		Impressions:   req.Impressions,
		Reach:         req.Reach,
		ProfileViews:  req.ProfileViews,
		WebsiteClicks: req.WebsiteClicks,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toAnalyticsResponse(data))
}

func (h *SocialHandler) ListAnalytics(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	id, err := pathID(c, "id", domainerrors.ErrSocialAccountNotFound)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	page, err := pageRequest(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	input := &usecase.ListAnalyticsInput{SocialAccountID: id, Page: page}
	verr := domainerrors.NewValidationError(nil)
	for name, dst := range map[string]**time.Time{"from": &input.From, "to": &input.To} {
		raw := c.QueryParam(name)
		if raw == "" {
			continue
		}
		parsed, parseErr := time.Parse(entity.DateLayout, raw)
		if parseErr != nil {
			verr.Add(name, "Date has wrong format. Use YYYY-MM-DD.")

			continue
		}
		*dst = &parsed
	}
	if verr.HasErrors() {
		return response.HandleAppError(c, verr)
	}

	analytics, err := h.analyticsUC.List(c.Request().Context(), userID, input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Paginated(c, analytics, toAnalyticsResponse)
}
