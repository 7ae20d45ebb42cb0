package handler

import (
	"log/slog"
	"net/http"
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

type BrandHandlerParams struct {
	fx.In

	BrandUC usecase.BrandUsecase
	Logger  *slog.Logger
}

// BrandHandler serves the caller's brands and their social accounts.
type BrandHandler struct {
	brandUC usecase.BrandUsecase
	logger  *slog.Logger
}

func NewBrandHandler(params BrandHandlerParams) *BrandHandler {
	return &BrandHandler{
		brandUC: params.BrandUC,
		logger:  params.Logger,
	}
}

type ListBrandsQuery struct {
	Search   string `query:"search"`
	Ordering string `query:"ordering" validate:"omitempty,oneof=created_at -created_at name -name"`
}

type CreateBrandRequest struct {
	Name           string `json:"name" validate:"required,max=255"`
	Description    string `json:"description"`
	LogoURL        string `json:"logo_url" validate:"omitempty,max=500"`
	Voice          string `json:"voice" validate:"max=100"`
	TargetAudience string `json:"target_audience"`
	Niche          string `json:"niche" validate:"max=100"`
	IsActive       *bool  `json:"is_active"`
}

type UpdateBrandRequest struct {
	Name           *string `json:"name" validate:"omitempty,max=255"`
	Description    *string `json:"description"`
	LogoURL        *string `json:"logo_url" validate:"omitempty,max=500"`
	Voice          *string `json:"voice" validate:"omitempty,max=100"`
	TargetAudience *string `json:"target_audience"`
	Niche          *string `json:"niche" validate:"omitempty,max=100"`
	IsActive       *bool   `json:"is_active"`
}

type BrandResponse struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	Description    string    `json:"description"`
	LogoURL        string    `json:"logo_url"`
	Voice          string    `json:"voice"`
	TargetAudience string    `json:"target_audience"`
	Niche          string    `json:"niche"`
	IsActive       bool      `json:"is_active"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func toBrandResponse(b *entity.Brand) BrandResponse {
	return BrandResponse{
		ID:             b.ID,
		Name:           b.Name,
		Description:    b.Description,
		LogoURL:        b.LogoURL,
		Voice:          b.Voice,
		TargetAudience: b.TargetAudience,
		Niche:          b.Niche,
		IsActive:       b.IsActive,
		CreatedAt:      b.CreatedAt,
		UpdatedAt:      b.UpdatedAt,
	}
}

func (h *BrandHandler) ListBrands(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	page, err := pageRequest(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	isActive, err := optionalBoolQuery(c, "is_active")
	if err != nil {
		return response.HandleAppError(c, err)
	}
	var q ListBrandsQuery
	if err := bindAndValidate(c, &q); err != nil {
		return response.HandleAppError(c, err)
	}

	brands, err := h.brandUC.List(c.Request().Context(), repository.BrandFilter{
		UserID:   userID,
		IsActive: isActive,
		Search:   q.Search,
		Ordering: q.Ordering,
		Page:     page,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Paginated(c, brands, toBrandResponse)
}

func (h *BrandHandler) CreateBrand(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	var req CreateBrandRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	brand, err := h.brandUC.Create(c.Request().Context(), userID, &usecase.CreateBrandInput{
		Name:           req.Name,
		Description:    req.Description,
		LogoURL:        req.LogoURL,
		Voice:          req.Voice,
		TargetAudience: req.TargetAudience,
		Niche:          req.Niche,
		IsActive:       req.IsActive,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, toBrandResponse(brand))
}

func (h *BrandHandler) GetBrand(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	id, err := pathID(c, "id", domainerrors.ErrBrandNotFound)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	brand, err := h.brandUC.Get(c.Request().Context(), userID, id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toBrandResponse(brand))
}

// UpdateBrand serves PUT (name required) and PATCH.
func (h *BrandHandler) UpdateBrand(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	id, err := pathID(c, "id", domainerrors.ErrBrandNotFound)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	var req UpdateBrandRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}
	if err := requireOnPut(c, map[string]bool{"name": req.Name != nil}); err != nil {
		return response.HandleAppError(c, err)
	}

	brand, err := h.brandUC.Update(c.Request().Context(), userID, id, &usecase.UpdateBrandInput{
		Name:           req.Name,
		Description:    req.Description,
		LogoURL:        req.LogoURL,
		Voice:          req.Voice,
		TargetAudience: req.TargetAudience,
		Niche:          req.Niche,
		IsActive:       req.IsActive,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toBrandResponse(brand))
}

func (h *BrandHandler) DeleteBrand(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	id, err := pathID(c, "id", domainerrors.ErrBrandNotFound)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.brandUC.Delete(c.Request().Context(), userID, id); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// ListBrandSocialAccounts lists the accounts grouped under one brand.
func (h *BrandHandler) ListBrandSocialAccounts(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	id, err := pathID(c, "id", domainerrors.ErrBrandNotFound)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	page, err := pageRequest(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	accounts, err := h.brandUC.ListSocialAccounts(c.Request().Context(), userID, id, page)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Paginated(c, accounts, toSocialAccountResponse)
}
