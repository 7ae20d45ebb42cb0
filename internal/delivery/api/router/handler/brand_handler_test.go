package handler

import (
	"net/http"
	"testing"

	"syncfloww/internal/domain/entity"
	domainerrors "syncfloww/internal/domain/errors"
	"syncfloww/internal/domain/repository"
	mockusecase "syncfloww/internal/mocks/usecase"
	"syncfloww/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newBrandTestServer(t *testing.T, userID uuid.UUID) (*echo.Echo, *mockusecase.MockBrandUsecase) {
	brandUC := mockusecase.NewMockBrandUsecase(t)
	h := NewBrandHandler(BrandHandlerParams{BrandUC: brandUC, Logger: testLogger})

	e := newTestEcho()
	g := e.Group("/api/brands", asUser(userID))
	g.GET("", h.ListBrands)
	g.PUT("/:id", h.UpdateBrand)
	g.GET("/:id/social-accounts", h.ListBrandSocialAccounts)

	return e, brandUC
}

func TestBrandHandler_ListBrands(t *testing.T) {
	userID := uuid.New()

	t.Run("is_active filter", func(t *testing.T) {
		e, brandUC := newBrandTestServer(t, userID)
		active := false
		brandUC.EXPECT().List(mock.Anything, repository.BrandFilter{
			UserID:   userID,
			IsActive: &active,
			Ordering: "name",
			Page:     entity.NewPageRequest(1, 20),
		}).Return(entity.NewPage([]*entity.Brand{}, 0, entity.NewPageRequest(1, 20)), nil)

		rec := doRequest(e, http.MethodGet, "/api/brands?is_active=false&ordering=name", "")

		assert.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	})

	t.Run("bad boolean", func(t *testing.T) {
		e, _ := newBrandTestServer(t, userID)

		rec := doRequest(e, http.MethodGet, "/api/brands?is_active=maybe", "")

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, fieldDetails(t, decodeEnvelope(t, rec)), "is_active")
	})
}

func TestBrandHandler_UpdateBrand(t *testing.T) {
	userID := uuid.New()
	id := uuid.New()

	t.Run("put without name", func(t *testing.T) {
		e, _ := newBrandTestServer(t, userID)

		rec := doRequest(e, http.MethodPut, "/api/brands/"+id.String(), `{"niche":"fitness"}`)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, fieldDetails(t, decodeEnvelope(t, rec)), "name")
	})

	t.Run("put", func(t *testing.T) {
		e, brandUC := newBrandTestServer(t, userID)
		name := "Acme"
		brandUC.EXPECT().Update(mock.Anything, userID, id, mock.MatchedBy(func(in *usecase.UpdateBrandInput) bool {
			return in.Name != nil && *in.Name == name
		})).Return(&entity.Brand{ID: id, Name: name, IsActive: true}, nil)

		rec := doRequest(e, http.MethodPut, "/api/brands/"+id.String(), `{"name":"Acme"}`)

		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		assert.Contains(t, string(decodeEnvelope(t, rec).Data), `"name":"Acme"`)
	})
}

func TestBrandHandler_ListBrandSocialAccounts(t *testing.T) {
	userID := uuid.New()
	brandID := uuid.New()

	t.Run("accounts carry the brand name", func(t *testing.T) {
		e, brandUC := newBrandTestServer(t, userID)
		account := &entity.SocialAccount{ID: uuid.New(), Platform: "tiktok", BrandID: &brandID, BrandName: "Acme"}
		brandUC.EXPECT().ListSocialAccounts(mock.Anything, userID, brandID, entity.NewPageRequest(1, 20)).
			Return(entity.NewPage([]*entity.SocialAccount{account}, 1, entity.NewPageRequest(1, 20)), nil)

		rec := doRequest(e, http.MethodGet, "/api/brands/"+brandID.String()+"/social-accounts", "")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, string(decodeEnvelope(t, rec).Data), `"brand_name":"Acme"`)
	})

	t.Run("foreign brand", func(t *testing.T) {
		e, brandUC := newBrandTestServer(t, userID)
		brandUC.EXPECT().ListSocialAccounts(mock.Anything, userID, brandID, entity.NewPageRequest(1, 20)).
			Return(nil, domainerrors.ErrBrandNotFound)

		rec := doRequest(e, http.MethodGet, "/api/brands/"+brandID.String()+"/social-accounts", "")

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
