package handler

import (
	"net/http"
	"testing"
	"time"

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

type socialFixtures struct {
	socialUC    *mockusecase.MockSocialUsecase
	analyticsUC *mockusecase.MockAnalyticsUsecase
}

func newSocialTestServer(t *testing.T, userID uuid.UUID) (*echo.Echo, socialFixtures) {
	f := socialFixtures{
		socialUC:    mockusecase.NewMockSocialUsecase(t),
		analyticsUC: mockusecase.NewMockAnalyticsUsecase(t),
	}
	h := NewSocialHandler(SocialHandlerParams{SocialUC: f.socialUC, AnalyticsUC: f.analyticsUC, Logger: testLogger})

	e := newTestEcho()
	g := e.Group("/api/social", asUser(userID))
	g.GET("/accounts", h.ListAccounts)
	g.POST("/accounts", h.CreateAccount)
	g.GET("/accounts/:id", h.GetAccount)
	g.PATCH("/accounts/:id", h.UpdateAccount)
	g.GET("/accounts/:id/analytics", h.ListAnalytics)
	g.PUT("/accounts/:id/analytics/:date", h.UpsertAnalytics)
	g.POST("/connect/:platform", h.Connect)
	g.DELETE("/:id/disconnect", h.Disconnect)

	return e, f
}

func TestSocialHandler_ListAccounts(t *testing.T) {
	userID := uuid.New()
	brandID := uuid.New()

	t.Run("filters are forwarded", func(t *testing.T) {
		e, f := newSocialTestServer(t, userID)
		account := &entity.SocialAccount{ID: uuid.New(), Platform: entity.Platform("tiktok"), Username: "ana"}
		f.socialUC.EXPECT().ListAccounts(mock.Anything, repository.SocialAccountFilter{
			UserID:   userID,
			Platform: entity.Platform("tiktok"),
			BrandID:  &brandID,
			Page:     entity.NewPageRequest(1, 20),
		}).Return(entity.NewPage([]*entity.SocialAccount{account}, 1, entity.NewPageRequest(1, 20)), nil)

		rec := doRequest(e, http.MethodGet, "/api/social/accounts?platform=tiktok&brand="+brandID.String(), "")

		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		env := decodeEnvelope(t, rec)
		assert.Contains(t, string(env.Data), `"brand":null`)
		assert.Contains(t, string(env.Data), `"brand_name":null`)
		assert.NotContains(t, string(env.Data), "token\"")
		require.NotNil(t, env.Meta.Pagination)
		assert.Equal(t, int64(1), env.Meta.Pagination.Total)
		assert.Equal(t, 1, env.Meta.Pagination.TotalPages)
	})

	t.Run("malformed brand filter", func(t *testing.T) {
		e, _ := newSocialTestServer(t, userID)

		rec := doRequest(e, http.MethodGet, "/api/social/accounts?brand=abc", "")

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, fieldDetails(t, decodeEnvelope(t, rec)), "brand")
	})
}

func TestSocialHandler_UpdateAccount(t *testing.T) {
	userID := uuid.New()
	accountID := uuid.New()
	brandID := uuid.New()
	updated := &entity.SocialAccount{ID: accountID, Platform: entity.Platform("instagram")}

	t.Run("explicit null unassigns the brand", func(t *testing.T) {
		e, f := newSocialTestServer(t, userID)
		f.socialUC.EXPECT().UpdateAccount(mock.Anything, userID, accountID, &usecase.UpdateSocialAccountInput{ClearBrand: true}).
			Return(updated, nil)

		rec := doRequest(e, http.MethodPatch, "/api/social/accounts/"+accountID.String(), `{"brand":null}`)

		assert.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	})

	t.Run("assigns a brand", func(t *testing.T) {
		e, f := newSocialTestServer(t, userID)
		active := false
		f.socialUC.EXPECT().UpdateAccount(mock.Anything, userID, accountID, &usecase.UpdateSocialAccountInput{
			BrandID:  &brandID,
			IsActive: &active,
		}).Return(updated, nil)

		rec := doRequest(e, http.MethodPatch, "/api/social/accounts/"+accountID.String(),
			`{"brand":"`+brandID.String()+`","is_active":false}`)

		assert.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	})

	t.Run("absent brand is left alone", func(t *testing.T) {
		e, f := newSocialTestServer(t, userID)
		active := true
		f.socialUC.EXPECT().UpdateAccount(mock.Anything, userID, accountID, &usecase.UpdateSocialAccountInput{IsActive: &active}).
			Return(updated, nil)

		rec := doRequest(e, http.MethodPatch, "/api/social/accounts/"+accountID.String(), `{"is_active":true}`)

		assert.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	})
}

func TestSocialHandler_ConnectAndDisconnect(t *testing.T) {
	userID := uuid.New()

	t.Run("connect initiates the flow", func(t *testing.T) {
		e, f := newSocialTestServer(t, userID)
		f.socialUC.EXPECT().Connect(mock.Anything, userID, "youtube").Return(&usecase.ConnectResult{
			Status:   "initiated",
			Platform: entity.Platform("youtube"),
			URL:      "http://mock-oauth-url.com",
		}, nil)

		rec := doRequest(e, http.MethodPost, "/api/social/connect/YouTube", "")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"status":"initiated","platform":"youtube","url":"http://mock-oauth-url.com"}`,
			string(decodeEnvelope(t, rec).Data))
	})

	t.Run("unknown platform", func(t *testing.T) {
		e, f := newSocialTestServer(t, userID)
		f.socialUC.EXPECT().Connect(mock.Anything, userID, "myspace").Return(nil, domainerrors.ErrUnsupportedPlatform)

		rec := doRequest(e, http.MethodPost, "/api/social/connect/myspace", "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("disconnect", func(t *testing.T) {
		e, f := newSocialTestServer(t, userID)
		id := uuid.New()
		f.socialUC.EXPECT().Disconnect(mock.Anything, userID, id).Return(nil)

		rec := doRequest(e, http.MethodDelete, "/api/social/"+id.String()+"/disconnect", "")

		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Empty(t, rec.Body.String())
	})

	t.Run("disconnect someone else's account", func(t *testing.T) {
		e, f := newSocialTestServer(t, userID)
		id := uuid.New()
		f.socialUC.EXPECT().Disconnect(mock.Anything, userID, id).Return(domainerrors.ErrSocialAccountNotFound)

		rec := doRequest(e, http.MethodDelete, "/api/social/"+id.String()+"/disconnect", "")

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestSocialHandler_Analytics(t *testing.T) {
	userID := uuid.New()
	accountID := uuid.New()
	day := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)

	t.Run("upsert", func(t *testing.T) {
		e, f := newSocialTestServer(t, userID)
		metrics := entity.AnalyticsMetrics{Followers: 120, Likes: 30}
		f.analyticsUC.EXPECT().Upsert(mock.Anything, userID, accountID, day, metrics).Return(&entity.AnalyticsData{
			ID:               uuid.New(),
			SocialAccountID:  accountID,
			Date:             day,
			AnalyticsMetrics: metrics,
		}, nil)

		rec := doRequest(e, http.MethodPut, "/api/social/accounts/"+accountID.String()+"/analytics/2026-03-14",
			`{"followers":120,"likes":30}`)

		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		assert.Contains(t, string(decodeEnvelope(t, rec).Data), `"date":"2026-03-14"`)
	})

	t.Run("bad date", func(t *testing.T) {
		e, _ := newSocialTestServer(t, userID)

		rec := doRequest(e, http.MethodPut, "/api/social/accounts/"+accountID.String()+"/analytics/14-03-2026", `{}`)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, fieldDetails(t, decodeEnvelope(t, rec)), "date")
	})

	t.Run("negative metric", func(t *testing.T) {
		e, f := newSocialTestServer(t, userID)
		f.analyticsUC.EXPECT().Upsert(mock.Anything, userID, accountID, day, entity.AnalyticsMetrics{Likes: -1}).
			Return(nil, domainerrors.NewFieldError("likes", "Ensure this value is greater than or equal to 0."))

		rec := doRequest(e, http.MethodPut, "/api/social/accounts/"+accountID.String()+"/analytics/2026-03-14",
			`{"likes":-1}`)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, fieldDetails(t, decodeEnvelope(t, rec)), "likes")
	})

	t.Run("list with a date window", func(t *testing.T) {
		e, f := newSocialTestServer(t, userID)
		from := day
		f.analyticsUC.EXPECT().List(mock.Anything, userID, &usecase.ListAnalyticsInput{
			SocialAccountID: accountID,
			From:            &from,
			Page:            entity.NewPageRequest(1, 20),
		}).Return(entity.NewPage([]*entity.AnalyticsData{}, 0, entity.NewPageRequest(1, 20)), nil)

		rec := doRequest(e, http.MethodGet, "/api/social/accounts/"+accountID.String()+"/analytics?from=2026-03-14", "")

		assert.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	})
}

func TestSocialHandler_CreateAccount(t *testing.T) {
	userID := uuid.New()
	brandID := uuid.New()

	t.Run("created", func(t *testing.T) {
		e, f := newSocialTestServer(t, userID)
		f.socialUC.EXPECT().CreateAccount(mock.Anything, userID, mock.MatchedBy(func(in *usecase.CreateSocialAccountInput) bool {
			return in.Platform == "youtube" && in.AccountID == "yt-9" && in.BrandID != nil && *in.BrandID == brandID &&
				in.RefreshToken == "r" && in.TokenExpiresAt != nil
		})).Return(&entity.SocialAccount{ID: uuid.New(), Platform: entity.PlatformYouTube, AccountID: "yt-9", AccessToken: "a", RefreshToken: "r"}, nil)

		rec := doRequest(e, http.MethodPost, "/api/social/accounts",
			`{"platform":"youtube","account_id":"yt-9","brand":"`+brandID.String()+`","access_token":"a","refresh_token":"r","token_expires_at":"2026-12-01T00:00:00Z"}`)

		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
		assert.Contains(t, rec.Body.String(), `"account_id":"yt-9"`)
		assert.NotContains(t, rec.Body.String(), "token\"")
	})

	t.Run("already connected", func(t *testing.T) {
		e, f := newSocialTestServer(t, userID)
		f.socialUC.EXPECT().CreateAccount(mock.Anything, userID, mock.Anything).
			Return(nil, domainerrors.ErrSocialAccountAlreadyConnected.WithDetails("tiktok:tt-1"))

		rec := doRequest(e, http.MethodPost, "/api/social/accounts", `{"platform":"tiktok","account_id":"tt-1"}`)

		require.Equal(t, http.StatusConflict, rec.Code)
		env := decodeEnvelope(t, rec)
		require.NotNil(t, env.Error)
		assert.Equal(t, "SOCIAL_ACCOUNT_ALREADY_CONNECTED", env.Error.Code)
	})

	t.Run("missing account id and unknown platform", func(t *testing.T) {
		e, _ := newSocialTestServer(t, userID)

		rec := doRequest(e, http.MethodPost, "/api/social/accounts", `{"platform":"myspace"}`)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		fields := fieldDetails(t, decodeEnvelope(t, rec))
		assert.Contains(t, fields, "platform")
		assert.Contains(t, fields, "account_id")
	})
}
