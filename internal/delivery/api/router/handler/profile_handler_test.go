package handler

import (
	"net/http"
	"testing"

	"syncfloww/internal/domain/entity"
	mockusecase "syncfloww/internal/mocks/usecase"
	"syncfloww/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newProfileTestServer(t *testing.T, userID uuid.UUID) (*echo.Echo, *mockusecase.MockProfileUsecase) {
	profileUC := mockusecase.NewMockProfileUsecase(t)
	h := NewProfileHandler(ProfileHandlerParams{ProfileUC: profileUC, Logger: testLogger})

	e := newTestEcho()
	g := e.Group("/api/users/me", asUser(userID))
	g.GET("", h.GetProfile)
	g.PATCH("", h.UpdateProfile)

	return e, profileUC
}

func TestProfileHandler_GetProfile(t *testing.T) {
	userID := uuid.New()
	e, profileUC := newProfileTestServer(t, userID)
	profileUC.EXPECT().GetProfile(mock.Anything, userID).
		Return(&entity.Profile{ID: uuid.New(), UserID: userID, Email: "ann@example.com", FullName: "Ann"}, nil)

	rec := doRequest(e, http.MethodGet, "/api/users/me/", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, `"ann@example.com"`, extractJSON(t, rec, "email"))
}

func TestProfileHandler_UpdateProfile(t *testing.T) {
	userID := uuid.New()

	t.Run("email is ignored", func(t *testing.T) {
		e, profileUC := newProfileTestServer(t, userID)
		profileUC.EXPECT().UpdateProfile(mock.Anything, userID, mock.MatchedBy(func(in *usecase.UpdateProfileInput) bool {
			return in.FullName != nil && *in.FullName == "Ann B" && in.AvatarURL == nil
		})).Return(&entity.Profile{UserID: userID, Email: "ann@example.com", FullName: "Ann B"}, nil)

		rec := doRequest(e, http.MethodPatch, "/api/users/me", `{"full_name":"Ann B","email":"other@example.com"}`)

		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		assert.Equal(t, `"ann@example.com"`, extractJSON(t, rec, "email"))
	})

	t.Run("avatar too long", func(t *testing.T) {
		e, _ := newProfileTestServer(t, userID)
		long := make([]byte, 501)
		for i := range long {
			long[i] = 'a'
		}

		rec := doRequest(e, http.MethodPatch, "/api/users/me", `{"avatar_url":"`+string(long)+`"}`)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, fieldDetails(t, decodeEnvelope(t, rec)), "avatar_url")
	})
}
