package impl

import (
	"context"
	"testing"

	"syncfloww/internal/domain/entity"
	domainerrors "syncfloww/internal/domain/errors"
	"syncfloww/internal/domain/repository"
	"syncfloww/internal/errors"
	mockRepo "syncfloww/internal/mocks/repository"
	"syncfloww/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type brandServiceFixtures struct {
	service    usecase.BrandUsecase
	brandRepo  *mockRepo.MockBrandRepository
	socialRepo *mockRepo.MockSocialAccountRepository
}

func createTestBrandService(t *testing.T) brandServiceFixtures {
	fx := brandServiceFixtures{
		brandRepo:  mockRepo.NewMockBrandRepository(t),
		socialRepo: mockRepo.NewMockSocialAccountRepository(t),
	}
	fx.service = NewBrandService(BrandServiceParams{
		BrandRepo:  fx.brandRepo,
		SocialRepo: fx.socialRepo,
		Logger:     newDiscardLogger(),
	})

	return fx
}

func TestBrandService_Create(t *testing.T) {
	tests := []struct {
		name     string
		isActive *bool
		want     bool
	}{
		{"active by default", nil, true},
		{"explicitly inactive", ptr(false), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestBrandService(t)
			ctx := context.Background()
			userID := uuid.New()

			fx.brandRepo.EXPECT().
				Create(ctx, mock.MatchedBy(func(b *entity.Brand) bool {
					return b.UserID == userID && b.Name == "Acme" && b.IsActive == tt.want
				})).
				Return(nil)

			brand, err := fx.service.Create(ctx, userID, &usecase.CreateBrandInput{Name: "Acme", IsActive: tt.isActive})

			require.NoError(t, err)
			assert.Equal(t, tt.want, brand.IsActive)
		})
	}
}

func TestBrandService_Update_Partial(t *testing.T) {
	fx := createTestBrandService(t)
	ctx := context.Background()
	userID, brandID := uuid.New(), uuid.New()

	fx.brandRepo.EXPECT().FindByID(ctx, userID, brandID).
		Return(&entity.Brand{ID: brandID, UserID: userID, Name: "Acme", Niche: "tech", IsActive: true}, nil)
	fx.brandRepo.EXPECT().
		Update(ctx, mock.MatchedBy(func(b *entity.Brand) bool {
			return b.Name == "Acme" && b.Niche == "fitness" && b.IsActive
		})).
		Return(nil)

	brand, err := fx.service.Update(ctx, userID, brandID, &usecase.UpdateBrandInput{Niche: ptr("fitness")})

	require.NoError(t, err)
	assert.Equal(t, "fitness", brand.Niche)
}

func TestBrandService_ListSocialAccounts(t *testing.T) {
	userID, brandID := uuid.New(), uuid.New()
	page := entity.NewPageRequest(1, 20)

	t.Run("scoped to the brand", func(t *testing.T) {
		fx := createTestBrandService(t)
		ctx := context.Background()
		accounts := entity.NewPage([]*entity.SocialAccount{{ID: uuid.New(), BrandID: &brandID}}, 1, page)

		fx.brandRepo.EXPECT().FindByID(ctx, userID, brandID).Return(&entity.Brand{ID: brandID}, nil)
		fx.socialRepo.EXPECT().
			List(ctx, mock.MatchedBy(func(f repository.SocialAccountFilter) bool {
				return f.UserID == userID && f.BrandID != nil && *f.BrandID == brandID
			})).
			Return(accounts, nil)

		got, err := fx.service.ListSocialAccounts(ctx, userID, brandID, page)

		require.NoError(t, err)
		assert.Len(t, got.Items, 1)
	})

	t.Run("foreign brand", func(t *testing.T) {
		fx := createTestBrandService(t)
		ctx := context.Background()

		fx.brandRepo.EXPECT().FindByID(ctx, userID, brandID).Return(nil, repository.ErrBrandNotFound)

		_, err := fx.service.ListSocialAccounts(ctx, userID, brandID, page)

		assert.True(t, errors.Is(err, domainerrors.ErrBrandNotFound))
	})
}

func TestBrandService_Delete_NotFound(t *testing.T) {
	fx := createTestBrandService(t)
	ctx := context.Background()
	userID, brandID := uuid.New(), uuid.New()

	fx.brandRepo.EXPECT().Delete(ctx, userID, brandID).Return(repository.ErrBrandNotFound)

	assert.True(t, errors.Is(fx.service.Delete(ctx, userID, brandID), domainerrors.ErrBrandNotFound))
}
