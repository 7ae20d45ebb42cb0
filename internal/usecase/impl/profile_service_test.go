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

// profileServiceFixtures holds all test dependencies for profile service tests.
type profileServiceFixtures struct {
	service     usecase.ProfileUsecase
	txManager   *mockRepo.MockTransactionManager
	profileRepo *mockRepo.MockProfileRepository
	factory     *mockRepo.MockRepositoryFactory
	txUserRepo  *mockRepo.MockUserRepository
	txProfile   *mockRepo.MockProfileRepository
}

func createTestProfileService(t *testing.T) profileServiceFixtures {
	fx := profileServiceFixtures{
		txManager:   mockRepo.NewMockTransactionManager(t),
		profileRepo: mockRepo.NewMockProfileRepository(t),
		factory:     mockRepo.NewMockRepositoryFactory(t),
		txUserRepo:  mockRepo.NewMockUserRepository(t),
		txProfile:   mockRepo.NewMockProfileRepository(t),
	}
	fx.service = NewProfileService(fx.txManager, fx.profileRepo, newDiscardLogger())

	return fx
}

// inTx makes the next transaction run against the fixture's factory.
func (fx profileServiceFixtures) inTx(withUserRepo bool) {
	fx.factory.EXPECT().ProfileRepo().Return(fx.txProfile)
	if withUserRepo {
		fx.factory.EXPECT().UserRepo().Return(fx.txUserRepo)
	}
	expectTx(fx.txManager, fx.factory)
}

func TestProfileService_GetProfile_Existing(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()
	userID := uuid.New()
	profile := &entity.Profile{UserID: userID, Email: "user@example.com", FullName: "User"}

	fx.profileRepo.EXPECT().FindByUserID(ctx, userID).Return(profile, nil)

	got, err := fx.service.GetProfile(ctx, userID)

	require.NoError(t, err)
	assert.Same(t, profile, got)
}

func TestProfileService_GetProfile_CreatesMissingProfile(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Email: "user@example.com", FullName: "User", AvatarURL: "https://example.com/a.png"}

	fx.profileRepo.EXPECT().FindByUserID(ctx, user.ID).Return(nil, repository.ErrProfileNotFound)
	fx.inTx(true)
	fx.txProfile.EXPECT().FindByUserID(ctx, user.ID).Return(nil, repository.ErrProfileNotFound)
	fx.txUserRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
	fx.txProfile.EXPECT().
		Create(ctx, mock.MatchedBy(func(p *entity.Profile) bool {
			return p.UserID == user.ID && p.FullName == "User" && p.AvatarURL == user.AvatarURL
		})).
		Return(nil)

	got, err := fx.service.GetProfile(ctx, user.ID)

	require.NoError(t, err)
	assert.Equal(t, "user@example.com", got.Email)
	assert.Equal(t, "User", got.FullName)
}

func TestProfileService_GetProfile_UserGone(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()
	userID := uuid.New()

	fx.profileRepo.EXPECT().FindByUserID(ctx, userID).Return(nil, repository.ErrProfileNotFound)
	fx.inTx(true)
	fx.txProfile.EXPECT().FindByUserID(ctx, userID).Return(nil, repository.ErrProfileNotFound)
	fx.txUserRepo.EXPECT().FindByID(ctx, userID).Return(nil, repository.ErrUserNotFound)

	got, err := fx.service.GetProfile(ctx, userID)

	assert.Nil(t, got)
	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}

func TestProfileService_UpdateProfile_MirrorsOntoUser(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()
	userID := uuid.New()
	profile := &entity.Profile{UserID: userID, FullName: "Old", AvatarURL: "https://example.com/old.png"}
	user := &entity.User{ID: userID, FullName: "Old", AvatarURL: "https://example.com/old.png"}

	fx.inTx(true)
	fx.txProfile.EXPECT().FindByUserID(ctx, userID).Return(profile, nil)
	fx.txProfile.EXPECT().
		Update(ctx, mock.MatchedBy(func(p *entity.Profile) bool {
			return p.FullName == "New" && p.AvatarURL == "https://example.com/old.png"
		})).
		Return(nil)
	fx.txUserRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)
	fx.txUserRepo.EXPECT().
		Update(ctx, mock.MatchedBy(func(u *entity.User) bool {
			return u.FullName == "New"
		})).
		Return(nil)

	got, err := fx.service.UpdateProfile(ctx, userID, &usecase.UpdateProfileInput{FullName: ptr("New")})

	require.NoError(t, err)
	assert.Equal(t, "New", got.FullName)
}

func TestProfileService_UpdateProfile_RepositoryError(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()
	userID := uuid.New()

	fx.inTx(false)
	fx.txProfile.EXPECT().FindByUserID(ctx, userID).Return(&entity.Profile{UserID: userID}, nil)
	fx.txProfile.EXPECT().Update(ctx, mock.Anything).Return(errors.New("connection refused"))

	got, err := fx.service.UpdateProfile(ctx, userID, &usecase.UpdateProfileInput{AvatarURL: ptr("https://example.com/n.png")})

	assert.Nil(t, got)
	assert.ErrorContains(t, err, "failed to update profile")
}
