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

func TestAIConfigurationService_Create_Defaults(t *testing.T) {
	configRepo := mockRepo.NewMockAIConfigurationRepository(t)
	srv := NewAIConfigurationService(configRepo, newDiscardLogger())
	ctx := context.Background()
	userID := uuid.New()

	configRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(cfg *entity.AIConfiguration) bool {
			return cfg.UserID == userID && cfg.Temperature == 0.7 && cfg.MaxLength == 2000 && cfg.IsActive
		})).
		Return(nil)

	cfg, err := srv.Create(ctx, userID, &usecase.CreateAIConfigurationInput{Name: "Default", ModelName: "gpt-4o"})

	require.NoError(t, err)
	assert.Equal(t, "gpt-4o", cfg.ModelName)
}

func TestAIConfigurationService_Create_TemperatureRange(t *testing.T) {
	srv := NewAIConfigurationService(mockRepo.NewMockAIConfigurationRepository(t), newDiscardLogger())

	for _, temperature := range []float64{-0.1, 2.5} {
		_, err := srv.Create(context.Background(), uuid.New(), &usecase.CreateAIConfigurationInput{
			Name:        "Hot",
			Temperature: ptr(temperature),
		})

		var verr *domainerrors.ValidationError
		require.True(t, errors.As(err, &verr), "temperature %v", temperature)
		assert.Contains(t, verr.Fields(), "temperature")
	}
}

func TestAIConfigurationService_Update(t *testing.T) {
	configRepo := mockRepo.NewMockAIConfigurationRepository(t)
	srv := NewAIConfigurationService(configRepo, newDiscardLogger())
	ctx := context.Background()
	userID, cfgID := uuid.New(), uuid.New()

	configRepo.EXPECT().FindByID(ctx, userID, cfgID).
		Return(&entity.AIConfiguration{ID: cfgID, UserID: userID, Name: "Default", Temperature: 0.7, MaxLength: 2000}, nil)
	configRepo.EXPECT().
		Update(ctx, mock.MatchedBy(func(cfg *entity.AIConfiguration) bool {
			return cfg.Temperature == 1.2 && cfg.Name == "Default"
		})).
		Return(nil)

	cfg, err := srv.Update(ctx, userID, cfgID, &usecase.UpdateAIConfigurationInput{Temperature: ptr(1.2)})

	require.NoError(t, err)
	assert.InDelta(t, 1.2, cfg.Temperature, 1e-9)
}

func TestAIConfigurationService_Delete_NotFound(t *testing.T) {
	configRepo := mockRepo.NewMockAIConfigurationRepository(t)
	srv := NewAIConfigurationService(configRepo, newDiscardLogger())
	ctx := context.Background()
	userID, cfgID := uuid.New(), uuid.New()

	configRepo.EXPECT().Delete(ctx, userID, cfgID).Return(repository.ErrAIConfigurationNotFound)

	assert.True(t, errors.Is(srv.Delete(ctx, userID, cfgID), domainerrors.ErrAIConfigurationNotFound))
}
