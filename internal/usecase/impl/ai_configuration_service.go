package impl

import (
	"context"
	"log/slog"

	"syncfloww/internal/domain/entity"
	domainerrors "syncfloww/internal/domain/errors"
	"syncfloww/internal/domain/repository"
	"syncfloww/internal/errors"
	"syncfloww/internal/usecase"

	"github.com/google/uuid"
)

const (
	minAITemperature = 0.0
	maxAITemperature = 2.0
)

type aiConfigurationService struct {
	configRepo repository.AIConfigurationRepository
	logger     *slog.Logger
}

// NewAIConfigurationService is the constructor for aiConfigurationService.
func NewAIConfigurationService(configRepo repository.AIConfigurationRepository, logger *slog.Logger) usecase.AIConfigurationUsecase {
	return &aiConfigurationService{
		configRepo: configRepo,
		logger:     logger,
	}
}

func (srv *aiConfigurationService) Create(ctx context.Context, userID uuid.UUID, input *usecase.CreateAIConfigurationInput) (*entity.AIConfiguration, error) {
	cfg := &entity.AIConfiguration{
		UserID:      userID,
		Name:        input.Name,
		ModelName:   input.ModelName,
		Temperature: entity.DefaultAITemperature,
		MaxLength:   entity.DefaultAIMaxLength,
		IsActive:    true,
	}
	if input.Temperature != nil {
		cfg.Temperature = *input.Temperature
	}
	if input.MaxLength != nil {
		cfg.MaxLength = *input.MaxLength
	}
	if input.IsActive != nil {
		cfg.IsActive = *input.IsActive
	}
	if err := validateAIConfiguration(cfg); err != nil {
		return nil, err
	}

	if err := srv.configRepo.Create(ctx, cfg); err != nil {
		return nil, errors.Wrap(err, "failed to create ai configuration")
	}

	return cfg, nil
}

func (srv *aiConfigurationService) Get(ctx context.Context, userID, id uuid.UUID) (*entity.AIConfiguration, error) {
	cfg, err := srv.configRepo.FindByID(ctx, userID, id)
	if err != nil {
		return nil, translate(err, repository.ErrAIConfigurationNotFound, domainerrors.ErrAIConfigurationNotFound, "failed to find ai configuration")
	}

	return cfg, nil
}

func (srv *aiConfigurationService) List(ctx context.Context, filter repository.AIConfigurationFilter) (*entity.Page[*entity.AIConfiguration], error) {
	page, err := srv.configRepo.List(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list ai configurations")
	}

	return page, nil
}

func (srv *aiConfigurationService) Update(ctx context.Context, userID, id uuid.UUID, input *usecase.UpdateAIConfigurationInput) (*entity.AIConfiguration, error) {
	cfg, err := srv.Get(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	setString(&cfg.Name, input.Name)
	setString(&cfg.ModelName, input.ModelName)
	if input.Temperature != nil {
		cfg.Temperature = *input.Temperature
	}
	if input.MaxLength != nil {
		cfg.MaxLength = *input.MaxLength
	}
	if input.IsActive != nil {
		cfg.IsActive = *input.IsActive
	}
	if err := validateAIConfiguration(cfg); err != nil {
		return nil, err
	}

	if err := srv.configRepo.Update(ctx, cfg); err != nil {
		return nil, translate(err, repository.ErrAIConfigurationNotFound, domainerrors.ErrAIConfigurationNotFound, "failed to update ai configuration")
	}

	return cfg, nil
}

func (srv *aiConfigurationService) Delete(ctx context.Context, userID, id uuid.UUID) error {
	if err := srv.configRepo.Delete(ctx, userID, id); err != nil {
		return translate(err, repository.ErrAIConfigurationNotFound, domainerrors.ErrAIConfigurationNotFound, "failed to delete ai configuration")
	}

	srv.logger.DebugContext(ctx, "AI configuration deleted", slog.Any("configID", id))

	return nil
}

func validateAIConfiguration(cfg *entity.AIConfiguration) error {
	verr := domainerrors.NewValidationError(nil)
	if cfg.Temperature < minAITemperature {
		verr.Add("temperature", "Ensure this value is greater than or equal to 0.0.")
	}
	if cfg.Temperature > maxAITemperature {
		verr.Add("temperature", "Ensure this value is less than or equal to 2.0.")
	}
	if cfg.MaxLength < 1 {
		verr.Add("max_length", "Ensure this value is greater than or equal to 1.")
	}
	if verr.HasErrors() {
		return verr
	}

	return nil
}
