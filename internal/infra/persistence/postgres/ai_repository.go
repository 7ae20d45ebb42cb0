package postgres

import (
	"context"
	"time"

	"syncfloww/internal/domain/entity"
	domainerrors "syncfloww/internal/domain/errors"
	"syncfloww/internal/domain/repository"
	"syncfloww/internal/errors"
	"syncfloww/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// agentTableOrder is the registration order used to pick an agent for a task type.
const agentTableOrder = "created_at ASC, id ASC"

type aiAgentRepository struct {
	db *gorm.DB
}

func NewAIAgentRepository(db *gorm.DB) repository.AIAgentRepository {
	return &aiAgentRepository{db: db}
}

func (repo *aiAgentRepository) ListActive(ctx context.Context, page entity.PageRequest) (*entity.Page[*entity.AIAgent], error) {
	query := repo.db.Model(&model.AIAgentModel{}).Where("is_active = ?", true)

	rows, total, err := paginate[model.AIAgentModel](ctx, query, page, agentTableOrder)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list agents")
	}

	return mapPage(rows, total, page, toAIAgentDomain), nil
}

func (repo *aiAgentRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.AIAgent, error) {
	return repo.first(repo.db.WithContext(ctx).Where("id = ?", id))
}

func (repo *aiAgentRepository) FindFirstActiveByTaskType(ctx context.Context, taskType entity.TaskType) (*entity.AIAgent, error) {
	return repo.first(repo.db.WithContext(ctx).
		Where("task_type = ? AND is_active = ?", string(taskType), true).
		Order(agentTableOrder))
}

func (repo *aiAgentRepository) FindWithModel(ctx context.Context, id uuid.UUID) (*entity.AIAgent, error) {
	return repo.first(repo.db.WithContext(ctx).Preload("Model.Provider").Where("id = ?", id))
}

func (repo *aiAgentRepository) first(query *gorm.DB) (*entity.AIAgent, error) {
	var agentM model.AIAgentModel
	if err := query.First(&agentM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAgentNotFound
		}

		return nil, errors.Wrap(err, "failed to find agent")
	}

	return toAIAgentDomain(&agentM), nil
}

type agentTaskRepository struct {
	db *gorm.DB
}

func NewAgentTaskRepository(db *gorm.DB) repository.AgentTaskRepository {
	return &agentTaskRepository{db: db}
}

func (repo *agentTaskRepository) Create(ctx context.Context, task *entity.AgentTask) error {
	taskM := &model.AgentTaskModel{
		AgentID:     task.AgentID,
		RequestedBy: task.RequestedBy,
		InputData:   toJSONMap(task.InputData),
		OutputData:  toJSONMap(task.OutputData),
		Status:      string(task.Status),
	}

	if err := repo.db.WithContext(ctx).Create(taskM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrAgentIDNotFound.WrapMessage("invalid agent reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create agent task")
	}

	task.ID = taskM.ID
	task.CreatedAt = taskM.CreatedAt
	task.UpdatedAt = taskM.UpdatedAt

	return nil
}

func (repo *agentTaskRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.AgentTask, error) {
	var taskM model.AgentTaskModel
	if err := repo.db.WithContext(ctx).Preload("Agent").Where("id = ?", id).First(&taskM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrTaskNotFound
		}

		return nil, errors.Wrap(err, "failed to find agent task")
	}

	return toAgentTaskDomain(&taskM), nil
}

func (repo *agentTaskRepository) List(ctx context.Context, filter repository.AgentTaskFilter) (*entity.Page[*entity.AgentTask], error) {
	query := repo.db.Model(&model.AgentTaskModel{})
	if filter.RequestedBy != nil {
		query = query.Where("requested_by = ?", *filter.RequestedBy)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", string(filter.Status))
	}

	rows, total, err := paginate[model.AgentTaskModel](ctx, query, filter.Page, "created_at DESC", "Agent")
	if err != nil {
		return nil, errors.Wrap(err, "failed to list agent tasks")
	}

	return mapPage(rows, total, filter.Page, toAgentTaskDomain), nil
}

// Transition is a compare-and-set on status.
func (repo *agentTaskRepository) Transition(ctx context.Context, id uuid.UUID, transition entity.TaskTransition) error {
	if !transition.From.CanTransitionTo(transition.To) {
		return domainerrors.ErrInvalidTaskTransition
	}

	at := transition.At
	if at.IsZero() {
		at = time.Now()
	}

	updates := map[string]any{
		"status":     string(transition.To),
		"updated_at": at,
	}
	if transition.To.IsTerminal() {
		updates["completed_at"] = at
	}
	if transition.OutputData != nil {
		updates["output_data"] = datatypes.JSONMap(transition.OutputData)
	}
	if transition.ErrorMessage != "" {
		updates["error_message"] = transition.ErrorMessage
	}

	result := repo.db.WithContext(ctx).
		Model(&model.AgentTaskModel{}).
		Where("id = ? AND status = ?", id, string(transition.From)).
		Updates(updates)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update agent task status")
	}
	if result.RowsAffected == 0 {
		return repository.ErrTaskStatusConflict
	}

	return nil
}

type aiConfigurationRepository struct {
	db *gorm.DB
}

func NewAIConfigurationRepository(db *gorm.DB) repository.AIConfigurationRepository {
	return &aiConfigurationRepository{db: db}
}

func (repo *aiConfigurationRepository) Create(ctx context.Context, cfg *entity.AIConfiguration) error {
	cfgM := fromAIConfigurationDomain(cfg)

	if err := repo.db.WithContext(ctx).Create(cfgM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create ai configuration")
	}

	cfg.ID = cfgM.ID
	cfg.CreatedAt = cfgM.CreatedAt
	cfg.UpdatedAt = cfgM.UpdatedAt

	return nil
}

func (repo *aiConfigurationRepository) FindByID(ctx context.Context, userID, id uuid.UUID) (*entity.AIConfiguration, error) {
	var cfgM model.AIConfigurationModel
	err := repo.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&cfgM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAIConfigurationNotFound
		}

		return nil, errors.Wrap(err, "failed to find ai configuration")
	}

	return toAIConfigurationDomain(&cfgM), nil
}

func (repo *aiConfigurationRepository) List(ctx context.Context, filter repository.AIConfigurationFilter) (*entity.Page[*entity.AIConfiguration], error) {
	query := repo.db.Model(&model.AIConfigurationModel{}).Where("user_id = ?", filter.UserID)

	rows, total, err := paginate[model.AIConfigurationModel](ctx, query, filter.Page, "created_at DESC")
	if err != nil {
		return nil, errors.Wrap(err, "failed to list ai configurations")
	}

	return mapPage(rows, total, filter.Page, toAIConfigurationDomain), nil
}

func (repo *aiConfigurationRepository) Update(ctx context.Context, cfg *entity.AIConfiguration) error {
	now := time.Now()
	result := repo.db.WithContext(ctx).
		Model(&model.AIConfigurationModel{}).
		Where("id = ? AND user_id = ?", cfg.ID, cfg.UserID).
		Updates(map[string]any{
			"name":        cfg.Name,
			"model_name":  cfg.ModelName,
			"temperature": cfg.Temperature,
			"max_length":  cfg.MaxLength,
			"is_active":   cfg.IsActive,
			"updated_at":  now,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update ai configuration")
	}
	if result.RowsAffected == 0 {
		return repository.ErrAIConfigurationNotFound
	}

	cfg.UpdatedAt = now

	return nil
}

func (repo *aiConfigurationRepository) Delete(ctx context.Context, userID, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&model.AIConfigurationModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete ai configuration")
	}
	if result.RowsAffected == 0 {
		return repository.ErrAIConfigurationNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toJSONMap(m map[string]any) datatypes.JSONMap {
	if m == nil {
		return nil
	}

	return datatypes.JSONMap(m)
}

func fromJSONMap(m datatypes.JSONMap) map[string]any {
	if m == nil {
		return nil
	}

	return map[string]any(m)
}

func toLLMProviderDomain(data *model.LLMProviderModel) *entity.LLMProvider {
	if data == nil {
		return nil
	}

	return &entity.LLMProvider{
		ID:            data.ID,
		Name:          data.Name,
		ProviderClass: entity.ProviderClass(data.ProviderClass),
		APIKey:        data.APIKey,
		BaseURL:       data.BaseURL,
		IsActive:      data.IsActive,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}

func toAIModelDomain(data *model.AIModelModel) *entity.AIModel {
	if data == nil {
		return nil
	}

	return &entity.AIModel{
		ID:            data.ID,
		ProviderID:    data.ProviderID,
		Provider:      toLLMProviderDomain(data.Provider),
		Name:          data.Name,
		ModelID:       data.ModelID,
		ModelType:     entity.ModelType(data.ModelType),
		Description:   data.Description,
		ContextWindow: data.ContextWindow,
		IsActive:      data.IsActive,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}

func toAIAgentDomain(data *model.AIAgentModel) *entity.AIAgent {
	return &entity.AIAgent{
		ID:          data.ID,
		ModelID:     data.ModelID,
		Model:       toAIModelDomain(data.Model),
		Name:        data.Name,
		Description: data.Description,
		TaskType:    entity.TaskType(data.TaskType),
		Config:      fromJSONMap(data.Config),
		IsActive:    data.IsActive,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

func toAgentTaskDomain(data *model.AgentTaskModel) *entity.AgentTask {
	task := &entity.AgentTask{
		ID:           data.ID,
		AgentID:      data.AgentID,
		RequestedBy:  data.RequestedBy,
		InputData:    fromJSONMap(data.InputData),
		OutputData:   fromJSONMap(data.OutputData),
		ErrorMessage: data.ErrorMessage,
		Status:       entity.TaskStatus(data.Status),
		CompletedAt:  data.CompletedAt,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
	if data.Agent != nil {
		task.AgentName = data.Agent.Name
	}

	return task
}

func toAIConfigurationDomain(data *model.AIConfigurationModel) *entity.AIConfiguration {
	return &entity.AIConfiguration{
		ID:          data.ID,
		UserID:      data.UserID,
		Name:        data.Name,
		ModelName:   data.ModelName,
		Temperature: data.Temperature,
		MaxLength:   data.MaxLength,
		IsActive:    data.IsActive,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

func fromAIConfigurationDomain(data *entity.AIConfiguration) *model.AIConfigurationModel {
	return &model.AIConfigurationModel{
		ID:          data.ID,
		UserID:      data.UserID,
		Name:        data.Name,
		ModelName:   data.ModelName,
		Temperature: data.Temperature,
		MaxLength:   data.MaxLength,
		IsActive:    data.IsActive,
	}
}
