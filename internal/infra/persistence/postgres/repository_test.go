package postgres

import (
	"context"
	"net/http"
	"testing"
	"time"

	"syncfloww/internal/domain/entity"
	domainerrors "syncfloww/internal/domain/errors"
	"syncfloww/internal/domain/repository"
	"syncfloww/internal/errors"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepository_Create(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)
	id := uuid.New()

	mock.ExpectQuery(`INSERT INTO "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(id.String()))

	user := &entity.User{Email: "  Alice@Example.com "}
	require.NoError(t, repo.Create(context.Background(), user))

	assert.Equal(t, id, user.ID)
	assert.Equal(t, "alice@example.com", user.Email)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_Create_DuplicateEmail(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectQuery(`INSERT INTO "users"`).
		WillReturnError(&pgconn.PgError{Code: pgUniqueViolation})

	err := repo.Create(context.Background(), &entity.User{Email: "taken@example.com"})

	assert.True(t, errors.Is(err, domainerrors.ErrUserAlreadyExists))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_FindByEmail_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "users" WHERE email = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "email"}))

	_, err := repo.FindByEmail(context.Background(), "BOB@example.com")

	assert.ErrorIs(t, err, repository.ErrUserNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRefreshTokenRepository_FindRefreshTokenByHash_Expired(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRefreshTokenRepository(db)

	rows := sqlmock.NewRows([]string{"id", "user_id", "token_hash", "expires_at", "created_at"}).
		AddRow(uuid.NewString(), uuid.NewString(), "hash", time.Now().Add(-time.Minute), time.Now().Add(-time.Hour))
	mock.ExpectQuery(`SELECT \* FROM "refresh_tokens" WHERE token_hash = \$1`).WillReturnRows(rows)

	_, err := repo.FindRefreshTokenByHash(context.Background(), "hash")

	assert.ErrorIs(t, err, repository.ErrRefreshTokenExpired)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRefreshTokenRepository_DeleteRefreshTokenByHash_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRefreshTokenRepository(db)

	mock.ExpectExec(`DELETE FROM "refresh_tokens" WHERE token_hash = \$1`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.DeleteRefreshTokenByHash(context.Background(), "gone")

	assert.ErrorIs(t, err, repository.ErrRefreshTokenNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProjectRepository_FindByID_ScopedToOwner(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewProjectRepository(db)
	userID, projectID := uuid.New(), uuid.New()

	mock.ExpectQuery(`SELECT \* FROM "projects" WHERE id = \$1 AND user_id = \$2`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.FindByID(context.Background(), userID, projectID)

	assert.ErrorIs(t, err, repository.ErrProjectNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProjectRepository_List(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewProjectRepository(db)
	userID := uuid.New()
	now := time.Now()

	mock.ExpectQuery(`SELECT count\(\*\) FROM "projects" WHERE user_id = \$1 AND status = \$2 AND \(\(title ILIKE \$3 OR description ILIKE \$4\)\)`).
		WithArgs(userID, "draft", "%launch\\_plan%", "%launch\\_plan%").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))
	mock.ExpectQuery(`SELECT \* FROM "projects" WHERE .* ORDER BY title ASC LIMIT .* OFFSET`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "title", "project_type", "generations_count", "status", "created_at", "updated_at"}).
			AddRow(uuid.NewString(), userID.String(), "Launch", "idea", 1, "draft", now, now))

	page, err := repo.List(context.Background(), repository.ProjectFilter{
		UserID:   userID,
		Status:   entity.ProjectStatusDraft,
		Search:   "launch_plan",
		Ordering: "title",
		Page:     entity.NewPageRequest(2, 2),
	})

	require.NoError(t, err)
	assert.Equal(t, int64(3), page.Total)
	assert.Equal(t, 2, page.TotalPages())
	require.Len(t, page.Items, 1)
	assert.Equal(t, "Launch", page.Items[0].Title)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProjectRepository_List_EmptySkipsSelect(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewProjectRepository(db)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "projects"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	page, err := repo.List(context.Background(), repository.ProjectFilter{UserID: uuid.New(), Page: entity.NewPageRequest(1, 20)})

	require.NoError(t, err)
	assert.Empty(t, page.Items)
	assert.NotNil(t, page.Items)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProjectRepository_Delete_ForeignProject(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewProjectRepository(db)

	mock.ExpectExec(`DELETE FROM "projects" WHERE id = \$1 AND user_id = \$2`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Delete(context.Background(), uuid.New(), uuid.New())

	assert.ErrorIs(t, err, repository.ErrProjectNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSocialAccountRepository_Delete(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewSocialAccountRepository(db)

	mock.ExpectExec(`DELETE FROM "social_accounts" WHERE id = \$1 AND user_id = \$2`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, repo.Delete(context.Background(), uuid.New(), uuid.New()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSocialAccountRepository_Create(t *testing.T) {
	userID := uuid.New()

	t.Run("stores the account", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewSocialAccountRepository(db)
		id := uuid.New()

		mock.ExpectQuery(`INSERT INTO "social_accounts"`).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(id.String()))

		account := &entity.SocialAccount{UserID: userID, Platform: entity.PlatformTikTok, AccountID: "tt-1", IsActive: true}
		require.NoError(t, repo.Create(context.Background(), account))

		assert.Equal(t, id, account.ID)
		assert.False(t, account.CreatedAt.IsZero())
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("same platform account twice", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewSocialAccountRepository(db)

		mock.ExpectQuery(`INSERT INTO "social_accounts"`).
			WillReturnError(&pgconn.PgError{Code: pgUniqueViolation})

		err := repo.Create(context.Background(), &entity.SocialAccount{UserID: userID, Platform: entity.PlatformTikTok, AccountID: "tt-1"})

		var baseErr *domainerrors.BaseError
		require.True(t, errors.As(err, &baseErr))
		assert.Equal(t, http.StatusConflict, baseErr.HTTPCode())
		assert.True(t, errors.Is(err, domainerrors.ErrSocialAccountAlreadyConnected))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unknown brand", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewSocialAccountRepository(db)
		brandID := uuid.New()

		mock.ExpectQuery(`INSERT INTO "social_accounts"`).
			WillReturnError(&pgconn.PgError{Code: pgForeignKeyViolation})

		err := repo.Create(context.Background(), &entity.SocialAccount{UserID: userID, BrandID: &brandID, Platform: entity.PlatformYouTube, AccountID: "yt-1"})

		assert.True(t, errors.Is(err, domainerrors.ErrBrandNotFound))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestAnalyticsRepository_Upsert(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAnalyticsRepository(db)
	accountID, rowID := uuid.New(), uuid.New()
	day := time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC)
	created := day.Add(time.Hour)

	cols := []string{
		"id", "social_account_id", "date", "followers", "following", "likes", "comments", "shares",
		"impressions", "reach", "profile_views", "website_clicks", "created_at", "updated_at",
	}
	mock.ExpectQuery(`INSERT INTO "analytics_data" .* ON CONFLICT \("social_account_id","date"\) DO UPDATE SET .* RETURNING \*`).
		WillReturnRows(sqlmock.NewRows(cols).AddRow(rowID.String(), accountID.String(), day, 120, 5, 40, 3, 1, 900, 700, 30, 2, created, time.Now()))

	data := &entity.AnalyticsData{
		SocialAccountID:  accountID,
		Date:             time.Date(2025, 3, 14, 18, 30, 0, 0, time.UTC),
		AnalyticsMetrics: entity.AnalyticsMetrics{Followers: 120, Likes: 40},
	}
	require.NoError(t, repo.Upsert(context.Background(), data))

	assert.Equal(t, rowID, data.ID)
	assert.Equal(t, int64(900), data.Impressions)
	assert.Equal(t, created, data.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAnalyticsRepository_Upsert_NegativeRejectedByCheck(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAnalyticsRepository(db)

	mock.ExpectQuery(`INSERT INTO "analytics_data"`).
		WillReturnError(&pgconn.PgError{Code: pgCheckViolation})

	err := repo.Upsert(context.Background(), &entity.AnalyticsData{SocialAccountID: uuid.New(), Date: time.Now()})

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, 400, appErr.HTTPCode())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAgentTaskRepository_Transition(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAgentTaskRepository(db)
	taskID := uuid.New()

	mock.ExpectExec(`UPDATE "agent_tasks" SET "completed_at"=\$1,"output_data"=\$2,"status"=\$3,"updated_at"=\$4 WHERE id = \$5 AND status = \$6`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Transition(context.Background(), taskID, entity.TaskTransition{
		From:       entity.TaskStatusProcessing,
		To:         entity.TaskStatusCompleted,
		OutputData: map[string]any{"content": "done"},
		At:         time.Now(),
	})

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAgentTaskRepository_Transition_Conflict(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAgentTaskRepository(db)

	mock.ExpectExec(`UPDATE "agent_tasks" SET "status"=\$1,"updated_at"=\$2 WHERE id = \$3 AND status = \$4`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Transition(context.Background(), uuid.New(), entity.TaskTransition{
		From: entity.TaskStatusPending,
		To:   entity.TaskStatusProcessing,
	})

	assert.ErrorIs(t, err, repository.ErrTaskStatusConflict)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAgentTaskRepository_Transition_RejectsIllegalMove(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAgentTaskRepository(db)

	for _, transition := range []entity.TaskTransition{
		{From: entity.TaskStatusPending, To: entity.TaskStatusCompleted},
		{From: entity.TaskStatusCompleted, To: entity.TaskStatusProcessing},
		{From: entity.TaskStatusFailed, To: entity.TaskStatusPending},
	} {
		err := repo.Transition(context.Background(), uuid.New(), transition)

		assert.ErrorIs(t, err, domainerrors.ErrInvalidTaskTransition, "%s -> %s", transition.From, transition.To)
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAIAgentRepository_FindFirstActiveByTaskType(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAIAgentRepository(db)
	agentID := uuid.New()

	mock.ExpectQuery(`SELECT \* FROM "ai_agents" WHERE task_type = \$1 AND is_active = \$2 ORDER BY created_at ASC, id ASC`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "task_type", "config", "is_active"}).
			AddRow(agentID.String(), "Caption Writer", "caption", []byte(`{"temperature":0.8,"max_tokens":512}`), true))

	agent, err := repo.FindFirstActiveByTaskType(context.Background(), entity.TaskTypeCaption)

	require.NoError(t, err)
	assert.Equal(t, agentID, agent.ID)
	temperature, ok := agent.Temperature()
	assert.True(t, ok)
	assert.InDelta(t, 0.8, temperature, 0.0001)
	maxTokens, ok := agent.MaxTokens()
	assert.True(t, ok)
	assert.Equal(t, 512, maxTokens)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOrderBy(t *testing.T) {
	allowed := map[string]string{"title": "title", "created_at": "created_at"}

	assert.Equal(t, "title ASC", orderBy("title", allowed, "created_at DESC"))
	assert.Equal(t, "created_at DESC", orderBy("-created_at", allowed, "id"))
	assert.Equal(t, "created_at DESC", orderBy("password; DROP TABLE users", allowed, "created_at DESC"))
	assert.Equal(t, "created_at DESC", orderBy("", allowed, "created_at DESC"))
}
