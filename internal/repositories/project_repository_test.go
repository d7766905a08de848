package repositories

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/portfoliosite/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var projectColumns = []string{"id", "title", "description", "role", "outcome", "tech", "status", "created_at", "updated_at"}

func TestProjectRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	logger, _ := zap.NewDevelopment()
	repo := NewProjectRepository(db, logger)

	t.Run("tech list stored as JSON", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO projects (title, description, role, outcome, tech, status) VALUES (?, ?, ?, ?, ?, ?)`)).
			WithArgs("Graphery", "SVG drawing app", "Fullstack", "", []byte(`["React","Node"]`), "completed").
			WillReturnResult(sqlmock.NewResult(3, 1))

		project := &models.Project{
			Title:       "Graphery",
			Description: "SVG drawing app",
			Role:        "Fullstack",
			Tech:        []string{"React", "Node"},
			Status:      "completed",
		}

		err := repo.Create(context.Background(), project)
		require.NoError(t, err)
		assert.Equal(t, 3, project.ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("nil tech list stored as empty JSON array", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO projects`)).
			WithArgs("Bare", "", "", "", []byte(`[]`), "").
			WillReturnResult(sqlmock.NewResult(4, 1))

		err := repo.Create(context.Background(), &models.Project{Title: "Bare"})
		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestProjectRepository_GetAll(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	logger, _ := zap.NewDevelopment()
	repo := NewProjectRepository(db, logger)
	now := time.Now()

	rows := sqlmock.NewRows(projectColumns).
		AddRow(1, "Graphery", "SVG drawing app", "Fullstack", "", []byte(`["React","Node"]`), "completed", now, now).
		AddRow(2, "Tindog", "Landing page", "Frontend", "", []byte(`[]`), "completed", now, now)

	mock.ExpectQuery(regexp.QuoteMeta(`FROM projects ORDER BY created_at DESC`)).
		WillReturnRows(rows)

	projects, err := repo.GetAll(context.Background())
	require.NoError(t, err)
	require.Len(t, projects, 2)
	assert.Equal(t, []string{"React", "Node"}, projects[0].Tech)
	assert.Equal(t, []string{}, projects[1].Tech)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProjectRepository_GetByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	logger, _ := zap.NewDevelopment()
	repo := NewProjectRepository(db, logger)

	t.Run("found", func(t *testing.T) {
		now := time.Now()
		mock.ExpectQuery(regexp.QuoteMeta(`FROM projects WHERE id = ? LIMIT 1`)).
			WithArgs(1).
			WillReturnRows(sqlmock.NewRows(projectColumns).
				AddRow(1, "Graphery", "SVG drawing app", "Fullstack", "", []byte(`["React"]`), "completed", now, now))

		project, err := repo.GetByID(context.Background(), 1)
		require.NoError(t, err)
		assert.Equal(t, "Graphery", project.Title)
		assert.Equal(t, []string{"React"}, project.Tech)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`FROM projects WHERE id = ? LIMIT 1`)).
			WithArgs(99).
			WillReturnRows(sqlmock.NewRows(projectColumns))

		project, err := repo.GetByID(context.Background(), 99)
		assert.ErrorIs(t, err, models.ErrNotFound)
		assert.Nil(t, project)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestProjectRepository_Update(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	logger, _ := zap.NewDevelopment()
	repo := NewProjectRepository(db, logger)

	project := &models.Project{ID: 1, Title: "Graphery", Tech: []string{"React"}, Status: "completed"}

	t.Run("success", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta(`UPDATE projects SET title = ?, description = ?, role = ?, outcome = ?, tech = ?, status = ? WHERE id = ?`)).
			WithArgs("Graphery", "", "", "", []byte(`["React"]`), "completed", 1).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.Update(context.Background(), project)
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing row", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta(`UPDATE projects`)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.Update(context.Background(), project)
		assert.ErrorIs(t, err, models.ErrNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestProjectRepository_Delete(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	logger, _ := zap.NewDevelopment()
	repo := NewProjectRepository(db, logger)

	t.Run("success", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM projects WHERE id = ?`)).
			WithArgs(1).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.Delete(context.Background(), 1)
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing row", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM projects WHERE id = ?`)).
			WithArgs(99).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.Delete(context.Background(), 99)
		assert.ErrorIs(t, err, models.ErrNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestProjectRepository_DeleteAll(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	logger, _ := zap.NewDevelopment()
	repo := NewProjectRepository(db, logger)

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM projects`)).
		WillReturnResult(sqlmock.NewResult(0, 3))

	deleted, err := repo.DeleteAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, deleted)
	assert.NoError(t, mock.ExpectationsWereMet())
}
