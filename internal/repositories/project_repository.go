package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/portfoliosite/backend/internal/models"
	"go.uber.org/zap"
)

// projectRepository provides access to the projects table. The tech list is
// stored as a JSON column.
type projectRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewProjectRepository creates a new project repository
func NewProjectRepository(db *sql.DB, logger *zap.Logger) *projectRepository {
	return &projectRepository{
		db:     db,
		logger: logger,
	}
}

// Create inserts a new project
func (r *projectRepository) Create(ctx context.Context, project *models.Project) error {
	tech, err := marshalStringList(project.Tech)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO projects (title, description, role, outcome, tech, status)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	result, err := r.db.ExecContext(ctx, query, project.Title, project.Description, project.Role, project.Outcome, tech, project.Status)
	if err != nil {
		r.logger.Error("failed to create project", zap.Error(err))
		return fmt.Errorf("failed to create project: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}

	project.ID = int(id)
	return nil
}

// GetAll retrieves all projects, newest first
func (r *projectRepository) GetAll(ctx context.Context) ([]models.Project, error) {
	query := `
		SELECT id, title, description, role, outcome, tech, status, created_at, updated_at
		FROM projects
		ORDER BY created_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		r.logger.Error("failed to get projects", zap.Error(err))
		return nil, fmt.Errorf("failed to get projects: %w", err)
	}
	defer rows.Close()

	projects := []models.Project{}
	for rows.Next() {
		p, err := scanProject(rows.Scan)
		if err != nil {
			return nil, err
		}
		projects = append(projects, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate projects: %w", err)
	}

	return projects, nil
}

// GetByID retrieves a project by ID
func (r *projectRepository) GetByID(ctx context.Context, id int) (*models.Project, error) {
	query := `
		SELECT id, title, description, role, outcome, tech, status, created_at, updated_at
		FROM projects
		WHERE id = ?
		LIMIT 1
	`

	p, err := scanProject(r.db.QueryRowContext(ctx, query, id).Scan)
	if err == sql.ErrNoRows {
		return nil, models.ErrNotFound
	}
	if err != nil {
		r.logger.Error("failed to get project by id", zap.Error(err), zap.Int("id", id))
		return nil, err
	}

	return p, nil
}

// Update updates a project by ID
func (r *projectRepository) Update(ctx context.Context, project *models.Project) error {
	tech, err := marshalStringList(project.Tech)
	if err != nil {
		return err
	}

	query := `
		UPDATE projects
		SET title = ?, description = ?, role = ?, outcome = ?, tech = ?, status = ?
		WHERE id = ?
	`

	result, err := r.db.ExecContext(ctx, query, project.Title, project.Description, project.Role, project.Outcome, tech, project.Status, project.ID)
	if err != nil {
		r.logger.Error("failed to update project", zap.Error(err), zap.Int("id", project.ID))
		return fmt.Errorf("failed to update project: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if affected == 0 {
		return models.ErrNotFound
	}

	return nil
}

// Delete removes a project by ID
func (r *projectRepository) Delete(ctx context.Context, id int) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM projects WHERE id = ?`, id)
	if err != nil {
		r.logger.Error("failed to delete project", zap.Error(err), zap.Int("id", id))
		return fmt.Errorf("failed to delete project: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if affected == 0 {
		return models.ErrNotFound
	}

	return nil
}

// DeleteAll removes every project and returns the number deleted
func (r *projectRepository) DeleteAll(ctx context.Context) (int, error) {
	result, err := r.db.ExecContext(ctx, `DELETE FROM projects`)
	if err != nil {
		r.logger.Error("failed to delete projects", zap.Error(err))
		return 0, fmt.Errorf("failed to delete projects: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get affected rows: %w", err)
	}

	return int(affected), nil
}

// scanProject scans one project row, decoding the tech JSON column
func scanProject(scan func(dest ...any) error) (*models.Project, error) {
	var p models.Project
	var tech []byte
	if err := scan(&p.ID, &p.Title, &p.Description, &p.Role, &p.Outcome, &tech, &p.Status, &p.CreatedAt, &p.UpdatedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("failed to scan project: %w", err)
	}
	if err := unmarshalStringList(tech, &p.Tech); err != nil {
		return nil, err
	}
	return &p, nil
}

// marshalStringList encodes a string slice for a JSON column; nil encodes as []
func marshalStringList(list []string) ([]byte, error) {
	if list == nil {
		list = []string{}
	}
	data, err := json.Marshal(list)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal string list: %w", err)
	}
	return data, nil
}

// unmarshalStringList decodes a JSON column into a string slice
func unmarshalStringList(data []byte, list *[]string) error {
	if len(data) == 0 {
		*list = []string{}
		return nil
	}
	if err := json.Unmarshal(data, list); err != nil {
		return fmt.Errorf("failed to unmarshal string list: %w", err)
	}
	return nil
}
