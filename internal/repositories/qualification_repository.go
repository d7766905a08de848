package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/portfoliosite/backend/internal/models"
	"go.uber.org/zap"
)

// qualificationRepository provides access to the qualifications table
type qualificationRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewQualificationRepository creates a new qualification repository
func NewQualificationRepository(db *sql.DB, logger *zap.Logger) *qualificationRepository {
	return &qualificationRepository{
		db:     db,
		logger: logger,
	}
}

// Create inserts a new qualification
func (r *qualificationRepository) Create(ctx context.Context, q *models.Qualification) error {
	query := `
		INSERT INTO qualifications (title, firstname, lastname, email, completion, description)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	result, err := r.db.ExecContext(ctx, query, q.Title, q.Firstname, q.Lastname, q.Email, q.Completion, q.Description)
	if err != nil {
		r.logger.Error("failed to create qualification", zap.Error(err))
		return fmt.Errorf("failed to create qualification: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}

	q.ID = int(id)
	return nil
}

// GetAll retrieves all qualifications, newest first
func (r *qualificationRepository) GetAll(ctx context.Context) ([]models.Qualification, error) {
	query := `
		SELECT id, title, firstname, lastname, email, completion, description, created_at, updated_at
		FROM qualifications
		ORDER BY created_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		r.logger.Error("failed to get qualifications", zap.Error(err))
		return nil, fmt.Errorf("failed to get qualifications: %w", err)
	}
	defer rows.Close()

	qualifications := []models.Qualification{}
	for rows.Next() {
		var q models.Qualification
		if err := rows.Scan(&q.ID, &q.Title, &q.Firstname, &q.Lastname, &q.Email, &q.Completion, &q.Description, &q.CreatedAt, &q.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan qualification: %w", err)
		}
		qualifications = append(qualifications, q)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate qualifications: %w", err)
	}

	return qualifications, nil
}

// GetByID retrieves a qualification by ID
func (r *qualificationRepository) GetByID(ctx context.Context, id int) (*models.Qualification, error) {
	query := `
		SELECT id, title, firstname, lastname, email, completion, description, created_at, updated_at
		FROM qualifications
		WHERE id = ?
		LIMIT 1
	`

	q := &models.Qualification{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(&q.ID, &q.Title, &q.Firstname, &q.Lastname, &q.Email, &q.Completion, &q.Description, &q.CreatedAt, &q.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, models.ErrNotFound
	}
	if err != nil {
		r.logger.Error("failed to get qualification by id", zap.Error(err), zap.Int("id", id))
		return nil, fmt.Errorf("failed to get qualification by id: %w", err)
	}

	return q, nil
}

// Update updates a qualification by ID
func (r *qualificationRepository) Update(ctx context.Context, q *models.Qualification) error {
	query := `
		UPDATE qualifications
		SET title = ?, firstname = ?, lastname = ?, email = ?, completion = ?, description = ?
		WHERE id = ?
	`

	result, err := r.db.ExecContext(ctx, query, q.Title, q.Firstname, q.Lastname, q.Email, q.Completion, q.Description, q.ID)
	if err != nil {
		r.logger.Error("failed to update qualification", zap.Error(err), zap.Int("id", q.ID))
		return fmt.Errorf("failed to update qualification: %w", err)
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

// Delete removes a qualification by ID
func (r *qualificationRepository) Delete(ctx context.Context, id int) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM qualifications WHERE id = ?`, id)
	if err != nil {
		r.logger.Error("failed to delete qualification", zap.Error(err), zap.Int("id", id))
		return fmt.Errorf("failed to delete qualification: %w", err)
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

// DeleteAll removes every qualification and returns the number deleted
func (r *qualificationRepository) DeleteAll(ctx context.Context) (int, error) {
	result, err := r.db.ExecContext(ctx, `DELETE FROM qualifications`)
	if err != nil {
		r.logger.Error("failed to delete qualifications", zap.Error(err))
		return 0, fmt.Errorf("failed to delete qualifications: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get affected rows: %w", err)
	}

	return int(affected), nil
}
