package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/portfoliosite/backend/internal/models"
	"go.uber.org/zap"
)

// serviceRepository provides access to the services table. The features list
// is stored as a JSON column. The short description column is named
// short_desc because desc is a reserved word in MySQL.
type serviceRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewServiceRepository creates a new service repository
func NewServiceRepository(db *sql.DB, logger *zap.Logger) *serviceRepository {
	return &serviceRepository{
		db:     db,
		logger: logger,
	}
}

// Create inserts a new service
func (r *serviceRepository) Create(ctx context.Context, service *models.Service) error {
	features, err := marshalStringList(service.Features)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO services (title, short_desc, full_desc, img, features)
		VALUES (?, ?, ?, ?, ?)
	`

	result, err := r.db.ExecContext(ctx, query, service.Title, service.Desc, service.FullDesc, service.Img, features)
	if err != nil {
		r.logger.Error("failed to create service", zap.Error(err))
		return fmt.Errorf("failed to create service: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}

	service.ID = int(id)
	return nil
}

// GetAll retrieves all services, newest first
func (r *serviceRepository) GetAll(ctx context.Context) ([]models.Service, error) {
	query := `
		SELECT id, title, short_desc, full_desc, img, features, created_at, updated_at
		FROM services
		ORDER BY created_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		r.logger.Error("failed to get services", zap.Error(err))
		return nil, fmt.Errorf("failed to get services: %w", err)
	}
	defer rows.Close()

	services := []models.Service{}
	for rows.Next() {
		s, err := scanService(rows.Scan)
		if err != nil {
			return nil, err
		}
		services = append(services, *s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate services: %w", err)
	}

	return services, nil
}

// GetByID retrieves a service by ID
func (r *serviceRepository) GetByID(ctx context.Context, id int) (*models.Service, error) {
	query := `
		SELECT id, title, short_desc, full_desc, img, features, created_at, updated_at
		FROM services
		WHERE id = ?
		LIMIT 1
	`

	s, err := scanService(r.db.QueryRowContext(ctx, query, id).Scan)
	if err == sql.ErrNoRows {
		return nil, models.ErrNotFound
	}
	if err != nil {
		r.logger.Error("failed to get service by id", zap.Error(err), zap.Int("id", id))
		return nil, err
	}

	return s, nil
}

// Update updates a service by ID
func (r *serviceRepository) Update(ctx context.Context, service *models.Service) error {
	features, err := marshalStringList(service.Features)
	if err != nil {
		return err
	}

	query := `
		UPDATE services
		SET title = ?, short_desc = ?, full_desc = ?, img = ?, features = ?
		WHERE id = ?
	`

	result, err := r.db.ExecContext(ctx, query, service.Title, service.Desc, service.FullDesc, service.Img, features, service.ID)
	if err != nil {
		r.logger.Error("failed to update service", zap.Error(err), zap.Int("id", service.ID))
		return fmt.Errorf("failed to update service: %w", err)
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

// Delete removes a service by ID
func (r *serviceRepository) Delete(ctx context.Context, id int) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM services WHERE id = ?`, id)
	if err != nil {
		r.logger.Error("failed to delete service", zap.Error(err), zap.Int("id", id))
		return fmt.Errorf("failed to delete service: %w", err)
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

// DeleteAll removes every service and returns the number deleted
func (r *serviceRepository) DeleteAll(ctx context.Context) (int, error) {
	result, err := r.db.ExecContext(ctx, `DELETE FROM services`)
	if err != nil {
		r.logger.Error("failed to delete services", zap.Error(err))
		return 0, fmt.Errorf("failed to delete services: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get affected rows: %w", err)
	}

	return int(affected), nil
}

// scanService scans one service row, decoding the features JSON column
func scanService(scan func(dest ...any) error) (*models.Service, error) {
	var s models.Service
	var features []byte
	if err := scan(&s.ID, &s.Title, &s.Desc, &s.FullDesc, &s.Img, &features, &s.CreatedAt, &s.UpdatedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("failed to scan service: %w", err)
	}
	if err := unmarshalStringList(features, &s.Features); err != nil {
		return nil, err
	}
	return &s, nil
}
