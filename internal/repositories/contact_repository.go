package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/portfoliosite/backend/internal/models"
	"go.uber.org/zap"
)

// contactRepository provides access to the contacts table
type contactRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewContactRepository creates a new contact repository
func NewContactRepository(db *sql.DB, logger *zap.Logger) *contactRepository {
	return &contactRepository{
		db:     db,
		logger: logger,
	}
}

// Create inserts a new contact submission
func (r *contactRepository) Create(ctx context.Context, contact *models.Contact) error {
	query := `
		INSERT INTO contacts (firstname, lastname, email, subject, body)
		VALUES (?, ?, ?, ?, ?)
	`

	result, err := r.db.ExecContext(ctx, query, contact.Firstname, contact.Lastname, contact.Email, contact.Subject, contact.Body)
	if err != nil {
		r.logger.Error("failed to create contact", zap.Error(err))
		return fmt.Errorf("failed to create contact: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}

	contact.ID = int(id)
	return nil
}

// GetAll retrieves all contacts, newest first
func (r *contactRepository) GetAll(ctx context.Context) ([]models.Contact, error) {
	query := `
		SELECT id, firstname, lastname, email, subject, body, created_at, updated_at
		FROM contacts
		ORDER BY created_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		r.logger.Error("failed to get contacts", zap.Error(err))
		return nil, fmt.Errorf("failed to get contacts: %w", err)
	}
	defer rows.Close()

	contacts := []models.Contact{}
	for rows.Next() {
		var c models.Contact
		if err := rows.Scan(&c.ID, &c.Firstname, &c.Lastname, &c.Email, &c.Subject, &c.Body, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan contact: %w", err)
		}
		contacts = append(contacts, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate contacts: %w", err)
	}

	return contacts, nil
}

// GetByID retrieves a contact by ID
func (r *contactRepository) GetByID(ctx context.Context, id int) (*models.Contact, error) {
	query := `
		SELECT id, firstname, lastname, email, subject, body, created_at, updated_at
		FROM contacts
		WHERE id = ?
		LIMIT 1
	`

	c := &models.Contact{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(&c.ID, &c.Firstname, &c.Lastname, &c.Email, &c.Subject, &c.Body, &c.CreatedAt, &c.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, models.ErrNotFound
	}
	if err != nil {
		r.logger.Error("failed to get contact by id", zap.Error(err), zap.Int("id", id))
		return nil, fmt.Errorf("failed to get contact by id: %w", err)
	}

	return c, nil
}

// Update updates a contact by ID
func (r *contactRepository) Update(ctx context.Context, contact *models.Contact) error {
	query := `
		UPDATE contacts
		SET firstname = ?, lastname = ?, email = ?, subject = ?, body = ?
		WHERE id = ?
	`

	result, err := r.db.ExecContext(ctx, query, contact.Firstname, contact.Lastname, contact.Email, contact.Subject, contact.Body, contact.ID)
	if err != nil {
		r.logger.Error("failed to update contact", zap.Error(err), zap.Int("id", contact.ID))
		return fmt.Errorf("failed to update contact: %w", err)
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

// Delete removes a contact by ID
func (r *contactRepository) Delete(ctx context.Context, id int) error {
	query := `DELETE FROM contacts WHERE id = ?`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		r.logger.Error("failed to delete contact", zap.Error(err), zap.Int("id", id))
		return fmt.Errorf("failed to delete contact: %w", err)
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

// DeleteAll removes every contact and returns the number deleted
func (r *contactRepository) DeleteAll(ctx context.Context) (int, error) {
	result, err := r.db.ExecContext(ctx, `DELETE FROM contacts`)
	if err != nil {
		r.logger.Error("failed to delete contacts", zap.Error(err))
		return 0, fmt.Errorf("failed to delete contacts: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get affected rows: %w", err)
	}

	return int(affected), nil
}
