package services

import (
	"context"
	"testing"

	"github.com/portfoliosite/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// mockContactRepository is a mock implementation of ContactRepository
type mockContactRepository struct {
	contact *models.Contact
	getErr  error
	updated *models.Contact
}

func (m *mockContactRepository) Create(ctx context.Context, contact *models.Contact) error {
	contact.ID = 1
	return nil
}

func (m *mockContactRepository) GetAll(ctx context.Context) ([]models.Contact, error) {
	return nil, nil
}

func (m *mockContactRepository) GetByID(ctx context.Context, id int) (*models.Contact, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	return m.contact, nil
}

func (m *mockContactRepository) Update(ctx context.Context, contact *models.Contact) error {
	m.updated = contact
	return nil
}

func (m *mockContactRepository) Delete(ctx context.Context, id int) error {
	return nil
}

func (m *mockContactRepository) DeleteAll(ctx context.Context) (int, error) {
	return 0, nil
}

func TestContactService_Create(t *testing.T) {
	logger, _ := zap.NewDevelopment()

	tests := []struct {
		name        string
		req         *models.ContactRequest
		expectedErr error
	}{
		{
			name: "success",
			req: &models.ContactRequest{
				Firstname: "Jane",
				Lastname:  "Doe",
				Email:     "Jane@X.com",
				Subject:   "Hello",
				Body:      "I would like to talk",
			},
		},
		{
			name: "subject is optional",
			req: &models.ContactRequest{
				Firstname: "Jane",
				Lastname:  "Doe",
				Email:     "jane@x.com",
				Body:      "Hi",
			},
		},
		{
			name:        "missing body",
			req:         &models.ContactRequest{Firstname: "Jane", Lastname: "Doe", Email: "jane@x.com"},
			expectedErr: models.ErrValidation,
		},
		{
			name:        "whitespace only fields rejected",
			req:         &models.ContactRequest{Firstname: "  ", Lastname: "Doe", Email: "jane@x.com", Body: "Hi"},
			expectedErr: models.ErrValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewContactService(&mockContactRepository{}, logger)

			contact, err := svc.Create(context.Background(), tt.req)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.Nil(t, contact)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, 1, contact.ID)
			// Email comes back lowercased
			assert.Equal(t, "jane@x.com", contact.Email)
		})
	}
}

func TestContactService_Update(t *testing.T) {
	logger, _ := zap.NewDevelopment()

	t.Run("partial update keeps unset fields", func(t *testing.T) {
		repo := &mockContactRepository{
			contact: &models.Contact{ID: 1, Firstname: "Jane", Lastname: "Doe", Email: "jane@x.com", Subject: "Hello", Body: "Original"},
		}
		svc := NewContactService(repo, logger)

		contact, err := svc.Update(context.Background(), 1, &models.ContactRequest{Body: "Updated"})
		require.NoError(t, err)
		assert.Equal(t, "Updated", contact.Body)
		assert.Equal(t, "Jane", contact.Firstname)
		assert.Equal(t, "Hello", contact.Subject)
		require.NotNil(t, repo.updated)
	})

	t.Run("missing record", func(t *testing.T) {
		svc := NewContactService(&mockContactRepository{getErr: models.ErrNotFound}, logger)

		contact, err := svc.Update(context.Background(), 99, &models.ContactRequest{Body: "Updated"})
		assert.ErrorIs(t, err, models.ErrNotFound)
		assert.Nil(t, contact)
	})
}
