// Package postgres provides the GORM-backed implementation of the contact repository
package postgres

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/lDirtyl/goit-final-aws-email-db/domain"
	"github.com/lDirtyl/goit-final-aws-email-db/domain/model"
	"github.com/lDirtyl/goit-final-aws-email-db/domain/repository"
	"github.com/lDirtyl/goit-final-aws-email-db/pkg/logger"
)

// contactRepository implements the Contact repository interface using GORM
type contactRepository struct {
	// db is the GORM database instance for database operations
	db *gorm.DB
	// logger is used for logging operations within the repository
	logger logger.LoggerInterface
}

// NewContactRepository creates a new instance of contactRepository
func NewContactRepository(db *gorm.DB, logger logger.LoggerInterface) repository.Contact {
	return &contactRepository{
		db:     db,
		logger: logger,
	}
}

// Create adds a new contact to the database
func (r *contactRepository) Create(ctx context.Context, contact *model.Contact) error {
	r.logger.InfoContext(ctx, "Creating contact", "name", contact.Name)
	if err := r.db.WithContext(ctx).Create(contact).Error; err != nil {
		r.logger.ErrorContext(ctx, "Failed to create contact", "name", contact.Name, "error", err)
		return fmt.Errorf("failed to create contact: %w", err)
	}
	r.logger.InfoContext(ctx, "Contact created successfully", "id", contact.ID, "name", contact.Name)
	return nil
}

// List retrieves all contacts in ascending identifier order
func (r *contactRepository) List(ctx context.Context) ([]*model.Contact, error) {
	r.logger.InfoContext(ctx, "Listing contacts")
	contacts := make([]*model.Contact, 0)
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&contacts).Error; err != nil {
		r.logger.ErrorContext(ctx, "Failed to list contacts", "error", err)
		return nil, fmt.Errorf("failed to list contacts: %w", err)
	}
	r.logger.InfoContext(ctx, "Contacts listed successfully", "count", len(contacts))
	return contacts, nil
}

// SearchByName retrieves contacts whose name contains the keyword
func (r *contactRepository) SearchByName(ctx context.Context, keyword string) ([]*model.Contact, error) {
	r.logger.InfoContext(ctx, "Searching contacts", "keyword", keyword)
	contacts := make([]*model.Contact, 0)
	if err := r.db.WithContext(ctx).Where("name LIKE ?", "%"+keyword+"%").Order("id ASC").Find(&contacts).Error; err != nil {
		r.logger.ErrorContext(ctx, "Failed to search contacts", "keyword", keyword, "error", err)
		return nil, fmt.Errorf("failed to search contacts: %w", err)
	}
	r.logger.InfoContext(ctx, "Contacts searched successfully", "keyword", keyword, "count", len(contacts))
	return contacts, nil
}

// GetByName retrieves a contact by exact name
func (r *contactRepository) GetByName(ctx context.Context, name string) (*model.Contact, error) {
	r.logger.InfoContext(ctx, "Getting contact by name", "name", name)
	var contact model.Contact
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&contact).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			r.logger.WarnContext(ctx, "Contact not found by name", "name", name)
			return nil, domain.ErrNotFound
		}
		r.logger.ErrorContext(ctx, "Failed to get contact by name", "name", name, "error", err)
		return nil, fmt.Errorf("failed to get contact: %w", err)
	}
	r.logger.InfoContext(ctx, "Contact retrieved by name", "id", contact.ID, "name", contact.Name)
	return &contact, nil
}

// Count returns the total number of stored contacts
func (r *contactRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&model.Contact{}).Count(&total).Error; err != nil {
		r.logger.ErrorContext(ctx, "Failed to count contacts", "error", err)
		return 0, fmt.Errorf("failed to count contacts: %w", err)
	}
	return total, nil
}
