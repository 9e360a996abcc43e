// Package repository defines the interfaces for the data access layer
package repository

import (
	"context"

	"github.com/lDirtyl/goit-final-aws-email-db/domain/model"
)

// Contact interface defines the contract for contact-related database operations
type Contact interface {
	// Create adds a new contact to the database and backfills its identifier
	Create(ctx context.Context, contact *model.Contact) error
	// List retrieves all contacts in ascending identifier order
	List(ctx context.Context) ([]*model.Contact, error)
	// SearchByName retrieves contacts whose name contains the keyword
	SearchByName(ctx context.Context, keyword string) ([]*model.Contact, error)
	// GetByName retrieves a contact by exact name
	GetByName(ctx context.Context, name string) (*model.Contact, error)
	// Count returns the total number of stored contacts
	Count(ctx context.Context) (int64, error)
}
