// Package usecase contains business logic for contact operations
package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/lDirtyl/goit-final-aws-email-db/domain"
	"github.com/lDirtyl/goit-final-aws-email-db/domain/model"
	"github.com/lDirtyl/goit-final-aws-email-db/domain/repository"
	"github.com/lDirtyl/goit-final-aws-email-db/pkg/logger"
)

// ContactUseCase defines the interface for contact-related business operations
type ContactUseCase interface {
	// AddContact validates and stores a new contact
	AddContact(ctx context.Context, name, email string) (*model.Contact, error)
	// ListContacts retrieves every contact in insertion order
	ListContacts(ctx context.Context) ([]*model.Contact, error)
	// SearchContacts retrieves contacts whose name matches the keyword
	SearchContacts(ctx context.Context, keyword string) ([]*model.Contact, error)
	// SeedContacts inserts starter records when the table is empty
	SeedContacts(ctx context.Context) error
}

// contactUseCase implements the ContactUseCase interface
type contactUseCase struct {
	// contactRepo is the repository interface for contact database operations
	contactRepo repository.Contact
	// logger is used for logging operations within the usecase
	logger logger.LoggerInterface
}

// NewContactUseCase creates a new instance of contactUseCase
func NewContactUseCase(contactRepo repository.Contact, appLogger logger.LoggerInterface) ContactUseCase {
	return &contactUseCase{
		contactRepo: contactRepo,
		logger:      appLogger,
	}
}

// seedContacts are the starter records inserted into an empty table
var seedContacts = []model.Contact{
	{Name: "andrii", Email: "andrii@example.com"},
	{Name: "olena", Email: "olena@example.com"},
	{Name: "max", Email: "max@example.com"},
}

// AddContact validates and stores a new contact
func (uc *contactUseCase) AddContact(ctx context.Context, name, email string) (*model.Contact, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)

	uc.logger.InfoContext(ctx, "Adding contact in usecase", "name", name)

	// Business logic validation
	if name == "" {
		uc.logger.WarnContext(ctx, "Name is required for contact creation")
		return nil, domain.ErrNameRequired
	}

	if email == "" {
		uc.logger.WarnContext(ctx, "Email is required for contact creation")
		return nil, domain.ErrEmailRequired
	}

	if !strings.Contains(email, "@") || !strings.Contains(email, ".") {
		uc.logger.WarnContext(ctx, "Email failed the shape check", "email", email)
		return nil, domain.ErrEmailInvalid
	}

	// Check if a contact with this name already exists
	existing, err := uc.contactRepo.GetByName(ctx, name)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		uc.logger.ErrorContext(ctx, "Error checking existing contact", "name", name, "error", err)
		return nil, fmt.Errorf("error checking existing contact: %w", err)
	}
	if existing != nil {
		uc.logger.WarnContext(ctx, "Contact with this name already exists", "name", name)
		return nil, domain.ErrContactAlreadyExists
	}

	contact := &model.Contact{
		Name:  name,
		Email: email,
	}

	if err := uc.contactRepo.Create(ctx, contact); err != nil {
		uc.logger.ErrorContext(ctx, "Failed to create contact in repository", "name", name, "error", err)
		return nil, err
	}

	uc.logger.InfoContext(ctx, "Contact added successfully in usecase", "id", contact.ID, "name", contact.Name)
	return contact, nil
}

// ListContacts retrieves every contact in insertion order
func (uc *contactUseCase) ListContacts(ctx context.Context) ([]*model.Contact, error) {
	uc.logger.InfoContext(ctx, "Listing contacts in usecase")

	contacts, err := uc.contactRepo.List(ctx)
	if err != nil {
		uc.logger.ErrorContext(ctx, "Failed to list contacts in repository", "error", err)
		return nil, err
	}

	uc.logger.InfoContext(ctx, "Contacts listed successfully in usecase", "count", len(contacts))
	return contacts, nil
}

// SearchContacts retrieves contacts whose name matches the keyword
func (uc *contactUseCase) SearchContacts(ctx context.Context, keyword string) ([]*model.Contact, error) {
	keyword = strings.TrimSpace(keyword)

	uc.logger.InfoContext(ctx, "Searching contacts in usecase", "keyword", keyword)

	if keyword == "" {
		uc.logger.WarnContext(ctx, "Search keyword is required")
		return nil, domain.ErrKeywordRequired
	}

	contacts, err := uc.contactRepo.SearchByName(ctx, keyword)
	if err != nil {
		uc.logger.ErrorContext(ctx, "Failed to search contacts in repository", "keyword", keyword, "error", err)
		return nil, err
	}

	uc.logger.InfoContext(ctx, "Contacts searched successfully in usecase", "keyword", keyword, "count", len(contacts))
	return contacts, nil
}

// SeedContacts inserts starter records when the table is empty
func (uc *contactUseCase) SeedContacts(ctx context.Context) error {
	total, err := uc.contactRepo.Count(ctx)
	if err != nil {
		return fmt.Errorf("error counting contacts before seed: %w", err)
	}

	if total > 0 {
		uc.logger.InfoContext(ctx, "Seed skipped, table is not empty", "count", total)
		return nil
	}

	for _, seed := range seedContacts {
		contact := seed
		if err := uc.contactRepo.Create(ctx, &contact); err != nil {
			return fmt.Errorf("error seeding contact %q: %w", contact.Name, err)
		}
	}

	uc.logger.InfoContext(ctx, "Seeded starter contacts", "count", len(seedContacts))
	return nil
}
