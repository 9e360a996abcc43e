// Package http contains HTTP delivery implementations for the application
package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/lDirtyl/goit-final-aws-email-db/contracts"
	"github.com/lDirtyl/goit-final-aws-email-db/domain"
	"github.com/lDirtyl/goit-final-aws-email-db/domain/model"
	"github.com/lDirtyl/goit-final-aws-email-db/pkg/api"
	"github.com/lDirtyl/goit-final-aws-email-db/pkg/logger"
	"github.com/lDirtyl/goit-final-aws-email-db/pkg/validator"
	"github.com/lDirtyl/goit-final-aws-email-db/usecase"
)

// APIHandler handles the JSON API routes for contacts
type APIHandler struct {
	// ContactUseCase contains business logic for contact operations
	ContactUseCase usecase.ContactUseCase
	// Logger is used for logging operations within the handler
	Logger logger.LoggerInterface
	// API provides standardized API response patterns
	API api.Api
}

// NewAPIHandler creates a new instance of APIHandler
func NewAPIHandler(contactUseCase usecase.ContactUseCase, logger logger.LoggerInterface) *APIHandler {
	return &APIHandler{
		ContactUseCase: contactUseCase,
		Logger:         logger,
		API:            api.New(),
	}
}

// ListContactsHandler handles GET requests to list all contacts
func (h *APIHandler) ListContactsHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	h.Logger.InfoContext(ctx, "List contacts API handler called")

	contacts, err := h.ContactUseCase.ListContacts(ctx)
	if err != nil {
		h.Logger.ErrorContext(ctx, "Error listing contacts", "error", err)
		h.API.InternalServerError(ctx, w, "Failed to list contacts")
		return
	}

	h.Logger.InfoContext(ctx, "Contacts listed successfully in API handler", "count", len(contacts))
	h.API.Success(ctx, w, contactModelsToResponses(contacts))
}

// CreateContactHandler handles POST requests to create a contact
func (h *APIHandler) CreateContactHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	h.Logger.InfoContext(ctx, "Create contact API handler called")

	var req contracts.CreateContactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Logger.ErrorContext(ctx, "Invalid request body for contact creation", "error", err)
		h.API.BadRequest(ctx, w, "Invalid request body")
		return
	}

	// Validate request
	validationErrors := validator.ValidateStruct(req)
	if validationErrors != nil {
		h.Logger.WarnContext(ctx, "Validation failed for contact creation", "errors", validationErrors)
		h.API.ValidationError(ctx, w, h.convertValidationErrors(validationErrors))
		return
	}

	contact, err := h.ContactUseCase.AddContact(ctx, req.Name, req.Email)
	if err != nil {
		h.handleContactError(ctx, w, err)
		return
	}

	h.Logger.InfoContext(ctx, "Contact created successfully in API handler", "id", contact.ID, "name", contact.Name)
	h.API.Created(ctx, w, contactModelToResponse(contact))
}

// SearchContactsHandler handles GET requests to search contacts by keyword
func (h *APIHandler) SearchContactsHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	h.Logger.InfoContext(ctx, "Search contacts API handler called")

	keyword := r.URL.Query().Get("keyword")

	contacts, err := h.ContactUseCase.SearchContacts(ctx, keyword)
	if err != nil {
		h.handleContactError(ctx, w, err)
		return
	}

	h.Logger.InfoContext(ctx, "Contacts searched successfully in API handler", "keyword", keyword, "count", len(contacts))
	h.API.Success(ctx, w, contactModelsToResponses(contacts))
}

// handleContactError maps contact-related errors onto JSON responses
// Client errors (validation, duplicates) log at warn; everything else is a server fault
func (h *APIHandler) handleContactError(ctx context.Context, w http.ResponseWriter, err error) {
	var appErr *domain.AppError
	if errors.As(err, &appErr) {
		h.Logger.WarnContext(ctx, "Contact request rejected", "reason", appErr.Message)
	} else {
		h.Logger.ErrorContext(ctx, "Contact request failed", "error", err)
	}

	switch {
	case errors.Is(err, domain.ErrNameRequired),
		errors.Is(err, domain.ErrEmailRequired),
		errors.Is(err, domain.ErrEmailInvalid),
		errors.Is(err, domain.ErrKeywordRequired):
		h.API.BadRequest(ctx, w, err.Error())
	case errors.Is(err, domain.ErrContactAlreadyExists):
		h.API.Conflict(ctx, w, err.Error())
	default:
		h.API.InternalServerError(ctx, w, "Internal server error")
	}
}

// convertValidationErrors converts validation errors to API format
func (h *APIHandler) convertValidationErrors(validationErrors map[string]string) []api.ErrorDetail {
	errorDetails := make([]api.ErrorDetail, 0, len(validationErrors))
	for field, message := range validationErrors {
		errorDetails = append(errorDetails, api.ErrorDetail{
			Field:   field,
			Message: message,
		})
	}
	return errorDetails
}

// contactModelToResponse converts a contact model to response format
func contactModelToResponse(contact *model.Contact) *contracts.ContactResponse {
	return &contracts.ContactResponse{
		ID:    contact.ID,
		Name:  contact.Name,
		Email: contact.Email,
	}
}

// contactModelsToResponses converts contact models to response format
func contactModelsToResponses(contacts []*model.Contact) []*contracts.ContactResponse {
	responses := make([]*contracts.ContactResponse, len(contacts))
	for i, contact := range contacts {
		responses[i] = contactModelToResponse(contact)
	}
	return responses
}
