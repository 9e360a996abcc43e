// Package http contains HTTP delivery implementations for the application
package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/lDirtyl/goit-final-aws-email-db/domain"
	"github.com/lDirtyl/goit-final-aws-email-db/domain/model"
	"github.com/lDirtyl/goit-final-aws-email-db/pkg/logger"
	"github.com/lDirtyl/goit-final-aws-email-db/usecase"
)

// ContactHandler handles the HTML form routes
type ContactHandler struct {
	// ContactUseCase contains business logic for contact operations
	ContactUseCase usecase.ContactUseCase
	// Logger is used for logging operations within the handler
	Logger logger.LoggerInterface
	// PageTitle is rendered as the page heading
	PageTitle string

	renderer *pageRenderer
}

// NewContactHandler creates a new instance of ContactHandler
func NewContactHandler(contactUseCase usecase.ContactUseCase, logger logger.LoggerInterface, pageTitle string) *ContactHandler {
	return &ContactHandler{
		ContactUseCase: contactUseCase,
		Logger:         logger,
		PageTitle:      pageTitle,
		renderer:       newPageRenderer(),
	}
}

// IndexHandler handles GET / and renders the form plus the full contact list
func (h *ContactHandler) IndexHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	h.Logger.InfoContext(ctx, "Index handler called")

	contacts, err := h.ContactUseCase.ListContacts(ctx)
	if err != nil {
		h.Logger.ErrorContext(ctx, "Error listing contacts", "error", err)
		http.Error(w, "failed to load contacts", http.StatusInternalServerError)
		return
	}

	h.renderPage(ctx, w, http.StatusOK, PageData{
		Title:    h.PageTitle,
		Contacts: contacts,
	})
}

// CreateHandler handles POST / form submissions
// A successful insert redirects back to GET / so a refresh does not resubmit
func (h *ContactHandler) CreateHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	h.Logger.InfoContext(ctx, "Create contact form handler called")

	if err := r.ParseForm(); err != nil {
		h.Logger.ErrorContext(ctx, "Invalid form body", "error", err)
		http.Error(w, "invalid form body", http.StatusBadRequest)
		return
	}

	name := r.PostFormValue("name")
	email := r.PostFormValue("email")

	contact, err := h.ContactUseCase.AddContact(ctx, name, email)
	if err != nil {
		h.handleAddError(ctx, w, err)
		return
	}

	h.Logger.InfoContext(ctx, "Contact created via form", "id", contact.ID, "name", contact.Name)
	http.Redirect(w, r, "/", http.StatusFound)
}

// SearchHandler handles POST /search and renders the filtered list
func (h *ContactHandler) SearchHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	h.Logger.InfoContext(ctx, "Search contacts form handler called")

	if err := r.ParseForm(); err != nil {
		h.Logger.ErrorContext(ctx, "Invalid form body", "error", err)
		http.Error(w, "invalid form body", http.StatusBadRequest)
		return
	}

	keyword := r.PostFormValue("keyword")

	contacts, err := h.ContactUseCase.SearchContacts(ctx, keyword)
	if err != nil {
		var appErr *domain.AppError
		if errors.As(err, &appErr) {
			h.renderPage(ctx, w, appErr.Code, PageData{
				Title:    h.PageTitle,
				Feedback: appErr.Message,
				Keyword:  keyword,
			})
			return
		}
		h.Logger.ErrorContext(ctx, "Error searching contacts", "keyword", keyword, "error", err)
		http.Error(w, "failed to search contacts", http.StatusInternalServerError)
		return
	}

	feedback := ""
	if len(contacts) == 0 {
		feedback = "No contact matched the keyword."
	}

	h.renderPage(ctx, w, http.StatusOK, PageData{
		Title:    h.PageTitle,
		Feedback: feedback,
		Keyword:  keyword,
		Contacts: contacts,
	})
}

// handleAddError maps usecase failures onto an HTML response
// Validation and duplicate errors re-render the page with a feedback
// message and the current list so the user keeps context
func (h *ContactHandler) handleAddError(ctx context.Context, w http.ResponseWriter, err error) {
	var appErr *domain.AppError
	if errors.As(err, &appErr) {
		h.Logger.WarnContext(ctx, "Contact creation rejected", "reason", appErr.Message)

		contacts, listErr := h.ContactUseCase.ListContacts(ctx)
		if listErr != nil {
			contacts = []*model.Contact{}
		}

		h.renderPage(ctx, w, appErr.Code, PageData{
			Title:    h.PageTitle,
			Feedback: appErr.Message,
			Contacts: contacts,
		})
		return
	}

	h.Logger.ErrorContext(ctx, "Error creating contact", "error", err)
	http.Error(w, "failed to store contact", http.StatusInternalServerError)
}

// renderPage writes the index page with the given status code
func (h *ContactHandler) renderPage(ctx context.Context, w http.ResponseWriter, status int, data PageData) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := h.renderer.Render(w, data); err != nil {
		h.Logger.ErrorContext(ctx, "Failed to render page", "error", err)
	}
}
