// Package contracts contains request and response payloads for the JSON API
package contracts

// CreateContactRequest represents the request payload for creating a contact
type CreateContactRequest struct {
	Name  string `json:"name" validate:"required,min=1,max=255"`
	Email string `json:"email" validate:"required,email,max=255"`
}

// ContactResponse represents the response payload for a contact
type ContactResponse struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}
