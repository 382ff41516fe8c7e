package model

import (
	"time"

	"github.com/google/uuid"
)

// Lead is a contact request received through the site.
type Lead struct {
	ID        uuid.UUID `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message"`
	Lang      string    `json:"lang,omitempty"`
}
