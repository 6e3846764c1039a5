package entity

import (
	"time"

	"github.com/google/uuid"
)

// Contact represents a CRM contact for data transfer between layers.
type Contact struct {
	ID           uuid.UUID `json:"id"`
	CustomerName string    `json:"customer_name"`
	Phone        *string   `json:"phone,omitempty"`
	Email        *string   `json:"email,omitempty"`
	Address      *string   `json:"address,omitempty"`
	Website      *string   `json:"website,omitempty"`
	Notes        []string  `json:"notes,omitempty"`
	Source       string    `json:"source"` // extraction strategy that produced it
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
