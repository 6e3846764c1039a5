package repository

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"

	"github.com/ekaraca/cardscan/constants"
	"github.com/ekaraca/cardscan/internal/entity"
)

// ContactRepository persists CRM contacts created from scan results.
type ContactRepository interface {
	Create(ctx context.Context, c *entity.Contact) (*entity.Contact, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Contact, error)
	List(ctx context.Context) ([]*entity.Contact, error)
}

// ScanJobRepository records one audit row per scan attempt.
type ScanJobRepository interface {
	Start(ctx context.Context, ocrBytes int) (uuid.UUID, error)
	FinishSuccess(ctx context.Context, id uuid.UUID, strategy constants.ExtractionStrategy, extracted json.RawMessage, notes []string) error
	FinishFailure(ctx context.Context, id uuid.UUID, errMsg string) error
	SetContactID(ctx context.Context, id, contactID uuid.UUID) error
}
