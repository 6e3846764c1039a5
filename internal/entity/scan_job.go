package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// ScanJob represents one scan attempt for data transfer between layers.
type ScanJob struct {
	ID            uuid.UUID       `json:"id"`
	ContactID     *uuid.UUID      `json:"contact_id,omitempty"`
	Strategy      string          `json:"strategy"`
	StartedAt     time.Time       `json:"started_at"`
	FinishedAt    *time.Time      `json:"finished_at,omitempty"`
	Status        string          `json:"status"`
	ErrorMessage  *string         `json:"error_message,omitempty"`
	OCRBytes      int             `json:"ocr_bytes"`
	ExtractedJSON json.RawMessage `json:"extracted_json,omitempty"`
	Notes         []string        `json:"notes,omitempty"`
}
