package repository

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ekaraca/cardscan/constants"
	"github.com/ekaraca/cardscan/internal/common"
)

type scanJobRepository struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

// NewScanJobRepository returns a Postgres-backed ScanJobRepository.
func NewScanJobRepository(pool *pgxpool.Pool, logger *slog.Logger) ScanJobRepository {
	if logger == nil {
		logger = slog.Default()
	}
	return &scanJobRepository{pool: pool, logger: logger}
}

func (r *scanJobRepository) Start(ctx context.Context, ocrBytes int) (uuid.UUID, error) {
	id := uuid.New()
	const q = `
INSERT INTO scan_jobs (id, started_at, status, ocr_bytes)
VALUES ($1, $2, $3, $4)`
	_, err := r.pool.Exec(ctx, q, id, time.Now().UTC(), string(constants.ScanStatusRunning), ocrBytes)
	if err != nil {
		return uuid.Nil, common.WrapError(common.ErrDatabase, err.Error())
	}
	return id, nil
}

func (r *scanJobRepository) FinishSuccess(ctx context.Context, id uuid.UUID, strategy constants.ExtractionStrategy, extracted json.RawMessage, notes []string) error {
	const q = `
UPDATE scan_jobs
SET finished_at = $2, status = $3, strategy = $4, extracted_json = $5, notes = $6
WHERE id = $1`
	_, err := r.pool.Exec(ctx, q, id, time.Now().UTC(), string(constants.ScanStatusOK), string(strategy), extracted, notes)
	if err != nil {
		return common.WrapError(common.ErrDatabase, err.Error())
	}
	return nil
}

func (r *scanJobRepository) FinishFailure(ctx context.Context, id uuid.UUID, errMsg string) error {
	const q = `
UPDATE scan_jobs SET finished_at = $2, status = $3, error_message = $4 WHERE id = $1`
	_, err := r.pool.Exec(ctx, q, id, time.Now().UTC(), string(constants.ScanStatusFailed), errMsg)
	if err != nil {
		return common.WrapError(common.ErrDatabase, err.Error())
	}
	return nil
}

func (r *scanJobRepository) SetContactID(ctx context.Context, id, contactID uuid.UUID) error {
	const q = `UPDATE scan_jobs SET contact_id = $2 WHERE id = $1`
	_, err := r.pool.Exec(ctx, q, id, contactID)
	if err != nil {
		return common.WrapError(common.ErrDatabase, err.Error())
	}
	return nil
}
