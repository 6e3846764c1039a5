package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/ekaraca/cardscan/constants"
	"github.com/ekaraca/cardscan/internal/common"
	"github.com/ekaraca/cardscan/internal/entity"
)

// LocalStore is a SQLite-backed store for the one-shot CLI. It implements
// both ContactRepository and ScanJobRepository so the processor wiring is the
// same as against Postgres.
type LocalStore struct {
	db     *sql.DB
	logger *slog.Logger
}

// OpenLocal opens (and if needed creates) the SQLite database at path.
func OpenLocal(ctx context.Context, path string, logger *slog.Logger) (*LocalStore, error) {
	if logger == nil {
		logger = slog.Default()
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, common.WrapError(common.ErrDatabase, err.Error())
	}
	const ddl = `
CREATE TABLE IF NOT EXISTS contacts (
	id            TEXT PRIMARY KEY,
	customer_name TEXT NOT NULL,
	phone         TEXT,
	email         TEXT,
	address       TEXT,
	website       TEXT,
	notes         TEXT,
	source        TEXT NOT NULL,
	created_at    TIMESTAMP NOT NULL,
	updated_at    TIMESTAMP NOT NULL
);
CREATE TABLE IF NOT EXISTS scan_jobs (
	id             TEXT PRIMARY KEY,
	contact_id     TEXT,
	strategy       TEXT,
	started_at     TIMESTAMP NOT NULL,
	finished_at    TIMESTAMP,
	status         TEXT NOT NULL,
	error_message  TEXT,
	ocr_bytes      INTEGER NOT NULL DEFAULT 0,
	extracted_json TEXT,
	notes          TEXT
);`
	if _, err := db.ExecContext(ctx, ddl); err != nil {
		_ = db.Close()
		return nil, common.WrapError(common.ErrDatabase, err.Error())
	}
	logger.Info("local store opened", "path", path)
	return &LocalStore{db: db, logger: logger}, nil
}

func (s *LocalStore) Close() error { return s.db.Close() }

func (s *LocalStore) Create(ctx context.Context, c *entity.Contact) (*entity.Contact, error) {
	now := time.Now().UTC()
	out := *c
	if out.ID == uuid.Nil {
		out.ID = uuid.New()
	}
	out.CreatedAt = now
	out.UpdatedAt = now

	notes, err := json.Marshal(out.Notes)
	if err != nil {
		return nil, err
	}
	const q = `
INSERT INTO contacts (id, customer_name, phone, email, address, website, notes, source, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err = s.db.ExecContext(ctx, q,
		out.ID.String(), out.CustomerName, out.Phone, out.Email, out.Address,
		out.Website, string(notes), out.Source, out.CreatedAt, out.UpdatedAt,
	)
	if err != nil {
		return nil, common.WrapError(common.ErrDatabase, err.Error())
	}
	return &out, nil
}

func (s *LocalStore) GetByID(ctx context.Context, id uuid.UUID) (*entity.Contact, error) {
	const q = `
SELECT id, customer_name, phone, email, address, website, notes, source, created_at, updated_at
FROM contacts WHERE id = ?`
	return scanContact(s.db.QueryRowContext(ctx, q, id.String()))
}

func (s *LocalStore) List(ctx context.Context) ([]*entity.Contact, error) {
	const q = `
SELECT id, customer_name, phone, email, address, website, notes, source, created_at, updated_at
FROM contacts ORDER BY created_at DESC`
	rows, err := s.db.QueryContext(ctx, q)
	if err != nil {
		return nil, common.WrapError(common.ErrDatabase, err.Error())
	}
	defer rows.Close()

	var out []*entity.Contact
	for rows.Next() {
		c, err := scanContact(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanContact(row rowScanner) (*entity.Contact, error) {
	var (
		c     entity.Contact
		idStr string
		notes sql.NullString
	)
	err := row.Scan(
		&idStr, &c.CustomerName, &c.Phone, &c.Email, &c.Address,
		&c.Website, &notes, &c.Source, &c.CreatedAt, &c.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, common.ErrNotFound
	}
	if err != nil {
		return nil, common.WrapError(common.ErrDatabase, err.Error())
	}
	c.ID, err = uuid.Parse(idStr)
	if err != nil {
		return nil, err
	}
	if notes.Valid && notes.String != "" {
		if err := json.Unmarshal([]byte(notes.String), &c.Notes); err != nil {
			return nil, err
		}
	}
	return &c, nil
}

func (s *LocalStore) Start(ctx context.Context, ocrBytes int) (uuid.UUID, error) {
	id := uuid.New()
	const q = `INSERT INTO scan_jobs (id, started_at, status, ocr_bytes) VALUES (?, ?, ?, ?)`
	_, err := s.db.ExecContext(ctx, q, id.String(), time.Now().UTC(), string(constants.ScanStatusRunning), ocrBytes)
	if err != nil {
		return uuid.Nil, common.WrapError(common.ErrDatabase, err.Error())
	}
	return id, nil
}

func (s *LocalStore) FinishSuccess(ctx context.Context, id uuid.UUID, strategy constants.ExtractionStrategy, extracted json.RawMessage, notes []string) error {
	notesJSON, err := json.Marshal(notes)
	if err != nil {
		return err
	}
	const q = `
UPDATE scan_jobs SET finished_at = ?, status = ?, strategy = ?, extracted_json = ?, notes = ? WHERE id = ?`
	_, err = s.db.ExecContext(ctx, q,
		time.Now().UTC(), string(constants.ScanStatusOK), string(strategy),
		string(extracted), string(notesJSON), id.String(),
	)
	if err != nil {
		return common.WrapError(common.ErrDatabase, err.Error())
	}
	return nil
}

func (s *LocalStore) FinishFailure(ctx context.Context, id uuid.UUID, errMsg string) error {
	const q = `UPDATE scan_jobs SET finished_at = ?, status = ?, error_message = ? WHERE id = ?`
	_, err := s.db.ExecContext(ctx, q, time.Now().UTC(), string(constants.ScanStatusFailed), errMsg, id.String())
	if err != nil {
		return common.WrapError(common.ErrDatabase, err.Error())
	}
	return nil
}

func (s *LocalStore) SetContactID(ctx context.Context, id, contactID uuid.UUID) error {
	const q = `UPDATE scan_jobs SET contact_id = ? WHERE id = ?`
	_, err := s.db.ExecContext(ctx, q, contactID.String(), id.String())
	if err != nil {
		return common.WrapError(common.ErrDatabase, err.Error())
	}
	return nil
}
