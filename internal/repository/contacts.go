package repository

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ekaraca/cardscan/internal/common"
	"github.com/ekaraca/cardscan/internal/entity"
)

type contactRepository struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

// NewContactRepository returns a Postgres-backed ContactRepository.
func NewContactRepository(pool *pgxpool.Pool, logger *slog.Logger) ContactRepository {
	if logger == nil {
		logger = slog.Default()
	}
	return &contactRepository{pool: pool, logger: logger}
}

func (r *contactRepository) Create(ctx context.Context, c *entity.Contact) (*entity.Contact, error) {
	now := time.Now().UTC()
	out := *c
	if out.ID == uuid.Nil {
		out.ID = uuid.New()
	}
	out.CreatedAt = now
	out.UpdatedAt = now

	const q = `
INSERT INTO contacts (id, customer_name, phone, email, address, website, notes, source, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.pool.Exec(ctx, q,
		out.ID, out.CustomerName, out.Phone, out.Email, out.Address,
		out.Website, out.Notes, out.Source, out.CreatedAt, out.UpdatedAt,
	)
	if err != nil {
		r.logger.Error("contacts.create failed", "error", err)
		return nil, common.WrapError(common.ErrDatabase, err.Error())
	}
	r.logger.Info("contacts.create", "contact_id", out.ID, "customer_name", out.CustomerName)
	return &out, nil
}

func (r *contactRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Contact, error) {
	const q = `
SELECT id, customer_name, phone, email, address, website, notes, source, created_at, updated_at
FROM contacts WHERE id = $1`
	var c entity.Contact
	err := r.pool.QueryRow(ctx, q, id).Scan(
		&c.ID, &c.CustomerName, &c.Phone, &c.Email, &c.Address,
		&c.Website, &c.Notes, &c.Source, &c.CreatedAt, &c.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, common.ErrNotFound
	}
	if err != nil {
		return nil, common.WrapError(common.ErrDatabase, err.Error())
	}
	return &c, nil
}

func (r *contactRepository) List(ctx context.Context) ([]*entity.Contact, error) {
	const q = `
SELECT id, customer_name, phone, email, address, website, notes, source, created_at, updated_at
FROM contacts ORDER BY created_at DESC`
	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		return nil, common.WrapError(common.ErrDatabase, err.Error())
	}
	defer rows.Close()

	var out []*entity.Contact
	for rows.Next() {
		var c entity.Contact
		if err := rows.Scan(
			&c.ID, &c.CustomerName, &c.Phone, &c.Email, &c.Address,
			&c.Website, &c.Notes, &c.Source, &c.CreatedAt, &c.UpdatedAt,
		); err != nil {
			return nil, common.WrapError(common.ErrDatabase, err.Error())
		}
		out = append(out, &c)
	}
	return out, rows.Err()
}
