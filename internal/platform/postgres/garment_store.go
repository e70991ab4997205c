package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/maitafernandez/armario-api/internal/domain"
	"github.com/maitafernandez/armario-api/internal/store"
)

// GarmentStore implements store.GarmentStore using a PostgreSQL database as
// the storage backend.
type GarmentStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewGarmentStore creates a PostgreSQL implementation of store.GarmentStore.
func NewGarmentStore(db store.DBTX, logger *slog.Logger) *GarmentStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &GarmentStore{
		db:     db,
		logger: logger.With(slog.String("component", "garment_store")),
	}
}

var _ store.GarmentStore = (*GarmentStore)(nil)

// Create implements store.GarmentStore.Create.
func (s *GarmentStore) Create(ctx context.Context, garment *domain.Garment) error {
	if err := garment.Validate(); err != nil {
		return fmt.Errorf("%w: %w", store.ErrInvalidEntity, err)
	}

	const query = `
		INSERT INTO ropa (id, owner_id, nombre, categoria, color, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := s.db.ExecContext(ctx, query,
		garment.ID,
		garment.OwnerID,
		garment.Name,
		nullable(garment.Category),
		nullable(garment.Color),
		garment.CreatedAt,
		garment.UpdatedAt,
	)
	if err != nil {
		return wrapDBError("create garment", err)
	}
	return nil
}

// ListByOwner implements store.GarmentStore.ListByOwner.
func (s *GarmentStore) ListByOwner(ctx context.Context, ownerID string) ([]*domain.Garment, error) {
	const query = `
		SELECT id, owner_id, nombre, categoria, color, created_at, updated_at
		FROM ropa
		WHERE owner_id = $1
		ORDER BY created_at DESC`

	rows, err := s.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, wrapDBError("list garments", err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			s.logger.Debug("failed to close rows", slog.String("error", err.Error()))
		}
	}()

	garments := make([]*domain.Garment, 0)
	for rows.Next() {
		g, err := scanGarment(rows)
		if err != nil {
			return nil, wrapDBError("scan garment", err)
		}
		garments = append(garments, g)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapDBError("list garments", err)
	}
	return garments, nil
}

// GetByID implements store.GarmentStore.GetByID.
func (s *GarmentStore) GetByID(ctx context.Context, ownerID string, id uuid.UUID) (*domain.Garment, error) {
	const query = `
		SELECT id, owner_id, nombre, categoria, color, created_at, updated_at
		FROM ropa
		WHERE id = $1 AND owner_id = $2`

	row := s.db.QueryRowContext(ctx, query, id, ownerID)
	g, err := scanGarment(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrGarmentNotFound
		}
		return nil, wrapDBError("get garment", err)
	}
	return g, nil
}

// Delete implements store.GarmentStore.Delete.
func (s *GarmentStore) Delete(ctx context.Context, ownerID string, id uuid.UUID) error {
	const query = `DELETE FROM ropa WHERE id = $1 AND owner_id = $2`

	res, err := s.db.ExecContext(ctx, query, id, ownerID)
	if err != nil {
		return wrapDBError("delete garment", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return wrapDBError("delete garment", err)
	}
	if affected == 0 {
		return store.ErrGarmentNotFound
	}
	return nil
}

// scanner is the common Scan surface of *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanGarment(row scanner) (*domain.Garment, error) {
	var (
		g        domain.Garment
		category sql.NullString
		color    sql.NullString
	)
	err := row.Scan(
		&g.ID,
		&g.OwnerID,
		&g.Name,
		&category,
		&color,
		&g.CreatedAt,
		&g.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	g.Category = category.String
	g.Color = color.String
	return &g, nil
}
