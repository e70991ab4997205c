package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/maitafernandez/armario-api/internal/domain"
	"github.com/maitafernandez/armario-api/internal/store"
)

// OutfitStore implements store.OutfitStore using a PostgreSQL database as
// the storage backend. It takes a *sql.DB rather than store.DBTX because
// creating an outfit writes the outfit row and its garment references in
// one transaction.
type OutfitStore struct {
	db     *sql.DB
	logger *slog.Logger
}

// NewOutfitStore creates a PostgreSQL implementation of store.OutfitStore.
func NewOutfitStore(db *sql.DB, logger *slog.Logger) *OutfitStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &OutfitStore{
		db:     db,
		logger: logger.With(slog.String("component", "outfit_store")),
	}
}

var _ store.OutfitStore = (*OutfitStore)(nil)

// Create implements store.OutfitStore.Create. The outfit row and its
// garment references are written atomically; a reference to a garment that
// does not exist (or belongs to someone else) fails the whole operation
// with ErrGarmentNotFound.
func (s *OutfitStore) Create(ctx context.Context, outfit *domain.Outfit) error {
	if err := outfit.Validate(); err != nil {
		return fmt.Errorf("%w: %w", store.ErrInvalidEntity, err)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return wrapDBError("begin create outfit", err)
	}
	defer func() {
		if err := tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
			s.logger.Debug("rollback failed", slog.String("error", err.Error()))
		}
	}()

	const insertOutfit = `
		INSERT INTO conjuntos (id, owner_id, nombre, ocasion, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`

	_, err = tx.ExecContext(ctx, insertOutfit,
		outfit.ID,
		outfit.OwnerID,
		outfit.Name,
		nullable(outfit.Occasion),
		outfit.CreatedAt,
		outfit.UpdatedAt,
	)
	if err != nil {
		return wrapDBError("create outfit", err)
	}

	const insertItem = `
		INSERT INTO conjunto_ropa (conjunto_id, ropa_id)
		SELECT $1, id FROM ropa WHERE id = $2 AND owner_id = $3`

	for _, garmentID := range outfit.GarmentIDs {
		res, err := tx.ExecContext(ctx, insertItem, outfit.ID, garmentID, outfit.OwnerID)
		if err != nil {
			if isForeignKeyViolation(err) {
				return store.ErrGarmentNotFound
			}
			return wrapDBError("create outfit item", err)
		}
		affected, err := res.RowsAffected()
		if err != nil {
			return wrapDBError("create outfit item", err)
		}
		if affected == 0 {
			return store.ErrGarmentNotFound
		}
	}

	if err := tx.Commit(); err != nil {
		return wrapDBError("commit create outfit", err)
	}
	return nil
}

// ListByOwner implements store.OutfitStore.ListByOwner.
func (s *OutfitStore) ListByOwner(ctx context.Context, ownerID string) ([]*domain.Outfit, error) {
	const query = `
		SELECT c.id, c.owner_id, c.nombre, c.ocasion, c.created_at, c.updated_at,
		       COALESCE(array_agg(cr.ropa_id) FILTER (WHERE cr.ropa_id IS NOT NULL), '{}')
		FROM conjuntos c
		LEFT JOIN conjunto_ropa cr ON cr.conjunto_id = c.id
		WHERE c.owner_id = $1
		GROUP BY c.id
		ORDER BY c.created_at DESC`

	rows, err := s.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, wrapDBError("list outfits", err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			s.logger.Debug("failed to close rows", slog.String("error", err.Error()))
		}
	}()

	outfits := make([]*domain.Outfit, 0)
	for rows.Next() {
		o, err := scanOutfit(rows)
		if err != nil {
			return nil, wrapDBError("scan outfit", err)
		}
		outfits = append(outfits, o)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapDBError("list outfits", err)
	}
	return outfits, nil
}

// GetByID implements store.OutfitStore.GetByID.
func (s *OutfitStore) GetByID(ctx context.Context, ownerID string, id uuid.UUID) (*domain.Outfit, error) {
	const query = `
		SELECT c.id, c.owner_id, c.nombre, c.ocasion, c.created_at, c.updated_at,
		       COALESCE(array_agg(cr.ropa_id) FILTER (WHERE cr.ropa_id IS NOT NULL), '{}')
		FROM conjuntos c
		LEFT JOIN conjunto_ropa cr ON cr.conjunto_id = c.id
		WHERE c.id = $1 AND c.owner_id = $2
		GROUP BY c.id`

	rows, err := s.db.QueryContext(ctx, query, id, ownerID)
	if err != nil {
		return nil, wrapDBError("get outfit", err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			s.logger.Debug("failed to close rows", slog.String("error", err.Error()))
		}
	}()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, wrapDBError("get outfit", err)
		}
		return nil, store.ErrOutfitNotFound
	}
	o, err := scanOutfit(rows)
	if err != nil {
		return nil, wrapDBError("scan outfit", err)
	}
	return o, nil
}

// Delete implements store.OutfitStore.Delete. Garment references cascade via
// the schema.
func (s *OutfitStore) Delete(ctx context.Context, ownerID string, id uuid.UUID) error {
	const query = `DELETE FROM conjuntos WHERE id = $1 AND owner_id = $2`

	res, err := s.db.ExecContext(ctx, query, id, ownerID)
	if err != nil {
		return wrapDBError("delete outfit", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return wrapDBError("delete outfit", err)
	}
	if affected == 0 {
		return store.ErrOutfitNotFound
	}
	return nil
}

func scanOutfit(rows *sql.Rows) (*domain.Outfit, error) {
	var (
		o        domain.Outfit
		occasion sql.NullString
		rawIDs   []byte
	)
	err := rows.Scan(
		&o.ID,
		&o.OwnerID,
		&o.Name,
		&occasion,
		&o.CreatedAt,
		&o.UpdatedAt,
		&rawIDs,
	)
	if err != nil {
		return nil, err
	}
	o.Occasion = occasion.String
	o.GarmentIDs, err = parseUUIDArray(rawIDs)
	if err != nil {
		return nil, err
	}
	return &o, nil
}

// parseUUIDArray decodes a postgres uuid[] literal like
// {a3c7...,-...} into a slice. The driver hands arrays back as text when
// scanning into []byte.
func parseUUIDArray(raw []byte) ([]uuid.UUID, error) {
	s := string(raw)
	if len(s) < 2 || s[0] != '{' || s[len(s)-1] != '}' {
		return nil, fmt.Errorf("malformed uuid array: %q", s)
	}
	inner := s[1 : len(s)-1]
	if inner == "" {
		return []uuid.UUID{}, nil
	}
	parts := strings.Split(inner, ",")
	ids := make([]uuid.UUID, 0, len(parts))
	for _, part := range parts {
		id, err := uuid.Parse(strings.Trim(part, `"`))
		if err != nil {
			return nil, fmt.Errorf("malformed uuid array element: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, nil
}
