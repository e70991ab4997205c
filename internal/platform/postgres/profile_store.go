package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/maitafernandez/armario-api/internal/domain"
	"github.com/maitafernandez/armario-api/internal/store"
)

// ProfileStore implements store.ProfileStore using a PostgreSQL database as
// the storage backend.
type ProfileStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewProfileStore creates a PostgreSQL implementation of store.ProfileStore.
// It accepts a database connection or transaction managed by the caller.
// If logger is nil the process default is used.
func NewProfileStore(db store.DBTX, logger *slog.Logger) *ProfileStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &ProfileStore{
		db:     db,
		logger: logger.With(slog.String("component", "profile_store")),
	}
}

var _ store.ProfileStore = (*ProfileStore)(nil)

// Create implements store.ProfileStore.Create.
func (s *ProfileStore) Create(ctx context.Context, profile *domain.Profile) error {
	if err := profile.Validate(); err != nil {
		return fmt.Errorf("%w: %w", store.ErrInvalidEntity, err)
	}

	const query = `
		INSERT INTO users (auth_id, email, username, gender, style_preference, edad, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := s.db.ExecContext(ctx, query,
		profile.AuthID,
		profile.Email,
		nullable(profile.Username),
		nullable(profile.Gender),
		nullable(profile.StylePreference),
		profile.Age,
		profile.CreatedAt,
		profile.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return store.ErrEmailExists
		}
		return wrapDBError("create profile", err)
	}
	return nil
}

// GetByEmail implements store.ProfileStore.GetByEmail.
func (s *ProfileStore) GetByEmail(ctx context.Context, email string) (*domain.Profile, error) {
	const query = `
		SELECT auth_id, email, username, gender, style_preference, edad, created_at, updated_at
		FROM users
		WHERE email = $1`
	return s.scanProfile(s.db.QueryRowContext(ctx, query, email))
}

// GetByAuthID implements store.ProfileStore.GetByAuthID.
func (s *ProfileStore) GetByAuthID(ctx context.Context, authID string) (*domain.Profile, error) {
	const query = `
		SELECT auth_id, email, username, gender, style_preference, edad, created_at, updated_at
		FROM users
		WHERE auth_id = $1`
	return s.scanProfile(s.db.QueryRowContext(ctx, query, authID))
}

// FindDisplayName implements store.ProfileStore.FindDisplayName.
func (s *ProfileStore) FindDisplayName(ctx context.Context, authID string) (string, error) {
	const query = `SELECT username FROM users WHERE auth_id = $1`

	var username sql.NullString
	err := s.db.QueryRowContext(ctx, query, authID).Scan(&username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", store.ErrProfileNotFound
		}
		return "", wrapDBError("find display name", err)
	}
	return username.String, nil
}

func (s *ProfileStore) scanProfile(row *sql.Row) (*domain.Profile, error) {
	var (
		p        domain.Profile
		username sql.NullString
		gender   sql.NullString
		style    sql.NullString
	)
	err := row.Scan(
		&p.AuthID,
		&p.Email,
		&username,
		&gender,
		&style,
		&p.Age,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrProfileNotFound
		}
		return nil, wrapDBError("get profile", err)
	}
	p.Username = username.String
	p.Gender = gender.String
	p.StylePreference = style.String
	return &p, nil
}

// nullable maps empty strings to SQL NULL.
func nullable(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
