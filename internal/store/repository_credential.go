package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-orders-admin/internal/logger"
)

// credentialRepository is the SQLite-backed implementation of
// [CredentialRepository] over the "credentials" table.
type credentialRepository struct {
	db     *DB
	logger *logger.Logger
	now    func() time.Time
}

// NewCredentialRepository constructs a [CredentialRepository] backed by db.
func NewCredentialRepository(db *DB, logger *logger.Logger) CredentialRepository {
	return &credentialRepository{
		db:     db,
		logger: logger,
		now:    time.Now,
	}
}

func (r *credentialRepository) Get(ctx context.Context, name string) (string, error) {
	query, args, err := buildGetCredential(name)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var value string
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&value)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return "", ErrCredentialNotFound
	case err != nil:
		r.logger.Err(err).
			Str("func", "*credentialRepository.Get").
			Str("name", name).
			Msg("failed to read credential")
		return "", fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return value, nil
}

func (r *credentialRepository) Put(ctx context.Context, name, value string) error {
	query, args, err := buildPutCredential(name, value, r.now())
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		r.logger.Err(err).
			Str("func", "*credentialRepository.Put").
			Str("name", name).
			Msg("failed to upsert credential")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (r *credentialRepository) Delete(ctx context.Context, name string) error {
	query, args, err := buildDeleteCredential(name)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		r.logger.Err(err).
			Str("func", "*credentialRepository.Delete").
			Str("name", name).
			Msg("failed to delete credential")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}
