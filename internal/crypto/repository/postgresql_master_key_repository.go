package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"

	cryptoDomain "github.com/clinicrecords/fieldvault/internal/crypto/domain"
	"github.com/clinicrecords/fieldvault/internal/database"
	apperrors "github.com/clinicrecords/fieldvault/internal/errors"
)

// PostgreSQLMasterKeyRepository implements master key persistence for PostgreSQL.
//
// Binary columns are BYTEA. The schema enforces a unique key_version and at most one
// active row through a partial unique index, so two concurrent rotations cannot both
// commit.
type PostgreSQLMasterKeyRepository struct {
	db *sql.DB
}

// Create inserts record and sets record.ID from the generated identity.
func (p *PostgreSQLMasterKeyRepository) Create(ctx context.Context, record *cryptoDomain.MasterKeyRecord) error {
	querier := database.GetTx(ctx, p.db)

	query := `INSERT INTO master_keys (created_at, active, wrapped_key_ciphertext, wrapped_key_nonce,
				wrapped_key_tag, kdf_salt, kdf_time, kdf_memory_kib, kdf_threads, key_version)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
			  RETURNING id`

	err := querier.QueryRowContext(
		ctx,
		query,
		record.CreatedAt,
		record.Active,
		record.WrappedKeyCiphertext,
		record.WrappedKeyNonce,
		record.WrappedKeyTag,
		record.KDFSalt,
		record.KDFParams.Time,
		record.KDFParams.MemoryKiB,
		record.KDFParams.Threads,
		record.KeyVersion,
	).Scan(&record.ID)
	if err != nil {
		// Duplicate key_version or a second active row (unique_violation)
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return cryptoDomain.ErrConcurrentKeyChange
		}
		return apperrors.Wrap(err, "failed to create master key")
	}
	return nil
}

// Deactivate clears the active flag of the record with the given id.
func (p *PostgreSQLMasterKeyRepository) Deactivate(ctx context.Context, id int64) error {
	querier := database.GetTx(ctx, p.db)

	result, err := querier.ExecContext(ctx, `UPDATE master_keys SET active = FALSE WHERE id = $1`, id)
	if err != nil {
		return apperrors.Wrap(err, "failed to deactivate master key")
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, "failed to deactivate master key")
	}
	if affected == 0 {
		return cryptoDomain.ErrMasterKeyNotFound
	}
	return nil
}

// List returns every record ordered by key_version descending (newest first).
func (p *PostgreSQLMasterKeyRepository) List(ctx context.Context) ([]*cryptoDomain.MasterKeyRecord, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT ` + masterKeyColumns + ` FROM master_keys ORDER BY key_version DESC`

	rows, err := querier.QueryContext(ctx, query)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list master keys")
	}
	defer func() {
		_ = rows.Close()
	}()

	var records []*cryptoDomain.MasterKeyRecord
	for rows.Next() {
		record, err := scanMasterKey(rows)
		if err != nil {
			return nil, apperrors.Wrap(err, "failed to scan master key")
		}
		records = append(records, record)
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to list master keys")
	}

	return records, nil
}

// GetActive returns the active record or ErrMasterKeyNotFound.
func (p *PostgreSQLMasterKeyRepository) GetActive(ctx context.Context) (*cryptoDomain.MasterKeyRecord, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT ` + masterKeyColumns + ` FROM master_keys WHERE active = TRUE`

	record, err := scanMasterKey(querier.QueryRowContext(ctx, query))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, cryptoDomain.ErrMasterKeyNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get active master key")
	}
	return record, nil
}

// GetByVersion returns the record of the given version or ErrKeyVersionNotFound.
func (p *PostgreSQLMasterKeyRepository) GetByVersion(
	ctx context.Context,
	version uint,
) (*cryptoDomain.MasterKeyRecord, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT ` + masterKeyColumns + ` FROM master_keys WHERE key_version = $1`

	record, err := scanMasterKey(querier.QueryRowContext(ctx, query, version))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, cryptoDomain.ErrKeyVersionNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get master key by version")
	}
	return record, nil
}

// MaxVersion returns the highest key_version stored, or 0 when the table is empty.
func (p *PostgreSQLMasterKeyRepository) MaxVersion(ctx context.Context) (uint, error) {
	querier := database.GetTx(ctx, p.db)

	var version uint
	err := querier.QueryRowContext(ctx, `SELECT COALESCE(MAX(key_version), 0) FROM master_keys`).Scan(&version)
	if err != nil {
		return 0, apperrors.Wrap(err, "failed to get max master key version")
	}
	return version, nil
}

// NewPostgreSQLMasterKeyRepository creates a new PostgreSQL master key repository instance.
func NewPostgreSQLMasterKeyRepository(db *sql.DB) *PostgreSQLMasterKeyRepository {
	return &PostgreSQLMasterKeyRepository{db: db}
}
