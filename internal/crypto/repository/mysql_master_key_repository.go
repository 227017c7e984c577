package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/go-sql-driver/mysql"

	cryptoDomain "github.com/clinicrecords/fieldvault/internal/crypto/domain"
	"github.com/clinicrecords/fieldvault/internal/database"
	apperrors "github.com/clinicrecords/fieldvault/internal/errors"
)

// MySQLMasterKeyRepository implements master key persistence for MySQL.
//
// Binary columns are VARBINARY/BLOB. The connection string must set parseTime=true so
// created_at scans into time.Time. At most one active row is enforced through a unique
// index on a generated column that is NULL for inactive rows.
type MySQLMasterKeyRepository struct {
	db *sql.DB
}

// Create inserts record and sets record.ID from LAST_INSERT_ID().
func (m *MySQLMasterKeyRepository) Create(ctx context.Context, record *cryptoDomain.MasterKeyRecord) error {
	querier := database.GetTx(ctx, m.db)

	query := `INSERT INTO master_keys (created_at, active, wrapped_key_ciphertext, wrapped_key_nonce,
				wrapped_key_tag, kdf_salt, kdf_time, kdf_memory_kib, kdf_threads, key_version)
			  VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	result, err := querier.ExecContext(
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
	)
	if err != nil {
		// Duplicate key_version or a second active row (MySQL error number 1062)
		var mysqlErr *mysql.MySQLError
		if errors.As(err, &mysqlErr) && mysqlErr.Number == 1062 {
			return cryptoDomain.ErrConcurrentKeyChange
		}
		return apperrors.Wrap(err, "failed to create master key")
	}

	id, err := result.LastInsertId()
	if err != nil {
		return apperrors.Wrap(err, "failed to read master key id")
	}
	record.ID = id
	return nil
}

// Deactivate clears the active flag of the record with the given id.
func (m *MySQLMasterKeyRepository) Deactivate(ctx context.Context, id int64) error {
	querier := database.GetTx(ctx, m.db)

	result, err := querier.ExecContext(ctx, `UPDATE master_keys SET active = FALSE WHERE id = ?`, id)
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
func (m *MySQLMasterKeyRepository) List(ctx context.Context) ([]*cryptoDomain.MasterKeyRecord, error) {
	querier := database.GetTx(ctx, m.db)

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
func (m *MySQLMasterKeyRepository) GetActive(ctx context.Context) (*cryptoDomain.MasterKeyRecord, error) {
	querier := database.GetTx(ctx, m.db)

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
func (m *MySQLMasterKeyRepository) GetByVersion(
	ctx context.Context,
	version uint,
) (*cryptoDomain.MasterKeyRecord, error) {
	querier := database.GetTx(ctx, m.db)

	query := `SELECT ` + masterKeyColumns + ` FROM master_keys WHERE key_version = ?`

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
func (m *MySQLMasterKeyRepository) MaxVersion(ctx context.Context) (uint, error) {
	querier := database.GetTx(ctx, m.db)

	var version uint
	err := querier.QueryRowContext(ctx, `SELECT COALESCE(MAX(key_version), 0) FROM master_keys`).Scan(&version)
	if err != nil {
		return 0, apperrors.Wrap(err, "failed to get max master key version")
	}
	return version, nil
}

// NewMySQLMasterKeyRepository creates a new MySQL master key repository instance.
func NewMySQLMasterKeyRepository(db *sql.DB) *MySQLMasterKeyRepository {
	return &MySQLMasterKeyRepository{db: db}
}
