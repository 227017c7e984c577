package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"github.com/clinicrecords/fieldvault/internal/database"
	apperrors "github.com/clinicrecords/fieldvault/internal/errors"
	financeDomain "github.com/clinicrecords/fieldvault/internal/finance/domain"
)

// MySQLEntryRepository implements ledger entry persistence for MySQL. Ids are stored
// as BINARY(16).
type MySQLEntryRepository struct {
	db *sql.DB
}

// Create inserts a new entry row.
func (m *MySQLEntryRepository) Create(ctx context.Context, entry *financeDomain.EncryptedEntry) error {
	querier := database.GetTx(ctx, m.db)

	query := `INSERT INTO finances (` + entryColumns + `)
			  VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	id, err := entry.ID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal finance entry id")
	}

	_, err = querier.ExecContext(
		ctx,
		query,
		id,
		entry.Type,
		entry.Category,
		entry.AmountCents,
		entry.Date,
		entry.CreatedAt,
		entry.UpdatedAt,
		entry.DescriptionCiphertext,
		entry.DescriptionNonce,
		entry.KeyVersion,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to create finance entry")
	}
	return nil
}

// Get returns the entry with the given id or ErrEntryNotFound.
func (m *MySQLEntryRepository) Get(ctx context.Context, id uuid.UUID) (*financeDomain.EncryptedEntry, error) {
	querier := database.GetTx(ctx, m.db)

	query := `SELECT ` + entryColumns + ` FROM finances WHERE id = ?`

	idBytes, err := id.MarshalBinary()
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to marshal finance entry id")
	}

	var rowID []byte
	entry, err := scanEntry(querier.QueryRowContext(ctx, query, idBytes), &rowID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, financeDomain.ErrEntryNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get finance entry")
	}
	if err := entry.ID.UnmarshalBinary(rowID); err != nil {
		return nil, apperrors.Wrap(err, "failed to unmarshal finance entry id")
	}
	return entry, nil
}

// Update overwrites the sealed description and key version of an existing entry.
func (m *MySQLEntryRepository) Update(ctx context.Context, entry *financeDomain.EncryptedEntry) error {
	querier := database.GetTx(ctx, m.db)

	query := `UPDATE finances SET updated_at = ?, description_ciphertext = ?, description_nonce = ?,
				key_version = ?
			  WHERE id = ?`

	id, err := entry.ID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal finance entry id")
	}

	result, err := querier.ExecContext(
		ctx,
		query,
		entry.UpdatedAt,
		entry.DescriptionCiphertext,
		entry.DescriptionNonce,
		entry.KeyVersion,
		id,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to update finance entry")
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, "failed to update finance entry")
	}
	if affected == 0 {
		return financeDomain.ErrEntryNotFound
	}
	return nil
}

// ListByKeyVersionNot returns up to limit rows stamped with any version other than
// version, locking them for the surrounding transaction and skipping rows locked
// elsewhere.
func (m *MySQLEntryRepository) ListByKeyVersionNot(
	ctx context.Context,
	version uint,
	limit int,
) ([]*financeDomain.EncryptedEntry, error) {
	querier := database.GetTx(ctx, m.db)

	query := `SELECT ` + entryColumns + ` FROM finances
			  WHERE key_version <> ?
			  ORDER BY id
			  LIMIT ?
			  FOR UPDATE SKIP LOCKED`

	rows, err := querier.QueryContext(ctx, query, version, limit)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list finance entries by key version")
	}
	defer func() {
		_ = rows.Close()
	}()

	var entries []*financeDomain.EncryptedEntry
	for rows.Next() {
		var rowID []byte
		entry, err := scanEntry(rows, &rowID)
		if err != nil {
			return nil, apperrors.Wrap(err, "failed to scan finance entry")
		}
		if err := entry.ID.UnmarshalBinary(rowID); err != nil {
			return nil, apperrors.Wrap(err, "failed to unmarshal finance entry id")
		}
		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to list finance entries by key version")
	}

	return entries, nil
}

// NewMySQLEntryRepository creates a new MySQL ledger entry repository instance.
func NewMySQLEntryRepository(db *sql.DB) *MySQLEntryRepository {
	return &MySQLEntryRepository{db: db}
}
