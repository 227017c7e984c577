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

// PostgreSQLEntryRepository implements ledger entry persistence for PostgreSQL.
type PostgreSQLEntryRepository struct {
	db *sql.DB
}

// Create inserts a new entry row.
func (p *PostgreSQLEntryRepository) Create(ctx context.Context, entry *financeDomain.EncryptedEntry) error {
	querier := database.GetTx(ctx, p.db)

	query := `INSERT INTO finances (` + entryColumns + `)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	_, err := querier.ExecContext(
		ctx,
		query,
		entry.ID,
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
func (p *PostgreSQLEntryRepository) Get(ctx context.Context, id uuid.UUID) (*financeDomain.EncryptedEntry, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT ` + entryColumns + ` FROM finances WHERE id = $1`

	var rowID uuid.UUID
	entry, err := scanEntry(querier.QueryRowContext(ctx, query, id), &rowID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, financeDomain.ErrEntryNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get finance entry")
	}
	entry.ID = rowID
	return entry, nil
}

// Update overwrites the sealed description and key version of an existing entry.
func (p *PostgreSQLEntryRepository) Update(ctx context.Context, entry *financeDomain.EncryptedEntry) error {
	querier := database.GetTx(ctx, p.db)

	query := `UPDATE finances SET updated_at = $1, description_ciphertext = $2, description_nonce = $3,
				key_version = $4
			  WHERE id = $5`

	result, err := querier.ExecContext(
		ctx,
		query,
		entry.UpdatedAt,
		entry.DescriptionCiphertext,
		entry.DescriptionNonce,
		entry.KeyVersion,
		entry.ID,
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
// version, locked until the surrounding transaction ends. Rows locked by a concurrent
// run are skipped.
func (p *PostgreSQLEntryRepository) ListByKeyVersionNot(
	ctx context.Context,
	version uint,
	limit int,
) ([]*financeDomain.EncryptedEntry, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT ` + entryColumns + ` FROM finances
			  WHERE key_version <> $1
			  ORDER BY id
			  LIMIT $2
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
		var rowID uuid.UUID
		entry, err := scanEntry(rows, &rowID)
		if err != nil {
			return nil, apperrors.Wrap(err, "failed to scan finance entry")
		}
		entry.ID = rowID
		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to list finance entries by key version")
	}

	return entries, nil
}

// NewPostgreSQLEntryRepository creates a new PostgreSQL ledger entry repository instance.
func NewPostgreSQLEntryRepository(db *sql.DB) *PostgreSQLEntryRepository {
	return &PostgreSQLEntryRepository{db: db}
}
