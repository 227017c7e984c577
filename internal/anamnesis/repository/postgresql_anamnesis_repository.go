package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/lib/pq"

	anamnesisDomain "github.com/clinicrecords/fieldvault/internal/anamnesis/domain"
	"github.com/clinicrecords/fieldvault/internal/database"
	apperrors "github.com/clinicrecords/fieldvault/internal/errors"
)

// PostgreSQLAnamnesisRepository implements anamnesis persistence for PostgreSQL.
type PostgreSQLAnamnesisRepository struct {
	db *sql.DB
}

// Create inserts a new anamnesis row.
func (p *PostgreSQLAnamnesisRepository) Create(
	ctx context.Context,
	anamnesis *anamnesisDomain.EncryptedAnamnesis,
) error {
	querier := database.GetTx(ctx, p.db)

	query := `INSERT INTO anamneses (` + anamnesisColumns + `)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := querier.ExecContext(
		ctx,
		query,
		anamnesis.ID,
		anamnesis.PatientID,
		anamnesis.CreatedAt,
		anamnesis.UpdatedAt,
		anamnesis.DataCiphertext,
		anamnesis.DataNonce,
		anamnesis.DiagnosisCiphertext,
		anamnesis.DiagnosisNonce,
		anamnesis.KeyVersion,
	)
	if err != nil {
		// foreign_key_violation on patient_id
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23503" && pqErr.Constraint == "anamneses_patient_id_fkey" {
			return anamnesisDomain.ErrPatientReferenceInvalid
		}
		return apperrors.Wrap(err, "failed to create anamnesis")
	}
	return nil
}

// Get returns the anamnesis with the given id or ErrAnamnesisNotFound.
func (p *PostgreSQLAnamnesisRepository) Get(
	ctx context.Context,
	id uuid.UUID,
) (*anamnesisDomain.EncryptedAnamnesis, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT ` + anamnesisColumns + ` FROM anamneses WHERE id = $1`

	var rowID, patientID uuid.UUID
	anamnesis, err := scanAnamnesis(querier.QueryRowContext(ctx, query, id), &rowID, &patientID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, anamnesisDomain.ErrAnamnesisNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get anamnesis")
	}
	anamnesis.ID, anamnesis.PatientID = rowID, patientID
	return anamnesis, nil
}

// Update overwrites the sealed attributes and key version of an existing anamnesis.
func (p *PostgreSQLAnamnesisRepository) Update(
	ctx context.Context,
	anamnesis *anamnesisDomain.EncryptedAnamnesis,
) error {
	querier := database.GetTx(ctx, p.db)

	query := `UPDATE anamneses SET updated_at = $1, data_ciphertext = $2, data_nonce = $3,
				diagnosis_ciphertext = $4, diagnosis_nonce = $5, key_version = $6
			  WHERE id = $7`

	result, err := querier.ExecContext(
		ctx,
		query,
		anamnesis.UpdatedAt,
		anamnesis.DataCiphertext,
		anamnesis.DataNonce,
		anamnesis.DiagnosisCiphertext,
		anamnesis.DiagnosisNonce,
		anamnesis.KeyVersion,
		anamnesis.ID,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to update anamnesis")
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, "failed to update anamnesis")
	}
	if affected == 0 {
		return anamnesisDomain.ErrAnamnesisNotFound
	}
	return nil
}

// ListByKeyVersionNot returns up to limit rows sealed under any version other than
// version. Selected rows stay locked until the surrounding transaction ends; rows
// locked by a concurrent run are skipped.
func (p *PostgreSQLAnamnesisRepository) ListByKeyVersionNot(
	ctx context.Context,
	version uint,
	limit int,
) ([]*anamnesisDomain.EncryptedAnamnesis, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT ` + anamnesisColumns + ` FROM anamneses
			  WHERE key_version <> $1
			  ORDER BY id
			  LIMIT $2
			  FOR UPDATE SKIP LOCKED`

	rows, err := querier.QueryContext(ctx, query, version, limit)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list anamneses by key version")
	}
	defer func() {
		_ = rows.Close()
	}()

	var anamneses []*anamnesisDomain.EncryptedAnamnesis
	for rows.Next() {
		var rowID, patientID uuid.UUID
		anamnesis, err := scanAnamnesis(rows, &rowID, &patientID)
		if err != nil {
			return nil, apperrors.Wrap(err, "failed to scan anamnesis")
		}
		anamnesis.ID, anamnesis.PatientID = rowID, patientID
		anamneses = append(anamneses, anamnesis)
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to list anamneses by key version")
	}

	return anamneses, nil
}

// NewPostgreSQLAnamnesisRepository creates a new PostgreSQL anamnesis repository instance.
func NewPostgreSQLAnamnesisRepository(db *sql.DB) *PostgreSQLAnamnesisRepository {
	return &PostgreSQLAnamnesisRepository{db: db}
}
