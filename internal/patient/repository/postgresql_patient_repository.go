package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"github.com/clinicrecords/fieldvault/internal/database"
	apperrors "github.com/clinicrecords/fieldvault/internal/errors"
	patientDomain "github.com/clinicrecords/fieldvault/internal/patient/domain"
)

// PostgreSQLPatientRepository implements patient persistence for PostgreSQL.
type PostgreSQLPatientRepository struct {
	db *sql.DB
}

// Create inserts a new patient row.
func (p *PostgreSQLPatientRepository) Create(ctx context.Context, patient *patientDomain.EncryptedPatient) error {
	querier := database.GetTx(ctx, p.db)

	query := `INSERT INTO patients (` + patientColumns + `)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	_, err := querier.ExecContext(
		ctx,
		query,
		patient.ID,
		patient.CreatedAt,
		patient.UpdatedAt,
		patient.NameCiphertext,
		patient.NameNonce,
		patient.PhoneCiphertext,
		patient.PhoneNonce,
		patient.EmailCiphertext,
		patient.EmailNonce,
		patient.KeyVersion,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to create patient")
	}
	return nil
}

// Get returns the patient with the given id or ErrPatientNotFound.
func (p *PostgreSQLPatientRepository) Get(
	ctx context.Context,
	id uuid.UUID,
) (*patientDomain.EncryptedPatient, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT ` + patientColumns + ` FROM patients WHERE id = $1`

	var rowID uuid.UUID
	patient, err := scanPatient(querier.QueryRowContext(ctx, query, id), &rowID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, patientDomain.ErrPatientNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get patient")
	}
	patient.ID = rowID
	return patient, nil
}

// Update overwrites the sealed attributes and key version of an existing patient.
func (p *PostgreSQLPatientRepository) Update(ctx context.Context, patient *patientDomain.EncryptedPatient) error {
	querier := database.GetTx(ctx, p.db)

	query := `UPDATE patients SET updated_at = $1, name_ciphertext = $2, name_nonce = $3,
				phone_ciphertext = $4, phone_nonce = $5, email_ciphertext = $6, email_nonce = $7,
				key_version = $8
			  WHERE id = $9`

	result, err := querier.ExecContext(
		ctx,
		query,
		patient.UpdatedAt,
		patient.NameCiphertext,
		patient.NameNonce,
		patient.PhoneCiphertext,
		patient.PhoneNonce,
		patient.EmailCiphertext,
		patient.EmailNonce,
		patient.KeyVersion,
		patient.ID,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to update patient")
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, "failed to update patient")
	}
	if affected == 0 {
		return patientDomain.ErrPatientNotFound
	}
	return nil
}

// ListByKeyVersionNot returns up to limit rows sealed under any version other than
// version. Selected rows are locked until the surrounding transaction ends; rows locked
// by a concurrent run are skipped.
func (p *PostgreSQLPatientRepository) ListByKeyVersionNot(
	ctx context.Context,
	version uint,
	limit int,
) ([]*patientDomain.EncryptedPatient, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT ` + patientColumns + ` FROM patients
			  WHERE key_version <> $1
			  ORDER BY id
			  LIMIT $2
			  FOR UPDATE SKIP LOCKED`

	rows, err := querier.QueryContext(ctx, query, version, limit)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list patients by key version")
	}
	defer func() {
		_ = rows.Close()
	}()

	var patients []*patientDomain.EncryptedPatient
	for rows.Next() {
		var rowID uuid.UUID
		patient, err := scanPatient(rows, &rowID)
		if err != nil {
			return nil, apperrors.Wrap(err, "failed to scan patient")
		}
		patient.ID = rowID
		patients = append(patients, patient)
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to list patients by key version")
	}

	return patients, nil
}

// NewPostgreSQLPatientRepository creates a new PostgreSQL patient repository instance.
func NewPostgreSQLPatientRepository(db *sql.DB) *PostgreSQLPatientRepository {
	return &PostgreSQLPatientRepository{db: db}
}
