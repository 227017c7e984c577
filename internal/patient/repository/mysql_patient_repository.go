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

// MySQLPatientRepository implements patient persistence for MySQL. Ids are stored as
// BINARY(16).
type MySQLPatientRepository struct {
	db *sql.DB
}

// Create inserts a new patient row.
func (m *MySQLPatientRepository) Create(ctx context.Context, patient *patientDomain.EncryptedPatient) error {
	querier := database.GetTx(ctx, m.db)

	query := `INSERT INTO patients (` + patientColumns + `)
			  VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	id, err := patient.ID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal patient id")
	}

	_, err = querier.ExecContext(
		ctx,
		query,
		id,
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
func (m *MySQLPatientRepository) Get(ctx context.Context, id uuid.UUID) (*patientDomain.EncryptedPatient, error) {
	querier := database.GetTx(ctx, m.db)

	query := `SELECT ` + patientColumns + ` FROM patients WHERE id = ?`

	idBytes, err := id.MarshalBinary()
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to marshal patient id")
	}

	var rowID []byte
	patient, err := scanPatient(querier.QueryRowContext(ctx, query, idBytes), &rowID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, patientDomain.ErrPatientNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get patient")
	}

	if err := patient.ID.UnmarshalBinary(rowID); err != nil {
		return nil, apperrors.Wrap(err, "failed to unmarshal patient id")
	}
	return patient, nil
}

// Update overwrites the sealed attributes and key version of an existing patient.
func (m *MySQLPatientRepository) Update(ctx context.Context, patient *patientDomain.EncryptedPatient) error {
	querier := database.GetTx(ctx, m.db)

	query := `UPDATE patients SET updated_at = ?, name_ciphertext = ?, name_nonce = ?,
				phone_ciphertext = ?, phone_nonce = ?, email_ciphertext = ?, email_nonce = ?,
				key_version = ?
			  WHERE id = ?`

	id, err := patient.ID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal patient id")
	}

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
		id,
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
// version, locking them for the surrounding transaction and skipping rows locked
// elsewhere.
func (m *MySQLPatientRepository) ListByKeyVersionNot(
	ctx context.Context,
	version uint,
	limit int,
) ([]*patientDomain.EncryptedPatient, error) {
	querier := database.GetTx(ctx, m.db)

	query := `SELECT ` + patientColumns + ` FROM patients
			  WHERE key_version <> ?
			  ORDER BY id
			  LIMIT ?
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
		var rowID []byte
		patient, err := scanPatient(rows, &rowID)
		if err != nil {
			return nil, apperrors.Wrap(err, "failed to scan patient")
		}
		if err := patient.ID.UnmarshalBinary(rowID); err != nil {
			return nil, apperrors.Wrap(err, "failed to unmarshal patient id")
		}
		patients = append(patients, patient)
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to list patients by key version")
	}

	return patients, nil
}

// NewMySQLPatientRepository creates a new MySQL patient repository instance.
func NewMySQLPatientRepository(db *sql.DB) *MySQLPatientRepository {
	return &MySQLPatientRepository{db: db}
}
