package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/go-sql-driver/mysql"
	"github.com/google/uuid"

	anamnesisDomain "github.com/clinicrecords/fieldvault/internal/anamnesis/domain"
	"github.com/clinicrecords/fieldvault/internal/database"
	apperrors "github.com/clinicrecords/fieldvault/internal/errors"
)

// MySQLAnamnesisRepository implements anamnesis persistence for MySQL. Ids are stored
// as BINARY(16).
type MySQLAnamnesisRepository struct {
	db *sql.DB
}

// Create inserts a new anamnesis row.
func (m *MySQLAnamnesisRepository) Create(
	ctx context.Context,
	anamnesis *anamnesisDomain.EncryptedAnamnesis,
) error {
	querier := database.GetTx(ctx, m.db)

	query := `INSERT INTO anamneses (` + anamnesisColumns + `)
			  VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`

	id, err := anamnesis.ID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal anamnesis id")
	}
	patientID, err := anamnesis.PatientID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal patient id")
	}

	_, err = querier.ExecContext(
		ctx,
		query,
		id,
		patientID,
		anamnesis.CreatedAt,
		anamnesis.UpdatedAt,
		anamnesis.DataCiphertext,
		anamnesis.DataNonce,
		anamnesis.DiagnosisCiphertext,
		anamnesis.DiagnosisNonce,
		anamnesis.KeyVersion,
	)
	if err != nil {
		// Cannot add or update a child row (MySQL error number 1452)
		var mysqlErr *mysql.MySQLError
		if errors.As(err, &mysqlErr) && mysqlErr.Number == 1452 &&
			strings.Contains(mysqlErr.Message, "anamneses_patient_id_fkey") {
			return anamnesisDomain.ErrPatientReferenceInvalid
		}
		return apperrors.Wrap(err, "failed to create anamnesis")
	}
	return nil
}

// Get returns the anamnesis with the given id or ErrAnamnesisNotFound.
func (m *MySQLAnamnesisRepository) Get(
	ctx context.Context,
	id uuid.UUID,
) (*anamnesisDomain.EncryptedAnamnesis, error) {
	querier := database.GetTx(ctx, m.db)

	query := `SELECT ` + anamnesisColumns + ` FROM anamneses WHERE id = ?`

	idBytes, err := id.MarshalBinary()
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to marshal anamnesis id")
	}

	var rowID, patientID []byte
	anamnesis, err := scanAnamnesis(querier.QueryRowContext(ctx, query, idBytes), &rowID, &patientID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, anamnesisDomain.ErrAnamnesisNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get anamnesis")
	}

	if err := unmarshalIDs(anamnesis, rowID, patientID); err != nil {
		return nil, err
	}
	return anamnesis, nil
}

// Update overwrites the sealed attributes and key version of an existing anamnesis.
func (m *MySQLAnamnesisRepository) Update(
	ctx context.Context,
	anamnesis *anamnesisDomain.EncryptedAnamnesis,
) error {
	querier := database.GetTx(ctx, m.db)

	query := `UPDATE anamneses SET updated_at = ?, data_ciphertext = ?, data_nonce = ?,
				diagnosis_ciphertext = ?, diagnosis_nonce = ?, key_version = ?
			  WHERE id = ?`

	id, err := anamnesis.ID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal anamnesis id")
	}

	result, err := querier.ExecContext(
		ctx,
		query,
		anamnesis.UpdatedAt,
		anamnesis.DataCiphertext,
		anamnesis.DataNonce,
		anamnesis.DiagnosisCiphertext,
		anamnesis.DiagnosisNonce,
		anamnesis.KeyVersion,
		id,
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
// version, locking them for the surrounding transaction and skipping rows locked
// elsewhere.
func (m *MySQLAnamnesisRepository) ListByKeyVersionNot(
	ctx context.Context,
	version uint,
	limit int,
) ([]*anamnesisDomain.EncryptedAnamnesis, error) {
	querier := database.GetTx(ctx, m.db)

	query := `SELECT ` + anamnesisColumns + ` FROM anamneses
			  WHERE key_version <> ?
			  ORDER BY id
			  LIMIT ?
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
		var rowID, patientID []byte
		anamnesis, err := scanAnamnesis(rows, &rowID, &patientID)
		if err != nil {
			return nil, apperrors.Wrap(err, "failed to scan anamnesis")
		}
		if err := unmarshalIDs(anamnesis, rowID, patientID); err != nil {
			return nil, err
		}
		anamneses = append(anamneses, anamnesis)
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to list anamneses by key version")
	}

	return anamneses, nil
}

func unmarshalIDs(anamnesis *anamnesisDomain.EncryptedAnamnesis, rowID, patientID []byte) error {
	if err := anamnesis.ID.UnmarshalBinary(rowID); err != nil {
		return apperrors.Wrap(err, "failed to unmarshal anamnesis id")
	}
	if err := anamnesis.PatientID.UnmarshalBinary(patientID); err != nil {
		return apperrors.Wrap(err, "failed to unmarshal patient id")
	}
	return nil
}

// NewMySQLAnamnesisRepository creates a new MySQL anamnesis repository instance.
func NewMySQLAnamnesisRepository(db *sql.DB) *MySQLAnamnesisRepository {
	return &MySQLAnamnesisRepository{db: db}
}
