// Package usecase implements patient record operations on top of field encryption.
package usecase

import (
	"context"

	"github.com/google/uuid"

	cryptoDomain "github.com/clinicrecords/fieldvault/internal/crypto/domain"
	patientDomain "github.com/clinicrecords/fieldvault/internal/patient/domain"
)

// PatientRepository defines the interface for encrypted patient persistence.
type PatientRepository interface {
	// Create inserts a new patient row.
	Create(ctx context.Context, patient *patientDomain.EncryptedPatient) error

	// Get returns the row with the given id or ErrPatientNotFound.
	Get(ctx context.Context, id uuid.UUID) (*patientDomain.EncryptedPatient, error)

	// Update overwrites the sealed attributes and key version of a row.
	Update(ctx context.Context, patient *patientDomain.EncryptedPatient) error

	// ListByKeyVersionNot returns up to limit rows sealed under a version other than
	// version, locked for the surrounding transaction.
	ListByKeyVersionNot(ctx context.Context, version uint, limit int) ([]*patientDomain.EncryptedPatient, error)
}

// PatientUseCase defines the interface for patient operations.
type PatientUseCase interface {
	// Create validates input, seals every attribute with the active key and stores the row.
	Create(
		ctx context.Context,
		keyring *cryptoDomain.Keyring,
		input *patientDomain.CreatePatientInput,
	) (*patientDomain.Patient, error)

	// Get loads and decrypts a patient.
	Get(ctx context.Context, keyring *cryptoDomain.Keyring, id uuid.UUID) (*patientDomain.Patient, error)

	// Reencrypt moves every row sealed under an older key version to the active version,
	// batchSize rows per transaction. Returns the number of rows rewritten.
	Reencrypt(ctx context.Context, keyring *cryptoDomain.Keyring, batchSize int) (int, error)
}
