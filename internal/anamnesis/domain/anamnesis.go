// Package domain defines the anamnesis record and its encrypted storage form.
//
// The clinical history text and the diagnosis are sealed separately with the active
// data key. The patient reference stays in plaintext so records can be joined and
// listed without a key.
package domain

import (
	"time"

	"github.com/google/uuid"
	validation "github.com/jellydator/validation"

	cryptoDomain "github.com/clinicrecords/fieldvault/internal/crypto/domain"
	customValidation "github.com/clinicrecords/fieldvault/internal/validation"
)

// MaxTextLength bounds the plaintext size of the clinical text fields.
const MaxTextLength = 65535

// Anamnesis is the decrypted view of an anamnesis record.
type Anamnesis struct {
	ID        uuid.UUID
	PatientID uuid.UUID
	Data      string
	Diagnosis *string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// EncryptedAnamnesis is the row stored in the anamneses table. A missing diagnosis has
// nil ciphertext and nonce.
type EncryptedAnamnesis struct {
	ID                  uuid.UUID
	PatientID           uuid.UUID
	CreatedAt           time.Time
	UpdatedAt           time.Time
	DataCiphertext      []byte
	DataNonce           []byte
	DiagnosisCiphertext []byte
	DiagnosisNonce      []byte
	KeyVersion          uint
}

// Data returns the sealed clinical history.
func (a *EncryptedAnamnesis) Data() *cryptoDomain.EncryptedField {
	return &cryptoDomain.EncryptedField{
		Ciphertext: a.DataCiphertext,
		Nonce:      a.DataNonce,
		KeyVersion: a.KeyVersion,
	}
}

// Diagnosis returns the sealed diagnosis, or nil when absent.
func (a *EncryptedAnamnesis) Diagnosis() *cryptoDomain.EncryptedField {
	return cryptoDomain.OptionalField(a.DiagnosisCiphertext, a.DiagnosisNonce, a.KeyVersion)
}

// CreateAnamnesisInput contains the plaintext attributes of a new anamnesis.
type CreateAnamnesisInput struct {
	PatientID uuid.UUID
	Data      string
	Diagnosis *string
}

// Validate checks the input attributes.
func (i *CreateAnamnesisInput) Validate() error {
	err := validation.ValidateStruct(i,
		validation.Field(&i.PatientID, customValidation.NotNilUUID),
		validation.Field(&i.Data, validation.Required, customValidation.NotBlank, validation.Length(1, MaxTextLength)),
		validation.Field(&i.Diagnosis, validation.NilOrNotEmpty, validation.Length(1, MaxTextLength)),
	)
	return customValidation.WrapValidationError(err)
}
