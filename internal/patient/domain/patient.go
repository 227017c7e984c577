// Package domain defines the patient record and its encrypted storage form.
//
// Identity attributes (name, phone, email) never reach the database in plaintext. Each
// one is sealed separately with the active data key and stored as a ciphertext/nonce
// column pair; the row carries the key version shared by all of its fields.
package domain

import (
	"time"

	"github.com/google/uuid"
	validation "github.com/jellydator/validation"

	cryptoDomain "github.com/clinicrecords/fieldvault/internal/crypto/domain"
	customValidation "github.com/clinicrecords/fieldvault/internal/validation"
)

// Patient is the decrypted view of a patient record. It only exists in memory.
type Patient struct {
	ID        uuid.UUID
	Name      string
	Phone     *string
	Email     *string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// EncryptedPatient is the row stored in the patients table. Optional attributes have
// nil ciphertext and nonce, mapped to NULL columns.
type EncryptedPatient struct {
	ID              uuid.UUID
	CreatedAt       time.Time
	UpdatedAt       time.Time
	NameCiphertext  []byte
	NameNonce       []byte
	PhoneCiphertext []byte
	PhoneNonce      []byte
	EmailCiphertext []byte
	EmailNonce      []byte
	KeyVersion      uint
}

// Name returns the sealed name.
func (p *EncryptedPatient) Name() *cryptoDomain.EncryptedField {
	return &cryptoDomain.EncryptedField{
		Ciphertext: p.NameCiphertext,
		Nonce:      p.NameNonce,
		KeyVersion: p.KeyVersion,
	}
}

// Phone returns the sealed phone, or nil when absent.
func (p *EncryptedPatient) Phone() *cryptoDomain.EncryptedField {
	return cryptoDomain.OptionalField(p.PhoneCiphertext, p.PhoneNonce, p.KeyVersion)
}

// Email returns the sealed email, or nil when absent.
func (p *EncryptedPatient) Email() *cryptoDomain.EncryptedField {
	return cryptoDomain.OptionalField(p.EmailCiphertext, p.EmailNonce, p.KeyVersion)
}

// CreatePatientInput contains the plaintext attributes of a new patient.
type CreatePatientInput struct {
	Name  string
	Phone *string
	Email *string
}

// Validate checks the input attributes.
func (i *CreatePatientInput) Validate() error {
	err := validation.ValidateStruct(i,
		validation.Field(&i.Name, validation.Required, customValidation.NotBlank, validation.Length(1, 255)),
		validation.Field(&i.Phone, validation.NilOrNotEmpty, validation.Length(1, 32)),
		validation.Field(&i.Email, validation.NilOrNotEmpty, customValidation.Email),
	)
	return customValidation.WrapValidationError(err)
}
