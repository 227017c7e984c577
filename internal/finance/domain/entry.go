// Package domain defines the financial ledger entry and its encrypted storage form.
//
// Amounts, dates and categories stay in plaintext for reporting. Only the free text
// description, which may name a patient or a treatment, is sealed.
package domain

import (
	"time"

	"github.com/google/uuid"
	validation "github.com/jellydator/validation"

	cryptoDomain "github.com/clinicrecords/fieldvault/internal/crypto/domain"
	customValidation "github.com/clinicrecords/fieldvault/internal/validation"
)

// Entry types.
const (
	TypeIncome  = "income"
	TypeExpense = "expense"
)

// Entry is the decrypted view of a ledger entry. AmountCents holds the amount in the
// smallest currency unit.
type Entry struct {
	ID          uuid.UUID
	Type        string
	Category    string
	AmountCents int64
	Date        time.Time
	Description *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// EncryptedEntry is the row stored in the finances table. A missing description has
// nil ciphertext and nonce; KeyVersion still records the key active at write time.
type EncryptedEntry struct {
	ID                    uuid.UUID
	Type                  string
	Category              string
	AmountCents           int64
	Date                  time.Time
	CreatedAt             time.Time
	UpdatedAt             time.Time
	DescriptionCiphertext []byte
	DescriptionNonce      []byte
	KeyVersion            uint
}

// Description returns the sealed description, or nil when absent.
func (e *EncryptedEntry) Description() *cryptoDomain.EncryptedField {
	return cryptoDomain.OptionalField(e.DescriptionCiphertext, e.DescriptionNonce, e.KeyVersion)
}

// CreateEntryInput contains the attributes of a new ledger entry.
type CreateEntryInput struct {
	Type        string
	Category    string
	AmountCents int64
	Date        time.Time
	Description *string
}

// Validate checks the input attributes.
func (i *CreateEntryInput) Validate() error {
	err := validation.ValidateStruct(i,
		validation.Field(&i.Type, validation.Required, customValidation.OneOf(TypeIncome, TypeExpense)),
		validation.Field(&i.Category, validation.Required, customValidation.NotBlank, validation.Length(1, 100)),
		validation.Field(&i.AmountCents, validation.Required, validation.Min(int64(1))),
		validation.Field(&i.Date, validation.Required),
		validation.Field(&i.Description, validation.NilOrNotEmpty, validation.Length(1, 1000)),
	)
	return customValidation.WrapValidationError(err)
}
