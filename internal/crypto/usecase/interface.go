// Package usecase defines the business logic of master key management and field
// encryption.
//
// Master key use cases provision, rotate, verify and unlock the versioned data keys
// stored as MasterKeyRecords. Field use cases seal and open individual record fields with
// a Keyring produced by Unlock.
package usecase

import (
	"context"

	cryptoDomain "github.com/clinicrecords/fieldvault/internal/crypto/domain"
)

// MasterKeyRepository defines the interface for master key record persistence.
//
// Implementations must participate in the transaction carried by ctx (database.GetTx)
// so provisioning and rotation stay atomic.
type MasterKeyRepository interface {
	// Create stores a new record and sets its ID.
	Create(ctx context.Context, record *cryptoDomain.MasterKeyRecord) error

	// Deactivate clears the active flag of the record with the given id.
	Deactivate(ctx context.Context, id int64) error

	// List returns all records ordered by key version descending (newest first).
	List(ctx context.Context) ([]*cryptoDomain.MasterKeyRecord, error)

	// GetActive returns the active record or ErrMasterKeyNotFound.
	GetActive(ctx context.Context) (*cryptoDomain.MasterKeyRecord, error)

	// GetByVersion returns the record of a version or ErrKeyVersionNotFound.
	GetByVersion(ctx context.Context, version uint) (*cryptoDomain.MasterKeyRecord, error)

	// MaxVersion returns the highest stored version, 0 when there are no records.
	MaxVersion(ctx context.Context) (uint, error)
}

// MasterKeyUseCase defines master key lifecycle operations.
//
// Records are immutable once written apart from the active flag. A rotation never
// rewraps older versions, so after a password change older records remain wrapped under
// the password that was current when they were created; Unlock accepts every password
// that may still be needed.
type MasterKeyUseCase interface {
	// Provision creates version 1 wrapped under password. Fails with
	// ErrMasterKeyAlreadyProvisioned if any record exists.
	Provision(ctx context.Context, password string) (*cryptoDomain.MasterKeyRecord, error)

	// Rotate authorizes with currentPassword against the active record, then atomically
	// deactivates it and stores a new data key as version max+1, wrapped under
	// newPassword (or currentPassword when newPassword is empty).
	Rotate(ctx context.Context, currentPassword, newPassword string) (*cryptoDomain.MasterKeyRecord, error)

	// Unlock unwraps every record, trying passwords in order for each one, and returns a
	// Keyring with the active version selected. The caller must Close the keyring.
	Unlock(ctx context.Context, passwords ...string) (*cryptoDomain.Keyring, error)

	// Verify unwraps the active record with password and returns its version.
	Verify(ctx context.Context, password string) (uint, error)
}

// FieldUseCase defines record field encryption operations.
type FieldUseCase interface {
	// EncryptField seals plaintext with the active key of keyring and tags the result
	// with that key's version.
	EncryptField(
		ctx context.Context,
		keyring *cryptoDomain.Keyring,
		plaintext []byte,
	) (*cryptoDomain.EncryptedField, error)

	// DecryptField opens field with the key of field.KeyVersion.
	DecryptField(
		ctx context.Context,
		keyring *cryptoDomain.Keyring,
		field *cryptoDomain.EncryptedField,
	) ([]byte, error)
}
