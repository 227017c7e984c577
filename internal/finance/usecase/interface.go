// Package usecase implements financial ledger operations on top of field encryption.
package usecase

import (
	"context"

	"github.com/google/uuid"

	cryptoDomain "github.com/clinicrecords/fieldvault/internal/crypto/domain"
	financeDomain "github.com/clinicrecords/fieldvault/internal/finance/domain"
)

// EntryRepository defines the interface for encrypted ledger entry persistence.
type EntryRepository interface {
	// Create inserts a new entry row.
	Create(ctx context.Context, entry *financeDomain.EncryptedEntry) error

	// Get returns the row with the given id or ErrEntryNotFound.
	Get(ctx context.Context, id uuid.UUID) (*financeDomain.EncryptedEntry, error)

	// Update overwrites the sealed description and key version of a row.
	Update(ctx context.Context, entry *financeDomain.EncryptedEntry) error

	// ListByKeyVersionNot returns up to limit rows stamped with a version other than
	// version, locked for the surrounding transaction.
	ListByKeyVersionNot(ctx context.Context, version uint, limit int) ([]*financeDomain.EncryptedEntry, error)
}

// EntryUseCase defines the interface for ledger entry operations.
type EntryUseCase interface {
	// Create validates input, seals the description with the active key and stores the row.
	Create(
		ctx context.Context,
		keyring *cryptoDomain.Keyring,
		input *financeDomain.CreateEntryInput,
	) (*financeDomain.Entry, error)

	// Get loads and decrypts an entry.
	Get(ctx context.Context, keyring *cryptoDomain.Keyring, id uuid.UUID) (*financeDomain.Entry, error)

	// Reencrypt moves every row stamped with an older key version to the active version,
	// batchSize rows per transaction. Returns the number of rows rewritten.
	Reencrypt(ctx context.Context, keyring *cryptoDomain.Keyring, batchSize int) (int, error)
}
