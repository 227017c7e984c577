// Package usecase implements anamnesis operations on top of field encryption.
package usecase

import (
	"context"

	"github.com/google/uuid"

	anamnesisDomain "github.com/clinicrecords/fieldvault/internal/anamnesis/domain"
	cryptoDomain "github.com/clinicrecords/fieldvault/internal/crypto/domain"
)

// AnamnesisRepository defines the interface for encrypted anamnesis persistence.
type AnamnesisRepository interface {
	// Create inserts a new anamnesis row.
	Create(ctx context.Context, anamnesis *anamnesisDomain.EncryptedAnamnesis) error

	// Get returns the row with the given id or ErrAnamnesisNotFound.
	Get(ctx context.Context, id uuid.UUID) (*anamnesisDomain.EncryptedAnamnesis, error)

	// Update overwrites the sealed attributes and key version of a row.
	Update(ctx context.Context, anamnesis *anamnesisDomain.EncryptedAnamnesis) error

	// ListByKeyVersionNot returns up to limit rows sealed under a version other than
	// version, locked for the surrounding transaction.
	ListByKeyVersionNot(ctx context.Context, version uint, limit int) ([]*anamnesisDomain.EncryptedAnamnesis, error)
}

// AnamnesisUseCase defines the interface for anamnesis operations.
type AnamnesisUseCase interface {
	// Create validates input, seals the clinical text with the active key and stores the row.
	Create(
		ctx context.Context,
		keyring *cryptoDomain.Keyring,
		input *anamnesisDomain.CreateAnamnesisInput,
	) (*anamnesisDomain.Anamnesis, error)

	// Get loads and decrypts an anamnesis.
	Get(ctx context.Context, keyring *cryptoDomain.Keyring, id uuid.UUID) (*anamnesisDomain.Anamnesis, error)

	// Reencrypt moves every row sealed under an older key version to the active version,
	// batchSize rows per transaction. Returns the number of rows rewritten.
	Reencrypt(ctx context.Context, keyring *cryptoDomain.Keyring, batchSize int) (int, error)
}
