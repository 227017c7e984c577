package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	cryptoDomain "github.com/clinicrecords/fieldvault/internal/crypto/domain"
	cryptoUseCase "github.com/clinicrecords/fieldvault/internal/crypto/usecase"
	"github.com/clinicrecords/fieldvault/internal/database"
	financeDomain "github.com/clinicrecords/fieldvault/internal/finance/domain"
)

type entryUseCase struct {
	txManager database.TxManager
	entryRepo EntryRepository
	fields    cryptoUseCase.FieldUseCase
}

// seal encrypts the description of entry. Entries without a description are still
// stamped with the active version so that re-encryption treats every row alike.
func (e *entryUseCase) seal(
	ctx context.Context,
	keyring *cryptoDomain.Keyring,
	entry *financeDomain.Entry,
) (*financeDomain.EncryptedEntry, error) {
	row := &financeDomain.EncryptedEntry{
		ID:          entry.ID,
		Type:        entry.Type,
		Category:    entry.Category,
		AmountCents: entry.AmountCents,
		Date:        entry.Date,
		CreatedAt:   entry.CreatedAt,
		UpdatedAt:   entry.UpdatedAt,
	}

	if entry.Description == nil {
		if keyring == nil || keyring.ActiveVersion() == 0 {
			return nil, cryptoDomain.ErrMasterKeyNotFound
		}
		row.KeyVersion = keyring.ActiveVersion()
		return row, nil
	}

	description, err := e.fields.EncryptField(ctx, keyring, []byte(*entry.Description))
	if err != nil {
		return nil, err
	}
	row.DescriptionCiphertext = description.Ciphertext
	row.DescriptionNonce = description.Nonce
	row.KeyVersion = description.KeyVersion
	return row, nil
}

func (e *entryUseCase) open(
	ctx context.Context,
	keyring *cryptoDomain.Keyring,
	row *financeDomain.EncryptedEntry,
) (*financeDomain.Entry, error) {
	entry := &financeDomain.Entry{
		ID:          row.ID,
		Type:        row.Type,
		Category:    row.Category,
		AmountCents: row.AmountCents,
		Date:        row.Date,
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
	}

	if field := row.Description(); field != nil {
		description, err := e.fields.DecryptField(ctx, keyring, field)
		if err != nil {
			return nil, fmt.Errorf("finance entry %s description: %w", row.ID, err)
		}
		value := string(description)
		entry.Description = &value
	}

	return entry, nil
}

// Create stores a new ledger entry.
func (e *entryUseCase) Create(
	ctx context.Context,
	keyring *cryptoDomain.Keyring,
	input *financeDomain.CreateEntryInput,
) (*financeDomain.Entry, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	entry := &financeDomain.Entry{
		ID:          uuid.Must(uuid.NewV7()),
		Type:        input.Type,
		Category:    input.Category,
		AmountCents: input.AmountCents,
		Date:        dateOnly(input.Date),
		Description: input.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	row, err := e.seal(ctx, keyring, entry)
	if err != nil {
		return nil, err
	}

	if err := e.entryRepo.Create(ctx, row); err != nil {
		return nil, err
	}

	return entry, nil
}

// dateOnly drops the time of day; entries are stored in a DATE column.
func dateOnly(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// Get loads and decrypts the entry with the given id.
func (e *entryUseCase) Get(
	ctx context.Context,
	keyring *cryptoDomain.Keyring,
	id uuid.UUID,
) (*financeDomain.Entry, error) {
	row, err := e.entryRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return e.open(ctx, keyring, row)
}

// Reencrypt rewrites rows stamped with older key versions under the active key.
func (e *entryUseCase) Reencrypt(ctx context.Context, keyring *cryptoDomain.Keyring, batchSize int) (int, error) {
	return cryptoUseCase.ReencryptInBatches(ctx, e.txManager, keyring, batchSize,
		func(ctx context.Context, activeVersion uint, limit int) (int, error) {
			rows, err := e.entryRepo.ListByKeyVersionNot(ctx, activeVersion, limit)
			if err != nil {
				return 0, err
			}

			for _, row := range rows {
				entry, err := e.open(ctx, keyring, row)
				if err != nil {
					return 0, err
				}

				entry.UpdatedAt = time.Now().UTC()
				resealed, err := e.seal(ctx, keyring, entry)
				if err != nil {
					return 0, err
				}

				if err := e.entryRepo.Update(ctx, resealed); err != nil {
					return 0, err
				}
			}

			return len(rows), nil
		})
}

// NewEntryUseCase creates a new EntryUseCase.
func NewEntryUseCase(
	txManager database.TxManager,
	entryRepo EntryRepository,
	fields cryptoUseCase.FieldUseCase,
) EntryUseCase {
	return &entryUseCase{
		txManager: txManager,
		entryRepo: entryRepo,
		fields:    fields,
	}
}
