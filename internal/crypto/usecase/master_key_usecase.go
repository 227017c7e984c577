package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	cryptoDomain "github.com/clinicrecords/fieldvault/internal/crypto/domain"
	cryptoService "github.com/clinicrecords/fieldvault/internal/crypto/service"
	"github.com/clinicrecords/fieldvault/internal/database"
)

// DefaultUnwrapConcurrency bounds parallel Argon2id derivations in Unlock.
const DefaultUnwrapConcurrency = 2

// masterKeyUseCase implements MasterKeyUseCase.
type masterKeyUseCase struct {
	txManager         database.TxManager
	masterKeyRepo     MasterKeyRepository
	keyWrapper        cryptoService.KeyWrapper
	unwrapConcurrency int
}

// newRecord generates a data key, wraps it under password and builds an active record.
// The plaintext key is destroyed before returning.
func (m *masterKeyUseCase) newRecord(password string, version uint) (*cryptoDomain.MasterKeyRecord, error) {
	key := cryptoDomain.GenerateSymmetricKey()
	defer key.Destroy()

	wrapped, err := m.keyWrapper.Wrap(key, password)
	if err != nil {
		return nil, err
	}

	return cryptoDomain.NewMasterKeyRecord(wrapped, version, time.Now().UTC())
}

// unwrap recovers the data key of record with password. The caller owns the key.
func (m *masterKeyUseCase) unwrap(
	record *cryptoDomain.MasterKeyRecord,
	password string,
) (*cryptoDomain.SymmetricKey, error) {
	wrapped, err := record.WrappedKey()
	if err != nil {
		return nil, err
	}
	return m.keyWrapper.Unwrap(wrapped, password)
}

// unwrapWithAny tries each password in order. Only ErrDecryptionFailed moves on to the
// next password; structural errors are returned immediately.
func (m *masterKeyUseCase) unwrapWithAny(
	record *cryptoDomain.MasterKeyRecord,
	passwords []string,
) (*cryptoDomain.SymmetricKey, error) {
	for _, password := range passwords {
		key, err := m.unwrap(record, password)
		if err == nil {
			return key, nil
		}
		if !errors.Is(err, cryptoDomain.ErrDecryptionFailed) {
			return nil, err
		}
	}
	return nil, cryptoDomain.ErrDecryptionFailed
}

// Provision creates the first master key record.
func (m *masterKeyUseCase) Provision(ctx context.Context, password string) (*cryptoDomain.MasterKeyRecord, error) {
	var record *cryptoDomain.MasterKeyRecord

	err := m.txManager.WithTx(ctx, func(ctx context.Context) error {
		maxVersion, err := m.masterKeyRepo.MaxVersion(ctx)
		if err != nil {
			return err
		}
		if maxVersion > 0 {
			return cryptoDomain.ErrMasterKeyAlreadyProvisioned
		}

		record, err = m.newRecord(password, 1)
		if err != nil {
			return err
		}

		return m.masterKeyRepo.Create(ctx, record)
	})
	if err != nil {
		return nil, err
	}

	return record, nil
}

// Rotate replaces the active master key with a new version.
func (m *masterKeyUseCase) Rotate(
	ctx context.Context,
	currentPassword, newPassword string,
) (*cryptoDomain.MasterKeyRecord, error) {
	wrapPassword := newPassword
	if wrapPassword == "" {
		wrapPassword = currentPassword
	}

	var record *cryptoDomain.MasterKeyRecord

	err := m.txManager.WithTx(ctx, func(ctx context.Context) error {
		active, err := m.masterKeyRepo.GetActive(ctx)
		if err != nil {
			return err
		}

		// Proves knowledge of the current password before anything is written.
		currentKey, err := m.unwrap(active, currentPassword)
		if err != nil {
			return err
		}
		currentKey.Destroy()

		maxVersion, err := m.masterKeyRepo.MaxVersion(ctx)
		if err != nil {
			return err
		}

		record, err = m.newRecord(wrapPassword, maxVersion+1)
		if err != nil {
			return err
		}

		if err := m.masterKeyRepo.Deactivate(ctx, active.ID); err != nil {
			return err
		}

		return m.masterKeyRepo.Create(ctx, record)
	})
	if err != nil {
		return nil, err
	}

	return record, nil
}

// Unlock unwraps all master key versions into a Keyring.
//
// Unwraps run concurrently, bounded by the configured concurrency. If any record cannot
// be unwrapped with the supplied passwords, every key recovered so far is destroyed and
// the error names the failing version.
func (m *masterKeyUseCase) Unlock(ctx context.Context, passwords ...string) (*cryptoDomain.Keyring, error) {
	if len(passwords) == 0 {
		return nil, fmt.Errorf("%w: at least one password is required", cryptoDomain.ErrInvalidData)
	}

	records, err := m.masterKeyRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	var activeVersion uint
	for _, record := range records {
		if record.Active {
			activeVersion = record.KeyVersion
			break
		}
	}
	if activeVersion == 0 {
		return nil, cryptoDomain.ErrMasterKeyNotFound
	}

	keys := make([]*cryptoDomain.SymmetricKey, len(records))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(m.unwrapConcurrency)

	for i, record := range records {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			key, err := m.unwrapWithAny(record, passwords)
			if err != nil {
				return fmt.Errorf("master key version %d: %w", record.KeyVersion, err)
			}
			keys[i] = key
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		for _, key := range keys {
			key.Destroy()
		}
		return nil, err
	}

	byVersion := make(map[uint]*cryptoDomain.SymmetricKey, len(records))
	for i, record := range records {
		byVersion[record.KeyVersion] = keys[i]
	}

	return cryptoDomain.NewKeyring(activeVersion, byVersion)
}

// Verify checks password against the active record.
func (m *masterKeyUseCase) Verify(ctx context.Context, password string) (uint, error) {
	active, err := m.masterKeyRepo.GetActive(ctx)
	if err != nil {
		return 0, err
	}

	key, err := m.unwrap(active, password)
	if err != nil {
		return 0, err
	}
	key.Destroy()

	return active.KeyVersion, nil
}

// NewMasterKeyUseCase creates a new MasterKeyUseCase. unwrapConcurrency below 1 falls
// back to DefaultUnwrapConcurrency.
func NewMasterKeyUseCase(
	txManager database.TxManager,
	masterKeyRepo MasterKeyRepository,
	keyWrapper cryptoService.KeyWrapper,
	unwrapConcurrency int,
) MasterKeyUseCase {
	if unwrapConcurrency < 1 {
		unwrapConcurrency = DefaultUnwrapConcurrency
	}
	return &masterKeyUseCase{
		txManager:         txManager,
		masterKeyRepo:     masterKeyRepo,
		keyWrapper:        keyWrapper,
		unwrapConcurrency: unwrapConcurrency,
	}
}
