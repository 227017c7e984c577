package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	cryptoDomain "github.com/clinicrecords/fieldvault/internal/crypto/domain"
	serviceMocks "github.com/clinicrecords/fieldvault/internal/crypto/service/mocks"
	usecaseMocks "github.com/clinicrecords/fieldvault/internal/crypto/usecase/mocks"
)

func TestMasterKeyUseCase_Provision(t *testing.T) {
	ctx := context.Background()

	t.Run("Success_CreatesVersionOne", func(t *testing.T) {
		txManager := newPassthroughTxManager(t)
		repo := usecaseMocks.NewMockMasterKeyRepository(t)

		repo.EXPECT().MaxVersion(ctx).Return(uint(0), nil).Once()
		repo.EXPECT().
			Create(ctx, mock.MatchedBy(func(r *cryptoDomain.MasterKeyRecord) bool {
				return r.KeyVersion == 1 && r.Active && len(r.WrappedKeyTag) == cryptoDomain.TagSize
			})).
			Return(nil).
			Once()

		uc := NewMasterKeyUseCase(txManager, repo, newTestKeyWrapper(), 1)
		record, err := uc.Provision(ctx, "senha-forte-do-admin")

		require.NoError(t, err)
		assert.Equal(t, uint(1), record.KeyVersion)
		assert.Equal(t, testKDFParams, record.KDFParams)

		wrapped, err := record.WrappedKey()
		require.NoError(t, err)
		key, err := newTestKeyWrapper().Unwrap(wrapped, "senha-forte-do-admin")
		require.NoError(t, err)
		key.Destroy()
	})

	t.Run("Error_AlreadyProvisioned", func(t *testing.T) {
		txManager := newPassthroughTxManager(t)
		repo := usecaseMocks.NewMockMasterKeyRepository(t)

		repo.EXPECT().MaxVersion(ctx).Return(uint(3), nil).Once()

		uc := NewMasterKeyUseCase(txManager, repo, newTestKeyWrapper(), 1)
		record, err := uc.Provision(ctx, "senha")

		assert.Nil(t, record)
		assert.ErrorIs(t, err, cryptoDomain.ErrMasterKeyAlreadyProvisioned)
	})

	t.Run("Error_EmptyPassword", func(t *testing.T) {
		txManager := newPassthroughTxManager(t)
		repo := usecaseMocks.NewMockMasterKeyRepository(t)

		repo.EXPECT().MaxVersion(ctx).Return(uint(0), nil).Once()

		uc := NewMasterKeyUseCase(txManager, repo, newTestKeyWrapper(), 1)
		_, err := uc.Provision(ctx, "")

		assert.ErrorIs(t, err, cryptoDomain.ErrInvalidData)
	})

	t.Run("Error_CreateFails", func(t *testing.T) {
		txManager := newPassthroughTxManager(t)
		repo := usecaseMocks.NewMockMasterKeyRepository(t)
		dbErr := errors.New("insert failed")

		repo.EXPECT().MaxVersion(ctx).Return(uint(0), nil).Once()
		repo.EXPECT().Create(ctx, mock.Anything).Return(dbErr).Once()

		uc := NewMasterKeyUseCase(txManager, repo, newTestKeyWrapper(), 1)
		record, err := uc.Provision(ctx, "senha")

		assert.Nil(t, record)
		assert.ErrorIs(t, err, dbErr)
	})

	t.Run("Error_WrapFails_KeyDestroyed", func(t *testing.T) {
		txManager := newPassthroughTxManager(t)
		repo := usecaseMocks.NewMockMasterKeyRepository(t)
		wrapper := serviceMocks.NewMockKeyWrapper(t)

		var generated *cryptoDomain.SymmetricKey
		repo.EXPECT().MaxVersion(ctx).Return(uint(0), nil).Once()
		wrapper.EXPECT().
			Wrap(mock.Anything, "senha").
			RunAndReturn(func(key *cryptoDomain.SymmetricKey, _ string) (*cryptoDomain.WrappedKey, error) {
				generated = key
				return nil, cryptoDomain.ErrEncryptionFailed
			}).
			Once()

		uc := NewMasterKeyUseCase(txManager, repo, wrapper, 1)
		_, err := uc.Provision(ctx, "senha")

		assert.ErrorIs(t, err, cryptoDomain.ErrEncryptionFailed)
		require.NotNil(t, generated)
		assert.True(t, generated.IsZero())
	})
}

func TestMasterKeyUseCase_Rotate(t *testing.T) {
	ctx := context.Background()

	t.Run("Success_NewPassword", func(t *testing.T) {
		txManager := newPassthroughTxManager(t)
		repo := usecaseMocks.NewMockMasterKeyRepository(t)
		active, activeKey := wrapTestRecord(t, "senha-antiga", 1, true)
		defer activeKey.Destroy()

		repo.EXPECT().GetActive(ctx).Return(active, nil).Once()
		repo.EXPECT().MaxVersion(ctx).Return(uint(1), nil).Once()
		repo.EXPECT().Deactivate(ctx, active.ID).Return(nil).Once()
		repo.EXPECT().
			Create(ctx, mock.MatchedBy(func(r *cryptoDomain.MasterKeyRecord) bool {
				return r.KeyVersion == 2 && r.Active
			})).
			Return(nil).
			Once()

		uc := NewMasterKeyUseCase(txManager, repo, newTestKeyWrapper(), 1)
		record, err := uc.Rotate(ctx, "senha-antiga", "senha-nova")
		require.NoError(t, err)
		assert.Equal(t, uint(2), record.KeyVersion)

		wrapped, err := record.WrappedKey()
		require.NoError(t, err)

		_, err = newTestKeyWrapper().Unwrap(wrapped, "senha-antiga")
		assert.ErrorIs(t, err, cryptoDomain.ErrDecryptionFailed)

		newKey, err := newTestKeyWrapper().Unwrap(wrapped, "senha-nova")
		require.NoError(t, err)
		defer newKey.Destroy()
		assert.False(t, newKey.Equal(activeKey))
	})

	t.Run("Success_EmptyNewPasswordKeepsCurrent", func(t *testing.T) {
		txManager := newPassthroughTxManager(t)
		repo := usecaseMocks.NewMockMasterKeyRepository(t)
		active, activeKey := wrapTestRecord(t, "senha", 4, true)
		defer activeKey.Destroy()

		repo.EXPECT().GetActive(ctx).Return(active, nil).Once()
		repo.EXPECT().MaxVersion(ctx).Return(uint(4), nil).Once()
		repo.EXPECT().Deactivate(ctx, active.ID).Return(nil).Once()
		repo.EXPECT().Create(ctx, mock.Anything).Return(nil).Once()

		uc := NewMasterKeyUseCase(txManager, repo, newTestKeyWrapper(), 1)
		record, err := uc.Rotate(ctx, "senha", "")
		require.NoError(t, err)
		assert.Equal(t, uint(5), record.KeyVersion)

		wrapped, err := record.WrappedKey()
		require.NoError(t, err)
		key, err := newTestKeyWrapper().Unwrap(wrapped, "senha")
		require.NoError(t, err)
		key.Destroy()
	})

	t.Run("Error_WrongCurrentPassword", func(t *testing.T) {
		txManager := newPassthroughTxManager(t)
		repo := usecaseMocks.NewMockMasterKeyRepository(t)
		active, activeKey := wrapTestRecord(t, "senha-forte-do-admin", 1, true)
		defer activeKey.Destroy()

		repo.EXPECT().GetActive(ctx).Return(active, nil).Once()

		uc := NewMasterKeyUseCase(txManager, repo, newTestKeyWrapper(), 1)
		record, err := uc.Rotate(ctx, "senha-errada", "senha-nova")

		assert.Nil(t, record)
		assert.ErrorIs(t, err, cryptoDomain.ErrDecryptionFailed)
	})

	t.Run("Error_NoActiveKey", func(t *testing.T) {
		txManager := newPassthroughTxManager(t)
		repo := usecaseMocks.NewMockMasterKeyRepository(t)

		repo.EXPECT().GetActive(ctx).Return(nil, cryptoDomain.ErrMasterKeyNotFound).Once()

		uc := NewMasterKeyUseCase(txManager, repo, newTestKeyWrapper(), 1)
		_, err := uc.Rotate(ctx, "senha", "")

		assert.ErrorIs(t, err, cryptoDomain.ErrMasterKeyNotFound)
	})

	t.Run("Error_CreateFails", func(t *testing.T) {
		txManager := newPassthroughTxManager(t)
		repo := usecaseMocks.NewMockMasterKeyRepository(t)
		active, activeKey := wrapTestRecord(t, "senha", 1, true)
		defer activeKey.Destroy()
		dbErr := errors.New("duplicate key_version")

		repo.EXPECT().GetActive(ctx).Return(active, nil).Once()
		repo.EXPECT().MaxVersion(ctx).Return(uint(1), nil).Once()
		repo.EXPECT().Deactivate(ctx, active.ID).Return(nil).Once()
		repo.EXPECT().Create(ctx, mock.Anything).Return(dbErr).Once()

		uc := NewMasterKeyUseCase(txManager, repo, newTestKeyWrapper(), 1)
		record, err := uc.Rotate(ctx, "senha", "")

		assert.Nil(t, record)
		assert.ErrorIs(t, err, dbErr)
	})
}

func TestMasterKeyUseCase_Unlock(t *testing.T) {
	ctx := context.Background()

	t.Run("Success_AllVersionsWithPasswordHistory", func(t *testing.T) {
		repo := usecaseMocks.NewMockMasterKeyRepository(t)
		v3, k3 := wrapTestRecord(t, "senha-atual", 3, true)
		v2, k2 := wrapTestRecord(t, "senha-antiga", 2, false)
		v1, k1 := wrapTestRecord(t, "senha-antiga", 1, false)
		defer k1.Destroy()
		defer k2.Destroy()
		defer k3.Destroy()

		repo.EXPECT().List(ctx).Return([]*cryptoDomain.MasterKeyRecord{v3, v2, v1}, nil).Once()

		uc := NewMasterKeyUseCase(nil, repo, newTestKeyWrapper(), 2)
		keyring, err := uc.Unlock(ctx, "senha-atual", "senha-antiga")
		require.NoError(t, err)
		defer keyring.Close()

		assert.Equal(t, uint(3), keyring.ActiveVersion())
		assert.Equal(t, []uint{1, 2, 3}, keyring.Versions())

		for version, expected := range map[uint]*cryptoDomain.SymmetricKey{1: k1, 2: k2, 3: k3} {
			err := keyring.WithVersion(version, func(key *cryptoDomain.SymmetricKey) error {
				assert.True(t, key.Equal(expected), "version %d", version)
				return nil
			})
			require.NoError(t, err)
		}
	})

	t.Run("Error_NoRecords", func(t *testing.T) {
		repo := usecaseMocks.NewMockMasterKeyRepository(t)
		repo.EXPECT().List(ctx).Return(nil, nil).Once()

		uc := NewMasterKeyUseCase(nil, repo, newTestKeyWrapper(), 1)
		keyring, err := uc.Unlock(ctx, "senha")

		assert.Nil(t, keyring)
		assert.ErrorIs(t, err, cryptoDomain.ErrMasterKeyNotFound)
	})

	t.Run("Error_NoActiveRecord", func(t *testing.T) {
		repo := usecaseMocks.NewMockMasterKeyRepository(t)
		v1, k1 := wrapTestRecord(t, "senha", 1, false)
		defer k1.Destroy()
		repo.EXPECT().List(ctx).Return([]*cryptoDomain.MasterKeyRecord{v1}, nil).Once()

		uc := NewMasterKeyUseCase(nil, repo, newTestKeyWrapper(), 1)
		_, err := uc.Unlock(ctx, "senha")

		assert.ErrorIs(t, err, cryptoDomain.ErrMasterKeyNotFound)
	})

	t.Run("Error_NoPasswords", func(t *testing.T) {
		repo := usecaseMocks.NewMockMasterKeyRepository(t)

		uc := NewMasterKeyUseCase(nil, repo, newTestKeyWrapper(), 1)
		_, err := uc.Unlock(ctx)

		assert.ErrorIs(t, err, cryptoDomain.ErrInvalidData)
	})

	t.Run("Error_MissingPasswordForOldVersion", func(t *testing.T) {
		repo := usecaseMocks.NewMockMasterKeyRepository(t)
		v2, k2 := wrapTestRecord(t, "senha-atual", 2, true)
		v1, k1 := wrapTestRecord(t, "senha-antiga", 1, false)
		defer k1.Destroy()
		defer k2.Destroy()
		repo.EXPECT().List(ctx).Return([]*cryptoDomain.MasterKeyRecord{v2, v1}, nil).Once()

		uc := NewMasterKeyUseCase(nil, repo, newTestKeyWrapper(), 2)
		keyring, err := uc.Unlock(ctx, "senha-atual")

		assert.Nil(t, keyring)
		assert.ErrorIs(t, err, cryptoDomain.ErrDecryptionFailed)
		assert.ErrorContains(t, err, "master key version 1")
	})

	t.Run("Error_UnwrappedKeysDestroyedOnFailure", func(t *testing.T) {
		repo := usecaseMocks.NewMockMasterKeyRepository(t)
		wrapper := serviceMocks.NewMockKeyWrapper(t)
		v2, k2 := wrapTestRecord(t, "senha", 2, true)
		v1, k1 := wrapTestRecord(t, "senha", 1, false)
		defer k1.Destroy()
		defer k2.Destroy()

		recovered := cryptoDomain.GenerateSymmetricKey()
		repo.EXPECT().List(ctx).Return([]*cryptoDomain.MasterKeyRecord{v2, v1}, nil).Once()
		wrapper.EXPECT().
			Unwrap(mock.MatchedBy(func(w *cryptoDomain.WrappedKey) bool {
				return string(w.Salt) == string(v2.KDFSalt)
			}), "senha").
			Return(recovered, nil).
			Once()
		wrapper.EXPECT().
			Unwrap(mock.MatchedBy(func(w *cryptoDomain.WrappedKey) bool {
				return string(w.Salt) == string(v1.KDFSalt)
			}), "senha").
			Return(nil, cryptoDomain.ErrInvalidData).
			Once()

		// Concurrency 1 makes the unwrap order follow the list order.
		uc := NewMasterKeyUseCase(nil, repo, wrapper, 1)
		keyring, err := uc.Unlock(ctx, "senha")

		assert.Nil(t, keyring)
		assert.ErrorIs(t, err, cryptoDomain.ErrInvalidData)
		assert.True(t, recovered.IsZero())
	})

	t.Run("Error_ListFails", func(t *testing.T) {
		repo := usecaseMocks.NewMockMasterKeyRepository(t)
		dbErr := errors.New("connection refused")
		repo.EXPECT().List(ctx).Return(nil, dbErr).Once()

		uc := NewMasterKeyUseCase(nil, repo, newTestKeyWrapper(), 1)
		_, err := uc.Unlock(ctx, "senha")

		assert.ErrorIs(t, err, dbErr)
	})
}

func TestMasterKeyUseCase_Verify(t *testing.T) {
	ctx := context.Background()

	active, activeKey := wrapTestRecord(t, "senha-forte-do-admin", 7, true)
	defer activeKey.Destroy()

	t.Run("Success", func(t *testing.T) {
		repo := usecaseMocks.NewMockMasterKeyRepository(t)
		repo.EXPECT().GetActive(ctx).Return(active, nil).Once()

		uc := NewMasterKeyUseCase(nil, repo, newTestKeyWrapper(), 1)
		version, err := uc.Verify(ctx, "senha-forte-do-admin")

		require.NoError(t, err)
		assert.Equal(t, uint(7), version)
	})

	t.Run("Error_WrongPassword", func(t *testing.T) {
		repo := usecaseMocks.NewMockMasterKeyRepository(t)
		repo.EXPECT().GetActive(ctx).Return(active, nil).Once()

		uc := NewMasterKeyUseCase(nil, repo, newTestKeyWrapper(), 1)
		version, err := uc.Verify(ctx, "senha-errada")

		assert.ErrorIs(t, err, cryptoDomain.ErrDecryptionFailed)
		assert.Equal(t, uint(0), version)
	})

	t.Run("Error_NotProvisioned", func(t *testing.T) {
		repo := usecaseMocks.NewMockMasterKeyRepository(t)
		repo.EXPECT().GetActive(ctx).Return(nil, cryptoDomain.ErrMasterKeyNotFound).Once()

		uc := NewMasterKeyUseCase(nil, repo, newTestKeyWrapper(), 1)
		_, err := uc.Verify(ctx, "senha")

		assert.ErrorIs(t, err, cryptoDomain.ErrMasterKeyNotFound)
	})
}

func TestNewMasterKeyUseCase_DefaultConcurrency(t *testing.T) {
	uc := NewMasterKeyUseCase(nil, nil, nil, 0)

	impl, ok := uc.(*masterKeyUseCase)
	require.True(t, ok)
	assert.Equal(t, DefaultUnwrapConcurrency, impl.unwrapConcurrency)
}
