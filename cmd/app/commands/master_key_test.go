package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	cryptoDomain "github.com/clinicrecords/fieldvault/internal/crypto/domain"
	cryptoServiceMocks "github.com/clinicrecords/fieldvault/internal/crypto/service/mocks"
	cryptoUseCaseMocks "github.com/clinicrecords/fieldvault/internal/crypto/usecase/mocks"
	apperrors "github.com/clinicrecords/fieldvault/internal/errors"
)

const testPassword = "correct horse battery"

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestRecord(version uint) *cryptoDomain.MasterKeyRecord {
	return &cryptoDomain.MasterKeyRecord{
		ID:         int64(version),
		CreatedAt:  time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
		Active:     true,
		KDFParams:  cryptoDomain.KDFParams{Time: 3, MemoryKiB: 65536, Threads: 4},
		KeyVersion: version,
	}
}

func TestRunProvisionMasterKey(t *testing.T) {
	ctx := context.Background()
	logger := discardLogger()

	t.Run("success-text", func(t *testing.T) {
		useCase := cryptoUseCaseMocks.NewMockMasterKeyUseCase(t)
		useCase.EXPECT().Provision(ctx, testPassword).Return(newTestRecord(1), nil).Once()

		var out bytes.Buffer
		err := RunProvisionMasterKey(ctx, useCase, logger, &out, testPassword, "text")

		require.NoError(t, err)
		assert.Contains(t, out.String(), "Master key provisioned successfully")
		assert.Contains(t, out.String(), "Key version: 1")
	})

	t.Run("success-json", func(t *testing.T) {
		useCase := cryptoUseCaseMocks.NewMockMasterKeyUseCase(t)
		useCase.EXPECT().Provision(ctx, testPassword).Return(newTestRecord(1), nil).Once()

		var out bytes.Buffer
		err := RunProvisionMasterKey(ctx, useCase, logger, &out, testPassword, "json")
		require.NoError(t, err)

		var got map[string]any
		require.NoError(t, json.Unmarshal(out.Bytes(), &got))
		assert.Equal(t, float64(1), got["key_version"])
		assert.Equal(t, true, got["active"])
		assert.Equal(t, float64(65536), got["kdf_memory_kib"])
	})

	t.Run("weak-password", func(t *testing.T) {
		useCase := cryptoUseCaseMocks.NewMockMasterKeyUseCase(t)

		err := RunProvisionMasterKey(ctx, useCase, logger, &bytes.Buffer{}, "short", "text")

		require.Error(t, err)
		assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
		assert.Contains(t, err.Error(), "at least 12 characters")
	})

	t.Run("empty-password", func(t *testing.T) {
		useCase := cryptoUseCaseMocks.NewMockMasterKeyUseCase(t)

		err := RunProvisionMasterKey(ctx, useCase, logger, &bytes.Buffer{}, "", "text")

		assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
	})

	t.Run("invalid-format", func(t *testing.T) {
		useCase := cryptoUseCaseMocks.NewMockMasterKeyUseCase(t)

		err := RunProvisionMasterKey(ctx, useCase, logger, &bytes.Buffer{}, testPassword, "yaml")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid format: yaml")
	})

	t.Run("already-provisioned", func(t *testing.T) {
		useCase := cryptoUseCaseMocks.NewMockMasterKeyUseCase(t)
		useCase.EXPECT().
			Provision(ctx, testPassword).
			Return(nil, cryptoDomain.ErrMasterKeyAlreadyProvisioned).
			Once()

		err := RunProvisionMasterKey(ctx, useCase, logger, &bytes.Buffer{}, testPassword, "text")

		assert.ErrorIs(t, err, cryptoDomain.ErrMasterKeyAlreadyProvisioned)
	})
}

func TestRunVerifyMasterKey(t *testing.T) {
	ctx := context.Background()
	logger := discardLogger()

	t.Run("success-text", func(t *testing.T) {
		useCase := cryptoUseCaseMocks.NewMockMasterKeyUseCase(t)
		useCase.EXPECT().Verify(ctx, testPassword).Return(uint(3), nil).Once()

		var out bytes.Buffer
		err := RunVerifyMasterKey(ctx, useCase, logger, &out, testPassword, "text")

		require.NoError(t, err)
		assert.Contains(t, out.String(), "active master key version 3")
	})

	t.Run("success-json", func(t *testing.T) {
		useCase := cryptoUseCaseMocks.NewMockMasterKeyUseCase(t)
		useCase.EXPECT().Verify(ctx, testPassword).Return(uint(3), nil).Once()

		var out bytes.Buffer
		err := RunVerifyMasterKey(ctx, useCase, logger, &out, testPassword, "json")

		require.NoError(t, err)
		assert.JSONEq(t, `{"key_version":3,"valid":true}`, out.String())
	})

	t.Run("wrong-password", func(t *testing.T) {
		useCase := cryptoUseCaseMocks.NewMockMasterKeyUseCase(t)
		useCase.EXPECT().Verify(ctx, "wrong").Return(uint(0), cryptoDomain.ErrDecryptionFailed).Once()

		var out bytes.Buffer
		err := RunVerifyMasterKey(ctx, useCase, logger, &out, "wrong", "text")

		assert.ErrorIs(t, err, cryptoDomain.ErrDecryptionFailed)
		assert.Empty(t, out.String())
	})
}

func TestRunSealPassword(t *testing.T) {
	ctx := context.Background()
	kmsKeyURI := "base64key://YWJjZGVmZ2hpamtsbW5vcHFyc3R1dnd4eXoxMjM0NTY="

	t.Run("success", func(t *testing.T) {
		kmsService := cryptoServiceMocks.NewMockKMSService(t)
		keeper := cryptoServiceMocks.NewMockKMSKeeper(t)

		kmsService.EXPECT().OpenKeeper(ctx, kmsKeyURI).Return(keeper, nil).Once()
		keeper.EXPECT().
			Encrypt(ctx, mock.MatchedBy(func(b []byte) bool { return string(b) == testPassword })).
			Return([]byte("sealed-password"), nil).
			Once()
		keeper.EXPECT().Close().Return(nil).Once()

		var out bytes.Buffer
		err := RunSealPassword(ctx, kmsService, &out, kmsKeyURI, testPassword)

		require.NoError(t, err)
		assert.Contains(t, out.String(), `ADMIN_PASSWORD="c2VhbGVkLXBhc3N3b3Jk"`)
	})

	t.Run("missing-kms-key-uri", func(t *testing.T) {
		kmsService := cryptoServiceMocks.NewMockKMSService(t)

		err := RunSealPassword(ctx, kmsService, &bytes.Buffer{}, "", testPassword)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "KMS_KEY_URI is required")
	})

	t.Run("weak-password", func(t *testing.T) {
		kmsService := cryptoServiceMocks.NewMockKMSService(t)

		err := RunSealPassword(ctx, kmsService, &bytes.Buffer{}, kmsKeyURI, "short")

		assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
	})

	t.Run("kms-open-error", func(t *testing.T) {
		kmsService := cryptoServiceMocks.NewMockKMSService(t)
		kmsService.EXPECT().OpenKeeper(ctx, kmsKeyURI).Return(nil, errors.New("kms error")).Once()

		err := RunSealPassword(ctx, kmsService, &bytes.Buffer{}, kmsKeyURI, testPassword)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "kms error")
	})

	t.Run("encrypt-error", func(t *testing.T) {
		kmsService := cryptoServiceMocks.NewMockKMSService(t)
		keeper := cryptoServiceMocks.NewMockKMSKeeper(t)

		kmsService.EXPECT().OpenKeeper(ctx, kmsKeyURI).Return(keeper, nil).Once()
		keeper.EXPECT().Encrypt(ctx, mock.Anything).Return(nil, errors.New("encrypt failed")).Once()
		keeper.EXPECT().Close().Return(errors.New("close failed")).Once()

		var out bytes.Buffer
		err := RunSealPassword(ctx, kmsService, &out, kmsKeyURI, testPassword)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "encrypt failed")
		assert.Contains(t, out.String(), "Warning: failed to close KMS keeper")
	})
}
