package commands

import (
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"log/slog"
	"time"

	validation "github.com/jellydator/validation"

	cryptoDomain "github.com/clinicrecords/fieldvault/internal/crypto/domain"
	cryptoService "github.com/clinicrecords/fieldvault/internal/crypto/service"
	cryptoUseCase "github.com/clinicrecords/fieldvault/internal/crypto/usecase"
	customValidation "github.com/clinicrecords/fieldvault/internal/validation"
)

// masterKeyOutput is the JSON shape printed by the master key commands.
type masterKeyOutput struct {
	KeyVersion uint      `json:"key_version"`
	Active     bool      `json:"active"`
	CreatedAt  time.Time `json:"created_at"`
	KDFTime    uint32    `json:"kdf_time"`
	KDFMemory  uint32    `json:"kdf_memory_kib"`
	KDFThreads uint8     `json:"kdf_threads"`
}

type verifyOutput struct {
	KeyVersion uint `json:"key_version"`
	Valid      bool `json:"valid"`
}

func newMasterKeyOutput(record *cryptoDomain.MasterKeyRecord) masterKeyOutput {
	return masterKeyOutput{
		KeyVersion: record.KeyVersion,
		Active:     record.Active,
		CreatedAt:  record.CreatedAt,
		KDFTime:    record.KDFParams.Time,
		KDFMemory:  record.KDFParams.MemoryKiB,
		KDFThreads: record.KDFParams.Threads,
	}
}

// validateNewPassword applies the admin password policy to a password that is about to
// wrap a new master key.
func validateNewPassword(password string) error {
	return customValidation.WrapValidationError(
		validation.Validate(password, validation.Required, customValidation.AdminPassword),
	)
}

// RunProvisionMasterKey creates master key version 1 wrapped under password.
//
// Requirements: Database must be migrated and accessible, and no master key may exist.
func RunProvisionMasterKey(
	ctx context.Context,
	masterKeyUseCase cryptoUseCase.MasterKeyUseCase,
	logger *slog.Logger,
	writer io.Writer,
	password string,
	format string,
) error {
	if err := validateFormat(format); err != nil {
		return err
	}
	if err := validateNewPassword(password); err != nil {
		return err
	}

	logger.Info("provisioning master key")

	record, err := masterKeyUseCase.Provision(ctx, password)
	if err != nil {
		return fmt.Errorf("failed to provision master key: %w", err)
	}

	if format == "json" {
		if err := outputJSON(newMasterKeyOutput(record), writer); err != nil {
			return err
		}
	} else {
		_, _ = fmt.Fprintln(writer, "Master key provisioned successfully")
		_, _ = fmt.Fprintf(writer, "Key version: %d\n", record.KeyVersion)
		_, _ = fmt.Fprintln(writer)
		_, _ = fmt.Fprintln(writer, "Keep ADMIN_PASSWORD safe: it is required to unlock every key version.")
	}

	logger.Info("master key provisioned", slog.Uint64("key_version", uint64(record.KeyVersion)))
	return nil
}

// RunVerifyMasterKey checks that password unwraps the active master key.
func RunVerifyMasterKey(
	ctx context.Context,
	masterKeyUseCase cryptoUseCase.MasterKeyUseCase,
	logger *slog.Logger,
	writer io.Writer,
	password string,
	format string,
) error {
	if err := validateFormat(format); err != nil {
		return err
	}

	version, err := masterKeyUseCase.Verify(ctx, password)
	if err != nil {
		return fmt.Errorf("failed to verify master key: %w", err)
	}

	if format == "json" {
		if err := outputJSON(verifyOutput{KeyVersion: version, Valid: true}, writer); err != nil {
			return err
		}
	} else {
		_, _ = fmt.Fprintf(writer, "Password unlocks active master key version %d\n", version)
	}

	logger.Info("master key verified", slog.Uint64("key_version", uint64(version)))
	return nil
}

// RunSealPassword encrypts an admin password with the configured KMS key and prints the
// base64 ciphertext to place in ADMIN_PASSWORD or ADMIN_PREVIOUS_PASSWORDS.
//
// For local development, use kmsKeyURI="base64key://...". Never use it in production.
func RunSealPassword(
	ctx context.Context,
	kmsService cryptoService.KMSService,
	writer io.Writer,
	kmsKeyURI string,
	password string,
) error {
	if kmsKeyURI == "" {
		return fmt.Errorf(
			"KMS_KEY_URI is required to seal a password\n\nFor local development, use:\n  KMS_KEY_URI=\"base64key://<32-byte-base64-key>\"",
		)
	}
	if err := validateNewPassword(password); err != nil {
		return err
	}

	keeper, err := kmsService.OpenKeeper(ctx, kmsKeyURI)
	if err != nil {
		return fmt.Errorf("failed to open KMS keeper: %w", err)
	}
	defer func() {
		if closeErr := keeper.Close(); closeErr != nil {
			_, _ = fmt.Fprintf(writer, "Warning: failed to close KMS keeper: %v\n", closeErr)
		}
	}()

	plaintext := []byte(password)
	defer cryptoDomain.Zero(plaintext)

	ciphertext, err := keeper.Encrypt(ctx, plaintext)
	if err != nil {
		return fmt.Errorf("failed to encrypt password with KMS: %w", err)
	}

	_, _ = fmt.Fprintln(writer, "# Sealed admin password")
	_, _ = fmt.Fprintln(writer, "# Set KMS_KEY_URI to the same value when starting the application")
	_, _ = fmt.Fprintln(writer)
	_, _ = fmt.Fprintf(writer, "ADMIN_PASSWORD=\"%s\"\n", base64.StdEncoding.EncodeToString(ciphertext))

	return nil
}
