package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	cryptoUseCase "github.com/clinicrecords/fieldvault/internal/crypto/usecase"
)

// RunRotateMasterKey deactivates the active master key and stores a new key version.
// The new version is wrapped under newPassword, or under currentPassword when newPassword
// is empty. Existing rows stay readable; reencrypt moves them to the new version.
func RunRotateMasterKey(
	ctx context.Context,
	masterKeyUseCase cryptoUseCase.MasterKeyUseCase,
	logger *slog.Logger,
	writer io.Writer,
	currentPassword, newPassword string,
	format string,
) error {
	if err := validateFormat(format); err != nil {
		return err
	}
	if newPassword != "" {
		if err := validateNewPassword(newPassword); err != nil {
			return err
		}
	}

	logger.Info("rotating master key", slog.Bool("password_change", newPassword != ""))

	record, err := masterKeyUseCase.Rotate(ctx, currentPassword, newPassword)
	if err != nil {
		return fmt.Errorf("failed to rotate master key: %w", err)
	}

	if format == "json" {
		if err := outputJSON(newMasterKeyOutput(record), writer); err != nil {
			return err
		}
	} else {
		_, _ = fmt.Fprintln(writer, "Master key rotated successfully")
		_, _ = fmt.Fprintf(writer, "Active key version: %d\n", record.KeyVersion)
		_, _ = fmt.Fprintln(writer)
		_, _ = fmt.Fprintln(writer, "# Rotation Workflow:")
		if newPassword != "" {
			_, _ = fmt.Fprintln(writer, "# 1. Set ADMIN_PASSWORD to the new password")
			_, _ = fmt.Fprintln(writer, "# 2. Append the previous password to ADMIN_PREVIOUS_PASSWORDS")
		} else {
			_, _ = fmt.Fprintln(writer, "# 1. ADMIN_PASSWORD is unchanged")
			_, _ = fmt.Fprintln(writer, "# 2. ADMIN_PREVIOUS_PASSWORDS is unchanged")
		}
		_, _ = fmt.Fprintln(writer, "# 3. Restart the application")
		_, _ = fmt.Fprintln(writer, "# 4. Run: app reencrypt")
	}

	logger.Info("master key rotated", slog.Uint64("key_version", uint64(record.KeyVersion)))
	return nil
}
