package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	cryptoDomain "github.com/clinicrecords/fieldvault/internal/crypto/domain"
)

// Reencrypter moves rows sealed under older key versions to the active version.
type Reencrypter interface {
	Reencrypt(ctx context.Context, keyring *cryptoDomain.Keyring, batchSize int) (int, error)
}

// ReencryptTarget names a table and the use case that re-encrypts it.
type ReencryptTarget struct {
	Table   string
	UseCase Reencrypter
}

// SelectReencryptTargets returns the targets matching table, or all of them when table
// is empty.
func SelectReencryptTargets(targets []ReencryptTarget, table string) ([]ReencryptTarget, error) {
	if table == "" {
		return targets, nil
	}
	for _, target := range targets {
		if target.Table == table {
			return []ReencryptTarget{target}, nil
		}
	}
	return nil, fmt.Errorf("unknown table %q", table)
}

// RunReencrypt re-encrypts every target in order, batchSize rows per transaction.
// The run stops at the first failing table; tables already processed stay committed.
func RunReencrypt(
	ctx context.Context,
	targets []ReencryptTarget,
	keyring *cryptoDomain.Keyring,
	logger *slog.Logger,
	writer io.Writer,
	batchSize int,
	format string,
) error {
	if err := validateFormat(format); err != nil {
		return err
	}
	if batchSize < 1 {
		return fmt.Errorf("batch size must be at least 1, got %d", batchSize)
	}

	logger.Info("re-encrypting records",
		slog.Uint64("active_version", uint64(keyring.ActiveVersion())),
		slog.Int("batch_size", batchSize),
	)

	counts := make(map[string]int, len(targets))
	total := 0
	for _, target := range targets {
		count, err := target.UseCase.Reencrypt(ctx, keyring, batchSize)
		total += count
		if err != nil {
			return fmt.Errorf("failed to re-encrypt %s after %d rows: %w", target.Table, count, err)
		}
		counts[target.Table] = count
		logger.Info("table re-encrypted", slog.String("table", target.Table), slog.Int("count", count))
	}

	if format == "json" {
		if err := outputJSON(map[string]any{
			"reencrypted": counts,
			"total":       total,
			"key_version": keyring.ActiveVersion(),
		}, writer); err != nil {
			return err
		}
	} else {
		for _, target := range targets {
			_, _ = fmt.Fprintf(writer, "Re-encrypted %d row(s) in %s\n", counts[target.Table], target.Table)
		}
		_, _ = fmt.Fprintf(writer, "Active key version: %d\n", keyring.ActiveVersion())
	}

	logger.Info("records re-encrypted", slog.Int("total", total))
	return nil
}
