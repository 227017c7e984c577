package usecase

import (
	"context"

	cryptoDomain "github.com/clinicrecords/fieldvault/internal/crypto/domain"
	"github.com/clinicrecords/fieldvault/internal/database"
)

// DefaultReencryptBatchSize is used when a re-encryption pass receives a non-positive
// batch size.
const DefaultReencryptBatchSize = 100

// ReencryptBatch rewrites up to limit rows that are not sealed under activeVersion and
// returns how many rows it rewrote. It runs inside the transaction carried by ctx.
type ReencryptBatch func(ctx context.Context, activeVersion uint, limit int) (int, error)

// ReencryptInBatches runs batch until it rewrites fewer than batchSize rows.
//
// Each batch commits in its own transaction, so an interrupted run keeps the batches
// already committed and the next run resumes with the remainder.
func ReencryptInBatches(
	ctx context.Context,
	txManager database.TxManager,
	keyring *cryptoDomain.Keyring,
	batchSize int,
	batch ReencryptBatch,
) (int, error) {
	if keyring == nil {
		return 0, cryptoDomain.ErrMasterKeyNotFound
	}
	if batchSize < 1 {
		batchSize = DefaultReencryptBatchSize
	}

	activeVersion := keyring.ActiveVersion()
	if activeVersion == 0 {
		return 0, cryptoDomain.ErrMasterKeyNotFound
	}

	total := 0
	for {
		if err := ctx.Err(); err != nil {
			return total, err
		}

		var count int
		err := txManager.WithTx(ctx, func(ctx context.Context) error {
			var err error
			count, err = batch(ctx, activeVersion, batchSize)
			return err
		})
		if err != nil {
			return total, err
		}

		total += count
		if count < batchSize {
			return total, nil
		}
	}
}
