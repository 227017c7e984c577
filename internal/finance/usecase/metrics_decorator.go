package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	cryptoDomain "github.com/clinicrecords/fieldvault/internal/crypto/domain"
	financeDomain "github.com/clinicrecords/fieldvault/internal/finance/domain"
	"github.com/clinicrecords/fieldvault/internal/metrics"
)

// entryUseCaseWithMetrics decorates EntryUseCase with metrics instrumentation.
type entryUseCaseWithMetrics struct {
	next    EntryUseCase
	metrics metrics.BusinessMetrics
}

// NewEntryUseCaseWithMetrics wraps an EntryUseCase with metrics recording.
func NewEntryUseCaseWithMetrics(useCase EntryUseCase, m metrics.BusinessMetrics) EntryUseCase {
	return &entryUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

func (e *entryUseCaseWithMetrics) record(ctx context.Context, operation string, start time.Time, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}
	e.metrics.RecordOperation(ctx, "finance", operation, status)
	e.metrics.RecordDuration(ctx, "finance", operation, time.Since(start), status)
}

func (e *entryUseCaseWithMetrics) Create(
	ctx context.Context,
	keyring *cryptoDomain.Keyring,
	input *financeDomain.CreateEntryInput,
) (*financeDomain.Entry, error) {
	start := time.Now()
	entry, err := e.next.Create(ctx, keyring, input)
	e.record(ctx, "finance_create", start, err)
	return entry, err
}

func (e *entryUseCaseWithMetrics) Get(
	ctx context.Context,
	keyring *cryptoDomain.Keyring,
	id uuid.UUID,
) (*financeDomain.Entry, error) {
	start := time.Now()
	entry, err := e.next.Get(ctx, keyring, id)
	e.record(ctx, "finance_get", start, err)
	return entry, err
}

func (e *entryUseCaseWithMetrics) Reencrypt(
	ctx context.Context,
	keyring *cryptoDomain.Keyring,
	batchSize int,
) (int, error) {
	start := time.Now()
	count, err := e.next.Reencrypt(ctx, keyring, batchSize)
	e.record(ctx, "finance_reencrypt", start, err)
	return count, err
}
