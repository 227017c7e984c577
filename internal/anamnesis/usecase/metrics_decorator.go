package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	anamnesisDomain "github.com/clinicrecords/fieldvault/internal/anamnesis/domain"
	cryptoDomain "github.com/clinicrecords/fieldvault/internal/crypto/domain"
	"github.com/clinicrecords/fieldvault/internal/metrics"
)

// anamnesisUseCaseWithMetrics decorates AnamnesisUseCase with metrics instrumentation.
type anamnesisUseCaseWithMetrics struct {
	next    AnamnesisUseCase
	metrics metrics.BusinessMetrics
}

// NewAnamnesisUseCaseWithMetrics wraps an AnamnesisUseCase with metrics recording.
func NewAnamnesisUseCaseWithMetrics(useCase AnamnesisUseCase, m metrics.BusinessMetrics) AnamnesisUseCase {
	return &anamnesisUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

func (a *anamnesisUseCaseWithMetrics) record(ctx context.Context, operation string, start time.Time, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}
	a.metrics.RecordOperation(ctx, "anamnesis", operation, status)
	a.metrics.RecordDuration(ctx, "anamnesis", operation, time.Since(start), status)
}

func (a *anamnesisUseCaseWithMetrics) Create(
	ctx context.Context,
	keyring *cryptoDomain.Keyring,
	input *anamnesisDomain.CreateAnamnesisInput,
) (*anamnesisDomain.Anamnesis, error) {
	start := time.Now()
	anamnesis, err := a.next.Create(ctx, keyring, input)
	a.record(ctx, "anamnesis_create", start, err)
	return anamnesis, err
}

func (a *anamnesisUseCaseWithMetrics) Get(
	ctx context.Context,
	keyring *cryptoDomain.Keyring,
	id uuid.UUID,
) (*anamnesisDomain.Anamnesis, error) {
	start := time.Now()
	anamnesis, err := a.next.Get(ctx, keyring, id)
	a.record(ctx, "anamnesis_get", start, err)
	return anamnesis, err
}

func (a *anamnesisUseCaseWithMetrics) Reencrypt(
	ctx context.Context,
	keyring *cryptoDomain.Keyring,
	batchSize int,
) (int, error) {
	start := time.Now()
	count, err := a.next.Reencrypt(ctx, keyring, batchSize)
	a.record(ctx, "anamnesis_reencrypt", start, err)
	return count, err
}
