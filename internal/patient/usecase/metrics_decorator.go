package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	cryptoDomain "github.com/clinicrecords/fieldvault/internal/crypto/domain"
	"github.com/clinicrecords/fieldvault/internal/metrics"
	patientDomain "github.com/clinicrecords/fieldvault/internal/patient/domain"
)

// patientUseCaseWithMetrics decorates PatientUseCase with metrics instrumentation.
type patientUseCaseWithMetrics struct {
	next    PatientUseCase
	metrics metrics.BusinessMetrics
}

// NewPatientUseCaseWithMetrics wraps a PatientUseCase with metrics recording.
func NewPatientUseCaseWithMetrics(useCase PatientUseCase, m metrics.BusinessMetrics) PatientUseCase {
	return &patientUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

func (p *patientUseCaseWithMetrics) record(ctx context.Context, operation string, start time.Time, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}
	p.metrics.RecordOperation(ctx, "patient", operation, status)
	p.metrics.RecordDuration(ctx, "patient", operation, time.Since(start), status)
}

// Create records metrics for patient creation.
func (p *patientUseCaseWithMetrics) Create(
	ctx context.Context,
	keyring *cryptoDomain.Keyring,
	input *patientDomain.CreatePatientInput,
) (*patientDomain.Patient, error) {
	start := time.Now()
	patient, err := p.next.Create(ctx, keyring, input)
	p.record(ctx, "patient_create", start, err)
	return patient, err
}

// Get records metrics for patient retrieval.
func (p *patientUseCaseWithMetrics) Get(
	ctx context.Context,
	keyring *cryptoDomain.Keyring,
	id uuid.UUID,
) (*patientDomain.Patient, error) {
	start := time.Now()
	patient, err := p.next.Get(ctx, keyring, id)
	p.record(ctx, "patient_get", start, err)
	return patient, err
}

// Reencrypt records metrics for patient re-encryption.
func (p *patientUseCaseWithMetrics) Reencrypt(
	ctx context.Context,
	keyring *cryptoDomain.Keyring,
	batchSize int,
) (int, error) {
	start := time.Now()
	count, err := p.next.Reencrypt(ctx, keyring, batchSize)
	p.record(ctx, "patient_reencrypt", start, err)
	return count, err
}
