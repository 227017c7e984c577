package usecase

import (
	"context"
	"time"

	cryptoDomain "github.com/clinicrecords/fieldvault/internal/crypto/domain"
	"github.com/clinicrecords/fieldvault/internal/metrics"
)

const metricsDomain = "crypto"

func statusOf(err error) string {
	if err != nil {
		return "error"
	}
	return "success"
}

// masterKeyUseCaseWithMetrics decorates MasterKeyUseCase with metrics instrumentation.
type masterKeyUseCaseWithMetrics struct {
	next    MasterKeyUseCase
	metrics metrics.BusinessMetrics
}

// NewMasterKeyUseCaseWithMetrics wraps a MasterKeyUseCase with metrics recording.
func NewMasterKeyUseCaseWithMetrics(useCase MasterKeyUseCase, m metrics.BusinessMetrics) MasterKeyUseCase {
	return &masterKeyUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

func (u *masterKeyUseCaseWithMetrics) record(ctx context.Context, operation string, start time.Time, err error) {
	status := statusOf(err)
	u.metrics.RecordOperation(ctx, metricsDomain, operation, status)
	u.metrics.RecordDuration(ctx, metricsDomain, operation, time.Since(start), status)
}

// Provision records metrics for master key provisioning.
func (u *masterKeyUseCaseWithMetrics) Provision(
	ctx context.Context,
	password string,
) (*cryptoDomain.MasterKeyRecord, error) {
	start := time.Now()
	record, err := u.next.Provision(ctx, password)
	u.record(ctx, "master_key_provision", start, err)
	return record, err
}

// Rotate records metrics for master key rotation.
func (u *masterKeyUseCaseWithMetrics) Rotate(
	ctx context.Context,
	currentPassword, newPassword string,
) (*cryptoDomain.MasterKeyRecord, error) {
	start := time.Now()
	record, err := u.next.Rotate(ctx, currentPassword, newPassword)
	u.record(ctx, "master_key_rotate", start, err)
	return record, err
}

// Unlock records metrics for keyring unlocking.
func (u *masterKeyUseCaseWithMetrics) Unlock(ctx context.Context, passwords ...string) (*cryptoDomain.Keyring, error) {
	start := time.Now()
	keyring, err := u.next.Unlock(ctx, passwords...)
	u.record(ctx, "master_key_unlock", start, err)
	return keyring, err
}

// Verify records metrics for master key verification.
func (u *masterKeyUseCaseWithMetrics) Verify(ctx context.Context, password string) (uint, error) {
	start := time.Now()
	version, err := u.next.Verify(ctx, password)
	u.record(ctx, "master_key_verify", start, err)
	return version, err
}

// fieldUseCaseWithMetrics decorates FieldUseCase with metrics instrumentation.
type fieldUseCaseWithMetrics struct {
	next    FieldUseCase
	metrics metrics.BusinessMetrics
}

// NewFieldUseCaseWithMetrics wraps a FieldUseCase with metrics recording.
func NewFieldUseCaseWithMetrics(useCase FieldUseCase, m metrics.BusinessMetrics) FieldUseCase {
	return &fieldUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

// EncryptField records metrics for field encryption.
func (u *fieldUseCaseWithMetrics) EncryptField(
	ctx context.Context,
	keyring *cryptoDomain.Keyring,
	plaintext []byte,
) (*cryptoDomain.EncryptedField, error) {
	start := time.Now()
	field, err := u.next.EncryptField(ctx, keyring, plaintext)

	status := statusOf(err)
	u.metrics.RecordOperation(ctx, metricsDomain, "field_encrypt", status)
	u.metrics.RecordDuration(ctx, metricsDomain, "field_encrypt", time.Since(start), status)

	return field, err
}

// DecryptField records metrics for field decryption.
func (u *fieldUseCaseWithMetrics) DecryptField(
	ctx context.Context,
	keyring *cryptoDomain.Keyring,
	field *cryptoDomain.EncryptedField,
) ([]byte, error) {
	start := time.Now()
	plaintext, err := u.next.DecryptField(ctx, keyring, field)

	status := statusOf(err)
	u.metrics.RecordOperation(ctx, metricsDomain, "field_decrypt", status)
	u.metrics.RecordDuration(ctx, metricsDomain, "field_decrypt", time.Since(start), status)

	return plaintext, err
}
