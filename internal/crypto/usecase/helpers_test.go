package usecase

import (
	"context"
	"slices"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"

	cryptoDomain "github.com/clinicrecords/fieldvault/internal/crypto/domain"
	cryptoService "github.com/clinicrecords/fieldvault/internal/crypto/service"
	databaseMocks "github.com/clinicrecords/fieldvault/internal/database/mocks"
)

var testKDFParams = cryptoDomain.KDFParams{Time: 1, MemoryKiB: cryptoDomain.MinKDFMemoryKiB, Threads: 1}

func newTestKeyWrapper() cryptoService.KeyWrapper {
	return cryptoService.NewKeyWrapper(cryptoService.NewAEADManager(), cryptoService.NewArgon2idKDF(), testKDFParams)
}

// newPassthroughTxManager returns a TxManager mock that runs fn with the given context.
func newPassthroughTxManager(t *testing.T) *databaseMocks.MockTxManager {
	txManager := databaseMocks.NewMockTxManager(t)
	txManager.EXPECT().
		WithTx(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		}).
		Maybe()
	return txManager
}

// wrapTestRecord wraps a fresh key under password and returns the record and a copy of
// the plaintext key for assertions.
func wrapTestRecord(
	t *testing.T,
	password string,
	version uint,
	active bool,
) (*cryptoDomain.MasterKeyRecord, *cryptoDomain.SymmetricKey) {
	t.Helper()

	key := cryptoDomain.GenerateSymmetricKey()
	wrapped, err := newTestKeyWrapper().Wrap(key, password)
	if err != nil {
		t.Fatalf("wrap: %v", err)
	}
	record, err := cryptoDomain.NewMasterKeyRecord(wrapped, version, time.Now().UTC())
	if err != nil {
		t.Fatalf("record: %v", err)
	}
	record.ID = int64(version)
	record.Active = active
	return record, key
}

// memoryMasterKeyRepository is an in-memory MasterKeyRepository. It ignores
// transactions.
type memoryMasterKeyRepository struct {
	mu      sync.Mutex
	nextID  int64
	records []*cryptoDomain.MasterKeyRecord
}

func (r *memoryMasterKeyRepository) Create(ctx context.Context, record *cryptoDomain.MasterKeyRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	record.ID = r.nextID
	clone := *record
	r.records = append(r.records, &clone)
	return nil
}

func (r *memoryMasterKeyRepository) Deactivate(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, record := range r.records {
		if record.ID == id {
			record.Active = false
			return nil
		}
	}
	return cryptoDomain.ErrMasterKeyNotFound
}

func (r *memoryMasterKeyRepository) List(ctx context.Context) ([]*cryptoDomain.MasterKeyRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*cryptoDomain.MasterKeyRecord, 0, len(r.records))
	for _, record := range r.records {
		clone := *record
		out = append(out, &clone)
	}
	slices.SortFunc(out, func(a, b *cryptoDomain.MasterKeyRecord) int {
		return int(b.KeyVersion) - int(a.KeyVersion)
	})
	return out, nil
}

func (r *memoryMasterKeyRepository) GetActive(ctx context.Context) (*cryptoDomain.MasterKeyRecord, error) {
	records, _ := r.List(ctx)
	for _, record := range records {
		if record.Active {
			return record, nil
		}
	}
	return nil, cryptoDomain.ErrMasterKeyNotFound
}

func (r *memoryMasterKeyRepository) GetByVersion(
	ctx context.Context,
	version uint,
) (*cryptoDomain.MasterKeyRecord, error) {
	records, _ := r.List(ctx)
	for _, record := range records {
		if record.KeyVersion == version {
			return record, nil
		}
	}
	return nil, cryptoDomain.ErrKeyVersionNotFound
}

func (r *memoryMasterKeyRepository) MaxVersion(ctx context.Context) (uint, error) {
	records, _ := r.List(ctx)
	if len(records) == 0 {
		return 0, nil
	}
	return records[0].KeyVersion, nil
}
