package usecase

import (
	"context"
	"errors"
	"slices"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	anamnesisDomain "github.com/clinicrecords/fieldvault/internal/anamnesis/domain"
	anamnesisMocks "github.com/clinicrecords/fieldvault/internal/anamnesis/usecase/mocks"
	cryptoDomain "github.com/clinicrecords/fieldvault/internal/crypto/domain"
	cryptoService "github.com/clinicrecords/fieldvault/internal/crypto/service"
	cryptoUseCase "github.com/clinicrecords/fieldvault/internal/crypto/usecase"
	databaseMocks "github.com/clinicrecords/fieldvault/internal/database/mocks"
	apperrors "github.com/clinicrecords/fieldvault/internal/errors"
)

func ptr(s string) *string {
	return &s
}

func newFieldUseCase() cryptoUseCase.FieldUseCase {
	return cryptoUseCase.NewFieldUseCase(cryptoService.NewFieldCipher(cryptoService.NewAEADManager()))
}

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

// newKeyrings returns a keyring with version 1 active and a rotated keyring holding
// the same version 1 key plus a new active version 2.
func newKeyrings(t *testing.T) (*cryptoDomain.Keyring, *cryptoDomain.Keyring) {
	t.Helper()

	v1 := cryptoDomain.GenerateSymmetricKey()
	defer v1.Destroy()

	v1a, err := cryptoDomain.NewSymmetricKey(v1.Bytes())
	require.NoError(t, err)
	v1b, err := cryptoDomain.NewSymmetricKey(v1.Bytes())
	require.NoError(t, err)

	before, err := cryptoDomain.NewKeyring(1, map[uint]*cryptoDomain.SymmetricKey{1: v1a})
	require.NoError(t, err)
	after, err := cryptoDomain.NewKeyring(2, map[uint]*cryptoDomain.SymmetricKey{
		1: v1b,
		2: cryptoDomain.GenerateSymmetricKey(),
	})
	require.NoError(t, err)

	t.Cleanup(before.Close)
	t.Cleanup(after.Close)
	return before, after
}

type memoryAnamnesisRepository struct {
	mu   sync.Mutex
	rows map[uuid.UUID]anamnesisDomain.EncryptedAnamnesis
}

func newMemoryAnamnesisRepository() *memoryAnamnesisRepository {
	return &memoryAnamnesisRepository{rows: make(map[uuid.UUID]anamnesisDomain.EncryptedAnamnesis)}
}

func (r *memoryAnamnesisRepository) Create(ctx context.Context, anamnesis *anamnesisDomain.EncryptedAnamnesis) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rows[anamnesis.ID] = *anamnesis
	return nil
}

func (r *memoryAnamnesisRepository) Get(
	ctx context.Context,
	id uuid.UUID,
) (*anamnesisDomain.EncryptedAnamnesis, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	row, ok := r.rows[id]
	if !ok {
		return nil, anamnesisDomain.ErrAnamnesisNotFound
	}
	return &row, nil
}

func (r *memoryAnamnesisRepository) Update(ctx context.Context, anamnesis *anamnesisDomain.EncryptedAnamnesis) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.rows[anamnesis.ID]; !ok {
		return anamnesisDomain.ErrAnamnesisNotFound
	}
	r.rows[anamnesis.ID] = *anamnesis
	return nil
}

func (r *memoryAnamnesisRepository) ListByKeyVersionNot(
	ctx context.Context,
	version uint,
	limit int,
) ([]*anamnesisDomain.EncryptedAnamnesis, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []*anamnesisDomain.EncryptedAnamnesis
	for _, row := range r.rows {
		if row.KeyVersion != version {
			clone := row
			out = append(out, &clone)
		}
	}
	slices.SortFunc(out, func(a, b *anamnesisDomain.EncryptedAnamnesis) int {
		return slices.Compare(a.ID[:], b.ID[:])
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func TestAnamnesisUseCase_CreateAndGet(t *testing.T) {
	ctx := context.Background()
	keyring, _ := newKeyrings(t)
	repo := newMemoryAnamnesisRepository()
	uc := NewAnamnesisUseCase(newPassthroughTxManager(t), repo, newFieldUseCase())
	patientID := uuid.Must(uuid.NewV7())

	t.Run("Success_WithDiagnosis", func(t *testing.T) {
		input := &anamnesisDomain.CreateAnamnesisInput{
			PatientID: patientID,
			Data:      "Queixa principal: dor lombar ha duas semanas",
			Diagnosis: ptr("M54.5 lombalgia"),
		}

		created, err := uc.Create(ctx, keyring, input)
		require.NoError(t, err)
		assert.Equal(t, patientID, created.PatientID)

		row, err := repo.Get(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, uint(1), row.KeyVersion)
		assert.Equal(t, patientID, row.PatientID)
		assert.NotContains(t, string(row.DataCiphertext), "lombar")
		assert.Len(t, row.DiagnosisCiphertext, len(*input.Diagnosis)+cryptoDomain.TagSize)
		assert.NotEqual(t, row.DataNonce, row.DiagnosisNonce)

		got, err := uc.Get(ctx, keyring, created.ID)
		require.NoError(t, err)
		assert.Equal(t, input.Data, got.Data)
		require.NotNil(t, got.Diagnosis)
		assert.Equal(t, "M54.5 lombalgia", *got.Diagnosis)
	})

	t.Run("Success_DiagnosisStaysNull", func(t *testing.T) {
		created, err := uc.Create(ctx, keyring, &anamnesisDomain.CreateAnamnesisInput{
			PatientID: patientID,
			Data:      "Retorno sem queixas",
		})
		require.NoError(t, err)

		row, err := repo.Get(ctx, created.ID)
		require.NoError(t, err)
		assert.Nil(t, row.DiagnosisCiphertext)
		assert.Nil(t, row.DiagnosisNonce)

		got, err := uc.Get(ctx, keyring, created.ID)
		require.NoError(t, err)
		assert.Nil(t, got.Diagnosis)
	})

	t.Run("Error_InvalidInput", func(t *testing.T) {
		_, err := uc.Create(ctx, keyring, &anamnesisDomain.CreateAnamnesisInput{Data: "sem paciente"})
		assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
	})

	t.Run("Error_NotFound", func(t *testing.T) {
		_, err := uc.Get(ctx, keyring, uuid.Must(uuid.NewV7()))
		assert.ErrorIs(t, err, anamnesisDomain.ErrAnamnesisNotFound)
	})

	t.Run("Error_TamperedDiagnosis", func(t *testing.T) {
		created, err := uc.Create(ctx, keyring, &anamnesisDomain.CreateAnamnesisInput{
			PatientID: patientID,
			Data:      "Queixa",
			Diagnosis: ptr("R51"),
		})
		require.NoError(t, err)

		row, err := repo.Get(ctx, created.ID)
		require.NoError(t, err)
		row.DiagnosisCiphertext[0] ^= 0xff
		require.NoError(t, repo.Update(ctx, row))

		_, err = uc.Get(ctx, keyring, created.ID)
		assert.ErrorIs(t, err, cryptoDomain.ErrDecryptionFailed)
		assert.ErrorContains(t, err, "diagnosis")
	})
}

func TestAnamnesisUseCase_Create_RepositoryError(t *testing.T) {
	ctx := context.Background()
	keyring, _ := newKeyrings(t)
	repo := anamnesisMocks.NewMockAnamnesisRepository(t)

	repo.EXPECT().
		Create(ctx, mock.MatchedBy(func(a *anamnesisDomain.EncryptedAnamnesis) bool {
			return a.KeyVersion == 1 && a.DiagnosisCiphertext == nil
		})).
		Return(anamnesisDomain.ErrPatientReferenceInvalid).
		Once()

	uc := NewAnamnesisUseCase(newPassthroughTxManager(t), repo, newFieldUseCase())
	anamnesis, err := uc.Create(ctx, keyring, &anamnesisDomain.CreateAnamnesisInput{
		PatientID: uuid.Must(uuid.NewV7()),
		Data:      "Queixa",
	})

	assert.Nil(t, anamnesis)
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
}

func TestAnamnesisUseCase_Reencrypt(t *testing.T) {
	ctx := context.Background()

	t.Run("Success_MovesEveryRowToActiveVersion", func(t *testing.T) {
		before, after := newKeyrings(t)
		repo := newMemoryAnamnesisRepository()
		uc := NewAnamnesisUseCase(newPassthroughTxManager(t), repo, newFieldUseCase())
		texts := []string{"Queixa A", "Queixa B", "Queixa C"}

		var ids []uuid.UUID
		for _, text := range texts {
			created, err := uc.Create(ctx, before, &anamnesisDomain.CreateAnamnesisInput{
				PatientID: uuid.Must(uuid.NewV7()),
				Data:      text,
				Diagnosis: ptr("Z00.0"),
			})
			require.NoError(t, err)
			ids = append(ids, created.ID)
		}

		count, err := uc.Reencrypt(ctx, after, 2)
		require.NoError(t, err)
		assert.Equal(t, 3, count)

		for i, id := range ids {
			row, err := repo.Get(ctx, id)
			require.NoError(t, err)
			assert.Equal(t, uint(2), row.KeyVersion)

			got, err := uc.Get(ctx, after, id)
			require.NoError(t, err)
			assert.Equal(t, texts[i], got.Data)
			require.NotNil(t, got.Diagnosis)
			assert.Equal(t, "Z00.0", *got.Diagnosis)
		}

		count, err = uc.Reencrypt(ctx, after, 2)
		require.NoError(t, err)
		assert.Equal(t, 0, count)
	})

	t.Run("Error_ListFails", func(t *testing.T) {
		_, after := newKeyrings(t)
		repo := anamnesisMocks.NewMockAnamnesisRepository(t)
		listErr := errors.New("lock timeout")

		repo.EXPECT().
			ListByKeyVersionNot(mock.Anything, uint(2), cryptoUseCase.DefaultReencryptBatchSize).
			Return(nil, listErr).
			Once()

		uc := NewAnamnesisUseCase(newPassthroughTxManager(t), repo, newFieldUseCase())
		count, err := uc.Reencrypt(ctx, after, 0)

		assert.Equal(t, 0, count)
		assert.ErrorIs(t, err, listErr)
	})

	t.Run("Error_UpdateFails", func(t *testing.T) {
		before, after := newKeyrings(t)
		memory := newMemoryAnamnesisRepository()
		seeded := NewAnamnesisUseCase(newPassthroughTxManager(t), memory, newFieldUseCase())
		created, err := seeded.Create(ctx, before, &anamnesisDomain.CreateAnamnesisInput{
			PatientID: uuid.Must(uuid.NewV7()),
			Data:      "Queixa",
		})
		require.NoError(t, err)
		row, err := memory.Get(ctx, created.ID)
		require.NoError(t, err)

		repo := anamnesisMocks.NewMockAnamnesisRepository(t)
		updateErr := errors.New("deadlock")
		repo.EXPECT().
			ListByKeyVersionNot(mock.Anything, uint(2), 10).
			Return([]*anamnesisDomain.EncryptedAnamnesis{row}, nil).
			Once()
		repo.EXPECT().
			Update(mock.Anything, mock.MatchedBy(func(a *anamnesisDomain.EncryptedAnamnesis) bool {
				return a.ID == created.ID && a.KeyVersion == 2 && a.PatientID == created.PatientID
			})).
			Return(updateErr).
			Once()

		uc := NewAnamnesisUseCase(newPassthroughTxManager(t), repo, newFieldUseCase())
		count, err := uc.Reencrypt(ctx, after, 10)

		assert.Equal(t, 0, count)
		assert.ErrorIs(t, err, updateErr)
	})

	t.Run("Error_NilKeyring", func(t *testing.T) {
		uc := NewAnamnesisUseCase(nil, nil, newFieldUseCase())
		_, err := uc.Reencrypt(ctx, nil, 10)
		assert.ErrorIs(t, err, cryptoDomain.ErrMasterKeyNotFound)
	})
}
