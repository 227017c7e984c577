package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	anamnesisDomain "github.com/clinicrecords/fieldvault/internal/anamnesis/domain"
	cryptoDomain "github.com/clinicrecords/fieldvault/internal/crypto/domain"
	cryptoUseCase "github.com/clinicrecords/fieldvault/internal/crypto/usecase"
	"github.com/clinicrecords/fieldvault/internal/database"
)

type anamnesisUseCase struct {
	txManager     database.TxManager
	anamnesisRepo AnamnesisRepository
	fields        cryptoUseCase.FieldUseCase
}

func (a *anamnesisUseCase) seal(
	ctx context.Context,
	keyring *cryptoDomain.Keyring,
	anamnesis *anamnesisDomain.Anamnesis,
) (*anamnesisDomain.EncryptedAnamnesis, error) {
	data, err := a.fields.EncryptField(ctx, keyring, []byte(anamnesis.Data))
	if err != nil {
		return nil, err
	}

	row := &anamnesisDomain.EncryptedAnamnesis{
		ID:             anamnesis.ID,
		PatientID:      anamnesis.PatientID,
		CreatedAt:      anamnesis.CreatedAt,
		UpdatedAt:      anamnesis.UpdatedAt,
		DataCiphertext: data.Ciphertext,
		DataNonce:      data.Nonce,
		KeyVersion:     data.KeyVersion,
	}

	if anamnesis.Diagnosis != nil {
		diagnosis, err := a.fields.EncryptField(ctx, keyring, []byte(*anamnesis.Diagnosis))
		if err != nil {
			return nil, err
		}
		row.DiagnosisCiphertext, row.DiagnosisNonce = diagnosis.Ciphertext, diagnosis.Nonce
	}

	return row, nil
}

func (a *anamnesisUseCase) open(
	ctx context.Context,
	keyring *cryptoDomain.Keyring,
	row *anamnesisDomain.EncryptedAnamnesis,
) (*anamnesisDomain.Anamnesis, error) {
	data, err := a.fields.DecryptField(ctx, keyring, row.Data())
	if err != nil {
		return nil, fmt.Errorf("anamnesis %s data: %w", row.ID, err)
	}

	anamnesis := &anamnesisDomain.Anamnesis{
		ID:        row.ID,
		PatientID: row.PatientID,
		Data:      string(data),
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}

	if field := row.Diagnosis(); field != nil {
		diagnosis, err := a.fields.DecryptField(ctx, keyring, field)
		if err != nil {
			return nil, fmt.Errorf("anamnesis %s diagnosis: %w", row.ID, err)
		}
		value := string(diagnosis)
		anamnesis.Diagnosis = &value
	}

	return anamnesis, nil
}

// Create stores a new anamnesis with its clinical text sealed under the active key.
func (a *anamnesisUseCase) Create(
	ctx context.Context,
	keyring *cryptoDomain.Keyring,
	input *anamnesisDomain.CreateAnamnesisInput,
) (*anamnesisDomain.Anamnesis, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	anamnesis := &anamnesisDomain.Anamnesis{
		ID:        uuid.Must(uuid.NewV7()),
		PatientID: input.PatientID,
		Data:      input.Data,
		Diagnosis: input.Diagnosis,
		CreatedAt: now,
		UpdatedAt: now,
	}

	row, err := a.seal(ctx, keyring, anamnesis)
	if err != nil {
		return nil, err
	}

	if err := a.anamnesisRepo.Create(ctx, row); err != nil {
		return nil, err
	}

	return anamnesis, nil
}

// Get loads and decrypts the anamnesis with the given id.
func (a *anamnesisUseCase) Get(
	ctx context.Context,
	keyring *cryptoDomain.Keyring,
	id uuid.UUID,
) (*anamnesisDomain.Anamnesis, error) {
	row, err := a.anamnesisRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return a.open(ctx, keyring, row)
}

// Reencrypt rewrites rows sealed under older key versions with the active key.
func (a *anamnesisUseCase) Reencrypt(ctx context.Context, keyring *cryptoDomain.Keyring, batchSize int) (int, error) {
	return cryptoUseCase.ReencryptInBatches(ctx, a.txManager, keyring, batchSize,
		func(ctx context.Context, activeVersion uint, limit int) (int, error) {
			rows, err := a.anamnesisRepo.ListByKeyVersionNot(ctx, activeVersion, limit)
			if err != nil {
				return 0, err
			}

			for _, row := range rows {
				anamnesis, err := a.open(ctx, keyring, row)
				if err != nil {
					return 0, err
				}

				anamnesis.UpdatedAt = time.Now().UTC()
				resealed, err := a.seal(ctx, keyring, anamnesis)
				if err != nil {
					return 0, err
				}

				if err := a.anamnesisRepo.Update(ctx, resealed); err != nil {
					return 0, err
				}
			}

			return len(rows), nil
		})
}

// NewAnamnesisUseCase creates a new AnamnesisUseCase.
func NewAnamnesisUseCase(
	txManager database.TxManager,
	anamnesisRepo AnamnesisRepository,
	fields cryptoUseCase.FieldUseCase,
) AnamnesisUseCase {
	return &anamnesisUseCase{
		txManager:     txManager,
		anamnesisRepo: anamnesisRepo,
		fields:        fields,
	}
}
