package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	cryptoDomain "github.com/clinicrecords/fieldvault/internal/crypto/domain"
	cryptoUseCase "github.com/clinicrecords/fieldvault/internal/crypto/usecase"
	"github.com/clinicrecords/fieldvault/internal/database"
	patientDomain "github.com/clinicrecords/fieldvault/internal/patient/domain"
)

// DefaultReencryptBatchSize is used when Reencrypt receives a non-positive batch size.
const DefaultReencryptBatchSize = cryptoUseCase.DefaultReencryptBatchSize

// patientUseCase implements PatientUseCase.
type patientUseCase struct {
	txManager   database.TxManager
	patientRepo PatientRepository
	fields      cryptoUseCase.FieldUseCase
}

// seal encrypts the attributes of patient into a row under the keyring's active version.
func (p *patientUseCase) seal(
	ctx context.Context,
	keyring *cryptoDomain.Keyring,
	patient *patientDomain.Patient,
) (*patientDomain.EncryptedPatient, error) {
	name, err := p.fields.EncryptField(ctx, keyring, []byte(patient.Name))
	if err != nil {
		return nil, err
	}

	row := &patientDomain.EncryptedPatient{
		ID:             patient.ID,
		CreatedAt:      patient.CreatedAt,
		UpdatedAt:      patient.UpdatedAt,
		NameCiphertext: name.Ciphertext,
		NameNonce:      name.Nonce,
		KeyVersion:     name.KeyVersion,
	}

	if patient.Phone != nil {
		phone, err := p.fields.EncryptField(ctx, keyring, []byte(*patient.Phone))
		if err != nil {
			return nil, err
		}
		row.PhoneCiphertext, row.PhoneNonce = phone.Ciphertext, phone.Nonce
	}

	if patient.Email != nil {
		email, err := p.fields.EncryptField(ctx, keyring, []byte(*patient.Email))
		if err != nil {
			return nil, err
		}
		row.EmailCiphertext, row.EmailNonce = email.Ciphertext, email.Nonce
	}

	return row, nil
}

// open decrypts every attribute of row.
func (p *patientUseCase) open(
	ctx context.Context,
	keyring *cryptoDomain.Keyring,
	row *patientDomain.EncryptedPatient,
) (*patientDomain.Patient, error) {
	name, err := p.fields.DecryptField(ctx, keyring, row.Name())
	if err != nil {
		return nil, fmt.Errorf("patient %s name: %w", row.ID, err)
	}

	patient := &patientDomain.Patient{
		ID:        row.ID,
		Name:      string(name),
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}

	if field := row.Phone(); field != nil {
		phone, err := p.fields.DecryptField(ctx, keyring, field)
		if err != nil {
			return nil, fmt.Errorf("patient %s phone: %w", row.ID, err)
		}
		value := string(phone)
		patient.Phone = &value
	}

	if field := row.Email(); field != nil {
		email, err := p.fields.DecryptField(ctx, keyring, field)
		if err != nil {
			return nil, fmt.Errorf("patient %s email: %w", row.ID, err)
		}
		value := string(email)
		patient.Email = &value
	}

	return patient, nil
}

// Create stores a new patient with every attribute sealed under the active key.
func (p *patientUseCase) Create(
	ctx context.Context,
	keyring *cryptoDomain.Keyring,
	input *patientDomain.CreatePatientInput,
) (*patientDomain.Patient, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	patient := &patientDomain.Patient{
		ID:        uuid.Must(uuid.NewV7()),
		Name:      input.Name,
		Phone:     input.Phone,
		Email:     input.Email,
		CreatedAt: now,
		UpdatedAt: now,
	}

	row, err := p.seal(ctx, keyring, patient)
	if err != nil {
		return nil, err
	}

	if err := p.patientRepo.Create(ctx, row); err != nil {
		return nil, err
	}

	return patient, nil
}

// Get loads and decrypts the patient with the given id.
func (p *patientUseCase) Get(
	ctx context.Context,
	keyring *cryptoDomain.Keyring,
	id uuid.UUID,
) (*patientDomain.Patient, error) {
	row, err := p.patientRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return p.open(ctx, keyring, row)
}

// Reencrypt rewrites rows sealed under older key versions with the active key.
func (p *patientUseCase) Reencrypt(ctx context.Context, keyring *cryptoDomain.Keyring, batchSize int) (int, error) {
	return cryptoUseCase.ReencryptInBatches(ctx, p.txManager, keyring, batchSize, p.reencryptBatch(keyring))
}

func (p *patientUseCase) reencryptBatch(keyring *cryptoDomain.Keyring) cryptoUseCase.ReencryptBatch {
	return func(ctx context.Context, activeVersion uint, limit int) (int, error) {
		rows, err := p.patientRepo.ListByKeyVersionNot(ctx, activeVersion, limit)
		if err != nil {
			return 0, err
		}

		for _, row := range rows {
			patient, err := p.open(ctx, keyring, row)
			if err != nil {
				return 0, err
			}

			patient.UpdatedAt = time.Now().UTC()
			resealed, err := p.seal(ctx, keyring, patient)
			if err != nil {
				return 0, err
			}

			if err := p.patientRepo.Update(ctx, resealed); err != nil {
				return 0, err
			}
		}

		return len(rows), nil
	}
}

// NewPatientUseCase creates a new PatientUseCase.
func NewPatientUseCase(
	txManager database.TxManager,
	patientRepo PatientRepository,
	fields cryptoUseCase.FieldUseCase,
) PatientUseCase {
	return &patientUseCase{
		txManager:   txManager,
		patientRepo: patientRepo,
		fields:      fields,
	}
}
