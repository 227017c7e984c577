package usecase

import (
	"context"

	cryptoDomain "github.com/clinicrecords/fieldvault/internal/crypto/domain"
	cryptoService "github.com/clinicrecords/fieldvault/internal/crypto/service"
)

// fieldUseCase implements FieldUseCase.
type fieldUseCase struct {
	fieldCipher cryptoService.FieldCipher
}

// EncryptField seals plaintext with the active key.
func (f *fieldUseCase) EncryptField(
	ctx context.Context,
	keyring *cryptoDomain.Keyring,
	plaintext []byte,
) (*cryptoDomain.EncryptedField, error) {
	if keyring == nil {
		return nil, cryptoDomain.ErrMasterKeyNotFound
	}

	var field *cryptoDomain.EncryptedField
	err := keyring.WithActive(func(key *cryptoDomain.SymmetricKey, version uint) error {
		box, err := f.fieldCipher.Encrypt(key, plaintext, nil)
		if err != nil {
			return err
		}
		field = &cryptoDomain.EncryptedField{
			Ciphertext: box.Ciphertext,
			Nonce:      box.Nonce,
			KeyVersion: version,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return field, nil
}

// DecryptField opens field with the key version it was sealed under.
func (f *fieldUseCase) DecryptField(
	ctx context.Context,
	keyring *cryptoDomain.Keyring,
	field *cryptoDomain.EncryptedField,
) ([]byte, error) {
	if keyring == nil {
		return nil, cryptoDomain.ErrMasterKeyNotFound
	}
	if field == nil {
		return nil, cryptoDomain.ErrInvalidData
	}

	var plaintext []byte
	err := keyring.WithVersion(field.KeyVersion, func(key *cryptoDomain.SymmetricKey) error {
		var err error
		plaintext, err = f.fieldCipher.Decrypt(key, field.Box(), nil)
		return err
	})
	if err != nil {
		return nil, err
	}

	return plaintext, nil
}

// NewFieldUseCase creates a new FieldUseCase.
func NewFieldUseCase(fieldCipher cryptoService.FieldCipher) FieldUseCase {
	return &fieldUseCase{fieldCipher: fieldCipher}
}
