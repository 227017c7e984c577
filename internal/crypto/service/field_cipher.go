package service

import (
	"errors"
	"fmt"

	cryptoDomain "github.com/clinicrecords/fieldvault/internal/crypto/domain"
)

// FieldCipherService seals record fields with AES-256-GCM.
type FieldCipherService struct {
	aeadManager AEADManager
}

// NewFieldCipher creates a FieldCipherService backed by aeadManager.
func NewFieldCipher(aeadManager AEADManager) *FieldCipherService {
	return &FieldCipherService{aeadManager: aeadManager}
}

// Encrypt seals plaintext under key. Each call builds its own cipher instance and draws a
// fresh 96-bit nonce, so two encryptions of the same plaintext never share a nonce or a
// ciphertext. Empty plaintext is allowed and yields a tag-only ciphertext.
func (f *FieldCipherService) Encrypt(
	key *cryptoDomain.SymmetricKey,
	plaintext, aad []byte,
) (*cryptoDomain.CipherBox, error) {
	aead, err := f.aeadManager.CreateCipher(key, cryptoDomain.FieldAlgorithm)
	if err != nil {
		return nil, classifySetupError(err)
	}

	ciphertext, nonce, err := aead.Encrypt(plaintext, aad)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", cryptoDomain.ErrEncryptionFailed, err)
	}

	return &cryptoDomain.CipherBox{Ciphertext: ciphertext, Nonce: nonce}, nil
}

// Decrypt verifies and opens box under key. Structural problems (nonce length,
// ciphertext shorter than a tag) return ErrInvalidData; a tag mismatch returns
// ErrDecryptionFailed without any partial plaintext.
func (f *FieldCipherService) Decrypt(
	key *cryptoDomain.SymmetricKey,
	box *cryptoDomain.CipherBox,
	aad []byte,
) ([]byte, error) {
	if box == nil {
		return nil, fmt.Errorf("%w: cipher box is nil", cryptoDomain.ErrInvalidData)
	}
	if err := box.Validate(); err != nil {
		return nil, err
	}

	aead, err := f.aeadManager.CreateCipher(key, cryptoDomain.FieldAlgorithm)
	if err != nil {
		return nil, classifySetupError(err)
	}

	plaintext, err := aead.Decrypt(box.Ciphertext, box.Nonce, aad)
	if err != nil {
		return nil, cryptoDomain.ErrDecryptionFailed
	}
	return plaintext, nil
}

// classifySetupError keeps domain errors raised while building a cipher and reports any
// other failure as ErrEncryptionFailed.
func classifySetupError(err error) error {
	if errors.Is(err, cryptoDomain.ErrInvalidData) || errors.Is(err, cryptoDomain.ErrInvalidConfiguration) {
		return err
	}
	return fmt.Errorf("%w: %v", cryptoDomain.ErrEncryptionFailed, err)
}
