package service

import (
	"crypto/rand"
	"fmt"

	cryptoDomain "github.com/clinicrecords/fieldvault/internal/crypto/domain"
)

// KeyWrapperService seals data keys under a key derived from a password.
//
// Wrap draws a 16-byte salt, derives a wrapping key with the configured KeyDeriver and
// seals the 32 key bytes with ChaCha20-Poly1305 under a fresh nonce. Salt and KDF
// parameters travel with the result so Unwrap can re-derive the same wrapping key even
// after the defaults change.
type KeyWrapperService struct {
	aeadManager AEADManager
	kdf         KeyDeriver
	params      cryptoDomain.KDFParams
}

// NewKeyWrapper creates a KeyWrapperService that wraps new keys under params.
func NewKeyWrapper(aeadManager AEADManager, kdf KeyDeriver, params cryptoDomain.KDFParams) *KeyWrapperService {
	return &KeyWrapperService{
		aeadManager: aeadManager,
		kdf:         kdf,
		params:      params,
	}
}

// Wrap seals key under password.
func (w *KeyWrapperService) Wrap(key *cryptoDomain.SymmetricKey, password string) (*cryptoDomain.WrappedKey, error) {
	if key == nil || key.IsZero() {
		return nil, fmt.Errorf("%w: key is missing or destroyed", cryptoDomain.ErrInvalidData)
	}

	salt := make([]byte, cryptoDomain.SaltSize)
	if _, err := rand.Read(salt); err != nil {
		return nil, fmt.Errorf("%w: failed to generate salt: %v", cryptoDomain.ErrEncryptionFailed, err)
	}

	wrappingKey, err := w.derive(password, salt, w.params)
	if err != nil {
		return nil, err
	}
	defer wrappingKey.Destroy()

	aead, err := w.aeadManager.CreateCipher(wrappingKey, cryptoDomain.WrapAlgorithm)
	if err != nil {
		return nil, classifySetupError(err)
	}

	ciphertext, nonce, err := aead.Encrypt(key.Bytes(), nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", cryptoDomain.ErrEncryptionFailed, err)
	}

	return &cryptoDomain.WrappedKey{
		Box:    cryptoDomain.CipherBox{Ciphertext: ciphertext, Nonce: nonce},
		Salt:   salt,
		Params: w.params,
	}, nil
}

// Unwrap recovers the data key sealed in wrapped. A wrong password or any tampering with
// ciphertext, nonce, tag or salt returns ErrDecryptionFailed and no key.
func (w *KeyWrapperService) Unwrap(
	wrapped *cryptoDomain.WrappedKey,
	password string,
) (*cryptoDomain.SymmetricKey, error) {
	if wrapped == nil {
		return nil, fmt.Errorf("%w: wrapped key is nil", cryptoDomain.ErrInvalidData)
	}
	if err := cryptoDomain.CheckLength("salt", wrapped.Salt, cryptoDomain.SaltSize); err != nil {
		return nil, err
	}
	if err := wrapped.Box.Validate(); err != nil {
		return nil, err
	}

	wrappingKey, err := w.derive(password, wrapped.Salt, wrapped.Params)
	if err != nil {
		return nil, err
	}
	defer wrappingKey.Destroy()

	aead, err := w.aeadManager.CreateCipher(wrappingKey, cryptoDomain.WrapAlgorithm)
	if err != nil {
		return nil, classifySetupError(err)
	}

	plaintext, err := aead.Decrypt(wrapped.Box.Ciphertext, wrapped.Box.Nonce, nil)
	if err != nil {
		return nil, cryptoDomain.ErrDecryptionFailed
	}
	defer cryptoDomain.Zero(plaintext)

	return cryptoDomain.NewSymmetricKey(plaintext)
}

func (w *KeyWrapperService) derive(
	password string,
	salt []byte,
	params cryptoDomain.KDFParams,
) (*cryptoDomain.SymmetricKey, error) {
	passwordBytes := []byte(password)
	defer cryptoDomain.Zero(passwordBytes)

	return w.kdf.DeriveKey(passwordBytes, salt, params)
}
