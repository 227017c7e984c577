// Package service provides the cryptographic engines of the field envelope scheme:
// AEAD ciphers (AES-256-GCM for fields, ChaCha20-Poly1305 for key wrapping), the
// Argon2id password KDF and the KMS keeper used to open sealed administrator passwords.
package service

import (
	"context"

	cryptoDomain "github.com/clinicrecords/fieldvault/internal/crypto/domain"
)

// AEAD defines the interface for Authenticated Encryption with Associated Data.
type AEAD interface {
	// Encrypt encrypts plaintext with optional AAD and returns ciphertext and nonce.
	Encrypt(plaintext, aad []byte) (ciphertext, nonce []byte, err error)

	// Decrypt decrypts ciphertext using the provided nonce and AAD.
	Decrypt(ciphertext, nonce, aad []byte) ([]byte, error)
}

// AEADManager defines the interface for creating AEAD cipher instances.
type AEADManager interface {
	// CreateCipher creates an AEAD cipher instance for the specified algorithm.
	CreateCipher(key *cryptoDomain.SymmetricKey, alg cryptoDomain.Algorithm) (AEAD, error)
}

// KeyDeriver derives a wrapping key from a password.
type KeyDeriver interface {
	// DeriveKey stretches password with salt under params. The caller owns the returned key.
	DeriveKey(password, salt []byte, params cryptoDomain.KDFParams) (*cryptoDomain.SymmetricKey, error)
}

// FieldCipher seals record fields under a data key (algorithm A).
type FieldCipher interface {
	// Encrypt seals plaintext under key with a fresh nonce.
	Encrypt(key *cryptoDomain.SymmetricKey, plaintext, aad []byte) (*cryptoDomain.CipherBox, error)

	// Decrypt verifies and opens box. No plaintext is returned on failure.
	Decrypt(key *cryptoDomain.SymmetricKey, box *cryptoDomain.CipherBox, aad []byte) ([]byte, error)
}

// KeyWrapper seals a data key under a password-derived key (algorithm B).
type KeyWrapper interface {
	// Wrap seals key under a key derived from password with a fresh salt and nonce.
	Wrap(key *cryptoDomain.SymmetricKey, password string) (*cryptoDomain.WrappedKey, error)

	// Unwrap recovers the data key. The caller owns the returned key.
	Unwrap(wrapped *cryptoDomain.WrappedKey, password string) (*cryptoDomain.SymmetricKey, error)
}

// KMSKeeper is the subset of *secrets.Keeper used to open KMS-sealed values.
type KMSKeeper interface {
	Encrypt(ctx context.Context, plaintext []byte) ([]byte, error)
	Decrypt(ctx context.Context, ciphertext []byte) ([]byte, error)
	Close() error
}
