package domain

import (
	"crypto/rand"
	"crypto/subtle"
)

// SymmetricKey is 256 bits of secret key material with an explicit lifetime.
//
// A key has exactly one owner at a time: the function that generated or unwrapped it, or
// the Keyring it was handed to. The owner releases it with Destroy, normally through
// defer right after acquisition, so the bytes are zeroed on every exit path including
// error returns. Garbage collection is never relied upon for erasure.
type SymmetricKey struct {
	key [KeySize]byte
}

// GenerateSymmetricKey returns a new key filled from the operating system's CSPRNG.
func GenerateSymmetricKey() *SymmetricKey {
	k := &SymmetricKey{}
	// crypto/rand.Read never returns an error; the runtime aborts if the OS source fails.
	_, _ = rand.Read(k.key[:])
	return k
}

// NewSymmetricKey copies b into a new key. b must be exactly KeySize bytes, otherwise a
// *LengthError wrapping ErrInvalidData is returned; input is never truncated or padded.
// The caller keeps ownership of b and should zero it when done.
func NewSymmetricKey(b []byte) (*SymmetricKey, error) {
	if err := CheckLength("key", b, KeySize); err != nil {
		return nil, err
	}
	k := &SymmetricKey{}
	copy(k.key[:], b)
	return k, nil
}

// Bytes returns a view of the key material for the cipher engines. The slice aliases the
// key, so it must not be retained past the owner's scope or modified.
func (k *SymmetricKey) Bytes() []byte {
	return k.key[:]
}

// Equal reports whether both keys hold the same material, in constant time.
func (k *SymmetricKey) Equal(other *SymmetricKey) bool {
	if k == nil || other == nil {
		return k == other
	}
	return subtle.ConstantTimeCompare(k.key[:], other.key[:]) == 1
}

// Destroy zeroes the key material. It is idempotent and safe on a nil key.
func (k *SymmetricKey) Destroy() {
	if k == nil {
		return
	}
	Zero(k.key[:])
}

// IsZero reports whether every byte of the key is zero, which is the state after Destroy.
func (k *SymmetricKey) IsZero() bool {
	var zero [KeySize]byte
	return subtle.ConstantTimeCompare(k.key[:], zero[:]) == 1
}
