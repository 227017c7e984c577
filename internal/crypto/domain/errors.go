package domain

import (
	"fmt"

	"github.com/clinicrecords/fieldvault/internal/errors"
)

// Cryptographic error definitions.
//
// Each sentinel wraps a category from internal/errors, so callers can match either the
// precise condition (errors.Is(err, ErrDecryptionFailed)) or the broad category
// (errors.Is(err, errors.ErrInvalidInput)). None of them is ever retried automatically:
// encryption retries must draw a fresh nonce and decryption retries need corrected input.
var (
	// ErrEncryptionFailed indicates the underlying cipher or the random source reported a
	// failure while sealing data.
	ErrEncryptionFailed = errors.Wrap(errors.ErrInternal, "encryption failed")

	// ErrDecryptionFailed indicates authentication-tag verification failed.
	//
	// This can be caused by:
	//   - Wrong key (or wrong password when unwrapping)
	//   - Tampered ciphertext, nonce or tag
	//   - Ciphertext produced under a different key version
	//
	// The specific cause is not disclosed and no partial plaintext is returned.
	ErrDecryptionFailed = errors.Wrap(errors.ErrInvalidInput, "decryption failed")

	// ErrInvalidData indicates a structural violation (key, nonce, salt or unwrapped-key
	// length) detected before any cryptographic primitive runs.
	ErrInvalidData = errors.Wrap(errors.ErrInvalidInput, "invalid data")

	// ErrInvalidConfiguration indicates a recognized option has a malformed value, such as
	// out of range Argon2id parameters.
	ErrInvalidConfiguration = errors.Wrap(errors.ErrInvalidInput, "invalid configuration")

	// ErrMasterKeyNotFound indicates there is no active master key record. Any operation
	// that needs the active key fails until a key is provisioned.
	ErrMasterKeyNotFound = errors.Wrap(errors.ErrNotFound, "master key not found")

	// ErrMasterKeyAlreadyProvisioned indicates provisioning was requested while master key
	// records already exist. Use rotation instead.
	ErrMasterKeyAlreadyProvisioned = errors.Wrap(errors.ErrConflict, "master key already provisioned")

	// ErrConcurrentKeyChange indicates another provisioning or rotation committed first and
	// the database rejected this one through its unique constraints. Retrying re-reads the
	// new active record.
	ErrConcurrentKeyChange = errors.Wrap(errors.ErrConflict, "concurrent master key change")

	// ErrKeyVersionNotFound indicates data references a key version that is not loaded in
	// the keyring.
	ErrKeyVersionNotFound = errors.Wrap(errors.ErrNotFound, "key version not found")
)

// LengthError reports a byte sequence whose length does not match what the cipher layer
// requires. It unwraps to ErrInvalidData.
type LengthError struct {
	Field    string
	Expected int
	Got      int
}

// Error implements error.
func (e *LengthError) Error() string {
	return fmt.Sprintf("%s: %s must be %d bytes, got %d", ErrInvalidData, e.Field, e.Expected, e.Got)
}

// Unwrap returns ErrInvalidData.
func (e *LengthError) Unwrap() error {
	return ErrInvalidData
}

// CheckLength returns a *LengthError when len(b) != expected.
func CheckLength(field string, b []byte, expected int) error {
	if len(b) != expected {
		return &LengthError{Field: field, Expected: expected, Got: len(b)}
	}
	return nil
}
