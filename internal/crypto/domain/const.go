package domain

// Algorithm represents the AEAD construction used for an encryption layer.
//
// The field layer and the key-wrapping layer deliberately use different algorithms so a
// weakness in one construction does not expose both the data and the key that protects it.
type Algorithm string

const (
	// AESGCM is AES-256-GCM. It encrypts record fields under the active data key.
	//
	// Key features:
	//   - 256-bit key
	//   - 12-byte nonce (96 bits), random per call
	//   - 16-byte authentication tag appended to the ciphertext
	AESGCM Algorithm = "aes-gcm"

	// ChaCha20 is ChaCha20-Poly1305. It wraps data keys under a password-derived key.
	//
	// Key features:
	//   - 256-bit key
	//   - 12-byte nonce (96 bits), random per call
	//   - 16-byte authentication tag
	//   - Constant-time software implementation
	ChaCha20 Algorithm = "chacha20-poly1305"
)

// Sizes shared by both AEAD layers and the password KDF.
const (
	KeySize   = 32
	NonceSize = 12
	TagSize   = 16
	SaltSize  = 16
)

const (
	// FieldAlgorithm encrypts record fields.
	FieldAlgorithm = AESGCM
	// WrapAlgorithm protects data keys at rest.
	WrapAlgorithm = ChaCha20
)
