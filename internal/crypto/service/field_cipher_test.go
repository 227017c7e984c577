package service

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cryptoDomain "github.com/clinicrecords/fieldvault/internal/crypto/domain"
)

func newTestFieldCipher() *FieldCipherService {
	return NewFieldCipher(NewAEADManager())
}

func TestFieldCipherService_RoundTrip(t *testing.T) {
	fc := newTestFieldCipher()
	key := cryptoDomain.GenerateSymmetricKey()
	defer key.Destroy()

	testCases := []struct {
		name      string
		plaintext []byte
	}{
		{name: "empty", plaintext: []byte{}},
		{name: "one byte", plaintext: []byte{0x00}},
		{name: "name", plaintext: []byte("Maria da Silva")},
		{name: "unicode", plaintext: []byte("Anamnese: paciente relata dor lombar, não fuma")},
		{name: "large", plaintext: bytes.Repeat([]byte{0xA5}, 64*1024)},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			box, err := fc.Encrypt(key, tc.plaintext, nil)
			require.NoError(t, err)
			assert.Len(t, box.Nonce, cryptoDomain.NonceSize)
			assert.Len(t, box.Ciphertext, len(tc.plaintext)+cryptoDomain.TagSize)

			decrypted, err := fc.Decrypt(key, box, nil)
			require.NoError(t, err)
			assert.True(t, bytes.Equal(tc.plaintext, decrypted))
		})
	}

	t.Run("with AAD", func(t *testing.T) {
		aad := []byte("patients.name")
		box, err := fc.Encrypt(key, []byte("bound"), aad)
		require.NoError(t, err)

		_, err = fc.Decrypt(key, box, []byte("patients.email"))
		assert.ErrorIs(t, err, cryptoDomain.ErrDecryptionFailed)

		decrypted, err := fc.Decrypt(key, box, aad)
		require.NoError(t, err)
		assert.Equal(t, []byte("bound"), decrypted)
	})
}

func TestFieldCipherService_ConfidentialRoundTrip(t *testing.T) {
	fc := newTestFieldCipher()
	key := cryptoDomain.GenerateSymmetricKey()
	defer key.Destroy()

	plaintext := []byte("Informacao confidencial")

	box, err := fc.Encrypt(key, plaintext, nil)
	require.NoError(t, err)
	assert.Len(t, box.Nonce, 12)
	assert.Len(t, box.Ciphertext, 23+16)
	assert.NotContains(t, string(box.Ciphertext), "confidencial")

	decrypted, err := fc.Decrypt(key, box, nil)
	require.NoError(t, err)
	assert.Equal(t, "Informacao confidencial", string(decrypted))
}

func TestFieldCipherService_KeySeparation(t *testing.T) {
	fc := newTestFieldCipher()

	for range 20 {
		k1 := cryptoDomain.GenerateSymmetricKey()
		k2 := cryptoDomain.GenerateSymmetricKey()

		box, err := fc.Encrypt(k1, []byte("segredo"), nil)
		require.NoError(t, err)

		decrypted, err := fc.Decrypt(k2, box, nil)
		assert.ErrorIs(t, err, cryptoDomain.ErrDecryptionFailed)
		assert.Nil(t, decrypted)

		k1.Destroy()
		k2.Destroy()
	}
}

func TestFieldCipherService_NonceUniqueness(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping 100k encryptions in short mode")
	}

	fc := newTestFieldCipher()
	key := cryptoDomain.GenerateSymmetricKey()
	defer key.Destroy()

	const n = 100_000
	seen := make(map[[cryptoDomain.NonceSize]byte]struct{}, n)
	var firstCiphertext []byte

	for i := range n {
		box, err := fc.Encrypt(key, []byte("same plaintext"), nil)
		require.NoError(t, err)

		var nonce [cryptoDomain.NonceSize]byte
		copy(nonce[:], box.Nonce)
		_, dup := seen[nonce]
		require.False(t, dup, "nonce repeated at encryption %d", i)
		seen[nonce] = struct{}{}

		if i == 0 {
			firstCiphertext = box.Ciphertext
		} else if i == 1 {
			assert.NotEqual(t, firstCiphertext, box.Ciphertext)
		}
	}
	assert.Len(t, seen, n)
}

func TestFieldCipherService_TamperSensitivity(t *testing.T) {
	fc := newTestFieldCipher()
	key := cryptoDomain.GenerateSymmetricKey()
	defer key.Destroy()

	box, err := fc.Encrypt(key, []byte("CPF 123.456.789-00"), nil)
	require.NoError(t, err)

	t.Run("every ciphertext and tag bit", func(t *testing.T) {
		for i := range len(box.Ciphertext) * 8 {
			tampered := &cryptoDomain.CipherBox{
				Ciphertext: bytes.Clone(box.Ciphertext),
				Nonce:      box.Nonce,
			}
			tampered.Ciphertext[i/8] ^= 1 << (i % 8)

			decrypted, err := fc.Decrypt(key, tampered, nil)
			require.ErrorIs(t, err, cryptoDomain.ErrDecryptionFailed, "bit %d", i)
			require.Nil(t, decrypted)
		}
	})

	t.Run("every nonce bit", func(t *testing.T) {
		for i := range cryptoDomain.NonceSize * 8 {
			tampered := &cryptoDomain.CipherBox{
				Ciphertext: box.Ciphertext,
				Nonce:      bytes.Clone(box.Nonce),
			}
			tampered.Nonce[i/8] ^= 1 << (i % 8)

			_, err := fc.Decrypt(key, tampered, nil)
			require.ErrorIs(t, err, cryptoDomain.ErrDecryptionFailed, "bit %d", i)
		}
	})
}

func TestFieldCipherService_StructuralErrors(t *testing.T) {
	fc := newTestFieldCipher()
	key := cryptoDomain.GenerateSymmetricKey()
	defer key.Destroy()

	t.Run("short nonce", func(t *testing.T) {
		box := &cryptoDomain.CipherBox{Ciphertext: make([]byte, 32), Nonce: make([]byte, 8)}

		_, err := fc.Decrypt(key, box, nil)
		assert.ErrorIs(t, err, cryptoDomain.ErrInvalidData)
		assert.False(t, errors.Is(err, cryptoDomain.ErrDecryptionFailed))

		var lengthErr *cryptoDomain.LengthError
		require.ErrorAs(t, err, &lengthErr)
		assert.Equal(t, "nonce", lengthErr.Field)
		assert.Equal(t, 8, lengthErr.Got)
	})

	t.Run("ciphertext shorter than tag", func(t *testing.T) {
		box := &cryptoDomain.CipherBox{Ciphertext: make([]byte, 5), Nonce: make([]byte, cryptoDomain.NonceSize)}

		_, err := fc.Decrypt(key, box, nil)
		assert.ErrorIs(t, err, cryptoDomain.ErrInvalidData)
	})

	t.Run("nil box", func(t *testing.T) {
		_, err := fc.Decrypt(key, nil, nil)
		assert.ErrorIs(t, err, cryptoDomain.ErrInvalidData)
	})

	t.Run("destroyed key", func(t *testing.T) {
		destroyed := cryptoDomain.GenerateSymmetricKey()
		destroyed.Destroy()

		_, err := fc.Encrypt(destroyed, []byte("x"), nil)
		assert.ErrorIs(t, err, cryptoDomain.ErrInvalidData)
	})
}
