package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cryptoDomain "github.com/clinicrecords/fieldvault/internal/crypto/domain"
)

func TestNewAEADManager(t *testing.T) {
	manager := NewAEADManager()
	assert.NotNil(t, manager)
}

func TestAEADManagerService_CreateCipher(t *testing.T) {
	manager := NewAEADManager()
	key := cryptoDomain.GenerateSymmetricKey()
	defer key.Destroy()

	t.Run("create AES-GCM cipher", func(t *testing.T) {
		cipher, err := manager.CreateCipher(key, cryptoDomain.AESGCM)
		require.NoError(t, err)

		_, ok := cipher.(*AESGCMCipher)
		assert.True(t, ok, "cipher should be of type *AESGCMCipher")
	})

	t.Run("create ChaCha20-Poly1305 cipher", func(t *testing.T) {
		cipher, err := manager.CreateCipher(key, cryptoDomain.ChaCha20)
		require.NoError(t, err)

		_, ok := cipher.(*ChaCha20Poly1305Cipher)
		assert.True(t, ok, "cipher should be of type *ChaCha20Poly1305Cipher")
	})

	t.Run("unsupported algorithm", func(t *testing.T) {
		_, err := manager.CreateCipher(key, cryptoDomain.Algorithm("unsupported"))
		assert.ErrorIs(t, err, cryptoDomain.ErrInvalidConfiguration)
	})

	t.Run("algorithm names are case-sensitive", func(t *testing.T) {
		_, err := manager.CreateCipher(key, cryptoDomain.Algorithm("AES-GCM"))
		assert.ErrorIs(t, err, cryptoDomain.ErrInvalidConfiguration)
	})

	t.Run("nil key", func(t *testing.T) {
		_, err := manager.CreateCipher(nil, cryptoDomain.AESGCM)
		assert.ErrorIs(t, err, cryptoDomain.ErrInvalidData)
	})

	t.Run("destroyed key", func(t *testing.T) {
		destroyed := cryptoDomain.GenerateSymmetricKey()
		destroyed.Destroy()

		_, err := manager.CreateCipher(destroyed, cryptoDomain.AESGCM)
		assert.ErrorIs(t, err, cryptoDomain.ErrInvalidData)
	})
}

func TestAEADManagerService_CreateCipher_Independent(t *testing.T) {
	manager := NewAEADManager()
	key := cryptoDomain.GenerateSymmetricKey()
	defer key.Destroy()

	aesCipher, err := manager.CreateCipher(key, cryptoDomain.AESGCM)
	require.NoError(t, err)
	chachaCipher, err := manager.CreateCipher(key, cryptoDomain.ChaCha20)
	require.NoError(t, err)

	plaintext := []byte("same key, different algorithms")
	ciphertext, nonce, err := aesCipher.Encrypt(plaintext, nil)
	require.NoError(t, err)

	_, err = chachaCipher.Decrypt(ciphertext, nonce, nil)
	assert.Error(t, err)

	decrypted, err := aesCipher.Decrypt(ciphertext, nonce, nil)
	require.NoError(t, err)
	assert.Equal(t, plaintext, decrypted)
}
