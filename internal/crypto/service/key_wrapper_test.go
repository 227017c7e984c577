package service

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cryptoDomain "github.com/clinicrecords/fieldvault/internal/crypto/domain"
)

func newTestKeyWrapper() *KeyWrapperService {
	return NewKeyWrapper(NewAEADManager(), NewArgon2idKDF(), testKDFParams)
}

func TestKeyWrapperService_RoundTrip(t *testing.T) {
	kw := newTestKeyWrapper()
	key := cryptoDomain.GenerateSymmetricKey()
	defer key.Destroy()

	wrapped, err := kw.Wrap(key, "senha-forte-do-admin")
	require.NoError(t, err)
	assert.Len(t, wrapped.Salt, cryptoDomain.SaltSize)
	assert.Len(t, wrapped.Box.Nonce, cryptoDomain.NonceSize)
	assert.Len(t, wrapped.Box.Ciphertext, cryptoDomain.KeySize+cryptoDomain.TagSize)
	assert.Equal(t, testKDFParams, wrapped.Params)
	assert.False(t, bytes.Contains(wrapped.Box.Ciphertext, key.Bytes()))

	unwrapped, err := kw.Unwrap(wrapped, "senha-forte-do-admin")
	require.NoError(t, err)
	defer unwrapped.Destroy()

	assert.True(t, key.Equal(unwrapped))
}

func TestKeyWrapperService_FreshSaltAndNonce(t *testing.T) {
	kw := newTestKeyWrapper()
	key := cryptoDomain.GenerateSymmetricKey()
	defer key.Destroy()

	w1, err := kw.Wrap(key, "senha")
	require.NoError(t, err)
	w2, err := kw.Wrap(key, "senha")
	require.NoError(t, err)

	assert.NotEqual(t, w1.Salt, w2.Salt)
	assert.NotEqual(t, w1.Box.Nonce, w2.Box.Nonce)
	assert.NotEqual(t, w1.Box.Ciphertext, w2.Box.Ciphertext)
}

func TestKeyWrapperService_WrongPasswordRejected(t *testing.T) {
	kw := newTestKeyWrapper()
	key := cryptoDomain.GenerateSymmetricKey()
	defer key.Destroy()

	wrapped, err := kw.Wrap(key, "senha-forte-do-admin")
	require.NoError(t, err)

	unwrapped, err := kw.Unwrap(wrapped, "senha-errada")
	assert.ErrorIs(t, err, cryptoDomain.ErrDecryptionFailed)
	assert.Nil(t, unwrapped)
}

func TestKeyWrapperService_PersistedParams(t *testing.T) {
	key := cryptoDomain.GenerateSymmetricKey()
	defer key.Destroy()

	wrapped, err := newTestKeyWrapper().Wrap(key, "senha")
	require.NoError(t, err)

	upgraded := testKDFParams
	upgraded.Time = 2
	newer := NewKeyWrapper(NewAEADManager(), NewArgon2idKDF(), upgraded)

	unwrapped, err := newer.Unwrap(wrapped, "senha")
	require.NoError(t, err)
	defer unwrapped.Destroy()
	assert.True(t, key.Equal(unwrapped))
}

func TestKeyWrapperService_Tampering(t *testing.T) {
	kw := newTestKeyWrapper()
	key := cryptoDomain.GenerateSymmetricKey()
	defer key.Destroy()

	wrapped, err := kw.Wrap(key, "senha")
	require.NoError(t, err)

	clone := func() *cryptoDomain.WrappedKey {
		return &cryptoDomain.WrappedKey{
			Box: cryptoDomain.CipherBox{
				Ciphertext: bytes.Clone(wrapped.Box.Ciphertext),
				Nonce:      bytes.Clone(wrapped.Box.Nonce),
			},
			Salt:   bytes.Clone(wrapped.Salt),
			Params: wrapped.Params,
		}
	}

	t.Run("ciphertext", func(t *testing.T) {
		w := clone()
		w.Box.Ciphertext[0] ^= 0x01
		_, err := kw.Unwrap(w, "senha")
		assert.ErrorIs(t, err, cryptoDomain.ErrDecryptionFailed)
	})

	t.Run("tag", func(t *testing.T) {
		w := clone()
		w.Box.Ciphertext[len(w.Box.Ciphertext)-1] ^= 0x80
		_, err := kw.Unwrap(w, "senha")
		assert.ErrorIs(t, err, cryptoDomain.ErrDecryptionFailed)
	})

	t.Run("nonce", func(t *testing.T) {
		w := clone()
		w.Box.Nonce[3] ^= 0x10
		_, err := kw.Unwrap(w, "senha")
		assert.ErrorIs(t, err, cryptoDomain.ErrDecryptionFailed)
	})

	t.Run("salt", func(t *testing.T) {
		w := clone()
		w.Salt[0] ^= 0x01
		_, err := kw.Unwrap(w, "senha")
		assert.ErrorIs(t, err, cryptoDomain.ErrDecryptionFailed)
	})
}

func TestKeyWrapperService_InvalidInput(t *testing.T) {
	kw := newTestKeyWrapper()
	key := cryptoDomain.GenerateSymmetricKey()
	defer key.Destroy()

	wrapped, err := kw.Wrap(key, "senha")
	require.NoError(t, err)

	t.Run("empty password on wrap", func(t *testing.T) {
		_, err := kw.Wrap(key, "")
		assert.ErrorIs(t, err, cryptoDomain.ErrInvalidData)
	})

	t.Run("empty password on unwrap", func(t *testing.T) {
		_, err := kw.Unwrap(wrapped, "")
		assert.ErrorIs(t, err, cryptoDomain.ErrInvalidData)
	})

	t.Run("short salt", func(t *testing.T) {
		w := *wrapped
		w.Salt = w.Salt[:8]
		_, err := kw.Unwrap(&w, "senha")
		assert.ErrorIs(t, err, cryptoDomain.ErrInvalidData)
	})

	t.Run("short nonce", func(t *testing.T) {
		w := *wrapped
		w.Box.Nonce = w.Box.Nonce[:11]
		_, err := kw.Unwrap(&w, "senha")
		assert.ErrorIs(t, err, cryptoDomain.ErrInvalidData)
	})

	t.Run("recovered key with wrong length", func(t *testing.T) {
		wrappingKey, err := NewArgon2idKDF().DeriveKey([]byte("senha"), wrapped.Salt, testKDFParams)
		require.NoError(t, err)
		defer wrappingKey.Destroy()

		aead, err := NewAEADManager().CreateCipher(wrappingKey, cryptoDomain.WrapAlgorithm)
		require.NoError(t, err)
		ciphertext, nonce, err := aead.Encrypt(make([]byte, 16), nil)
		require.NoError(t, err)

		short := &cryptoDomain.WrappedKey{
			Box:    cryptoDomain.CipherBox{Ciphertext: ciphertext, Nonce: nonce},
			Salt:   wrapped.Salt,
			Params: testKDFParams,
		}
		unwrapped, err := kw.Unwrap(short, "senha")
		assert.ErrorIs(t, err, cryptoDomain.ErrInvalidData)
		assert.Nil(t, unwrapped)
	})

	t.Run("invalid persisted params", func(t *testing.T) {
		w := *wrapped
		w.Params = cryptoDomain.KDFParams{Time: 1, MemoryKiB: 8, Threads: 1}
		_, err := kw.Unwrap(&w, "senha")
		assert.ErrorIs(t, err, cryptoDomain.ErrInvalidConfiguration)
	})

	t.Run("destroyed key on wrap", func(t *testing.T) {
		destroyed := cryptoDomain.GenerateSymmetricKey()
		destroyed.Destroy()
		_, err := kw.Wrap(destroyed, "senha")
		assert.ErrorIs(t, err, cryptoDomain.ErrInvalidData)
	})
}
