package domain

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateSymmetricKey(t *testing.T) {
	t.Run("returns 32 random bytes", func(t *testing.T) {
		key := GenerateSymmetricKey()
		defer key.Destroy()

		assert.Len(t, key.Bytes(), KeySize)
		assert.False(t, key.IsZero())
	})

	t.Run("keys are distinct", func(t *testing.T) {
		key1 := GenerateSymmetricKey()
		defer key1.Destroy()
		key2 := GenerateSymmetricKey()
		defer key2.Destroy()

		assert.False(t, key1.Equal(key2))
	})
}

func TestNewSymmetricKey(t *testing.T) {
	t.Run("copies exact 32 bytes", func(t *testing.T) {
		raw := bytes.Repeat([]byte{0xAB}, KeySize)

		key, err := NewSymmetricKey(raw)
		require.NoError(t, err)
		defer key.Destroy()

		assert.Equal(t, raw, key.Bytes())

		// Mutating the source buffer must not affect the key.
		Zero(raw)
		assert.Equal(t, bytes.Repeat([]byte{0xAB}, KeySize), key.Bytes())
	})

	tests := []struct {
		name string
		size int
	}{
		{name: "empty", size: 0},
		{name: "too short", size: 31},
		{name: "too long", size: 33},
		{name: "aes-128 size", size: 16},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key, err := NewSymmetricKey(make([]byte, tt.size))
			assert.Nil(t, key)
			assert.ErrorIs(t, err, ErrInvalidData)

			var lengthErr *LengthError
			require.True(t, errors.As(err, &lengthErr))
			assert.Equal(t, "key", lengthErr.Field)
			assert.Equal(t, KeySize, lengthErr.Expected)
			assert.Equal(t, tt.size, lengthErr.Got)
		})
	}

	t.Run("nil buffer", func(t *testing.T) {
		_, err := NewSymmetricKey(nil)
		assert.ErrorIs(t, err, ErrInvalidData)
	})
}

func TestSymmetricKey_Destroy(t *testing.T) {
	t.Run("zeroes every byte", func(t *testing.T) {
		key := GenerateSymmetricKey()
		view := key.Bytes()

		key.Destroy()

		assert.True(t, key.IsZero())
		assert.Equal(t, make([]byte, KeySize), view)
	})

	t.Run("idempotent", func(t *testing.T) {
		key := GenerateSymmetricKey()
		key.Destroy()
		assert.NotPanics(t, key.Destroy)
	})

	t.Run("nil key", func(t *testing.T) {
		var key *SymmetricKey
		assert.NotPanics(t, key.Destroy)
	})

	t.Run("deferred destroy runs on error path", func(t *testing.T) {
		var leaked *SymmetricKey
		fail := func() error {
			key := GenerateSymmetricKey()
			defer key.Destroy()
			leaked = key
			return errors.New("boom")
		}

		require.Error(t, fail())
		assert.True(t, leaked.IsZero())
	})
}

func TestSymmetricKey_Equal(t *testing.T) {
	raw := bytes.Repeat([]byte{7}, KeySize)
	key1, err := NewSymmetricKey(raw)
	require.NoError(t, err)
	key2, err := NewSymmetricKey(raw)
	require.NoError(t, err)

	assert.True(t, key1.Equal(key2))
	assert.False(t, key1.Equal(nil))

	var nilKey *SymmetricKey
	assert.True(t, nilKey.Equal(nil))
}
