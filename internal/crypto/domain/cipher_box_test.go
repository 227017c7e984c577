package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCipherBox_Validate(t *testing.T) {
	tests := []struct {
		name    string
		box     CipherBox
		wantErr bool
		field   string
	}{
		{
			name: "valid",
			box:  CipherBox{Ciphertext: make([]byte, TagSize+4), Nonce: make([]byte, NonceSize)},
		},
		{
			name: "tag only",
			box:  CipherBox{Ciphertext: make([]byte, TagSize), Nonce: make([]byte, NonceSize)},
		},
		{
			name:    "short nonce",
			box:     CipherBox{Ciphertext: make([]byte, TagSize), Nonce: make([]byte, 8)},
			wantErr: true,
			field:   "nonce",
		},
		{
			name:    "long nonce",
			box:     CipherBox{Ciphertext: make([]byte, TagSize), Nonce: make([]byte, 24)},
			wantErr: true,
			field:   "nonce",
		},
		{
			name:    "ciphertext shorter than tag",
			box:     CipherBox{Ciphertext: make([]byte, TagSize-1), Nonce: make([]byte, NonceSize)},
			wantErr: true,
			field:   "ciphertext",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.box.Validate()
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, ErrInvalidData)
			var lengthErr *LengthError
			require.ErrorAs(t, err, &lengthErr)
			assert.Equal(t, tt.field, lengthErr.Field)
		})
	}
}

func TestCipherBox_SplitJoinTag(t *testing.T) {
	sealed := []byte("0123456789abcdefTTTTTTTTTTTTTTTT")
	box := CipherBox{Ciphertext: sealed, Nonce: make([]byte, NonceSize)}

	body, tag, err := box.SplitTag()
	require.NoError(t, err)
	assert.Equal(t, []byte("0123456789abcdef"), body)
	assert.Equal(t, []byte("TTTTTTTTTTTTTTTT"), tag)

	joined, err := JoinTag(body, tag)
	require.NoError(t, err)
	assert.Equal(t, sealed, joined)

	t.Run("split rejects short ciphertext", func(t *testing.T) {
		short := CipherBox{Ciphertext: []byte("short")}
		_, _, err := short.SplitTag()
		assert.ErrorIs(t, err, ErrInvalidData)
	})

	t.Run("join rejects bad tag", func(t *testing.T) {
		_, err := JoinTag(body, []byte("tiny"))
		assert.ErrorIs(t, err, ErrInvalidData)
	})
}
