package domain

// EncryptedField is a protected attribute as persisted: the sealed bytes, the nonce, and
// the master key version that produced them. The version lets data written before a
// rotation be decrypted with the retained historical key.
type EncryptedField struct {
	Ciphertext []byte
	Nonce      []byte
	KeyVersion uint
}

// Box returns the cipher box view of the field.
func (f *EncryptedField) Box() *CipherBox {
	return &CipherBox{Ciphertext: f.Ciphertext, Nonce: f.Nonce}
}

// OptionalField returns the field stored in a nullable ciphertext/nonce column pair, or
// nil when both columns are NULL.
func OptionalField(ciphertext, nonce []byte, version uint) *EncryptedField {
	if ciphertext == nil && nonce == nil {
		return nil
	}
	return &EncryptedField{Ciphertext: ciphertext, Nonce: nonce, KeyVersion: version}
}
