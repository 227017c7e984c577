package domain

// CipherBox is the output of an AEAD seal: the ciphertext with its 16-byte authentication
// tag appended, and the 12-byte nonce it was sealed with.
//
// Field columns store Ciphertext as is (<field>_ciphertext) next to Nonce
// (<field>_nonce). The master_keys table stores the tag in its own column; see SplitTag.
type CipherBox struct {
	Ciphertext []byte
	Nonce      []byte
}

// Validate checks the structural invariants before any cipher runs.
func (b *CipherBox) Validate() error {
	if err := CheckLength("nonce", b.Nonce, NonceSize); err != nil {
		return err
	}
	if len(b.Ciphertext) < TagSize {
		return &LengthError{Field: "ciphertext", Expected: TagSize, Got: len(b.Ciphertext)}
	}
	return nil
}

// SplitTag returns the ciphertext body and the trailing authentication tag. Both are
// sub-slices of Ciphertext.
func (b *CipherBox) SplitTag() (body, tag []byte, err error) {
	if len(b.Ciphertext) < TagSize {
		return nil, nil, &LengthError{Field: "ciphertext", Expected: TagSize, Got: len(b.Ciphertext)}
	}
	cut := len(b.Ciphertext) - TagSize
	return b.Ciphertext[:cut], b.Ciphertext[cut:], nil
}

// JoinTag rebuilds the sealed form body||tag into a newly allocated slice.
func JoinTag(body, tag []byte) ([]byte, error) {
	if err := CheckLength("tag", tag, TagSize); err != nil {
		return nil, err
	}
	out := make([]byte, 0, len(body)+len(tag))
	out = append(out, body...)
	return append(out, tag...), nil
}
