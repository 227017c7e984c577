package domain

import "time"

// MasterKeyRecord is the persisted form of a wrapped data key.
//
// Records are created on provisioning and on every rotation and are never deleted: data
// written under an old key version stays decryptable by unwrapping the matching record.
// Everything except Active is immutable once written. At most one record is active and
// KeyVersion values strictly increase.
//
// The AEAD tag is kept in WrappedKeyTag, separate from WrappedKeyCiphertext, matching the
// wrapped_key_tag column. NewMasterKeyRecord splits it off and WrappedKey joins it back.
type MasterKeyRecord struct {
	ID                   int64
	CreatedAt            time.Time
	Active               bool
	WrappedKeyCiphertext []byte
	WrappedKeyNonce      []byte
	WrappedKeyTag        []byte
	KDFSalt              []byte
	KDFParams            KDFParams
	KeyVersion           uint
}

// NewMasterKeyRecord builds an active record for version from a freshly wrapped key.
// ID is assigned by the repository on insert.
func NewMasterKeyRecord(wrapped *WrappedKey, version uint, createdAt time.Time) (*MasterKeyRecord, error) {
	body, tag, err := wrapped.Box.SplitTag()
	if err != nil {
		return nil, err
	}
	return &MasterKeyRecord{
		CreatedAt:            createdAt,
		Active:               true,
		WrappedKeyCiphertext: append([]byte(nil), body...),
		WrappedKeyNonce:      append([]byte(nil), wrapped.Box.Nonce...),
		WrappedKeyTag:        append([]byte(nil), tag...),
		KDFSalt:              append([]byte(nil), wrapped.Salt...),
		KDFParams:            wrapped.Params,
		KeyVersion:           version,
	}, nil
}

// WrappedKey reassembles the sealed key for unwrapping.
func (r *MasterKeyRecord) WrappedKey() (*WrappedKey, error) {
	sealed, err := JoinTag(r.WrappedKeyCiphertext, r.WrappedKeyTag)
	if err != nil {
		return nil, err
	}
	return &WrappedKey{
		Box:    CipherBox{Ciphertext: sealed, Nonce: r.WrappedKeyNonce},
		Salt:   r.KDFSalt,
		Params: r.KDFParams,
	}, nil
}
