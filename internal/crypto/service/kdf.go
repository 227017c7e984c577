package service

import (
	"fmt"

	"golang.org/x/crypto/argon2"

	cryptoDomain "github.com/clinicrecords/fieldvault/internal/crypto/domain"
)

// Argon2idKDF derives 256-bit wrapping keys with Argon2id.
type Argon2idKDF struct{}

// NewArgon2idKDF creates an Argon2idKDF.
func NewArgon2idKDF() *Argon2idKDF {
	return &Argon2idKDF{}
}

// DeriveKey stretches password with salt. The intermediate output buffer is zeroed after
// it is copied into the returned key.
func (a *Argon2idKDF) DeriveKey(
	password, salt []byte,
	params cryptoDomain.KDFParams,
) (*cryptoDomain.SymmetricKey, error) {
	if len(password) == 0 {
		return nil, fmt.Errorf("%w: password must not be empty", cryptoDomain.ErrInvalidData)
	}
	if err := cryptoDomain.CheckLength("salt", salt, cryptoDomain.SaltSize); err != nil {
		return nil, err
	}
	if err := params.Validate(); err != nil {
		return nil, err
	}

	derived := argon2.IDKey(password, salt, params.Time, params.MemoryKiB, params.Threads, cryptoDomain.KeySize)
	defer cryptoDomain.Zero(derived)

	return cryptoDomain.NewSymmetricKey(derived)
}
