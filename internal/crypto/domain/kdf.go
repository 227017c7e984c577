package domain

import (
	"fmt"

	validation "github.com/jellydator/validation"
)

// Argon2id bounds accepted for wrapping keys.
const (
	DefaultKDFTime      uint32 = 3
	DefaultKDFMemoryKiB uint32 = 64 * 1024
	DefaultKDFThreads   uint8  = 4

	MinKDFMemoryKiB uint32 = 1024
	MaxKDFMemoryKiB uint32 = 4 * 1024 * 1024
	MaxKDFTime      uint32 = 64
)

// KDFParams are the Argon2id cost parameters used to derive a wrapping key from a
// password. They are persisted with every master key record so raising the defaults
// later does not strand records wrapped under older parameters.
type KDFParams struct {
	Time      uint32
	MemoryKiB uint32
	Threads   uint8
}

// DefaultKDFParams returns 3 passes over 64 MiB with 4 lanes.
func DefaultKDFParams() KDFParams {
	return KDFParams{
		Time:      DefaultKDFTime,
		MemoryKiB: DefaultKDFMemoryKiB,
		Threads:   DefaultKDFThreads,
	}
}

// Validate returns an error wrapping ErrInvalidConfiguration if any parameter is out of
// range.
func (p KDFParams) Validate() error {
	err := validation.ValidateStruct(&p,
		validation.Field(&p.Time,
			validation.Required.Error("kdf time is required"),
			validation.Max(MaxKDFTime).Error(fmt.Sprintf("kdf time must be at most %d", MaxKDFTime)),
		),
		validation.Field(&p.MemoryKiB,
			validation.Required.Error("kdf memory is required"),
			validation.Min(MinKDFMemoryKiB).Error(fmt.Sprintf("kdf memory must be at least %d KiB", MinKDFMemoryKiB)),
			validation.Max(MaxKDFMemoryKiB).Error(fmt.Sprintf("kdf memory must be at most %d KiB", MaxKDFMemoryKiB)),
		),
		validation.Field(&p.Threads,
			validation.Required.Error("kdf threads is required"),
		),
	)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfiguration, err)
	}
	return nil
}

// WrappedKey is a data key sealed under a password-derived key, together with everything
// needed to re-derive that key except the password itself.
type WrappedKey struct {
	Box    CipherBox
	Salt   []byte
	Params KDFParams
}
