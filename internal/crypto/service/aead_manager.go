package service

import (
	"fmt"

	cryptoDomain "github.com/clinicrecords/fieldvault/internal/crypto/domain"
)

// AEADManagerService implements the AEADManager interface for creating AEAD cipher instances.
type AEADManagerService struct{}

// NewAEADManager creates a new AEADManagerService.
func NewAEADManager() *AEADManagerService {
	return &AEADManagerService{}
}

// CreateCipher creates an AEAD cipher instance for the specified algorithm. A fresh
// instance is built on every call so no cipher state is shared between operations.
// Returns ErrInvalidData for a nil or destroyed key and ErrInvalidConfiguration if the
// algorithm is unknown.
func (am *AEADManagerService) CreateCipher(key *cryptoDomain.SymmetricKey, alg cryptoDomain.Algorithm) (AEAD, error) {
	if key == nil || key.IsZero() {
		return nil, fmt.Errorf("%w: key is missing or destroyed", cryptoDomain.ErrInvalidData)
	}

	switch alg {
	case cryptoDomain.AESGCM:
		return NewAESGCM(key.Bytes())
	case cryptoDomain.ChaCha20:
		return NewChaCha20Poly1305(key.Bytes())
	default:
		return nil, fmt.Errorf("%w: unsupported algorithm %q", cryptoDomain.ErrInvalidConfiguration, alg)
	}
}
