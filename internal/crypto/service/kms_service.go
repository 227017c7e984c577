package service

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"

	"gocloud.dev/secrets"

	cryptoDomain "github.com/clinicrecords/fieldvault/internal/crypto/domain"

	// Register all KMS provider drivers
	_ "gocloud.dev/secrets/awskms"
	_ "gocloud.dev/secrets/azurekeyvault"
	_ "gocloud.dev/secrets/gcpkms"
	_ "gocloud.dev/secrets/hashivault"
	_ "gocloud.dev/secrets/localsecrets"
)

// KMSService opens administrator passwords that were sealed by an external KMS, so
// plaintext passwords never need to sit in the environment.
type KMSService interface {
	// OpenKeeper opens a secrets.Keeper for the configured KMS provider.
	// Returns an error if the KMS provider URI is invalid or connection fails.
	OpenKeeper(ctx context.Context, keyURI string) (KMSKeeper, error)

	// OpenPasswords decodes each base64 value and decrypts it with keeper.
	OpenPasswords(ctx context.Context, keeper KMSKeeper, sealed []string) ([]string, error)
}

// kmsService implements KMSService using gocloud.dev/secrets.
type kmsService struct{}

// NewKMSService creates a new KMS service instance.
func NewKMSService() KMSService {
	return &kmsService{}
}

// OpenKeeper opens a secrets.Keeper for the configured KMS provider using the keyURI.
// Supports: gcpkms://, awskms://, azurekeyvault://, hashivault://, base64key://
func (k *kmsService) OpenKeeper(ctx context.Context, keyURI string) (KMSKeeper, error) {
	keeper, err := secrets.OpenKeeper(ctx, keyURI)
	if err != nil {
		return nil, fmt.Errorf("failed to open KMS keeper: %w", err)
	}
	return keeper, nil
}

// OpenPasswords returns the plaintext passwords in the same order as sealed. Any malformed
// or undecryptable entry fails the whole call with ErrInvalidConfiguration.
func (k *kmsService) OpenPasswords(ctx context.Context, keeper KMSKeeper, sealed []string) ([]string, error) {
	passwords := make([]string, 0, len(sealed))
	for i, value := range sealed {
		ciphertext, err := base64.StdEncoding.DecodeString(strings.TrimSpace(value))
		if err != nil {
			return nil, fmt.Errorf("%w: password %d is not valid base64", cryptoDomain.ErrInvalidConfiguration, i)
		}

		plaintext, err := keeper.Decrypt(ctx, ciphertext)
		if err != nil {
			return nil, fmt.Errorf("%w: failed to decrypt password %d: %v", cryptoDomain.ErrInvalidConfiguration, i, err)
		}
		passwords = append(passwords, string(plaintext))
		cryptoDomain.Zero(plaintext)
	}
	return passwords, nil
}
