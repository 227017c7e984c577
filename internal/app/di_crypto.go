package app

import (
	"context"
	"fmt"

	cryptoDomain "github.com/clinicrecords/fieldvault/internal/crypto/domain"
	cryptoRepository "github.com/clinicrecords/fieldvault/internal/crypto/repository"
	cryptoService "github.com/clinicrecords/fieldvault/internal/crypto/service"
	cryptoUseCase "github.com/clinicrecords/fieldvault/internal/crypto/usecase"
	"github.com/clinicrecords/fieldvault/internal/database"
	"github.com/clinicrecords/fieldvault/internal/metrics"
)

// AEADManager returns the AEAD manager service.
func (c *Container) AEADManager() cryptoService.AEADManager {
	c.aeadManagerInit.Do(func() {
		c.aeadManager = cryptoService.NewAEADManager()
	})
	return c.aeadManager
}

// FieldCipher returns the AES-256-GCM field cipher.
func (c *Container) FieldCipher() cryptoService.FieldCipher {
	c.fieldCipherInit.Do(func() {
		c.fieldCipher = cryptoService.NewFieldCipher(c.AEADManager())
	})
	return c.fieldCipher
}

// KeyDeriver returns the Argon2id key deriver.
func (c *Container) KeyDeriver() cryptoService.KeyDeriver {
	c.keyDeriverInit.Do(func() {
		c.keyDeriver = cryptoService.NewArgon2idKDF()
	})
	return c.keyDeriver
}

// KeyWrapper returns the key wrapper configured with the KDF cost parameters used for
// new master key records.
func (c *Container) KeyWrapper() cryptoService.KeyWrapper {
	c.keyWrapperInit.Do(func() {
		c.keyWrapper = cryptoService.NewKeyWrapper(c.AEADManager(), c.KeyDeriver(), c.config.KDFParams())
	})
	return c.keyWrapper
}

// KMSService returns the KMS service.
func (c *Container) KMSService() cryptoService.KMSService {
	c.kmsServiceInit.Do(func() {
		c.kmsService = cryptoService.NewKMSService()
	})
	return c.kmsService
}

// MasterKeyRepository returns the master key repository based on database driver.
func (c *Container) MasterKeyRepository() (cryptoUseCase.MasterKeyRepository, error) {
	var err error
	c.masterKeyRepoInit.Do(func() {
		c.masterKeyRepo, err = c.initMasterKeyRepository()
		if err != nil {
			c.initErrors["masterKeyRepo"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["masterKeyRepo"]; exists {
		return nil, storedErr
	}
	return c.masterKeyRepo, nil
}

// MasterKeyUseCase returns the master key use case.
func (c *Container) MasterKeyUseCase() (cryptoUseCase.MasterKeyUseCase, error) {
	var err error
	c.masterKeyUseCaseInit.Do(func() {
		c.masterKeyUseCase, err = c.initMasterKeyUseCase()
		if err != nil {
			c.initErrors["masterKeyUseCase"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["masterKeyUseCase"]; exists {
		return nil, storedErr
	}
	return c.masterKeyUseCase, nil
}

// FieldUseCase returns the field encryption use case.
func (c *Container) FieldUseCase() (cryptoUseCase.FieldUseCase, error) {
	var err error
	c.fieldUseCaseInit.Do(func() {
		c.fieldUseCase, err = c.initFieldUseCase()
		if err != nil {
			c.initErrors["fieldUseCase"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["fieldUseCase"]; exists {
		return nil, storedErr
	}
	return c.fieldUseCase, nil
}

// Keyring returns the keyring unlocked with the configured administrator passwords.
// The container owns the keyring and destroys it on Shutdown.
func (c *Container) Keyring(ctx context.Context) (*cryptoDomain.Keyring, error) {
	var err error
	c.keyringInit.Do(func() {
		c.keyring, err = c.initKeyring(ctx)
		if err != nil {
			c.initErrors["keyring"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["keyring"]; exists {
		return nil, storedErr
	}
	return c.keyring, nil
}

// AdminPasswords returns the configured passwords, current first. When a KMS key URI is
// configured the values are treated as sealed ciphertexts and opened through the KMS.
func (c *Container) AdminPasswords(ctx context.Context) ([]string, error) {
	return c.openPasswords(ctx, c.config.Passwords())
}

// OpenPassword resolves a single password supplied outside the configuration, such as a
// rotation target given on the command line, the same way AdminPasswords does.
func (c *Container) OpenPassword(ctx context.Context, password string) (string, error) {
	if password == "" {
		return "", nil
	}
	passwords, err := c.openPasswords(ctx, []string{password})
	if err != nil {
		return "", err
	}
	return passwords[0], nil
}

func (c *Container) openPasswords(ctx context.Context, passwords []string) ([]string, error) {
	if c.config.KMSKeyURI == "" || len(passwords) == 0 {
		return passwords, nil
	}

	kmsService := c.KMSService()
	keeper, err := kmsService.OpenKeeper(ctx, c.config.KMSKeyURI)
	if err != nil {
		return nil, err
	}
	defer func() {
		if closeErr := keeper.Close(); closeErr != nil {
			c.Logger().Error("failed to close KMS keeper", "error", closeErr)
		}
	}()

	return kmsService.OpenPasswords(ctx, keeper, passwords)
}

// initMasterKeyRepository creates the master key repository based on the database driver.
func (c *Container) initMasterKeyRepository() (cryptoUseCase.MasterKeyRepository, error) {
	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for master key repository: %w", err)
	}

	switch c.config.DBDriver {
	case database.DriverPostgres:
		return cryptoRepository.NewPostgreSQLMasterKeyRepository(db), nil
	case database.DriverMySQL:
		return cryptoRepository.NewMySQLMasterKeyRepository(db), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
	}
}

// initMasterKeyUseCase creates the master key use case with all its dependencies.
func (c *Container) initMasterKeyUseCase() (cryptoUseCase.MasterKeyUseCase, error) {
	txManager, err := c.TxManager()
	if err != nil {
		return nil, fmt.Errorf("failed to get tx manager for master key use case: %w", err)
	}

	masterKeyRepo, err := c.MasterKeyRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get master key repository for master key use case: %w", err)
	}

	baseUseCase := cryptoUseCase.NewMasterKeyUseCase(
		txManager,
		masterKeyRepo,
		c.KeyWrapper(),
		c.config.UnwrapConcurrency,
	)

	// Wrap with metrics if enabled
	if c.config.MetricsEnabled {
		businessMetrics, err := c.BusinessMetrics()
		if err != nil {
			return nil, fmt.Errorf("failed to get business metrics for master key use case: %w", err)
		}
		return cryptoUseCase.NewMasterKeyUseCaseWithMetrics(baseUseCase, businessMetrics), nil
	}

	return baseUseCase, nil
}

// initFieldUseCase creates the field use case.
func (c *Container) initFieldUseCase() (cryptoUseCase.FieldUseCase, error) {
	baseUseCase := cryptoUseCase.NewFieldUseCase(c.FieldCipher())

	// Wrap with metrics if enabled
	if c.config.MetricsEnabled {
		businessMetrics, err := c.BusinessMetrics()
		if err != nil {
			return nil, fmt.Errorf("failed to get business metrics for field use case: %w", err)
		}
		return cryptoUseCase.NewFieldUseCaseWithMetrics(baseUseCase, businessMetrics), nil
	}

	return baseUseCase, nil
}

// initKeyring unlocks every master key record and registers the keyring gauges.
func (c *Container) initKeyring(ctx context.Context) (*cryptoDomain.Keyring, error) {
	masterKeyUseCase, err := c.MasterKeyUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get master key use case for keyring: %w", err)
	}

	passwords, err := c.AdminPasswords(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve admin passwords: %w", err)
	}

	keyring, err := masterKeyUseCase.Unlock(ctx, passwords...)
	if err != nil {
		return nil, fmt.Errorf("failed to unlock keyring: %w", err)
	}

	provider, err := c.MetricsProvider()
	if err != nil {
		keyring.Close()
		return nil, fmt.Errorf("failed to get metrics provider for keyring: %w", err)
	}
	if provider != nil {
		registration, err := metrics.RegisterKeyringMetrics(
			provider.MeterProvider(),
			c.config.MetricsNamespace,
			keyring,
		)
		if err != nil {
			keyring.Close()
			return nil, fmt.Errorf("failed to register keyring metrics: %w", err)
		}
		c.keyringRegistration = registration
	}

	c.Logger().Info("keyring unlocked",
		"active_version", keyring.ActiveVersion(),
		"versions", keyring.Versions(),
	)

	return keyring, nil
}
