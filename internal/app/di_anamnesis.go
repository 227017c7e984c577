package app

import (
	"fmt"

	anamnesisRepository "github.com/clinicrecords/fieldvault/internal/anamnesis/repository"
	anamnesisUseCase "github.com/clinicrecords/fieldvault/internal/anamnesis/usecase"
	"github.com/clinicrecords/fieldvault/internal/database"
)

// AnamnesisRepository returns the anamnesis repository based on database driver.
func (c *Container) AnamnesisRepository() (anamnesisUseCase.AnamnesisRepository, error) {
	var err error
	c.anamnesisRepoInit.Do(func() {
		c.anamnesisRepo, err = c.initAnamnesisRepository()
		if err != nil {
			c.initErrors["anamnesisRepo"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["anamnesisRepo"]; exists {
		return nil, storedErr
	}
	return c.anamnesisRepo, nil
}

// AnamnesisUseCase returns the anamnesis use case.
func (c *Container) AnamnesisUseCase() (anamnesisUseCase.AnamnesisUseCase, error) {
	var err error
	c.anamnesisUseCaseInit.Do(func() {
		c.anamnesisUseCase, err = c.initAnamnesisUseCase()
		if err != nil {
			c.initErrors["anamnesisUseCase"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["anamnesisUseCase"]; exists {
		return nil, storedErr
	}
	return c.anamnesisUseCase, nil
}

// initAnamnesisRepository creates the anamnesis repository based on the database driver.
func (c *Container) initAnamnesisRepository() (anamnesisUseCase.AnamnesisRepository, error) {
	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for anamnesis repository: %w", err)
	}

	switch c.config.DBDriver {
	case database.DriverPostgres:
		return anamnesisRepository.NewPostgreSQLAnamnesisRepository(db), nil
	case database.DriverMySQL:
		return anamnesisRepository.NewMySQLAnamnesisRepository(db), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
	}
}

// initAnamnesisUseCase creates the anamnesis use case with all its dependencies.
func (c *Container) initAnamnesisUseCase() (anamnesisUseCase.AnamnesisUseCase, error) {
	txManager, err := c.TxManager()
	if err != nil {
		return nil, fmt.Errorf("failed to get tx manager for anamnesis use case: %w", err)
	}

	anamnesisRepo, err := c.AnamnesisRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get anamnesis repository for anamnesis use case: %w", err)
	}

	fieldUseCase, err := c.FieldUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get field use case for anamnesis use case: %w", err)
	}

	baseUseCase := anamnesisUseCase.NewAnamnesisUseCase(txManager, anamnesisRepo, fieldUseCase)

	// Wrap with metrics if enabled
	if c.config.MetricsEnabled {
		businessMetrics, err := c.BusinessMetrics()
		if err != nil {
			return nil, fmt.Errorf("failed to get business metrics for anamnesis use case: %w", err)
		}
		return anamnesisUseCase.NewAnamnesisUseCaseWithMetrics(baseUseCase, businessMetrics), nil
	}

	return baseUseCase, nil
}
