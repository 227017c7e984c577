package app

import (
	"fmt"

	"github.com/clinicrecords/fieldvault/internal/database"
	financeRepository "github.com/clinicrecords/fieldvault/internal/finance/repository"
	financeUseCase "github.com/clinicrecords/fieldvault/internal/finance/usecase"
)

// FinanceEntryRepository returns the finance entry repository based on database driver.
func (c *Container) FinanceEntryRepository() (financeUseCase.EntryRepository, error) {
	var err error
	c.financeRepoInit.Do(func() {
		c.financeRepo, err = c.initFinanceEntryRepository()
		if err != nil {
			c.initErrors["financeRepo"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["financeRepo"]; exists {
		return nil, storedErr
	}
	return c.financeRepo, nil
}

// FinanceEntryUseCase returns the finance entry use case.
func (c *Container) FinanceEntryUseCase() (financeUseCase.EntryUseCase, error) {
	var err error
	c.financeUseCaseInit.Do(func() {
		c.financeUseCase, err = c.initFinanceEntryUseCase()
		if err != nil {
			c.initErrors["financeUseCase"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["financeUseCase"]; exists {
		return nil, storedErr
	}
	return c.financeUseCase, nil
}

// initFinanceEntryRepository creates the finance entry repository based on the database driver.
func (c *Container) initFinanceEntryRepository() (financeUseCase.EntryRepository, error) {
	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for finance entry repository: %w", err)
	}

	switch c.config.DBDriver {
	case database.DriverPostgres:
		return financeRepository.NewPostgreSQLEntryRepository(db), nil
	case database.DriverMySQL:
		return financeRepository.NewMySQLEntryRepository(db), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
	}
}

// initFinanceEntryUseCase creates the finance entry use case with all its dependencies.
func (c *Container) initFinanceEntryUseCase() (financeUseCase.EntryUseCase, error) {
	txManager, err := c.TxManager()
	if err != nil {
		return nil, fmt.Errorf("failed to get tx manager for finance entry use case: %w", err)
	}

	entryRepo, err := c.FinanceEntryRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get finance entry repository for finance entry use case: %w", err)
	}

	fieldUseCase, err := c.FieldUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get field use case for finance entry use case: %w", err)
	}

	baseUseCase := financeUseCase.NewEntryUseCase(txManager, entryRepo, fieldUseCase)

	// Wrap with metrics if enabled
	if c.config.MetricsEnabled {
		businessMetrics, err := c.BusinessMetrics()
		if err != nil {
			return nil, fmt.Errorf("failed to get business metrics for finance entry use case: %w", err)
		}
		return financeUseCase.NewEntryUseCaseWithMetrics(baseUseCase, businessMetrics), nil
	}

	return baseUseCase, nil
}
