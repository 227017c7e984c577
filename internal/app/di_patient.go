package app

import (
	"fmt"

	"github.com/clinicrecords/fieldvault/internal/database"
	patientRepository "github.com/clinicrecords/fieldvault/internal/patient/repository"
	patientUseCase "github.com/clinicrecords/fieldvault/internal/patient/usecase"
)

// PatientRepository returns the patient repository based on database driver.
func (c *Container) PatientRepository() (patientUseCase.PatientRepository, error) {
	var err error
	c.patientRepoInit.Do(func() {
		c.patientRepo, err = c.initPatientRepository()
		if err != nil {
			c.initErrors["patientRepo"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["patientRepo"]; exists {
		return nil, storedErr
	}
	return c.patientRepo, nil
}

// PatientUseCase returns the patient use case.
func (c *Container) PatientUseCase() (patientUseCase.PatientUseCase, error) {
	var err error
	c.patientUseCaseInit.Do(func() {
		c.patientUseCase, err = c.initPatientUseCase()
		if err != nil {
			c.initErrors["patientUseCase"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["patientUseCase"]; exists {
		return nil, storedErr
	}
	return c.patientUseCase, nil
}

// initPatientRepository creates the patient repository based on the database driver.
func (c *Container) initPatientRepository() (patientUseCase.PatientRepository, error) {
	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for patient repository: %w", err)
	}

	switch c.config.DBDriver {
	case database.DriverPostgres:
		return patientRepository.NewPostgreSQLPatientRepository(db), nil
	case database.DriverMySQL:
		return patientRepository.NewMySQLPatientRepository(db), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
	}
}

// initPatientUseCase creates the patient use case with all its dependencies.
func (c *Container) initPatientUseCase() (patientUseCase.PatientUseCase, error) {
	txManager, err := c.TxManager()
	if err != nil {
		return nil, fmt.Errorf("failed to get tx manager for patient use case: %w", err)
	}

	patientRepo, err := c.PatientRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get patient repository for patient use case: %w", err)
	}

	fieldUseCase, err := c.FieldUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get field use case for patient use case: %w", err)
	}

	baseUseCase := patientUseCase.NewPatientUseCase(txManager, patientRepo, fieldUseCase)

	// Wrap with metrics if enabled
	if c.config.MetricsEnabled {
		businessMetrics, err := c.BusinessMetrics()
		if err != nil {
			return nil, fmt.Errorf("failed to get business metrics for patient use case: %w", err)
		}
		return patientUseCase.NewPatientUseCaseWithMetrics(baseUseCase, businessMetrics), nil
	}

	return baseUseCase, nil
}
