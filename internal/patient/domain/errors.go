package domain

import (
	"github.com/clinicrecords/fieldvault/internal/errors"
)

// Patient-specific error definitions.
var (
	// ErrPatientNotFound indicates no patient exists with the requested id.
	ErrPatientNotFound = errors.Wrap(errors.ErrNotFound, "patient not found")
)
