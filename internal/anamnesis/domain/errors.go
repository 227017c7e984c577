package domain

import (
	"github.com/clinicrecords/fieldvault/internal/errors"
)

// Anamnesis-specific error definitions.
var (
	// ErrAnamnesisNotFound indicates no anamnesis exists with the requested id.
	ErrAnamnesisNotFound = errors.Wrap(errors.ErrNotFound, "anamnesis not found")

	// ErrPatientReferenceInvalid indicates the referenced patient does not exist.
	ErrPatientReferenceInvalid = errors.Wrap(errors.ErrInvalidInput, "patient does not exist")
)
