package domain

import (
	"github.com/clinicrecords/fieldvault/internal/errors"
)

// Finance-specific error definitions.
var (
	// ErrEntryNotFound indicates no ledger entry exists with the requested id.
	ErrEntryNotFound = errors.Wrap(errors.ErrNotFound, "finance entry not found")
)
