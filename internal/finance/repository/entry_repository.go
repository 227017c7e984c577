// Package repository implements persistence for encrypted ledger entries.
package repository

import (
	financeDomain "github.com/clinicrecords/fieldvault/internal/finance/domain"
)

const entryColumns = `id, type, category, amount_cents, entry_date, created_at, updated_at,
	description_ciphertext, description_nonce, key_version`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEntry(row rowScanner, id any) (*financeDomain.EncryptedEntry, error) {
	var e financeDomain.EncryptedEntry
	err := row.Scan(
		id,
		&e.Type,
		&e.Category,
		&e.AmountCents,
		&e.Date,
		&e.CreatedAt,
		&e.UpdatedAt,
		&e.DescriptionCiphertext,
		&e.DescriptionNonce,
		&e.KeyVersion,
	)
	if err != nil {
		return nil, err
	}
	return &e, nil
}
