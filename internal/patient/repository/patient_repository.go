// Package repository implements persistence for encrypted patient rows.
package repository

import (
	patientDomain "github.com/clinicrecords/fieldvault/internal/patient/domain"
)

const patientColumns = `id, created_at, updated_at, name_ciphertext, name_nonce, phone_ciphertext, phone_nonce,
	email_ciphertext, email_nonce, key_version`

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// scanPatient reads one row. id receives the driver representation of the primary key
// (uuid.UUID for PostgreSQL, a 16 byte slice for MySQL).
func scanPatient(row rowScanner, id any) (*patientDomain.EncryptedPatient, error) {
	var p patientDomain.EncryptedPatient
	err := row.Scan(
		id,
		&p.CreatedAt,
		&p.UpdatedAt,
		&p.NameCiphertext,
		&p.NameNonce,
		&p.PhoneCiphertext,
		&p.PhoneNonce,
		&p.EmailCiphertext,
		&p.EmailNonce,
		&p.KeyVersion,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}
