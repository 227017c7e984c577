// Package repository implements persistence for encrypted anamnesis rows.
package repository

import (
	anamnesisDomain "github.com/clinicrecords/fieldvault/internal/anamnesis/domain"
)

const anamnesisColumns = `id, patient_id, created_at, updated_at, data_ciphertext, data_nonce,
	diagnosis_ciphertext, diagnosis_nonce, key_version`

type rowScanner interface {
	Scan(dest ...any) error
}

// scanAnamnesis reads one row. id and patientID receive the driver representation of
// the uuid columns.
func scanAnamnesis(row rowScanner, id, patientID any) (*anamnesisDomain.EncryptedAnamnesis, error) {
	var a anamnesisDomain.EncryptedAnamnesis
	err := row.Scan(
		id,
		patientID,
		&a.CreatedAt,
		&a.UpdatedAt,
		&a.DataCiphertext,
		&a.DataNonce,
		&a.DiagnosisCiphertext,
		&a.DiagnosisNonce,
		&a.KeyVersion,
	)
	if err != nil {
		return nil, err
	}
	return &a, nil
}
