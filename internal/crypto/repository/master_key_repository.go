// Package repository implements persistence for master key records.
//
// Each record stores one data key version wrapped under a password-derived key, in the
// master_keys table of either PostgreSQL or MySQL. Repositories read the transaction
// from the context via database.GetTx, so provisioning and rotation can run their
// reads and writes atomically inside database.TxManager.WithTx.
package repository

import (
	cryptoDomain "github.com/clinicrecords/fieldvault/internal/crypto/domain"
)

const masterKeyColumns = `id, created_at, active, wrapped_key_ciphertext, wrapped_key_nonce, wrapped_key_tag,
	kdf_salt, kdf_time, kdf_memory_kib, kdf_threads, key_version`

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanMasterKey(row rowScanner) (*cryptoDomain.MasterKeyRecord, error) {
	var record cryptoDomain.MasterKeyRecord
	err := row.Scan(
		&record.ID,
		&record.CreatedAt,
		&record.Active,
		&record.WrappedKeyCiphertext,
		&record.WrappedKeyNonce,
		&record.WrappedKeyTag,
		&record.KDFSalt,
		&record.KDFParams.Time,
		&record.KDFParams.MemoryKiB,
		&record.KDFParams.Threads,
		&record.KeyVersion,
	)
	if err != nil {
		return nil, err
	}
	return &record, nil
}
