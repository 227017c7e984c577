package repository

import (
	"bytes"
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clinicrecords/fieldvault/internal/database"
	patientDomain "github.com/clinicrecords/fieldvault/internal/patient/domain"
)

var patientColumnNames = []string{
	"id", "created_at", "updated_at", "name_ciphertext", "name_nonce", "phone_ciphertext", "phone_nonce",
	"email_ciphertext", "email_nonce", "key_version",
}

func newTestPatient(version uint) *patientDomain.EncryptedPatient {
	now := time.Date(2026, 3, 4, 5, 6, 7, 0, time.UTC)
	return &patientDomain.EncryptedPatient{
		ID:              uuid.Must(uuid.NewV7()),
		CreatedAt:       now,
		UpdatedAt:       now,
		NameCiphertext:  bytes.Repeat([]byte{1}, 30),
		NameNonce:       bytes.Repeat([]byte{2}, 12),
		EmailCiphertext: bytes.Repeat([]byte{3}, 32),
		EmailNonce:      bytes.Repeat([]byte{4}, 12),
		KeyVersion:      version,
	}
}

func addPatientRow(rows *sqlmock.Rows, id any, p *patientDomain.EncryptedPatient) *sqlmock.Rows {
	return rows.AddRow(
		id,
		p.CreatedAt,
		p.UpdatedAt,
		p.NameCiphertext,
		p.NameNonce,
		nil,
		nil,
		p.EmailCiphertext,
		p.EmailNonce,
		int64(p.KeyVersion),
	)
}

func newMock(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = db.Close()
	})
	return db, mock
}

func TestNewPostgreSQLPatientRepository(t *testing.T) {
	db, _ := newMock(t)

	repo := NewPostgreSQLPatientRepository(db)
	assert.NotNil(t, repo)
	assert.IsType(t, &PostgreSQLPatientRepository{}, repo)
}

func TestPostgreSQLPatientRepository_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		db, mock := newMock(t)
		repo := NewPostgreSQLPatientRepository(db)
		patient := newTestPatient(1)

		mock.ExpectExec("INSERT INTO patients").
			WithArgs(
				patient.ID.String(),
				patient.CreatedAt,
				patient.UpdatedAt,
				patient.NameCiphertext,
				patient.NameNonce,
				[]byte(nil),
				[]byte(nil),
				patient.EmailCiphertext,
				patient.EmailNonce,
				int64(1),
			).
			WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, repo.Create(ctx, patient))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Success_UsesTransactionFromContext", func(t *testing.T) {
		db, mock := newMock(t)
		repo := NewPostgreSQLPatientRepository(db)
		txManager := database.NewTxManager(db)

		mock.ExpectBegin()
		mock.ExpectExec("INSERT INTO patients").WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		err := txManager.WithTx(ctx, func(ctx context.Context) error {
			return repo.Create(ctx, newTestPatient(1))
		})
		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Error_Exec", func(t *testing.T) {
		db, mock := newMock(t)
		repo := NewPostgreSQLPatientRepository(db)

		mock.ExpectExec("INSERT INTO patients").WillReturnError(errors.New("connection reset"))

		err := repo.Create(ctx, newTestPatient(1))
		assert.ErrorContains(t, err, "failed to create patient")
	})
}

func TestPostgreSQLPatientRepository_Get(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		db, mock := newMock(t)
		repo := NewPostgreSQLPatientRepository(db)
		patient := newTestPatient(2)

		mock.ExpectQuery("SELECT (.+) FROM patients WHERE id = \\$1").
			WithArgs(patient.ID.String()).
			WillReturnRows(addPatientRow(sqlmock.NewRows(patientColumnNames), patient.ID.String(), patient))

		got, err := repo.Get(ctx, patient.ID)
		require.NoError(t, err)
		assert.Equal(t, patient.ID, got.ID)
		assert.Equal(t, patient.NameCiphertext, got.NameCiphertext)
		assert.Nil(t, got.PhoneCiphertext)
		assert.Nil(t, got.PhoneNonce)
		assert.Equal(t, patient.EmailNonce, got.EmailNonce)
		assert.Equal(t, uint(2), got.KeyVersion)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Error_NotFound", func(t *testing.T) {
		db, mock := newMock(t)
		repo := NewPostgreSQLPatientRepository(db)

		mock.ExpectQuery("SELECT (.+) FROM patients").WillReturnError(sql.ErrNoRows)

		_, err := repo.Get(ctx, uuid.Must(uuid.NewV7()))
		assert.ErrorIs(t, err, patientDomain.ErrPatientNotFound)
	})

	t.Run("Error_Query", func(t *testing.T) {
		db, mock := newMock(t)
		repo := NewPostgreSQLPatientRepository(db)

		mock.ExpectQuery("SELECT (.+) FROM patients").WillReturnError(errors.New("timeout"))

		_, err := repo.Get(ctx, uuid.Must(uuid.NewV7()))
		assert.ErrorContains(t, err, "failed to get patient")
		assert.NotErrorIs(t, err, patientDomain.ErrPatientNotFound)
	})
}

func TestPostgreSQLPatientRepository_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		db, mock := newMock(t)
		repo := NewPostgreSQLPatientRepository(db)
		patient := newTestPatient(3)

		mock.ExpectExec("UPDATE patients SET").
			WithArgs(
				patient.UpdatedAt,
				patient.NameCiphertext,
				patient.NameNonce,
				[]byte(nil),
				[]byte(nil),
				patient.EmailCiphertext,
				patient.EmailNonce,
				int64(3),
				patient.ID.String(),
			).
			WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, repo.Update(ctx, patient))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Error_NotFound", func(t *testing.T) {
		db, mock := newMock(t)
		repo := NewPostgreSQLPatientRepository(db)

		mock.ExpectExec("UPDATE patients SET").WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.Update(ctx, newTestPatient(1))
		assert.ErrorIs(t, err, patientDomain.ErrPatientNotFound)
	})
}

func TestPostgreSQLPatientRepository_ListByKeyVersionNot(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		db, mock := newMock(t)
		repo := NewPostgreSQLPatientRepository(db)
		first, second := newTestPatient(1), newTestPatient(2)

		rows := sqlmock.NewRows(patientColumnNames)
		addPatientRow(rows, first.ID.String(), first)
		addPatientRow(rows, second.ID.String(), second)

		mock.ExpectQuery("WHERE key_version <> \\$1 ORDER BY id LIMIT \\$2 FOR UPDATE SKIP LOCKED").
			WithArgs(int64(3), int64(50)).
			WillReturnRows(rows)

		patients, err := repo.ListByKeyVersionNot(ctx, 3, 50)
		require.NoError(t, err)
		require.Len(t, patients, 2)
		assert.Equal(t, first.ID, patients[0].ID)
		assert.Equal(t, uint(2), patients[1].KeyVersion)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Success_Empty", func(t *testing.T) {
		db, mock := newMock(t)
		repo := NewPostgreSQLPatientRepository(db)

		mock.ExpectQuery("SELECT (.+) FROM patients").WillReturnRows(sqlmock.NewRows(patientColumnNames))

		patients, err := repo.ListByKeyVersionNot(ctx, 1, 10)
		require.NoError(t, err)
		assert.Empty(t, patients)
	})

	t.Run("Error_RowError", func(t *testing.T) {
		db, mock := newMock(t)
		repo := NewPostgreSQLPatientRepository(db)
		patient := newTestPatient(1)

		rows := addPatientRow(sqlmock.NewRows(patientColumnNames), patient.ID.String(), patient).
			RowError(0, errors.New("broken row"))
		mock.ExpectQuery("SELECT (.+) FROM patients").WillReturnRows(rows)

		_, err := repo.ListByKeyVersionNot(ctx, 2, 10)
		assert.ErrorContains(t, err, "failed to list patients by key version")
	})
}
