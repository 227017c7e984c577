package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"

	anamnesisDomain "github.com/clinicrecords/fieldvault/internal/anamnesis/domain"
	anamnesisUseCase "github.com/clinicrecords/fieldvault/internal/anamnesis/usecase"
	cryptoDomain "github.com/clinicrecords/fieldvault/internal/crypto/domain"
)

type anamnesisOutput struct {
	ID        string    `json:"id"`
	PatientID string    `json:"patient_id"`
	Data      string    `json:"data"`
	Diagnosis *string   `json:"diagnosis"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func writeAnamnesis(anamnesis *anamnesisDomain.Anamnesis, format string, writer io.Writer) error {
	if format == "json" {
		return outputJSON(anamnesisOutput{
			ID:        anamnesis.ID.String(),
			PatientID: anamnesis.PatientID.String(),
			Data:      anamnesis.Data,
			Diagnosis: anamnesis.Diagnosis,
			CreatedAt: anamnesis.CreatedAt,
			UpdatedAt: anamnesis.UpdatedAt,
		}, writer)
	}

	diagnosis := "-"
	if anamnesis.Diagnosis != nil {
		diagnosis = *anamnesis.Diagnosis
	}
	_, _ = fmt.Fprintf(writer, "ID:        %s\n", anamnesis.ID)
	_, _ = fmt.Fprintf(writer, "Patient:   %s\n", anamnesis.PatientID)
	_, _ = fmt.Fprintf(writer, "Diagnosis: %s\n", diagnosis)
	_, _ = fmt.Fprintf(writer, "Data:\n%s\n", anamnesis.Data)
	return nil
}

// RunCreateAnamnesis encrypts and stores an anamnesis for an existing patient.
func RunCreateAnamnesis(
	ctx context.Context,
	useCase anamnesisUseCase.AnamnesisUseCase,
	keyring *cryptoDomain.Keyring,
	logger *slog.Logger,
	writer io.Writer,
	patientID, data, diagnosis string,
	format string,
) error {
	if err := validateFormat(format); err != nil {
		return err
	}

	parsedPatientID, err := uuid.Parse(patientID)
	if err != nil {
		return fmt.Errorf("invalid patient id: %w", err)
	}

	anamnesis, err := useCase.Create(ctx, keyring, &anamnesisDomain.CreateAnamnesisInput{
		PatientID: parsedPatientID,
		Data:      data,
		Diagnosis: optionalString(diagnosis),
	})
	if err != nil {
		return fmt.Errorf("failed to create anamnesis: %w", err)
	}

	if err := writeAnamnesis(anamnesis, format, writer); err != nil {
		return err
	}

	logger.Info("anamnesis created",
		slog.String("anamnesis_id", anamnesis.ID.String()),
		slog.String("patient_id", anamnesis.PatientID.String()),
	)
	return nil
}

// RunGetAnamnesis loads and decrypts an anamnesis.
func RunGetAnamnesis(
	ctx context.Context,
	useCase anamnesisUseCase.AnamnesisUseCase,
	keyring *cryptoDomain.Keyring,
	writer io.Writer,
	id string,
	format string,
) error {
	if err := validateFormat(format); err != nil {
		return err
	}

	anamnesisID, err := uuid.Parse(id)
	if err != nil {
		return fmt.Errorf("invalid anamnesis id: %w", err)
	}

	anamnesis, err := useCase.Get(ctx, keyring, anamnesisID)
	if err != nil {
		return fmt.Errorf("failed to get anamnesis: %w", err)
	}

	return writeAnamnesis(anamnesis, format, writer)
}
