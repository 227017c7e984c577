package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"

	cryptoDomain "github.com/clinicrecords/fieldvault/internal/crypto/domain"
	patientDomain "github.com/clinicrecords/fieldvault/internal/patient/domain"
	patientUseCase "github.com/clinicrecords/fieldvault/internal/patient/usecase"
)

// patientOutput is the JSON shape printed by the patient commands.
type patientOutput struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Phone     *string   `json:"phone"`
	Email     *string   `json:"email"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func newPatientOutput(patient *patientDomain.Patient) patientOutput {
	return patientOutput{
		ID:        patient.ID.String(),
		Name:      patient.Name,
		Phone:     patient.Phone,
		Email:     patient.Email,
		CreatedAt: patient.CreatedAt,
		UpdatedAt: patient.UpdatedAt,
	}
}

func writePatient(patient *patientDomain.Patient, format string, writer io.Writer) error {
	if format == "json" {
		return outputJSON(newPatientOutput(patient), writer)
	}

	optional := func(v *string) string {
		if v == nil {
			return "-"
		}
		return *v
	}
	_, _ = fmt.Fprintf(writer, "ID:    %s\n", patient.ID)
	_, _ = fmt.Fprintf(writer, "Name:  %s\n", patient.Name)
	_, _ = fmt.Fprintf(writer, "Phone: %s\n", optional(patient.Phone))
	_, _ = fmt.Fprintf(writer, "Email: %s\n", optional(patient.Email))
	return nil
}

// optionalString maps an empty flag value to an absent attribute.
func optionalString(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}

// RunCreatePatient encrypts and stores a patient under the active key version.
//
// Requirements: Database must be migrated and the keyring unlocked.
func RunCreatePatient(
	ctx context.Context,
	useCase patientUseCase.PatientUseCase,
	keyring *cryptoDomain.Keyring,
	logger *slog.Logger,
	writer io.Writer,
	name, phone, email string,
	format string,
) error {
	if err := validateFormat(format); err != nil {
		return err
	}

	input := &patientDomain.CreatePatientInput{
		Name:  name,
		Phone: optionalString(phone),
		Email: optionalString(email),
	}

	patient, err := useCase.Create(ctx, keyring, input)
	if err != nil {
		return fmt.Errorf("failed to create patient: %w", err)
	}

	if err := writePatient(patient, format, writer); err != nil {
		return err
	}

	logger.Info("patient created", slog.String("patient_id", patient.ID.String()))
	return nil
}

// RunGetPatient loads and decrypts a patient.
func RunGetPatient(
	ctx context.Context,
	useCase patientUseCase.PatientUseCase,
	keyring *cryptoDomain.Keyring,
	writer io.Writer,
	id string,
	format string,
) error {
	if err := validateFormat(format); err != nil {
		return err
	}

	patientID, err := uuid.Parse(id)
	if err != nil {
		return fmt.Errorf("invalid patient id: %w", err)
	}

	patient, err := useCase.Get(ctx, keyring, patientID)
	if err != nil {
		return fmt.Errorf("failed to get patient: %w", err)
	}

	return writePatient(patient, format, writer)
}
