package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"

	cryptoDomain "github.com/clinicrecords/fieldvault/internal/crypto/domain"
	financeDomain "github.com/clinicrecords/fieldvault/internal/finance/domain"
	financeUseCase "github.com/clinicrecords/fieldvault/internal/finance/usecase"
)

const entryDateLayout = time.DateOnly

type entryOutput struct {
	ID          string    `json:"id"`
	Type        string    `json:"type"`
	Category    string    `json:"category"`
	AmountCents int64     `json:"amount_cents"`
	Date        string    `json:"date"`
	Description *string   `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func writeEntry(entry *financeDomain.Entry, format string, writer io.Writer) error {
	if format == "json" {
		return outputJSON(entryOutput{
			ID:          entry.ID.String(),
			Type:        entry.Type,
			Category:    entry.Category,
			AmountCents: entry.AmountCents,
			Date:        entry.Date.Format(entryDateLayout),
			Description: entry.Description,
			CreatedAt:   entry.CreatedAt,
			UpdatedAt:   entry.UpdatedAt,
		}, writer)
	}

	description := "-"
	if entry.Description != nil {
		description = *entry.Description
	}
	_, _ = fmt.Fprintf(writer, "ID:          %s\n", entry.ID)
	_, _ = fmt.Fprintf(writer, "Type:        %s\n", entry.Type)
	_, _ = fmt.Fprintf(writer, "Category:    %s\n", entry.Category)
	_, _ = fmt.Fprintf(writer, "Amount:      %d.%02d\n", entry.AmountCents/100, entry.AmountCents%100)
	_, _ = fmt.Fprintf(writer, "Date:        %s\n", entry.Date.Format(entryDateLayout))
	_, _ = fmt.Fprintf(writer, "Description: %s\n", description)
	return nil
}

// RunCreateFinanceEntry encrypts the description of a ledger entry and stores it.
// date uses the YYYY-MM-DD layout.
func RunCreateFinanceEntry(
	ctx context.Context,
	useCase financeUseCase.EntryUseCase,
	keyring *cryptoDomain.Keyring,
	logger *slog.Logger,
	writer io.Writer,
	entryType, category string,
	amountCents int64,
	date, description string,
	format string,
) error {
	if err := validateFormat(format); err != nil {
		return err
	}

	entryDate, err := time.Parse(entryDateLayout, date)
	if err != nil {
		return fmt.Errorf("invalid date %q, expected YYYY-MM-DD: %w", date, err)
	}

	entry, err := useCase.Create(ctx, keyring, &financeDomain.CreateEntryInput{
		Type:        entryType,
		Category:    category,
		AmountCents: amountCents,
		Date:        entryDate,
		Description: optionalString(description),
	})
	if err != nil {
		return fmt.Errorf("failed to create finance entry: %w", err)
	}

	if err := writeEntry(entry, format, writer); err != nil {
		return err
	}

	logger.Info("finance entry created", slog.String("entry_id", entry.ID.String()))
	return nil
}

// RunGetFinanceEntry loads and decrypts a ledger entry.
func RunGetFinanceEntry(
	ctx context.Context,
	useCase financeUseCase.EntryUseCase,
	keyring *cryptoDomain.Keyring,
	writer io.Writer,
	id string,
	format string,
) error {
	if err := validateFormat(format); err != nil {
		return err
	}

	entryID, err := uuid.Parse(id)
	if err != nil {
		return fmt.Errorf("invalid finance entry id: %w", err)
	}

	entry, err := useCase.Get(ctx, keyring, entryID)
	if err != nil {
		return fmt.Errorf("failed to get finance entry: %w", err)
	}

	return writeEntry(entry, format, writer)
}
