// Package commands contains CLI command implementations for the application.
package commands

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	"golang.org/x/term"

	"github.com/clinicrecords/fieldvault/internal/app"
)

// IOTuple holds reader and writer for commands, allowing for testing.
type IOTuple struct {
	Reader io.Reader
	Writer io.Writer
}

// DefaultIO returns an IOTuple with os.Stdin and os.Stdout.
func DefaultIO() IOTuple {
	return IOTuple{
		Reader: os.Stdin,
		Writer: os.Stdout,
	}
}

// closeContainer closes all resources in the container and logs any errors.
func closeContainer(container *app.Container, logger *slog.Logger) {
	if err := container.Shutdown(context.Background()); err != nil {
		logger.Error("failed to shutdown container", slog.Any("error", err))
	}
}

// closeMigrate closes the migration instance and logs any errors.
func closeMigrate(migrate *migrate.Migrate, logger *slog.Logger) {
	sourceError, databaseError := migrate.Close()
	if sourceError != nil || databaseError != nil {
		logger.Error(
			"failed to close the migrate",
			slog.Any("source_error", sourceError),
			slog.Any("database_error", databaseError),
		)
	}
}

// PromptLine writes prompt and reads a single trimmed line from streams.Reader. A value
// passed on the command line is returned unchanged without prompting.
func PromptLine(streams IOTuple, prompt, value string) (string, error) {
	if value != "" {
		return value, nil
	}
	if streams.Reader == nil {
		return "", fmt.Errorf("%s: no input available", strings.ToLower(prompt))
	}

	_, _ = fmt.Fprintf(streams.Writer, "%s: ", prompt)
	reader, ok := streams.Reader.(*bufio.Reader)
	if !ok {
		reader = bufio.NewReader(streams.Reader)
	}
	line, err := reader.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("failed to read %s: %w", strings.ToLower(prompt), err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// Terminal hooks, replaced in tests.
var (
	isTerminal   = term.IsTerminal
	readPassword = term.ReadPassword
)

// terminalFd returns the descriptor of reader when it is an interactive terminal.
func terminalFd(reader io.Reader) (int, bool) {
	file, ok := reader.(interface{ Fd() uintptr })
	if !ok {
		return 0, false
	}
	fd := int(file.Fd())
	return fd, isTerminal(fd)
}

// PromptPassword is PromptLine for secrets. On a terminal the input is read with echo
// disabled; other readers fall back to PromptLine.
func PromptPassword(streams IOTuple, prompt, value string) (string, error) {
	if value != "" {
		return value, nil
	}
	fd, ok := terminalFd(streams.Reader)
	if !ok {
		return PromptLine(streams, prompt, value)
	}

	_, _ = fmt.Fprintf(streams.Writer, "%s: ", prompt)
	password, err := readPassword(fd)
	_, _ = fmt.Fprintln(streams.Writer)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", strings.ToLower(prompt), err)
	}
	return string(password), nil
}

// Buffered returns streams with a buffered reader so consecutive prompts share one buffer.
// Terminals are left unbuffered so PromptPassword can switch off echo.
func Buffered(streams IOTuple) IOTuple {
	if streams.Reader == nil {
		return streams
	}
	if _, ok := terminalFd(streams.Reader); ok {
		return streams
	}
	if _, ok := streams.Reader.(*bufio.Reader); ok {
		return streams
	}
	return IOTuple{Reader: bufio.NewReader(streams.Reader), Writer: streams.Writer}
}

// outputJSON writes v as indented JSON.
func outputJSON(v any, writer io.Writer) error {
	encoder := json.NewEncoder(writer)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(v); err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}
	return nil
}

// validateFormat rejects output formats other than text and json.
func validateFormat(format string) error {
	switch format {
	case "text", "json":
		return nil
	default:
		return fmt.Errorf("invalid format: %s (valid options: text, json)", format)
	}
}
