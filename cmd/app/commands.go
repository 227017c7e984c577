package main

import (
	"context"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/clinicrecords/fieldvault/cmd/app/commands"
	"github.com/clinicrecords/fieldvault/internal/app"
	"github.com/clinicrecords/fieldvault/internal/config"
)

func getCommands(version string) []*cli.Command {
	cmds := []*cli.Command{}
	cmds = append(cmds, getSystemCommands(version)...)
	cmds = append(cmds, getKeyCommands()...)
	cmds = append(cmds, getPatientCommands()...)
	cmds = append(cmds, getAnamnesisCommands()...)
	cmds = append(cmds, getFinanceCommands()...)
	cmds = append(cmds, getReencryptCommand())
	return cmds
}

// formatFlag is shared by every command that prints a result.
func formatFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"f"},
		Value:   "text",
		Usage:   "Output format: 'text' or 'json'",
	}
}

// newContainer loads and validates configuration and builds the container.
func newContainer() (*app.Container, error) {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return app.NewContainer(cfg), nil
}

// promptIO reads from stdin and prompts on stderr so stdout stays machine readable.
func promptIO() commands.IOTuple {
	return commands.Buffered(commands.IOTuple{Reader: os.Stdin, Writer: os.Stderr})
}

// resolveAdminPassword returns the password given on the command line, opened through
// the KMS when one is configured, or the configured ADMIN_PASSWORD otherwise.
func resolveAdminPassword(ctx context.Context, container *app.Container, flagValue string) (string, error) {
	if flagValue != "" {
		return container.OpenPassword(ctx, flagValue)
	}
	passwords, err := container.AdminPasswords(ctx)
	if err != nil {
		return "", err
	}
	if len(passwords) == 0 {
		return "", nil
	}
	return passwords[0], nil
}
