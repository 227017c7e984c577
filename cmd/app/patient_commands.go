package main

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/clinicrecords/fieldvault/cmd/app/commands"
)

func getPatientCommands() []*cli.Command {
	return []*cli.Command{
		{
			Name:  "create-patient",
			Usage: "Encrypt and store a patient record",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "name",
					Aliases:  []string{"n"},
					Required: true,
					Usage:    "Patient name",
				},
				&cli.StringFlag{
					Name:  "phone",
					Usage: "Phone number (optional)",
				},
				&cli.StringFlag{
					Name:  "email",
					Usage: "Email address (optional)",
				},
				formatFlag(),
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				container, err := newContainer()
				if err != nil {
					return err
				}
				defer func() { _ = container.Shutdown(ctx) }()

				patientUseCase, err := container.PatientUseCase()
				if err != nil {
					return err
				}

				keyring, err := container.Keyring(ctx)
				if err != nil {
					return err
				}

				return commands.RunCreatePatient(
					ctx,
					patientUseCase,
					keyring,
					container.Logger(),
					commands.DefaultIO().Writer,
					cmd.String("name"),
					cmd.String("phone"),
					cmd.String("email"),
					cmd.String("format"),
				)
			},
		},
		{
			Name:  "get-patient",
			Usage: "Load and decrypt a patient record",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "id",
					Aliases:  []string{"i"},
					Required: true,
					Usage:    "Patient ID (UUID)",
				},
				formatFlag(),
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				container, err := newContainer()
				if err != nil {
					return err
				}
				defer func() { _ = container.Shutdown(ctx) }()

				patientUseCase, err := container.PatientUseCase()
				if err != nil {
					return err
				}

				keyring, err := container.Keyring(ctx)
				if err != nil {
					return err
				}

				return commands.RunGetPatient(
					ctx,
					patientUseCase,
					keyring,
					commands.DefaultIO().Writer,
					cmd.String("id"),
					cmd.String("format"),
				)
			},
		},
	}
}
