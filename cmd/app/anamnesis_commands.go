package main

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/clinicrecords/fieldvault/cmd/app/commands"
)

func getAnamnesisCommands() []*cli.Command {
	return []*cli.Command{
		{
			Name:  "create-anamnesis",
			Usage: "Encrypt and store an anamnesis for a patient",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "patient-id",
					Aliases:  []string{"p"},
					Required: true,
					Usage:    "Patient ID (UUID)",
				},
				&cli.StringFlag{
					Name:     "data",
					Aliases:  []string{"d"},
					Required: true,
					Usage:    "Clinical history text",
				},
				&cli.StringFlag{
					Name:  "diagnosis",
					Usage: "Diagnosis (optional)",
				},
				formatFlag(),
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				container, err := newContainer()
				if err != nil {
					return err
				}
				defer func() { _ = container.Shutdown(ctx) }()

				anamnesisUseCase, err := container.AnamnesisUseCase()
				if err != nil {
					return err
				}

				keyring, err := container.Keyring(ctx)
				if err != nil {
					return err
				}

				return commands.RunCreateAnamnesis(
					ctx,
					anamnesisUseCase,
					keyring,
					container.Logger(),
					commands.DefaultIO().Writer,
					cmd.String("patient-id"),
					cmd.String("data"),
					cmd.String("diagnosis"),
					cmd.String("format"),
				)
			},
		},
		{
			Name:  "get-anamnesis",
			Usage: "Load and decrypt an anamnesis",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "id",
					Aliases:  []string{"i"},
					Required: true,
					Usage:    "Anamnesis ID (UUID)",
				},
				formatFlag(),
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				container, err := newContainer()
				if err != nil {
					return err
				}
				defer func() { _ = container.Shutdown(ctx) }()

				anamnesisUseCase, err := container.AnamnesisUseCase()
				if err != nil {
					return err
				}

				keyring, err := container.Keyring(ctx)
				if err != nil {
					return err
				}

				return commands.RunGetAnamnesis(
					ctx,
					anamnesisUseCase,
					keyring,
					commands.DefaultIO().Writer,
					cmd.String("id"),
					cmd.String("format"),
				)
			},
		},
	}
}
