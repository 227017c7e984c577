package main

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/clinicrecords/fieldvault/cmd/app/commands"
	"github.com/clinicrecords/fieldvault/internal/app"
)

// reencryptTargets lists every table holding sealed fields, in dependency order.
func reencryptTargets(container *app.Container) ([]commands.ReencryptTarget, error) {
	patientUseCase, err := container.PatientUseCase()
	if err != nil {
		return nil, err
	}
	anamnesisUseCase, err := container.AnamnesisUseCase()
	if err != nil {
		return nil, err
	}
	entryUseCase, err := container.FinanceEntryUseCase()
	if err != nil {
		return nil, err
	}

	return []commands.ReencryptTarget{
		{Table: "patients", UseCase: patientUseCase},
		{Table: "anamneses", UseCase: anamnesisUseCase},
		{Table: "finances", UseCase: entryUseCase},
	}, nil
}

func getReencryptCommand() *cli.Command {
	return &cli.Command{
		Name:  "reencrypt",
		Usage: "Re-encrypt rows sealed under older key versions with the active key",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "batch-size",
				Aliases: []string{"b"},
				Usage:   "Rows per transaction (defaults to REENCRYPT_BATCH_SIZE)",
			},
			&cli.StringFlag{
				Name:    "table",
				Aliases: []string{"t"},
				Usage:   "Only re-encrypt one table: patients, anamneses or finances",
			},
			formatFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			container, err := newContainer()
			if err != nil {
				return err
			}
			defer func() { _ = container.Shutdown(ctx) }()

			targets, err := reencryptTargets(container)
			if err != nil {
				return err
			}
			targets, err = commands.SelectReencryptTargets(targets, cmd.String("table"))
			if err != nil {
				return err
			}

			keyring, err := container.Keyring(ctx)
			if err != nil {
				return err
			}

			batchSize := int(cmd.Int("batch-size"))
			if batchSize == 0 {
				batchSize = container.Config().ReencryptBatchSize
			}

			return commands.RunReencrypt(
				ctx,
				targets,
				keyring,
				container.Logger(),
				commands.DefaultIO().Writer,
				batchSize,
				cmd.String("format"),
			)
		},
	}
}
