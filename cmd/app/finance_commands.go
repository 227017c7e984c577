package main

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/clinicrecords/fieldvault/cmd/app/commands"
)

func getFinanceCommands() []*cli.Command {
	return []*cli.Command{
		{
			Name:  "create-finance-entry",
			Usage: "Store a ledger entry with an encrypted description",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "type",
					Aliases:  []string{"t"},
					Required: true,
					Usage:    "Entry type: 'income' or 'expense'",
				},
				&cli.StringFlag{
					Name:     "category",
					Aliases:  []string{"c"},
					Required: true,
					Usage:    "Category",
				},
				&cli.Int64Flag{
					Name:     "amount-cents",
					Aliases:  []string{"a"},
					Required: true,
					Usage:    "Amount in cents",
				},
				&cli.StringFlag{
					Name:     "date",
					Required: true,
					Usage:    "Entry date (YYYY-MM-DD)",
				},
				&cli.StringFlag{
					Name:  "description",
					Usage: "Description (optional, encrypted)",
				},
				formatFlag(),
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				container, err := newContainer()
				if err != nil {
					return err
				}
				defer func() { _ = container.Shutdown(ctx) }()

				entryUseCase, err := container.FinanceEntryUseCase()
				if err != nil {
					return err
				}

				keyring, err := container.Keyring(ctx)
				if err != nil {
					return err
				}

				return commands.RunCreateFinanceEntry(
					ctx,
					entryUseCase,
					keyring,
					container.Logger(),
					commands.DefaultIO().Writer,
					cmd.String("type"),
					cmd.String("category"),
					cmd.Int64("amount-cents"),
					cmd.String("date"),
					cmd.String("description"),
					cmd.String("format"),
				)
			},
		},
		{
			Name:  "get-finance-entry",
			Usage: "Load and decrypt a ledger entry",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "id",
					Aliases:  []string{"i"},
					Required: true,
					Usage:    "Entry ID (UUID)",
				},
				formatFlag(),
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				container, err := newContainer()
				if err != nil {
					return err
				}
				defer func() { _ = container.Shutdown(ctx) }()

				entryUseCase, err := container.FinanceEntryUseCase()
				if err != nil {
					return err
				}

				keyring, err := container.Keyring(ctx)
				if err != nil {
					return err
				}

				return commands.RunGetFinanceEntry(
					ctx,
					entryUseCase,
					keyring,
					commands.DefaultIO().Writer,
					cmd.String("id"),
					cmd.String("format"),
				)
			},
		},
	}
}
