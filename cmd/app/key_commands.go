package main

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/clinicrecords/fieldvault/cmd/app/commands"
)

func getKeyCommands() []*cli.Command {
	return []*cli.Command{
		{
			Name:  "provision-master-key",
			Usage: "Create master key version 1 wrapped under the admin password",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:    "password",
					Aliases: []string{"p"},
					Usage:   "Admin password (defaults to ADMIN_PASSWORD, prompts when unset)",
				},
				formatFlag(),
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				container, err := newContainer()
				if err != nil {
					return err
				}
				defer func() { _ = container.Shutdown(ctx) }()

				password, err := resolveAdminPassword(ctx, container, cmd.String("password"))
				if err != nil {
					return err
				}
				password, err = commands.PromptPassword(promptIO(), "Admin password", password)
				if err != nil {
					return err
				}

				masterKeyUseCase, err := container.MasterKeyUseCase()
				if err != nil {
					return err
				}

				return commands.RunProvisionMasterKey(
					ctx,
					masterKeyUseCase,
					container.Logger(),
					commands.DefaultIO().Writer,
					password,
					cmd.String("format"),
				)
			},
		},
		{
			Name:  "rotate-master-key",
			Usage: "Deactivate the active master key and store a new key version",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:    "current-password",
					Aliases: []string{"c"},
					Usage:   "Password of the active key (defaults to ADMIN_PASSWORD, prompts when unset)",
				},
				&cli.StringFlag{
					Name:    "new-password",
					Aliases: []string{"n"},
					Usage:   "Password for the new key version (defaults to the current password)",
				},
				formatFlag(),
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				container, err := newContainer()
				if err != nil {
					return err
				}
				defer func() { _ = container.Shutdown(ctx) }()

				currentPassword, err := resolveAdminPassword(ctx, container, cmd.String("current-password"))
				if err != nil {
					return err
				}
				currentPassword, err = commands.PromptPassword(promptIO(), "Current admin password", currentPassword)
				if err != nil {
					return err
				}

				newPassword, err := container.OpenPassword(ctx, cmd.String("new-password"))
				if err != nil {
					return err
				}

				masterKeyUseCase, err := container.MasterKeyUseCase()
				if err != nil {
					return err
				}

				return commands.RunRotateMasterKey(
					ctx,
					masterKeyUseCase,
					container.Logger(),
					commands.DefaultIO().Writer,
					currentPassword,
					newPassword,
					cmd.String("format"),
				)
			},
		},
		{
			Name:  "verify-master-key",
			Usage: "Check that a password unlocks the active master key",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:    "password",
					Aliases: []string{"p"},
					Usage:   "Admin password (defaults to ADMIN_PASSWORD, prompts when unset)",
				},
				formatFlag(),
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				container, err := newContainer()
				if err != nil {
					return err
				}
				defer func() { _ = container.Shutdown(ctx) }()

				password, err := resolveAdminPassword(ctx, container, cmd.String("password"))
				if err != nil {
					return err
				}
				password, err = commands.PromptPassword(promptIO(), "Admin password", password)
				if err != nil {
					return err
				}

				masterKeyUseCase, err := container.MasterKeyUseCase()
				if err != nil {
					return err
				}

				return commands.RunVerifyMasterKey(
					ctx,
					masterKeyUseCase,
					container.Logger(),
					commands.DefaultIO().Writer,
					password,
					cmd.String("format"),
				)
			},
		},
		{
			Name:  "seal-password",
			Usage: "Encrypt an admin password with the KMS key for use in ADMIN_PASSWORD",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "kms-key-uri",
					Required: true,
					Usage:    "KMS key URI (e.g., base64key://, gcpkms://projects/.../cryptoKeys/...)",
				},
				&cli.StringFlag{
					Name:    "password",
					Aliases: []string{"p"},
					Usage:   "Plaintext admin password (prompts when unset)",
				},
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				container, err := newContainer()
				if err != nil {
					return err
				}
				defer func() { _ = container.Shutdown(ctx) }()

				password, err := commands.PromptPassword(promptIO(), "Admin password", cmd.String("password"))
				if err != nil {
					return err
				}

				return commands.RunSealPassword(
					ctx,
					container.KMSService(),
					commands.DefaultIO().Writer,
					cmd.String("kms-key-uri"),
					password,
				)
			},
		},
	}
}
