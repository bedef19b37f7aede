package main

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/allisson/resourceapi/cmd/app/commands"
	"github.com/allisson/resourceapi/internal/app"
)

func getAuthCommands() []*cli.Command {
	return []*cli.Command{
		{
			Name:  "create-role",
			Usage: "Create a role granting a set of actions",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "name",
					Aliases:  []string{"n"},
					Required: true,
					Usage:    "Role name",
				},
				&cli.StringSliceFlag{
					Name:    "capabilities",
					Aliases: []string{"c"},
					Usage:   "Actions granted by the role (create, read, update, delete)",
				},
				&cli.StringFlag{
					Name:    "format",
					Aliases: []string{"f"},
					Value:   "text",
					Usage:   "Output format: 'text' or 'json'",
				},
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				return withContainer(ctx, func(container *app.Container) error {
					roleUseCase, err := container.RoleUseCase()
					if err != nil {
						return err
					}

					return commands.WithEvents(ctx, container, func(ctx context.Context) error {
						return commands.RunCreateRole(
							ctx,
							roleUseCase,
							container.Logger(),
							cmd.String("name"),
							cmd.StringSlice("capabilities"),
							cmd.String("format"),
							commands.DefaultIO(),
						)
					})
				})
			},
		},
		{
			Name:  "create-user",
			Usage: "Create a user with any existing role",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "username",
					Aliases:  []string{"u"},
					Required: true,
					Usage:    "Username",
				},
				&cli.StringFlag{
					Name:    "password",
					Aliases: []string{"p"},
					Usage:   "Password (omit to read it from stdin)",
				},
				&cli.StringFlag{
					Name:    "role",
					Aliases: []string{"r"},
					Usage:   "Role name (defaults to AUTH_DEFAULT_ROLE)",
				},
				&cli.StringFlag{
					Name:    "format",
					Aliases: []string{"f"},
					Value:   "text",
					Usage:   "Output format: 'text' or 'json'",
				},
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				return withContainer(ctx, func(container *app.Container) error {
					userUseCase, err := container.UserUseCase()
					if err != nil {
						return err
					}

					return commands.WithEvents(ctx, container, func(ctx context.Context) error {
						return commands.RunCreateUser(
							ctx,
							userUseCase,
							container.Logger(),
							cmd.String("username"),
							cmd.String("password"),
							cmd.String("role"),
							cmd.String("format"),
							commands.DefaultIO(),
						)
					})
				})
			},
		},
	}
}
