// Command scoreboardctl administers the scoreboard store: schema, house
// seeding and admin accounts.
package main

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"

	"scoreboard/internal/config"
	"scoreboard/internal/logger"
	"scoreboard/internal/models"
	"scoreboard/internal/repository"
	"scoreboard/internal/repository/db"
	"scoreboard/internal/service"
	"scoreboard/internal/session"

	"github.com/urfave/cli/v2"
)

// operator is the actor recorded for changes made from the command line.
var operator = &models.Session{Username: "scoreboardctl", Role: models.RoleAdmin}

func main() {
	if err := newApp(os.Stdout).Run(os.Args); err != nil {
		logger.Get(logger.InfoLevel, logger.ConsoleFormat).Fatalw("scoreboardctl failed", "err", err)
	}
}

func newApp(out io.Writer) *cli.App {
	return &cli.App{
		Name:  "scoreboardctl",
		Usage: "administer the house scoreboard store",
		Flags: []cli.Flag{
			&cli.StringSliceFlag{
				Name:  "config",
				Usage: "directory holding config.yml (repeatable)",
				Value: cli.NewStringSlice("configs", "."),
			},
		},
		Writer: out,
		Commands: []*cli.Command{
			{
				Name:  "migrate",
				Usage: "create missing tables",
				Action: func(c *cli.Context) error {
					return withStore(c, false, func(ctx context.Context, cfg *config.Config, conn *sql.DB) error {
						if err := db.EnsureSchema(ctx, conn, cfg.DB.Driver); err != nil {
							return err
						}
						fmt.Fprintf(out, "schema ready (%s)\n", cfg.DB.Driver)
						return nil
					})
				},
			},
			{
				Name:  "seed",
				Usage: "insert a zero score for every configured house that is missing",
				Action: func(c *cli.Context) error {
					return withStore(c, true, func(ctx context.Context, cfg *config.Config, conn *sql.DB) error {
						if err := db.SeedHouses(ctx, conn, cfg.DB.Driver, cfg.Houses); err != nil {
							return err
						}
						fmt.Fprintf(out, "seeded houses: %v\n", cfg.Houses)
						return nil
					})
				},
			},
			{
				Name:  "create-admin",
				Usage: "create a user holding the admin role",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "username", Required: true},
					&cli.StringFlag{Name: "password", Required: true, EnvVars: []string{"SCOREBOARD_ADMIN_PASSWORD"}},
				},
				Action: func(c *cli.Context) error {
					return withStore(c, true, func(ctx context.Context, cfg *config.Config, conn *sql.DB) error {
						user, err := authService(cfg, conn).SignUp(ctx, service.SignUpInput{
							Username: c.String("username"),
							Password: c.String("password"),
							Role:     models.RoleAdmin,
						}, operator)
						if err != nil {
							return fmt.Errorf("create admin: %s", service.Message(err, err.Error()))
						}
						fmt.Fprintf(out, "created %s (%s)\n", user.Username, user.Role)
						return nil
					})
				},
			},
			{
				Name:      "grant",
				Usage:     "set the role of an existing user",
				ArgsUsage: "<username> <admin|user>",
				Action: func(c *cli.Context) error {
					if c.NArg() != 2 {
						return fmt.Errorf("usage: grant <username> <admin|user>")
					}
					username, role := c.Args().Get(0), c.Args().Get(1)
					return withStore(c, true, func(ctx context.Context, cfg *config.Config, conn *sql.DB) error {
						if err := authService(cfg, conn).SetRole(ctx, operator, username, role); err != nil {
							return fmt.Errorf("grant: %s", service.Message(err, err.Error()))
						}
						fmt.Fprintf(out, "%s is now %s\n", username, role)
						return nil
					})
				},
			},
		},
	}
}

// withStore loads the config, connects and runs fn. When migrate is true the
// schema is ensured first.
func withStore(c *cli.Context, migrate bool, fn func(context.Context, *config.Config, *sql.DB) error) error {
	cfg, err := config.Load(c.StringSlice("config")...)
	if err != nil {
		return err
	}
	ctx := c.Context
	conn, err := db.Connect(ctx, cfg.DB)
	if err != nil {
		return err
	}
	defer conn.Close()

	if migrate {
		if err := db.EnsureSchema(ctx, conn, cfg.DB.Driver); err != nil {
			return err
		}
	}
	return fn(ctx, cfg, conn)
}

func authService(cfg *config.Config, conn *sql.DB) *service.AuthService {
	repos := repository.NewRepository(conn, cfg.DB.QueryTimeout)
	return service.NewAuthService(repos.Auth, session.NewMemoryStore(), service.AuthOptions{
		BcryptCost: cfg.Auth.BcryptCost,
		SessionTTL: cfg.Auth.SessionTTL,
	})
}
