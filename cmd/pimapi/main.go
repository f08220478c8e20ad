package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"pim-api/internal"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "pimapi",
		Short:         "Product information management API",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          func(cmd *cobra.Command, args []string) error { return serve(cmd.Context()) },
	}

	root.AddCommand(
		&cobra.Command{
			Use:   "serve",
			Short: "Run the HTTP API and the notification consumer",
			RunE:  func(cmd *cobra.Command, args []string) error { return serve(cmd.Context()) },
		},
		&cobra.Command{
			Use:   "migrate",
			Short: "Apply pending database migrations",
			RunE:  func(cmd *cobra.Command, args []string) error { return internal.Migrate() },
		},
		newReconcileCommand(),
		newSweepCommand(),
		newTokenCommand(),
	)

	return root
}

func serve(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}

	app, err := internal.NewApp(ctx)
	if err != nil {
		return fmt.Errorf("init app failed: %w", err)
	}
	defer app.Close()

	app.InitControllers()

	if err = app.Run(ctx); err != nil {
		app.Logger().Sugar().Errorf("pimapi stopped with error: %v", err)
		return err
	}
	return nil
}

func newReconcileCommand() *cobra.Command {
	var user string

	cmd := &cobra.Command{
		Use:   "reconcile-groups",
		Short: "Recompute the total size of asset groups",
		RunE: func(cmd *cobra.Command, args []string) error {
			userID := uuid.Nil
			if user != "" {
				id, err := uuid.Parse(user)
				if err != nil {
					return fmt.Errorf("--user: %w", err)
				}
				userID = id
			}

			n, err := internal.ReconcileGroups(cmd.Context(), userID)
			if err != nil {
				return err
			}
			cmd.Printf("reconciled %d groups\n", n)
			return nil
		},
	}
	cmd.Flags().StringVar(&user, "user", "", "only reconcile groups of this user id")

	return cmd
}

func newSweepCommand() *cobra.Command {
	var days int

	cmd := &cobra.Command{
		Use:   "sweep-notifications",
		Short: "Delete notifications older than the retention period",
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := internal.SweepNotifications(cmd.Context(), days)
			if err != nil {
				return err
			}
			cmd.Printf("deleted %d notifications\n", n)
			return nil
		},
	}
	cmd.Flags().IntVar(&days, "days", 0, "retention in days (default NOTIFICATIONS_RETENTION_DAYS)")

	return cmd
}

func newTokenCommand() *cobra.Command {
	var (
		user string
		role string
		ttl  time.Duration
	)

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Sign a bearer token for a user id",
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := uuid.Parse(user)
			if err != nil {
				return fmt.Errorf("--user: %w", err)
			}
			tok, err := internal.IssueToken(id, role, ttl)
			if err != nil {
				return err
			}
			cmd.Println(tok)
			return nil
		},
	}
	cmd.Flags().StringVar(&user, "user", "", "user id the token is scoped to")
	cmd.Flags().StringVar(&role, "role", "", "role claim, e.g. admin")
	cmd.Flags().DurationVar(&ttl, "ttl", 24*time.Hour, "token lifetime")
	_ = cmd.MarkFlagRequired("user")

	return cmd
}
