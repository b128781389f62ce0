package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/cmlabs-hris/hris-timekeeping-go/migrations"
	"github.com/spf13/cobra"
)

func newMigrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply or inspect database migrations",
	}
	cmd.AddCommand(
		newMigrateUpCmd(),
		newMigrateDownCmd(),
		newMigrateStatusCmd(),
	)
	return cmd
}

func withRunner(cmd *cobra.Command, fn func(*migrations.Runner) error) error {
	_, db, err := connectDB(cmd.Context())
	if err != nil {
		return err
	}
	defer db.Close()

	runner, err := migrations.NewRunner(db)
	if err != nil {
		return err
	}
	defer runner.Close()

	return fn(runner)
}

func newMigrateUpCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "up",
		Short: "Apply all pending migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withRunner(cmd, func(r *migrations.Runner) error {
				results, err := r.Up(cmd.Context())
				if err != nil {
					return err
				}
				if len(results) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), "no pending migrations")
				}
				for _, res := range results {
					fmt.Fprintf(cmd.OutOrStdout(), "applied %s (%s)\n", res.Source.Path, res.Duration)
				}
				return nil
			})
		},
	}
}

func newMigrateDownCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "down",
		Short: "Roll back the most recent migration",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withRunner(cmd, func(r *migrations.Runner) error {
				res, err := r.Down(cmd.Context())
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "rolled back %s (%s)\n", res.Source.Path, res.Duration)
				return nil
			})
		},
	}
}

func newMigrateStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "List migrations and whether they are applied",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withRunner(cmd, func(r *migrations.Runner) error {
				statuses, err := r.Status(cmd.Context())
				if err != nil {
					return err
				}
				tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
				fmt.Fprintln(tw, "VERSION\tSTATE\tAPPLIED AT\tFILE")
				for _, s := range statuses {
					applied := "-"
					if !s.AppliedAt.IsZero() {
						applied = s.AppliedAt.Format("2006-01-02 15:04:05")
					}
					fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", s.Source.Version, s.State, applied, s.Source.Path)
				}
				return tw.Flush()
			})
		},
	}
}
