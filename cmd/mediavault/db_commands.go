package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"mediavault/internal/eventstore"
)

func newDBCommand(ctx *commandContext) *cobra.Command {
	dbCmd := &cobra.Command{
		Use:   "db",
		Short: "Event database utilities",
	}
	dbCmd.AddCommand(newDBCheckCommand(ctx))
	return dbCmd
}

func newDBCheckCommand(ctx *commandContext) *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Check event database health",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(store *eventstore.Store) error {
				health, err := store.CheckHealth(cmd.Context())
				if err != nil && health.Error == "" {
					health.Error = err.Error()
				}

				if jsonOut {
					return writeJSON(cmd, health)
				}

				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "Database:    %s\n", health.DBPath)
				fmt.Fprintf(out, "Exists:      %s\n", yesNo(health.DatabaseExists))
				fmt.Fprintf(out, "Readable:    %s\n", yesNo(health.DatabaseReadable))
				fmt.Fprintf(out, "Schema OK:   %s\n", yesNo(health.TableExists))
				fmt.Fprintf(out, "Integrity:   %s\n", yesNo(health.IntegrityCheck))
				fmt.Fprintf(out, "Events:      %d\n", health.TotalEvents)
				if health.Error != "" {
					fmt.Fprintf(out, "Error:       %s\n", health.Error)
				}
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "Emit JSON instead of text")
	return cmd
}
