package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"mediavault/internal/config"
	"mediavault/internal/eventstore"
)

const eventDateLayout = "2006-01-02"

func newImportCommand(ctx *commandContext) *cobra.Command {
	var dateFlag string

	cmd := &cobra.Command{
		Use:   "import <name> <source-folder>",
		Short: "Import a folder of media as a new event",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			source, err := config.ExpandPath(args[1])
			if err != nil {
				return fmt.Errorf("resolve source folder: %w", err)
			}

			eventDate := time.Now().UTC()
			if trimmed := strings.TrimSpace(dateFlag); trimmed != "" {
				parsed, err := time.Parse(eventDateLayout, trimmed)
				if err != nil {
					return fmt.Errorf("parse --date %q (expected YYYY-MM-DD): %w", trimmed, err)
				}
				eventDate = parsed
			}

			return ctx.withStore(func(store *eventstore.Store) error {
				svc, err := ctx.importService(store)
				if err != nil {
					return err
				}
				evt, err := svc.CreateAndImport(cmd.Context(), name, eventDate, source)
				if err != nil {
					return err
				}

				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "Imported event %s\n", evt.Name)
				fmt.Fprintf(out, "  ID:    %s\n", evt.ID)
				fmt.Fprintf(out, "  Date:  %s\n", evt.EventDate.Format(eventDateLayout))
				fmt.Fprintf(out, "  Vault: %s\n", evt.VaultFolderPath)
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&dateFlag, "date", "d", "", "Event date as YYYY-MM-DD (defaults to today)")
	return cmd
}
