package main

import (
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"mediavault/internal/event"
	"mediavault/internal/eventstore"
)

type eventView struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	EventDate       string `json:"event_date"`
	ImportedFrom    string `json:"imported_folder_path"`
	VaultFolderPath string `json:"vault_folder_path"`
	ImportSuccess   bool   `json:"import_success"`
	CreatedAt       string `json:"created_at"`
}

func newEventView(evt *event.Event) eventView {
	return eventView{
		ID:              evt.ID.String(),
		Name:            evt.Name,
		EventDate:       evt.EventDate.UTC().Format(eventDateLayout),
		ImportedFrom:    evt.ImportedFolderPath,
		VaultFolderPath: evt.VaultFolderPath,
		ImportSuccess:   evt.ImportSuccess,
		CreatedAt:       evt.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func newEventsCommand(ctx *commandContext) *cobra.Command {
	var limit int
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "events",
		Short: "List events, most recent occasion first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			if limit <= 0 {
				limit = cfg.Gallery.EventListLimit
			}

			return ctx.withStore(func(store *eventstore.Store) error {
				events, err := store.GetAll(cmd.Context(), limit)
				if err != nil {
					return err
				}

				if jsonOut {
					views := make([]eventView, 0, len(events))
					for _, evt := range events {
						views = append(views, newEventView(evt))
					}
					return writeJSON(cmd, views)
				}

				if len(events) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), "No events found")
					return nil
				}

				rows := make([][]string, 0, len(events))
				for _, evt := range events {
					rows = append(rows, []string{
						evt.ID.String(),
						evt.Name,
						evt.EventDate.UTC().Format(eventDateLayout),
						yesNo(evt.ImportSuccess),
					})
				}
				out := renderTable(
					[]string{"ID", "Name", "Date", "Imported"},
					rows,
					[]columnAlignment{alignLeft, alignLeft, alignLeft, alignLeft},
				)
				fmt.Fprintln(cmd.OutOrStdout(), out)
				return nil
			})
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "Maximum number of events to list (0 for the configured default)")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Emit JSON instead of a table")
	return cmd
}

func newShowCommand(ctx *commandContext) *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "show <event-id>",
		Short: "Display one event's details and media summary",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := uuid.Parse(args[0])
			if err != nil {
				return fmt.Errorf("parse event id %q: %w", args[0], err)
			}

			return ctx.withStore(func(store *eventstore.Store) error {
				evt, err := store.GetByID(cmd.Context(), id)
				if err != nil {
					return err
				}
				if evt == nil {
					return fmt.Errorf("event %s not found", id)
				}

				vaultStore, err := ctx.vaultStore()
				if err != nil {
					return err
				}
				summary, err := vaultStore.Classify(evt.VaultFolderPath)
				if err != nil {
					return err
				}

				if jsonOut {
					return writeJSON(cmd, struct {
						eventView
						Media map[string]int `json:"media"`
					}{newEventView(evt), summary})
				}

				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "Event %s\n", evt.Name)
				fmt.Fprintf(out, "  ID:          %s\n", evt.ID)
				fmt.Fprintf(out, "  Date:        %s\n", evt.EventDate.UTC().Format(eventDateLayout))
				fmt.Fprintf(out, "  Imported:    %s\n", yesNo(evt.ImportSuccess))
				fmt.Fprintf(out, "  Source:      %s\n", evt.ImportedFolderPath)
				fmt.Fprintf(out, "  Vault:       %s\n", evt.VaultFolderPath)
				fmt.Fprintf(out, "  Created:     %s\n", evt.CreatedAt.UTC().Format(time.RFC3339))

				if len(summary) > 0 {
					kinds := make([]string, 0, len(summary))
					for kind := range summary {
						kinds = append(kinds, kind)
					}
					sort.Strings(kinds)
					fmt.Fprintln(out, "  Media:")
					for _, kind := range kinds {
						fmt.Fprintf(out, "    %-11s %d\n", kind+":", summary[kind])
					}
				}
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "Emit JSON instead of text")
	return cmd
}
