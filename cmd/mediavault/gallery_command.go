package main

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"mediavault/internal/eventstore"
	"mediavault/internal/gallery"
)

type galleryItemView struct {
	Title      string            `json:"title"`
	SourcePath string            `json:"source_path"`
	EXIF       map[string]string `json:"exif"`
	IPTC       map[string]string `json:"iptc"`
}

func newGalleryCommand(ctx *commandContext) *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "gallery <event-id>",
		Short: "Browse an event's media with extracted metadata",
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

				browser, err := ctx.galleryBrowser()
				if err != nil {
					return err
				}
				items, err := browser.Items(evt.VaultFolderPath)
				if err != nil {
					return err
				}

				if jsonOut {
					views := make([]galleryItemView, 0, len(items))
					for _, item := range items {
						views = append(views, galleryItemView(item))
					}
					return writeJSON(cmd, views)
				}

				out := cmd.OutOrStdout()
				if len(items) == 0 {
					fmt.Fprintln(out, "No media found")
					return nil
				}
				for i, item := range items {
					if i > 0 {
						fmt.Fprintln(out)
					}
					printGalleryItem(out, item)
				}
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "Emit JSON instead of text")
	return cmd
}

func printGalleryItem(out io.Writer, item gallery.Item) {
	fmt.Fprintln(out, item.SourcePath)
	for _, line := range strings.Split(item.Title, "\n") {
		fmt.Fprintf(out, "  %s\n", line)
	}
	printFieldMap(out, "exif", item.EXIF)
	printFieldMap(out, "iptc", item.IPTC)
}

func printFieldMap(out io.Writer, label string, fields map[string]string) {
	if len(fields) == 0 {
		return
	}
	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)
	fmt.Fprintf(out, "  %s:\n", label)
	for _, name := range names {
		fmt.Fprintf(out, "    %s: %s\n", name, fields[name])
	}
}
