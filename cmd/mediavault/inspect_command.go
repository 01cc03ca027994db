package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"mediavault/internal/config"
	"mediavault/internal/metadata"
)

func newInspectCommand(ctx *commandContext) *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "inspect <file>",
		Short: "Extract and display a single file's metadata",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := config.ExpandPath(args[0])
			if err != nil {
				return fmt.Errorf("resolve path: %w", err)
			}

			extractor := metadata.NewExtractor(ctx.ensureLogger())
			meta := extractor.Extract(path)

			if jsonOut {
				return writeJSON(cmd, struct {
					Caption string            `json:"caption"`
					EXIF    map[string]string `json:"exif"`
					IPTC    map[string]string `json:"iptc"`
				}{meta.Caption, meta.EXIF, meta.IPTC})
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Caption: %s\n", meta.Caption)
			printFieldMap(out, "exif", meta.EXIF)
			printFieldMap(out, "iptc", meta.IPTC)
			if len(meta.EXIF) == 0 && len(meta.IPTC) == 0 {
				fmt.Fprintln(out, "No embedded metadata found")
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "Emit JSON instead of text")
	return cmd
}
