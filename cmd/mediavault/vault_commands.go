package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newVaultCommand(ctx *commandContext) *cobra.Command {
	vaultCmd := &cobra.Command{
		Use:   "vault",
		Short: "Vault storage utilities",
	}
	vaultCmd.AddCommand(newVaultStatusCommand(ctx))
	return vaultCmd
}

func newVaultStatusCommand(ctx *commandContext) *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Summarize the vault's event folders",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			vaultStore, err := ctx.vaultStore()
			if err != nil {
				return err
			}
			folders, err := vaultStore.ListFolders()
			if err != nil {
				return err
			}

			if jsonOut {
				type folderView struct {
					Name     string `json:"name"`
					Path     string `json:"path"`
					Modified string `json:"modified"`
					Bytes    int64  `json:"bytes"`
				}
				views := make([]folderView, 0, len(folders))
				for _, folder := range folders {
					views = append(views, folderView{
						Name:     folder.Name,
						Path:     folder.Path,
						Modified: folder.ModTime.UTC().Format("2006-01-02 15:04"),
						Bytes:    folder.Size,
					})
				}
				return writeJSON(cmd, views)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Vault root: %s\n", vaultStore.Root())
			if len(folders) == 0 {
				fmt.Fprintln(out, "No event folders found")
				return nil
			}

			rows := make([][]string, 0, len(folders))
			var total int64
			for _, folder := range folders {
				total += folder.Size
				rows = append(rows, []string{
					folder.Name,
					folder.ModTime.UTC().Format("2006-01-02 15:04"),
					formatByteSize(folder.Size),
				})
			}
			fmt.Fprintln(out, renderTable(
				[]string{"Folder", "Modified", "Size"},
				rows,
				[]columnAlignment{alignLeft, alignLeft, alignRight},
			))
			fmt.Fprintf(out, "%d folder(s), %s total\n", len(folders), formatByteSize(total))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "Emit JSON instead of a table")
	return cmd
}

func formatByteSize(size int64) string {
	const unit = 1024
	if size < unit {
		return fmt.Sprintf("%d B", size)
	}
	div, exp := int64(unit), 0
	for n := size / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(size)/float64(div), "KMGTPE"[exp])
}
