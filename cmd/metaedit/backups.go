package main

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

func newBackupsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "backups",
		Short: "List, restore and delete save backups (requires REDIS_URL)",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List backups, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			list, err := app.editor.Backups(cmd.Context())
			if err != nil {
				return err
			}

			st := newStyles(cmd.OutOrStdout())
			out := cmd.OutOrStdout()
			if len(list) == 0 {
				fmt.Fprintln(out, st.dim.Render("no backups"))
				return nil
			}
			for _, b := range list {
				fmt.Fprintf(out, "%s  %s  %6d  %s\n",
					b.ID, b.CreatedAt.Local().Format(time.DateTime), b.Size, b.Path)
			}
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "restore <id> [path]",
		Short: "Write a backup back to disk",
		Long:  "Write a backup back to disk, to path if given or else to the file it was taken from. The file being replaced is backed up first.",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := uuid.Parse(args[0])
			if err != nil {
				return fmt.Errorf("invalid backup id %q: %w", args[0], err)
			}
			path := ""
			if len(args) == 2 {
				path = args[1]
			}

			written, err := app.editor.Restore(cmd.Context(), id, path)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "restored %s to %s\n", id, written)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a backup",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := uuid.Parse(args[0])
			if err != nil {
				return fmt.Errorf("invalid backup id %q: %w", args[0], err)
			}
			if err := app.editor.DeleteBackup(cmd.Context(), id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "deleted %s\n", id)
			return nil
		},
	})

	return cmd
}
