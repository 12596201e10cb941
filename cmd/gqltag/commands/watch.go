package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/gqltag/internal/app"
)

func (c *CLI) newWatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Scan the project and keep re-parsing files as they change",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			dir, _ := cmd.Flags().GetString("dir")
			debounce, _ := cmd.Flags().GetDuration("debounce")

			return c.app.Watch(cmd.Context(), app.WatchOptions{
				Dir:      dir,
				Debounce: debounce,
			})
		},
	}
	cmd.Flags().StringP("dir", "C", ".", "Directory to start the configuration lookup from")
	cmd.Flags().Duration("debounce", 0, "Coalescing window for file events (0 = default)")
	return cmd
}
