package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/gqltag/internal/app"
)

func (c *CLI) newScanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scan",
		Short: "Scan the project once and report the extracted definitions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			dir, _ := cmd.Flags().GetString("dir")
			jobs, _ := cmd.Flags().GetInt("jobs")
			list, _ := cmd.Flags().GetBool("list")

			report, err := c.app.Scan(cmd.Context(), app.ScanOptions{
				Dir:  dir,
				Jobs: jobs,
			})
			if report != nil {
				writeReport(cmd.OutOrStdout(), report, list)
			}
			return err
		},
	}
	cmd.Flags().StringP("dir", "C", ".", "Directory to start the configuration lookup from")
	cmd.Flags().IntP("jobs", "j", 0, "Number of parallel parse workers (0 = one per CPU)")
	cmd.Flags().BoolP("list", "l", false, "List every extracted definition")
	return cmd
}
