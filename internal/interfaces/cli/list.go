package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

func newListCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all schemes with deadlines and urgency",
		RunE: func(cmd *cobra.Command, args []string) error {
			overview, err := opts.apiClient().Overview(cmd.Context())
			if err != nil {
				return err
			}

			if opts.output == "json" {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(overview)
			}

			rows := make([][]string, 0, len(overview.Rows))
			for _, r := range overview.Rows {
				rows = append(rows, []string{
					r.RowID, r.Scheme, r.Ministry, r.IncentiveCrores, r.Deadline, r.DaysLeft, string(r.Urgency),
				})
			}
			out := cmd.OutOrStdout()
			fmt.Fprint(out, formatTable(
				[]string{"Row", "Scheme", "Ministry", "Incentive (Cr)", "Deadline", "Days left", "Urgency"},
				rows,
			))
			fmt.Fprintf(out, "\n%d scheme(s), total incentive %s Cr, last updated %s\n",
				overview.Summary.SchemeCount,
				overview.Summary.TotalIncentiveCrores,
				overview.Summary.LastUpdated,
			)
			return nil
		},
	}
}
