package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

func newShowCmd(opts *rootOptions) *cobra.Command {
	var (
		row  string
		name string
	)

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show one scheme's milestones, progress and budget split",
		RunE: func(cmd *cobra.Command, args []string) error {
			detail, err := opts.apiClient().Detail(cmd.Context(), row, name)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if opts.output == "json" {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(detail)
			}

			fmt.Fprintf(out, "%s (row %s)\n", detail.Scheme, detail.RowID)
			if detail.Ministry != "" {
				fmt.Fprintf(out, "Ministry:      %s\n", detail.Ministry)
			}
			if detail.Description != "" {
				fmt.Fprintf(out, "Description:   %s\n", detail.Description)
			}
			fmt.Fprintf(out, "Commencement:  %s\n", detail.Commencement)
			for i, stage := range detail.Stages {
				fmt.Fprintf(out, "Stage %d:       %s (deadline %s)\n", i+1, stage.Name, stage.Deadline)
			}
			if detail.NextMilestone != nil {
				fmt.Fprintf(out, "Next:          %s on %s (%s, %s)\n",
					detail.NextMilestone.Label, detail.NextMilestone.Date,
					detail.NextDaysLeft, detail.NextUrgency)
			}
			fmt.Fprintf(out, "Progress:      segment %d%%, overall %d%%\n",
				detail.SegmentProgressPercent, detail.OverallProgressPercent)
			fmt.Fprintf(out, "Budget:        %s Cr applied (%d%% of budget), %s Cr remaining\n",
				detail.AppliedCrores, detail.SharePercent, detail.RemainingCrores)

			printList(out, "Status", detail.Status)
			printList(out, "Pending", detail.Pending)
			printList(out, "Ongoing", detail.Ongoing)
			printList(out, "Completed", detail.Completed)
			return nil
		},
	}

	cmd.Flags().StringVar(&row, "row", "", "row identifier from the overview")
	cmd.Flags().StringVar(&name, "scheme", "", "scheme name")
	return cmd
}

func printList(out io.Writer, title string, items []string) {
	if len(items) == 0 {
		return
	}
	fmt.Fprintf(out, "%s:\n", title)
	for _, item := range items {
		fmt.Fprintf(out, "  - %s\n", item)
	}
}
