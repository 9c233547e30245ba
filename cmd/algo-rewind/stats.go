package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/jungguji/algo-rewind/internal/domain"
	"github.com/jungguji/algo-rewind/internal/service/problem"
)

func newStatsCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show tracked problem statistics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			problems, err := c.load()
			if err != nil {
				return err
			}
			stats := problem.Summarize(problems, c.today())

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintf(tw, "Total\t%d\n", stats.Total)
			fmt.Fprintf(tw, "Due\t%d\n", stats.Due)
			for _, level := range domain.Levels {
				fmt.Fprintf(tw, "%s\t%d\n", level, stats.ByLevel[level])
			}
			return tw.Flush()
		},
	}
}
