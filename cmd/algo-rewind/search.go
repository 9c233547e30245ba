package main

import (
	"github.com/spf13/cobra"

	"github.com/jungguji/algo-rewind/internal/transport/jsonapi"
)

func newSearchCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "search TERM",
		Short: "Find problems whose name or tags contain TERM (case-insensitive)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := c.raw()
			if err != nil {
				return err
			}
			out, err := c.api.FilterProblems(raw, args[0])
			if err != nil {
				return err
			}
			return printEncoded(cmd.OutOrStdout(), jsonapi.OpFilterProblems, out, "No matches.")
		},
	}
}
