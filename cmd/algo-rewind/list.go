package main

import (
	"github.com/spf13/cobra"

	"github.com/jungguji/algo-rewind/internal/transport/jsonapi"
)

func newListCmd(c *cli) *cobra.Command {
	var sortBy string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all problems",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			raw, err := c.raw()
			if err != nil {
				return err
			}

			out, err := c.api.SortProblems(raw, sortBy)
			if err != nil {
				return err
			}
			return printEncoded(cmd.OutOrStdout(), jsonapi.OpSortProblems, out, "No problems yet. Add one with 'algo-rewind add'.")
		},
	}

	cmd.Flags().StringVarP(&sortBy, "sort", "s", "next_review", "sort order: next_review, created_at or name")

	return cmd
}
