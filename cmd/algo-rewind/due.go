package main

import (
	"github.com/spf13/cobra"

	"github.com/jungguji/algo-rewind/internal/transport/jsonapi"
)

func newDueCmd(c *cli) *cobra.Command {
	var today string

	cmd := &cobra.Command{
		Use:   "due",
		Short: "Show problems due for review",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			raw, err := c.raw()
			if err != nil {
				return err
			}
			if today == "" {
				today = c.today()
			}

			out, err := c.api.GetTodayReviews(raw, today)
			if err != nil {
				return err
			}
			return printEncoded(cmd.OutOrStdout(), jsonapi.OpGetTodayReviews, out, "Nothing due. Good job.")
		},
	}

	cmd.Flags().StringVar(&today, "today", "", "date to check against, YYYY-MM-DD (default: today UTC)")

	return cmd
}
