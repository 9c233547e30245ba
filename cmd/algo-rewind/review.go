package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/jungguji/algo-rewind/internal/service/problem"
	"github.com/jungguji/algo-rewind/internal/transport/jsonapi"
)

func newReviewCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "review ID LEVEL",
		Short: "Record a review and reschedule the problem",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			problems, err := c.load()
			if err != nil {
				return err
			}
			current, err := problem.FindByID(problems, id)
			if err != nil {
				return fmt.Errorf("problem %d: %w", id, err)
			}

			encoded, err := jsonapi.EncodeProblem(*current)
			if err != nil {
				return err
			}
			out, err := c.api.UpdateReview(string(encoded), args[1])
			if err != nil {
				return err
			}
			updated, err := jsonapi.DecodeProblem(jsonapi.OpUpdateReview, []byte(out))
			if err != nil {
				return err
			}

			problems, _ = problem.ReplaceByID(problems, updated)
			if err := c.save(problems); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Reviewed %q as %s, next review %s\n",
				updated.Name, updated.Level, updated.NextReviewAt)
			return nil
		},
	}
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid id %q", s)
	}
	return id, nil
}
