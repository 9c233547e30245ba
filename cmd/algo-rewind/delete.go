package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jungguji/algo-rewind/internal/domain"
	"github.com/jungguji/algo-rewind/internal/service/problem"
)

func newDeleteCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "delete ID",
		Short: "Stop tracking a problem",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			problems, err := c.load()
			if err != nil {
				return err
			}
			rest, ok := problem.RemoveByID(problems, id)
			if !ok {
				return fmt.Errorf("problem %d: %w", id, domain.ErrNotFound)
			}
			if err := c.save(rest); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Deleted problem %d\n", id)
			return nil
		},
	}
}
