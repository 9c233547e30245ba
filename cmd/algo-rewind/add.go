package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jungguji/algo-rewind/internal/transport/jsonapi"
)

func newAddCmd(c *cli) *cobra.Command {
	var (
		url  string
		tags string
		memo string
	)

	cmd := &cobra.Command{
		Use:   "add NAME LEVEL",
		Short: "Add a solved problem (LEVEL: again, hard, good, easy)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			problems, err := c.load()
			if err != nil {
				return err
			}

			var urlPtr *string
			if cmd.Flags().Changed("url") {
				urlPtr = &url
			}

			encoded, err := c.api.AddProblem(args[0], urlPtr, splitTags(tags), memo, args[1])
			if err != nil {
				return err
			}
			p, err := jsonapi.DecodeProblem(jsonapi.OpAddProblem, []byte(encoded))
			if err != nil {
				return err
			}

			if err := c.save(append(problems, p)); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Added %q (id %d, level %s, next review %s)\n",
				p.Name, p.ID, p.Level, p.NextReviewAt)
			return nil
		},
	}

	cmd.Flags().StringVarP(&url, "url", "u", "", "link to the problem")
	cmd.Flags().StringVarP(&tags, "tags", "t", "", "comma-separated tags (e.g. array,dp)")
	cmd.Flags().StringVarP(&memo, "memo", "m", "", "free-form note")

	return cmd
}
