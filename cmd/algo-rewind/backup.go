package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jungguji/algo-rewind/internal/adapter/filestore"
	"github.com/jungguji/algo-rewind/internal/transport/jsonapi"
)

var errNothingToExport = errors.New("no problems to export")

func newExportCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "export PATH",
		Short: "Write the problem list to a JSON backup file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			problems, err := c.load()
			if err != nil {
				return err
			}
			if len(problems) == 0 {
				return errNothingToExport
			}

			data, err := jsonapi.EncodeProblems(problems)
			if err != nil {
				return err
			}
			var pretty bytes.Buffer
			if err := json.Indent(&pretty, data, "", "  "); err != nil {
				return err
			}
			pretty.WriteByte('\n')

			if err := filestore.New(args[0]).Save(pretty.String()); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Exported %d problems to %s\n", len(problems), args[0])
			return nil
		},
	}
}

func newImportCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "import PATH",
		Short: "Replace the problem list with a JSON backup file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := filestore.New(args[0]).Load()
			if err != nil {
				return err
			}
			problems, err := jsonapi.DecodeProblems(opImport, []byte(raw))
			if err != nil {
				return fmt.Errorf("%s: %w", args[0], err)
			}
			if err := c.save(problems); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d problems from %s\n", len(problems), args[0])
			return nil
		},
	}
}

func newClearCmd(c *cli) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete every tracked problem",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !yes {
				return errors.New("clear removes every problem; rerun with --yes to confirm")
			}
			if err := c.save(nil); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Cleared all problems")
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "confirm deletion")

	return cmd
}
