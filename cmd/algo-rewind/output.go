package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/jungguji/algo-rewind/internal/domain"
	"github.com/jungguji/algo-rewind/internal/transport/jsonapi"
)

func printTable(w io.Writer, problems []domain.Problem) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tPROBLEM\tLEVEL\tNEXT REVIEW\tTAGS")
	for _, p := range problems {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n",
			p.ID, p.Name, p.Level, p.NextReviewAt, strings.Join(p.Tags, ", "))
	}
	return tw.Flush()
}

// printEncoded decodes a jsonapi result list and prints it as a table.
func printEncoded(w io.Writer, op, encoded string, empty string) error {
	problems, err := jsonapi.DecodeProblems(op, []byte(encoded))
	if err != nil {
		return err
	}
	if len(problems) == 0 {
		fmt.Fprintln(w, empty)
		return nil
	}
	return printTable(w, problems)
}
