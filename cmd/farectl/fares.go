package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/neexbeast/farescout/internal/fare"
	"github.com/neexbeast/farescout/internal/source"
)

func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
}

func newRankCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "rank <offers.json>",
		Short: "Rank offers read from a JSON file",
		Long: `Rank reads a JSON array of offers (or "-" for stdin), validates them
and prints them direct flights first, then by transfers, then by price.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			offers, err := readOffers(cmd.InOrStdin(), args[0])
			if err != nil {
				return err
			}
			if err := fare.ValidateAll(offers); err != nil {
				return fmt.Errorf("invalid offers: %w", err)
			}
			return a.printResult(cmd.OutOrStdout(), fare.NewResult(offers))
		},
	}
}

func newSearchCmd(a *app) *cobra.Command {
	var count int

	cmd := &cobra.Command{
		Use:   "search <origin> <destination> <date>",
		Short: "Rank generated offers for a route without network access",
		Long: `Search resolves both endpoints and ranks offers from the built-in
deterministic mock source. The same query always yields the same offers.

Example:
  farectl search Beijing Tokyo 2025-11-21`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			date := args[2]
			if _, err := time.Parse("2006-01-02", date); err != nil {
				return fmt.Errorf("date %q must be yyyy-mm-dd", date)
			}

			q := source.Query{
				Origin:      a.resolver.ResolveCode(args[0]),
				Destination: a.resolver.ResolveCode(args[1]),
				Date:        date,
			}
			agg := source.NewAggregator(0, source.NewMockSource(count))
			offers, err := agg.Search(cmd.Context(), q)
			if err != nil {
				return err
			}

			if !a.jsonOutput {
				fmt.Fprintf(cmd.OutOrStdout(), "%s → %s on %s (%s)\n",
					a.resolver.ResolveDisplayName(q.Origin), a.resolver.ResolveDisplayName(q.Destination),
					date, a.resolver.ClassifyRoute(args[0], args[1]))
			}
			return a.printResult(cmd.OutOrStdout(), fare.NewResult(offers))
		},
	}

	cmd.Flags().IntVar(&count, "count", 8, "number of offers to generate")
	return cmd
}

func readOffers(stdin io.Reader, path string) ([]fare.Offer, error) {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("read offers: %w", err)
	}

	var offers []fare.Offer
	if err := json.Unmarshal(data, &offers); err != nil {
		return nil, fmt.Errorf("parse offers: %w", err)
	}
	return offers, nil
}

func (a *app) printResult(w io.Writer, res fare.Result) error {
	if a.jsonOutput {
		return printJSON(w, res)
	}
	if len(res.Offers) == 0 {
		_, err := fmt.Fprintln(w, "No offers found.")
		return err
	}

	tw := newTable(w)
	fmt.Fprintln(tw, "#\tOFFER")
	for i, o := range res.Offers {
		fmt.Fprintf(tw, "%d\t%s\n", i+1, o)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "Best: %s\n", res.Best)
	return err
}
