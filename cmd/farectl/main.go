// Package main provides farectl, an offline command-line front end to the
// location resolver and fare ranker.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/neexbeast/farescout/internal/location"
)

// app carries state shared by every subcommand.
type app struct {
	jsonOutput bool
	verbose    bool
	resolver   *location.Resolver
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{resolver: location.NewResolver(location.DefaultRegistry())}

	root := &cobra.Command{
		Use:   "farectl",
		Short: "Resolve locations, classify routes and rank flight fares",
		Long: `farectl resolves free-text city names to location codes, classifies
routes as domestic or international, and ranks flight offers with
direct flights first.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			level := slog.LevelWarn
			if a.verbose {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})))
		},
	}

	root.PersistentFlags().BoolVar(&a.jsonOutput, "json", false, "print JSON instead of text")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "log debug output to stderr")

	root.AddCommand(
		newResolveCmd(a),
		newClassifyCmd(a),
		newRankCmd(a),
		newSearchCmd(a),
	)
	return root
}

// printJSON writes v as indented JSON.
func printJSON(w io.Writer, v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal output: %w", err)
	}
	_, err = fmt.Fprintln(w, string(out))
	return err
}
