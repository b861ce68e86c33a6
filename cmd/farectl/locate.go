package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/neexbeast/farescout/internal/location"
)

type resolveOutput struct {
	location.Resolution
	DisplayName string `json:"display_name"`
}

func newResolveCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "resolve <text>...",
		Short: "Resolve city names or codes to location codes",
		Long: `Resolve maps each argument to a three-letter location code.

Example:
  farectl resolve Beijing "hong kong" tok
  farectl resolve --json xian`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := make([]resolveOutput, 0, len(args))
			for _, arg := range args {
				res := a.resolver.Resolve(arg)
				out = append(out, resolveOutput{Resolution: res, DisplayName: a.resolver.ResolveDisplayName(res.Code)})
			}

			if a.jsonOutput {
				return printJSON(cmd.OutOrStdout(), out)
			}

			tw := newTable(cmd.OutOrStdout())
			fmt.Fprintln(tw, "INPUT\tCODE\tNAME\tSTATUS")
			for _, r := range out {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", r.Input, r.Code, r.DisplayName, r.Status)
			}
			return tw.Flush()
		},
	}
}

type classifyOutput struct {
	Origin      string             `json:"origin_code"`
	Destination string             `json:"destination_code"`
	RouteType   location.RouteType `json:"route_type"`
}

func newClassifyCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "classify <origin> <destination>",
		Short: "Classify a route as Domestic or International",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := classifyOutput{
				Origin:      a.resolver.ResolveCode(args[0]),
				Destination: a.resolver.ResolveCode(args[1]),
				RouteType:   a.resolver.ClassifyRoute(args[0], args[1]),
			}

			if a.jsonOutput {
				return printJSON(cmd.OutOrStdout(), out)
			}
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "%s → %s: %s\n",
				strings.ToUpper(out.Origin), strings.ToUpper(out.Destination), out.RouteType)
			return err
		},
	}
}
