package main

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"propquery/internal/logger"
	"propquery/internal/model"
	"propquery/internal/queryparser"
	"propquery/internal/service"
)

type parseOptions struct {
	city     string
	pretty   bool
	params   bool
	logLevel string
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "propquery",
		Short: "Turn free-text property searches into structured filters",
		Long: `propquery extracts structured search filters (bedrooms, price limits,
property type, nearby landmarks, features and more) from a free-text
real-estate query using a fixed set of rules.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(newParseCmd(), newVersionCmd())
	return rootCmd
}

func newParseCmd() *cobra.Command {
	opts := &parseOptions{}

	cmd := &cobra.Command{
		Use:   "parse [query...]",
		Short: "Parse a query and print the result as JSON",
		Example: `  propquery parse "3 bed house near school under 500k"
  propquery parse --city Halifax --params 2 bath condo`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runParse(cmd, opts, strings.Join(args, " "))
		},
	}

	cmd.Flags().StringVar(&opts.city, "city", "", "city to use when the query names no location")
	cmd.Flags().BoolVar(&opts.pretty, "pretty", false, "indent JSON output")
	cmd.Flags().BoolVar(&opts.params, "params", false, "print the properties search query string only")
	cmd.Flags().StringVar(&opts.logLevel, "log-level", "warn", "log level (debug, info, warn, error)")
	return cmd
}

func runParse(cmd *cobra.Command, opts *parseOptions, query string) error {
	log := logger.NewWithWriter(cmd.ErrOrStderr(), opts.logLevel, "text")
	svc := service.NewQueryService(queryparser.New(), log)

	resp, err := svc.Parse(context.Background(), &model.ParseRequest{Query: query, City: opts.city})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if opts.params {
		_, err = fmt.Fprintln(out, resp.SearchParams)
		return err
	}

	enc := json.NewEncoder(out)
	if opts.pretty {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(resp.ParsedQuery); err != nil {
		return fmt.Errorf("encode result: %w", err)
	}
	return nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "propquery %s (built %s, commit %s)\n", Version, BuildTime, GitCommit)
		},
	}
}
