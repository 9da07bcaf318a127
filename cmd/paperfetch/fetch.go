// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/paperfetch/internal/logger"
	"github.com/pdiddy/paperfetch/internal/output"
	"github.com/pdiddy/paperfetch/internal/pipeline"
	"github.com/pdiddy/paperfetch/internal/source"
	"github.com/pdiddy/paperfetch/pkg/httpclient"
	"github.com/pdiddy/paperfetch/pkg/types"
)

var fetchCmd = &cobra.Command{
	Use:   "fetch [query...]",
	Short: "Fetch papers for a query and write the CSV report",
	Long: `Fetch runs one pass of the pipeline: the query goes to the selected source,
the response is parsed into paper records, and the records are written as CSV
to --file or printed to stdout in the chosen format.

Without a query argument the configured default query is used.`,
	RunE: runFetch,
}

func init() {
	fetchCmd.Flags().StringP("file", "f", "", "write the CSV report here instead of printing")
	fetchCmd.Flags().String("source", "", "paper source to query (see the sources subcommand)")
	fetchCmd.Flags().String("format", "", "stdout format: table, json, or csl")
	fetchCmd.Flags().IntP("max-results", "n", 0, "maximum number of papers to request")
	fetchCmd.Flags().BoolP("debug", "d", false, "debug logging plus a raw response dump")

	rootCmd.AddCommand(fetchCmd)
}

func runFetch(cmd *cobra.Command, args []string) error {
	debug, _ := cmd.Flags().GetBool("debug")

	level := viper.GetString("log_level")
	if debug {
		level = "debug"
	}
	logger.Init(level)
	defer logger.Close()

	query := strings.TrimSpace(strings.Join(args, " "))
	if query == "" {
		query = viper.GetString("query")
	}

	sourceName := viper.GetString("source")
	if flagSource, _ := cmd.Flags().GetString("source"); flagSource != "" {
		sourceName = flagSource
	}

	maxResults := viper.GetInt("max_results")
	if cmd.Flags().Changed("max-results") {
		maxResults, _ = cmd.Flags().GetInt("max-results")
	}

	cfg := types.FetchConfig{
		HTTPConfig: types.HTTPConfig{
			Timeout:   viper.GetDuration("timeout"),
			UserAgent: viper.GetString("user_agent"),
		},
		MaxResults:     maxResults,
		NCBIAPIKey:     secretDefault("ncbi-api-key", viper.GetString("ncbi_api_key")),
		OpenAlexMailto: secretDefault("openalex-mailto", viper.GetString("openalex_mailto")),
	}

	client := httpclient.NewRestyClient(cfg.Timeout, cfg.UserAgent)
	src, err := source.New(sourceName, client)
	if err != nil {
		return err
	}

	opts := pipeline.Options{Fetch: cfg}
	outFile, _ := cmd.Flags().GetString("file")
	opts.OutFile = outFile
	if debug {
		opts.DebugDir = viper.GetString("debug_dir")
	}

	res, err := pipeline.Run(cmd.Context(), src, query, opts)
	if err != nil {
		return err
	}

	if outFile != "" {
		fmt.Fprintf(os.Stderr, "Wrote %d papers to %s\n", len(res.Papers), outFile)
		return nil
	}

	format := viper.GetString("format")
	if flagFormat, _ := cmd.Flags().GetString("format"); flagFormat != "" {
		format = flagFormat
	}
	switch format {
	case "table":
		output.FormatTable(res.Papers, os.Stdout)
		return nil
	case "json":
		return output.FormatJSON(res.Papers, os.Stdout)
	case "csl":
		return output.FormatCSL(res.Papers, os.Stdout)
	default:
		return fmt.Errorf("unknown format %q (want table, json, or csl)", format)
	}
}
