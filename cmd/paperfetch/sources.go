// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/paperfetch/internal/source"
)

var sourcesCmd = &cobra.Command{
	Use:   "sources",
	Short: "List the available paper sources",
	Run: func(cmd *cobra.Command, args []string) {
		for _, name := range source.Names() {
			fmt.Println(name)
		}
	},
}

func init() {
	rootCmd.AddCommand(sourcesCmd)
}
