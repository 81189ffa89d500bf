// Search command for the recipes CLI.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search recipes by free text",
	Long: `Search matches the query against titles, descriptions, categories,
tags, and ingredient names, case-insensitively.

Example:
  recipes search カレー
  recipes search "にんにく"`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		query := strings.Join(args, " ")

		backend, _, client, err := openStore()
		if err != nil {
			fmt.Fprintln(os.Stderr, "search:", err)
			os.Exit(exitSysError)
		}
		defer backend.Close()

		found, err := client.Search(cmd.Context(), query)
		if err != nil {
			fmt.Fprintln(os.Stderr, "search:", err)
			os.Exit(exitSysError)
		}

		if flagJSON {
			return printJSON(found)
		}
		if len(found) == 0 {
			fmt.Println("No recipes match", query)
			return nil
		}
		printRecipeList(found)
		return nil
	},
}
