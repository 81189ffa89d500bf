// Cook command for the recipes CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var cookCmd = &cobra.Command{
	Use:   "cook <id>",
	Short: "Record a completed cooking session",
	Long: `Cook increments the recipe's cook count and stamps the last cooked
time.

Example:
  recipes cook abc123`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		backend, _, client, err := openStore()
		if err != nil {
			fmt.Fprintln(os.Stderr, "cook:", err)
			os.Exit(exitSysError)
		}
		defer backend.Close()

		r, err := client.CookComplete(cmd.Context(), args[0])
		if err != nil {
			if isNotFound(err) {
				fmt.Fprintf(os.Stderr, "recipe %q not found\n", args[0])
				os.Exit(exitUserError)
			}
			fmt.Fprintln(os.Stderr, "cook:", err)
			os.Exit(exitSysError)
		}

		if flagJSON {
			return printJSON(r)
		}
		fmt.Printf("Cooked %q (%d times total)\n", r.Title, r.CookCount)
		return nil
	},
}
