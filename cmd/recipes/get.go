// Get command for the recipes CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var getCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Get a recipe by id",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		backend, _, client, err := openStore()
		if err != nil {
			fmt.Fprintln(os.Stderr, "get:", err)
			os.Exit(exitSysError)
		}
		defer backend.Close()

		r, err := client.Recipe(cmd.Context(), args[0])
		if err != nil {
			if isNotFound(err) {
				fmt.Fprintf(os.Stderr, "recipe %q not found\n", args[0])
				os.Exit(exitUserError)
			}
			fmt.Fprintln(os.Stderr, "get:", err)
			os.Exit(exitSysError)
		}

		if flagJSON {
			return printJSON(r)
		}
		printRecipe(r)
		return nil
	},
}
