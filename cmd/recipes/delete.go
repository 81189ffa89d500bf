// Delete command for the recipes CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:   "delete <id> [id...]",
	Short: "Delete one or more recipes",
	Long: `Delete removes recipes by id. Several ids are removed in one
all-or-nothing transaction; ids that do not exist are skipped.

Example:
  recipes delete abc123
  recipes delete abc123 def456`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		backend, _, client, err := openStore()
		if err != nil {
			fmt.Fprintln(os.Stderr, "delete:", err)
			os.Exit(exitSysError)
		}
		defer backend.Close()

		if len(args) == 1 {
			err = client.DeleteRecipe(cmd.Context(), args[0])
		} else {
			err = client.DeleteRecipes(cmd.Context(), args)
		}
		if err != nil {
			fmt.Fprintln(os.Stderr, "delete:", err)
			os.Exit(exitSysError)
		}

		if len(args) == 1 {
			fmt.Println("Deleted", args[0])
		} else {
			fmt.Printf("Deleted %d recipes\n", len(args))
		}
		return nil
	},
}
