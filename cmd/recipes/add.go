// Add command for the recipes CLI.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Eve04lim/recipe-manager-app/pkg/types"
)

var addFile string

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a recipe from a JSON draft",
	Long: `Add reads a recipe draft from a JSON file and stores it.

The draft carries the form fields only; ids, timestamps, and the cook
count are assigned by the store. Use "-" to read from stdin.

Example:
  recipes add --file curry.json
  cat curry.json | recipes add --file -`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := readFileOrStdin(addFile)
		if err != nil {
			fmt.Fprintln(os.Stderr, "add:", err)
			os.Exit(exitUserError)
		}

		var draft types.RecipeDraft
		if err := json.Unmarshal(data, &draft); err != nil {
			fmt.Fprintln(os.Stderr, "add: parse draft:", err)
			os.Exit(exitUserError)
		}
		if err := types.ValidateDraft(draft); err != nil {
			if !reportValidation(err) {
				fmt.Fprintln(os.Stderr, "add:", err)
			}
			os.Exit(exitUserError)
		}

		backend, _, client, err := openStore()
		if err != nil {
			fmt.Fprintln(os.Stderr, "add:", err)
			os.Exit(exitSysError)
		}
		defer backend.Close()

		created, err := client.AddRecipe(cmd.Context(), draft)
		if err != nil {
			fmt.Fprintln(os.Stderr, "add:", err)
			os.Exit(exitSysError)
		}

		if flagJSON {
			return printJSON(created)
		}
		fmt.Printf("Added %q: %s\n", created.Title, created.ID)
		return nil
	},
}

func init() {
	addCmd.Flags().StringVar(&addFile, "file", "", "recipe draft JSON file (\"-\" for stdin)")
	addCmd.MarkFlagRequired("file")
}
