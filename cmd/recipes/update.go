// Update command for the recipes CLI.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Eve04lim/recipe-manager-app/pkg/types"
)

var updateFile string

var updateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update a recipe from a JSON patch",
	Long: `Update applies a partial patch to a recipe. Fields absent from the
patch are left unchanged; ids, timestamps, and the cook count cannot be
patched. Use "-" to read the patch from stdin.

Example:
  recipes update abc123 --file patch.json
  echo '{"rating": 5}' | recipes update abc123 --file -`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := readFileOrStdin(updateFile)
		if err != nil {
			fmt.Fprintln(os.Stderr, "update:", err)
			os.Exit(exitUserError)
		}

		var patch types.RecipePatch
		if err := json.Unmarshal(data, &patch); err != nil {
			fmt.Fprintln(os.Stderr, "update: parse patch:", err)
			os.Exit(exitUserError)
		}
		if patch.IsZero() {
			fmt.Fprintln(os.Stderr, "update: patch changes nothing")
			os.Exit(exitUserError)
		}

		backend, _, client, err := openStore()
		if err != nil {
			fmt.Fprintln(os.Stderr, "update:", err)
			os.Exit(exitSysError)
		}
		defer backend.Close()

		updated, err := client.UpdateRecipe(cmd.Context(), args[0], patch)
		if err != nil {
			if isNotFound(err) {
				fmt.Fprintf(os.Stderr, "recipe %q not found\n", args[0])
				os.Exit(exitUserError)
			}
			fmt.Fprintln(os.Stderr, "update:", err)
			os.Exit(exitSysError)
		}

		if flagJSON {
			return printJSON(updated)
		}
		fmt.Printf("Updated %q: %s\n", updated.Title, updated.ID)
		return nil
	},
}

func init() {
	updateCmd.Flags().StringVar(&updateFile, "file", "", "recipe patch JSON file (\"-\" for stdin)")
	updateCmd.MarkFlagRequired("file")
}
