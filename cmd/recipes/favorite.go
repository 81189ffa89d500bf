// Favorite command for the recipes CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Eve04lim/recipe-manager-app/pkg/types"
)

var favoriteCmd = &cobra.Command{
	Use:   "favorite <id>",
	Short: "Toggle a recipe's favorite flag",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		backend, _, client, err := openStore()
		if err != nil {
			fmt.Fprintln(os.Stderr, "favorite:", err)
			os.Exit(exitSysError)
		}
		defer backend.Close()

		r, err := client.Recipe(cmd.Context(), args[0])
		if err != nil {
			if isNotFound(err) {
				fmt.Fprintf(os.Stderr, "recipe %q not found\n", args[0])
				os.Exit(exitUserError)
			}
			fmt.Fprintln(os.Stderr, "favorite:", err)
			os.Exit(exitSysError)
		}

		next := !r.IsFavorite
		updated, err := client.UpdateRecipe(cmd.Context(), args[0], types.RecipePatch{
			IsFavorite: &next,
		})
		if err != nil {
			fmt.Fprintln(os.Stderr, "favorite:", err)
			os.Exit(exitSysError)
		}

		if flagJSON {
			return printJSON(updated)
		}
		if updated.IsFavorite {
			fmt.Printf("Favorited %q\n", updated.Title)
		} else {
			fmt.Printf("Unfavorited %q\n", updated.Title)
		}
		return nil
	},
}
