// Seed command for the recipes CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Eve04lim/recipe-manager-app/internal/seed"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load sample recipes into an empty store",
	Long: `Seed adds a starter set of sample recipes. A store that already
holds recipes is left untouched.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		backend, svc, _, err := openStore()
		if err != nil {
			fmt.Fprintln(os.Stderr, "seed:", err)
			os.Exit(exitSysError)
		}
		defer backend.Close()

		added, err := seed.Load(cmd.Context(), svc)
		if err != nil {
			fmt.Fprintln(os.Stderr, "seed:", err)
			os.Exit(exitSysError)
		}
		if added == 0 {
			fmt.Println("Store is not empty; nothing seeded")
			return nil
		}
		fmt.Printf("Seeded %d sample recipes\n", added)
		return nil
	},
}
