// Version command for the recipes CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Eve04lim/recipe-manager-app/pkg/recipes"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the recipes version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("recipes", recipes.Version)
	},
}
