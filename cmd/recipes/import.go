// Import command for the recipes CLI.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Eve04lim/recipe-manager-app/internal/service"
	"github.com/Eve04lim/recipe-manager-app/pkg/types"
)

var importReplace bool

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import recipes from a backup or recipe array",
	Long: `Import loads recipes from a JSON file: either a backup envelope or
a bare array of recipes. By default records merge by id; --replace wipes
the collection first, as one atomic operation. Use "-" to read stdin.

Example:
  recipes import recipes-backup-2026-08-29.json
  recipes import --replace backup.json`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := readFileOrStdin(args[0])
		if err != nil {
			fmt.Fprintln(os.Stderr, "import:", err)
			os.Exit(exitUserError)
		}

		recipes, err := service.ParseImport(data)
		if err != nil {
			if errors.Is(err, types.ErrImportFormat) {
				fmt.Fprintln(os.Stderr, "import:", err)
				os.Exit(exitUserError)
			}
			fmt.Fprintln(os.Stderr, "import:", err)
			os.Exit(exitSysError)
		}

		backend, _, client, err := openStore()
		if err != nil {
			fmt.Fprintln(os.Stderr, "import:", err)
			os.Exit(exitSysError)
		}
		defer backend.Close()

		if err := client.ImportBackup(cmd.Context(), recipes, importReplace); err != nil {
			fmt.Fprintln(os.Stderr, "import:", err)
			os.Exit(exitSysError)
		}

		if importReplace {
			fmt.Printf("Restored %d recipes\n", len(recipes))
		} else {
			fmt.Printf("Merged %d recipes\n", len(recipes))
		}
		return nil
	},
}

func init() {
	importCmd.Flags().BoolVar(&importReplace, "replace", false, "replace the collection instead of merging")
}
