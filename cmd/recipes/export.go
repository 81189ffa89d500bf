// Export command for the recipes CLI.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/Eve04lim/recipe-manager-app/internal/service"
)

var exportOut string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export all recipes as a backup file",
	Long: `Export writes the full collection as a JSON backup envelope. With
no --out the file is named recipes-backup-<date>.json in the current
directory; "-" writes to stdout.

Example:
  recipes export
  recipes export --out backup.json
  recipes export --out - | jq .recipeCount`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		backend, svc, _, err := openStore()
		if err != nil {
			fmt.Fprintln(os.Stderr, "export:", err)
			os.Exit(exitSysError)
		}
		defer backend.Close()

		backup, err := svc.ExportBackup(cmd.Context())
		if err != nil {
			fmt.Fprintln(os.Stderr, "export:", err)
			os.Exit(exitSysError)
		}

		out, err := json.MarshalIndent(backup, "", "  ")
		if err != nil {
			fmt.Fprintln(os.Stderr, "export: marshal:", err)
			os.Exit(exitSysError)
		}

		if exportOut == "-" {
			fmt.Println(string(out))
			return nil
		}

		path := exportOut
		if path == "" {
			path = service.BackupFilename(time.Now())
		}
		if err := os.WriteFile(path, append(out, '\n'), 0o644); err != nil {
			fmt.Fprintln(os.Stderr, "export:", err)
			os.Exit(exitSysError)
		}
		fmt.Printf("Exported %d recipes to %s\n", backup.RecipeCount, path)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVar(&exportOut, "out", "", "output file (default recipes-backup-<date>.json, \"-\" for stdout)")
}
