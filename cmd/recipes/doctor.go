// Doctor commands for the recipes CLI: store inspection and maintenance.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Eve04lim/recipe-manager-app/internal/seed"
	"github.com/Eve04lim/recipe-manager-app/pkg/types"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Inspect and repair the store (development only)",
	Long: `Doctor groups the maintenance entry points: status inspection,
integrity validation, forced recreation, and full reset. Every subcommand
requires environment: development in config.yaml; none is reachable in a
production configuration.`,
}

var doctorStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show database path, schema version, and record count",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		requireDevelopment("status")

		backend, _, _, err := openStore()
		if err != nil {
			fmt.Fprintln(os.Stderr, "doctor:", err)
			os.Exit(exitSysError)
		}
		defer backend.Close()

		st, err := backend.Status()
		if err != nil {
			fmt.Fprintln(os.Stderr, "doctor:", err)
			os.Exit(exitSysError)
		}

		if flagJSON {
			return printJSON(st)
		}
		fmt.Println("Database:      ", st.Path)
		fmt.Println("Schema version:", st.SchemaVersion)
		fmt.Println("Recipes:       ", st.RecipeCount)
		return nil
	},
}

var doctorValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check every stored recipe for integrity problems",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		requireDevelopment("validate")

		backend, svc, _, err := openStore()
		if err != nil {
			fmt.Fprintln(os.Stderr, "doctor:", err)
			os.Exit(exitSysError)
		}
		defer backend.Close()

		report, err := svc.ValidateIntegrity(cmd.Context())
		if err != nil {
			fmt.Fprintln(os.Stderr, "doctor:", err)
			os.Exit(exitSysError)
		}

		if flagJSON {
			return printJSON(report)
		}
		if report.OK {
			fmt.Printf("Scanned %d recipes, no problems found\n", report.Scanned)
			return nil
		}
		fmt.Printf("Scanned %d recipes, %d problems:\n", report.Scanned, len(report.Findings))
		for _, finding := range report.Findings {
			fmt.Println("  -", finding)
		}
		os.Exit(exitUserError)
		return nil
	},
}

var doctorRecreateCmd = &cobra.Command{
	Use:   "recreate",
	Short: "Rebuild the database from readable records (development only)",
	Long: `Recreate exports every readable record, drops and rebuilds the
schema at the current version, and reimports. Records that cannot be
read are lost. Requires environment: development in config.yaml.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		requireDevelopment("recreate")

		backend, _, _, err := openStore()
		if err != nil {
			fmt.Fprintln(os.Stderr, "doctor:", err)
			os.Exit(exitSysError)
		}
		defer backend.Close()

		if err := backend.Recreate(); err != nil {
			fmt.Fprintln(os.Stderr, "doctor:", err)
			os.Exit(exitSysError)
		}
		fmt.Println("Database recreated")
		return nil
	},
}

var doctorResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Clear the store and reload sample recipes (development only)",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		requireDevelopment("reset")

		backend, svc, _, err := openStore()
		if err != nil {
			fmt.Fprintln(os.Stderr, "doctor:", err)
			os.Exit(exitSysError)
		}
		defer backend.Close()

		if err := svc.Clear(cmd.Context()); err != nil {
			fmt.Fprintln(os.Stderr, "doctor:", err)
			os.Exit(exitSysError)
		}
		added, err := seed.Load(cmd.Context(), svc)
		if err != nil {
			fmt.Fprintln(os.Stderr, "doctor:", err)
			os.Exit(exitSysError)
		}
		fmt.Printf("Store reset with %d sample recipes\n", added)
		return nil
	},
}

// requireDevelopment exits unless config.yaml sets environment: development.
func requireDevelopment(name string) {
	cfg := types.Config{Environment: configEnvironment}
	if !cfg.IsDevelopment() {
		fmt.Fprintf(os.Stderr, "doctor %s requires environment: development in config.yaml\n", name)
		os.Exit(exitUserError)
	}
}

func init() {
	doctorCmd.AddCommand(doctorStatusCmd)
	doctorCmd.AddCommand(doctorValidateCmd)
	doctorCmd.AddCommand(doctorRecreateCmd)
	doctorCmd.AddCommand(doctorResetCmd)
}
