// Shared helpers for recipes CLI commands.
package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/Eve04lim/recipe-manager-app/internal/cache"
	"github.com/Eve04lim/recipe-manager-app/internal/service"
	"github.com/Eve04lim/recipe-manager-app/internal/sqlite"
	"github.com/Eve04lim/recipe-manager-app/pkg/types"
)

// openStore resolves the data directory, opens the SQLite backend, and
// stacks the store service and query cache on top. The caller must defer
// backend.Close().
func openStore() (*sqlite.Backend, *service.Service, *cache.Client, error) {
	dataDir, err := resolveDataDir()
	if err != nil {
		return nil, nil, nil, fmt.Errorf("resolve data dir: %w", err)
	}

	cfg := types.Config{
		DataDir:     dataDir,
		Environment: configEnvironment,
	}

	backend := sqlite.NewBackend()
	if err := backend.Open(cfg); err != nil {
		return nil, nil, nil, fmt.Errorf("open store: %w", err)
	}

	table, err := backend.Recipes()
	if err != nil {
		backend.Close()
		return nil, nil, nil, err
	}

	svc := service.New(table)
	return backend, svc, cache.New(svc), nil
}

// printJSON writes v as indented JSON to stdout.
func printJSON(v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal JSON: %w", err)
	}
	fmt.Println(string(out))
	return nil
}

// printRecipe writes a human-readable recipe card.
func printRecipe(r *types.Recipe) {
	fmt.Printf("%s  [%s]\n", r.Title, r.Category)
	fmt.Printf("  id:          %s\n", r.ID)
	if r.Description != "" {
		fmt.Printf("  description: %s\n", r.Description)
	}
	fmt.Printf("  servings:    %d\n", r.Servings)
	fmt.Printf("  time:        prep %dmin, cook %dmin\n", r.PrepTime, r.CookTime)
	fmt.Printf("  difficulty:  %d/5\n", r.Difficulty)
	if r.Rating > 0 {
		fmt.Printf("  rating:      %d/5\n", r.Rating)
	}
	if r.IsFavorite {
		fmt.Println("  favorite:    yes")
	}
	if len(r.Tags) > 0 {
		fmt.Printf("  tags:        %s\n", strings.Join(r.Tags, ", "))
	}
	fmt.Printf("  cooked:      %d times\n", r.CookCount)
	if r.LastCooked != nil {
		fmt.Printf("  last cooked: %s\n", r.LastCooked.Format("2006-01-02"))
	}
	fmt.Println("  ingredients:")
	for _, ing := range r.Ingredients {
		line := fmt.Sprintf("    - %s %g%s", ing.Name, ing.Amount, ing.Unit)
		if ing.Notes != "" {
			line += " (" + ing.Notes + ")"
		}
		fmt.Println(line)
	}
	fmt.Println("  steps:")
	for _, st := range r.Steps {
		line := fmt.Sprintf("    %d. %s", st.StepNumber, st.Description)
		if st.Timer > 0 {
			line += fmt.Sprintf(" [%dmin]", st.Timer)
		}
		fmt.Println(line)
	}
	if r.Notes != "" {
		fmt.Printf("  notes:       %s\n", r.Notes)
	}
}

// printRecipeList writes one line per recipe.
func printRecipeList(list []*types.Recipe) {
	for _, r := range list {
		marker := " "
		if r.IsFavorite {
			marker = "*"
		}
		fmt.Printf("%s %-36s  %-24s [%s] difficulty %d/5, %dmin\n",
			marker, r.ID, r.Title, r.Category, r.Difficulty, r.PrepTime+r.CookTime)
	}
}

// readFileOrStdin reads the named file, or stdin when path is "-".
func readFileOrStdin(path string) ([]byte, error) {
	if path == "-" {
		return os.ReadFile("/dev/stdin")
	}
	return os.ReadFile(path)
}

// isNotFound reports whether the error wraps ErrNotFound.
func isNotFound(err error) bool {
	return errors.Is(err, types.ErrNotFound)
}

// reportValidation prints each field problem on its own line when err is a
// validation failure, and returns whether it was one.
func reportValidation(err error) bool {
	verrs, ok := types.AsValidation(err)
	if !ok {
		return false
	}
	fmt.Fprintln(os.Stderr, "invalid recipe:")
	for _, fe := range verrs {
		fmt.Fprintf(os.Stderr, "  - %s %s\n", fe.Field, fe.Message)
	}
	return true
}
