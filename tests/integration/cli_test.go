// CLI integration tests for the recipes binary: initialization, the recipe
// lifecycle, and validation at the command boundary.
package integration

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

// TestMain builds the recipes binary once before running tests.
func TestMain(m *testing.M) {
	projectRoot, err := FindProjectRoot()
	if err != nil {
		SetBuildErr(err)
		os.Exit(1)
	}

	tmpDir, err := os.MkdirTemp("", "recipes-test-*")
	if err != nil {
		SetBuildErr(err)
		os.Exit(1)
	}
	binPath := filepath.Join(tmpDir, "recipes")
	SetRecipesBin(binPath)

	cmd := exec.Command("go", "build", "-o", binPath, "./cmd/recipes")
	cmd.Dir = projectRoot
	if output, err := cmd.CombinedOutput(); err != nil {
		SetBuildErr(&BuildError{
			Err:    err,
			Output: string(output),
		})
		os.Exit(1)
	}

	code := m.Run()

	os.RemoveAll(tmpDir)

	os.Exit(code)
}

// TestInitialize verifies store initialization creates the database file.
func TestInitialize(t *testing.T) {
	env := NewTestEnv(t)

	result := env.MustRunRecipes("init")
	if result.Stdout == "" {
		t.Error("expected init output message")
	}

	dbFile := filepath.Join(env.DataDir, "recipes.db")
	if _, err := os.Stat(dbFile); err != nil {
		t.Errorf("recipes.db not created: %v", err)
	}
}

// TestRecipeLifecycle walks a recipe through add, get, cook, favorite, and
// delete.
func TestRecipeLifecycle(t *testing.T) {
	env := NewTestEnv(t)
	env.MustRunRecipes("init")

	draftPath := env.WriteDraftFile("curry.json", draftJSON)

	// Add
	result := env.MustRunRecipes("add", "--file", draftPath, "--json")
	created := ParseJSON[Recipe](t, result.Stdout)
	if created.ID == "" {
		t.Fatal("recipe ID not generated")
	}
	if created.Title != "チキンカレー" {
		t.Errorf("title = %q, want チキンカレー", created.Title)
	}
	if len(created.Steps) != 2 || created.Steps[1].StepNumber != 2 {
		t.Errorf("steps not numbered: %+v", created.Steps)
	}

	// Get
	result = env.MustRunRecipes("get", created.ID, "--json")
	got := ParseJSON[Recipe](t, result.Stdout)
	if got.ID != created.ID {
		t.Errorf("get returned %q, want %q", got.ID, created.ID)
	}

	// Cook twice
	env.MustRunRecipes("cook", created.ID)
	result = env.MustRunRecipes("cook", created.ID, "--json")
	cooked := ParseJSON[Recipe](t, result.Stdout)
	if cooked.CookCount != 2 {
		t.Errorf("cook count = %d, want 2", cooked.CookCount)
	}
	if cooked.LastCooked == nil {
		t.Error("last cooked not stamped")
	}

	// Favorite toggle
	result = env.MustRunRecipes("favorite", created.ID, "--json")
	fav := ParseJSON[Recipe](t, result.Stdout)
	if !fav.IsFavorite {
		t.Error("favorite toggle did not set the flag")
	}

	// Delete, then get fails with a user error
	env.MustRunRecipes("delete", created.ID)
	result = env.RunRecipes("get", created.ID)
	if result.ExitCode != 1 {
		t.Errorf("get after delete exit code = %d, want 1", result.ExitCode)
	}
}

// TestAddRejectsInvalidDraft verifies validation findings are reported and
// nothing is stored.
func TestAddRejectsInvalidDraft(t *testing.T) {
	env := NewTestEnv(t)
	env.MustRunRecipes("init")

	draftPath := env.WriteDraftFile("bad.json",
		`{"title":"","servings":0,"difficulty":9,"category":"宇宙食"}`)

	result := env.RunRecipes("add", "--file", draftPath)
	if result.ExitCode != 1 {
		t.Errorf("exit code = %d, want 1", result.ExitCode)
	}
	if !strings.Contains(result.Stderr, "title") {
		t.Errorf("stderr should name the title finding:\n%s", result.Stderr)
	}

	listResult := env.MustRunRecipes("list", "--json")
	recipes := ParseJSON[[]Recipe](t, listResult.Stdout)
	if len(recipes) != 0 {
		t.Errorf("store holds %d recipes after rejected add, want 0", len(recipes))
	}
}

// TestListFiltersAndSort verifies the view flags on list.
func TestListFiltersAndSort(t *testing.T) {
	env := NewTestEnv(t)
	env.MustRunRecipes("init")
	env.MustRunRecipes("seed")

	// Category filter
	result := env.MustRunRecipes("list", "--category", "サラダ", "--json")
	salads := ParseJSON[[]Recipe](t, result.Stdout)
	if len(salads) != 1 {
		t.Fatalf("salad count = %d, want 1", len(salads))
	}
	if salads[0].Title != "シーザーサラダ" {
		t.Errorf("salad = %q, want シーザーサラダ", salads[0].Title)
	}

	// Favorites only
	result = env.MustRunRecipes("list", "--favorites", "--json")
	favs := ParseJSON[[]Recipe](t, result.Stdout)
	for _, r := range favs {
		if !r.IsFavorite {
			t.Errorf("%q in favorites view without the flag", r.Title)
		}
	}

	// Tag filter is any-match
	result = env.MustRunRecipes("list", "--tags", "ヘルシー", "--json")
	healthy := ParseJSON[[]Recipe](t, result.Stdout)
	if len(healthy) == 0 {
		t.Error("tag filter returned nothing")
	}

	// Rating sort descending puts a five-star recipe first
	result = env.MustRunRecipes("list", "--sort", "rating", "--desc", "--json")
	sorted := ParseJSON[[]Recipe](t, result.Stdout)
	if len(sorted) == 0 || sorted[0].Rating != 5 {
		t.Errorf("descending rating sort starts with rating %d, want 5", sorted[0].Rating)
	}

	// Unknown sort field is a user error
	result = env.RunRecipes("list", "--sort", "flavor")
	if result.ExitCode != 1 {
		t.Errorf("unknown sort field exit code = %d, want 1", result.ExitCode)
	}
}

// TestSearch verifies free-text search over the seeded collection.
func TestSearch(t *testing.T) {
	env := NewTestEnv(t)
	env.MustRunRecipes("init")
	env.MustRunRecipes("seed")

	result := env.MustRunRecipes("search", "カレー", "--json")
	hits := ParseJSON[[]Recipe](t, result.Stdout)
	if len(hits) != 1 {
		t.Fatalf("search hits = %d, want 1", len(hits))
	}
	if hits[0].Title != "チキンカレー" {
		t.Errorf("hit = %q, want チキンカレー", hits[0].Title)
	}

	// Ingredient names are searched too.
	result = env.MustRunRecipes("search", "ほうれん草", "--json")
	hits = ParseJSON[[]Recipe](t, result.Stdout)
	if len(hits) != 1 {
		t.Errorf("ingredient search hits = %d, want 1", len(hits))
	}
}

// TestDoctorUnreachableInProduction verifies every doctor subcommand is
// refused when config.yaml sets environment: production.
func TestDoctorUnreachableInProduction(t *testing.T) {
	env := NewTestEnv(t)
	env.MustRunRecipes("init")

	configContent := "data_dir: " + env.DataDir + "\nenvironment: production\n"
	if err := os.WriteFile(filepath.Join(env.Config, "config.yaml"), []byte(configContent), 0644); err != nil {
		t.Fatalf("failed to rewrite config: %v", err)
	}

	for _, sub := range []string{"status", "validate", "recreate", "reset"} {
		result := env.RunRecipes("doctor", sub)
		if result.ExitCode != 1 {
			t.Errorf("doctor %s exit code = %d in production, want 1", sub, result.ExitCode)
		}
		if !strings.Contains(result.Stderr, "development") {
			t.Errorf("doctor %s stderr should point at the environment gate:\n%s", sub, result.Stderr)
		}
	}
}

// TestDoctorStatusInDevelopment verifies the status inspection works under
// the development environment the test config sets by default.
func TestDoctorStatusInDevelopment(t *testing.T) {
	env := NewTestEnv(t)
	env.MustRunRecipes("init")

	result := env.MustRunRecipes("doctor", "status")
	if !strings.Contains(result.Stdout, "Schema version") {
		t.Errorf("doctor status output missing schema version:\n%s", result.Stdout)
	}
}

// TestSeedIsIdempotent verifies a second seed leaves the store untouched.
func TestSeedIsIdempotent(t *testing.T) {
	env := NewTestEnv(t)
	env.MustRunRecipes("init")
	env.MustRunRecipes("seed")

	result := env.MustRunRecipes("seed")
	if !strings.Contains(result.Stdout, "nothing seeded") {
		t.Errorf("second seed output = %q", result.Stdout)
	}

	listResult := env.MustRunRecipes("list", "--json")
	recipes := ParseJSON[[]Recipe](t, listResult.Stdout)
	if len(recipes) != 5 {
		t.Errorf("recipe count = %d, want 5", len(recipes))
	}
}
