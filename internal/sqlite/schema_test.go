package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"path/filepath"
	"testing"
	"time"

	"github.com/Eve04lim/recipe-manager-app/pkg/types"
)

// buildV1Database writes a version-1 database file containing one recipe,
// the way the adapter would have written it before updated_at and the tag
// index existed.
func buildV1Database(t *testing.T, dir string) {
	t.Helper()

	db, err := sql.Open("sqlite", filepath.Join(dir, dbFileName))
	if err != nil {
		t.Fatalf("open raw db: %v", err)
	}
	defer db.Close()

	if _, err := db.Exec(createRecipesV1); err != nil {
		t.Fatalf("create v1 table: %v", err)
	}
	for _, ddl := range indexDDLV1 {
		if _, err := db.Exec(ddl); err != nil {
			t.Fatalf("create v1 index: %v", err)
		}
	}

	created := time.Date(2026, 1, 15, 9, 0, 0, 0, time.UTC)
	r := &types.Recipe{
		ID:         "v1-recipe",
		Title:      "味噌汁",
		Category:   types.CategorySoup,
		Difficulty: 1,
		Tags:       []string{"和食", "簡単"},
		CreatedAt:  created,
	}
	doc, err := json.Marshal(r)
	if err != nil {
		t.Fatalf("marshal document: %v", err)
	}
	if _, err := db.Exec(
		`INSERT INTO recipes (id, title, category, difficulty, created_at, document)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		r.ID, r.Title, string(r.Category), r.Difficulty,
		created.Format(timeLayout), string(doc)); err != nil {
		t.Fatalf("insert v1 row: %v", err)
	}
	if _, err := db.Exec(`PRAGMA user_version = 1`); err != nil {
		t.Fatalf("set user_version: %v", err)
	}
}

func TestMigrate_FromV1(t *testing.T) {
	dir := t.TempDir()
	buildV1Database(t, dir)

	b := NewBackend()
	if err := b.Open(types.Config{DataDir: dir}); err != nil {
		t.Fatalf("Open on v1 database failed: %v", err)
	}
	defer b.Close()

	st, err := b.Status()
	if err != nil {
		t.Fatalf("Status failed: %v", err)
	}
	if st.SchemaVersion != schemaVersion {
		t.Errorf("SchemaVersion = %d, want %d", st.SchemaVersion, schemaVersion)
	}
	if st.RecipeCount != 1 {
		t.Errorf("RecipeCount = %d, want 1", st.RecipeCount)
	}

	// updated_at back-filled from created_at.
	var updated string
	if err := b.db.QueryRow(
		`SELECT updated_at FROM recipes WHERE id = 'v1-recipe'`).Scan(&updated); err != nil {
		t.Fatalf("read updated_at: %v", err)
	}
	var created string
	if err := b.db.QueryRow(
		`SELECT created_at FROM recipes WHERE id = 'v1-recipe'`).Scan(&created); err != nil {
		t.Fatalf("read created_at: %v", err)
	}
	if updated != created {
		t.Errorf("updated_at = %q, want back-filled %q", updated, created)
	}

	// Tag index back-filled from the stored document.
	var tagCount int
	if err := b.db.QueryRow(
		`SELECT COUNT(*) FROM recipe_tags WHERE recipe_id = 'v1-recipe'`).Scan(&tagCount); err != nil {
		t.Fatalf("count tags: %v", err)
	}
	if tagCount != 2 {
		t.Errorf("tag index holds %d entries, want 2", tagCount)
	}

	// The record is readable through the table.
	table, err := b.Recipes()
	if err != nil {
		t.Fatal(err)
	}
	got, err := table.Get(context.Background(), "v1-recipe")
	if err != nil {
		t.Fatalf("Get after migration failed: %v", err)
	}
	if got.Title != "味噌汁" {
		t.Errorf("Title = %q, want 味噌汁", got.Title)
	}
}

func TestMigrate_NewerDatabaseIsStructural(t *testing.T) {
	dir := t.TempDir()
	db, err := sql.Open("sqlite", filepath.Join(dir, dbFileName))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := db.Exec(`PRAGMA user_version = 99`); err != nil {
		t.Fatal(err)
	}

	err = migrate(db)
	db.Close()
	if !types.IsStructural(err) {
		t.Errorf("expected structural error for newer database, got %v", err)
	}
}

func TestOpen_RecoversFromWrongSchema(t *testing.T) {
	dir := t.TempDir()

	// A recipes table with none of the expected columns, claiming to be
	// current. migrate is a no-op and verify fails structurally.
	db, err := sql.Open("sqlite", filepath.Join(dir, dbFileName))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := db.Exec(`CREATE TABLE recipes (wrong TEXT)`); err != nil {
		t.Fatal(err)
	}
	if _, err := db.Exec(`PRAGMA user_version = 3`); err != nil {
		t.Fatal(err)
	}
	db.Close()

	b := NewBackend()
	if err := b.Open(types.Config{DataDir: dir}); err != nil {
		t.Fatalf("Open should recover from wrong schema, got %v", err)
	}
	defer b.Close()

	st, err := b.Status()
	if err != nil {
		t.Fatalf("Status after recovery failed: %v", err)
	}
	if st.SchemaVersion != schemaVersion {
		t.Errorf("SchemaVersion = %d, want %d", st.SchemaVersion, schemaVersion)
	}

	// The recovered store is usable.
	table, err := b.Recipes()
	if err != nil {
		t.Fatal(err)
	}
	r := testRecipe("post-recovery", "recovered", time.Now().UTC())
	if err := table.Put(context.Background(), r); err != nil {
		t.Errorf("Put after recovery failed: %v", err)
	}
}

func TestOpen_RecoveryKeepsReadableDocuments(t *testing.T) {
	dir := t.TempDir()

	// A v1-shaped database whose user_version claims v3: the tag index is
	// missing, verify fails, and recovery must reimport the documents.
	buildV1Database(t, dir)
	db, err := sql.Open("sqlite", filepath.Join(dir, dbFileName))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := db.Exec(`PRAGMA user_version = 3`); err != nil {
		t.Fatal(err)
	}
	db.Close()

	b := NewBackend()
	if err := b.Open(types.Config{DataDir: dir}); err != nil {
		t.Fatalf("Open should recover, got %v", err)
	}
	defer b.Close()

	table, err := b.Recipes()
	if err != nil {
		t.Fatal(err)
	}
	got, err := table.Get(context.Background(), "v1-recipe")
	if err != nil {
		t.Fatalf("salvaged document lost: %v", err)
	}
	if got.Title != "味噌汁" {
		t.Errorf("Title = %q, want 味噌汁", got.Title)
	}

	// Tag index rebuilt from the reimported document.
	var tagCount int
	if err := b.db.QueryRow(
		`SELECT COUNT(*) FROM recipe_tags WHERE recipe_id = 'v1-recipe'`).Scan(&tagCount); err != nil {
		t.Fatal(err)
	}
	if tagCount != 2 {
		t.Errorf("tag index holds %d entries, want 2", tagCount)
	}
}
