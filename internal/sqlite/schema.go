// Package sqlite implements the SQLite storage adapter for the recipe
// manager. It owns the versioned schema, in-place migrations, and the
// export-recreate-reimport recovery path for structural failures.
package sqlite

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/Eve04lim/recipe-manager-app/pkg/types"
)

// schemaVersion is the current PRAGMA user_version. Each version only adds
// fields and indexes; upgrade steps back-fill newly required columns so
// records written under an older version stay valid.
const schemaVersion = 3

// Version 1: base recipes table plus single-column indexes.
const createRecipesV1 = `CREATE TABLE recipes (
    id TEXT PRIMARY KEY,
    title TEXT NOT NULL,
    category TEXT NOT NULL,
    difficulty INTEGER NOT NULL,
    is_favorite INTEGER NOT NULL DEFAULT 0,
    rating INTEGER NOT NULL DEFAULT 0,
    prep_time INTEGER NOT NULL DEFAULT 0,
    cook_time INTEGER NOT NULL DEFAULT 0,
    cook_count INTEGER NOT NULL DEFAULT 0,
    created_at TEXT NOT NULL,
    last_cooked TEXT,
    document TEXT NOT NULL
);`

var indexDDLV1 = []string{
	`CREATE INDEX idx_recipes_title ON recipes(title);`,
	`CREATE INDEX idx_recipes_category ON recipes(category);`,
	`CREATE INDEX idx_recipes_difficulty ON recipes(difficulty);`,
	`CREATE INDEX idx_recipes_created_at ON recipes(created_at);`,
	`CREATE INDEX idx_recipes_last_cooked ON recipes(last_cooked);`,
	`CREATE INDEX idx_recipes_cook_count ON recipes(cook_count);`,
	`CREATE INDEX idx_recipes_is_favorite ON recipes(is_favorite);`,
}

// Version 2: updated_at column, back-filled from created_at.
var migrateDDLV2 = []string{
	`ALTER TABLE recipes ADD COLUMN updated_at TEXT;`,
	`UPDATE recipes SET updated_at = created_at WHERE updated_at IS NULL;`,
	`CREATE INDEX idx_recipes_updated_at ON recipes(updated_at);`,
}

// Version 3: multi-valued tag index, back-filled from stored documents.
var migrateDDLV3 = []string{
	`CREATE TABLE recipe_tags (
    recipe_id TEXT NOT NULL,
    tag TEXT NOT NULL,
    PRIMARY KEY (recipe_id, tag),
    FOREIGN KEY (recipe_id) REFERENCES recipes(id) ON DELETE CASCADE
);`,
	`CREATE INDEX idx_recipe_tags_tag ON recipe_tags(tag);`,
}

// migration is one schema upgrade step. Steps run inside a transaction and
// bump user_version on commit.
type migration struct {
	version int
	apply   func(tx *sql.Tx) error
}

var migrations = []migration{
	{1, applyV1},
	{2, applyV2},
	{3, applyV3},
}

func applyV1(tx *sql.Tx) error {
	if _, err := tx.Exec(createRecipesV1); err != nil {
		return err
	}
	for _, ddl := range indexDDLV1 {
		if _, err := tx.Exec(ddl); err != nil {
			return err
		}
	}
	return nil
}

func applyV2(tx *sql.Tx) error {
	for _, ddl := range migrateDDLV2 {
		if _, err := tx.Exec(ddl); err != nil {
			return err
		}
	}
	return nil
}

func applyV3(tx *sql.Tx) error {
	for _, ddl := range migrateDDLV3 {
		if _, err := tx.Exec(ddl); err != nil {
			return err
		}
	}
	// Back-fill the tag index from documents written under older versions.
	rows, err := tx.Query(`SELECT id, document FROM recipes`)
	if err != nil {
		return err
	}
	defer rows.Close()

	type tagged struct {
		id   string
		tags []string
	}
	var all []tagged
	for rows.Next() {
		var id, doc string
		if err := rows.Scan(&id, &doc); err != nil {
			return err
		}
		var r types.Recipe
		if err := json.Unmarshal([]byte(doc), &r); err != nil {
			return fmt.Errorf("parsing document %s: %w", id, err)
		}
		all = append(all, tagged{id: id, tags: r.Tags})
	}
	if err := rows.Err(); err != nil {
		return err
	}
	for _, t := range all {
		for _, tag := range t.tags {
			if _, err := tx.Exec(
				`INSERT OR IGNORE INTO recipe_tags (recipe_id, tag) VALUES (?, ?)`,
				t.id, tag); err != nil {
				return err
			}
		}
	}
	return nil
}

// migrate brings the database to schemaVersion, applying each pending
// upgrade step in its own transaction. A database newer than the code is a
// structural error.
func migrate(db *sql.DB) error {
	var current int
	if err := db.QueryRow(`PRAGMA user_version`).Scan(&current); err != nil {
		return types.NewStructuralError("migrate", err)
	}
	if current > schemaVersion {
		return types.NewStructuralError("migrate",
			fmt.Errorf("database version %d is newer than supported version %d", current, schemaVersion))
	}
	for _, m := range migrations {
		if m.version <= current {
			continue
		}
		if err := applyMigration(db, m); err != nil {
			return err
		}
	}
	return nil
}

func applyMigration(db *sql.DB, m migration) error {
	tx, err := db.Begin()
	if err != nil {
		return types.NewStoreError("migrate", err)
	}
	defer tx.Rollback()

	if err := m.apply(tx); err != nil {
		return classify(fmt.Sprintf("migrate to v%d", m.version), err)
	}
	if _, err := tx.Exec(fmt.Sprintf(`PRAGMA user_version = %d`, m.version)); err != nil {
		return types.NewStoreError("migrate", err)
	}
	return tx.Commit()
}

// verify probes the schema the adapter expects under the current version.
// A failing probe is the structural signal that triggers recovery.
func verify(db *sql.DB) error {
	probes := []string{
		`SELECT id, title, category, difficulty, is_favorite, rating,
		        prep_time, cook_time, cook_count, created_at, updated_at,
		        last_cooked, document
		 FROM recipes LIMIT 1`,
		`SELECT recipe_id, tag FROM recipe_tags LIMIT 1`,
	}
	for _, q := range probes {
		rows, err := db.Query(q)
		if err != nil {
			return types.NewStructuralError("verify", err)
		}
		rows.Close()
	}
	return nil
}
