package sqlite

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	_ "modernc.org/sqlite"

	"github.com/Eve04lim/recipe-manager-app/pkg/types"
)

// dbFileName is the database file created inside the data directory.
const dbFileName = "recipes.db"

// Backend is the SQLite storage backend. Open and Close are idempotent;
// Recipes serves the types.RecipeTable port while the backend is open. A
// structural failure while opening triggers one in-place migration attempt;
// if that fails the store
// is recreated from whatever documents remain readable. Recreation is the
// only path that can lose data.
type Backend struct {
	mu     sync.RWMutex
	open   bool
	config types.Config
	db     *sql.DB
	table  *recipeTable
}

// NewBackend creates an unopened backend; call Open with a Config.
func NewBackend() *Backend {
	return &Backend{}
}

// Open initializes the backend. Idempotent: opening an already-open backend
// is a no-op. Creates DataDir when missing.
func (b *Backend) Open(config types.Config) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.open {
		return nil
	}
	if err := config.Validate(); err != nil {
		return err
	}

	dataDir := config.DataDir
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return types.NewStoreError("open", err)
	}

	db, err := openAndMigrate(filepath.Join(dataDir, dbFileName))
	if err != nil {
		return err
	}

	b.db = db
	b.config = config
	b.open = true
	b.table = &recipeTable{backend: b}
	return nil
}

// openAndMigrate opens the database file, migrates it to the current
// version, and verifies the expected schema. On a structural failure it
// makes exactly one recovery attempt before giving up.
func openAndMigrate(dbPath string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, types.NewStoreError("open", err)
	}
	if _, err := db.Exec(`PRAGMA foreign_keys = ON`); err != nil {
		db.Close()
		return nil, classify("open", err)
	}

	err = migrate(db)
	if err == nil {
		err = verify(db)
	}
	if err == nil {
		return db, nil
	}
	if !types.IsStructural(err) {
		db.Close()
		return nil, err
	}

	// Structural mismatch: recreate from readable documents.
	if rerr := recreate(db); rerr != nil {
		db.Close()
		return nil, fmt.Errorf("recovery failed: %w (after %v)", rerr, err)
	}
	if verr := verify(db); verr != nil {
		db.Close()
		return nil, verr
	}
	return db, nil
}

// recreate rebuilds the store at the current version: export whatever
// documents are readable, drop everything, re-run the migrations, and
// reimport. Documents that cannot be read before the drop are lost.
func recreate(db *sql.DB) error {
	docs := salvageDocuments(db)

	drops := []string{
		`DROP TABLE IF EXISTS recipe_tags;`,
		`DROP TABLE IF EXISTS recipes;`,
	}
	for _, ddl := range drops {
		if _, err := db.Exec(ddl); err != nil {
			return types.NewStoreError("recreate", err)
		}
	}
	if _, err := db.Exec(`PRAGMA user_version = 0`); err != nil {
		return types.NewStoreError("recreate", err)
	}
	if err := migrate(db); err != nil {
		return err
	}

	for _, r := range docs {
		if err := upsertRecipe(db, r); err != nil {
			return err
		}
	}
	return nil
}

// salvageDocuments reads back every parseable document before a recreate.
// Best effort: any error yields whatever was collected so far.
func salvageDocuments(db *sql.DB) []*types.Recipe {
	rows, err := db.Query(`SELECT document FROM recipes`)
	if err != nil {
		return nil
	}
	defer rows.Close()

	var out []*types.Recipe
	for rows.Next() {
		var doc string
		if err := rows.Scan(&doc); err != nil {
			return out
		}
		var r types.Recipe
		if err := json.Unmarshal([]byte(doc), &r); err != nil {
			continue
		}
		out = append(out, &r)
	}
	return out
}

// Close releases the database handle. Idempotent. After Close, table
// operations return ErrStoreClosed.
func (b *Backend) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.open {
		return nil
	}
	if b.db != nil {
		if err := b.db.Close(); err != nil {
			return types.NewStoreError("close", err)
		}
		b.db = nil
	}
	b.open = false
	b.table = nil
	return nil
}

// Recipes returns the recipe table accessor.
func (b *Backend) Recipes() (types.RecipeTable, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if !b.open {
		return nil, types.ErrStoreClosed
	}
	return b.table, nil
}

// Status describes the open store for maintenance inspection.
type Status struct {
	Path          string `json:"path"`
	SchemaVersion int    `json:"schemaVersion"`
	RecipeCount   int    `json:"recipeCount"`
}

// Status reports the database path, schema version, and record count.
func (b *Backend) Status() (*Status, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if !b.open {
		return nil, types.ErrStoreClosed
	}
	st := &Status{Path: filepath.Join(b.config.DataDir, dbFileName)}
	if err := b.db.QueryRow(`PRAGMA user_version`).Scan(&st.SchemaVersion); err != nil {
		return nil, classify("status", err)
	}
	if err := b.db.QueryRow(`SELECT COUNT(*) FROM recipes`).Scan(&st.RecipeCount); err != nil {
		return nil, classify("status", err)
	}
	return st, nil
}

// Recreate forces the export-drop-reimport rebuild. Maintenance entry
// point; data unreadable at export time is lost.
func (b *Backend) Recreate() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.open {
		return types.ErrStoreClosed
	}
	return recreate(b.db)
}

// structuralMarkers are driver error fragments that indicate a mismatch
// between the expected schema and the one on disk.
var structuralMarkers = []string{
	"no such table",
	"no such column",
	"has no column named",
	"file is not a database",
	"database disk image is malformed",
}

// classify wraps a driver error as a StoreError, marking it structural when
// the failure is a schema mismatch rather than an operational fault.
func classify(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return types.ErrNotFound
	}
	msg := err.Error()
	for _, marker := range structuralMarkers {
		if strings.Contains(msg, marker) {
			return types.NewStructuralError(op, err)
		}
	}
	return types.NewStoreError(op, err)
}
