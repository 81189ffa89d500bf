package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Eve04lim/recipe-manager-app/pkg/types"
)

// timeLayout is the column format for timestamps. Fixed-width fractional
// seconds keep lexicographic order equal to chronological order, which the
// updated_at index relies on.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// recipeTable implements types.RecipeTable. Rows hold the indexed lookup
// columns plus the full JSON document; recipe_tags carries the multi-valued
// tag index. Every multi-record operation runs in one transaction.
type recipeTable struct {
	backend *Backend
}

// execer abstracts *sql.DB and *sql.Tx for the shared write helpers.
type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// Get retrieves a recipe by id. Returns ErrInvalidID for an empty id and
// ErrNotFound when absent.
func (t *recipeTable) Get(ctx context.Context, id string) (*types.Recipe, error) {
	if id == "" {
		return nil, types.ErrInvalidID
	}
	t.backend.mu.RLock()
	defer t.backend.mu.RUnlock()
	if !t.backend.open {
		return nil, types.ErrStoreClosed
	}

	var doc string
	err := t.backend.db.QueryRowContext(ctx,
		`SELECT document FROM recipes WHERE id = ?`, id).Scan(&doc)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, types.ErrNotFound
	}
	if err != nil {
		return nil, classify("get", err)
	}
	return decodeDocument(doc)
}

// Put creates or overwrites the recipe keyed by its ID.
func (t *recipeTable) Put(ctx context.Context, r *types.Recipe) error {
	if r == nil || r.ID == "" {
		return types.ErrInvalidID
	}
	t.backend.mu.Lock()
	defer t.backend.mu.Unlock()
	if !t.backend.open {
		return types.ErrStoreClosed
	}

	tx, err := t.backend.db.BeginTx(ctx, nil)
	if err != nil {
		return classify("put", err)
	}
	defer tx.Rollback()

	if err := putRecipe(ctx, tx, r); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return classify("put", err)
	}
	return nil
}

// Delete removes a recipe and its tag index entries. Absent ids succeed.
func (t *recipeTable) Delete(ctx context.Context, id string) error {
	if id == "" {
		return types.ErrInvalidID
	}
	t.backend.mu.Lock()
	defer t.backend.mu.Unlock()
	if !t.backend.open {
		return types.ErrStoreClosed
	}
	return deleteIDs(ctx, t.backend.db, []string{id})
}

// DeleteMany removes every listed id in one all-or-nothing transaction.
// Ids that do not exist are skipped; a storage failure rolls everything back.
func (t *recipeTable) DeleteMany(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	for _, id := range ids {
		if id == "" {
			return types.ErrInvalidID
		}
	}
	t.backend.mu.Lock()
	defer t.backend.mu.Unlock()
	if !t.backend.open {
		return types.ErrStoreClosed
	}
	return deleteIDs(ctx, t.backend.db, ids)
}

// BulkPut upserts every recipe in one transaction.
func (t *recipeTable) BulkPut(ctx context.Context, recipes []*types.Recipe) error {
	t.backend.mu.Lock()
	defer t.backend.mu.Unlock()
	if !t.backend.open {
		return types.ErrStoreClosed
	}

	tx, err := t.backend.db.BeginTx(ctx, nil)
	if err != nil {
		return classify("bulk put", err)
	}
	defer tx.Rollback()

	for _, r := range recipes {
		if r == nil || r.ID == "" {
			return types.ErrInvalidID
		}
		if err := putRecipe(ctx, tx, r); err != nil {
			return err
		}
	}
	if err := tx.Commit(); err != nil {
		return classify("bulk put", err)
	}
	return nil
}

// Replace clears the table and inserts recipes as one atomic unit. On any
// failure the previous contents remain intact.
func (t *recipeTable) Replace(ctx context.Context, recipes []*types.Recipe) error {
	t.backend.mu.Lock()
	defer t.backend.mu.Unlock()
	if !t.backend.open {
		return types.ErrStoreClosed
	}

	tx, err := t.backend.db.BeginTx(ctx, nil)
	if err != nil {
		return classify("replace", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM recipe_tags`); err != nil {
		return classify("replace", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM recipes`); err != nil {
		return classify("replace", err)
	}
	for _, r := range recipes {
		if r == nil || r.ID == "" {
			return types.ErrInvalidID
		}
		if err := putRecipe(ctx, tx, r); err != nil {
			return err
		}
	}
	if err := tx.Commit(); err != nil {
		return classify("replace", err)
	}
	return nil
}

// All returns every recipe sorted by updated_at descending, id ascending as
// the stable tie-break.
func (t *recipeTable) All(ctx context.Context) ([]*types.Recipe, error) {
	t.backend.mu.RLock()
	defer t.backend.mu.RUnlock()
	if !t.backend.open {
		return nil, types.ErrStoreClosed
	}

	rows, err := t.backend.db.QueryContext(ctx,
		`SELECT document FROM recipes ORDER BY updated_at DESC, id ASC`)
	if err != nil {
		return nil, classify("all", err)
	}
	defer rows.Close()

	var out []*types.Recipe
	for rows.Next() {
		var doc string
		if err := rows.Scan(&doc); err != nil {
			return nil, classify("all", err)
		}
		r, err := decodeDocument(doc)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, classify("all", err)
	}
	return out, nil
}

// Count returns the number of stored recipes.
func (t *recipeTable) Count(ctx context.Context) (int, error) {
	t.backend.mu.RLock()
	defer t.backend.mu.RUnlock()
	if !t.backend.open {
		return 0, types.ErrStoreClosed
	}

	var n int
	if err := t.backend.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM recipes`).Scan(&n); err != nil {
		return 0, classify("count", err)
	}
	return n, nil
}

// Clear removes every recipe and tag index entry.
func (t *recipeTable) Clear(ctx context.Context) error {
	t.backend.mu.Lock()
	defer t.backend.mu.Unlock()
	if !t.backend.open {
		return types.ErrStoreClosed
	}

	tx, err := t.backend.db.BeginTx(ctx, nil)
	if err != nil {
		return classify("clear", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM recipe_tags`); err != nil {
		return classify("clear", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM recipes`); err != nil {
		return classify("clear", err)
	}
	if err := tx.Commit(); err != nil {
		return classify("clear", err)
	}
	return nil
}

// deleteIDs removes rows and their tag entries in one transaction.
func deleteIDs(ctx context.Context, db *sql.DB, ids []string) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return classify("delete", err)
	}
	defer tx.Rollback()

	for _, id := range ids {
		if _, err := tx.ExecContext(ctx,
			`DELETE FROM recipe_tags WHERE recipe_id = ?`, id); err != nil {
			return classify("delete", err)
		}
		if _, err := tx.ExecContext(ctx,
			`DELETE FROM recipes WHERE id = ?`, id); err != nil {
			return classify("delete", err)
		}
	}
	if err := tx.Commit(); err != nil {
		return classify("delete", err)
	}
	return nil
}

// putRecipe upserts the row, the document, and the tag index entries.
func putRecipe(ctx context.Context, ex execer, r *types.Recipe) error {
	doc, err := json.Marshal(r)
	if err != nil {
		return types.NewStoreError("put", fmt.Errorf("encoding document: %w", err))
	}

	var lastCooked any
	if r.LastCooked != nil {
		lastCooked = r.LastCooked.UTC().Format(timeLayout)
	}

	_, err = ex.ExecContext(ctx, `
		INSERT INTO recipes (id, title, category, difficulty, is_favorite,
			rating, prep_time, cook_time, cook_count, created_at,
			updated_at, last_cooked, document)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			title = excluded.title,
			category = excluded.category,
			difficulty = excluded.difficulty,
			is_favorite = excluded.is_favorite,
			rating = excluded.rating,
			prep_time = excluded.prep_time,
			cook_time = excluded.cook_time,
			cook_count = excluded.cook_count,
			created_at = excluded.created_at,
			updated_at = excluded.updated_at,
			last_cooked = excluded.last_cooked,
			document = excluded.document`,
		r.ID, r.Title, string(r.Category), r.Difficulty, boolToInt(r.IsFavorite),
		r.Rating, r.PrepTime, r.CookTime, r.CookCount,
		r.CreatedAt.UTC().Format(timeLayout),
		r.UpdatedAt.UTC().Format(timeLayout),
		lastCooked, string(doc))
	if err != nil {
		return classify("put", err)
	}

	if _, err := ex.ExecContext(ctx,
		`DELETE FROM recipe_tags WHERE recipe_id = ?`, r.ID); err != nil {
		return classify("put", err)
	}
	for _, tag := range r.Tags {
		if _, err := ex.ExecContext(ctx,
			`INSERT OR IGNORE INTO recipe_tags (recipe_id, tag) VALUES (?, ?)`,
			r.ID, tag); err != nil {
			return classify("put", err)
		}
	}
	return nil
}

// upsertRecipe writes a recipe outside a caller-managed transaction. Used
// by the recovery reimport.
func upsertRecipe(db *sql.DB, r *types.Recipe) error {
	return putRecipe(context.Background(), db, r)
}

// decodeDocument parses a stored JSON document into a Recipe.
func decodeDocument(doc string) (*types.Recipe, error) {
	var r types.Recipe
	if err := json.Unmarshal([]byte(doc), &r); err != nil {
		return nil, types.NewStoreError("decode", fmt.Errorf("parsing document: %w", err))
	}
	return &r, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
