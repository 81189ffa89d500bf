package types

import "context"

// RecipeTable is the storage port for the recipe collection. The store
// service depends only on this interface; one concrete adapter exists per
// storage primitive (currently SQLite). Multi-record operations execute as
// a single transaction in the adapter: a failure leaves prior data intact.
type RecipeTable interface {
	// Get returns the recipe with the given id.
	// Returns ErrInvalidID for an empty id and ErrNotFound when absent.
	Get(ctx context.Context, id string) (*Recipe, error)

	// Put creates or overwrites the recipe keyed by its ID.
	Put(ctx context.Context, r *Recipe) error

	// Delete removes the recipe. Deleting an absent id is not an error.
	Delete(ctx context.Context, id string) error

	// DeleteMany removes every listed id in one all-or-nothing
	// transaction. Absent ids are skipped inside the transaction.
	DeleteMany(ctx context.Context, ids []string) error

	// BulkPut upserts every recipe by id in one transaction.
	BulkPut(ctx context.Context, recipes []*Recipe) error

	// Replace clears the table and inserts recipes as one atomic unit.
	// On failure the prior contents remain observable.
	Replace(ctx context.Context, recipes []*Recipe) error

	// All returns every recipe sorted by UpdatedAt descending with a
	// stable id tie-break.
	All(ctx context.Context) ([]*Recipe, error)

	// Count returns the number of stored recipes.
	Count(ctx context.Context) (int, error)

	// Clear removes every recipe.
	Clear(ctx context.Context) error
}
