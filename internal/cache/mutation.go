package cache

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/Eve04lim/recipe-manager-app/pkg/types"
)

// tempIDPrefix marks optimistic placeholder ids, replaced by the
// authoritative id once the store commits.
const tempIDPrefix = "temp-"

// snapshot is a verbatim copy of the cache contents taken before an
// optimistic prediction. Restoring it reproduces the prior state exactly,
// including the absence of entries the prediction created.
type snapshot map[Key]entry

// mutation is one optimistic write. keys lists the entries the prediction
// touches; in-flight reads for them are canceled first so a stale fetch
// cannot overwrite the prediction.
type mutation struct {
	kind      Kind
	keys      []Key
	predict   func(c *Client)
	commit    func(ctx context.Context) error
	reconcile func(c *Client)
}

// run drives the optimistic protocol: cancel in-flight reads, snapshot,
// predict, commit against the store, then reconcile with the authoritative
// result or restore the snapshot verbatim. Rollback performs no
// invalidation since nothing durable changed.
func (c *Client) run(ctx context.Context, m mutation) error {
	c.mu.Lock()
	for _, key := range m.keys {
		c.cancelInflightLocked(key)
	}
	snap := c.snapshotLocked()
	if m.predict != nil {
		m.predict(c)
	}
	c.mu.Unlock()

	err := m.commit(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()
	if err != nil {
		c.restoreLocked(snap)
		return err
	}
	if m.reconcile != nil {
		m.reconcile(c)
	}
	switch m.kind {
	case KindImport:
		c.invalidateAllLocked()
	case KindClear:
		c.entries = make(map[Key]*entry)
	default:
		if dep, ok := invalidations[m.kind]; ok {
			for _, key := range dep.keys {
				c.invalidateLocked(key)
			}
			for _, prefix := range dep.prefixes {
				c.invalidatePrefixLocked(prefix)
			}
		}
	}
	return nil
}

func (c *Client) snapshotLocked() snapshot {
	snap := make(snapshot, len(c.entries))
	for key, e := range c.entries {
		snap[key] = *e
	}
	return snap
}

func (c *Client) restoreLocked(snap snapshot) {
	c.entries = make(map[Key]*entry, len(snap))
	for key, e := range snap {
		copied := e
		c.entries[key] = &copied
	}
}

// AddRecipe creates a recipe. The collection list optimistically gains a
// placeholder with a temp- id; on commit the placeholder is swapped for the
// stored recipe.
func (c *Client) AddRecipe(ctx context.Context, draft types.RecipeDraft) (*types.Recipe, error) {
	tempID := tempIDPrefix + uuid.NewString()
	var created *types.Recipe
	err := c.run(ctx, mutation{
		kind: KindAdd,
		keys: []Key{KeyRecipes},
		predict: func(c *Client) {
			c.updateListLocked(KeyRecipes, func(list []*types.Recipe) []*types.Recipe {
				return append([]*types.Recipe{predictRecipe(tempID, draft, c.now())}, list...)
			})
		},
		commit: func(ctx context.Context) error {
			var err error
			created, err = c.store.Add(ctx, draft)
			return err
		},
		reconcile: func(c *Client) {
			c.updateListLocked(KeyRecipes, func(list []*types.Recipe) []*types.Recipe {
				for i, r := range list {
					if r.ID == tempID {
						list[i] = created
						return list
					}
				}
				return append([]*types.Recipe{created}, list...)
			})
			c.setLocked(RecipeKey(created.ID), staleRecipe, created)
		},
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// UpdateRecipe applies a patch. The cached detail and collection entries
// are optimistically patched in place on deep copies.
func (c *Client) UpdateRecipe(ctx context.Context, id string, patch types.RecipePatch) (*types.Recipe, error) {
	var updated *types.Recipe
	err := c.run(ctx, mutation{
		kind: KindUpdate,
		keys: []Key{KeyRecipes, RecipeKey(id)},
		predict: func(c *Client) {
			now := c.now()
			c.patchDetailLocked(id, func(r *types.Recipe) {
				patch.Apply(r)
				r.UpdatedAt = now
			})
			c.patchInListLocked(KeyRecipes, id, func(r *types.Recipe) {
				patch.Apply(r)
				r.UpdatedAt = now
			})
		},
		commit: func(ctx context.Context) error {
			var err error
			updated, err = c.store.Update(ctx, id, patch)
			return err
		},
		reconcile: func(c *Client) {
			c.setLocked(RecipeKey(id), staleRecipe, updated)
			c.replaceInListLocked(KeyRecipes, updated)
		},
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// DeleteRecipe removes one recipe. The collection entry optimistically
// drops it and the detail entry is removed outright.
func (c *Client) DeleteRecipe(ctx context.Context, id string) error {
	return c.run(ctx, mutation{
		kind: KindDelete,
		keys: []Key{KeyRecipes, RecipeKey(id)},
		predict: func(c *Client) {
			c.updateListLocked(KeyRecipes, func(list []*types.Recipe) []*types.Recipe {
				return dropIDs(list, map[string]bool{id: true})
			})
			delete(c.entries, RecipeKey(id))
		},
		commit: func(ctx context.Context) error {
			return c.store.Delete(ctx, id)
		},
	})
}

// DeleteRecipes removes several recipes in one store transaction.
func (c *Client) DeleteRecipes(ctx context.Context, ids []string) error {
	keys := make([]Key, 0, len(ids)+1)
	keys = append(keys, KeyRecipes)
	gone := make(map[string]bool, len(ids))
	for _, id := range ids {
		keys = append(keys, RecipeKey(id))
		gone[id] = true
	}
	return c.run(ctx, mutation{
		kind: KindBulkDelete,
		keys: keys,
		predict: func(c *Client) {
			c.updateListLocked(KeyRecipes, func(list []*types.Recipe) []*types.Recipe {
				return dropIDs(list, gone)
			})
			for _, id := range ids {
				delete(c.entries, RecipeKey(id))
			}
		},
		commit: func(ctx context.Context) error {
			return c.store.DeleteMany(ctx, ids)
		},
	})
}

// CookComplete records a completed cooking session: cook count up by one
// and last cooked set to now, predicted locally before the store commits.
func (c *Client) CookComplete(ctx context.Context, id string) (*types.Recipe, error) {
	var cooked *types.Recipe
	err := c.run(ctx, mutation{
		kind: KindCook,
		keys: []Key{KeyRecipes, RecipeKey(id)},
		predict: func(c *Client) {
			now := c.now()
			bump := func(r *types.Recipe) {
				r.CookCount++
				t := now
				r.LastCooked = &t
				r.UpdatedAt = now
			}
			c.patchDetailLocked(id, bump)
			c.patchInListLocked(KeyRecipes, id, bump)
		},
		commit: func(ctx context.Context) error {
			var err error
			cooked, err = c.store.IncrementCookCount(ctx, id)
			return err
		},
		reconcile: func(c *Client) {
			c.setLocked(RecipeKey(id), staleRecipe, cooked)
			c.replaceInListLocked(KeyRecipes, cooked)
		},
	})
	if err != nil {
		return nil, err
	}
	return cooked, nil
}

// ImportBackup loads recipes into the store. replace restores the
// collection wholesale; otherwise records merge by id. No prediction is
// attempted; on success every cached entry is invalidated.
func (c *Client) ImportBackup(ctx context.Context, recipes []*types.Recipe, replace bool) error {
	return c.run(ctx, mutation{
		kind: KindImport,
		commit: func(ctx context.Context) error {
			if replace {
				return c.store.ImportReplace(ctx, recipes)
			}
			return c.store.ImportMerge(ctx, recipes)
		},
	})
}

// ClearAll deletes every recipe and drops the cache.
func (c *Client) ClearAll(ctx context.Context) error {
	return c.run(ctx, mutation{
		kind: KindClear,
		keys: []Key{KeyRecipes},
		predict: func(c *Client) {
			c.setLocked(KeyRecipes, staleRecipes, []*types.Recipe{})
		},
		commit: func(ctx context.Context) error {
			return c.store.Clear(ctx)
		},
	})
}

// updateListLocked rewrites a cached recipe list through fn, working on a
// deep copy so snapshots stay untouched. Absent entries stay absent.
func (c *Client) updateListLocked(key Key, fn func([]*types.Recipe) []*types.Recipe) {
	e, ok := c.entries[key]
	if !ok {
		return
	}
	list, ok := e.value.([]*types.Recipe)
	if !ok {
		return
	}
	e.value = fn(types.CloneRecipes(list))
}

// patchDetailLocked mutates a cached detail entry through fn on a deep copy.
func (c *Client) patchDetailLocked(id string, fn func(*types.Recipe)) {
	key := RecipeKey(id)
	e, ok := c.entries[key]
	if !ok {
		return
	}
	r, ok := e.value.(*types.Recipe)
	if !ok || r == nil {
		return
	}
	clone := r.Clone()
	fn(clone)
	e.value = clone
}

// patchInListLocked mutates one recipe inside a cached list through fn.
func (c *Client) patchInListLocked(key Key, id string, fn func(*types.Recipe)) {
	c.updateListLocked(key, func(list []*types.Recipe) []*types.Recipe {
		for _, r := range list {
			if r.ID == id {
				fn(r)
				break
			}
		}
		return list
	})
}

// replaceInListLocked swaps the recipe with a matching id for the
// authoritative copy.
func (c *Client) replaceInListLocked(key Key, authoritative *types.Recipe) {
	c.updateListLocked(key, func(list []*types.Recipe) []*types.Recipe {
		for i, r := range list {
			if r.ID == authoritative.ID {
				list[i] = authoritative
				break
			}
		}
		return list
	})
}

// dropIDs filters a list down to recipes whose ids are not in gone.
func dropIDs(list []*types.Recipe, gone map[string]bool) []*types.Recipe {
	out := list[:0]
	for _, r := range list {
		if !gone[r.ID] {
			out = append(out, r)
		}
	}
	return out
}

// predictRecipe builds the optimistic placeholder shown while an add is in
// flight. Field values mirror what the store will materialize, minus the
// authoritative id.
func predictRecipe(tempID string, draft types.RecipeDraft, now time.Time) *types.Recipe {
	r := &types.Recipe{
		ID:           tempID,
		Title:        draft.Title,
		Description:  draft.Description,
		Servings:     draft.Servings,
		PrepTime:     draft.PrepTime,
		CookTime:     draft.CookTime,
		Difficulty:   draft.Difficulty,
		Category:     draft.Category,
		ImageURL:     draft.ImageURL,
		ThumbnailURL: draft.ThumbnailURL,
		IsFavorite:   draft.IsFavorite,
		Rating:       draft.Rating,
		Notes:        draft.Notes,
		Tags:         append([]string{}, draft.Tags...),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	for _, ing := range draft.Ingredients {
		r.Ingredients = append(r.Ingredients, types.Ingredient{
			ID:     tempID + "-ing",
			Name:   ing.Name,
			Amount: ing.Amount,
			Unit:   ing.Unit,
			Notes:  ing.Notes,
		})
	}
	for i, st := range draft.Steps {
		r.Steps = append(r.Steps, types.CookingStep{
			ID:          tempID + "-step",
			StepNumber:  i + 1,
			Description: st.Description,
			ImageURL:    st.ImageURL,
			Timer:       st.Timer,
		})
	}
	return r
}
