// Package service implements the persistent store service: the sole
// reader/writer of durable recipe state. It normalizes records before every
// write (id and timestamp assignment, step renumbering) and exposes CRUD,
// query, statistics, backup, and integrity operations over the storage port.
package service

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Eve04lim/recipe-manager-app/pkg/types"
)

// Service mediates between callers and the storage port. All system fields
// are assigned here, never by callers and never inside the storage layer.
type Service struct {
	table types.RecipeTable
	now   func() time.Time
	newID func() string
}

// Option configures a Service.
type Option func(*Service)

// WithClock overrides the wall clock. Used by tests.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// WithIDGenerator overrides id generation. Used by tests.
func WithIDGenerator(gen func() string) Option {
	return func(s *Service) { s.newID = gen }
}

// New creates a Service over the given storage port.
func New(table types.RecipeTable, opts ...Option) *Service {
	s := &Service{
		table: table,
		now:   time.Now,
		newID: generateID,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// generateID returns a UUID v7 string, falling back to v4 if v7 generation
// fails.
func generateID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New().String()
	}
	return id.String()
}

// Add materializes a validated draft into a full recipe and persists it.
// Assigns id, createdAt, updatedAt (equal at creation), and cookCount=0.
func (s *Service) Add(ctx context.Context, draft types.RecipeDraft) (*types.Recipe, error) {
	r := s.materialize(draft)
	if err := s.table.Put(ctx, r); err != nil {
		return nil, err
	}
	return r, nil
}

// Update merges a partial patch over the existing record. The id is
// immutable and updatedAt is always set to now, regardless of caller input.
// Returns ErrNotFound when the id does not exist.
func (s *Service) Update(ctx context.Context, id string, patch types.RecipePatch) (*types.Recipe, error) {
	existing, err := s.table.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	merged := existing.Clone()
	patch.Apply(merged)
	merged.ID = existing.ID
	merged.CreatedAt = existing.CreatedAt
	merged.CookCount = existing.CookCount
	merged.UpdatedAt = s.now()
	s.ensureOwnedIDs(merged)
	if err := s.table.Put(ctx, merged); err != nil {
		return nil, err
	}
	return merged, nil
}

// Delete hard-removes a recipe. Deleting an absent id is not an error.
func (s *Service) Delete(ctx context.Context, id string) error {
	return s.table.Delete(ctx, id)
}

// DeleteMany removes every listed id in one all-or-nothing transaction;
// absent ids are skipped.
func (s *Service) DeleteMany(ctx context.Context, ids []string) error {
	return s.table.DeleteMany(ctx, ids)
}

// IncrementCookCount records a completed cook: cookCount += 1, lastCooked
// and updatedAt set to now, atomically from the caller's perspective.
func (s *Service) IncrementCookCount(ctx context.Context, id string) (*types.Recipe, error) {
	r, err := s.table.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	now := s.now()
	r.CookCount++
	r.LastCooked = &now
	r.UpdatedAt = now
	if err := s.table.Put(ctx, r); err != nil {
		return nil, err
	}
	return r, nil
}

// GetByID returns the recipe or ErrNotFound.
func (s *Service) GetByID(ctx context.Context, id string) (*types.Recipe, error) {
	return s.table.Get(ctx, id)
}

// GetAll returns every recipe sorted by updatedAt descending.
func (s *Service) GetAll(ctx context.Context) ([]*types.Recipe, error) {
	return s.table.All(ctx)
}

// Count returns the collection size.
func (s *Service) Count(ctx context.Context) (int, error) {
	return s.table.Count(ctx)
}

// GetByCategory returns the recipes in a category.
func (s *Service) GetByCategory(ctx context.Context, category types.Category) ([]*types.Recipe, error) {
	all, err := s.table.All(ctx)
	if err != nil {
		return nil, err
	}
	var out []*types.Recipe
	for _, r := range all {
		if r.Category == category {
			out = append(out, r)
		}
	}
	return out, nil
}

// GetFavorites returns the favorited recipes.
func (s *Service) GetFavorites(ctx context.Context) ([]*types.Recipe, error) {
	all, err := s.table.All(ctx)
	if err != nil {
		return nil, err
	}
	var out []*types.Recipe
	for _, r := range all {
		if r.IsFavorite {
			out = append(out, r)
		}
	}
	return out, nil
}

// Search returns recipes whose title, description, category, any tag, or
// any ingredient name contains the lowercased query as a substring.
func (s *Service) Search(ctx context.Context, query string) ([]*types.Recipe, error) {
	all, err := s.table.All(ctx)
	if err != nil {
		return nil, err
	}
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return all, nil
	}
	var out []*types.Recipe
	for _, r := range all {
		if matchesQuery(r, q) {
			out = append(out, r)
		}
	}
	return out, nil
}

// matchesQuery reports whether the lowercased query occurs in any searched
// field of the recipe.
func matchesQuery(r *types.Recipe, q string) bool {
	if strings.Contains(strings.ToLower(r.Title), q) ||
		strings.Contains(strings.ToLower(r.Description), q) ||
		strings.Contains(strings.ToLower(string(r.Category)), q) {
		return true
	}
	for _, tag := range r.Tags {
		if strings.Contains(strings.ToLower(tag), q) {
			return true
		}
	}
	for _, ing := range r.Ingredients {
		if strings.Contains(strings.ToLower(ing.Name), q) {
			return true
		}
	}
	return false
}

// GetRecentlyCooked returns up to limit recipes that have been cooked,
// most recent first.
func (s *Service) GetRecentlyCooked(ctx context.Context, limit int) ([]*types.Recipe, error) {
	all, err := s.table.All(ctx)
	if err != nil {
		return nil, err
	}
	var cooked []*types.Recipe
	for _, r := range all {
		if r.LastCooked != nil {
			cooked = append(cooked, r)
		}
	}
	sort.SliceStable(cooked, func(i, j int) bool {
		return cooked[i].LastCooked.After(*cooked[j].LastCooked)
	})
	if limit > 0 && len(cooked) > limit {
		cooked = cooked[:limit]
	}
	return cooked, nil
}

// GetPopular returns up to limit recipes ordered by cook count descending.
func (s *Service) GetPopular(ctx context.Context, limit int) ([]*types.Recipe, error) {
	all, err := s.table.All(ctx)
	if err != nil {
		return nil, err
	}
	out := append([]*types.Recipe(nil), all...)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CookCount > out[j].CookCount
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// Clear removes every recipe. Maintenance entry point.
func (s *Service) Clear(ctx context.Context) error {
	return s.table.Clear(ctx)
}
