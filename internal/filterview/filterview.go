// Package filterview turns a recipe collection into a browsable view:
// free-text search, a conjunctive filter set, and a stable sort, evaluated
// in memory over the cached collection.
package filterview

import (
	"math"
	"sort"
	"strings"
	"time"

	"github.com/Eve04lim/recipe-manager-app/pkg/types"
)

// State is the view configuration a user builds up while browsing.
type State struct {
	Search string
	Filter types.RecipeFilter
	Sort   types.RecipeSort
}

// NewState returns the default view: every category, newest first.
func NewState() State {
	return State{
		Filter: types.RecipeFilter{Category: types.CategoryAll},
		Sort: types.RecipeSort{
			Field:     types.SortByCreatedAt,
			Direction: types.Descending,
		},
	}
}

// SetSearch replaces the free-text query.
func (s *State) SetSearch(query string) {
	s.Search = query
}

// SetSort replaces the sort specification outright.
func (s *State) SetSort(sort types.RecipeSort) {
	s.Sort = sort
}

// ToggleSort selects a sort field. Selecting the current field flips the
// direction; selecting a new field starts ascending.
func (s *State) ToggleSort(field types.SortField) {
	if s.Sort.Field == field {
		if s.Sort.Direction == types.Ascending {
			s.Sort.Direction = types.Descending
		} else {
			s.Sort.Direction = types.Ascending
		}
		return
	}
	s.Sort = types.RecipeSort{Field: field, Direction: types.Ascending}
}

// Reset restores the default view.
func (s *State) Reset() {
	*s = NewState()
}

// Apply evaluates the view over recipes: search, then filter, then a stable
// sort. The input slice is never reordered.
func Apply(recipes []*types.Recipe, state State) []*types.Recipe {
	out := make([]*types.Recipe, 0, len(recipes))
	query := strings.ToLower(strings.TrimSpace(state.Search))
	for _, r := range recipes {
		if query != "" && !matchesSearch(r, query) {
			continue
		}
		if !matchesFilter(r, state.Filter) {
			continue
		}
		out = append(out, r)
	}
	sortRecipes(out, state.Sort)
	return out
}

// matchesSearch checks the query against title, description, category,
// tags, and ingredient names, case-insensitively.
func matchesSearch(r *types.Recipe, query string) bool {
	if strings.Contains(strings.ToLower(r.Title), query) {
		return true
	}
	if strings.Contains(strings.ToLower(r.Description), query) {
		return true
	}
	if strings.Contains(strings.ToLower(string(r.Category)), query) {
		return true
	}
	for _, tag := range r.Tags {
		if strings.Contains(strings.ToLower(tag), query) {
			return true
		}
	}
	for _, ing := range r.Ingredients {
		if strings.Contains(strings.ToLower(ing.Name), query) {
			return true
		}
	}
	return false
}

// matchesFilter evaluates every active dimension conjunctively. Tags is the
// OR dimension: one carried tag from the selection is enough.
func matchesFilter(r *types.Recipe, f types.RecipeFilter) bool {
	if f.Category != "" && f.Category != types.CategoryAll && r.Category != f.Category {
		return false
	}
	if f.Difficulty != 0 && r.Difficulty != f.Difficulty {
		return false
	}
	if f.MaxPrepTime != nil && r.PrepTime > *f.MaxPrepTime {
		return false
	}
	if f.MaxCookTime != nil && r.CookTime > *f.MaxCookTime {
		return false
	}
	if len(f.Tags) > 0 {
		found := false
		for _, want := range f.Tags {
			if r.HasTag(want) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	if f.Favorite != nil && r.IsFavorite != *f.Favorite {
		return false
	}
	if f.HasImage != nil && r.HasImage() != *f.HasImage {
		return false
	}
	return true
}

// sortRecipes orders the slice stably by the sort spec. Ties keep their
// incoming relative order. Recipes never cooked sort as the epoch under
// lastCooked; unrated recipes sort as zero under rating.
func sortRecipes(recipes []*types.Recipe, spec types.RecipeSort) {
	if !types.ValidSortField(spec.Field) {
		return
	}
	asc := spec.Direction != types.Descending
	sort.SliceStable(recipes, func(i, j int) bool {
		a, b := recipes[i], recipes[j]
		if !asc {
			a, b = b, a
		}
		switch spec.Field {
		case types.SortByTitle:
			return strings.ToLower(a.Title) < strings.ToLower(b.Title)
		case types.SortByCreatedAt:
			return a.CreatedAt.Before(b.CreatedAt)
		case types.SortByLastCooked:
			return lastCookedOrEpoch(a).Before(lastCookedOrEpoch(b))
		case types.SortByCookCount:
			return a.CookCount < b.CookCount
		case types.SortByRating:
			return a.Rating < b.Rating
		case types.SortByPrepTime:
			return a.PrepTime < b.PrepTime
		case types.SortByCookTime:
			return a.CookTime < b.CookTime
		}
		return false
	})
}

func lastCookedOrEpoch(r *types.Recipe) time.Time {
	if r.LastCooked == nil {
		return time.Time{}
	}
	return *r.LastCooked
}

// ViewStats summarizes a filtered view for display alongside the list.
type ViewStats struct {
	Total      int     `json:"total"`
	Filtered   int     `json:"filtered"`
	Favorites  int     `json:"favorites"`
	Categories int     `json:"categories"`
	AvgRating  float64 `json:"avgRating"`
}

// Summarize computes view statistics: total collection size, filtered
// count, favorites and distinct categories within the view, and the mean
// rating across every filtered recipe including unrated ones.
func Summarize(all, filtered []*types.Recipe) ViewStats {
	st := ViewStats{Total: len(all), Filtered: len(filtered)}
	seen := make(map[types.Category]bool)
	ratingSum := 0
	for _, r := range filtered {
		if r.IsFavorite {
			st.Favorites++
		}
		seen[r.Category] = true
		ratingSum += r.Rating
	}
	st.Categories = len(seen)
	if len(filtered) > 0 {
		st.AvgRating = math.Round(float64(ratingSum)/float64(len(filtered))*10) / 10
	}
	return st
}
