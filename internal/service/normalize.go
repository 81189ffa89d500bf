package service

import (
	"time"

	"github.com/Eve04lim/recipe-manager-app/pkg/types"
)

// materialize turns a validated draft into a full recipe: assigns the
// record id, ingredient and step ids, contiguous step numbers, and the
// creation timestamps. Explicit pre-write normalization; the storage layer
// never assigns fields.
func (s *Service) materialize(draft types.RecipeDraft) *types.Recipe {
	now := s.now()
	r := &types.Recipe{
		ID:           s.newID(),
		Title:        draft.Title,
		Description:  draft.Description,
		Servings:     draft.Servings,
		PrepTime:     draft.PrepTime,
		CookTime:     draft.CookTime,
		Difficulty:   draft.Difficulty,
		Category:     draft.Category,
		Tags:         append([]string{}, draft.Tags...),
		ImageURL:     draft.ImageURL,
		ThumbnailURL: draft.ThumbnailURL,
		IsFavorite:   draft.IsFavorite,
		Rating:       draft.Rating,
		Notes:        draft.Notes,
		CreatedAt:    now,
		UpdatedAt:    now,
		CookCount:    0,
	}
	r.Ingredients = make([]types.Ingredient, len(draft.Ingredients))
	for i, ing := range draft.Ingredients {
		r.Ingredients[i] = types.Ingredient{
			ID:     s.newID(),
			Name:   ing.Name,
			Amount: ing.Amount,
			Unit:   ing.Unit,
			Notes:  ing.Notes,
		}
	}
	r.Steps = make([]types.CookingStep, len(draft.Steps))
	for i, st := range draft.Steps {
		r.Steps[i] = types.CookingStep{
			ID:          s.newID(),
			StepNumber:  i + 1,
			Description: st.Description,
			ImageURL:    st.ImageURL,
			Timer:       st.Timer,
		}
	}
	return r
}

// ensureOwnedIDs assigns ids to ingredients and steps added through a
// patch, and keeps step numbers contiguous.
func (s *Service) ensureOwnedIDs(r *types.Recipe) {
	for i := range r.Ingredients {
		if r.Ingredients[i].ID == "" {
			r.Ingredients[i].ID = s.newID()
		}
	}
	for i := range r.Steps {
		if r.Steps[i].ID == "" {
			r.Steps[i].ID = s.newID()
		}
	}
	r.RenumberSteps()
}

// normalizeImported back-fills system fields on records arriving through
// import so rows written by older exports stay valid: a missing id gets a
// fresh one, a missing createdAt becomes now, and a missing updatedAt
// defaults to createdAt.
func (s *Service) normalizeImported(recipes []*types.Recipe) []*types.Recipe {
	now := s.now()
	out := make([]*types.Recipe, 0, len(recipes))
	for _, r := range recipes {
		if r == nil {
			continue
		}
		c := r.Clone()
		if c.ID == "" {
			c.ID = s.newID()
		}
		if c.CreatedAt.IsZero() {
			c.CreatedAt = now
		}
		if c.UpdatedAt.IsZero() {
			c.UpdatedAt = c.CreatedAt
		}
		if c.UpdatedAt.Before(c.CreatedAt) {
			c.UpdatedAt = c.CreatedAt
		}
		if c.Tags == nil {
			c.Tags = []string{}
		}
		s.ensureOwnedIDs(c)
		out = append(out, c)
	}
	return out
}

// week is the recency window used by the statistics.
const week = 7 * 24 * time.Hour
