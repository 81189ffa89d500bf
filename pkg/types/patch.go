package types

// RecipePatch is a partial update. Nil fields are left unchanged; set fields
// overwrite the existing value. System fields (id, timestamps, cook count)
// cannot be patched; the store service forces them on every write.
type RecipePatch struct {
	Title        *string        `json:"title,omitempty"`
	Description  *string        `json:"description,omitempty"`
	Servings     *int           `json:"servings,omitempty"`
	PrepTime     *int           `json:"prepTime,omitempty"`
	CookTime     *int           `json:"cookTime,omitempty"`
	Difficulty   *int           `json:"difficulty,omitempty"`
	Category     *Category      `json:"category,omitempty"`
	Ingredients  *[]Ingredient  `json:"ingredients,omitempty"`
	Steps        *[]CookingStep `json:"steps,omitempty"`
	Tags         *[]string      `json:"tags,omitempty"`
	ImageURL     *string        `json:"imageUrl,omitempty"`
	ThumbnailURL *string        `json:"thumbnailUrl,omitempty"`
	IsFavorite   *bool          `json:"isFavorite,omitempty"`
	Rating       *int           `json:"rating,omitempty"`
	Notes        *string        `json:"notes,omitempty"`
}

// Apply merges the patch over r in place. Steps are renumbered when patched
// so the contiguous step-number invariant holds after any reorder or delete.
func (p RecipePatch) Apply(r *Recipe) {
	if p.Title != nil {
		r.Title = *p.Title
	}
	if p.Description != nil {
		r.Description = *p.Description
	}
	if p.Servings != nil {
		r.Servings = *p.Servings
	}
	if p.PrepTime != nil {
		r.PrepTime = *p.PrepTime
	}
	if p.CookTime != nil {
		r.CookTime = *p.CookTime
	}
	if p.Difficulty != nil {
		r.Difficulty = *p.Difficulty
	}
	if p.Category != nil {
		r.Category = *p.Category
	}
	if p.Ingredients != nil {
		r.Ingredients = append([]Ingredient(nil), (*p.Ingredients)...)
	}
	if p.Steps != nil {
		r.Steps = append([]CookingStep(nil), (*p.Steps)...)
		r.RenumberSteps()
	}
	if p.Tags != nil {
		r.Tags = append([]string(nil), (*p.Tags)...)
	}
	if p.ImageURL != nil {
		r.ImageURL = *p.ImageURL
	}
	if p.ThumbnailURL != nil {
		r.ThumbnailURL = *p.ThumbnailURL
	}
	if p.IsFavorite != nil {
		r.IsFavorite = *p.IsFavorite
	}
	if p.Rating != nil {
		r.Rating = *p.Rating
	}
	if p.Notes != nil {
		r.Notes = *p.Notes
	}
}

// IsZero reports whether the patch changes nothing.
func (p RecipePatch) IsZero() bool {
	return p == RecipePatch{}
}
