package types

import "time"

// Ingredient is a recipe component. Ingredients are owned by their recipe
// and are not independently addressable.
type Ingredient struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
	Unit   Unit    `json:"unit"`
	Notes  string  `json:"notes,omitempty"`
}

// CookingStep is one numbered instruction in a recipe. StepNumber values are
// always contiguous 1..N within a recipe; RenumberSteps restores the
// invariant after any insert, delete, or reorder.
type CookingStep struct {
	ID          string `json:"id"`
	StepNumber  int    `json:"stepNumber"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl,omitempty"`
	Timer       int    `json:"timer,omitempty"` // minutes
}

// Recipe is the aggregate root. System fields (ID, CreatedAt, UpdatedAt,
// CookCount) are assigned by the store service, never by callers.
// Rating is 0 when unrated. JSON field names match the export file format.
type Recipe struct {
	ID           string        `json:"id"`
	Title        string        `json:"title"`
	Description  string        `json:"description,omitempty"`
	Servings     int           `json:"servings"`
	PrepTime     int           `json:"prepTime"` // minutes
	CookTime     int           `json:"cookTime"` // minutes
	Difficulty   int           `json:"difficulty"`
	Category     Category      `json:"category"`
	Ingredients  []Ingredient  `json:"ingredients"`
	Steps        []CookingStep `json:"steps"`
	Tags         []string      `json:"tags"`
	ImageURL     string        `json:"imageUrl,omitempty"`
	ThumbnailURL string        `json:"thumbnailUrl,omitempty"`
	IsFavorite   bool          `json:"isFavorite"`
	Rating       int           `json:"rating,omitempty"`
	Notes        string        `json:"notes,omitempty"`
	CreatedAt    time.Time     `json:"createdAt"`
	UpdatedAt    time.Time     `json:"updatedAt"`
	LastCooked   *time.Time    `json:"lastCooked,omitempty"`
	CookCount    int           `json:"cookCount"`
}

// HasImage reports whether the recipe carries a full-size or thumbnail image.
func (r *Recipe) HasImage() bool {
	return r.ImageURL != "" || r.ThumbnailURL != ""
}

// HasTag reports whether tag is present on the recipe.
func (r *Recipe) HasTag(tag string) bool {
	for _, t := range r.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// RenumberSteps rewrites StepNumber over the current step order so the
// values are exactly 1..len(steps).
func (r *Recipe) RenumberSteps() {
	for i := range r.Steps {
		r.Steps[i].StepNumber = i + 1
	}
}

// InsertStep inserts s at position index (0-based) and renumbers. An index
// past the end appends.
func (r *Recipe) InsertStep(index int, s CookingStep) {
	if index < 0 {
		index = 0
	}
	if index > len(r.Steps) {
		index = len(r.Steps)
	}
	r.Steps = append(r.Steps, CookingStep{})
	copy(r.Steps[index+1:], r.Steps[index:])
	r.Steps[index] = s
	r.RenumberSteps()
}

// RemoveStep deletes the step at position index (0-based) and renumbers.
// Out-of-range indexes are ignored.
func (r *Recipe) RemoveStep(index int) {
	if index < 0 || index >= len(r.Steps) {
		return
	}
	r.Steps = append(r.Steps[:index], r.Steps[index+1:]...)
	r.RenumberSteps()
}

// MoveStep moves the step at from to position to and renumbers.
func (r *Recipe) MoveStep(from, to int) {
	if from < 0 || from >= len(r.Steps) || to < 0 || to >= len(r.Steps) || from == to {
		return
	}
	s := r.Steps[from]
	r.Steps = append(r.Steps[:from], r.Steps[from+1:]...)
	r.Steps = append(r.Steps, CookingStep{})
	copy(r.Steps[to+1:], r.Steps[to:])
	r.Steps[to] = s
	r.RenumberSteps()
}

// Clone returns a deep copy of the recipe. Mutating the copy never affects
// the original; the query cache relies on this for snapshot isolation.
func (r *Recipe) Clone() *Recipe {
	if r == nil {
		return nil
	}
	c := *r
	if r.Ingredients != nil {
		c.Ingredients = append([]Ingredient(nil), r.Ingredients...)
	}
	if r.Steps != nil {
		c.Steps = append([]CookingStep(nil), r.Steps...)
	}
	if r.Tags != nil {
		c.Tags = append([]string(nil), r.Tags...)
	}
	if r.LastCooked != nil {
		t := *r.LastCooked
		c.LastCooked = &t
	}
	return &c
}

// CloneRecipes deep-copies a recipe slice.
func CloneRecipes(rs []*Recipe) []*Recipe {
	if rs == nil {
		return nil
	}
	out := make([]*Recipe, len(rs))
	for i, r := range rs {
		out[i] = r.Clone()
	}
	return out
}
