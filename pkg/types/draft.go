package types

// IngredientDraft is an ingredient as entered on the create/edit form,
// before the store assigns an id.
type IngredientDraft struct {
	Name   string  `json:"name" validate:"required"`
	Amount float64 `json:"amount" validate:"gt=0"`
	Unit   Unit    `json:"unit" validate:"required,unit"`
	Notes  string  `json:"notes,omitempty"`
}

// StepDraft is a cooking step as entered on the form. Step numbers are
// assigned from list order when the recipe is materialized.
type StepDraft struct {
	Description string `json:"description" validate:"required,max=500"`
	ImageURL    string `json:"imageUrl,omitempty" validate:"omitempty,url"`
	Timer       int    `json:"timer,omitempty" validate:"min=0,max=1440"`
}

// RecipeDraft is the form payload for creating a recipe: a Recipe without
// system-assigned fields. It must pass Validate before it reaches the store.
type RecipeDraft struct {
	Title        string            `json:"title" validate:"required,min=2,max=100"`
	Description  string            `json:"description,omitempty" validate:"max=500"`
	Servings     int               `json:"servings" validate:"min=1,max=20"`
	PrepTime     int               `json:"prepTime" validate:"min=0,max=1440"`
	CookTime     int               `json:"cookTime" validate:"min=0,max=1440"`
	Difficulty   int               `json:"difficulty" validate:"min=1,max=5"`
	Category     Category          `json:"category" validate:"required,category"`
	Ingredients  []IngredientDraft `json:"ingredients" validate:"required,min=1,dive"`
	Steps        []StepDraft       `json:"steps" validate:"required,min=1,dive"`
	Tags         []string          `json:"tags" validate:"max=10,unique"`
	ImageURL     string            `json:"imageUrl,omitempty" validate:"omitempty,url"`
	ThumbnailURL string            `json:"thumbnailUrl,omitempty" validate:"omitempty,url"`
	IsFavorite   bool              `json:"isFavorite"`
	Rating       int               `json:"rating,omitempty" validate:"min=0,max=5"`
	Notes        string            `json:"notes,omitempty"`
}
