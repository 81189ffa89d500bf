package types

// SortField selects the comparator used when ordering a recipe view.
type SortField string

// Sortable fields.
const (
	SortByTitle      SortField = "title"
	SortByCreatedAt  SortField = "createdAt"
	SortByLastCooked SortField = "lastCooked"
	SortByCookCount  SortField = "cookCount"
	SortByRating     SortField = "rating"
	SortByPrepTime   SortField = "prepTime"
	SortByCookTime   SortField = "cookTime"
)

// validSortFields is the set of recognized sort fields.
var validSortFields = map[SortField]bool{
	SortByTitle:      true,
	SortByCreatedAt:  true,
	SortByLastCooked: true,
	SortByCookCount:  true,
	SortByRating:     true,
	SortByPrepTime:   true,
	SortByCookTime:   true,
}

// ValidSortField reports whether f is a recognized sort field.
func ValidSortField(f SortField) bool { return validSortFields[f] }

// SortDirection orders ascending or descending.
type SortDirection string

const (
	Ascending  SortDirection = "asc"
	Descending SortDirection = "desc"
)

// RecipeSort is a sort specification: one field plus a direction.
type RecipeSort struct {
	Field     SortField     `json:"field"`
	Direction SortDirection `json:"direction"`
}

// RecipeFilter is a conjunctive predicate set: every active dimension must
// match. Tags is the one OR dimension: a recipe matches when it carries at
// least one selected tag. Nil pointer fields and zero values mean the
// dimension is inactive.
type RecipeFilter struct {
	Category    Category `json:"category,omitempty"` // CategoryAll or empty = inactive
	Difficulty  int      `json:"difficulty,omitempty"`
	MaxPrepTime *int     `json:"maxPrepTime,omitempty"`
	MaxCookTime *int     `json:"maxCookTime,omitempty"`
	Tags        []string `json:"tags,omitempty"`
	Favorite    *bool    `json:"isFavorite,omitempty"`
	HasImage    *bool    `json:"hasImage,omitempty"`
}
