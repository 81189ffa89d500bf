package types

// TagCount pairs a tag with its frequency across the collection.
type TagCount struct {
	Tag   string `json:"tag"`
	Count int    `json:"count"`
}

// Stats aggregates the full collection. AvgRating averages only recipes
// with a rating above zero, rounded to one decimal (0 when nothing is
// rated). MostCooked is nil when no recipe has been cooked.
type Stats struct {
	TotalRecipes    int              `json:"totalRecipes"`
	FavoriteRecipes int              `json:"favoriteRecipes"`
	TotalCookTime   int              `json:"totalCookTime"` // sum of prep+cook minutes
	AvgRating       float64          `json:"avgRating"`
	MostCooked      *Recipe          `json:"mostCookedRecipe,omitempty"`
	RecentlyAdded   []*Recipe        `json:"recentlyAdded"`
	ByCategory      map[Category]int `json:"categoryBreakdown"`
	ByDifficulty    map[int]int      `json:"difficultyBreakdown"`
	AddedThisWeek   int              `json:"addedThisWeek"`
	TopTags         []TagCount       `json:"topTags"`
}
