package filterview

import (
	"testing"
	"time"

	"github.com/Eve04lim/recipe-manager-app/pkg/types"
)

func viewRecipe(id, title string, mod ...func(*types.Recipe)) *types.Recipe {
	r := &types.Recipe{
		ID:         id,
		Title:      title,
		Category:   types.CategoryStaple,
		Difficulty: 2,
		PrepTime:   10,
		CookTime:   20,
		CreatedAt:  time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
	}
	for _, fn := range mod {
		fn(r)
	}
	return r
}

func ids(recipes []*types.Recipe) []string {
	out := make([]string, len(recipes))
	for i, r := range recipes {
		out[i] = r.ID
	}
	return out
}

func equalIDs(t *testing.T, got []*types.Recipe, want ...string) {
	t.Helper()
	g := ids(got)
	if len(g) != len(want) {
		t.Fatalf("got %v, want %v", g, want)
	}
	for i := range want {
		if g[i] != want[i] {
			t.Fatalf("got %v, want %v", g, want)
		}
	}
}

func TestApply_SearchAcrossFields(t *testing.T) {
	collection := []*types.Recipe{
		viewRecipe("title", "チキンカレー"),
		viewRecipe("desc", "x", func(r *types.Recipe) { r.Description = "本格カレー味" }),
		viewRecipe("tag", "y", func(r *types.Recipe) { r.Tags = []string{"カレー風味"} }),
		viewRecipe("ing", "z", func(r *types.Recipe) {
			r.Ingredients = []types.Ingredient{{Name: "カレー粉"}}
		}),
		viewRecipe("none", "味噌汁"),
	}

	state := NewState()
	state.SetSearch("カレー")
	got := Apply(collection, state)
	equalIDs(t, got, "title", "desc", "tag", "ing")
}

func TestApply_SearchCaseInsensitive(t *testing.T) {
	collection := []*types.Recipe{
		viewRecipe("hit", "Chicken Curry"),
		viewRecipe("miss", "Salad"),
	}
	state := NewState()
	state.SetSearch("  CURRY ")
	equalIDs(t, Apply(collection, state), "hit")
}

func TestApply_FiltersAreConjunctive(t *testing.T) {
	collection := []*types.Recipe{
		viewRecipe("both", "a", func(r *types.Recipe) {
			r.Category = types.CategorySalad
			r.Difficulty = 1
		}),
		viewRecipe("category-only", "b", func(r *types.Recipe) {
			r.Category = types.CategorySalad
			r.Difficulty = 3
		}),
		viewRecipe("difficulty-only", "c", func(r *types.Recipe) { r.Difficulty = 1 }),
	}

	state := NewState()
	state.Filter.Category = types.CategorySalad
	state.Filter.Difficulty = 1
	equalIDs(t, Apply(collection, state), "both")
}

func TestApply_TagFilterIsDisjunctive(t *testing.T) {
	collection := []*types.Recipe{
		viewRecipe("a", "a", func(r *types.Recipe) { r.Tags = []string{"簡単"} }),
		viewRecipe("b", "b", func(r *types.Recipe) { r.Tags = []string{"ヘルシー"} }),
		viewRecipe("c", "c", func(r *types.Recipe) { r.Tags = []string{"時短"} }),
	}

	state := NewState()
	state.Filter.Tags = []string{"簡単", "ヘルシー"}
	equalIDs(t, Apply(collection, state), "a", "b")
}

func TestApply_TimeAndPointerFilters(t *testing.T) {
	fav := true
	img := false
	maxPrep := 15

	collection := []*types.Recipe{
		viewRecipe("keep", "a", func(r *types.Recipe) {
			r.PrepTime = 10
			r.IsFavorite = true
		}),
		viewRecipe("slow", "b", func(r *types.Recipe) {
			r.PrepTime = 30
			r.IsFavorite = true
		}),
		viewRecipe("not-fav", "c", func(r *types.Recipe) { r.PrepTime = 5 }),
		viewRecipe("with-image", "d", func(r *types.Recipe) {
			r.PrepTime = 5
			r.IsFavorite = true
			r.ImageURL = "https://example.com/x.jpg"
		}),
	}

	state := NewState()
	state.Filter.MaxPrepTime = &maxPrep
	state.Filter.Favorite = &fav
	state.Filter.HasImage = &img
	equalIDs(t, Apply(collection, state), "keep")
}

func TestApply_SortStableOnTies(t *testing.T) {
	same := time.Date(2026, 8, 10, 0, 0, 0, 0, time.UTC)
	collection := []*types.Recipe{
		viewRecipe("first", "a", func(r *types.Recipe) { r.CreatedAt = same }),
		viewRecipe("second", "b", func(r *types.Recipe) { r.CreatedAt = same }),
		viewRecipe("third", "c", func(r *types.Recipe) { r.CreatedAt = same }),
	}

	state := NewState() // createdAt descending
	equalIDs(t, Apply(collection, state), "first", "second", "third")
}

func TestApply_SortByRatingDescending(t *testing.T) {
	collection := []*types.Recipe{
		viewRecipe("low", "a", func(r *types.Recipe) { r.Rating = 2 }),
		viewRecipe("high", "b", func(r *types.Recipe) { r.Rating = 5 }),
		viewRecipe("unrated", "c"),
	}

	state := NewState()
	state.SetSort(types.RecipeSort{Field: types.SortByRating, Direction: types.Descending})
	equalIDs(t, Apply(collection, state), "high", "low", "unrated")
}

func TestApply_NeverCookedSortsAsEpoch(t *testing.T) {
	cooked := time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC)
	collection := []*types.Recipe{
		viewRecipe("never", "a"),
		viewRecipe("cooked", "b", func(r *types.Recipe) { r.LastCooked = &cooked }),
	}

	state := NewState()
	state.SetSort(types.RecipeSort{Field: types.SortByLastCooked, Direction: types.Ascending})
	equalIDs(t, Apply(collection, state), "never", "cooked")

	state.SetSort(types.RecipeSort{Field: types.SortByLastCooked, Direction: types.Descending})
	equalIDs(t, Apply(collection, state), "cooked", "never")
}

func TestApply_DoesNotReorderInput(t *testing.T) {
	collection := []*types.Recipe{
		viewRecipe("z", "z", func(r *types.Recipe) { r.Title = "z" }),
		viewRecipe("a", "a", func(r *types.Recipe) { r.Title = "a" }),
	}

	state := NewState()
	state.SetSort(types.RecipeSort{Field: types.SortByTitle, Direction: types.Ascending})
	got := Apply(collection, state)

	equalIDs(t, got, "a", "z")
	equalIDs(t, collection, "z", "a")
}

func TestToggleSort(t *testing.T) {
	state := NewState()

	state.ToggleSort(types.SortByTitle)
	if state.Sort.Field != types.SortByTitle || state.Sort.Direction != types.Ascending {
		t.Fatalf("new field should start ascending, got %+v", state.Sort)
	}

	state.ToggleSort(types.SortByTitle)
	if state.Sort.Direction != types.Descending {
		t.Fatalf("same field should flip direction, got %+v", state.Sort)
	}

	state.ToggleSort(types.SortByRating)
	if state.Sort.Field != types.SortByRating || state.Sort.Direction != types.Ascending {
		t.Fatalf("switching fields should reset to ascending, got %+v", state.Sort)
	}
}

func TestReset(t *testing.T) {
	state := NewState()
	state.SetSearch("カレー")
	state.Filter.Difficulty = 3
	state.ToggleSort(types.SortByCookCount)

	state.Reset()

	def := NewState()
	if state.Search != "" {
		t.Errorf("Search = %q, want empty", state.Search)
	}
	if state.Filter.Category != types.CategoryAll {
		t.Errorf("Category = %q, want %q", state.Filter.Category, types.CategoryAll)
	}
	if state.Sort != def.Sort {
		t.Errorf("Sort = %+v, want %+v", state.Sort, def.Sort)
	}
}

func TestSummarize(t *testing.T) {
	all := []*types.Recipe{
		viewRecipe("a", "a"), viewRecipe("b", "b"), viewRecipe("c", "c"),
	}
	filtered := []*types.Recipe{
		viewRecipe("x", "x", func(r *types.Recipe) {
			r.Rating = 5
			r.IsFavorite = true
			r.Category = types.CategorySalad
		}),
		viewRecipe("y", "y", func(r *types.Recipe) { r.Rating = 4 }),
		// Unrated recipes count toward the view average.
		viewRecipe("z", "z"),
	}

	st := Summarize(all, filtered)
	if st.Total != 3 || st.Filtered != 3 {
		t.Errorf("Total/Filtered = %d/%d, want 3/3", st.Total, st.Filtered)
	}
	if st.Favorites != 1 {
		t.Errorf("Favorites = %d, want 1", st.Favorites)
	}
	if st.Categories != 2 {
		t.Errorf("Categories = %d, want 2", st.Categories)
	}
	if st.AvgRating != 3.0 {
		t.Errorf("AvgRating = %v, want 3.0", st.AvgRating)
	}
}

func TestSummarize_Empty(t *testing.T) {
	st := Summarize(nil, nil)
	if st.AvgRating != 0 {
		t.Errorf("AvgRating = %v, want 0", st.AvgRating)
	}
}
