// List command for the recipes CLI: filtered, sorted collection views.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Eve04lim/recipe-manager-app/internal/filterview"
	"github.com/Eve04lim/recipe-manager-app/pkg/types"
)

var (
	listCategory   string
	listDifficulty int
	listMaxPrep    int
	listMaxCook    int
	listTags       []string
	listFavorites  bool
	listHasImage   bool
	listSortField  string
	listSortDesc   bool
	listStats      bool
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List recipes with optional filters and sorting",
	Long: `List shows the collection, optionally narrowed by filters. Every
active filter must match; tags are the exception, where carrying any one
of the selected tags is enough.

Sort fields: title, createdAt, lastCooked, cookCount, rating, prepTime, cookTime

Example:
  recipes list
  recipes list --category 主食 --max-cook-time 30
  recipes list --tags 簡単,ヘルシー --sort rating --desc
  recipes list --favorites --stats`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		state := filterview.NewState()
		if listCategory != "" {
			cat := types.Category(listCategory)
			if cat != types.CategoryAll && !types.ValidCategory(cat) {
				fmt.Fprintf(os.Stderr, "unknown category %q\n", listCategory)
				os.Exit(exitUserError)
			}
			state.Filter.Category = cat
		}
		state.Filter.Difficulty = listDifficulty
		if cmd.Flags().Changed("max-prep-time") {
			state.Filter.MaxPrepTime = &listMaxPrep
		}
		if cmd.Flags().Changed("max-cook-time") {
			state.Filter.MaxCookTime = &listMaxCook
		}
		state.Filter.Tags = listTags
		if listFavorites {
			t := true
			state.Filter.Favorite = &t
		}
		if cmd.Flags().Changed("has-image") {
			state.Filter.HasImage = &listHasImage
		}
		if listSortField != "" {
			field := types.SortField(listSortField)
			if !types.ValidSortField(field) {
				fmt.Fprintf(os.Stderr, "unknown sort field %q\n", listSortField)
				os.Exit(exitUserError)
			}
			state.Sort.Field = field
			state.Sort.Direction = types.Ascending
		}
		if listSortDesc {
			state.Sort.Direction = types.Descending
		}

		backend, _, client, err := openStore()
		if err != nil {
			fmt.Fprintln(os.Stderr, "list:", err)
			os.Exit(exitSysError)
		}
		defer backend.Close()

		all, err := client.Recipes(cmd.Context())
		if err != nil {
			fmt.Fprintln(os.Stderr, "list:", err)
			os.Exit(exitSysError)
		}

		view := filterview.Apply(all, state)

		if flagJSON {
			if listStats {
				return printJSON(filterview.Summarize(all, view))
			}
			return printJSON(view)
		}

		printRecipeList(view)
		if listStats {
			vs := filterview.Summarize(all, view)
			fmt.Printf("\n%d of %d recipes, %d favorites, %d categories, avg rating %.1f\n",
				vs.Filtered, vs.Total, vs.Favorites, vs.Categories, vs.AvgRating)
		}
		return nil
	},
}

func init() {
	listCmd.Flags().StringVar(&listCategory, "category", "", "filter by category")
	listCmd.Flags().IntVar(&listDifficulty, "difficulty", 0, "filter by exact difficulty (1-5)")
	listCmd.Flags().IntVar(&listMaxPrep, "max-prep-time", 0, "maximum prep time in minutes")
	listCmd.Flags().IntVar(&listMaxCook, "max-cook-time", 0, "maximum cook time in minutes")
	listCmd.Flags().StringSliceVar(&listTags, "tags", nil, "filter by tags (any match)")
	listCmd.Flags().BoolVar(&listFavorites, "favorites", false, "only favorites")
	listCmd.Flags().BoolVar(&listHasImage, "has-image", false, "filter by image presence")
	listCmd.Flags().StringVar(&listSortField, "sort", "", "sort field (default createdAt)")
	listCmd.Flags().BoolVar(&listSortDesc, "desc", false, "sort descending")
	listCmd.Flags().BoolVar(&listStats, "stats", false, "show view statistics")
}
