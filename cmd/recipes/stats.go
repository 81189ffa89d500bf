// Stats command for the recipes CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show collection statistics",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		backend, _, client, err := openStore()
		if err != nil {
			fmt.Fprintln(os.Stderr, "stats:", err)
			os.Exit(exitSysError)
		}
		defer backend.Close()

		st, err := client.Stats(cmd.Context())
		if err != nil {
			fmt.Fprintln(os.Stderr, "stats:", err)
			os.Exit(exitSysError)
		}

		if flagJSON {
			return printJSON(st)
		}

		fmt.Println("Recipes:       ", st.TotalRecipes)
		fmt.Println("Favorites:     ", st.FavoriteRecipes)
		fmt.Println("Total time:    ", st.TotalCookTime, "min")
		fmt.Printf("Average rating: %.1f\n", st.AvgRating)
		fmt.Println("Added this week:", st.AddedThisWeek)
		if st.MostCooked != nil {
			fmt.Printf("Most cooked:    %s (%d times)\n", st.MostCooked.Title, st.MostCooked.CookCount)
		}
		if len(st.ByCategory) > 0 {
			fmt.Println("By category:")
			for cat, n := range st.ByCategory {
				fmt.Printf("  %-12s %d\n", cat, n)
			}
		}
		if len(st.TopTags) > 0 {
			fmt.Println("Top tags:")
			for _, tc := range st.TopTags {
				fmt.Printf("  %-12s %d\n", tc.Tag, tc.Count)
			}
		}
		return nil
	},
}
