package service

import (
	"context"
	"math"
	"sort"

	"github.com/Eve04lim/recipe-manager-app/pkg/types"
)

// recentlyAddedLimit and topTagsLimit bound the stats payload.
const (
	recentlyAddedLimit = 5
	topTagsLimit       = 10
)

// GetStats computes collection-wide statistics. Pure read; no side effects.
// AvgRating averages only recipes rated above zero, rounded to one decimal.
// MostCooked is omitted when no recipe has been cooked.
func (s *Service) GetStats(ctx context.Context) (*types.Stats, error) {
	all, err := s.table.All(ctx)
	if err != nil {
		return nil, err
	}

	st := &types.Stats{
		TotalRecipes:  len(all),
		ByCategory:    make(map[types.Category]int),
		ByDifficulty:  make(map[int]int),
		RecentlyAdded: []*types.Recipe{},
	}

	var ratingSum, ratedCount int
	var mostCooked *types.Recipe
	tagCounts := make(map[string]int)
	weekAgo := s.now().Add(-week)

	for _, r := range all {
		if r.IsFavorite {
			st.FavoriteRecipes++
		}
		st.TotalCookTime += r.PrepTime + r.CookTime
		if r.Rating > 0 {
			ratingSum += r.Rating
			ratedCount++
		}
		if mostCooked == nil || r.CookCount > mostCooked.CookCount {
			mostCooked = r
		}
		st.ByCategory[r.Category]++
		st.ByDifficulty[r.Difficulty]++
		if r.CreatedAt.After(weekAgo) {
			st.AddedThisWeek++
		}
		for _, tag := range r.Tags {
			tagCounts[tag]++
		}
	}

	if ratedCount > 0 {
		st.AvgRating = round1(float64(ratingSum) / float64(ratedCount))
	}
	if mostCooked != nil && mostCooked.CookCount > 0 {
		st.MostCooked = mostCooked
	}

	recent := append([]*types.Recipe(nil), all...)
	sort.SliceStable(recent, func(i, j int) bool {
		return recent[i].CreatedAt.After(recent[j].CreatedAt)
	})
	if len(recent) > recentlyAddedLimit {
		recent = recent[:recentlyAddedLimit]
	}
	st.RecentlyAdded = recent

	st.TopTags = topTags(tagCounts, topTagsLimit)
	return st, nil
}

// topTags returns the n most frequent tags, count descending with a tag
// tie-break for determinism.
func topTags(counts map[string]int, n int) []types.TagCount {
	out := make([]types.TagCount, 0, len(counts))
	for tag, count := range counts {
		out = append(out, types.TagCount{Tag: tag, Count: count})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Tag < out[j].Tag
	})
	if len(out) > n {
		out = out[:n]
	}
	return out
}

// round1 rounds to one decimal place.
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
