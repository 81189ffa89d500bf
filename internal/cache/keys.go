package cache

import (
	"strconv"
	"strings"
	"time"

	"github.com/Eve04lim/recipe-manager-app/pkg/types"
)

// Key identifies a cached query.
type Key string

// Collection and aggregate keys.
const (
	KeyRecipes   Key = "recipes"
	KeyFavorites Key = "recipes/favorites"
	KeyStats     Key = "stats"
)

// Dynamic key prefixes.
const (
	prefixRecipe   = "recipes/id/"
	prefixCategory = "recipes/category/"
	prefixSearch   = "recipes/search/"
	prefixPopular  = "recipes/popular/"
	prefixRecent   = "recipes/recent/"
)

// RecipeKey is the detail key for one recipe.
func RecipeKey(id string) Key { return Key(prefixRecipe + id) }

// CategoryKey is the listing key for one category.
func CategoryKey(c types.Category) Key { return Key(prefixCategory + string(c)) }

// SearchKey is the result key for one search query.
func SearchKey(query string) Key {
	return Key(prefixSearch + strings.ToLower(strings.TrimSpace(query)))
}

// PopularKey is the listing key for the top recipes by cook count. The
// limit is part of the key: different limits are different queries.
func PopularKey(limit int) Key { return Key(prefixPopular + strconv.Itoa(limit)) }

// RecentKey is the listing key for the most recently cooked recipes,
// keyed per limit like PopularKey.
func RecentKey(limit int) Key { return Key(prefixRecent + strconv.Itoa(limit)) }

// Staleness windows per query. A stale entry is refetched on the next read.
const (
	staleRecipes   = 2 * time.Minute
	staleRecipe    = 5 * time.Minute
	staleFavorites = 1 * time.Minute
	stalePopular   = 10 * time.Minute
	staleRecent    = 1 * time.Minute
	staleCategory  = 5 * time.Minute
	staleSearch    = 30 * time.Second
	staleStats     = 5 * time.Minute
)

// Kind names a mutation for the invalidation table.
type Kind string

const (
	KindAdd        Kind = "add"
	KindUpdate     Kind = "update"
	KindDelete     Kind = "delete"
	KindBulkDelete Kind = "bulkDelete"
	KindCook       Kind = "cook"
	KindImport     Kind = "import"
	KindClear      Kind = "clear"
)

// dependents lists the cache keys whose values a mutation kind renders
// stale. Exact keys are marked invalid; prefixes invalidate every dynamic
// key underneath them.
type dependents struct {
	keys     []Key
	prefixes []string
}

// invalidations is the declarative dependency table consulted after every
// successful mutation. Rollbacks never invalidate: nothing durable changed.
var invalidations = map[Kind]dependents{
	KindAdd: {
		keys:     []Key{KeyStats},
		prefixes: []string{prefixCategory, prefixSearch, prefixRecent},
	},
	KindUpdate: {
		keys:     []Key{KeyStats, KeyFavorites},
		prefixes: []string{prefixCategory, prefixSearch},
	},
	KindDelete: {
		keys:     []Key{KeyStats, KeyFavorites},
		prefixes: []string{prefixCategory, prefixSearch, prefixPopular, prefixRecent},
	},
	KindBulkDelete: {
		keys:     []Key{KeyStats, KeyFavorites},
		prefixes: []string{prefixCategory, prefixSearch, prefixPopular, prefixRecent},
	},
	KindCook: {
		keys:     []Key{KeyStats},
		prefixes: []string{prefixPopular, prefixRecent},
	},
	// KindImport and KindClear are handled wholesale: import invalidates
	// every entry, clear drops the cache.
}
