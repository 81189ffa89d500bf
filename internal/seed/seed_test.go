package seed

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Eve04lim/recipe-manager-app/internal/service"
	"github.com/Eve04lim/recipe-manager-app/internal/sqlite"
	"github.com/Eve04lim/recipe-manager-app/pkg/types"
)

func openTestService(t *testing.T) *service.Service {
	t.Helper()
	b := sqlite.NewBackend()
	require.NoError(t, b.Open(types.Config{DataDir: t.TempDir()}))
	t.Cleanup(func() { b.Close() })
	table, err := b.Recipes()
	require.NoError(t, err)
	return service.New(table)
}

func TestDrafts_AllValid(t *testing.T) {
	for _, draft := range Drafts() {
		assert.NoError(t, types.ValidateDraft(draft), draft.Title)
	}
}

func TestDrafts_FreshCopies(t *testing.T) {
	first := Drafts()
	first[0].Title = "改変"
	first[0].Tags[0] = "改変タグ"

	second := Drafts()
	assert.Equal(t, "チキンカレー", second[0].Title)
	assert.Equal(t, "簡単", second[0].Tags[0])
}

func TestLoad_PopulatesEmptyStore(t *testing.T) {
	svc := openTestService(t)
	ctx := context.Background()

	added, err := Load(ctx, svc)
	require.NoError(t, err)
	assert.Equal(t, len(Drafts()), added)

	n, err := svc.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, added, n)

	curry, err := svc.Search(ctx, "チキンカレー")
	require.NoError(t, err)
	require.Len(t, curry, 1)
	assert.Equal(t, types.CategoryStaple, curry[0].Category)
	assert.Len(t, curry[0].Steps, 6)
}

func TestLoad_SkipsNonEmptyStore(t *testing.T) {
	svc := openTestService(t)
	ctx := context.Background()

	_, err := Load(ctx, svc)
	require.NoError(t, err)

	again, err := Load(ctx, svc)
	require.NoError(t, err)
	assert.Zero(t, again)

	n, err := svc.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, len(Drafts()), n)
}
