package service

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Eve04lim/recipe-manager-app/pkg/types"
)

func TestExportBackup(t *testing.T) {
	svc, _, clock := newTestService()
	ctx := context.Background()

	_, err := svc.Add(ctx, draftCurry())
	require.NoError(t, err)

	backup, err := svc.ExportBackup(ctx)
	require.NoError(t, err)

	assert.Equal(t, BackupVersion, backup.Version)
	assert.Equal(t, clock.t, backup.Timestamp)
	assert.Equal(t, 1, backup.RecipeCount)
	require.Len(t, backup.Recipes, 1)
}

func TestExportBackup_EmptyStore(t *testing.T) {
	svc, _, _ := newTestService()

	backup, err := svc.ExportBackup(context.Background())
	require.NoError(t, err)
	assert.Zero(t, backup.RecipeCount)
	assert.NotNil(t, backup.Recipes)
}

func TestParseImport_Array(t *testing.T) {
	data := []byte(`[{"id":"r1","title":"味噌汁"}]`)
	recipes, err := ParseImport(data)
	require.NoError(t, err)
	require.Len(t, recipes, 1)
	assert.Equal(t, "味噌汁", recipes[0].Title)
}

func TestParseImport_Envelope(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()
	_, err := svc.Add(ctx, draftCurry())
	require.NoError(t, err)

	backup, err := svc.ExportBackup(ctx)
	require.NoError(t, err)
	data, err := json.Marshal(backup)
	require.NoError(t, err)

	recipes, err := ParseImport(data)
	require.NoError(t, err)
	require.Len(t, recipes, 1)
	assert.Equal(t, "チキンカレー", recipes[0].Title)
}

func TestParseImport_Rejects(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"not json", `{{{`},
		{"object without recipes", `{"version":1}`},
		{"newer version", `{"version":99,"recipes":[]}`},
		{"scalar", `42`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseImport([]byte(tt.data))
			assert.ErrorIs(t, err, types.ErrImportFormat)
		})
	}
}

func TestImportReplace(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	existing, err := svc.Add(ctx, draftCurry())
	require.NoError(t, err)

	incoming := []*types.Recipe{
		{ID: "imported", Title: "味噌汁", Category: types.CategorySoup},
	}
	require.NoError(t, svc.ImportReplace(ctx, incoming))

	_, err = svc.GetByID(ctx, existing.ID)
	assert.ErrorIs(t, err, types.ErrNotFound)

	got, err := svc.GetByID(ctx, "imported")
	require.NoError(t, err)
	assert.Equal(t, "味噌汁", got.Title)
}

func TestImportMerge(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	existing, err := svc.Add(ctx, draftCurry())
	require.NoError(t, err)

	incoming := []*types.Recipe{
		{ID: existing.ID, Title: "上書きカレー", Category: types.CategoryStaple},
		{ID: "new-one", Title: "味噌汁", Category: types.CategorySoup},
	}
	require.NoError(t, svc.ImportMerge(ctx, incoming))

	n, err := svc.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	got, err := svc.GetByID(ctx, existing.ID)
	require.NoError(t, err)
	assert.Equal(t, "上書きカレー", got.Title)
}

func TestImport_NormalizesMissingFields(t *testing.T) {
	svc, _, clock := newTestService()
	ctx := context.Background()

	incoming := []*types.Recipe{
		{Title: "idなし", Category: types.CategoryOther,
			Steps: []types.CookingStep{{Description: "x"}}},
	}
	require.NoError(t, svc.ImportMerge(ctx, incoming))

	all, err := svc.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)

	got := all[0]
	assert.NotEmpty(t, got.ID)
	assert.Equal(t, clock.t, got.CreatedAt)
	assert.Equal(t, got.CreatedAt, got.UpdatedAt)
	assert.NotNil(t, got.Tags)
	require.Len(t, got.Steps, 1)
	assert.NotEmpty(t, got.Steps[0].ID)
	assert.Equal(t, 1, got.Steps[0].StepNumber)
}

func TestBackupFilename(t *testing.T) {
	ts := time.Date(2026, 8, 29, 15, 4, 5, 0, time.UTC)
	assert.Equal(t, "recipes-backup-2026-08-29.json", BackupFilename(ts))
}

func TestValidateIntegrity(t *testing.T) {
	svc, table, _ := newTestService()
	ctx := context.Background()

	_, err := svc.Add(ctx, draftCurry())
	require.NoError(t, err)

	report, err := svc.ValidateIntegrity(ctx)
	require.NoError(t, err)
	assert.True(t, report.OK)
	assert.Equal(t, 1, report.Scanned)
	assert.Empty(t, report.Findings)

	// A broken record planted directly in storage is reported, not fixed.
	broken := &types.Recipe{ID: "broken", Category: types.CategoryOther}
	require.NoError(t, table.Put(ctx, broken))

	report, err = svc.ValidateIntegrity(ctx)
	require.NoError(t, err)
	assert.False(t, report.OK)
	assert.Equal(t, 2, report.Scanned)
	assert.Len(t, report.Findings, 3) // empty title, no ingredients, no steps

	got, err := svc.GetByID(ctx, "broken")
	require.NoError(t, err)
	assert.Empty(t, got.Title)
}
