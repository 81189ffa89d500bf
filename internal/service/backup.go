package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Eve04lim/recipe-manager-app/pkg/types"
)

// BackupVersion is the current backup envelope version.
const BackupVersion = 1

// Backup is the export envelope: the recipe collection plus provenance.
type Backup struct {
	Version     int             `json:"version"`
	Timestamp   time.Time       `json:"timestamp"`
	RecipeCount int             `json:"recipeCount"`
	Recipes     []*types.Recipe `json:"recipes"`
}

// ExportAll returns a full-collection dump.
func (s *Service) ExportAll(ctx context.Context) ([]*types.Recipe, error) {
	return s.table.All(ctx)
}

// ExportBackup wraps the full collection in a backup envelope.
func (s *Service) ExportBackup(ctx context.Context) (*Backup, error) {
	all, err := s.table.All(ctx)
	if err != nil {
		return nil, err
	}
	if all == nil {
		all = []*types.Recipe{}
	}
	return &Backup{
		Version:     BackupVersion,
		Timestamp:   s.now(),
		RecipeCount: len(all),
		Recipes:     all,
	}, nil
}

// ImportReplace restores a backup: clear then bulk-insert as one atomic
// unit. A failure leaves the prior collection intact.
func (s *Service) ImportReplace(ctx context.Context, recipes []*types.Recipe) error {
	return s.table.Replace(ctx, s.normalizeImported(recipes))
}

// ImportMerge upserts recipes by id, leaving unrelated records alone.
func (s *Service) ImportMerge(ctx context.Context, recipes []*types.Recipe) error {
	return s.table.BulkPut(ctx, s.normalizeImported(recipes))
}

// ParseImport accepts either a bare JSON array of recipes or a backup
// envelope. Malformed payloads fail with ErrImportFormat and a description
// of what was wrong.
func ParseImport(data []byte) ([]*types.Recipe, error) {
	var recipes []*types.Recipe
	if err := json.Unmarshal(data, &recipes); err == nil {
		return recipes, nil
	}

	var backup Backup
	if err := json.Unmarshal(data, &backup); err != nil {
		return nil, fmt.Errorf("%w: not a recipe array or backup object: %v",
			types.ErrImportFormat, err)
	}
	if backup.Recipes == nil {
		return nil, fmt.Errorf("%w: backup object has no recipes field",
			types.ErrImportFormat)
	}
	if backup.Version > BackupVersion {
		return nil, fmt.Errorf("%w: backup version %d is newer than supported version %d",
			types.ErrImportFormat, backup.Version, BackupVersion)
	}
	return backup.Recipes, nil
}

// BackupFilename names an export file with the given date, matching the
// download naming of the original exporter.
func BackupFilename(t time.Time) string {
	return "recipes-backup-" + t.Format("2006-01-02") + ".json"
}
