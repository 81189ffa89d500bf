// Package integration provides CLI integration tests for recipes.
package integration

import (
	"bytes"
	"encoding/json"
	"os"
	"os/exec"
	"path/filepath"
	"testing"
)

var (
	// recipesBin is the path to the built recipes binary.
	recipesBin string
	// buildErr captures any build error.
	buildErr error
)

// BuildError wraps a build error with output.
type BuildError struct {
	Err    error
	Output string
}

func (e *BuildError) Error() string {
	return e.Err.Error() + ": " + e.Output
}

// FindProjectRoot finds the project root by walking up and looking for go.mod.
func FindProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for {
		goModPath := filepath.Join(dir, "go.mod")
		if _, err := os.Stat(goModPath); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", os.ErrNotExist
		}
		dir = parent
	}
}

// SetRecipesBin sets the path to the recipes binary (called from TestMain).
func SetRecipesBin(path string) {
	recipesBin = path
}

// SetBuildErr sets the build error (called from TestMain).
func SetBuildErr(err error) {
	buildErr = err
}

// TestEnv provides an isolated test environment with its own config and data
// directory. The config sets environment: development so the doctor
// maintenance commands are usable in tests.
type TestEnv struct {
	t       *testing.T
	TempDir string
	Config  string
	DataDir string
}

// NewTestEnv creates a new isolated test environment.
func NewTestEnv(t *testing.T) *TestEnv {
	t.Helper()

	if buildErr != nil {
		t.Fatalf("failed to build recipes: %v", buildErr)
	}
	if recipesBin == "" {
		t.Fatal("recipes binary not built (recipesBin is empty)")
	}

	tempDir := t.TempDir()
	dataDir := filepath.Join(tempDir, "data")
	configDir := filepath.Join(tempDir, "config")

	if err := os.MkdirAll(configDir, 0755); err != nil {
		t.Fatalf("failed to create config dir: %v", err)
	}
	configContent := "data_dir: " + dataDir + "\nenvironment: development\n"
	if err := os.WriteFile(filepath.Join(configDir, "config.yaml"), []byte(configContent), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	return &TestEnv{
		t:       t,
		TempDir: tempDir,
		Config:  configDir,
		DataDir: dataDir,
	}
}

// CmdResult holds the result of a recipes command execution.
type CmdResult struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// RunRecipes executes the recipes CLI with the given arguments.
// Returns stdout, stderr, and exit code.
func (e *TestEnv) RunRecipes(args ...string) CmdResult {
	e.t.Helper()

	allArgs := append([]string{"--config-dir", e.Config, "--data-dir", e.DataDir}, args...)
	cmd := exec.Command(recipesBin, allArgs...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	exitCode := 0
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			exitCode = exitErr.ExitCode()
		} else {
			e.t.Fatalf("failed to run recipes: %v", err)
		}
	}

	return CmdResult{
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
		ExitCode: exitCode,
	}
}

// MustRunRecipes executes the recipes CLI and fails the test if it returns
// non-zero.
func (e *TestEnv) MustRunRecipes(args ...string) CmdResult {
	e.t.Helper()
	result := e.RunRecipes(args...)
	if result.ExitCode != 0 {
		e.t.Fatalf("recipes %v failed with exit code %d:\nstdout: %s\nstderr: %s",
			args, result.ExitCode, result.Stdout, result.Stderr)
	}
	return result
}

// WriteDraftFile writes a draft JSON payload to a file inside the temp
// directory and returns the path.
func (e *TestEnv) WriteDraftFile(name, payload string) string {
	e.t.Helper()
	path := filepath.Join(e.TempDir, name)
	if err := os.WriteFile(path, []byte(payload), 0644); err != nil {
		e.t.Fatalf("failed to write draft file: %v", err)
	}
	return path
}

// ParseJSON parses JSON output into the target type.
func ParseJSON[T any](t *testing.T, jsonStr string) T {
	t.Helper()
	var result T
	if err := json.Unmarshal([]byte(jsonStr), &result); err != nil {
		t.Fatalf("failed to parse JSON %q: %v", jsonStr, err)
	}
	return result
}

// Recipe represents a recipe entity for JSON parsing.
type Recipe struct {
	ID         string   `json:"id"`
	Title      string   `json:"title"`
	Category   string   `json:"category"`
	Difficulty int      `json:"difficulty"`
	Tags       []string `json:"tags"`
	IsFavorite bool     `json:"isFavorite"`
	Rating     int      `json:"rating"`
	CookCount  int      `json:"cookCount"`
	CreatedAt  string   `json:"createdAt"`
	UpdatedAt  string   `json:"updatedAt"`
	LastCooked *string  `json:"lastCooked"`
	Steps      []struct {
		ID          string `json:"id"`
		StepNumber  int    `json:"stepNumber"`
		Description string `json:"description"`
	} `json:"steps"`
	Ingredients []struct {
		ID     string  `json:"id"`
		Name   string  `json:"name"`
		Amount float64 `json:"amount"`
		Unit   string  `json:"unit"`
	} `json:"ingredients"`
}

// Backup represents the export envelope for JSON parsing.
type Backup struct {
	Version     int      `json:"version"`
	Timestamp   string   `json:"timestamp"`
	RecipeCount int      `json:"recipeCount"`
	Recipes     []Recipe `json:"recipes"`
}

// draftJSON is a minimal valid recipe draft used across tests.
const draftJSON = `{
  "title": "チキンカレー",
  "servings": 4,
  "prepTime": 20,
  "cookTime": 40,
  "difficulty": 2,
  "category": "主食",
  "ingredients": [
    {"name": "鶏もも肉", "amount": 500, "unit": "g"},
    {"name": "玉ねぎ", "amount": 2, "unit": "個"}
  ],
  "steps": [
    {"description": "切る"},
    {"description": "炒める", "timer": 5}
  ],
  "tags": ["簡単", "人気"],
  "rating": 5
}`
