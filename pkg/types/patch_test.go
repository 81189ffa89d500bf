package types

import "testing"

func TestPatchApply_PartialMerge(t *testing.T) {
	r := &Recipe{
		ID:         "r1",
		Title:      "before",
		Servings:   2,
		Difficulty: 3,
		Rating:     2,
	}

	title := "after"
	rating := 5
	p := RecipePatch{Title: &title, Rating: &rating}
	p.Apply(r)

	if r.Title != "after" {
		t.Errorf("Title = %q, want after", r.Title)
	}
	if r.Rating != 5 {
		t.Errorf("Rating = %d, want 5", r.Rating)
	}
	if r.Servings != 2 || r.Difficulty != 3 {
		t.Error("unpatched fields changed")
	}
}

func TestPatchApply_RenumbersSteps(t *testing.T) {
	r := &Recipe{Steps: stepList(2)}
	steps := []CookingStep{
		{ID: "x", StepNumber: 7, Description: "one"},
		{ID: "y", StepNumber: 7, Description: "two"},
		{ID: "z", StepNumber: 1, Description: "three"},
	}
	p := RecipePatch{Steps: &steps}
	p.Apply(r)

	if len(r.Steps) != 3 {
		t.Fatalf("expected 3 steps, got %d", len(r.Steps))
	}
	checkContiguous(t, r.Steps)
}

func TestPatchApply_CopiesSlices(t *testing.T) {
	tags := []string{"a"}
	p := RecipePatch{Tags: &tags}
	r := &Recipe{}
	p.Apply(r)

	tags[0] = "mutated"
	if r.Tags[0] != "a" {
		t.Error("patched Tags alias the caller's slice")
	}
}

func TestPatchIsZero(t *testing.T) {
	if !(RecipePatch{}).IsZero() {
		t.Error("empty patch should be zero")
	}
	title := "x"
	if (RecipePatch{Title: &title}).IsZero() {
		t.Error("patch with a field should not be zero")
	}
}
