package utils

import (
	"strings"
	"testing"
)

type createTaskBody struct {
	Title       string `json:"title" validate:"required,min=5,max=60"`
	Description string `json:"description" validate:"required,min=10,max=255"`
}

func TestValidateStruct_TitleLengthBounds(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		title   string
		wantErr bool
	}{
		{"too short", strings.Repeat("a", 4), true},
		{"lower bound", strings.Repeat("a", 5), false},
		{"upper bound", strings.Repeat("a", 60), false},
		{"too long", strings.Repeat("a", 61), true},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			err := ValidateStruct(&createTaskBody{
				Title:       tc.title,
				Description: "a long enough description",
			})
			if tc.wantErr && err == nil {
				t.Fatal("expected validation error")
			}
			if !tc.wantErr && err != nil {
				t.Fatalf("unexpected validation error: %v", err)
			}
		})
	}
}

func TestGetValidationErrors_UsesJSONFieldNames(t *testing.T) {
	t.Parallel()

	err := ValidateStruct(&createTaskBody{Title: "ab", Description: "short"})
	if err == nil {
		t.Fatal("expected validation error")
	}

	issues := GetValidationErrors(err)
	if _, ok := issues["title"]; !ok {
		t.Fatalf("expected issue keyed by json name %q, got %v", "title", issues)
	}
	if _, ok := issues["description"]; !ok {
		t.Fatalf("expected issue keyed by json name %q, got %v", "description", issues)
	}
}

func TestGetValidationErrors_RequiredFields(t *testing.T) {
	t.Parallel()

	err := ValidateStruct(&createTaskBody{})
	if err == nil {
		t.Fatal("expected validation error")
	}

	issues := GetValidationErrors(err)
	if len(issues["title"]) == 0 || len(issues["description"]) == 0 {
		t.Fatalf("expected issues for both required fields, got %v", issues)
	}
}
