package models

import (
	"reflect"
	"testing"
)

// TestNonBlank tests blank filtering with order preservation
func TestNonBlank(t *testing.T) {
	tests := []struct {
		name    string
		entries []string
		want    []string
	}{
		{
			name:    "Blanks around one URL",
			entries: []string{"", "http://a", ""},
			want:    []string{"http://a"},
		},
		{
			name:    "Whitespace-only entries filtered",
			entries: []string{"  ", "\t", "first", " \n "},
			want:    []string{"first"},
		},
		{
			name:    "Order preserved",
			entries: []string{"b", "", "a"},
			want:    []string{"b", "a"},
		},
		{
			name:    "Entries not trimmed",
			entries: []string{" http://a "},
			want:    []string{" http://a "},
		},
		{
			name:    "All blank",
			entries: []string{"", "  "},
			want:    []string{},
		},
		{
			name:    "Empty input",
			entries: []string{},
			want:    []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NonBlank(tt.entries)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("NonBlank(%v) = %v, want %v", tt.entries, got, tt.want)
			}
		})
	}
}

// TestHasJobTarget tests the pre-flight job target check
func TestHasJobTarget(t *testing.T) {
	tests := []struct {
		name  string
		draft DraftSubmission
		want  bool
	}{
		{
			name:  "No lists at all",
			draft: DraftSubmission{},
			want:  false,
		},
		{
			name:  "Only blank entries",
			draft: DraftSubmission{JobURLs: []string{"", " "}, JobDescriptions: []string{"\t"}},
			want:  false,
		},
		{
			name:  "One URL",
			draft: DraftSubmission{JobURLs: []string{"", "http://a"}},
			want:  true,
		},
		{
			name:  "One description",
			draft: DraftSubmission{JobDescriptions: []string{"We need a Go engineer"}},
			want:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.draft.HasJobTarget(); got != tt.want {
				t.Errorf("HasJobTarget() = %v, want %v", got, tt.want)
			}
		})
	}
}
