package width

import (
	"reflect"
	"testing"
)

func TestParseInline(t *testing.T) {
	tests := []struct {
		name  string
		style string
		want  []Declaration
	}{
		{"empty", "", nil},
		{"single", "color: red", []Declaration{{"color", "red"}}},
		{"multiple", "color: red; flex: 0 0 50%;", []Declaration{{"color", "red"}, {"flex", "0 0 50%"}}},
		{"extra whitespace", "  margin :  1px   2px ", []Declaration{{"margin", "1px 2px"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseInline(tt.style); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseInline(%q) = %v, want %v", tt.style, got, tt.want)
			}
		})
	}
}

func TestMergeInline(t *testing.T) {
	decls := Style{FlexBasisPercent: 40}.Declarations()

	tests := []struct {
		name     string
		existing string
		want     string
	}{
		{"empty", "", "flex: 0 0 40%; min-width: 0"},
		{"keeps others", "color: red", "color: red; flex: 0 0 40%; min-width: 0"},
		{"replaces in place", "flex: 1; color: red", "flex: 0 0 40%; color: red; min-width: 0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MergeInline(tt.existing, decls)
			if got != tt.want {
				t.Errorf("MergeInline(%q) = %q, want %q", tt.existing, got, tt.want)
			}
			if again := MergeInline(got, decls); again != got {
				t.Errorf("MergeInline is not idempotent: %q then %q", got, again)
			}
		})
	}
}

func TestFormatInline(t *testing.T) {
	got := FormatInline([]Declaration{{"a", "1"}, {"b", "2"}})
	if got != "a: 1; b: 2" {
		t.Errorf("FormatInline() = %q", got)
	}
}
