package layout

import (
	"reflect"
	"testing"
)

func TestFlagsAdd(t *testing.T) {
	tests := []struct {
		name  string
		start Flags
		add   []string
		want  Flags
	}{
		{"empty", nil, []string{"bordered"}, Flags{"bordered"}},
		{"keeps order", Flags{"horizontal"}, []string{"bordered"}, Flags{"horizontal", "bordered"}},
		{"dedup", Flags{"bordered"}, []string{"bordered", "horizontal", "bordered"}, Flags{"bordered", "horizontal"}},
		{"skips empty", nil, []string{"", "bordered", ""}, Flags{"bordered"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.start.Add(tt.add...); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Add() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNewFlags(t *testing.T) {
	got := NewFlags("horizontal", "bordered", "horizontal")
	if want := (Flags{"horizontal", "bordered"}); !reflect.DeepEqual(got, want) {
		t.Errorf("NewFlags() = %v, want %v", got, want)
	}
	if !got.Has("bordered") || got.Has("missing") {
		t.Error("Has() mismatch")
	}
}

func TestFlagsValidate(t *testing.T) {
	if err := NewFlags("bordered", "horizontal").Validate(); err != nil {
		t.Errorf("Validate() error = %v", err)
	}
	if err := NewFlags("bad|flag").Validate(); err == nil {
		t.Error("Validate() should reject pipes")
	}
}
