package usecase

import (
	"reflect"
	"testing"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "lowercases and splits",
			input: "Grilled Chicken Sandwich",
			want:  []string{"grilled", "chicken", "sandwich"},
		},
		{
			name:  "drops stop words and units",
			input: "chicken with rice 12 oz",
			want:  []string{"chicken", "rice"},
		},
		{
			name:  "drops punctuation and numerics",
			input: "mac & cheese, 2!",
			want:  []string{"mac", "cheese"},
		},
		{
			name:  "deduplicates preserving order",
			input: "chicken chicken rice chicken",
			want:  []string{"chicken", "rice"},
		},
		{
			name:  "empty input",
			input: "",
			want:  nil,
		},
		{
			name:  "all stop words",
			input: "the and of with",
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Tokenize(tt.input)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Tokenize(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalizeCacheKey(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Grilled Chicken", "nutrition:grilled chicken"},
		{"  chicken!!  ", "nutrition:chicken"},
		{"", "nutrition:"},
	}

	for _, tt := range tests {
		if got := NormalizeCacheKey(tt.input); got != tt.want {
			t.Errorf("NormalizeCacheKey(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
