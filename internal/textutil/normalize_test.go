package textutil

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
			name:  "simple words",
			input: "Hello World",
			want:  []string{"hello", "world"},
		},
		{
			name:  "punctuation case and numbers",
			input: "Hi, there! 2 cats.",
			want:  []string{"hi", "there", "cats"},
		},
		{
			// Deleted punctuation does not leave a separator behind.
			name:  "punctuation merges adjacent runs",
			input: "end.The",
			want:  []string{"endthe"},
		},
		{
			name:  "digits inside a word merge",
			input: "abc123def",
			want:  []string{"abcdef"},
		},
		{
			name:  "surrounding whitespace",
			input: "  \n the cat \t",
			want:  []string{"the", "cat"},
		},
		{
			name:  "newlines and tabs separate",
			input: "the cat\nsat\ton",
			want:  []string{"the", "cat", "sat", "on"},
		},
		{
			name:  "repeated separators",
			input: "one  -  two",
			want:  []string{"one", "two"},
		},
		{
			name:  "non latin letters removed",
			input: "café über",
			want:  []string{"caf", "ber"},
		},
		{
			name:  "empty string",
			input: "",
			want:  []string{},
		},
		{
			name:  "only symbols",
			input: "123 !!! 456",
			want:  []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Tokenize(tt.input)
			if got == nil {
				t.Fatal("Tokenize() returned nil slice")
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("Tokenize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestSanitizeKeepsNewlinesWhenAsked(t *testing.T) {
	input := "Cat, Feline\r\nDog\tHound!\n"
	if got, want := Sanitize(input, true), "cat feline \ndog hound"; got != want {
		t.Fatalf("Sanitize(keepNewlines) = %q, want %q", got, want)
	}
	if got, want := Sanitize(input, false), "cat feline  dog hound"; got != want {
		t.Fatalf("Sanitize() = %q, want %q", got, want)
	}
}
