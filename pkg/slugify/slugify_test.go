package slugify_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/unstdkit/unstd/pkg/slugify"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		opts     []slugify.Option
		expected string
	}{
		{
			name:     "simple text",
			input:    "Hello World",
			expected: "hello-world",
		},
		{
			name:     "punctuation collapses",
			input:    "Hello,  World!!",
			expected: "hello-world",
		},
		{
			name:     "diacritics fold to ascii",
			input:    "Crème Brûlée",
			expected: "creme-brulee",
		},
		{
			name:     "leading and trailing stripped",
			input:    "  --Hello--  ",
			expected: "hello",
		},
		{
			name:     "underscores survive",
			input:    "snake_case name",
			expected: "snake_case-name",
		},
		{
			name:     "non-latin runes dropped",
			input:    "日本 2024",
			expected: "2024",
		},
		{
			name:     "empty input",
			input:    "",
			expected: "",
		},
		{
			name:     "only punctuation",
			input:    "!!!",
			expected: "",
		},
		{
			name:     "custom delimiter",
			input:    "Hello World",
			opts:     []slugify.Option{slugify.Delimiter("_")},
			expected: "hello_world",
		},
		{
			name:     "preserve case",
			input:    "Hello World",
			opts:     []slugify.Option{slugify.Lowercase(false)},
			expected: "Hello-World",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, slugify.Slugify(tt.input, tt.opts...))
		})
	}
}
