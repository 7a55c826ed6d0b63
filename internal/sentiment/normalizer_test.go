package sentiment

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},
		{"whitespace only", "   \t\n ", ""},
		{"plain text untouched", "just a plain sentence", "just a plain sentence"},
		{"url removed", "check this http://example.com out", "check this out"},
		{"https url removed", "see https://example.com/page?x=1", "see"},
		{"www token removed", "visit www.example.com today", "visit today"},
		{"mention removed", "thanks @someone for the tip", "thanks for the tip"},
		{"hashtag keeps word", "big news #Tesla today", "big news Tesla today"},
		{"emoji mapped", "love it 😊", "love it happy"},
		{"angry emoji mapped", "so bad 😠", "so bad angry"},
		{"whitespace collapsed", "a   b\t\tc", "a b c"},
		{"everything at once", "Check this out http://example.com #Tesla @elon 😊", "Check this out Tesla happy"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.input))
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{
		"Terrible experience, very disappointed 😠",
		"big news #Tesla today @someone http://example.com",
		"already clean text",
		"",
	}
	for _, in := range inputs {
		once := Normalize(in)
		assert.Equal(t, once, Normalize(once), "normalizing twice must be a no-op for %q", in)
	}
}
