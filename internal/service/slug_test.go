package service

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateSlug(t *testing.T) {
	generated := regexp.MustCompile(`^[A-Za-z0-9]{6}$`)

	t.Run("matches the generated slug shape", func(t *testing.T) {
		for i := 0; i < 100; i++ {
			slug := GenerateSlug(SlugLength)
			assert.Len(t, slug, SlugLength)
			assert.Regexp(t, generated, slug)
		}
	})

	t.Run("draws vary between calls", func(t *testing.T) {
		seen := make(map[string]bool)
		for i := 0; i < 50; i++ {
			seen[GenerateSlug(SlugLength)] = true
		}
		// 50 draws from a 62^6 space collapsing to one value would mean
		// a broken generator.
		assert.Greater(t, len(seen), 1)
	})
}

func TestValidSlug(t *testing.T) {
	tests := []struct {
		name string
		slug string
		want bool
	}{
		{"simple slug", "abc123", true},
		{"minimum length", "abc", true},
		{"hyphen and underscore", "my-slug_1", true},
		{"maximum length", "a1234567890123456789012345678901234567890123456789", true},
		{"too short", "ab", false},
		{"too long", "a12345678901234567890123456789012345678901234567890", false},
		{"empty", "", false},
		{"spaces", "a b c", false},
		{"slash", "a/b", false},
		{"unicode", "abcé12", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidSlug(tt.slug))
		})
	}
}
