package service

import (
	"math/rand"
	"regexp"
)

const (
	slugAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	// SlugLength is the length of generated slugs; 62^6 candidates.
	SlugLength = 6
	// MaxSlugAttempts bounds the allocation retry loop.
	MaxSlugAttempts = 10
)

var slugPattern = regexp.MustCompile(`^[A-Za-z0-9_-]{3,50}$`)

// GenerateSlug draws n characters uniformly from the alphanumeric alphabet
func GenerateSlug(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = slugAlphabet[rand.Intn(len(slugAlphabet))]
	}
	return string(b)
}

// ValidSlug reports whether a requested slug is well formed
func ValidSlug(slug string) bool {
	return slugPattern.MatchString(slug)
}
