package model

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string {
	return &s
}

func TestShortLink_TableName(t *testing.T) {
	assert.Equal(t, "short_links", ShortLink{}.TableName())
}

func TestShortLink_BeforeCreate(t *testing.T) {
	t.Run("assigns UUID when empty", func(t *testing.T) {
		sl := &ShortLink{Slug: "abc123"}
		err := sl.BeforeCreate(nil)
		require.NoError(t, err)
		assert.NotEmpty(t, sl.ID)

		_, err = uuid.Parse(sl.ID)
		assert.NoError(t, err)
	})

	t.Run("keeps an existing id", func(t *testing.T) {
		sl := &ShortLink{ID: "fixed-id"}
		err := sl.BeforeCreate(nil)
		require.NoError(t, err)
		assert.Equal(t, "fixed-id", sl.ID)
	})
}

func TestShortLink_CanBeManagedBy(t *testing.T) {
	tests := []struct {
		name   string
		owner  *string
		caller *string
		want   bool
	}{
		{
			name:   "anonymous caller on anonymous link",
			owner:  nil,
			caller: nil,
			want:   true,
		},
		{
			name:   "anonymous caller on owned link",
			owner:  strPtr("user-1"),
			caller: nil,
			want:   false,
		},
		{
			name:   "owner on own link",
			owner:  strPtr("user-1"),
			caller: strPtr("user-1"),
			want:   true,
		},
		{
			name:   "identified caller on another owner's link",
			owner:  strPtr("user-1"),
			caller: strPtr("user-2"),
			want:   false,
		},
		{
			name:   "identified caller cannot claim an anonymous link",
			owner:  nil,
			caller: strPtr("user-1"),
			want:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sl := &ShortLink{UserID: tt.owner}
			assert.Equal(t, tt.want, sl.CanBeManagedBy(tt.caller))
		})
	}
}

func TestShortLink_WithVisitCount(t *testing.T) {
	sl := &ShortLink{Slug: "abc123"}
	got := sl.WithVisitCount(42)

	assert.Same(t, sl, got)
	assert.Equal(t, int64(42), sl.VisitCount)
	require.NotNil(t, sl.Count)
	assert.Equal(t, int64(42), sl.Count.Visits)
}

func TestShortLink_JSONShape(t *testing.T) {
	sl := &ShortLink{
		ID:          "123e4567-e89b-12d3-a456-426614174000",
		Slug:        "abc123",
		OriginalURL: "https://example.com/a",
		UserID:      strPtr("user-1"),
		IsActive:    true,
	}
	sl.WithVisitCount(3)

	data, err := json.Marshal(sl)
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &decoded))

	assert.Equal(t, "abc123", decoded["slug"])
	assert.Equal(t, "https://example.com/a", decoded["originalUrl"])
	assert.Equal(t, "user-1", decoded["userId"])
	assert.Equal(t, true, decoded["isActive"])

	count, ok := decoded["_count"].(map[string]interface{})
	require.True(t, ok, "_count must be an object")
	assert.Equal(t, float64(3), count["visits"])

	// The raw aggregate column never leaks into responses
	assert.NotContains(t, decoded, "VisitCount")
	assert.NotContains(t, decoded, "visit_count")
}
