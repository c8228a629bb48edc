package model

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVisit_TableName(t *testing.T) {
	assert.Equal(t, "visits", Visit{}.TableName())
}

func TestVisit_BeforeCreate(t *testing.T) {
	v := &Visit{LinkID: "link-1"}
	err := v.BeforeCreate(nil)
	require.NoError(t, err)

	_, err = uuid.Parse(v.ID)
	assert.NoError(t, err)
}

func TestVisit_OptionalFields(t *testing.T) {
	// Metadata is stored as given; absence is allowed.
	v := &Visit{LinkID: "link-1"}
	assert.Empty(t, v.IPAddress)
	assert.Empty(t, v.UserAgent)
	assert.Empty(t, v.Referer)
}
