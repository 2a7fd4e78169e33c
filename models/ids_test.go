package models

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestIsUUIDv4(t *testing.T) {
	v4 := uuid.NewString()

	assert.True(t, IsUUIDv4(v4))
	assert.True(t, IsUUIDv4(strings.ToUpper(v4)))
	assert.True(t, IsUUIDv4("123e4567-e89b-42d3-a456-426614174000"))

	assert.False(t, IsUUIDv4(""))
	assert.False(t, IsUUIDv4("not-a-uuid"))
	assert.False(t, IsUUIDv4("123e4567-e89b-12d3-a456-426614174000"), "version 1")
	assert.False(t, IsUUIDv4("123e4567-e89b-42d3-c456-426614174000"), "wrong variant")
	assert.False(t, IsUUIDv4("{"+v4+"}"))
	assert.False(t, IsUUIDv4("urn:uuid:"+v4))
	assert.False(t, IsUUIDv4(strings.ReplaceAll(v4, "-", "")))
}
