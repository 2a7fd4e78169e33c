package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractColumnNameFromGormTag(t *testing.T) {
	assert.Equal(t, "slider_position", extractColumnNameFromGormTag("column:slider_position;not null;index"))
	assert.Equal(t, "", extractColumnNameFromGormTag("type:text;not null"))
	assert.Equal(t, "", extractColumnNameFromGormTag(""))
}

func TestGetModelFields_VibeConfig(t *testing.T) {
	fields := getModelFields(VibeConfig{})
	assert.Equal(t, []string{"id", "name", "slider_position", "config"}, fields)
}

func TestFindColumnMismatches(t *testing.T) {
	dbColumns := []string{"id", "title", "legacy_slug", "created_at"}
	modelFields := []string{"id", "title", "created_at"}

	assert.Equal(t, []string{"legacy_slug"}, findColumnMismatches(dbColumns, modelFields))
	assert.Empty(t, findColumnMismatches(dbColumns[:2], modelFields))
}
