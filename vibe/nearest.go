// Package vibe resolves slider positions to vibe presets and turns a preset's
// configuration into CSS custom properties.
package vibe

import "github.com/rpupo63/chameleon-site/models"

const (
	MinPosition     = 0
	MaxPosition     = 100
	DefaultPosition = 50
)

// Clamp limits a slider position to [MinPosition, MaxPosition].
func Clamp(position int) int {
	return max(MinPosition, min(MaxPosition, position))
}

// Nearest returns the preset closest to position. An exact match wins, a
// position at or beyond either end of the scale maps to the first or last
// preset, and equal distances resolve to the preset with the lower position.
// The second result is false when presets is empty.
func Nearest(presets []models.VibeConfig, position int) (models.VibeConfig, bool) {
	if len(presets) == 0 {
		return models.VibeConfig{}, false
	}

	for _, preset := range presets {
		if preset.SliderPosition == position {
			return preset, true
		}
	}

	if position <= MinPosition {
		return presets[0], true
	}
	if position >= MaxPosition {
		return presets[len(presets)-1], true
	}

	best := 0
	bestDiff := distance(position, presets[0].SliderPosition)
	for i := 1; i < len(presets); i++ {
		diff := distance(position, presets[i].SliderPosition)
		if diff < bestDiff || (diff == bestDiff && presets[i].SliderPosition < presets[best].SliderPosition) {
			best = i
			bestDiff = diff
		}
	}
	return presets[best], true
}

func distance(a, b int) int {
	if a > b {
		return a - b
	}
	return b - a
}
