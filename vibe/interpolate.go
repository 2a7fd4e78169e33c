package vibe

import (
	"math"
	"regexp"
	"sort"
	"strconv"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/rpupo63/chameleon-site/models"
)

var lengthPattern = regexp.MustCompile(`^(-?\d*\.?\d+)(rem|px|em|%)$`)

// Interpolate blends two configurations. Hex colors are mixed in CIE-L*a*b*,
// CSS lengths sharing a unit are mixed linearly, and everything else (font
// family, grid columns, mismatched units) switches to b once factor reaches
// 0.5. factor is clamped to [0, 1].
func Interpolate(a, b models.Config, factor float64) models.Config {
	t := math.Max(0, math.Min(1, factor))

	return models.Config{
		Typography:   interpolateTypography(a.Typography, b.Typography, t),
		Colors:       interpolateColors(a.Colors, b.Colors, t),
		Spacing:      interpolateSpacing(a.Spacing, b.Spacing, t),
		BorderRadius: mixLength(a.BorderRadius, b.BorderRadius, t),
		GridColumns:  step(a.GridColumns, b.GridColumns, t),
	}
}

// Blend interpolates between the two presets surrounding position. Outside
// the covered range it returns the nearest end preset unchanged.
func Blend(presets []models.VibeConfig, position int) (models.Config, bool) {
	if len(presets) == 0 {
		return models.Config{}, false
	}

	sorted := make([]models.VibeConfig, len(presets))
	copy(sorted, presets)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].SliderPosition < sorted[j].SliderPosition
	})

	position = Clamp(position)
	upper := sort.Search(len(sorted), func(i int) bool {
		return sorted[i].SliderPosition >= position
	})

	switch {
	case upper == len(sorted):
		return sorted[len(sorted)-1].Style(), true
	case sorted[upper].SliderPosition == position || upper == 0:
		return sorted[upper].Style(), true
	}

	lo, hi := sorted[upper-1], sorted[upper]
	factor := float64(position-lo.SliderPosition) / float64(hi.SliderPosition-lo.SliderPosition)
	return Interpolate(lo.Style(), hi.Style(), factor), true
}

func interpolateTypography(a, b *models.Typography, t float64) *models.Typography {
	if a == nil && b == nil {
		return nil
	}
	a, b = orEmpty(a), orEmpty(b)

	out := &models.Typography{FontFamily: stepString(a.FontFamily, b.FontFamily, t)}
	if a.FontSizes != nil || b.FontSizes != nil {
		as, bs := orEmpty(a.FontSizes), orEmpty(b.FontSizes)
		out.FontSizes = &models.FontSizes{
			H1:    mixLength(as.H1, bs.H1, t),
			H2:    mixLength(as.H2, bs.H2, t),
			H3:    mixLength(as.H3, bs.H3, t),
			Body:  mixLength(as.Body, bs.Body, t),
			Small: mixLength(as.Small, bs.Small, t),
		}
	}
	return out
}

func interpolateColors(a, b *models.Colors, t float64) *models.Colors {
	if a == nil && b == nil {
		return nil
	}
	a, b = orEmpty(a), orEmpty(b)

	return &models.Colors{
		Primary:    mixColor(a.Primary, b.Primary, t),
		Secondary:  mixColor(a.Secondary, b.Secondary, t),
		Background: mixColor(a.Background, b.Background, t),
		Text:       mixColor(a.Text, b.Text, t),
		Accent:     mixColor(a.Accent, b.Accent, t),
	}
}

func interpolateSpacing(a, b *models.Spacing, t float64) *models.Spacing {
	if a == nil && b == nil {
		return nil
	}
	a, b = orEmpty(a), orEmpty(b)

	return &models.Spacing{
		XS: mixLength(a.XS, b.XS, t),
		SM: mixLength(a.SM, b.SM, t),
		MD: mixLength(a.MD, b.MD, t),
		LG: mixLength(a.LG, b.LG, t),
		XL: mixLength(a.XL, b.XL, t),
	}
}

func orEmpty[T any](v *T) *T {
	if v == nil {
		return new(T)
	}
	return v
}

// mixColor blends two hex colors. A missing side yields the other side and
// non-hex values fall back to a step.
func mixColor(a, b string, t float64) string {
	if a == "" || b == "" {
		return firstNonEmpty(a, b)
	}
	switch t {
	case 0:
		return a
	case 1:
		return b
	}

	ca, errA := colorful.Hex(a)
	cb, errB := colorful.Hex(b)
	if errA != nil || errB != nil {
		return stepString(a, b, t)
	}
	return ca.BlendLab(cb, t).Clamped().Hex()
}

// mixLength blends two CSS lengths that share a unit.
func mixLength(a, b string, t float64) string {
	if a == "" || b == "" {
		return firstNonEmpty(a, b)
	}
	switch t {
	case 0:
		return a
	case 1:
		return b
	}

	ma := lengthPattern.FindStringSubmatch(a)
	mb := lengthPattern.FindStringSubmatch(b)
	if ma == nil || mb == nil || ma[2] != mb[2] {
		return stepString(a, b, t)
	}

	va, _ := strconv.ParseFloat(ma[1], 64)
	vb, _ := strconv.ParseFloat(mb[1], 64)
	v := math.Round((va+(vb-va)*t)*1e4) / 1e4
	return strconv.FormatFloat(v, 'f', -1, 64) + ma[2]
}

func stepString(a, b string, t float64) string {
	if a == "" || b == "" {
		return firstNonEmpty(a, b)
	}
	if t >= 0.5 {
		return b
	}
	return a
}

func step(a, b int, t float64) int {
	if a == 0 || b == 0 {
		return max(a, b)
	}
	if t >= 0.5 {
		return b
	}
	return a
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
