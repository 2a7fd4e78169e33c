package vibe

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/rpupo63/chameleon-site/models"
	"github.com/rs/zerolog/log"
)

// CSS custom properties written by Apply, in render order.
const (
	PropFontFamily    = "--font-family"
	PropFontSizeH1    = "--font-size-h1"
	PropFontSizeH2    = "--font-size-h2"
	PropFontSizeH3    = "--font-size-h3"
	PropFontSizeBody  = "--font-size-body"
	PropFontSizeSmall = "--font-size-small"
	PropColorPrimary  = "--color-primary"
	PropColorSecond   = "--color-secondary"
	PropColorBg       = "--color-bg"
	PropColorText     = "--color-text"
	PropColorAccent   = "--color-accent"
	PropSpacingXS     = "--spacing-xs"
	PropSpacingSM     = "--spacing-sm"
	PropSpacingMD     = "--spacing-md"
	PropSpacingLG     = "--spacing-lg"
	PropSpacingXL     = "--spacing-xl"
	PropBorderRadius  = "--border-radius"
)

var propertyOrder = []string{
	PropFontFamily,
	PropFontSizeH1, PropFontSizeH2, PropFontSizeH3, PropFontSizeBody, PropFontSizeSmall,
	PropColorPrimary, PropColorSecond, PropColorBg, PropColorText, PropColorAccent,
	PropSpacingXS, PropSpacingSM, PropSpacingMD, PropSpacingLG, PropSpacingXL,
	PropBorderRadius,
}

// PropertySetter receives CSS custom property assignments.
type PropertySetter interface {
	SetProperty(name, value string)
}

// Apply writes every set field of cfg to setter and returns how many
// properties were written. Unset fields are left untouched; a nil cfg or
// setter is logged and ignored.
func Apply(setter PropertySetter, cfg *models.Config) int {
	if cfg == nil {
		log.Warn().Msg("no config provided to apply theme")
		return 0
	}
	if setter == nil {
		log.Warn().Msg("no property setter provided to apply theme")
		return 0
	}

	written := 0
	set := func(name, value string) {
		if value != "" {
			setter.SetProperty(name, value)
			written++
		}
	}

	if t := cfg.Typography; t != nil {
		set(PropFontFamily, t.FontFamily)
		if fs := t.FontSizes; fs != nil {
			set(PropFontSizeH1, fs.H1)
			set(PropFontSizeH2, fs.H2)
			set(PropFontSizeH3, fs.H3)
			set(PropFontSizeBody, fs.Body)
			set(PropFontSizeSmall, fs.Small)
		}
	}
	if c := cfg.Colors; c != nil {
		set(PropColorPrimary, c.Primary)
		set(PropColorSecond, c.Secondary)
		set(PropColorBg, c.Background)
		set(PropColorText, c.Text)
		set(PropColorAccent, c.Accent)
	}
	if s := cfg.Spacing; s != nil {
		set(PropSpacingXS, s.XS)
		set(PropSpacingSM, s.SM)
		set(PropSpacingMD, s.MD)
		set(PropSpacingLG, s.LG)
		set(PropSpacingXL, s.XL)
	}
	set(PropBorderRadius, cfg.BorderRadius)

	return written
}

// StyleSheet is an in-memory PropertySetter that renders a :root rule.
type StyleSheet struct {
	mu    sync.RWMutex
	props map[string]string
}

func NewStyleSheet() *StyleSheet {
	return &StyleSheet{props: make(map[string]string)}
}

func (s *StyleSheet) SetProperty(name, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.props[name] = value
}

// Property returns the current value of a custom property.
func (s *StyleSheet) Property(name string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.props[name]
	return v, ok
}

// Len returns the number of properties set.
func (s *StyleSheet) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.props)
}

// CSS renders the known properties in a fixed order followed by any others.
func (s *StyleSheet) CSS() string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var b strings.Builder
	b.WriteString(":root {\n")
	seen := make(map[string]bool, len(propertyOrder))
	for _, name := range propertyOrder {
		seen[name] = true
		if v, ok := s.props[name]; ok {
			fmt.Fprintf(&b, "  %s: %s;\n", name, v)
		}
	}
	var extra []string
	for name := range s.props {
		if !seen[name] {
			extra = append(extra, name)
		}
	}
	sort.Strings(extra)
	for _, name := range extra {
		fmt.Fprintf(&b, "  %s: %s;\n", name, s.props[name])
	}
	b.WriteString("}\n")
	return b.String()
}

// RenderCSS is a convenience wrapper applying cfg to a fresh StyleSheet.
func RenderCSS(cfg models.Config) string {
	sheet := NewStyleSheet()
	Apply(sheet, &cfg)
	return sheet.CSS()
}
