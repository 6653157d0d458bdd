// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "maps"

// ColorPreference is the color-mode the site starts with.
type ColorPreference string

const (
	// ColorPreferenceSystem follows the visitor's operating system setting.
	ColorPreferenceSystem ColorPreference = "system"
	// ColorPreferenceLight forces the light theme.
	ColorPreferenceLight ColorPreference = "light"
	// ColorPreferenceDark forces the dark theme.
	ColorPreferenceDark ColorPreference = "dark"
)

// ColorFallback is the theme used when the system preference cannot be detected.
type ColorFallback string

const (
	ColorFallbackLight ColorFallback = "light"
	ColorFallbackDark  ColorFallback = "dark"
)

// DarkModeStrategy selects how the CSS framework activates dark styles.
type DarkModeStrategy string

const (
	// DarkModeClass activates dark styles when a class is present on <html>.
	DarkModeClass DarkModeStrategy = "class"
	// DarkModeMedia activates dark styles through the prefers-color-scheme media query.
	DarkModeMedia DarkModeStrategy = "media"
)

// Configuration is the validated aggregate of all startup settings consumed
// by the front-end host runtime.
//
// A Configuration produced by the assembler owns all of its slices and maps;
// treat it as read-only and use [Configuration.Clone] before changing it.
type Configuration struct {
	// Modules lists feature modules in registration order.
	Modules []string `json:"modules" yaml:"modules"`

	// Devtools toggles the framework developer tools.
	Devtools Devtools `json:"devtools" yaml:"devtools"`

	// CSS lists global stylesheets in load order.
	CSS []string `json:"css" yaml:"css"`

	// ColorMode holds the color-mode controller settings.
	ColorMode ColorMode `json:"colorMode" yaml:"colorMode"`

	// Tailwind holds the CSS framework settings.
	Tailwind Tailwind `json:"tailwind" yaml:"tailwind"`

	// Head holds the metadata injected into every generated page head.
	Head Head `json:"head" yaml:"head"`
}

// Devtools holds developer tooling switches.
type Devtools struct {
	Enabled bool `json:"enabled" yaml:"enabled"`
}

// ColorMode holds the settings of the color-mode controller.
type ColorMode struct {
	Preference  ColorPreference `json:"preference" yaml:"preference"`
	Fallback    ColorFallback   `json:"fallback" yaml:"fallback"`
	ClassSuffix string          `json:"classSuffix" yaml:"classSuffix"`

	// StorageKey is the browser storage key the chosen mode is persisted under.
	StorageKey string `json:"storageKey" yaml:"storageKey"`
}

// Tailwind holds the CSS framework options.
type Tailwind struct {
	DarkMode DarkModeStrategy `json:"darkMode" yaml:"darkMode"`
}

// Head describes the <head> elements and <body> attributes of generated pages.
type Head struct {
	Viewport  string            `json:"viewport" yaml:"viewport"`
	BodyAttrs map[string]string `json:"bodyAttrs,omitempty" yaml:"bodyAttrs,omitempty"`
	Links     []Link            `json:"link,omitempty" yaml:"link,omitempty"`
	Meta      []MetaTag         `json:"meta,omitempty" yaml:"meta,omitempty"`
}

// Link describes a single <link> element.
type Link struct {
	Rel   string `json:"rel" yaml:"rel"`
	Href  string `json:"href" yaml:"href"`
	Type  string `json:"type,omitempty" yaml:"type,omitempty"`
	Sizes string `json:"sizes,omitempty" yaml:"sizes,omitempty"`
}

// MetaTag describes a single <meta> element. Exactly one of Name or Property
// identifies the tag.
//
// Content is a pointer so that a missing content attribute can be told apart
// from an intentionally empty one.
type MetaTag struct {
	Name     string  `json:"name,omitempty" yaml:"name,omitempty"`
	Property string  `json:"property,omitempty" yaml:"property,omitempty"`
	Content  *string `json:"content,omitempty" yaml:"content,omitempty"`
}

// ContentValue returns the tag content or an empty string when it is absent.
func (m MetaTag) ContentValue() string {
	if m.Content == nil {
		return ""
	}
	return *m.Content
}

// Key returns the identifying attribute of the tag: its name, or its property
// for Open Graph style tags.
func (m MetaTag) Key() string {
	if m.Name != "" {
		return m.Name
	}
	return m.Property
}

// Clone returns a deep copy of the configuration.
func (c Configuration) Clone() Configuration {
	out := c
	out.Modules = cloneSlice(c.Modules)
	out.CSS = cloneSlice(c.CSS)
	out.Head = c.Head.Clone()
	return out
}

// Clone returns a deep copy of the head settings.
func (h Head) Clone() Head {
	out := h
	if h.BodyAttrs != nil {
		out.BodyAttrs = maps.Clone(h.BodyAttrs)
	}
	out.Links = cloneSlice(h.Links)
	if h.Meta != nil {
		out.Meta = make([]MetaTag, len(h.Meta))
		for i, m := range h.Meta {
			out.Meta[i] = m.clone()
		}
	}
	return out
}

func (m MetaTag) clone() MetaTag {
	if m.Content != nil {
		content := *m.Content
		m.Content = &content
	}
	return m
}

func cloneSlice[T any](in []T) []T {
	if in == nil {
		return nil
	}
	out := make([]T, len(in))
	copy(out, in)
	return out
}

// StringPtr returns a pointer to s. Handy for building [MetaTag] literals.
func StringPtr(s string) *string {
	return &s
}
