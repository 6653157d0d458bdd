// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package render turns a validated [models.Configuration] into the HTML a
// generated page carries: the <head> fragment, the <body> attributes and the
// color-mode bootstrap script.
//
// Every value goes through html/template escaping; the rendered fragments
// are safe to splice into a page verbatim.
package render

import (
	"bytes"
	"embed"
	"fmt"
	"html"
	"html/template"
	"maps"
	"slices"
	"strings"

	"github.com/MKhiriev/go-site-keeper/models"
)

//go:embed templates/*.gohtml
var templateFS embed.FS

var templates = template.Must(template.ParseFS(templateFS, "templates/*.gohtml"))

type headData struct {
	Viewport    string
	Links       []models.Link
	Stylesheets []string
	Meta        []models.MetaTag
}

type colorModeData struct {
	Preference  models.ColorPreference
	Fallback    models.ColorFallback
	ClassSuffix string
	StorageKey  string
	UseClass    bool
}

type documentData struct {
	Title           string
	Head            template.HTML
	ColorModeScript template.HTML
	BodyAttrs       template.HTMLAttr
	Config          models.Configuration
}

// Head renders the viewport meta followed by the <link>, stylesheet and
// <meta> elements, each list in input order. An empty meta content renders
// as content="".
func Head(cfg models.Configuration) (string, error) {
	return execute("head", headData{
		Viewport:    cfg.Head.Viewport,
		Links:       cfg.Head.Links,
		Stylesheets: cfg.CSS,
		Meta:        cfg.Head.Meta,
	})
}

// BodyAttrs renders the body attributes as space separated key="value"
// pairs sorted by key. Names are expected to be validated already.
func BodyAttrs(cfg models.Configuration) string {
	attrs := cfg.Head.BodyAttrs
	if len(attrs) == 0 {
		return ""
	}

	var b strings.Builder
	for i, name := range slices.Sorted(maps.Keys(attrs)) {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, `%s="%s"`, name, html.EscapeString(attrs[name]))
	}
	return b.String()
}

// ColorModeScript renders the inline script that resolves the color mode
// before first paint. A "system" preference follows prefers-color-scheme and
// falls back to the configured fallback when the browser reports neither.
// The mode is written to data-color-mode on <html>, and additionally added
// as "<mode><classSuffix>" class when dark mode is class driven.
func ColorModeScript(cfg models.Configuration) (string, error) {
	return execute("colorMode", colorModeData{
		Preference:  cfg.ColorMode.Preference,
		Fallback:    cfg.ColorMode.Fallback,
		ClassSuffix: cfg.ColorMode.ClassSuffix,
		StorageKey:  cfg.ColorMode.StorageKey,
		UseClass:    cfg.Tailwind.DarkMode == models.DarkModeClass,
	})
}

// Render produces all three fragments at once.
func Render(cfg models.Configuration) (models.RenderedHead, error) {
	head, err := Head(cfg)
	if err != nil {
		return models.RenderedHead{}, err
	}
	script, err := ColorModeScript(cfg)
	if err != nil {
		return models.RenderedHead{}, err
	}

	return models.RenderedHead{
		Head:            head,
		BodyAttrs:       BodyAttrs(cfg),
		ColorModeScript: script,
	}, nil
}

// Document renders a complete HTML page for cfg, used by the preview.
func Document(cfg models.Configuration, title string) (string, error) {
	fragments, err := Render(cfg)
	if err != nil {
		return "", err
	}

	// fragments were produced by the templates above and are already escaped
	return execute("document", documentData{
		Title:           title,
		Head:            template.HTML(fragments.Head),
		ColorModeScript: template.HTML(fragments.ColorModeScript),
		BodyAttrs:       template.HTMLAttr(fragments.BodyAttrs),
		Config:          cfg,
	})
}

func execute(name string, data any) (string, error) {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("error rendering %s: %w", name, err)
	}
	return buf.String(), nil
}
