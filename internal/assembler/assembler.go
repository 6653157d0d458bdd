// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package assembler turns the optional, declarative sections of a site
// configuration into a single validated [models.Configuration].
//
// Build is a pure function of its input: it performs no I/O, keeps no state
// between calls and returns a Configuration that shares no memory with the
// input sections.
package assembler

import (
	"context"
	"fmt"

	"dario.cat/mergo"

	"github.com/MKhiriev/go-site-keeper/internal/logger"
	"github.com/MKhiriev/go-site-keeper/internal/validators"
	"github.com/MKhiriev/go-site-keeper/models"
)

// Assembler merges input sections with defaults and validates the result.
type Assembler struct {
	validator validators.Validator
	defaults  models.Configuration
}

// New constructs an Assembler that validates with validator. A nil validator
// falls back to a [validators.SiteConfigValidator] with the default module
// registry.
func New(validator validators.Validator) *Assembler {
	if validator == nil {
		validator = validators.NewSiteConfigValidator(nil)
	}
	return &Assembler{
		validator: validator,
		defaults:  models.DefaultConfiguration(),
	}
}

// Build produces a validated Configuration from sections.
//
// Missing sections and zero-valued fields are filled from
// [models.DefaultConfiguration]; an empty enum string counts as unset.
// Every violated constraint is reported at once as a [*validators.ConfigError].
func (a *Assembler) Build(ctx context.Context, sections models.Sections) (models.Configuration, error) {
	log := logger.FromContext(ctx)

	cfg, err := a.merge(sections)
	if err != nil {
		log.Err(err).Str("func", "*Assembler.Build").Msg("error merging sections with defaults")
		return models.Configuration{}, err
	}

	if err = a.validator.Validate(ctx, cfg); err != nil {
		log.Debug().Err(err).Str("func", "*Assembler.Build").Msg("site configuration rejected")
		return models.Configuration{}, err
	}

	return cfg, nil
}

// merge copies every section out of the input and fills the gaps from the
// defaults. The returned value owns all of its slices and maps.
func (a *Assembler) merge(sections models.Sections) (models.Configuration, error) {
	cfg := models.Configuration{
		Modules: sections.Modules,
		CSS:     sections.CSS,
	}
	if sections.Devtools != nil {
		cfg.Devtools = *sections.Devtools
	}
	if sections.ColorMode != nil {
		cfg.ColorMode = *sections.ColorMode
	}
	if tw := sections.TailwindSection(); tw != nil {
		cfg.Tailwind = *tw
	}
	if sections.Head != nil {
		cfg.Head = *sections.Head
	}

	// detach from the caller before mergo touches anything
	cfg = cfg.Clone()
	defaults := a.defaults.Clone()

	if err := mergo.Merge(&cfg.ColorMode, defaults.ColorMode); err != nil {
		return models.Configuration{}, fmt.Errorf("error merging color mode defaults: %w", err)
	}
	if err := mergo.Merge(&cfg.Tailwind, defaults.Tailwind); err != nil {
		return models.Configuration{}, fmt.Errorf("error merging tailwind defaults: %w", err)
	}
	if err := mergo.Merge(&cfg.Head, defaults.Head); err != nil {
		return models.Configuration{}, fmt.Errorf("error merging head defaults: %w", err)
	}

	return cfg, nil
}
