// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"fmt"
	"strings"
)

// ViolationKind names the class of a configuration violation.
type ViolationKind string

const (
	KindUnknownModule          ViolationKind = "UnknownModule"
	KindDuplicateModule        ViolationKind = "DuplicateModule"
	KindInvalidEnumValue       ViolationKind = "InvalidEnumValue"
	KindMalformedMetadataEntry ViolationKind = "MalformedMetadataEntry"
	KindMalformedLinkEntry     ViolationKind = "MalformedLinkEntry"
	KindInvalidAttributeName   ViolationKind = "InvalidAttributeName"
)

var kindSentinels = map[ViolationKind]error{
	KindUnknownModule:          ErrUnknownModule,
	KindDuplicateModule:        ErrDuplicateModule,
	KindInvalidEnumValue:       ErrInvalidEnumValue,
	KindMalformedMetadataEntry: ErrMalformedMetadataEntry,
	KindMalformedLinkEntry:     ErrMalformedLinkEntry,
	KindInvalidAttributeName:   ErrInvalidAttributeName,
}

// Violation is a single broken configuration constraint.
type Violation struct {
	// Kind classifies the violation.
	Kind ViolationKind

	// Field is the dotted path of the offending field, e.g. "colorMode.preference"
	// or "head.meta[3]".
	Field string

	// Value is the offending input value, if there is one.
	Value string

	// Message is a human-readable description of the problem.
	Message string
}

// Error implements the error interface.
func (v Violation) Error() string {
	if v.Value == "" {
		return fmt.Sprintf("%s: %s", v.Field, v.Message)
	}
	return fmt.Sprintf("%s: %s (got %q)", v.Field, v.Message, v.Value)
}

// Unwrap returns the sentinel error of the violation kind.
func (v Violation) Unwrap() error {
	return kindSentinels[v.Kind]
}

// ConfigError enumerates every violated constraint of a site configuration.
type ConfigError struct {
	Violations []Violation
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	parts := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		parts = append(parts, v.Error())
	}
	return fmt.Sprintf("invalid site configuration: %d violation(s): %s", len(e.Violations), strings.Join(parts, "; "))
}

// Unwrap exposes each violation to [errors.Is] and [errors.As].
func (e *ConfigError) Unwrap() []error {
	errs := make([]error, 0, len(e.Violations))
	for _, v := range e.Violations {
		errs = append(errs, v)
	}
	return errs
}

// ByKind returns the violations of the given kind in detection order.
func (e *ConfigError) ByKind(kind ViolationKind) []Violation {
	var out []Violation
	for _, v := range e.Violations {
		if v.Kind == kind {
			out = append(out, v)
		}
	}
	return out
}

// Has reports whether at least one violation of kind was recorded.
func (e *ConfigError) Has(kind ViolationKind) bool {
	return len(e.ByKind(kind)) > 0
}

// collector accumulates violations during a single validation pass.
type collector struct {
	violations []Violation
}

func (c *collector) add(kind ViolationKind, field, value, message string) {
	c.violations = append(c.violations, Violation{
		Kind:    kind,
		Field:   field,
		Value:   value,
		Message: message,
	})
}

// err returns nil when nothing was collected, otherwise a *ConfigError
// holding a copy of the violations.
func (c *collector) err() error {
	if len(c.violations) == 0 {
		return nil
	}

	copied := make([]Violation, len(c.violations))
	copy(copied, c.violations)

	return &ConfigError{Violations: copied}
}
