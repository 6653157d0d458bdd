// Package sitefile reads site documents (the optional configuration
// sections of a site) from JSON or YAML files and writes assembled
// configurations back out in either format.
//
// Parsing is strict: unknown keys and trailing documents are rejected so that
// a typo never silently leaves a section at its default.
package sitefile

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/MKhiriev/go-site-keeper/models"
)

// Format is a supported document encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

var (
	// ErrUnsupportedFormat is returned for file extensions other than
	// .json, .yaml and .yml.
	ErrUnsupportedFormat = errors.New("unsupported site document format")
	// ErrTrailingContent is returned when a file holds more than one document.
	ErrTrailingContent = errors.New("site document contains multiple documents or trailing content")
)

// FormatOf picks the format from the file extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// Load reads the site document at path.
func Load(path string) (models.Sections, error) {
	path = filepath.Clean(path)

	format, err := FormatOf(path)
	if err != nil {
		return models.Sections{}, err
	}

	// #nosec G304 -- document paths come from the operator's command line
	data, err := os.ReadFile(path)
	if err != nil {
		return models.Sections{}, fmt.Errorf("error reading site document: %w", err)
	}

	return Decode(bytes.NewReader(data), format)
}

// Decode parses a single site document from r. An empty document yields
// empty sections.
func Decode(r io.Reader, format Format) (models.Sections, error) {
	var sections models.Sections

	switch format {
	case FormatJSON:
		dec := json.NewDecoder(r)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&sections); err != nil {
			if errors.Is(err, io.EOF) {
				return models.Sections{}, nil
			}
			return models.Sections{}, fmt.Errorf("error decoding json site document: %w", err)
		}
		if dec.More() {
			return models.Sections{}, ErrTrailingContent
		}
	case FormatYAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		if err := dec.Decode(&sections); err != nil {
			if errors.Is(err, io.EOF) {
				return models.Sections{}, nil
			}
			return models.Sections{}, fmt.Errorf("error decoding yaml site document: %w", err)
		}
		if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
			return models.Sections{}, ErrTrailingContent
		}
	default:
		return models.Sections{}, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}

	return sections, nil
}

// Encode writes cfg to w in the given format.
func Encode(w io.Writer, cfg models.Configuration, format Format) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(cfg)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(cfg); err != nil {
			return fmt.Errorf("error encoding yaml: %w", err)
		}
		return enc.Close()
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}
