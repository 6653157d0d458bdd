package validators

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"strings"
	"unicode"

	"github.com/MKhiriev/go-site-keeper/models"
)

// Field name constants used to restrict validation of a
// [models.Configuration] to a subset of its sections.
const (
	// FieldModules targets the ordered module list.
	FieldModules = "modules"

	// FieldColorMode targets the color-mode preference and fallback enums.
	FieldColorMode = "colorMode"

	// FieldTailwind targets the dark-mode activation strategy.
	FieldTailwind = "tailwind"

	// FieldHeadMeta targets the <meta> descriptors.
	FieldHeadMeta = "head.meta"

	// FieldHeadLinks targets the <link> descriptors.
	FieldHeadLinks = "head.link"

	// FieldHeadBodyAttrs targets the <body> attribute names.
	FieldHeadBodyAttrs = "head.bodyAttrs"
)

var defaultSiteConfigFields = []string{
	FieldModules,
	FieldColorMode,
	FieldTailwind,
	FieldHeadMeta,
	FieldHeadLinks,
	FieldHeadBodyAttrs,
}

var (
	allowedPreferences = []models.ColorPreference{
		models.ColorPreferenceSystem,
		models.ColorPreferenceLight,
		models.ColorPreferenceDark,
	}
	allowedFallbacks = []models.ColorFallback{
		models.ColorFallbackLight,
		models.ColorFallbackDark,
	}
	allowedDarkModes = []models.DarkModeStrategy{
		models.DarkModeClass,
		models.DarkModeMedia,
	}
)

// SiteConfigValidator implements [Validator] for [models.Configuration].
//
// Unlike the single-error validators it reports every violated constraint at
// once, wrapped in a [*ConfigError].
type SiteConfigValidator struct {
	modules *ModuleRegistry
}

// NewSiteConfigValidator constructs a validator resolving module names with
// registry. A nil registry falls back to [DefaultModuleRegistry].
func NewSiteConfigValidator(registry *ModuleRegistry) Validator {
	if registry == nil {
		registry = DefaultModuleRegistry()
	}
	return &SiteConfigValidator{modules: registry}
}

// Validate checks a models.Configuration or *models.Configuration.
//
// Optional fields restrict validation to the named sections; when omitted,
// every section is validated. Returns ErrUnsupportedType for other types and
// ErrUnknownField for an unrecognised field name.
func (v *SiteConfigValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Configuration:
		return v.validateConfiguration(ctx, value, fields...)
	case *models.Configuration:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateConfiguration(ctx, *value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *SiteConfigValidator) validateConfiguration(_ context.Context, cfg models.Configuration, fields ...string) error {
	if len(fields) == 0 {
		fields = defaultSiteConfigFields
	}

	c := new(collector)
	for _, f := range fields {
		switch f {
		case FieldModules:
			v.checkModules(c, cfg.Modules)
		case FieldColorMode:
			checkEnum(c, "colorMode.preference", cfg.ColorMode.Preference, allowedPreferences)
			checkEnum(c, "colorMode.fallback", cfg.ColorMode.Fallback, allowedFallbacks)
		case FieldTailwind:
			checkEnum(c, "tailwind.darkMode", cfg.Tailwind.DarkMode, allowedDarkModes)
		case FieldHeadMeta:
			checkMeta(c, cfg.Head.Meta)
		case FieldHeadLinks:
			checkLinks(c, cfg.Head.Links)
		case FieldHeadBodyAttrs:
			checkBodyAttrs(c, cfg.Head.BodyAttrs)
		default:
			return ErrUnknownField
		}
	}

	return c.err()
}

// checkModules reports unknown module names and every repeated occurrence of
// a module. Aliases of the same module count as duplicates.
func (v *SiteConfigValidator) checkModules(c *collector, modules []string) {
	seen := make(map[string]int, len(modules))
	for i, name := range modules {
		field := fmt.Sprintf("modules[%d]", i)

		canonical, ok := v.modules.Resolve(name)
		if !ok {
			c.add(KindUnknownModule, field, name, "module is not registered with the host runtime")
			canonical = name
		}

		if first, dup := seen[canonical]; dup {
			c.add(KindDuplicateModule, field, name, fmt.Sprintf("module already listed at modules[%d]", first))
			continue
		}
		seen[canonical] = i
	}
}

func checkEnum[T ~string](c *collector, field string, value T, allowed []T) {
	for _, a := range allowed {
		if value == a {
			return
		}
	}

	names := make([]string, len(allowed))
	for i, a := range allowed {
		names[i] = string(a)
	}
	c.add(KindInvalidEnumValue, field, string(value), "must be one of: "+strings.Join(names, ", "))
}

// checkMeta requires every tag to carry exactly one of name or property and a
// content value. An empty content is accepted.
func checkMeta(c *collector, meta []models.MetaTag) {
	for i, m := range meta {
		field := fmt.Sprintf("head.meta[%d]", i)

		switch {
		case m.Name == "" && m.Property == "":
			c.add(KindMalformedMetadataEntry, field, "", "meta tag needs a name or property key")
		case m.Name != "" && m.Property != "":
			c.add(KindMalformedMetadataEntry, field, m.Name, "meta tag must not set both name and property")
		}

		if m.Content == nil {
			c.add(KindMalformedMetadataEntry, field, m.Key(), "meta tag has no content value")
		}
	}
}

func checkLinks(c *collector, links []models.Link) {
	for i, l := range links {
		field := fmt.Sprintf("head.link[%d]", i)

		if strings.TrimSpace(l.Rel) == "" {
			c.add(KindMalformedLinkEntry, field, l.Href, "link needs a rel value")
		}
		if strings.TrimSpace(l.Href) == "" {
			c.add(KindMalformedLinkEntry, field, l.Rel, "link needs an href value")
		}
	}
}

func checkBodyAttrs(c *collector, attrs map[string]string) {
	// sorted so that violation order is stable
	for _, name := range slices.Sorted(maps.Keys(attrs)) {
		if !isValidAttributeName(name) {
			c.add(KindInvalidAttributeName, "head.bodyAttrs", name, "not a valid HTML attribute name")
		}
	}
}

// isValidAttributeName follows the HTML attribute-name production: no
// whitespace, controls, quotes, '>', '/', '=' or '<'.
func isValidAttributeName(name string) bool {
	if name == "" {
		return false
	}
	for _, r := range name {
		if unicode.IsSpace(r) || unicode.IsControl(r) {
			return false
		}
		switch r {
		case '"', '\'', '>', '/', '=', '<':
			return false
		}
	}
	return true
}
