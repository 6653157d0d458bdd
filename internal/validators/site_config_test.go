package validators

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/go-site-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfiguration() models.Configuration {
	cfg := models.DefaultConfiguration()
	cfg.Modules = []string{"vueuse", "tailwindcss", "colorMode", "svgSprite"}
	cfg.Head.BodyAttrs = map[string]string{"class": "overflow-x-hidden"}
	cfg.Head.Links = []models.Link{{Rel: "icon", Href: "/favicon.ico", Sizes: "any"}}
	cfg.Head.Meta = []models.MetaTag{
		{Property: "og:title", Content: models.StringPtr("JY6")},
		{Property: "og:image", Content: models.StringPtr("")},
	}
	return cfg
}

func asConfigError(t *testing.T, err error) *ConfigError {
	t.Helper()
	var cfgErr *ConfigError
	require.ErrorAs(t, err, &cfgErr)
	return cfgErr
}

func TestSiteConfigValidator_ValidConfiguration(t *testing.T) {
	v := NewSiteConfigValidator(nil)

	assert.NoError(t, v.Validate(context.Background(), validConfiguration()))

	cfg := validConfiguration()
	assert.NoError(t, v.Validate(context.Background(), &cfg))
}

func TestSiteConfigValidator_UnsupportedType(t *testing.T) {
	v := NewSiteConfigValidator(nil)

	assert.ErrorIs(t, v.Validate(context.Background(), "not a config"), ErrUnsupportedType)
	assert.ErrorIs(t, v.Validate(context.Background(), (*models.Configuration)(nil)), ErrUnsupportedType)
}

func TestSiteConfigValidator_UnknownField(t *testing.T) {
	v := NewSiteConfigValidator(nil)

	err := v.Validate(context.Background(), validConfiguration(), "no-such-field")
	assert.ErrorIs(t, err, ErrUnknownField)
}

func TestSiteConfigValidator_Violations(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(cfg *models.Configuration)
		wantKind  ViolationKind
		wantErr   error
		wantField string
		wantValue string
	}{
		{
			name:      "unknown module",
			mutate:    func(cfg *models.Configuration) { cfg.Modules = append(cfg.Modules, "pinia") },
			wantKind:  KindUnknownModule,
			wantErr:   ErrUnknownModule,
			wantField: "modules[4]",
			wantValue: "pinia",
		},
		{
			name:      "duplicate module",
			mutate:    func(cfg *models.Configuration) { cfg.Modules = append(cfg.Modules, "vueuse") },
			wantKind:  KindDuplicateModule,
			wantErr:   ErrDuplicateModule,
			wantField: "modules[4]",
			wantValue: "vueuse",
		},
		{
			name:      "duplicate module through alias",
			mutate:    func(cfg *models.Configuration) { cfg.Modules = append(cfg.Modules, "@nuxtjs/color-mode") },
			wantKind:  KindDuplicateModule,
			wantErr:   ErrDuplicateModule,
			wantField: "modules[4]",
			wantValue: "@nuxtjs/color-mode",
		},
		{
			name:      "invalid preference",
			mutate:    func(cfg *models.Configuration) { cfg.ColorMode.Preference = "sepia" },
			wantKind:  KindInvalidEnumValue,
			wantErr:   ErrInvalidEnumValue,
			wantField: "colorMode.preference",
			wantValue: "sepia",
		},
		{
			name:      "system is not a fallback",
			mutate:    func(cfg *models.Configuration) { cfg.ColorMode.Fallback = "system" },
			wantKind:  KindInvalidEnumValue,
			wantErr:   ErrInvalidEnumValue,
			wantField: "colorMode.fallback",
			wantValue: "system",
		},
		{
			// the assembler fills empty enums before validation; an
			// assembled configuration never carries one
			name:      "empty preference",
			mutate:    func(cfg *models.Configuration) { cfg.ColorMode.Preference = "" },
			wantKind:  KindInvalidEnumValue,
			wantErr:   ErrInvalidEnumValue,
			wantField: "colorMode.preference",
			wantValue: "",
		},
		{
			name:      "invalid dark mode strategy",
			mutate:    func(cfg *models.Configuration) { cfg.Tailwind.DarkMode = "selector" },
			wantKind:  KindInvalidEnumValue,
			wantErr:   ErrInvalidEnumValue,
			wantField: "tailwind.darkMode",
			wantValue: "selector",
		},
		{
			name: "meta without name and property",
			mutate: func(cfg *models.Configuration) {
				cfg.Head.Meta = append(cfg.Head.Meta, models.MetaTag{Content: models.StringPtr("x")})
			},
			wantKind:  KindMalformedMetadataEntry,
			wantErr:   ErrMalformedMetadataEntry,
			wantField: "head.meta[2]",
		},
		{
			name: "meta with both name and property",
			mutate: func(cfg *models.Configuration) {
				cfg.Head.Meta = append(cfg.Head.Meta, models.MetaTag{Name: "a", Property: "b", Content: models.StringPtr("x")})
			},
			wantKind:  KindMalformedMetadataEntry,
			wantErr:   ErrMalformedMetadataEntry,
			wantField: "head.meta[2]",
			wantValue: "a",
		},
		{
			name: "meta without content",
			mutate: func(cfg *models.Configuration) {
				cfg.Head.Meta = append(cfg.Head.Meta, models.MetaTag{Name: "description"})
			},
			wantKind:  KindMalformedMetadataEntry,
			wantErr:   ErrMalformedMetadataEntry,
			wantField: "head.meta[2]",
			wantValue: "description",
		},
		{
			name: "link without href",
			mutate: func(cfg *models.Configuration) {
				cfg.Head.Links = append(cfg.Head.Links, models.Link{Rel: "apple-touch-icon"})
			},
			wantKind:  KindMalformedLinkEntry,
			wantErr:   ErrMalformedLinkEntry,
			wantField: "head.link[1]",
			wantValue: "apple-touch-icon",
		},
		{
			name:      "invalid body attribute name",
			mutate:    func(cfg *models.Configuration) { cfg.Head.BodyAttrs["data theme"] = "x" },
			wantKind:  KindInvalidAttributeName,
			wantErr:   ErrInvalidAttributeName,
			wantField: "head.bodyAttrs",
			wantValue: "data theme",
		},
	}

	v := NewSiteConfigValidator(nil)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfiguration()
			tt.mutate(&cfg)

			err := v.Validate(context.Background(), cfg)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)

			cfgErr := asConfigError(t, err)
			got := cfgErr.ByKind(tt.wantKind)
			require.Len(t, got, 1)
			assert.Equal(t, tt.wantField, got[0].Field)
			assert.Equal(t, tt.wantValue, got[0].Value)
		})
	}
}

func TestSiteConfigValidator_CollectsEveryViolation(t *testing.T) {
	cfg := validConfiguration()
	cfg.Modules = []string{"vueuse", "vueuse", "unknown"}
	cfg.ColorMode.Preference = "blue"
	cfg.ColorMode.Fallback = "blue"
	cfg.Head.Meta = []models.MetaTag{{Content: models.StringPtr("orphan")}}

	err := NewSiteConfigValidator(nil).Validate(context.Background(), cfg)
	cfgErr := asConfigError(t, err)

	assert.Len(t, cfgErr.Violations, 5)
	assert.True(t, cfgErr.Has(KindDuplicateModule))
	assert.True(t, cfgErr.Has(KindUnknownModule))
	assert.Len(t, cfgErr.ByKind(KindInvalidEnumValue), 2)
	assert.True(t, cfgErr.Has(KindMalformedMetadataEntry))
	assert.False(t, cfgErr.Has(KindMalformedLinkEntry))

	assert.True(t, errors.Is(err, ErrInvalidEnumValue))
	assert.False(t, errors.Is(err, ErrInvalidAttributeName))
	assert.Contains(t, err.Error(), "5 violation(s)")
	assert.Contains(t, err.Error(), `colorMode.preference: must be one of: system, light, dark (got "blue")`)
}

func TestSiteConfigValidator_FieldScoping(t *testing.T) {
	cfg := validConfiguration()
	cfg.Modules = []string{"unknown"}
	cfg.ColorMode.Preference = "blue"

	v := NewSiteConfigValidator(nil)

	err := v.Validate(context.Background(), cfg, FieldColorMode)
	cfgErr := asConfigError(t, err)
	require.Len(t, cfgErr.Violations, 1)
	assert.Equal(t, KindInvalidEnumValue, cfgErr.Violations[0].Kind)

	assert.NoError(t, v.Validate(context.Background(), cfg, FieldHeadMeta, FieldHeadLinks))
}

func TestSiteConfigValidator_CustomRegistry(t *testing.T) {
	registry := NewModuleRegistry().Register("pinia", "@pinia/nuxt")
	v := NewSiteConfigValidator(registry)

	cfg := validConfiguration()
	cfg.Modules = []string{"@pinia/nuxt"}
	assert.NoError(t, v.Validate(context.Background(), cfg, FieldModules))

	cfg.Modules = []string{"vueuse"}
	assert.ErrorIs(t, v.Validate(context.Background(), cfg, FieldModules), ErrUnknownModule)
}

func TestModuleRegistry_Resolve(t *testing.T) {
	r := DefaultModuleRegistry()

	name, ok := r.Resolve("@vueuse/nuxt")
	assert.True(t, ok)
	assert.Equal(t, "vueuse", name)

	name, ok = r.Resolve("svgSprite")
	assert.True(t, ok)
	assert.Equal(t, "svgSprite", name)

	_, ok = r.Resolve("")
	assert.False(t, ok)

	r.Register("  ")
	_, ok = r.Resolve("")
	assert.False(t, ok)
}
