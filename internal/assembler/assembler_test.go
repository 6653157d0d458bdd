package assembler

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-site-keeper/internal/validators"
	"github.com/MKhiriev/go-site-keeper/models"
)

// demoSections is the literal JY6 demo input.
func demoSections() models.Sections {
	return models.Sections{
		Modules: []string{"vueuse", "tailwindcss", "colorMode", "svgSprite"},
		ColorMode: &models.ColorMode{
			ClassSuffix: "",
			Preference:  models.ColorPreferenceSystem,
			Fallback:    models.ColorFallbackLight,
		},
		Tailwind: &models.Tailwind{DarkMode: models.DarkModeClass},
		Head: &models.Head{
			Viewport: "width=device-width,initial-scale=1,viewport-fit=cover",
			Meta: []models.MetaTag{
				{Property: "og:title", Content: models.StringPtr("JY6")},
			},
		},
	}
}

func TestBuild_DemoInput(t *testing.T) {
	cfg, err := New(nil).Build(context.Background(), demoSections())
	require.NoError(t, err)

	assert.Equal(t, []string{"vueuse", "tailwindcss", "colorMode", "svgSprite"}, cfg.Modules)
	assert.Equal(t, models.DarkModeClass, cfg.Tailwind.DarkMode)
	assert.Equal(t, "width=device-width,initial-scale=1,viewport-fit=cover", cfg.Head.Viewport)

	require.Len(t, cfg.Head.Meta, 1)
	assert.Equal(t, "og:title", cfg.Head.Meta[0].Property)
	assert.Equal(t, "JY6", cfg.Head.Meta[0].ContentValue())
}

func TestBuild_Idempotent(t *testing.T) {
	a := New(nil)

	first, err := a.Build(context.Background(), demoSections())
	require.NoError(t, err)
	second, err := a.Build(context.Background(), demoSections())
	require.NoError(t, err)

	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("Build is not idempotent (-first +second):\n%s", diff)
	}
}

func TestBuild_Defaults(t *testing.T) {
	cfg, err := New(nil).Build(context.Background(), models.Sections{})
	require.NoError(t, err)

	assert.Equal(t, models.ColorPreferenceSystem, cfg.ColorMode.Preference)
	assert.Equal(t, models.ColorFallbackLight, cfg.ColorMode.Fallback)
	assert.Equal(t, "", cfg.ColorMode.ClassSuffix)
	assert.Equal(t, models.DefaultStorageKey, cfg.ColorMode.StorageKey)
	assert.Equal(t, models.DarkModeMedia, cfg.Tailwind.DarkMode)
	assert.Equal(t, models.DefaultViewport, cfg.Head.Viewport)
	assert.Empty(t, cfg.Modules)
	assert.False(t, cfg.Devtools.Enabled)
}

func TestBuild_PartialSectionKeepsGivenFields(t *testing.T) {
	cfg, err := New(nil).Build(context.Background(), models.Sections{
		ColorMode: &models.ColorMode{Preference: models.ColorPreferenceDark, ClassSuffix: "-mode"},
		Devtools:  &models.Devtools{Enabled: true},
	})
	require.NoError(t, err)

	assert.Equal(t, models.ColorPreferenceDark, cfg.ColorMode.Preference)
	assert.Equal(t, models.ColorFallbackLight, cfg.ColorMode.Fallback)
	assert.Equal(t, "-mode", cfg.ColorMode.ClassSuffix)
	assert.True(t, cfg.Devtools.Enabled)
}

func TestBuild_TailwindCSSAlias(t *testing.T) {
	cfg, err := New(nil).Build(context.Background(), models.Sections{
		TailwindCSS: &models.TailwindCSS{Config: models.Tailwind{DarkMode: models.DarkModeClass}},
	})
	require.NoError(t, err)
	assert.Equal(t, models.DarkModeClass, cfg.Tailwind.DarkMode)
}

func TestBuild_DuplicateModule(t *testing.T) {
	sections := demoSections()
	sections.Modules = append(sections.Modules, "tailwindcss")

	_, err := New(nil).Build(context.Background(), sections)
	require.ErrorIs(t, err, validators.ErrDuplicateModule)

	var cfgErr *validators.ConfigError
	require.ErrorAs(t, err, &cfgErr)
	dups := cfgErr.ByKind(validators.KindDuplicateModule)
	require.Len(t, dups, 1)
	assert.Equal(t, "tailwindcss", dups[0].Value)
}

func TestBuild_InvalidPreference(t *testing.T) {
	sections := demoSections()
	sections.ColorMode.Preference = "auto"

	_, err := New(nil).Build(context.Background(), sections)
	require.ErrorIs(t, err, validators.ErrInvalidEnumValue)

	var cfgErr *validators.ConfigError
	require.ErrorAs(t, err, &cfgErr)
	got := cfgErr.ByKind(validators.KindInvalidEnumValue)
	require.Len(t, got, 1)
	assert.Equal(t, "colorMode.preference", got[0].Field)
	assert.Equal(t, "auto", got[0].Value)
}

// TestBuild_EmptyEnumsAreUnset checks that an explicitly empty enum value in
// the input is treated like an omitted one and receives its default.
func TestBuild_EmptyEnumsAreUnset(t *testing.T) {
	sections := demoSections()
	sections.ColorMode.Preference = ""
	sections.ColorMode.Fallback = ""
	sections.Tailwind.DarkMode = ""

	cfg, err := New(nil).Build(context.Background(), sections)
	require.NoError(t, err)

	defaults := models.DefaultConfiguration()
	assert.Equal(t, defaults.ColorMode.Preference, cfg.ColorMode.Preference)
	assert.Equal(t, defaults.ColorMode.Fallback, cfg.ColorMode.Fallback)
	assert.Equal(t, defaults.Tailwind.DarkMode, cfg.Tailwind.DarkMode)
}

func TestBuild_MalformedMetadata(t *testing.T) {
	sections := demoSections()
	sections.Head.Meta = append(sections.Head.Meta, models.MetaTag{Content: models.StringPtr("orphan")})

	_, err := New(nil).Build(context.Background(), sections)
	assert.ErrorIs(t, err, validators.ErrMalformedMetadataEntry)
}

func TestBuild_ResultIsDetachedFromInput(t *testing.T) {
	sections := demoSections()
	sections.Head.BodyAttrs = map[string]string{"class": "overflow-x-hidden"}

	cfg, err := New(nil).Build(context.Background(), sections)
	require.NoError(t, err)

	sections.Modules[0] = "changed"
	sections.Head.BodyAttrs["class"] = "changed"
	*sections.Head.Meta[0].Content = "changed"

	assert.Equal(t, "vueuse", cfg.Modules[0])
	assert.Equal(t, "overflow-x-hidden", cfg.Head.BodyAttrs["class"])
	assert.Equal(t, "JY6", cfg.Head.Meta[0].ContentValue())
}

func TestBuild_EmptyOgImageIsValid(t *testing.T) {
	sections := demoSections()
	sections.Head.Meta = append(sections.Head.Meta, models.MetaTag{Property: "og:image", Content: models.StringPtr("")})

	cfg, err := New(nil).Build(context.Background(), sections)
	require.NoError(t, err)
	require.Len(t, cfg.Head.Meta, 2)
	assert.Equal(t, "", cfg.Head.Meta[1].ContentValue())
}
