package sitefile

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-site-keeper/models"
)

const demoYAML = `
modules: [vueuse, tailwindcss, colorMode, svgSprite]
colorMode:
  classSuffix: ""
  preference: system
  fallback: light
tailwindcss:
  config:
    darkMode: class
head:
  viewport: width=device-width,initial-scale=1,viewport-fit=cover
  bodyAttrs:
    class: overflow-x-hidden
  link:
    - {rel: icon, href: /favicon.ico, sizes: any}
  meta:
    - {property: "og:title", content: JY6}
    - {property: "og:image", content: ""}
`

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(body), 0o600))
	return p
}

func TestLoad_YAML(t *testing.T) {
	sections, err := Load(writeFile(t, "site.yml", demoYAML))
	require.NoError(t, err)

	assert.Equal(t, []string{"vueuse", "tailwindcss", "colorMode", "svgSprite"}, sections.Modules)
	require.NotNil(t, sections.ColorMode)
	assert.Equal(t, models.ColorPreferenceSystem, sections.ColorMode.Preference)
	assert.Nil(t, sections.Tailwind)
	require.NotNil(t, sections.TailwindSection())
	assert.Equal(t, models.DarkModeClass, sections.TailwindSection().DarkMode)

	require.NotNil(t, sections.Head)
	assert.Equal(t, "overflow-x-hidden", sections.Head.BodyAttrs["class"])
	require.Len(t, sections.Head.Meta, 2)
	require.NotNil(t, sections.Head.Meta[1].Content)
	assert.Equal(t, "", *sections.Head.Meta[1].Content)
}

func TestLoad_JSON(t *testing.T) {
	body := `{"modules": ["vueuse"], "head": {"meta": [{"name": "description"}]}}`
	sections, err := Load(writeFile(t, "site.json", body))
	require.NoError(t, err)

	assert.Equal(t, []string{"vueuse"}, sections.Modules)
	require.Len(t, sections.Head.Meta, 1)
	assert.Nil(t, sections.Head.Meta[0].Content)
	assert.Nil(t, sections.ColorMode)
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(writeFile(t, "site.toml", ""))
	assert.ErrorIs(t, err, ErrUnsupportedFormat)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "error reading site document")

	_, err = Load(writeFile(t, "site.yaml", "modulez: [vueuse]\n"))
	assert.ErrorContains(t, err, "error decoding yaml site document")

	_, err = Load(writeFile(t, "site.json", `{"modules": []} {"modules": []}`))
	assert.ErrorIs(t, err, ErrTrailingContent)

	_, err = Load(writeFile(t, "site.yaml", "modules: []\n---\nmodules: []\n"))
	assert.ErrorIs(t, err, ErrTrailingContent)
}

func TestDecode_EmptyDocument(t *testing.T) {
	for _, f := range []Format{FormatJSON, FormatYAML} {
		sections, err := Decode(strings.NewReader(""), f)
		require.NoError(t, err, f)
		assert.Equal(t, models.Sections{}, sections)
	}
}

func TestEncode_RoundTripsThroughDecode(t *testing.T) {
	cfg := models.DefaultConfiguration()
	cfg.Modules = []string{"vueuse"}

	for _, f := range []Format{FormatJSON, FormatYAML} {
		var buf bytes.Buffer
		require.NoError(t, Encode(&buf, cfg, f))

		sections, err := Decode(&buf, f)
		require.NoError(t, err, f)
		assert.Equal(t, cfg.Modules, sections.Modules)
		assert.Equal(t, cfg.ColorMode, *sections.ColorMode)
	}

	assert.ErrorIs(t, Encode(&bytes.Buffer{}, cfg, "toml"), ErrUnsupportedFormat)
}
