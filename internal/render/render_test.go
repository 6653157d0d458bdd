package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-site-keeper/models"
)

func demoConfiguration() models.Configuration {
	cfg := models.DefaultConfiguration()
	cfg.Modules = []string{"vueuse", "tailwindcss", "colorMode", "svgSprite"}
	cfg.Tailwind.DarkMode = models.DarkModeClass
	cfg.Head.Viewport = "width=device-width,initial-scale=1,viewport-fit=cover"
	cfg.Head.Meta = []models.MetaTag{{Property: "og:title", Content: models.StringPtr("JY6")}}
	return cfg
}

func TestHead_Demo(t *testing.T) {
	out, err := Head(demoConfiguration())
	require.NoError(t, err)

	assert.Equal(t,
		`<meta name="viewport" content="width=device-width,initial-scale=1,viewport-fit=cover">`+"\n"+
			`<meta property="og:title" content="JY6">`+"\n",
		out)
}

func TestHead_OrderAndOptionalAttributes(t *testing.T) {
	cfg := models.DefaultConfiguration()
	cfg.CSS = []string{"/main.css"}
	cfg.Head.Links = []models.Link{
		{Rel: "icon", Href: "/favicon.svg", Type: "image/svg+xml"},
		{Rel: "apple-touch-icon", Href: "/apple.png", Sizes: "180x180"},
	}
	cfg.Head.Meta = []models.MetaTag{
		{Name: "description", Content: models.StringPtr(`Tom & "Jerry"`)},
		{Property: "og:image", Content: models.StringPtr("")},
	}

	out, err := Head(cfg)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 6)
	assert.Contains(t, lines[1], `rel="icon" href="/favicon.svg" type="image/svg&#43;xml"`)
	assert.NotContains(t, lines[1], "sizes=")
	assert.Contains(t, lines[2], `sizes="180x180"`)
	assert.Equal(t, `<link rel="stylesheet" href="/main.css">`, lines[3])
	assert.Equal(t, `<meta name="description" content="Tom &amp; &#34;Jerry&#34;">`, lines[4])
	assert.Equal(t, `<meta property="og:image" content="">`, lines[5])
}

func TestHead_UnsafeURLIsNeutralised(t *testing.T) {
	cfg := models.DefaultConfiguration()
	cfg.Head.Links = []models.Link{{Rel: "icon", Href: "javascript:alert(1)"}}

	out, err := Head(cfg)
	require.NoError(t, err)
	assert.NotContains(t, out, "javascript:")
}

func TestBodyAttrs(t *testing.T) {
	cfg := models.DefaultConfiguration()
	assert.Equal(t, "", BodyAttrs(cfg))

	cfg.Head.BodyAttrs = map[string]string{"data-theme": `a"b`, "class": "overflow-x-hidden"}
	assert.Equal(t, `class="overflow-x-hidden" data-theme="a&#34;b"`, BodyAttrs(cfg))
}

func TestColorModeScript(t *testing.T) {
	cfg := demoConfiguration()
	cfg.ColorMode.ClassSuffix = "-mode"

	out, err := ColorModeScript(cfg)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out, "<script>"))
	assert.True(t, strings.HasSuffix(out, "</script>"))
	assert.Contains(t, out, `preference="system"`)
	assert.Contains(t, out, `fallback="light"`)
	assert.Contains(t, out, `suffix="-mode"`)
	assert.Contains(t, out, `key="site-color-mode"`)
	assert.Regexp(t, `useClass=\s*true`, out)
	assert.Contains(t, out, "prefers-color-scheme: dark")

	cfg.Tailwind.DarkMode = models.DarkModeMedia
	out, err = ColorModeScript(cfg)
	require.NoError(t, err)
	assert.Regexp(t, `useClass=\s*false`, out)
}

func TestColorModeScript_EscapesScriptBreakout(t *testing.T) {
	cfg := demoConfiguration()
	cfg.ColorMode.StorageKey = `</script><script>alert(1)</script>`

	out, err := ColorModeScript(cfg)
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(out, "</script>"))
}

func TestRenderAndDocument(t *testing.T) {
	cfg := demoConfiguration()
	cfg.Head.BodyAttrs = map[string]string{"class": "overflow-x-hidden"}

	fragments, err := Render(cfg)
	require.NoError(t, err)
	assert.Equal(t, `class="overflow-x-hidden"`, fragments.BodyAttrs)
	assert.NotEmpty(t, fragments.Head)
	assert.NotEmpty(t, fragments.ColorModeScript)

	doc, err := Document(cfg, "JY6 <preview>")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(doc, "<!DOCTYPE html>"))
	assert.Contains(t, doc, "<title>JY6 &lt;preview&gt;</title>")
	assert.Contains(t, doc, fragments.Head)
	assert.Contains(t, doc, fragments.ColorModeScript)
	assert.Contains(t, doc, `<body class="overflow-x-hidden">`)
	assert.Contains(t, doc, "vueuse, tailwindcss, colorMode, svgSprite")
}
