package models

// Sections is the raw input of the configuration assembler. Every section is
// optional; missing sections and zero fields receive the values of
// [DefaultConfiguration].
type Sections struct {
	Modules   []string   `json:"modules,omitempty" yaml:"modules,omitempty"`
	Devtools  *Devtools  `json:"devtools,omitempty" yaml:"devtools,omitempty"`
	CSS       []string   `json:"css,omitempty" yaml:"css,omitempty"`
	ColorMode *ColorMode `json:"colorMode,omitempty" yaml:"colorMode,omitempty"`
	Tailwind  *Tailwind  `json:"tailwind,omitempty" yaml:"tailwind,omitempty"`
	Head      *Head      `json:"head,omitempty" yaml:"head,omitempty"`

	// TailwindCSS accepts the framework's own "tailwindcss: {config: {...}}"
	// spelling. It is only consulted when Tailwind is nil.
	TailwindCSS *TailwindCSS `json:"tailwindcss,omitempty" yaml:"tailwindcss,omitempty"`
}

// TailwindCSS is the nested module-options form of the Tailwind section.
type TailwindCSS struct {
	Config Tailwind `json:"config" yaml:"config"`
}

// TailwindSection returns the effective Tailwind section, if any.
func (s Sections) TailwindSection() *Tailwind {
	if s.Tailwind != nil {
		return s.Tailwind
	}
	if s.TailwindCSS != nil {
		return &s.TailwindCSS.Config
	}
	return nil
}

// Default values applied by the assembler.
const (
	DefaultViewport   = "width=device-width,initial-scale=1"
	DefaultStorageKey = "site-color-mode"
)

// DefaultConfiguration returns the values used for every section or field
// the input leaves out.
func DefaultConfiguration() Configuration {
	return Configuration{
		ColorMode: ColorMode{
			Preference:  ColorPreferenceSystem,
			Fallback:    ColorFallbackLight,
			ClassSuffix: "",
			StorageKey:  DefaultStorageKey,
		},
		Tailwind: Tailwind{
			DarkMode: DarkModeMedia,
		},
		Head: Head{
			Viewport: DefaultViewport,
		},
	}
}
