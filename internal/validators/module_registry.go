package validators

import "strings"

// ModuleRegistry resolves module names, including their package aliases, to
// the canonical module names known by the host runtime.
type ModuleRegistry struct {
	canonical map[string]string
}

// NewModuleRegistry builds an empty registry.
func NewModuleRegistry() *ModuleRegistry {
	return &ModuleRegistry{canonical: make(map[string]string)}
}

// DefaultModuleRegistry returns a registry with the modules the host runtime
// ships with.
func DefaultModuleRegistry() *ModuleRegistry {
	r := NewModuleRegistry()
	r.Register("vueuse", "@vueuse/nuxt")
	r.Register("tailwindcss", "@nuxtjs/tailwindcss")
	r.Register("colorMode", "@nuxtjs/color-mode")
	r.Register("svgSprite", "@nuxtjs/svg-sprite")
	r.Register("devtools", "@nuxt/devtools")
	return r
}

// Register adds a module and its aliases. Blank names are ignored.
func (r *ModuleRegistry) Register(name string, aliases ...string) *ModuleRegistry {
	name = strings.TrimSpace(name)
	if name == "" {
		return r
	}

	r.canonical[name] = name
	for _, alias := range aliases {
		if alias = strings.TrimSpace(alias); alias != "" {
			r.canonical[alias] = name
		}
	}
	return r
}

// Resolve returns the canonical name of a module and whether it is known.
func (r *ModuleRegistry) Resolve(name string) (string, bool) {
	canonical, ok := r.canonical[name]
	return canonical, ok
}
