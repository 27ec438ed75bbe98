package config

import "time"

// UserConfig holds all of the user-configurable options. The fields here are all in PascalCase but in your actual config.yml they'll be in camelCase. You can view the default config with `tscat --config`.
type UserConfig struct {
	// UI is for configuring how tscat itself talks to you
	UI UIConfig `yaml:"ui,omitempty"`

	// Catalogs tells tscat where to find the .ts files and which one to use
	Catalogs CatalogsConfig `yaml:"catalogs,omitempty"`

	// Watch configures `tscat watch`
	Watch WatchConfig `yaml:"watch,omitempty"`
}

// UIConfig is for the language and colors of tscat's own output
type UIConfig struct {
	// Language is the language of tscat's own messages. 'auto' uses the system locale
	Language string `yaml:"language,omitempty"`

	// Plain disables colored output
	Plain bool `yaml:"plain,omitempty"`
}

// CatalogsConfig locates the translation catalogs
type CatalogsConfig struct {
	// Directory holds one <language>.ts file per language, e.g. dist/languages/fr.ts
	Directory string `yaml:"directory,omitempty"`

	// Language is the catalog used for lookups. 'auto' picks the available catalog closest to the system locale
	Language string `yaml:"language,omitempty"`

	// SourceLanguage is the language the source strings are written in. Looking it up never needs a catalog
	SourceLanguage string `yaml:"sourceLanguage,omitempty"`

	// Lenient makes duplicate keys a warning instead of an error. The first occurrence wins
	Lenient bool `yaml:"lenient,omitempty"`
}

// WatchConfig configures catalog reloading
type WatchConfig struct {
	// Throttle is the minimum time between two reloads of the same catalog. Editors tend to write a file several times when saving
	Throttle time.Duration `yaml:"throttle,omitempty"`
}

// GetDefaultConfig returns the application default configuration
// NOTE (to contributors, not users): do not default a boolean to true, because false is the boolean zero value and this will be ignored when parsing the user's config
func GetDefaultConfig() UserConfig {
	return UserConfig{
		UI: UIConfig{
			Language: "auto",
			Plain:    false,
		},
		Catalogs: CatalogsConfig{
			Directory:      "./dist/languages",
			Language:       "auto",
			SourceLanguage: "en",
			Lenient:        false,
		},
		Watch: WatchConfig{
			Throttle: 500 * time.Millisecond,
		},
	}
}
