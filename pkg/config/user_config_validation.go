package config

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
)

// Validate validates the user config
func (config *UserConfig) Validate() error {
	if strings.TrimSpace(config.Catalogs.Directory) == "" {
		return fmt.Errorf("catalogs.directory must not be empty")
	}

	if err := validateLanguage("ui.language", config.UI.Language); err != nil {
		return err
	}
	if err := validateLanguage("catalogs.language", config.Catalogs.Language); err != nil {
		return err
	}
	if config.Catalogs.SourceLanguage == "auto" {
		return fmt.Errorf("catalogs.sourceLanguage must name a language, not 'auto'")
	}
	if err := validateLanguage("catalogs.sourceLanguage", config.Catalogs.SourceLanguage); err != nil {
		return err
	}

	if config.Watch.Throttle < 0 {
		return fmt.Errorf("watch.throttle must not be negative, got %s", config.Watch.Throttle)
	}

	return nil
}

// validateLanguage accepts 'auto', BCP 47 tags and Qt style locales such as zh_CN
func validateLanguage(path string, value string) error {
	if value == "" || value == "auto" {
		return nil
	}
	if _, err := language.Parse(strings.ReplaceAll(value, "_", "-")); err != nil {
		return fmt.Errorf("Unrecognized language '%s' for '%s': %v", value, path, err)
	}
	return nil
}
