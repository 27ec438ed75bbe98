package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestValidate(t *testing.T) {
	type scenario struct {
		name    string
		mutate  func(*UserConfig)
		wantErr string
	}

	scenarios := []scenario{
		{
			"defaults",
			func(*UserConfig) {},
			"",
		},
		{
			"qt style locale",
			func(c *UserConfig) { c.Catalogs.Language = "zh_CN" },
			"",
		},
		{
			"empty directory",
			func(c *UserConfig) { c.Catalogs.Directory = " " },
			"catalogs.directory must not be empty",
		},
		{
			"malformed ui language",
			func(c *UserConfig) { c.UI.Language = "??" },
			"for 'ui.language'",
		},
		{
			"auto source language",
			func(c *UserConfig) { c.Catalogs.SourceLanguage = "auto" },
			"catalogs.sourceLanguage",
		},
		{
			"negative throttle",
			func(c *UserConfig) { c.Watch.Throttle = -time.Second },
			"watch.throttle must not be negative",
		},
	}

	for _, s := range scenarios {
		t.Run(s.name, func(t *testing.T) {
			config := GetDefaultConfig()
			s.mutate(&config)
			err := config.Validate()
			if s.wantErr == "" {
				assert.NoError(t, err)
			} else {
				assert.ErrorContains(t, err, s.wantErr)
			}
		})
	}
}
