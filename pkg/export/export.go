// Package export converts catalogs to formats other tools consume.
package export

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/jesseduffield/tscat/pkg/catalog"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pelletier/go-toml/v2"
	"golang.org/x/text/feature/plural"
)

// Format names an export format.
type Format string

const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
	FormatTS   Format = "ts"
)

// Formats lists the supported export formats.
var Formats = []Format{FormatTOML, FormatYAML, FormatTS}

// UnknownFormatError is returned by Export for a format it does not know.
type UnknownFormatError struct {
	Format string
}

func (e *UnknownFormatError) Error() string {
	return fmt.Sprintf("unknown export format %q", e.Format)
}

// Export encodes c in the named format.
func Export(c *catalog.Catalog, format string) ([]byte, error) {
	switch Format(strings.ToLower(format)) {
	case FormatTOML:
		return GoI18n(c)
	case FormatYAML:
		return YAML(c)
	case FormatTS:
		return TS(c)
	}
	return nil, &UnknownFormatError{Format: format}
}

// FileName returns the conventional file name for an exported catalog, e.g.
// "active.fr.toml" for go-i18n message files.
func FileName(lang string, format Format) string {
	if format == FormatTOML {
		return "active." + lang + ".toml"
	}
	return lang + "." + string(format)
}

// MessageID returns the go-i18n message ID for a key: "context::source", with
// "::comment" appended for disambiguated messages.
func MessageID(key catalog.Key) string {
	id := key.Context + "::" + key.Source
	if key.Comment != "" {
		id += "::" + key.Comment
	}
	return id
}

// Messages converts the usable messages of c to go-i18n messages. Unfinished,
// obsolete and vanished messages are left out so go-i18n falls back the same
// way lookups do.
func Messages(c *catalog.Catalog) []*i18n.Message {
	forms := catalog.PluralForms(c.Tag())

	messages := []*i18n.Message{}
	for _, ctx := range c.Contexts {
		for _, msg := range ctx.Messages {
			if !msg.Usable() {
				continue
			}

			m := &i18n.Message{
				ID:          MessageID(msg.Key(ctx.Name)),
				Description: msg.Comment,
			}
			if m.Description == "" {
				m.Description = msg.ExtraComment
			}

			if msg.Numerus {
				setPluralForms(m, forms, msg.NumerusForms)
			} else {
				m.Other = msg.Translation
			}
			messages = append(messages, m)
		}
	}
	return messages
}

func setPluralForms(m *i18n.Message, forms []plural.Form, numerusForms []string) {
	for i, form := range forms {
		if i >= len(numerusForms) {
			break
		}
		switch catalog.PluralFormName(form) {
		case "zero":
			m.Zero = numerusForms[i]
		case "one":
			m.One = numerusForms[i]
		case "two":
			m.Two = numerusForms[i]
		case "few":
			m.Few = numerusForms[i]
		case "many":
			m.Many = numerusForms[i]
		default:
			m.Other = numerusForms[i]
		}
	}
	// go-i18n always wants an "other" form; Qt uses the last form for any
	// category it has no form for.
	if m.Other == "" {
		m.Other = numerusForms[len(numerusForms)-1]
	}
}

// GoI18n encodes c as a go-i18n v2 TOML message file.
func GoI18n(c *catalog.Catalog) ([]byte, error) {
	table := map[string]map[string]string{}
	for _, m := range Messages(c) {
		entry := map[string]string{}
		add := func(name, value string) {
			if value != "" {
				entry[name] = value
			}
		}
		add("description", m.Description)
		add("zero", m.Zero)
		add("one", m.One)
		add("two", m.Two)
		add("few", m.Few)
		add("many", m.Many)
		add("other", m.Other)
		table[m.ID] = entry
	}
	return toml.Marshal(table)
}

type yamlCatalog struct {
	Language       string        `yaml:"language"`
	SourceLanguage string        `yaml:"sourceLanguage,omitempty"`
	Version        string        `yaml:"version"`
	Contexts       []yamlContext `yaml:"contexts"`
}

type yamlContext struct {
	Name     string        `yaml:"name"`
	Messages []yamlMessage `yaml:"messages"`
}

type yamlMessage struct {
	Source            string   `yaml:"source"`
	Comment           string   `yaml:"comment,omitempty"`
	Translation       string   `yaml:"translation,omitempty"`
	NumerusForms      []string `yaml:"numerusForms,omitempty"`
	Type              string   `yaml:"type,omitempty"`
	ExtraComment      string   `yaml:"extraComment,omitempty"`
	TranslatorComment string   `yaml:"translatorComment,omitempty"`
	Locations         []string `yaml:"locations,omitempty"`
}

// YAML dumps every message of c, usable or not, as YAML.
func YAML(c *catalog.Catalog) ([]byte, error) {
	doc := yamlCatalog{
		Language:       c.Language,
		SourceLanguage: c.SourceLanguage,
		Version:        c.Version,
		Contexts:       []yamlContext{},
	}
	for _, ctx := range c.Contexts {
		yc := yamlContext{Name: ctx.Name, Messages: []yamlMessage{}}
		for _, msg := range ctx.Messages {
			yc.Messages = append(yc.Messages, yamlMessage{
				Source:            msg.Source,
				Comment:           msg.Comment,
				Translation:       msg.Translation,
				NumerusForms:      msg.NumerusForms,
				Type:              msg.Type.String(),
				ExtraComment:      msg.ExtraComment,
				TranslatorComment: msg.TranslatorComment,
				Locations:         formatLocations(msg.Locations),
			})
		}
		doc.Contexts = append(doc.Contexts, yc)
	}
	return yaml.Marshal(doc)
}

func formatLocations(locations []catalog.Location) []string {
	if len(locations) == 0 {
		return nil
	}
	out := make([]string, 0, len(locations))
	for _, loc := range locations {
		switch {
		case loc.Relative && loc.Line >= 0:
			out = append(out, loc.Filename+":+"+strconv.Itoa(loc.Line))
		case loc.Relative || loc.Line != 0:
			out = append(out, loc.Filename+":"+strconv.Itoa(loc.Line))
		default:
			out = append(out, loc.Filename)
		}
	}
	return out
}

// TS encodes c back into the TS format, normalising layout and escaping.
func TS(c *catalog.Catalog) ([]byte, error) {
	return catalog.Marshal(c)
}
