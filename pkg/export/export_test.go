package export

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/goccy/go-yaml"
	"github.com/jesseduffield/tscat/pkg/catalog"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func load(t *testing.T, name string) *catalog.Catalog {
	t.Helper()
	c, err := catalog.LoadFile(filepath.Join("..", "catalog", "testdata", name))
	require.NoError(t, err)
	return c
}

func newLocalizer(t *testing.T, c *catalog.Catalog) *i18n.Localizer {
	t.Helper()
	data, err := GoI18n(c)
	require.NoError(t, err)

	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)
	_, err = bundle.ParseMessageFileBytes(data, FileName(c.Language, FormatTOML))
	require.NoError(t, err)

	return i18n.NewLocalizer(bundle, c.Language)
}

func TestMessageID(t *testing.T) {
	assert.Equal(t, "AboutDialog::About Citra", MessageID(catalog.Key{Context: "AboutDialog", Source: "About Citra"}))
	assert.Equal(t, "ConfigureAudio::%1%::Volume percentage (e.g. 50%)", MessageID(catalog.Key{
		Context: "ConfigureAudio",
		Source:  "%1%",
		Comment: "Volume percentage (e.g. 50%)",
	}))
}

func TestGoI18nLoadsIntoBundle(t *testing.T) {
	localizer := newLocalizer(t, load(t, "fr.ts"))

	got, err := localizer.Localize(&i18n.LocalizeConfig{MessageID: "AboutDialog::About Citra"})
	require.NoError(t, err)
	assert.Equal(t, "À propos de Citra", got)
}

func TestGoI18nSkipsUnusableMessages(t *testing.T) {
	el := load(t, "el.ts")
	localizer := newLocalizer(t, el)

	type scenario struct {
		id       string
		expected string
	}

	scenarios := []scenario{
		{"AboutDialog::About Citra", "Σχετικά με το Citra"},
		{"ConfigureAudio::%1%::Volume percentage (e.g. 50%)", "%1%"},
		{"ConfigureMotionTouch::X::horizontal axis", "Άξονας X"},
		{"ChatRoom::%1 has joined", "Ο/Η %1 συνδέθηκε "},
	}

	for _, s := range scenarios {
		got, err := localizer.Localize(&i18n.LocalizeConfig{MessageID: s.id})
		require.NoError(t, err, s.id)
		assert.Equal(t, s.expected, got)
	}

	for _, id := range []string{"ConfigureAudio::Output", "ChatRoom::%1 has left", "GameList::Open Save Data Location"} {
		_, err := localizer.Localize(&i18n.LocalizeConfig{MessageID: id})
		var notFound *i18n.MessageNotFoundErr
		assert.True(t, errors.As(err, &notFound), id)
	}

	assert.Len(t, Messages(el), 8)
}

func TestGoI18nPluralForms(t *testing.T) {
	localizer := newLocalizer(t, load(t, "el.ts"))

	type scenario struct {
		count    int
		expected string
	}

	scenarios := []scenario{
		{1, "%n αποτέλεσμα"},
		{2, "%n αποτελέσματα"},
		{0, "%n αποτελέσματα"},
	}

	for _, s := range scenarios {
		got, err := localizer.Localize(&i18n.LocalizeConfig{MessageID: "GameList::%n result(s)", PluralCount: s.count})
		require.NoError(t, err)
		assert.Equal(t, s.expected, got, "count %d", s.count)
	}
}

func TestSetPluralFormsWithoutOther(t *testing.T) {
	m := &i18n.Message{}
	setPluralForms(m, catalog.PluralForms(language.Russian), []string{"%n файл", "%n файла", "%n файлов"})

	assert.Equal(t, "%n файл", m.One)
	assert.Equal(t, "%n файла", m.Few)
	assert.Equal(t, "%n файлов", m.Many)
	assert.Equal(t, "%n файлов", m.Other)
}

func TestYAML(t *testing.T) {
	data, err := YAML(load(t, "el.ts"))
	require.NoError(t, err)

	var doc yamlCatalog
	require.NoError(t, yaml.Unmarshal(data, &doc))

	assert.Equal(t, "el", doc.Language)
	require.Len(t, doc.Contexts, 5)

	audio := doc.Contexts[2]
	assert.Equal(t, "ConfigureAudio", audio.Name)
	assert.Equal(t, yamlMessage{
		Source:    "Output",
		Type:      "unfinished",
		Locations: []string{"../../src/citra_qt/configuration/configure_audio.ui:28"},
	}, audio.Messages[0])

	motion := doc.Contexts[3]
	assert.EqualValues(t, []string{
		"../../src/citra_qt/configuration/configure_motion_touch.ui:84",
		"../../src/citra_qt/configuration/configure_motion_touch.cpp:+12",
	}, motion.Messages[1].Locations)

	games := doc.Contexts[4]
	assert.EqualValues(t, []string{"%n αποτέλεσμα", "%n αποτελέσματα"}, games.Messages[0].NumerusForms)
	assert.Equal(t, "obsolete", games.Messages[1].Type)
}

func TestExport(t *testing.T) {
	el := load(t, "el.ts")

	for _, format := range Formats {
		data, err := Export(el, string(format))
		require.NoError(t, err)
		assert.NotEmpty(t, data)
	}

	data, err := Export(el, "TS")
	require.NoError(t, err)
	reloaded, err := catalog.ParseBytes(data)
	require.NoError(t, err)
	assert.Equal(t, el.Keys(), reloaded.Keys())

	_, err = Export(el, "po")
	var unknown *UnknownFormatError
	assert.True(t, errors.As(err, &unknown))
	assert.Equal(t, "po", unknown.Format)
}

func TestFileName(t *testing.T) {
	assert.Equal(t, "active.fr.toml", FileName("fr", FormatTOML))
	assert.Equal(t, "el.yaml", FileName("el", FormatYAML))
	assert.Equal(t, "de.ts", FileName("de", FormatTS))
}
