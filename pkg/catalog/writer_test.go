package catalog

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarshalRoundTrip(t *testing.T) {
	for _, name := range []string{"el.ts", "de.ts", "fr.ts"} {
		t.Run(name, func(t *testing.T) {
			original := loadTestCatalog(t, name)

			data, err := Marshal(original)
			require.NoError(t, err)

			reloaded, err := ParseBytes(data)
			require.NoError(t, err)

			assert.Equal(t, original.Language, reloaded.Language)
			assert.Equal(t, original.Version, reloaded.Version)
			assert.Equal(t, original.Keys(), reloaded.Keys())
			assert.Equal(t, original.Contexts, reloaded.Contexts)
		})
	}
}

func TestMarshalLayout(t *testing.T) {
	c, err := New("el", &Context{
		Name: "GameList",
		Messages: []*Message{
			{
				Source:       "%n result(s)",
				Numerus:      true,
				NumerusForms: []string{"%n αποτέλεσμα", "%n αποτελέσματα"},
				Locations:    []Location{{Filename: "game_list.cpp", Line: 421}},
			},
			{
				Source:    "Open",
				Type:      Unfinished,
				Locations: []Location{{Filename: "game_list.cpp", Line: 3, Relative: true}, {Filename: "menu.ui"}},
			},
		},
	})
	require.NoError(t, err)

	data, err := Marshal(c)
	require.NoError(t, err)
	out := string(data)

	assert.True(t, strings.HasPrefix(out, "<?xml version=\"1.0\" encoding=\"UTF-8\"?>\n<!DOCTYPE TS>\n<TS version=\"2.1\" language=\"el\">"))
	assert.Contains(t, out, `<message numerus="yes">`)
	assert.Contains(t, out, `<numerusform>%n αποτέλεσμα</numerusform>`)
	assert.Contains(t, out, `<location filename="game_list.cpp" line="+3"></location>`)
	assert.Contains(t, out, `<location filename="menu.ui"></location>`)
	assert.Contains(t, out, `<translation type="unfinished"></translation>`)
	assert.True(t, strings.HasSuffix(out, "</TS>\n"))
}

func TestMarshalEscapesRichText(t *testing.T) {
	c, err := New("el", &Context{
		Name:     "AboutDialog",
		Messages: []*Message{{Source: "<b>&quot;3DS&quot;</b>", Translation: "<b>3DS</b>"}},
	})
	require.NoError(t, err)

	data, err := Marshal(c)
	require.NoError(t, err)
	assert.Contains(t, string(data), "<source>&lt;b&gt;&amp;quot;3DS&amp;quot;&lt;/b&gt;</source>")

	reloaded, err := ParseBytes(data)
	require.NoError(t, err)
	msg, ok := reloaded.Lookup(Key{Context: "AboutDialog", Source: "<b>&quot;3DS&quot;</b>"})
	require.True(t, ok)
	assert.Equal(t, "<b>3DS</b>", msg.Translation)
}
