package lookup

import (
	"math"
	"path/filepath"
	"testing"

	"github.com/jesseduffield/tscat/pkg/catalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func load(t *testing.T, name string) *catalog.Catalog {
	t.Helper()
	c, err := catalog.LoadFile(filepath.Join("..", "catalog", "testdata", name))
	require.NoError(t, err)
	return c
}

func TestResolve(t *testing.T) {
	type scenario struct {
		file     string
		context  string
		source   string
		comment  string
		expected string
	}

	scenarios := []scenario{
		{"el.ts", "AboutDialog", "About Citra", "", "Σχετικά με το Citra"},
		{"el.ts", "ChatRoom", "%1 has joined", "", "Ο/Η %1 συνδέθηκε "},
		{"el.ts", "ChatRoom", "%1 has left", "", "%1 has left"},
		{"el.ts", "ConfigureAudio", "Output", "", "Output"},
		{"el.ts", "ConfigureAudio", "%1%", "Volume percentage (e.g. 50%)", "%1%"},
		{"el.ts", "ConfigureAudio", "%1%", "", "%1%"},
		{"el.ts", "ConfigureMotionTouch", "X", "horizontal axis", "Άξονας X"},
		{"el.ts", "ConfigureMotionTouch", "X", "", "X"},
		{"el.ts", "GameList", "Open Save Data Location", "", "Open Save Data Location"},
		{"el.ts", "GameList", "%n result(s)", "", "%n αποτέλεσμα"},
		{"el.ts", "DoesNotExist", "Anything", "", "Anything"},
		{"el.ts", "Audio", "ConfigureAudio", "", "ConfigureAudio"},
		{"de.ts", "ConfigureAudio", "Output Engine", "", "Output Engine"},
		{"de.ts", "ConfigureAudio", "%1%", "Volume percentage (e.g. 50%)", "%1%"},
		{"de.ts", "DoesNotExist", "Anything", "", "Anything"},
		{"fr.ts", "AboutDialog", "About Citra", "", "À propos de Citra"},
		{"fr.ts", "DoesNotExist", "Anything", "", "Anything"},
	}

	catalogs := map[string]*catalog.Catalog{}
	for _, s := range scenarios {
		c, ok := catalogs[s.file]
		if !ok {
			c = load(t, s.file)
			catalogs[s.file] = c
		}
		assert.Equal(t, s.expected, Resolve(c, s.context, s.source, s.comment), "%s %s %q", s.file, s.context, s.source)
	}
}

func TestResolveFallsBackForEveryUnusableMessage(t *testing.T) {
	for _, name := range []string{"el.ts", "de.ts", "fr.ts"} {
		c := load(t, name)
		for _, ctx := range c.Contexts {
			for _, msg := range ctx.Messages {
				got := Resolve(c, ctx.Name, msg.Source, msg.Comment)
				if msg.Source != "" {
					assert.NotEmpty(t, got)
				}
				if !msg.Usable() {
					assert.Equal(t, msg.Source, got)
				}
			}
		}
	}
}

func TestResolveEmptyAndNilCatalogs(t *testing.T) {
	for _, c := range []*catalog.Catalog{catalog.Empty("en"), nil} {
		assert.Equal(t, "About Citra", Resolve(c, "AboutDialog", "About Citra", ""))
		assert.Equal(t, "%n result(s)", ResolvePlural(c, "GameList", "%n result(s)", "", 3))
	}
}

func TestResolvePlural(t *testing.T) {
	el := load(t, "el.ts")

	ru, err := catalog.New("ru", &catalog.Context{
		Name: "GameList",
		Messages: []*catalog.Message{
			{Source: "%n file(s)", Numerus: true, NumerusForms: []string{"%n файл", "%n файла", "%n файлов"}},
			{Source: "%n dir(s)", Numerus: true, NumerusForms: []string{"%n папка", ""}},
			{Source: "%n game(s)", Numerus: true, NumerusForms: []string{"%n игра"}},
		},
	})
	require.NoError(t, err)

	type scenario struct {
		c        *catalog.Catalog
		source   string
		n        int
		expected string
	}

	scenarios := []scenario{
		{el, "%n result(s)", 1, "%n αποτέλεσμα"},
		{el, "%n result(s)", 0, "%n αποτελέσματα"},
		{el, "%n result(s)", 12, "%n αποτελέσματα"},
		{el, "About Citra", 12, "About Citra"},
		{ru, "%n file(s)", 1, "%n файл"},
		{ru, "%n file(s)", 3, "%n файла"},
		{ru, "%n file(s)", 5, "%n файлов"},
		{ru, "%n file(s)", 21, "%n файл"},
		{ru, "%n dir(s)", 2, "%n папка"},
		{ru, "%n game(s)", 5, "%n игра"},
		{ru, "%n file(s)", math.MinInt, "%n файлов"},
		{el, "%n result(s)", math.MinInt, "%n αποτελέσματα"},
	}

	for _, s := range scenarios {
		assert.Equal(t, s.expected, ResolvePlural(s.c, "GameList", s.source, "", s.n), "%s %d", s.source, s.n)
	}

	assert.Equal(t, "Σχετικά με το Citra", ResolvePlural(el, "AboutDialog", "About Citra", "", 2))
}

type swappable struct {
	c *catalog.Catalog
}

func (s *swappable) Catalog() *catalog.Catalog {
	return s.c
}

func TestServiceFollowsSource(t *testing.T) {
	source := &swappable{c: catalog.Empty("en")}
	service := NewService(source)

	assert.Equal(t, "About Citra", service.Resolve("AboutDialog", "About Citra", ""))

	source.c = load(t, "fr.ts")
	assert.Equal(t, "À propos de Citra", service.Resolve("AboutDialog", "About Citra", ""))

	static := NewService(Static{C: load(t, "el.ts")})
	assert.Equal(t, "%n αποτελέσματα", static.ResolvePlural("GameList", "%n result(s)", "", 2))
}
