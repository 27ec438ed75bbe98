package report

import (
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

func newCatalog(t *testing.T, lang string, messages ...*catalog.Message) *catalog.Catalog {
	t.Helper()
	c, err := catalog.New(lang, &catalog.Context{Name: "A", Messages: messages})
	require.NoError(t, err)
	return c
}

func TestCollect(t *testing.T) {
	type scenario struct {
		file     string
		expected Stats
	}

	scenarios := []scenario{
		{"el.ts", Stats{Language: "el", Total: 10, Finished: 8, Unfinished: 2, Obsolete: 1}},
		{"fr.ts", Stats{Language: "fr", Total: 509, Finished: 509}},
		{"de.ts", Stats{Language: "de", Total: 1011, Finished: 882, Unfinished: 129}},
	}

	for _, s := range scenarios {
		t.Run(s.file, func(t *testing.T) {
			assert.Equal(t, s.expected, Collect(load(t, s.file)))
		})
	}
}

func TestCollectCountsEmptyFinishedAsUnfinished(t *testing.T) {
	c := newCatalog(t, "el",
		&catalog.Message{Source: "x", Translation: ""},
		&catalog.Message{Source: "y", Translation: "ψ"},
		&catalog.Message{Source: "z", Translation: "ζ", Type: catalog.Vanished},
	)

	stats := Collect(c)
	assert.Equal(t, Stats{Language: "el", Total: 2, Finished: 1, Unfinished: 1, Obsolete: 1}, stats)
	assert.Equal(t, 50.0, stats.Percent())
	assert.EqualValues(t, []catalog.Key{{Context: "A", Source: "x"}}, Missing(c))
}

func TestPercent(t *testing.T) {
	type scenario struct {
		stats    Stats
		expected string
	}

	scenarios := []scenario{
		{Stats{}, "100%"},
		{Stats{Total: 4, Finished: 1}, "25%"},
		{Stats{Total: 3, Finished: 2}, "66.7%"},
		{Stats{Total: 1011, Finished: 882}, "87.2%"},
	}

	for _, s := range scenarios {
		assert.Equal(t, s.expected, FormatPercent(s.stats))
	}
}

func TestMissing(t *testing.T) {
	assert.EqualValues(t, []catalog.Key{
		{Context: "ChatRoom", Source: "%1 has left"},
		{Context: "ConfigureAudio", Source: "Output"},
	}, Missing(load(t, "el.ts")))

	assert.Empty(t, Missing(load(t, "fr.ts")))
	assert.Len(t, Missing(load(t, "de.ts")), 129)
}

func TestDiff(t *testing.T) {
	a := newCatalog(t, "el",
		&catalog.Message{Source: "x", Translation: "ξ"},
		&catalog.Message{Source: "y", Translation: "ψ"},
		&catalog.Message{Source: "old", Translation: "παλιό", Type: catalog.Obsolete},
	)
	b := newCatalog(t, "fr",
		&catalog.Message{Source: "z", Translation: "z"},
		&catalog.Message{Source: "x", Translation: "x"},
	)

	diff, err := Diff(a, b)
	require.NoError(t, err)

	assert.Contains(t, diff, "--- el\n+++ fr\n")
	assert.Contains(t, diff, " A: \"x\"\n")
	assert.Contains(t, diff, "-A: \"y\"\n")
	assert.Contains(t, diff, "+A: \"z\"\n")
	assert.NotContains(t, diff, "old")

	same, err := Diff(a, a)
	require.NoError(t, err)
	assert.Equal(t, "", same)
}

func TestDiffRealCatalogs(t *testing.T) {
	diff, err := Diff(load(t, "fr.ts"), load(t, "de.ts"))
	require.NoError(t, err)
	assert.Contains(t, diff, "+ConfigureAudio: \"Output Engine\"\n")
}

func TestRowsAndTable(t *testing.T) {
	rows := Rows(
		[]string{"language", "total", "finished", "unfinished", "obsolete", "complete"},
		[]Stats{
			{Language: "de", Total: 1011, Finished: 882, Unfinished: 129},
			{Language: "el", Total: 10, Finished: 8, Unfinished: 2, Obsolete: 1},
		},
		FormatPercent,
	)

	table, err := Table(rows)
	require.NoError(t, err)
	assert.Equal(t,
		"language total finished unfinished obsolete complete\n"+
			"de       1011  882      129        0        87.2%\n"+
			"el       10    8        2          1        80%",
		table,
	)
}
