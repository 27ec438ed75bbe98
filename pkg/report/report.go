// Package report summarises how complete catalogs are and how they differ.
package report

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jesseduffield/tscat/pkg/catalog"
	"github.com/jesseduffield/tscat/pkg/utils"
	"github.com/pmezard/go-difflib/difflib"
	"github.com/samber/lo"
)

// Stats counts the messages of one catalog by state. Obsolete covers both
// obsolete and vanished messages; they do not count towards Total.
type Stats struct {
	Language   string
	Total      int
	Finished   int
	Unfinished int
	Obsolete   int
}

// Percent returns the share of finished messages, 0 to 100.
func (s Stats) Percent() float64 {
	if s.Total == 0 {
		return 100
	}
	return float64(s.Finished) * 100 / float64(s.Total)
}

// Collect counts the messages of c. A finished message with an empty
// translation counts as unfinished, since lookups fall back for it.
func Collect(c *catalog.Catalog) Stats {
	stats := Stats{Language: c.Language}
	for _, ctx := range c.Contexts {
		for _, msg := range ctx.Messages {
			switch {
			case msg.Type == catalog.Obsolete || msg.Type == catalog.Vanished:
				stats.Obsolete++
				continue
			case msg.Usable():
				stats.Finished++
			default:
				stats.Unfinished++
			}
			stats.Total++
		}
	}
	return stats
}

// Missing lists, in document order, the keys of live messages that lookups
// cannot translate.
func Missing(c *catalog.Catalog) []catalog.Key {
	keys := []catalog.Key{}
	for _, ctx := range c.Contexts {
		for _, msg := range ctx.Messages {
			if msg.Type == catalog.Obsolete || msg.Type == catalog.Vanished || msg.Usable() {
				continue
			}
			keys = append(keys, msg.Key(ctx.Name))
		}
	}
	return keys
}

// Diff returns a unified diff of the sorted key lists of a and b, or "" when
// both have the same keys. Obsolete and vanished messages are ignored.
func Diff(a, b *catalog.Catalog) (string, error) {
	return difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        keyLines(a),
		B:        keyLines(b),
		FromFile: a.Language,
		ToFile:   b.Language,
		Context:  1,
	})
}

func keyLines(c *catalog.Catalog) []string {
	lines := []string{}
	for _, ctx := range c.Contexts {
		for _, msg := range ctx.Messages {
			if msg.Type == catalog.Obsolete || msg.Type == catalog.Vanished {
				continue
			}
			lines = append(lines, msg.Key(ctx.Name).String()+"\n")
		}
	}
	lines = lo.Uniq(lines)
	sort.Strings(lines)
	return lines
}

// Table renders rows as aligned columns. Cells are aligned by display width,
// so Greek and CJK text lines up.
func Table(rows [][]string) (string, error) {
	return utils.RenderTable(rows)
}

// Rows turns stats into table rows under the given header. percent formats
// the completion cell, e.g. to color it.
func Rows(header []string, stats []Stats, percent func(Stats) string) [][]string {
	rows := [][]string{header}
	for _, s := range stats {
		rows = append(rows, []string{
			s.Language,
			fmt.Sprint(s.Total),
			fmt.Sprint(s.Finished),
			fmt.Sprint(s.Unfinished),
			fmt.Sprint(s.Obsolete),
			percent(s),
		})
	}
	return rows
}

// FormatPercent formats a completion percentage with one decimal.
func FormatPercent(s Stats) string {
	return strings.TrimSuffix(fmt.Sprintf("%.1f", s.Percent()), ".0") + "%"
}
