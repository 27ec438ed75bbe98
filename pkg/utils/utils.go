package utils

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/go-errors/errors"
	"github.com/mattn/go-runewidth"
	"github.com/samber/lo"

	"github.com/fatih/color"
)

// WithPadding pads a string to the given display width. Wide characters (CJK)
// count as two columns.
func WithPadding(str string, padding int) string {
	width := runewidth.StringWidth(Decolorise(str))
	if padding < width {
		return str
	}
	return str + strings.Repeat(" ", padding-width)
}

// ColoredString takes a string and a colour attribute and returns a colored
// string with that attribute
func ColoredString(str string, colorAttribute color.Attribute) string {
	// fatih/color does not have a color.Default attribute, so unless we fork that repo the only way for us to express that we don't want to color a string different to the terminal's default is to not call the function in the first place, but that's annoying when you want a streamlined code path. Because I'm too lazy to fork the repo right now, we'll just assume that by FgWhite you really mean Default, for the sake of supporting users with light themed terminals.
	if colorAttribute == color.FgWhite {
		return str
	}
	colour := color.New(colorAttribute)
	return ColoredStringDirect(str, colour)
}

// ColoredStringDirect used for aggregating a few color attributes rather than
// just sending a single one
func ColoredStringDirect(str string, colour *color.Color) string {
	return colour.SprintFunc()(fmt.Sprint(str))
}

// RenderTable takes an array of string arrays and returns a table containing the values
func RenderTable(stringArrays [][]string) (string, error) {
	if len(stringArrays) == 0 {
		return "", nil
	}
	if !displayArraysAligned(stringArrays) {
		return "", errors.New("Each item must return the same number of strings to display")
	}

	padWidths := getPadWidths(stringArrays)
	paddedDisplayStrings := getPaddedDisplayStrings(stringArrays, padWidths)

	return strings.Join(paddedDisplayStrings, "\n"), nil
}

var decoloriseRegexp = regexp.MustCompile(`\x1B\[([0-9]{1,2}(;[0-9]{1,2})?)?[m|K]`)

// Decolorise strips a string of color
func Decolorise(str string) string {
	return decoloriseRegexp.ReplaceAllString(str, "")
}

func getPadWidths(stringArrays [][]string) []int {
	if len(stringArrays[0]) <= 1 {
		return []int{}
	}
	padWidths := make([]int, len(stringArrays[0])-1)
	for i := range padWidths {
		for _, strings := range stringArrays {
			width := runewidth.StringWidth(Decolorise(strings[i]))
			if width > padWidths[i] {
				padWidths[i] = width
			}
		}
	}
	return padWidths
}

func getPaddedDisplayStrings(stringArrays [][]string, padWidths []int) []string {
	paddedDisplayStrings := make([]string, len(stringArrays))
	for i, stringArray := range stringArrays {
		if len(stringArray) == 0 {
			continue
		}
		for j, padWidth := range padWidths {
			paddedDisplayStrings[i] += WithPadding(stringArray[j], padWidth) + " "
		}
		paddedDisplayStrings[i] += stringArray[len(padWidths)]
	}
	return paddedDisplayStrings
}

// displayArraysAligned returns true if every string array in the table has
// the same length
func displayArraysAligned(stringArrays [][]string) bool {
	for _, strings := range stringArrays {
		if len(strings) != len(stringArrays[0]) {
			return false
		}
	}
	return true
}

// FormatMapItem is for displaying items in a map
func FormatMapItem(padding int, k string, v interface{}) string {
	return fmt.Sprintf("%s%s %v\n", strings.Repeat(" ", padding), ColoredString(k+":", color.FgYellow), v)
}

// FormatMap renders m one key per line, sorted, indented by padding
func FormatMap(padding int, m map[string]string) string {
	if len(m) == 0 {
		return "none\n"
	}

	keys := lo.Keys(m)
	sort.Strings(keys)

	var output strings.Builder
	output.WriteString("\n")
	for _, key := range keys {
		output.WriteString(FormatMapItem(padding, key, m[key]))
	}
	return output.String()
}

// WrapError attaches a stack trace to err so the top level can print it. It
// returns nil for a nil err, which errors.Wrap does not.
func WrapError(err error) *errors.Error {
	if err == nil {
		return nil
	}

	return errors.Wrap(err, 0)
}
