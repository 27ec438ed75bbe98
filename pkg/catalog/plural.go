package catalog

import (
	"math"
	"sync"

	"golang.org/x/text/feature/plural"
	"golang.org/x/text/language"
)

// Qt stores numerus forms in this category order, keeping only the categories
// a language actually uses for whole numbers.
var formOrder = []plural.Form{plural.Zero, plural.One, plural.Two, plural.Few, plural.Many, plural.Other}

// Whole numbers below this bound exercise every integer category of the CLDR
// cardinal rules.
const pluralProbeLimit = 200

var pluralFormsCache sync.Map

// PluralForms returns the plural categories used for whole numbers in the
// given language, in numerus form order.
func PluralForms(tag language.Tag) []plural.Form {
	key := tag.String()
	if cached, ok := pluralFormsCache.Load(key); ok {
		return cached.([]plural.Form)
	}

	used := map[plural.Form]bool{}
	for n := 0; n < pluralProbeLimit; n++ {
		used[plural.Cardinal.MatchPlural(tag, n, 0, 0, 0, 0)] = true
	}
	forms := make([]plural.Form, 0, len(used))
	for _, form := range formOrder {
		if used[form] {
			forms = append(forms, form)
		}
	}

	pluralFormsCache.Store(key, forms)
	return forms
}

// PluralIndex returns the numerus form index for n. Categories a language only
// reaches for very large numbers map to its last form.
func PluralIndex(tag language.Tag, n int) int {
	forms := PluralForms(tag)
	form := plural.Cardinal.MatchPlural(tag, magnitude(n), 0, 0, 0, 0)
	for i, f := range forms {
		if f == form {
			return i
		}
	}
	return len(forms) - 1
}

// magnitude returns |n|. -MinInt does not fit in an int, so it is replaced by
// a large number with the same last six digits, which is all the integer
// rules look at beyond small values.
func magnitude(n int) int {
	if n >= 0 {
		return n
	}
	u := uint64(-(n + 1)) + 1
	if u > math.MaxInt {
		return int(u%1_000_000) + 1_000_000
	}
	return int(u)
}

// PluralFormName returns the CLDR keyword of a category ("one", "few", ...).
func PluralFormName(form plural.Form) string {
	switch form {
	case plural.Zero:
		return "zero"
	case plural.One:
		return "one"
	case plural.Two:
		return "two"
	case plural.Few:
		return "few"
	case plural.Many:
		return "many"
	default:
		return "other"
	}
}
