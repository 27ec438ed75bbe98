package i18n

import (
	"reflect"
	"sort"
	"strings"

	"github.com/cloudfoundry/jibber_jabber"
	"github.com/go-errors/errors"
	"github.com/imdario/mergo"
	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
)

// ISO 639-1 supported language codes.
const (
	// German
	DE = "de"
	// Greek
	EL = "el"
	// English
	EN = "en"
	// French
	FR = "fr"
)

func NewTranslationSetFromConfig(log *logrus.Entry, configLanguage string) (*TranslationSet, error) {
	if configLanguage == "auto" {
		language := detectLanguage(jibber_jabber.DetectLanguage)

		return NewTranslationSet(log, language), nil
	}

	if base := baseLanguage(configLanguage); lo.Contains(getSupportedLanguages(), base) {
		return NewTranslationSet(log, base), nil
	}

	return NewTranslationSet(log, EN), errors.New("Language not found: " + configLanguage)
}

func NewTranslationSet(log *logrus.Entry, language string) *TranslationSet {
	log.Info("language: " + language)

	baseSet := englishSet()
	otherSet := getTranslationSet(language)

	_ = mergo.Merge(&baseSet, otherSet, mergo.WithOverride)

	return &baseSet
}

// GetTranslationSets gets all the translation sets, keyed by language code
func GetTranslationSets() map[string]TranslationSet {
	return map[string]TranslationSet{
		DE: germanSet(),
		EL: greekSet(),
		EN: englishSet(),
		FR: frenchSet(),
	}
}

// OutstandingTranslations lists, per language, the TranslationSet fields that
// still fall back to english. Languages with nothing left out are omitted.
func OutstandingTranslations() map[string][]string {
	outstanding := map[string][]string{}
	for languageCode, translationSet := range GetTranslationSets() {
		v := reflect.ValueOf(translationSet)
		for i := 0; i < v.NumField(); i++ {
			if v.Field(i).String() == "" {
				outstanding[languageCode] = append(outstanding[languageCode], v.Type().Field(i).Name)
			}
		}
	}
	return outstanding
}

// SortedLanguages returns the keys of m in order
func SortedLanguages[T any](m map[string]T) []string {
	languages := lo.Keys(m)
	sort.Strings(languages)
	return languages
}

// getTranslationSet returns the translation set that matches the given language.
//
// It returns an english translation set if not found.
func getTranslationSet(languageCode string) TranslationSet {
	switch languageCode {
	case DE:
		return germanSet()
	case EL:
		return greekSet()
	case EN:
		return englishSet()
	case FR:
		return frenchSet()
	}

	return englishSet()
}

// getSupportedLanguages returns all the supported languages.
func getSupportedLanguages() []string {
	return []string{
		DE,
		EL,
		EN,
		FR,
	}
}

// baseLanguage strips the region from locales such as fr_CA or fr-CA
func baseLanguage(locale string) string {
	base, _, _ := strings.Cut(strings.ReplaceAll(locale, "_", "-"), "-")
	return strings.ToLower(base)
}

// detectLanguage extracts user language from environment
func detectLanguage(langDetector func() (string, error)) string {
	if userLang, err := langDetector(); err == nil {
		return userLang
	}

	return "C"
}
