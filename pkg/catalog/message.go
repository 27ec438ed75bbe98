package catalog

import "fmt"

// TranslationType mirrors the type attribute of a <translation> element.
type TranslationType int

const (
	// Finished translations carry no type attribute.
	Finished TranslationType = iota
	// Unfinished translations have not been completed by a translator.
	Unfinished
	// Obsolete translations belong to strings no longer present in the UI.
	Obsolete
	// Vanished is the newer lupdate spelling of Obsolete.
	Vanished
)

var translationTypeNames = map[TranslationType]string{
	Finished:   "",
	Unfinished: "unfinished",
	Obsolete:   "obsolete",
	Vanished:   "vanished",
}

func (t TranslationType) String() string {
	if name, ok := translationTypeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("TranslationType(%d)", int(t))
}

func parseTranslationType(s string) (TranslationType, bool) {
	for t, name := range translationTypeNames {
		if name == s {
			return t, true
		}
	}
	return Finished, false
}

// Location records where a string came from in the UI sources. When lupdate
// writes relative locations the line is an offset from the previous location
// in the same file and Relative is set.
type Location struct {
	Filename string
	Line     int
	Relative bool
}

// Message is one translatable string.
type Message struct {
	Source  string
	Comment string

	Translation string
	Type        TranslationType

	// Numerus messages carry one form per plural category of the target
	// language instead of Translation.
	Numerus      bool
	NumerusForms []string

	ExtraComment      string
	TranslatorComment string
	Locations         []Location
}

// Key returns the lookup key of the message within the named context.
func (m *Message) Key(context string) Key {
	return Key{Context: context, Source: m.Source, Comment: m.Comment}
}

// Usable reports whether the translation may be shown. Unfinished, obsolete
// and vanished translations never are, even when they carry text.
func (m *Message) Usable() bool {
	if m == nil || m.Type != Finished {
		return false
	}
	if m.Numerus {
		for _, form := range m.NumerusForms {
			if form != "" {
				return true
			}
		}
		return false
	}
	return m.Translation != ""
}
