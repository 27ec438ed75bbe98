package i18n

func germanSet() TranslationSet {
	return TranslationSet{
		AppDescription: "Zeichenketten in Qt-Linguist-Übersetzungskatalogen nachschlagen",

		StatsCommand:     "Zeigen, wie vollständig jeder Katalog ist",
		LanguageColumn:   "Sprache",
		TotalColumn:      "gesamt",
		FinishedColumn:   "fertig",
		UnfinishedColumn: "unfertig",
		ObsoleteColumn:   "veraltet",
		CompleteColumn:   "vollständig",
		MissingHeading:   "Nicht übersetzt in %s:",
		NoCatalogs:       "Keine Kataloge in %s gefunden",

		NoDifferences: "Beide Kataloge haben dieselben Schlüssel",
		Watching:      "Beobachte %s, Strg+C zum Beenden",
	}
}
