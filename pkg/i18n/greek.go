package i18n

func greekSet() TranslationSet {
	return TranslationSet{
		StatsCommand:     "Εμφάνιση της προόδου κάθε καταλόγου",
		LanguageColumn:   "γλώσσα",
		TotalColumn:      "σύνολο",
		FinishedColumn:   "ολοκληρωμένα",
		UnfinishedColumn: "ημιτελή",
		ObsoleteColumn:   "παρωχημένα",
		CompleteColumn:   "πρόοδος",
		MissingHeading:   "Αμετάφραστα στα %s:",
		NoCatalogs:       "Δεν βρέθηκαν κατάλογοι στο %s",

		NoDifferences: "Οι δύο κατάλογοι έχουν τα ίδια κλειδιά",
		Watching:      "Παρακολούθηση του %s, ctrl+c για διακοπή",
	}
}
