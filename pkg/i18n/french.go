package i18n

func frenchSet() TranslationSet {
	return TranslationSet{
		AppDescription: "Rechercher des chaînes dans les catalogues de traduction Qt Linguist",
		ErrorOccurred:  "Une erreur s'est produite ! Merci de créer un ticket sur https://github.com/jesseduffield/tscat/issues",

		ConfigFlag: "Afficher la configuration par défaut",
		DebugFlag:  "Écrire un journal de débogage dans development.log",

		ResolveCommand: "Afficher la chaîne traduite d'un texte source",
		CommentFlag:    "commentaire de désambiguïsation",
		LangFlag:       "langue du catalogue",
		SaveFlag:       "enregistrer la langue du catalogue dans config.yml",
		CountFlag:      "nombre utilisé pour choisir la forme du pluriel",

		BatchLineError: "ligne %d : 'contexte source [commentaire]' attendu, %q reçu",

		StatsCommand:     "Afficher l'avancement de chaque catalogue",
		MissingFlag:      "lister aussi les chaînes non traduites",
		LanguageColumn:   "langue",
		TotalColumn:      "total",
		FinishedColumn:   "traduites",
		UnfinishedColumn: "à faire",
		ObsoleteColumn:   "obsolètes",
		CompleteColumn:   "terminé",
		MissingHeading:   "Non traduit en %s :",
		NoCatalogs:       "Aucun catalogue trouvé dans %s",

		DiffCommand:   "Comparer les clés de deux catalogues",
		NoDifferences: "Les deux catalogues ont les mêmes clés",

		ExportCommand: "Convertir un catalogue dans un autre format",
		UnknownFormat: "Format d'export inconnu '%s'. Utilisez toml, yaml ou ts",

		WatchCommand: "Charger un catalogue et le recharger à chaque modification",
		Watching:     "Surveillance de %s, ctrl+c pour arrêter",

		UnknownConfigKey: "Aucune valeur de configuration pour '%s'",
	}
}
