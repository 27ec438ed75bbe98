package i18n

func englishSet() TranslationSet {
	return TranslationSet{
		AppDescription: "Look up strings in Qt Linguist translation catalogs",
		ErrorOccurred:  "An error occurred! Please create an issue at https://github.com/jesseduffield/tscat/issues",

		ConfigFlag: "Print the default config",
		DebugFlag:  "Write a debug log to development.log in the config directory",
		DirFlag:    "Directory holding the .ts catalogs (overrides catalogs.directory)",

		ResolveCommand: "Print the display string for a source string",
		ContextArg:     "UI context, e.g. AboutDialog",
		SourceArg:      "source text, e.g. 'About Citra'",
		CommentFlag:    "disambiguation comment",
		LangFlag:       "catalog language (defaults to catalogs.language)",
		CountFlag:      "count used to pick a plural form",
		SaveFlag:       "remember the catalog language in config.yml",

		BatchCommand:   "Resolve one 'context source [comment]' line at a time from stdin",
		BatchLineError: "line %d: expected 'context source [comment]', got %q",

		StatsCommand:     "Show how complete each catalog is",
		MissingFlag:      "also list the untranslated strings",
		LanguageColumn:   "language",
		TotalColumn:      "total",
		FinishedColumn:   "finished",
		UnfinishedColumn: "unfinished",
		ObsoleteColumn:   "obsolete",
		CompleteColumn:   "complete",
		MissingHeading:   "Untranslated in %s:",
		NoCatalogs:       "No catalogs found in %s",

		DiffCommand:   "Compare the keys of two catalogs",
		LanguageArg:   "language of the first catalog",
		OtherArg:      "language of the second catalog",
		NoDifferences: "Both catalogs have the same keys",

		ExportCommand: "Convert a catalog to another format",
		FormatFlag:    "output format: toml, yaml or ts",
		OutputFlag:    "file to write to (defaults to stdout)",
		UnknownFormat: "Unknown export format '%s'. Use toml, yaml or ts",

		WatchCommand: "Load a catalog and reload it whenever it changes",
		Watching:     "Watching %s, press ctrl+c to stop",

		ConfigCommand:    "Print a config value by path, e.g. catalogs.directory",
		ConfigPathArg:    "dotted config path",
		UnknownConfigKey: "No config value at '%s'",
	}
}
