package i18n

// TranslationSet is a set of localised strings for a given language
type TranslationSet struct {
	AppDescription string
	ErrorOccurred  string

	ConfigFlag string
	DebugFlag  string
	DirFlag    string

	ResolveCommand string
	ContextArg     string
	SourceArg      string
	CommentFlag    string
	LangFlag       string
	CountFlag      string
	SaveFlag       string

	BatchCommand   string
	BatchLineError string

	StatsCommand     string
	MissingFlag      string
	LanguageColumn   string
	TotalColumn      string
	FinishedColumn   string
	UnfinishedColumn string
	ObsoleteColumn   string
	CompleteColumn   string
	MissingHeading   string
	NoCatalogs       string

	DiffCommand   string
	LanguageArg   string
	OtherArg      string
	NoDifferences string

	ExportCommand string
	FormatFlag    string
	OutputFlag    string
	UnknownFormat string

	WatchCommand string
	Watching     string

	ConfigCommand    string
	ConfigPathArg    string
	UnknownConfigKey string
}

