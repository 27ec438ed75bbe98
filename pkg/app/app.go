package app

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"reflect"
	"strings"

	"github.com/fatih/color"
	"github.com/jesseduffield/tscat/pkg/catalog"
	"github.com/jesseduffield/tscat/pkg/config"
	"github.com/jesseduffield/tscat/pkg/export"
	"github.com/jesseduffield/tscat/pkg/i18n"
	"github.com/jesseduffield/tscat/pkg/log"
	"github.com/jesseduffield/tscat/pkg/lookup"
	"github.com/jesseduffield/tscat/pkg/provider"
	"github.com/jesseduffield/tscat/pkg/report"
	"github.com/jesseduffield/tscat/pkg/utils"
	golookup "github.com/mcuadros/go-lookup"
	"github.com/mgutz/str"
	"github.com/sirupsen/logrus"
)

// App struct
type App struct {
	Config   *config.AppConfig
	Log      *logrus.Entry
	Tr       *i18n.TranslationSet
	Catalogs *provider.Provider
	Resolver lookup.Resolver

	In  io.Reader
	Out io.Writer
}

// NewApp bootstrap a new application
func NewApp(config *config.AppConfig) (*App, error) {
	app := &App{
		Config: config,
		In:     os.Stdin,
		Out:    os.Stdout,
	}
	var err error
	app.Log = log.NewLogger(config)
	app.Tr, err = i18n.NewTranslationSetFromConfig(app.Log, config.UserConfig.UI.Language)
	if err != nil {
		return app, err
	}

	catalogs := config.UserConfig.Catalogs
	app.Catalogs = provider.New(app.Log, provider.Options{
		Directory:      catalogs.Directory,
		SourceLanguage: catalogs.SourceLanguage,
		Lenient:        catalogs.Lenient,
	})
	app.Resolver = lookup.NewService(app.Catalogs)

	if config.UserConfig.UI.Plain {
		color.NoColor = true
	}

	return app, nil
}

// UseLanguage makes lang the active catalog, falling back to the configured
// catalog language when lang is empty.
func (app *App) UseLanguage(lang string) error {
	if lang == "" {
		lang = app.Config.UserConfig.Catalogs.Language
	}
	return app.Catalogs.Load(lang)
}

// ResolveOptions are the arguments of the resolve command. Count is ignored
// when negative.
type ResolveOptions struct {
	Context  string
	Source   string
	Comment  string
	Language string
	Count    int
}

// Resolve prints the display string for one source string.
func (app *App) Resolve(opts ResolveOptions) error {
	if err := app.UseLanguage(opts.Language); err != nil {
		return err
	}

	var text string
	if opts.Count >= 0 {
		text = app.Resolver.ResolvePlural(opts.Context, opts.Source, opts.Comment, opts.Count)
	} else {
		text = app.Resolver.Resolve(opts.Context, opts.Source, opts.Comment)
	}
	_, err := fmt.Fprintln(app.Out, text)
	return err
}

// Batch resolves every line of the input. Lines hold a shell-quoted context,
// source and optional comment; blank lines are echoed as blank.
func (app *App) Batch(lang string) error {
	if err := app.UseLanguage(lang); err != nil {
		return err
	}

	scanner := bufio.NewScanner(app.In)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			fmt.Fprintln(app.Out)
			continue
		}

		args := str.ToArgv(line)
		if len(args) < 2 || len(args) > 3 {
			return knownErrorf(app.Tr.BatchLineError, lineNumber, line)
		}
		comment := ""
		if len(args) == 3 {
			comment = args[2]
		}
		if _, err := fmt.Fprintln(app.Out, app.Resolver.Resolve(args[0], args[1], comment)); err != nil {
			return err
		}
	}
	return scanner.Err()
}

// loadCatalog reads the catalog for lang without making it active. A source
// language without a file of its own is an empty catalog.
func (app *App) loadCatalog(lang string) (*catalog.Catalog, error) {
	path := app.Catalogs.CatalogPath(lang)
	if _, err := os.Stat(path); err != nil {
		if app.Catalogs.IsSourceLanguage(lang) {
			return catalog.Empty(lang), nil
		}
		return nil, fmt.Errorf("%w: %s", provider.ErrLanguageNotFound, lang)
	}
	return catalog.LoadFile(path, catalog.WithLenient(app.Config.UserConfig.Catalogs.Lenient))
}

// Stats prints a completion table for every catalog in the directory, and
// optionally the untranslated strings of each.
func (app *App) Stats(missing bool) error {
	languages, err := app.Catalogs.Languages()
	if err != nil {
		return err
	}
	if len(languages) == 0 {
		_, err := fmt.Fprintf(app.Out, app.Tr.NoCatalogs+"\n", app.Config.UserConfig.Catalogs.Directory)
		return err
	}

	catalogs := make([]*catalog.Catalog, 0, len(languages))
	stats := make([]report.Stats, 0, len(languages))
	for _, lang := range languages {
		c, err := app.loadCatalog(lang)
		if err != nil {
			return err
		}
		catalogs = append(catalogs, c)
		stats = append(stats, report.Collect(c))
	}

	header := []string{
		app.Tr.LanguageColumn,
		app.Tr.TotalColumn,
		app.Tr.FinishedColumn,
		app.Tr.UnfinishedColumn,
		app.Tr.ObsoleteColumn,
		app.Tr.CompleteColumn,
	}
	table, err := report.Table(report.Rows(header, stats, coloredPercent))
	if err != nil {
		return err
	}
	fmt.Fprintln(app.Out, table)

	if !missing {
		return nil
	}
	for _, c := range catalogs {
		keys := report.Missing(c)
		if len(keys) == 0 {
			continue
		}
		fmt.Fprintf(app.Out, "\n"+app.Tr.MissingHeading+"\n", c.Language)
		for _, key := range keys {
			fmt.Fprintln(app.Out, "  "+key.String())
		}
	}
	return nil
}

func coloredPercent(s report.Stats) string {
	text := report.FormatPercent(s)
	switch {
	case s.Percent() >= 90:
		return utils.ColoredString(text, color.FgGreen)
	case s.Percent() >= 50:
		return utils.ColoredString(text, color.FgYellow)
	default:
		return utils.ColoredString(text, color.FgRed)
	}
}

// Diff prints the keys that differ between two catalogs.
func (app *App) Diff(a, b string) error {
	from, err := app.loadCatalog(a)
	if err != nil {
		return err
	}
	to, err := app.loadCatalog(b)
	if err != nil {
		return err
	}

	diff, err := report.Diff(from, to)
	if err != nil {
		return err
	}
	if diff == "" {
		diff = app.Tr.NoDifferences + "\n"
	}
	_, err = io.WriteString(app.Out, diff)
	return err
}

// Export converts the catalog for lang and writes it to output, or to Out when
// output is empty.
func (app *App) Export(lang, format, output string) error {
	c, err := app.loadCatalog(lang)
	if err != nil {
		return err
	}

	data, err := export.Export(c, format)
	if err != nil {
		var unknown *export.UnknownFormatError
		if errors.As(err, &unknown) {
			return knownErrorf(app.Tr.UnknownFormat, unknown.Format)
		}
		return err
	}

	if output == "" {
		_, err = app.Out.Write(data)
		return err
	}
	return os.WriteFile(output, data, 0o644)
}

// Watch loads the catalog for lang and keeps it in sync with its file until
// ctx is done.
func (app *App) Watch(ctx context.Context, lang string) error {
	if err := app.UseLanguage(lang); err != nil {
		return err
	}
	target := app.Catalogs.Path()
	if target == "" {
		target = app.Config.UserConfig.Catalogs.Directory
	}
	fmt.Fprintf(app.Out, app.Tr.Watching+"\n", target)
	return app.Catalogs.Watch(ctx, app.Config.UserConfig.Watch.Throttle)
}

// ConfigValue prints the user config value at a dotted path such as
// "catalogs.directory". Sections are printed one setting per line.
func (app *App) ConfigValue(path string) error {
	value, err := golookup.LookupStringI(*app.Config.UserConfig, path)
	if err != nil {
		return knownErrorf(app.Tr.UnknownConfigKey, path)
	}

	if value.Kind() == reflect.Struct {
		_, err = fmt.Fprint(app.Out, path+":"+utils.FormatMap(2, sectionSettings(value)))
		return err
	}

	_, err = fmt.Fprintln(app.Out, value.Interface())
	return err
}

// sectionSettings maps the yaml names of a config section to their values.
func sectionSettings(section reflect.Value) map[string]string {
	settings := map[string]string{}
	for i := 0; i < section.NumField(); i++ {
		field := section.Type().Field(i)
		name, _, _ := strings.Cut(field.Tag.Get("yaml"), ",")
		if name == "" {
			name = field.Name
		}
		settings[name] = fmt.Sprint(section.Field(i).Interface())
	}
	return settings
}

// SaveLanguage writes the active catalog language to the user config, so that
// later runs use it without --lang.
func (app *App) SaveLanguage() error {
	lang := app.Catalogs.Language()
	if err := app.Config.WriteToUserConfig(func(userConfig *config.UserConfig) error {
		userConfig.Catalogs.Language = lang
		return nil
	}); err != nil {
		return err
	}
	app.Config.UserConfig.Catalogs.Language = lang
	app.Log.WithField("language", lang).Info("saved catalog language")
	return nil
}

// knownError is an error caused by user input. Its message is all the user
// needs to see.
type knownError struct {
	message string
}

func knownErrorf(format string, args ...interface{}) error {
	return &knownError{message: fmt.Sprintf(format, args...)}
}

func (e *knownError) Error() string {
	return e.message
}

type errorMapping struct {
	originalError string
	newError      string
}

// KnownError takes an error and tells us whether it's an error that we know about where we can print a nicely formatted version of it rather than panicking with a stack trace
func (app *App) KnownError(err error) (string, bool) {
	var known *knownError
	var parseErr *catalog.ParseError
	var encodingErr *catalog.EncodingError
	var pathErr *fs.PathError
	switch {
	case errors.As(err, &known),
		errors.As(err, &parseErr),
		errors.As(err, &encodingErr),
		errors.Is(err, provider.ErrLanguageNotFound):
		return err.Error(), true
	case errors.As(err, &pathErr) && errors.Is(err, fs.ErrNotExist):
		return pathErr.Error(), true
	}

	errorMessage := err.Error()

	mappings := []errorMapping{
		{
			originalError: "Language not found",
			newError:      errorMessage,
		},
	}

	for _, mapping := range mappings {
		if strings.Contains(errorMessage, mapping.originalError) {
			return mapping.newError, true
		}
	}

	return "", false
}
