package main

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime"

	"github.com/integrii/flaggy"
	"github.com/jesseduffield/tscat/pkg/app"
	"github.com/jesseduffield/tscat/pkg/config"
	"github.com/jesseduffield/tscat/pkg/i18n"
	tslog "github.com/jesseduffield/tscat/pkg/log"
	"github.com/jesseduffield/tscat/pkg/utils"
	"github.com/jesseduffield/yaml"
	"github.com/joho/godotenv"
)

var (
	commit      string
	version     = "unversioned"
	date        string
	buildSource = "unknown"

	configFlag    = false
	debuggingFlag = false
	dirFlag       = ""

	language = ""
	comment  = ""
	count    = -1
	missing  = false
	save     = false
	format   = "toml"
	output   = ""

	contextArg    = ""
	sourceArg     = ""
	languageArg   = ""
	otherArg      = ""
	configPathArg = ""
)

func main() {
	// a .env in the working directory may set CONFIG_DIR or DEBUG
	_ = godotenv.Load()

	info := fmt.Sprintf(
		"%s\nDate: %s\nBuildSource: %s\nCommit: %s\nOS: %s\nArch: %s",
		version,
		date,
		buildSource,
		commit,
		runtime.GOOS,
		runtime.GOARCH,
	)

	tr, _ := i18n.NewTranslationSetFromConfig(tslog.NewDummyLog(), "auto")

	flaggy.SetName("tscat")
	flaggy.SetDescription(tr.AppDescription)
	flaggy.DefaultParser.AdditionalHelpPrepend = "https://github.com/jesseduffield/tscat"

	flaggy.Bool(&configFlag, "c", "config", tr.ConfigFlag)
	flaggy.Bool(&debuggingFlag, "d", "debug", tr.DebugFlag)
	flaggy.String(&dirFlag, "", "dir", tr.DirFlag)
	flaggy.SetVersion(info)

	resolveCmd := flaggy.NewSubcommand("resolve")
	resolveCmd.Description = tr.ResolveCommand
	resolveCmd.AddPositionalValue(&contextArg, "context", 1, true, tr.ContextArg)
	resolveCmd.AddPositionalValue(&sourceArg, "source", 2, true, tr.SourceArg)
	resolveCmd.String(&comment, "m", "comment", tr.CommentFlag)
	resolveCmd.String(&language, "l", "lang", tr.LangFlag)
	resolveCmd.Int(&count, "n", "count", tr.CountFlag)
	resolveCmd.Bool(&save, "s", "save", tr.SaveFlag)
	flaggy.AttachSubcommand(resolveCmd, 1)

	batchCmd := flaggy.NewSubcommand("batch")
	batchCmd.Description = tr.BatchCommand
	batchCmd.String(&language, "l", "lang", tr.LangFlag)
	batchCmd.Bool(&save, "s", "save", tr.SaveFlag)
	flaggy.AttachSubcommand(batchCmd, 1)

	statsCmd := flaggy.NewSubcommand("stats")
	statsCmd.Description = tr.StatsCommand
	statsCmd.Bool(&missing, "m", "missing", tr.MissingFlag)
	flaggy.AttachSubcommand(statsCmd, 1)

	diffCmd := flaggy.NewSubcommand("diff")
	diffCmd.Description = tr.DiffCommand
	diffCmd.AddPositionalValue(&languageArg, "language", 1, true, tr.LanguageArg)
	diffCmd.AddPositionalValue(&otherArg, "other", 2, true, tr.OtherArg)
	flaggy.AttachSubcommand(diffCmd, 1)

	exportCmd := flaggy.NewSubcommand("export")
	exportCmd.Description = tr.ExportCommand
	exportCmd.AddPositionalValue(&languageArg, "language", 1, true, tr.LanguageArg)
	exportCmd.String(&format, "f", "format", tr.FormatFlag)
	exportCmd.String(&output, "o", "output", tr.OutputFlag)
	flaggy.AttachSubcommand(exportCmd, 1)

	watchCmd := flaggy.NewSubcommand("watch")
	watchCmd.Description = tr.WatchCommand
	watchCmd.String(&language, "l", "lang", tr.LangFlag)
	flaggy.AttachSubcommand(watchCmd, 1)

	configCmd := flaggy.NewSubcommand("config")
	configCmd.Description = tr.ConfigCommand
	configCmd.AddPositionalValue(&configPathArg, "path", 1, true, tr.ConfigPathArg)
	flaggy.AttachSubcommand(configCmd, 1)

	flaggy.Parse()

	if configFlag {
		var buf bytes.Buffer
		encoder := yaml.NewEncoder(&buf)
		err := encoder.Encode(config.GetDefaultConfig())
		if err != nil {
			log.Fatal(err.Error())
		}
		fmt.Printf("%v\n", buf.String())
		os.Exit(0)
	}

	appConfig, err := config.NewAppConfig("tscat", version, commit, date, buildSource, debuggingFlag)
	if err != nil {
		log.Fatal(err.Error())
	}
	if dirFlag != "" {
		appConfig.UserConfig.Catalogs.Directory = dirFlag
	}

	resolveOptions := app.ResolveOptions{
		Context:  contextArg,
		Source:   sourceArg,
		Comment:  comment,
		Language: language,
		Count:    count,
	}

	app, err := app.NewApp(appConfig)
	if err == nil {
		switch {
		case resolveCmd.Used:
			err = app.Resolve(resolveOptions)
		case batchCmd.Used:
			err = app.Batch(language)
		case statsCmd.Used:
			err = app.Stats(missing)
		case diffCmd.Used:
			err = app.Diff(languageArg, otherArg)
		case exportCmd.Used:
			err = app.Export(languageArg, format, output)
		case watchCmd.Used:
			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
			err = app.Watch(ctx, language)
			stop()
		case configCmd.Used:
			err = app.ConfigValue(configPathArg)
		default:
			flaggy.ShowHelpAndExit("")
		}
		if err == nil && save {
			err = app.SaveLanguage()
		}
	}

	if err != nil {
		if errMessage, known := app.KnownError(err); known {
			log.Println(errMessage)
			os.Exit(1)
		}

		stackTrace := utils.WrapError(err).ErrorStack()
		app.Log.Error(stackTrace)

		log.Fatal(fmt.Sprintf("%s\n\n%s", app.Tr.ErrorOccurred, stackTrace))
	}
}
