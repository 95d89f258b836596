package main

import (
	"os"
	"strings"

	"github.com/rs/zerolog"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	kingpin "gopkg.in/alecthomas/kingpin.v2"

	"github.com/9seconds/ipdossier/dossier"
	"github.com/9seconds/ipdossier/providers"
)

const version = "1.0.0"

var (
	app = kingpin.New(
		"ipdossier",
		"Collect everything public geolocation services know about an IP address")

	debug = app.Flag("debug", "Run in debug mode.").
		Short('d').
		Envar("IPDOSSIER_DEBUG").
		Bool()
	configPath = app.Flag("config", "Path to the config.").
			Short('c').
			Envar("IPDOSSIER_CONFIG").
			String()
	delay = app.Flag("delay", "Typewriter delay per character, 0 disables it.").
		Default(DefaultTypewriterDelay.String()).
		Duration()
	noWikidata = app.Flag("no-wikidata", "Do not enrich a report with Wikidata.").
			Bool()
	target = app.Arg("target", "IP address to check. Own address is used if omitted.").
		String()
)

func init() {
	app.Version(version)
	log.SetFormatter(&log.TextFormatter{})
	log.SetLevel(log.WarnLevel)
	zerolog.SetGlobalLevel(zerolog.ErrorLevel)
}

func main() {
	kingpin.MustParse(app.Parse(os.Args[1:]))

	if *debug {
		log.SetLevel(log.DebugLevel)
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	conf, err := parseConfig(afero.NewOsFs(), *configPath)
	if err != nil {
		log.Fatal(err.Error())
	}

	ctx, cancel := makeRootContext()
	defer cancel()

	provs, err := makeProviders(conf)
	if err != nil {
		log.Fatal(err.Error())
	}

	logger := newLogger(os.Stderr)

	dos, err := dossier.NewDossier(provs,
		makeKnowledgeGraph(conf, *noWikidata),
		logger,
		conf.GetWorkerPoolSize())
	if err != nil {
		log.Fatal(err.Error())
	}

	defer dos.Shutdown()

	addr := strings.TrimSpace(*target)
	if addr == "" {
		client := makeNewHTTPClient(conf.GetUserAgent(), DefaultHTTPTimeout)

		addr, err = providers.LookupSelf(ctx, client, providers.DefaultSelfURL)
		if err != nil {
			log.Fatalf("cannot detect own ip address: %v", err)
		}

		log.WithField("target", addr).Debug("Detected own ip address")
	}

	out := newPrinter(os.Stdout, *delay, isTerminal(os.Stdout))

	out.Banner("Scanning target...")

	record, err := dos.Report(ctx, addr)
	if err != nil {
		log.Fatal(err.Error())
	}

	out.Newline()
	out.Banner("TARGET INFORMATION REPORT")
	out.Record(record)

	logger.UsageStats(dos.UsageStats())
}
