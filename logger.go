package main

import (
	"io"

	jsoniter "github.com/json-iterator/go"
	"github.com/rs/zerolog"

	"github.com/9seconds/ipdossier/dossier"
)

type logger struct {
	lookupLog zerolog.Logger
	enrichLog zerolog.Logger
	statsLog  zerolog.Logger
}

func (l *logger) LookupError(target, name string, err error) {
	l.lookupLog.Error().
		Str("provider", name).
		Str("target", target).
		Stringer("kind", dossier.FailureKindOf(err)).
		Err(err).
		Msg("")
}

func (l *logger) EnrichError(countryCode, name string, err error) {
	l.enrichLog.Error().
		Str("provider", name).
		Str("country_code", countryCode).
		Stringer("kind", dossier.FailureKindOf(err)).
		Err(err).
		Msg("")
}

func (l *logger) UsageStats(stats []*dossier.UsageStats) {
	for _, v := range stats {
		encoded, err := jsoniter.Marshal(v)
		if err != nil {
			continue
		}

		l.statsLog.Debug().RawJSON("stats", encoded).Msg("")
	}
}

func newLogger(w io.Writer) *logger {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	return &logger{
		lookupLog: zerolog.New(w).With().Timestamp().Str("event_name", "lookup").Logger(),
		enrichLog: zerolog.New(w).With().Timestamp().Str("event_name", "enrich").Logger(),
		statsLog:  zerolog.New(w).With().Timestamp().Str("event_name", "stats").Logger(),
	}
}
