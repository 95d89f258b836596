package dossier

import (
	"context"
	"net/http"
)

// Provider is a source of geolocation data. Lookup has to return
// an error if it cannot reach a source or make any sense of its
// response. Dossier treats every failure as an empty Observation.
type Provider interface {
	Name() string
	Lookup(ctx context.Context, target string) (Observation, error)
}

// KnowledgeGraph is a source of data about a country. Lookup accepts
// 2-letter ISO3166 country code and returns fields for all Labels in
// the same order.
type KnowledgeGraph interface {
	Name() string
	Labels() []string
	Lookup(ctx context.Context, countryCode string) ([]Field, error)
}

type Logger interface {
	LookupError(target string, name string, err error)
	EnrichError(countryCode string, name string, err error)
}

// HTTPClient is an interface for http.Client which is used by
// providers. Implementations have to reject responses with non-2xx
// status, providers do not check it.
type HTTPClient interface {
	Do(*http.Request) (*http.Response, error)
}
