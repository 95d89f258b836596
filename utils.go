package main

import (
	"context"
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/9seconds/ipdossier/dossier"
	"github.com/9seconds/ipdossier/providers"
)

func makeRootContext() (context.Context, context.CancelFunc) {
	rootCtx, cancel := context.WithCancel(context.Background())

	sigChan := make(chan os.Signal, 1)

	go func() {
		for range sigChan {
			cancel()
		}
	}()

	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	return rootCtx, cancel
}

func makeProviders(conf *config) ([]dossier.Provider, error) {
	rv := make([]dossier.Provider, 0, len(conf.GetProviders()))

	for _, v := range conf.GetProviders() {
		httpClient := makeNewHTTPClient(conf.GetUserAgent(), v.GetHTTPTimeout())
		params := v.GetSpecificParameters()

		switch v.GetName() {
		case providers.NameIPAPI:
			rv = append(rv, providers.NewIPAPI(httpClient, params))
		case providers.NameIPInfo:
			rv = append(rv, providers.NewIPInfo(httpClient, params))
		case providers.NameIPAPICom:
			rv = append(rv, providers.NewIPAPICom(httpClient, params))
		case providers.NameIPWhois:
			rv = append(rv, providers.NewIPWhois(httpClient, params))
		default:
			return nil, fmt.Errorf("unsupported provider name: %s", v.GetName())
		}
	}

	return rv, nil
}

func makeKnowledgeGraph(conf *config, disabled bool) dossier.KnowledgeGraph {
	if disabled || !conf.KnowledgeGraph.GetEnabled() {
		return nil
	}

	httpClient := makeNewHTTPClient(conf.GetUserAgent(), conf.KnowledgeGraph.GetHTTPTimeout())

	return providers.NewWikidata(httpClient, conf.KnowledgeGraph.GetSpecificParameters())
}

func makeNewHTTPClient(userAgent string, timeout time.Duration) dossier.HTTPClient {
	jar, err := cookiejar.New(nil)
	if err != nil {
		panic(err)
	}

	httpClient := &http.Client{
		Timeout: timeout,
		Jar:     jar,
	}

	return dossier.NewHTTPClient(httpClient, userAgent)
}
