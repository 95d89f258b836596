package main

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/hashicorp/go-multierror"
	"github.com/hjson/hjson-go/v4"
	jsoniter "github.com/json-iterator/go"
	"github.com/juju/errors"
	"github.com/spf13/afero"

	"github.com/9seconds/ipdossier/providers"
)

const (
	DefaultHTTPTimeout               = 10 * time.Second
	DefaultKnowledgeGraphHTTPTimeout = 30 * time.Second
	DefaultKnowledgeGraphLanguage    = "en"
)

type duration struct {
	time.Duration
}

func (d *duration) UnmarshalJSON(b []byte) error {
	var v interface{}

	if err := jsoniter.Unmarshal(b, &v); err != nil {
		return fmt.Errorf("cannot unmarshal duration: %w", err)
	}

	vv, ok := v.(string)
	if !ok {
		return fmt.Errorf("incorrect duration: %v", v)
	}

	return d.UnmarshalText([]byte(vv))
}

func (d *duration) UnmarshalText(text []byte) error {
	dur, err := time.ParseDuration(string(text))
	if err != nil {
		return fmt.Errorf("cannot parse duration: %w", err)
	}

	d.Duration = dur

	return nil
}

type config struct {
	UserAgent      string               `json:"user_agent" toml:"user_agent"`
	WorkerPoolSize uint                 `json:"worker_pool_size" toml:"worker_pool_size"`
	Providers      []configProvider     `json:"providers" toml:"providers"`
	KnowledgeGraph configKnowledgeGraph `json:"knowledge_graph" toml:"knowledge_graph"`
}

func (c config) GetUserAgent() string {
	if c.UserAgent != "" {
		return c.UserAgent
	}

	return "ipdossier/" + version
}

func (c config) GetWorkerPoolSize() int {
	return int(c.WorkerPoolSize)
}

func (c config) GetProviders() []configProvider {
	if len(c.Providers) > 0 {
		return c.Providers
	}

	rv := make([]configProvider, len(providers.DefaultOrder))

	for i, v := range providers.DefaultOrder {
		rv[i] = configProvider{Name: v}
	}

	return rv
}

type configProvider struct {
	Name               string            `json:"name" toml:"name"`
	HTTPTimeout        duration          `json:"http_timeout" toml:"http_timeout"`
	SpecificParameters map[string]string `json:"specific_parameters" toml:"specific_parameters"`
}

func (c configProvider) GetName() string {
	return c.Name
}

func (c configProvider) GetHTTPTimeout() time.Duration {
	if c.HTTPTimeout.Duration == 0 {
		return DefaultHTTPTimeout
	}

	return c.HTTPTimeout.Duration
}

func (c configProvider) GetSpecificParameters() map[string]string {
	if c.SpecificParameters == nil {
		return map[string]string{}
	}

	return c.SpecificParameters
}

type configKnowledgeGraph struct {
	Enabled     *bool    `json:"enabled" toml:"enabled"`
	Endpoint    string   `json:"endpoint" toml:"endpoint"`
	HTTPTimeout duration `json:"http_timeout" toml:"http_timeout"`
	Language    string   `json:"language" toml:"language"`
}

func (c configKnowledgeGraph) GetEnabled() bool {
	return c.Enabled == nil || *c.Enabled
}

func (c configKnowledgeGraph) GetHTTPTimeout() time.Duration {
	if c.HTTPTimeout.Duration == 0 {
		return DefaultKnowledgeGraphHTTPTimeout
	}

	return c.HTTPTimeout.Duration
}

func (c configKnowledgeGraph) GetSpecificParameters() map[string]string {
	language := strings.TrimSpace(c.Language)
	if language == "" {
		language = DefaultKnowledgeGraphLanguage
	}

	return map[string]string{
		"endpoint": c.Endpoint,
		"language": language,
	}
}

func (c *config) validate() error {
	var errs *multierror.Error

	knownNames := map[string]struct{}{}
	for _, v := range providers.DefaultOrder {
		knownNames[v] = struct{}{}
	}

	seenNames := map[string]struct{}{}

	for _, v := range c.Providers {
		if _, ok := knownNames[v.GetName()]; !ok {
			errs = multierror.Append(errs, errors.Errorf("unknown provider %q", v.GetName()))
		}

		if _, ok := seenNames[v.GetName()]; ok {
			errs = multierror.Append(errs, errors.Errorf("provider %q is duplicated", v.GetName()))
		}

		seenNames[v.GetName()] = struct{}{}

		if v.HTTPTimeout.Duration < 0 {
			errs = multierror.Append(errs,
				errors.Errorf("negative http timeout %v for provider %q", v.HTTPTimeout.Duration, v.GetName()))
		}
	}

	if c.KnowledgeGraph.HTTPTimeout.Duration < 0 {
		errs = multierror.Append(errs,
			errors.Errorf("negative http timeout %v for knowledge graph", c.KnowledgeGraph.HTTPTimeout.Duration))
	}

	if c.KnowledgeGraph.Language != "" && strings.TrimSpace(c.KnowledgeGraph.Language) == "" {
		errs = multierror.Append(errs, errors.New("knowledge graph language is empty"))
	}

	return errs.ErrorOrNil()
}

func parseConfig(fs afero.Fs, path string) (*config, error) {
	conf := config{}

	if path == "" {
		return &conf, nil
	}

	content, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, errors.Annotate(err, "cannot read config file")
	}

	if strings.EqualFold(filepath.Ext(path), ".toml") {
		if _, err := toml.Decode(string(content), &conf); err != nil {
			return nil, errors.Annotate(err, "cannot parse toml")
		}
	} else {
		rawMap := map[string]interface{}{}

		if err := hjson.Unmarshal(content, &rawMap); err != nil {
			return nil, errors.Annotate(err, "cannot parse hjson")
		}

		rawBytes, _ := jsoniter.Marshal(rawMap)

		if err := jsoniter.Unmarshal(rawBytes, &conf); err != nil {
			return nil, errors.Annotate(err, "incorrect config structure")
		}
	}

	if err := conf.validate(); err != nil {
		return nil, errors.Annotate(err, "invalid config")
	}

	return &conf, nil
}
