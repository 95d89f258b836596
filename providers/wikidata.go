package providers

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/9seconds/ipdossier/dossier"
	"github.com/tidwall/gjson"
)

const (
	wikidataDefaultEndpoint = "https://query.wikidata.org/sparql"
	wikidataDefaultLanguage = "en"

	// SPARQL responses for a single row are tiny, anything larger is
	// garbage.
	wikidataMaxResponseSize = 1 << 20
)

type wikidataBinding struct {
	label    string
	variable string
}

var wikidataBindings = []wikidataBinding{
	{"Country (Wikidata)", "countryLabel"},
	{"Official Name", "officialName"},
	{"Capital (Wikidata)", "capitalLabel"},
	{"Currency (Wikidata)", "currencyLabel"},
	{"Language", "languageLabel"},
	{"Population (Wikidata)", "population"},
	{"Area (Wikidata)", "area"},
	{"Calling Code (Wikidata)", "callingCode"},
	{"Flag", "flag"},
	{"Coat of Arms", "coat"},
	{"Anthem", "anthemLabel"},
	{"Parliament", "parliamentLabel"},
	{"Internet Domain", "internetDomain"},
	{"Government Form", "govFormLabel"},
	{"President", "headLabel"},
	{"Date of Birth", "dob"},
	{"Date of Death", "dod"},
	{"Place of Birth", "pobLabel"},
	{"Place of Death", "podLabel"},
	{"Affiliated Parties", "partyLabel"},
	{"Citizenship", "citizenshipLabel"},
	{"Alma Mater", "almaMaterLabel"},
	{"Occupation", "occupationLabel"},
	{"Signature", "signature"},
	{"Website", "website"},
	{"Photo", "photo"},
	{"Term Start", "termStart"},
	{"Term End", "termEnd"},
}

// country is matched by ISO 3166-1 alpha-2 (P297), head of state is
// P35. Everything else is optional.
const wikidataQueryTemplate = `SELECT ?countryLabel ?officialName ?capitalLabel ?currencyLabel ?languageLabel
       ?population ?area ?callingCode ?flag ?coat ?anthemLabel ?parliamentLabel
       ?internetDomain ?govFormLabel
       ?headLabel ?dob ?dod ?pobLabel ?podLabel ?partyLabel ?citizenshipLabel
       ?almaMaterLabel ?occupationLabel ?signature ?website ?photo
       ?termStart ?termEnd
WHERE {
  ?country wdt:P297 "%[1]s".
  OPTIONAL { ?country wdt:P1448 ?officialName. }
  OPTIONAL { ?country wdt:P36 ?capital. }
  OPTIONAL { ?country wdt:P38 ?currency. }
  OPTIONAL { ?country wdt:P37 ?language. }
  OPTIONAL { ?country wdt:P1082 ?population. }
  OPTIONAL { ?country wdt:P2046 ?area. }
  OPTIONAL { ?country wdt:P474 ?callingCode. }
  OPTIONAL { ?country wdt:P41 ?flag. }
  OPTIONAL { ?country wdt:P94 ?coat. }
  OPTIONAL { ?country wdt:P85 ?anthem. }
  OPTIONAL { ?country wdt:P194 ?parliament. }
  OPTIONAL { ?country wdt:P78 ?internetDomain. }
  OPTIONAL { ?country wdt:P122 ?govForm. }

  ?country wdt:P35 ?head.
  OPTIONAL { ?head wdt:P569 ?dob. }
  OPTIONAL { ?head wdt:P570 ?dod. }
  OPTIONAL { ?head wdt:P19 ?pob. }
  OPTIONAL { ?head wdt:P20 ?pod. }
  OPTIONAL { ?head wdt:P102 ?party. }
  OPTIONAL { ?head wdt:P27 ?citizenship. }
  OPTIONAL { ?head wdt:P69 ?almaMater. }
  OPTIONAL { ?head wdt:P106 ?occupation. }
  OPTIONAL { ?head wdt:P109 ?signature. }
  OPTIONAL { ?head wdt:P856 ?website. }
  OPTIONAL { ?head wdt:P18 ?photo. }
  OPTIONAL { ?head p:P39 ?pos. ?pos ps:P39 ?office.
             OPTIONAL { ?pos pq:P580 ?termStart. }
             OPTIONAL { ?pos pq:P582 ?termEnd. } }

  SERVICE wikibase:label { bd:serviceParam wikibase:language "%[2]s". }
}
LIMIT 1`

type wikidataKnowledgeGraph struct {
	client   dossier.HTTPClient
	endpoint string
	language string
}

func (w wikidataKnowledgeGraph) Name() string {
	return NameWikidata
}

func (w wikidataKnowledgeGraph) Labels() []string {
	rv := make([]string, len(wikidataBindings))

	for i, v := range wikidataBindings {
		rv[i] = v.label
	}

	return rv
}

func (w wikidataKnowledgeGraph) Lookup(ctx context.Context, countryCode string) ([]dossier.Field, error) {
	countryCode = dossier.NormalizeAlpha2Code(countryCode)
	if countryCode == "" {
		return nil, rejected("incorrect country code")
	}

	req, err := newRequest(ctx, w.buildURL(countryCode), "application/sparql-results+json")
	if err != nil {
		return nil, err
	}

	resp, err := sendRequest(w.client, req)
	if err != nil {
		return nil, err
	}

	defer flushResponse(resp.Body)

	body, err := io.ReadAll(io.LimitReader(bufio.NewReader(resp.Body), wikidataMaxResponseSize))
	if err != nil {
		return nil, dossier.NewLookupError(dossier.FailureTransport,
			fmt.Errorf("cannot read response body: %w", err))
	}

	if !gjson.ValidBytes(body) {
		return nil, dossier.NewLookupError(dossier.FailureParse,
			fmt.Errorf("cannot parse a response: %s", truncate(body)))
	}

	row := gjson.GetBytes(body, "results.bindings.0")
	if !row.Exists() {
		return nil, dossier.NewLookupError(dossier.FailureRejected, dossier.ErrNoCountryData)
	}

	rv := make([]dossier.Field, len(wikidataBindings))

	for i, v := range wikidataBindings {
		rv[i] = dossier.Field{
			Label: v.label,
			Value: dossier.AbsentMarker,
		}

		if value := row.Get(v.variable + ".value"); value.Exists() && value.String() != "" {
			rv[i].Value = value.String()
		}
	}

	return rv, nil
}

func (w wikidataKnowledgeGraph) buildURL(countryCode string) string {
	getQuery := url.Values{}

	getQuery.Set("query", fmt.Sprintf(wikidataQueryTemplate, countryCode, w.language))
	getQuery.Set("format", "json")

	return w.endpoint + "?" + getQuery.Encode()
}

func truncate(body []byte) string {
	const maxLength = 64

	text := strings.TrimSpace(string(body))
	if len(text) > maxLength {
		return text[:maxLength] + "..."
	}

	return text
}

// NewWikidata returns a knowledge graph backed by Wikidata SPARQL
// endpoint. It supports endpoint and language parameters.
func NewWikidata(client dossier.HTTPClient, parameters map[string]string) dossier.KnowledgeGraph {
	endpoint := parameters["endpoint"]
	if endpoint == "" {
		endpoint = wikidataDefaultEndpoint
	}

	language := parameters["language"]
	if language == "" {
		language = wikidataDefaultLanguage
	}

	return wikidataKnowledgeGraph{
		client:   client,
		endpoint: endpoint,
		language: language,
	}
}
