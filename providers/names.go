package providers

const (
	// Identifier for ipapi.co.
	NameIPAPI = "ipapi"

	// Identifier for ipinfo.io.
	NameIPInfo = "ipinfo"

	// Identifier for ip-api.com.
	NameIPAPICom = "ipapicom"

	// Identifier for ipwho.is.
	NameIPWhois = "ipwhois"

	// Identifier for query.wikidata.org.
	NameWikidata = "wikidata"
)

// DefaultOrder is an order of providers which defines a precedence of
// their observations.
var DefaultOrder = []string{NameIPAPI, NameIPInfo, NameIPAPICom, NameIPWhois}
