package dossier

import (
	"strings"

	"github.com/pariz/gountries"
)

var countryCodeQuery = gountries.New()

// user-assigned codes which are used by geolocation services and
// Wikidata but absent in ISO3166 tables.
var userAssignedCountryCodes = map[string]struct{}{
	"XK": {},
}

// NormalizeAlpha2Code returns a normalized 2-letter ISO3166 code.
// Normalized code is uppercased with some additional mapping. Some
// providers return ZZ or EU as 'unknown' country, this function returns
// "" instead. Obsolete codes like UK or YU are mapped to actual ones.
// Anything which is not exactly 2 latin letters is also "".
func NormalizeAlpha2Code(alpha2 string) string {
	alpha2 = strings.ToUpper(strings.TrimSpace(alpha2))

	if len(alpha2) != 2 || !isUpperLetter(alpha2[0]) || !isUpperLetter(alpha2[1]) {
		return ""
	}

	switch alpha2 {
	case "ZZ", "AP", "EU":
		return ""
	case "YU":
		return "CS"
	case "FX":
		return "FR"
	case "UK":
		return "GB"
	}

	return alpha2
}

// KnownCountry checks if given code is a 2-letter ISO3166 code of the
// existing country or a user-assigned code like XK (Kosovo).
func KnownCountry(alpha2 string) bool {
	alpha2 = NormalizeAlpha2Code(alpha2)
	if alpha2 == "" {
		return false
	}

	if _, ok := userAssignedCountryCodes[alpha2]; ok {
		return true
	}

	_, err := countryCodeQuery.FindCountryByAlpha(alpha2)

	return err == nil
}

func isUpperLetter(c byte) bool {
	return c >= 'A' && c <= 'Z'
}
