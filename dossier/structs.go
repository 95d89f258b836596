package dossier

// AbsentMarker is a value of the field nobody knows anything about.
const AbsentMarker = "null"

const (
	LabelIPAddress      = "IP Address"
	LabelNetwork        = "Network"
	LabelVersion        = "Version"
	LabelCity           = "City"
	LabelRegion         = "Region"
	LabelRegionCode     = "Region Code"
	LabelCountry        = "Country"
	LabelCountryCode    = "Country Code"
	LabelContinent      = "Continent"
	LabelContinentCode  = "Continent Code"
	LabelCapital        = "Capital"
	LabelPopulation     = "Population"
	LabelArea           = "Area (km²)"
	LabelCallingCode    = "Calling Code"
	LabelPostalCode     = "Postal Code"
	LabelLatitude       = "Latitude"
	LabelLongitude      = "Longitude"
	LabelTimezone       = "Timezone"
	LabelUTCOffset      = "UTC Offset"
	LabelLanguages      = "Languages"
	LabelCurrency       = "Currency"
	LabelCurrencyName   = "Currency Name"
	LabelCurrencySymbol = "Currency Symbol"
	LabelASN            = "ASN"
	LabelASNName        = "ASN Name"
	LabelOrgISP         = "Org / ISP"
	LabelReverseDNS     = "Reverse DNS"
	LabelHostingVPN     = "Hosting/VPN"
	LabelEUMember       = "EU Member"
	LabelThreatLevel    = "Threat Level"
	LabelMobile         = "Mobile"
	LabelProxy          = "Proxy"
	LabelTor            = "Tor"
)

// Observation is a normalized partial record reported by a single
// provider. Provider fills only those fields it knows about, the rest
// stay absent.
type Observation struct {
	Source string

	IP             Value
	Network        Value
	Version        Value
	City           Value
	Region         Value
	RegionCode     Value
	Country        Value
	CountryCode    Value
	Continent      Value
	ContinentCode  Value
	Capital        Value
	Population     Value
	Area           Value
	CallingCode    Value
	PostalCode     Value
	Latitude       Value
	Longitude      Value
	Timezone       Value
	UTCOffset      Value
	Languages      Value
	Currency       Value
	CurrencyName   Value
	CurrencySymbol Value
	ASN            Value
	ASNName        Value
	OrgISP         Value
	ReverseDNS     Value
	EUMember       Value
	ThreatLevel    Value

	Hosting Value
	Proxy   Value
	Mobile  Value
	Tor     Value
}

type Field struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// Record is an ordered set of report fields. Order is defined by
// Merge and Enrich and never changes afterwards.
type Record struct {
	fields []Field
}

// Get returns a value of the field with given label.
func (r Record) Get(label string) (string, bool) {
	for _, v := range r.fields {
		if v.Label == label {
			return v.Value, true
		}
	}

	return "", false
}

// Known tells if field is present and has a meaningful value.
func (r Record) Known(label string) bool {
	value, ok := r.Get(label)

	return ok && value != AbsentMarker
}

// Fields returns a copy of the record fields in their order.
func (r Record) Fields() []Field {
	rv := make([]Field, len(r.fields))
	copy(rv, r.fields)

	return rv
}

func (r Record) Len() int {
	return len(r.fields)
}
