package dossier

import "strings"

type mergeRule struct {
	label string
	// pick returns a candidate value of a chain. Chain order is an
	// order of observations.
	pick func(*Observation) Value
	// flags returns values which are ORed together. Result is Yes/No.
	flags func(*Observation) []Value
}

var mergeRules = []mergeRule{
	{label: LabelIPAddress, pick: func(o *Observation) Value { return o.IP }},
	{label: LabelNetwork, pick: func(o *Observation) Value { return o.Network }},
	{label: LabelVersion, pick: func(o *Observation) Value { return o.Version }},
	{label: LabelCity, pick: func(o *Observation) Value { return o.City }},
	{label: LabelRegion, pick: func(o *Observation) Value { return o.Region }},
	{label: LabelRegionCode, pick: func(o *Observation) Value { return o.RegionCode }},
	{label: LabelCountry, pick: func(o *Observation) Value { return o.Country }},
	{label: LabelCountryCode, pick: func(o *Observation) Value { return o.CountryCode }},
	{label: LabelContinent, pick: func(o *Observation) Value { return o.Continent }},
	{label: LabelContinentCode, pick: func(o *Observation) Value { return o.ContinentCode }},
	{label: LabelCapital, pick: func(o *Observation) Value { return o.Capital }},
	{label: LabelPopulation, pick: func(o *Observation) Value { return o.Population }},
	{label: LabelArea, pick: func(o *Observation) Value { return o.Area }},
	{label: LabelCallingCode, pick: func(o *Observation) Value { return o.CallingCode }},
	{label: LabelPostalCode, pick: func(o *Observation) Value { return o.PostalCode }},
	{label: LabelLatitude, pick: func(o *Observation) Value { return o.Latitude }},
	{label: LabelLongitude, pick: func(o *Observation) Value { return o.Longitude }},
	{label: LabelTimezone, pick: func(o *Observation) Value { return o.Timezone }},
	{label: LabelUTCOffset, pick: func(o *Observation) Value { return o.UTCOffset }},
	{label: LabelLanguages, pick: func(o *Observation) Value { return o.Languages }},
	{label: LabelCurrency, pick: func(o *Observation) Value { return o.Currency }},
	{label: LabelCurrencyName, pick: func(o *Observation) Value { return o.CurrencyName }},
	{label: LabelCurrencySymbol, pick: func(o *Observation) Value { return o.CurrencySymbol }},
	{label: LabelASN, pick: func(o *Observation) Value { return o.ASN }},
	{label: LabelASNName, pick: func(o *Observation) Value { return o.ASNName }},
	{label: LabelOrgISP, pick: func(o *Observation) Value { return o.OrgISP }},
	{label: LabelReverseDNS, pick: func(o *Observation) Value { return o.ReverseDNS }},
	{label: LabelHostingVPN, flags: func(o *Observation) []Value {
		return []Value{o.Hosting, o.Proxy, o.Mobile}
	}},
	{label: LabelEUMember, pick: func(o *Observation) Value { return o.EUMember }},
	{label: LabelThreatLevel, pick: func(o *Observation) Value { return o.ThreatLevel }},
	{label: LabelMobile, flags: func(o *Observation) []Value { return []Value{o.Mobile} }},
	{label: LabelProxy, flags: func(o *Observation) []Value { return []Value{o.Proxy} }},
	{label: LabelTor, flags: func(o *Observation) []Value { return []Value{o.Tor} }},
}

// BaseLabels returns labels of the fields Merge produces, in their
// order.
func BaseLabels() []string {
	rv := make([]string, len(mergeRules))

	for i, v := range mergeRules {
		rv[i] = v.label
	}

	return rv
}

// Merge combines observations into a record with all BaseLabels.
// Observations are ordered by precedence: for each field the first
// observation with a present value wins. If nobody has a value, field
// is set to AbsentMarker.
//
// Target is a string which was used to query providers. If nobody
// reports IP version, it is derived from the target: IPv6 addresses
// always have a colon.
func Merge(target string, observations []Observation) Record {
	rv := Record{
		fields: make([]Field, 0, len(mergeRules)),
	}

	for _, rule := range mergeRules {
		rv.fields = append(rv.fields, Field{
			Label: rule.label,
			Value: rule.apply(target, observations),
		})
	}

	return rv
}

func (m mergeRule) apply(target string, observations []Observation) string {
	if m.flags != nil {
		for i := range observations {
			for _, v := range m.flags(&observations[i]) {
				if v.Bool() {
					return yesNo(true)
				}
			}
		}

		return yesNo(false)
	}

	for i := range observations {
		if value := m.pick(&observations[i]); value.Present() {
			return value.String()
		}
	}

	if m.label == LabelVersion {
		return deriveVersion(target)
	}

	return AbsentMarker
}

func deriveVersion(target string) string {
	if strings.Contains(target, ":") {
		return "IPv6"
	}

	return "IPv4"
}

// Enrich returns a copy of the record with given fields appended to
// its end. Fields with labels already known to the record are skipped.
// Empty values are replaced with AbsentMarker.
func Enrich(record Record, fields []Field) Record {
	rv := Record{
		fields: make([]Field, 0, len(record.fields)+len(fields)),
	}

	rv.fields = append(rv.fields, record.fields...)

	for _, v := range fields {
		if _, ok := rv.Get(v.Label); ok {
			continue
		}

		if v.Value == "" {
			v.Value = AbsentMarker
		}

		rv.fields = append(rv.fields, v)
	}

	return rv
}

// AbsentFields returns fields for given labels set to AbsentMarker.
func AbsentFields(labels []string) []Field {
	rv := make([]Field, len(labels))

	for i, v := range labels {
		rv[i] = Field{Label: v, Value: AbsentMarker}
	}

	return rv
}
