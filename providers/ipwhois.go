package providers

import (
	"context"
	"net/url"

	"github.com/9seconds/ipdossier/dossier"
)

type ipwhoisResponse struct {
	Success dossier.Value `json:"success"`
	Message string        `json:"message"`

	IP                dossier.Value `json:"ip"`
	City              dossier.Value `json:"city"`
	Region            dossier.Value `json:"region"`
	RegionCode        dossier.Value `json:"region_code"`
	Country           dossier.Value `json:"country"`
	CountryCode       dossier.Value `json:"country_code"`
	Continent         dossier.Value `json:"continent"`
	ContinentCode     dossier.Value `json:"continent_code"`
	CountryCapital    dossier.Value `json:"country_capital"`
	CountryPopulation dossier.Value `json:"country_population"`
	CountryArea       dossier.Value `json:"country_area"`
	CallingCode       dossier.Value `json:"calling_code"`
	Postal            dossier.Value `json:"postal"`
	Latitude          dossier.Value `json:"latitude"`
	Longitude         dossier.Value `json:"longitude"`
	Languages         dossier.Value `json:"languages"`
	Currency          dossier.Value `json:"currency"`
	CurrencyName      dossier.Value `json:"currency_name"`
	CurrencySymbol    dossier.Value `json:"currency_symbol"`
	IsEU              dossier.Value `json:"is_eu"`
	Reverse           dossier.Value `json:"reverse"`
	Connection        struct {
		Domain dossier.Value `json:"domain"`
		ASN    dossier.Value `json:"asn"`
		Org    dossier.Value `json:"org"`
		ISP    dossier.Value `json:"isp"`
	} `json:"connection"`
	Timezone struct {
		ID  dossier.Value `json:"id"`
		UTC dossier.Value `json:"utc"`
	} `json:"timezone"`
	Security struct {
		IsHosting   dossier.Value `json:"is_hosting"`
		IsProxy     dossier.Value `json:"is_proxy"`
		IsMobile    dossier.Value `json:"is_mobile"`
		IsTor       dossier.Value `json:"is_tor"`
		ThreatLevel dossier.Value `json:"threat_level"`
	} `json:"security"`
}

type ipwhoisProvider struct {
	client  dossier.HTTPClient
	baseURL string
}

func (i ipwhoisProvider) Name() string {
	return NameIPWhois
}

func (i ipwhoisProvider) Lookup(ctx context.Context, target string) (dossier.Observation, error) {
	result := dossier.Observation{}

	req, err := newRequest(ctx, i.baseURL+"/"+url.PathEscape(target), "application/json")
	if err != nil {
		return result, err
	}

	jsonResponse := ipwhoisResponse{}

	if err := fetchJSON(i.client, req, &jsonResponse); err != nil {
		return result, err
	}

	if jsonResponse.Success.Present() && !jsonResponse.Success.Bool() {
		return result, rejected("failed to geolocate: %s", jsonResponse.Message)
	}

	result.IP = jsonResponse.IP
	result.Network = jsonResponse.Connection.Domain
	result.City = jsonResponse.City
	result.Region = jsonResponse.Region
	result.RegionCode = jsonResponse.RegionCode
	result.Country = jsonResponse.Country
	result.CountryCode = jsonResponse.CountryCode
	result.Continent = jsonResponse.Continent
	result.ContinentCode = jsonResponse.ContinentCode
	result.Capital = jsonResponse.CountryCapital
	result.Population = jsonResponse.CountryPopulation
	result.Area = jsonResponse.CountryArea
	result.CallingCode = jsonResponse.CallingCode
	result.PostalCode = jsonResponse.Postal
	result.Latitude = jsonResponse.Latitude
	result.Longitude = jsonResponse.Longitude
	result.Timezone = jsonResponse.Timezone.ID
	result.UTCOffset = jsonResponse.Timezone.UTC
	result.Languages = jsonResponse.Languages
	result.Currency = jsonResponse.Currency
	result.CurrencyName = jsonResponse.CurrencyName
	result.CurrencySymbol = jsonResponse.CurrencySymbol
	result.ASN = jsonResponse.Connection.ASN
	result.ASNName = jsonResponse.Connection.Org
	result.OrgISP = jsonResponse.Connection.ISP
	result.ReverseDNS = jsonResponse.Reverse
	result.EUMember = jsonResponse.IsEU
	result.ThreatLevel = jsonResponse.Security.ThreatLevel
	result.Hosting = jsonResponse.Security.IsHosting
	result.Proxy = jsonResponse.Security.IsProxy
	result.Mobile = jsonResponse.Security.IsMobile
	result.Tor = jsonResponse.Security.IsTor

	return result, nil
}

// NewIPWhois returns a provider for http://ipwho.is. It supports
// base_url parameter.
func NewIPWhois(client dossier.HTTPClient, parameters map[string]string) dossier.Provider {
	return ipwhoisProvider{
		client:  client,
		baseURL: baseURL(parameters, "http://ipwho.is"),
	}
}
