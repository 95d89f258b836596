package providers

import (
	"context"
	"net/url"

	"github.com/9seconds/ipdossier/dossier"
)

type ipapiResponse struct {
	Error  bool   `json:"error"`
	Reason string `json:"reason"`

	IP                 dossier.Value `json:"ip"`
	Network            dossier.Value `json:"network"`
	Version            dossier.Value `json:"version"`
	City               dossier.Value `json:"city"`
	Region             dossier.Value `json:"region"`
	RegionCode         dossier.Value `json:"region_code"`
	CountryName        dossier.Value `json:"country_name"`
	CountryCode        dossier.Value `json:"country_code"`
	Continent          dossier.Value `json:"continent"`
	ContinentCode      dossier.Value `json:"continent_code"`
	CountryCapital     dossier.Value `json:"country_capital"`
	CountryPopulation  dossier.Value `json:"country_population"`
	CountryArea        dossier.Value `json:"country_area"`
	CountryCallingCode dossier.Value `json:"country_calling_code"`
	Postal             dossier.Value `json:"postal"`
	Latitude           dossier.Value `json:"latitude"`
	Longitude          dossier.Value `json:"longitude"`
	Timezone           dossier.Value `json:"timezone"`
	UTCOffset          dossier.Value `json:"utc_offset"`
	Languages          dossier.Value `json:"languages"`
	Currency           dossier.Value `json:"currency"`
	CurrencyName       dossier.Value `json:"currency_name"`
	CurrencySymbol     dossier.Value `json:"currency_symbol"`
	ASN                dossier.Value `json:"asn"`
	Org                dossier.Value `json:"org"`
	InEU               dossier.Value `json:"in_eu"`
}

type ipapiProvider struct {
	client  dossier.HTTPClient
	baseURL string
}

func (i ipapiProvider) Name() string {
	return NameIPAPI
}

func (i ipapiProvider) Lookup(ctx context.Context, target string) (dossier.Observation, error) {
	result := dossier.Observation{}

	req, err := newRequest(ctx, i.baseURL+"/"+url.PathEscape(target)+"/json/", "application/json")
	if err != nil {
		return result, err
	}

	jsonResponse := ipapiResponse{}

	if err := fetchJSON(i.client, req, &jsonResponse); err != nil {
		return result, err
	}

	if jsonResponse.Error {
		return result, rejected("failed to geolocate: %s", jsonResponse.Reason)
	}

	result.IP = jsonResponse.IP
	result.Network = jsonResponse.Network
	result.Version = jsonResponse.Version
	result.City = jsonResponse.City
	result.Region = jsonResponse.Region
	result.RegionCode = jsonResponse.RegionCode
	result.Country = jsonResponse.CountryName
	result.CountryCode = jsonResponse.CountryCode
	result.Continent = jsonResponse.Continent
	result.ContinentCode = jsonResponse.ContinentCode
	result.Capital = jsonResponse.CountryCapital
	result.Population = jsonResponse.CountryPopulation
	result.Area = jsonResponse.CountryArea
	result.CallingCode = jsonResponse.CountryCallingCode
	result.PostalCode = jsonResponse.Postal
	result.Latitude = jsonResponse.Latitude
	result.Longitude = jsonResponse.Longitude
	result.Timezone = jsonResponse.Timezone
	result.UTCOffset = jsonResponse.UTCOffset
	result.Languages = jsonResponse.Languages
	result.Currency = jsonResponse.Currency
	result.CurrencyName = jsonResponse.CurrencyName
	result.CurrencySymbol = jsonResponse.CurrencySymbol
	result.ASN = jsonResponse.ASN
	result.OrgISP = jsonResponse.Org
	result.EUMember = jsonResponse.InEU

	return result, nil
}

// NewIPAPI returns a provider for https://ipapi.co. It supports
// base_url parameter.
func NewIPAPI(client dossier.HTTPClient, parameters map[string]string) dossier.Provider {
	return ipapiProvider{
		client:  client,
		baseURL: baseURL(parameters, "https://ipapi.co"),
	}
}
