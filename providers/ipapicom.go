package providers

import (
	"context"
	"net/url"

	"github.com/9seconds/ipdossier/dossier"
)

// a bitmask of all fields ip-api.com is able to return
const ipapicomDefaultFields = "66846719"

type ipapicomResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`

	Query         dossier.Value `json:"query"`
	City          dossier.Value `json:"city"`
	RegionName    dossier.Value `json:"regionName"`
	Region        dossier.Value `json:"region"`
	Country       dossier.Value `json:"country"`
	CountryCode   dossier.Value `json:"countryCode"`
	Continent     dossier.Value `json:"continent"`
	ContinentCode dossier.Value `json:"continentCode"`
	Zip           dossier.Value `json:"zip"`
	Lat           dossier.Value `json:"lat"`
	Lon           dossier.Value `json:"lon"`
	Timezone      dossier.Value `json:"timezone"`
	Offset        dossier.Value `json:"offset"`
	AS            dossier.Value `json:"as"`
	ASName        dossier.Value `json:"asname"`
	ISP           dossier.Value `json:"isp"`
	Reverse       dossier.Value `json:"reverse"`
	Hosting       dossier.Value `json:"hosting"`
	Proxy         dossier.Value `json:"proxy"`
	Mobile        dossier.Value `json:"mobile"`
}

type ipapicomProvider struct {
	client  dossier.HTTPClient
	baseURL string
	fields  string
}

func (i ipapicomProvider) Name() string {
	return NameIPAPICom
}

func (i ipapicomProvider) Lookup(ctx context.Context, target string) (dossier.Observation, error) {
	result := dossier.Observation{}

	req, err := newRequest(ctx, i.buildURL(target), "application/json")
	if err != nil {
		return result, err
	}

	jsonResponse := ipapicomResponse{}

	if err := fetchJSON(i.client, req, &jsonResponse); err != nil {
		return result, err
	}

	if jsonResponse.Status == "fail" {
		return result, rejected("failed to geolocate: %s", jsonResponse.Message)
	}

	result.IP = jsonResponse.Query
	result.City = jsonResponse.City
	result.Region = jsonResponse.RegionName
	result.RegionCode = jsonResponse.Region
	result.Country = jsonResponse.Country
	result.CountryCode = jsonResponse.CountryCode
	result.Continent = jsonResponse.Continent
	result.ContinentCode = jsonResponse.ContinentCode
	result.PostalCode = jsonResponse.Zip
	result.Latitude = jsonResponse.Lat
	result.Longitude = jsonResponse.Lon
	result.Timezone = jsonResponse.Timezone
	result.UTCOffset = jsonResponse.Offset
	result.ASN = jsonResponse.AS
	result.ASNName = jsonResponse.ASName
	result.OrgISP = jsonResponse.ISP
	result.ReverseDNS = jsonResponse.Reverse
	result.Hosting = jsonResponse.Hosting
	result.Proxy = jsonResponse.Proxy
	result.Mobile = jsonResponse.Mobile

	return result, nil
}

func (i ipapicomProvider) buildURL(target string) string {
	getQuery := url.Values{}

	getQuery.Set("fields", i.fields)

	return i.baseURL + "/json/" + url.PathEscape(target) + "?" + getQuery.Encode()
}

// NewIPAPICom returns a provider for http://ip-api.com. It supports
// base_url and fields parameters. Free endpoint of ip-api.com is
// plain HTTP only.
func NewIPAPICom(client dossier.HTTPClient, parameters map[string]string) dossier.Provider {
	fields := parameters["fields"]
	if fields == "" {
		fields = ipapicomDefaultFields
	}

	return ipapicomProvider{
		client:  client,
		baseURL: baseURL(parameters, "http://ip-api.com"),
		fields:  fields,
	}
}
