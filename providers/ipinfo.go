package providers

import (
	"context"
	"net/url"
	"strings"

	"github.com/9seconds/ipdossier/dossier"
)

type ipinfoResponse struct {
	Error *struct {
		Title   string `json:"title"`
		Message string `json:"message"`
	} `json:"error"`

	IP       dossier.Value `json:"ip"`
	City     dossier.Value `json:"city"`
	Country  dossier.Value `json:"country"`
	Org      dossier.Value `json:"org"`
	Loc      dossier.Value `json:"loc"`
	Timezone dossier.Value `json:"timezone"`
}

type ipinfoProvider struct {
	client    dossier.HTTPClient
	authToken string
	baseURL   string
}

func (i ipinfoProvider) Name() string {
	return NameIPInfo
}

func (i ipinfoProvider) Lookup(ctx context.Context, target string) (dossier.Observation, error) {
	result := dossier.Observation{}

	req, err := newRequest(ctx, i.baseURL+"/"+url.PathEscape(target)+"/json", "application/json")
	if err != nil {
		return result, err
	}

	if i.authToken != "" {
		req.Header.Set("Authorization", "Bearer "+i.authToken)
	}

	jsonResponse := ipinfoResponse{}

	if err := fetchJSON(i.client, req, &jsonResponse); err != nil {
		return result, err
	}

	if jsonResponse.Error != nil {
		return result, rejected("failed to geolocate: %s: %s",
			jsonResponse.Error.Title, jsonResponse.Error.Message)
	}

	result.IP = jsonResponse.IP
	result.City = jsonResponse.City
	result.Country = jsonResponse.Country
	result.OrgISP = jsonResponse.Org
	result.Timezone = jsonResponse.Timezone

	// loc is "latitude,longitude"
	if chunks := strings.SplitN(jsonResponse.Loc.String(), ",", 2); len(chunks) == 2 {
		result.Latitude = dossier.NewValue(strings.TrimSpace(chunks[0]))
		result.Longitude = dossier.NewValue(strings.TrimSpace(chunks[1]))
	}

	return result, nil
}

// NewIPInfo returns a provider for https://ipinfo.io. It supports
// auth_token and base_url parameters. Token is optional.
func NewIPInfo(client dossier.HTTPClient, parameters map[string]string) dossier.Provider {
	return ipinfoProvider{
		client:    client,
		authToken: parameters["auth_token"],
		baseURL:   baseURL(parameters, "https://ipinfo.io"),
	}
}
