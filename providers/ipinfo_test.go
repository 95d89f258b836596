package providers_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/9seconds/ipdossier/dossier"
	"github.com/9seconds/ipdossier/providers"
	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/suite"
)

type MockedIPInfoTestSuite struct {
	MockedProviderTestSuite

	prov dossier.Provider
}

func (suite *MockedIPInfoTestSuite) SetupTest() {
	suite.MockedProviderTestSuite.SetupTest()

	suite.prov = providers.NewIPInfo(suite.http, map[string]string{
		"auth_token": "token",
	})
}

func (suite *MockedIPInfoTestSuite) TestName() {
	suite.Equal(providers.NameIPInfo, suite.prov.Name())
}

func (suite *MockedIPInfoTestSuite) TestLookupClosedContext() {
	ctx, cancel := context.WithCancel(context.Background())

	cancel()

	_, err := suite.prov.Lookup(ctx, "23.22.13.113")

	suite.Error(err)
}

func (suite *MockedIPInfoTestSuite) TestLookupFailed() {
	httpmock.RegisterResponder("GET",
		"https://ipinfo.io/23.22.13.113/json",
		httpmock.NewStringResponder(http.StatusInternalServerError, ""))

	_, err := suite.prov.Lookup(context.Background(), "23.22.13.113")

	suite.Error(err)
	suite.Equal(dossier.FailureTransport, dossier.FailureKindOf(err))
}

func (suite *MockedIPInfoTestSuite) TestLookupBadJSON() {
	httpmock.RegisterResponder("GET",
		"https://ipinfo.io/23.22.13.113/json",
		httpmock.NewStringResponder(http.StatusOK, `{[`))

	_, err := suite.prov.Lookup(context.Background(), "23.22.13.113")

	suite.Error(err)
	suite.Equal(dossier.FailureParse, dossier.FailureKindOf(err))
}

func (suite *MockedIPInfoTestSuite) TestLookupRejected() {
	httpmock.RegisterResponder("GET",
		"https://ipinfo.io/23.22.13.113/json",
		httpmock.NewStringResponder(http.StatusOK, `{
  "error": {"title": "Wrong ip", "message": "Please provide a valid IP address"}
}`))

	_, err := suite.prov.Lookup(context.Background(), "23.22.13.113")

	suite.Error(err)
	suite.Equal(dossier.FailureRejected, dossier.FailureKindOf(err))
}

func (suite *MockedIPInfoTestSuite) TestLookupOk() {
	httpmock.RegisterResponder("GET",
		"https://ipinfo.io/23.22.13.113/json",
		func(req *http.Request) (*http.Response, error) {
			suite.Equal("Bearer token", req.Header.Get("Authorization"))
			suite.Equal("test-agent", req.Header.Get("User-Agent"))

			return httpmock.NewStringResponse(http.StatusOK, `{
  "ip": "23.22.13.113",
  "hostname": "ec2-23-22-13-113.compute-1.amazonaws.com",
  "city": "Virginia Beach",
  "region": "Virginia",
  "country": "US",
  "loc": "36.7957,-76.0126",
  "org": "AS14618 Amazon.com, Inc.",
  "postal": "23479",
  "timezone": "America/New_York",
  "readme": "https://ipinfo.io/missingauth"
}`), nil
		})

	result, err := suite.prov.Lookup(context.Background(), "23.22.13.113")

	suite.NoError(err)
	suite.Equal("23.22.13.113", result.IP.String())
	suite.Equal("Virginia Beach", result.City.String())
	suite.Equal("US", result.Country.String())
	suite.Equal("36.7957", result.Latitude.String())
	suite.Equal("-76.0126", result.Longitude.String())
	suite.Equal("AS14618 Amazon.com, Inc.", result.OrgISP.String())
	suite.Equal("America/New_York", result.Timezone.String())
	suite.False(result.CountryCode.Present())
	suite.False(result.Region.Present())
}

func (suite *MockedIPInfoTestSuite) TestLookupBadLoc() {
	httpmock.RegisterResponder("GET",
		"https://ipinfo.io/23.22.13.113/json",
		httpmock.NewStringResponder(http.StatusOK, `{"loc": "36.7957"}`))

	result, err := suite.prov.Lookup(context.Background(), "23.22.13.113")

	suite.NoError(err)
	suite.False(result.Latitude.Present())
	suite.False(result.Longitude.Present())
}

func (suite *MockedIPInfoTestSuite) TestLookupCoordinatesOnly() {
	httpmock.RegisterResponder("GET",
		"https://ipinfo.io/23.22.13.113/json",
		httpmock.NewStringResponder(http.StatusOK, `{"loc": "12.34,56.78"}`))

	result, err := suite.prov.Lookup(context.Background(), "23.22.13.113")

	suite.NoError(err)

	record := dossier.Merge("23.22.13.113", []dossier.Observation{{}, result, {}, {}})
	latitude, _ := record.Get(dossier.LabelLatitude)
	longitude, _ := record.Get(dossier.LabelLongitude)

	suite.Equal("12.34", latitude)
	suite.Equal("56.78", longitude)
}

type IntegrationIPInfoTestSuite struct {
	ProviderTestSuite

	prov dossier.Provider
}

func (suite *IntegrationIPInfoTestSuite) SetupTest() {
	suite.ProviderTestSuite.SetupTest()

	suite.prov = providers.NewIPInfo(suite.http, map[string]string{})
}

func (suite *IntegrationIPInfoTestSuite) TestLookup() {
	result, err := suite.prov.Lookup(context.Background(), "23.22.13.113")

	suite.NoError(err)
	suite.Equal("US", result.Country.String())
}

func TestIPInfo(t *testing.T) {
	suite.Run(t, &MockedIPInfoTestSuite{})
}

func TestIntegrationIPInfo(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipped because of the short mode")
		return
	}

	suite.Run(t, &IntegrationIPInfoTestSuite{})
}
