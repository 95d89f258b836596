package providers_test

import (
	"net/http"
	"time"

	"github.com/9seconds/ipdossier/dossier"
	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/suite"
)

type ProviderTestSuite struct {
	suite.Suite

	http dossier.HTTPClient
}

func (suite *ProviderTestSuite) SetupTest() {
	suite.http = dossier.NewHTTPClient(&http.Client{
		Timeout: 10 * time.Second,
	}, "test-agent")
}

type MockedProviderTestSuite struct {
	ProviderTestSuite
}

func (suite *MockedProviderTestSuite) SetupSuite() {
	httpmock.Activate()
}

func (suite *MockedProviderTestSuite) TearDownSuite() {
	httpmock.DeactivateAndReset()
}

func (suite *MockedProviderTestSuite) TearDownTest() {
	httpmock.Reset()
}
