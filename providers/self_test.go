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

type MockedSelfTestSuite struct {
	MockedProviderTestSuite
}

func (suite *MockedSelfTestSuite) TestOk() {
	httpmock.RegisterResponder("GET", providers.DefaultSelfURL,
		httpmock.NewStringResponder(http.StatusOK, "203.0.113.10\n"))

	addr, err := providers.LookupSelf(context.Background(), suite.http, "")

	suite.NoError(err)
	suite.Equal("203.0.113.10", addr)
}

func (suite *MockedSelfTestSuite) TestCustomURL() {
	httpmock.RegisterResponder("GET", "https://example.com/ip",
		httpmock.NewStringResponder(http.StatusOK, "2001:db8::1"))

	addr, err := providers.LookupSelf(context.Background(), suite.http, "https://example.com/ip")

	suite.NoError(err)
	suite.Equal("2001:db8::1", addr)
}

func (suite *MockedSelfTestSuite) TestGarbage() {
	httpmock.RegisterResponder("GET", providers.DefaultSelfURL,
		httpmock.NewStringResponder(http.StatusOK, "<html>rate limited</html>"))

	_, err := providers.LookupSelf(context.Background(), suite.http, "")

	suite.Error(err)
	suite.Equal(dossier.FailureParse, dossier.FailureKindOf(err))
}

func (suite *MockedSelfTestSuite) TestFailed() {
	httpmock.RegisterResponder("GET", providers.DefaultSelfURL,
		httpmock.NewStringResponder(http.StatusForbidden, ""))

	_, err := providers.LookupSelf(context.Background(), suite.http, "")

	suite.Error(err)
	suite.Equal(dossier.FailureTransport, dossier.FailureKindOf(err))
}

func TestSelf(t *testing.T) {
	suite.Run(t, &MockedSelfTestSuite{})
}
