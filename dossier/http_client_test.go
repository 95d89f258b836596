package dossier_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/9seconds/ipdossier/dossier"
	"github.com/mccutchen/go-httpbin/v2/httpbin"
	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/suite"
)

type HTTPClientTestSuite struct {
	suite.Suite

	httpbinEndpoint *httptest.Server
	c               dossier.HTTPClient
}

func (suite *HTTPClientTestSuite) SetupSuite() {
	suite.httpbinEndpoint = httptest.NewServer(httpbin.New())
}

func (suite *HTTPClientTestSuite) TearDownSuite() {
	suite.httpbinEndpoint.Close()
}

func (suite *HTTPClientTestSuite) SetupTest() {
	client := suite.httpbinEndpoint.Client()
	client.Timeout = 500 * time.Millisecond

	suite.c = dossier.NewHTTPClient(client, "test")
}

func (suite *HTTPClientTestSuite) TestUserAgent() {
	req, _ := http.NewRequest(http.MethodGet, suite.httpbinEndpoint.URL+"/user-agent", nil)
	resp, err := suite.c.Do(req)

	suite.Require().NoError(err)

	defer resp.Body.Close()

	data := struct {
		UserAgent string `json:"user-agent"`
	}{}

	suite.NoError(jsoniter.NewDecoder(resp.Body).Decode(&data))
	suite.Equal("test", data.UserAgent)
}

func (suite *HTTPClientTestSuite) TestBadStatus() {
	req, _ := http.NewRequest(http.MethodGet, suite.httpbinEndpoint.URL+"/status/500", nil)
	_, err := suite.c.Do(req)

	suite.Error(err)
	suite.Equal(dossier.FailureTransport, dossier.FailureKindOf(err))
}

func (suite *HTTPClientTestSuite) TestNotFound() {
	req, _ := http.NewRequest(http.MethodGet, suite.httpbinEndpoint.URL+"/status/404", nil)
	_, err := suite.c.Do(req)

	suite.Error(err)
}

func (suite *HTTPClientTestSuite) TestTimeout() {
	req, _ := http.NewRequest(http.MethodGet, suite.httpbinEndpoint.URL+"/delay/2", nil)
	_, err := suite.c.Do(req)

	suite.Error(err)
	suite.Equal(dossier.FailureTransport, dossier.FailureKindOf(err))
}

func (suite *HTTPClientTestSuite) TestClosedContext() {
	ctx, cancel := context.WithCancel(context.Background())

	cancel()

	req, _ := http.NewRequestWithContext(ctx, http.MethodGet, suite.httpbinEndpoint.URL+"/get", nil)
	_, err := suite.c.Do(req)

	suite.Error(err)
}

func (suite *HTTPClientTestSuite) TestCannotDial() {
	req, _ := http.NewRequest(http.MethodGet, suite.httpbinEndpoint.URL+"1"+"/get", nil)
	_, err := suite.c.Do(req)

	suite.Error(err)
}

func TestHTTPClient(t *testing.T) {
	suite.Run(t, &HTTPClientTestSuite{})
}
