package dossier

import (
	"fmt"
	"io"
	"net/http"
)

type httpClient struct {
	userAgent string
	client    *http.Client
}

func (h httpClient) Do(req *http.Request) (*http.Response, error) {
	req.Header.Set("User-Agent", h.userAgent)

	resp, err := h.client.Do(req)
	if err != nil {
		if resp != nil {
			flushResponse(resp)
		}

		return nil, NewLookupError(FailureTransport, err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		flushResponse(resp)

		return nil, NewLookupError(FailureTransport,
			fmt.Errorf("netloc has responded with %s", resp.Status))
	}

	return resp, nil
}

func flushResponse(resp *http.Response) {
	io.Copy(io.Discard, resp.Body) // nolint: errcheck
	resp.Body.Close()
}

// NewHTTPClient prepares a new HTTP client which is used by providers.
// It sets a user agent and rejects all responses with non-2xx status.
// Errors are LookupError of FailureTransport kind.
//
// Each request is bounded by a timeout of the given client, there are
// no retries.
func NewHTTPClient(client *http.Client, userAgent string) HTTPClient {
	return httpClient{
		userAgent: userAgent,
		client:    client,
	}
}
