package providers

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/9seconds/ipdossier/dossier"
	jsoniter "github.com/json-iterator/go"
)

func flushResponse(resp io.ReadCloser) {
	io.Copy(io.Discard, resp) // nolint: errcheck
	resp.Close()
}

func newRequest(ctx context.Context, url, accept string) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, dossier.NewLookupError(dossier.FailureTransport,
			fmt.Errorf("cannot build a request: %w", err))
	}

	req.Header.Set("Accept", accept)

	return req, nil
}

func sendRequest(client dossier.HTTPClient, req *http.Request) (*http.Response, error) {
	resp, err := client.Do(req)
	if err != nil {
		return nil, dossier.NewLookupError(dossier.FailureTransport,
			fmt.Errorf("cannot send a request: %w", err))
	}

	return resp, nil
}

func fetchJSON(client dossier.HTTPClient, req *http.Request, target interface{}) error {
	resp, err := sendRequest(client, req)
	if err != nil {
		return err
	}

	defer flushResponse(resp.Body)

	if err := jsoniter.NewDecoder(bufio.NewReader(resp.Body)).Decode(target); err != nil {
		return dossier.NewLookupError(dossier.FailureParse,
			fmt.Errorf("cannot parse a response: %w", err))
	}

	return nil
}

func baseURL(parameters map[string]string, defaultValue string) string {
	if value := parameters["base_url"]; value != "" {
		return strings.TrimRight(value, "/")
	}

	return defaultValue
}
