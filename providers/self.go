package providers

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"net"
	"strings"

	"github.com/9seconds/ipdossier/dossier"
)

// DefaultSelfURL returns a caller public IP address as a plain text.
const DefaultSelfURL = "https://ipapi.co/ip"

// LookupSelf detects a public IP address of the caller.
func LookupSelf(ctx context.Context, client dossier.HTTPClient, selfURL string) (string, error) {
	if selfURL == "" {
		selfURL = DefaultSelfURL
	}

	req, err := newRequest(ctx, selfURL, "text/plain")
	if err != nil {
		return "", err
	}

	resp, err := sendRequest(client, req)
	if err != nil {
		return "", err
	}

	defer flushResponse(resp.Body)

	body, err := io.ReadAll(io.LimitReader(bufio.NewReader(resp.Body), 256))
	if err != nil {
		return "", dossier.NewLookupError(dossier.FailureTransport,
			fmt.Errorf("cannot read response body: %w", err))
	}

	addr := strings.TrimSpace(string(body))
	if net.ParseIP(addr) == nil {
		return "", dossier.NewLookupError(dossier.FailureParse,
			fmt.Errorf("incorrect ip address: %s", truncate(body)))
	}

	return addr, nil
}
