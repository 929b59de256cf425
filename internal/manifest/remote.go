package manifest

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/hashicorp/go-retryablehttp"
)

// RemoteOptions configures fetching a manifest from an HTTP(S) endpoint.
type RemoteOptions struct {
	// Optional basic auth credentials.
	Username string
	Password string

	// RetryMax overrides the default retry count when positive.
	RetryMax int
}

const defaultRetryMax = 3

// Fetch retrieves a manifest from an HTTP(S) endpoint and parses it. Transient
// failures are retried with backoff before giving up.
func Fetch(ctx context.Context, url string, opts RemoteOptions) (*Manifest, error) {
	if url == "" {
		return nil, fmt.Errorf("manifest URL cannot be empty")
	}

	client := retryablehttp.NewClient()
	client.RetryMax = defaultRetryMax
	if opts.RetryMax > 0 {
		client.RetryMax = opts.RetryMax
	}
	client.Logger = nil

	req, err := retryablehttp.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create manifest request: %w", err)
	}
	if opts.Username != "" {
		req.SetBasicAuth(opts.Username, opts.Password)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch manifest: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("failed to fetch manifest (status %d): %s", resp.StatusCode, string(body))
	}

	src, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest body: %w", err)
	}

	return ParseBytes(src, url)
}
