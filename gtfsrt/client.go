package gtfsrt

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	gtfsrtpb "github.com/MobilityData/gtfs-realtime-bindings/golang/gtfs"
	"google.golang.org/protobuf/proto"
)

// ErrFeedUnavailable marks transport and decode failures for a feed endpoint.
var ErrFeedUnavailable = errors.New("feed unavailable")

// DefaultTimeout bounds a single feed fetch.
const DefaultTimeout = 30 * time.Second

// Client is an HTTP client for fetching GTFS-RT protobuf payloads.
type Client struct {
	httpClient *http.Client
}

// NewClient creates a client with the given timeout. An empty apiKey disables
// the x-api-key header.
func NewClient(apiKey string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		httpClient: &http.Client{
			Timeout:   timeout,
			Transport: newTransport(apiKey),
		},
	}
}

// Fetch retrieves the raw payload of one feed endpoint. The response must be
// complete; timeouts, transport errors and non-2xx statuses all return an
// error wrapping ErrFeedUnavailable.
func (c *Client) Fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFeedUnavailable, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: fetch %s: %v", ErrFeedUnavailable, url, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: HTTP %d from %s", ErrFeedUnavailable, resp.StatusCode, url)
	}

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %v", ErrFeedUnavailable, url, err)
	}
	return b, nil
}

// Decode parses a raw payload into a FeedMessage. Malformed bytes produce an
// error, never a partially-populated message. Decode is pure.
func Decode(b []byte) (*gtfsrtpb.FeedMessage, error) {
	var fm gtfsrtpb.FeedMessage
	if err := proto.Unmarshal(b, &fm); err != nil {
		return nil, fmt.Errorf("decode feed: %w", err)
	}
	return &fm, nil
}

// FetchMessage fetches and decodes one feed endpoint.
func (c *Client) FetchMessage(ctx context.Context, url string) (*gtfsrtpb.FeedMessage, error) {
	b, err := c.Fetch(ctx, url)
	if err != nil {
		return nil, err
	}
	fm, err := Decode(b)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFeedUnavailable, err)
	}
	return fm, nil
}

type apiTransport struct {
	apiKey string
}

func (t *apiTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if t.apiKey != "" {
		req.Header.Set("x-api-key", t.apiKey)
	}
	return http.DefaultTransport.RoundTrip(req)
}

func newTransport(apiKey string) http.RoundTripper {
	return &apiTransport{apiKey: apiKey}
}
