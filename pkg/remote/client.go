// Package remote fetches inventory and checklist data from the
// external HTTP sources the assessment can be configured against.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/user/pciscope/pkg/engine"
)

// DefaultTimeout bounds a single fetch. These sources are small mock
// or export APIs; anything slower than this is treated as down.
const DefaultTimeout = 10 * time.Second

// RemoteFetchError reports a timeout or non-success response from an
// external source. It is fatal to that stage's data; the caller decides
// whether the run proceeds with a default table.
type RemoteFetchError struct {
	URL    string
	Status string
	Err    error
}

func (e *RemoteFetchError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("remote fetch %s failed: %v", e.URL, e.Err)
	}
	return fmt.Sprintf("remote fetch %s returned status %s", e.URL, e.Status)
}

func (e *RemoteFetchError) Unwrap() error { return e.Err }

// Client fetches from the configured inventory and controls endpoints.
type Client struct {
	InventoryURL string
	ControlsURL  string
	httpClient   *http.Client
}

// NewClient builds a client with the default timeout.
func NewClient(inventoryURL, controlsURL string) *Client {
	return &Client{
		InventoryURL: inventoryURL,
		ControlsURL:  controlsURL,
		httpClient:   &http.Client{Timeout: DefaultTimeout},
	}
}

// FetchInventory retrieves the asset inventory. The endpoint may return
// a JSON array or a single JSON object; a single object becomes a
// one-row table.
func (c *Client) FetchInventory(ctx context.Context) ([]engine.Asset, error) {
	data, err := c.get(ctx, c.InventoryURL)
	if err != nil {
		return nil, err
	}

	data = bytes.TrimSpace(data)
	var assets []engine.Asset
	if err := json.Unmarshal(data, &assets); err == nil {
		return assets, nil
	}
	var one engine.Asset
	if err := json.Unmarshal(data, &one); err != nil {
		return nil, &RemoteFetchError{URL: c.InventoryURL, Err: fmt.Errorf("invalid JSON body: %w", err)}
	}
	return []engine.Asset{one}, nil
}

// FetchChecklist retrieves control definitions from the controls
// endpoint and wraps them in a checklist, preserving endpoint order.
func (c *Client) FetchChecklist(ctx context.Context) (engine.Checklist, error) {
	data, err := c.get(ctx, c.ControlsURL)
	if err != nil {
		return engine.Checklist{}, err
	}

	var controls []engine.Control
	if err := json.Unmarshal(bytes.TrimSpace(data), &controls); err != nil {
		return engine.Checklist{}, &RemoteFetchError{URL: c.ControlsURL, Err: fmt.Errorf("invalid JSON body: %w", err)}
	}
	return engine.Checklist{Standard: "remote", Controls: controls}, nil
}

func (c *Client) get(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &RemoteFetchError{URL: url, Err: err}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &RemoteFetchError{URL: url, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &RemoteFetchError{URL: url, Status: resp.Status}
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &RemoteFetchError{URL: url, Err: err}
	}
	return data, nil
}
