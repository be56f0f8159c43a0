// Package client is the marketplace directory and registration client.
// It consumes the HTTP boundary served by internal/api: a paginated
// agent listing and a registration endpoint. There is no dedicated
// single-agent endpoint; lookups scan one bounded listing page.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/solagora/agentmarket/internal/domain"
)

// lookupPageSize bounds the page scanned by FetchAgentByID. Agents
// beyond the first page are unreachable by direct lookup; catalogs are
// expected to stay under this ceiling.
const lookupPageSize = 100

const defaultTimeout = 30 * time.Second

// Client talks to a marketplace API server.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

// New creates a client for the given base URL. The underlying HTTP
// client carries a timeout so a hung server cannot stall a caller
// forever; pass a custom HTTPClient to change it.
func New(baseURL string) *Client {
	return &Client{
		BaseURL:    baseURL,
		HTTPClient: &http.Client{Timeout: defaultTimeout},
	}
}

type listResponse struct {
	Agents []domain.Agent `json:"agents"`
}

// FetchAgents retrieves one page of the agent directory.
func (c *Client) FetchAgents(ctx context.Context, page, limit int) ([]domain.Agent, error) {
	path := fmt.Sprintf("/api/agents?page=%d&limit=%d", page, limit)
	body, err := c.doRequest(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}

	var resp listResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("decode agent listing: %w", err)
	}
	return resp.Agents, nil
}

// FetchAgentByID resolves a single agent by scanning the first
// directory page. Ids are compared as strings. A missing id yields
// *NotFoundError; transport failures yield *TransportError.
func (c *Client) FetchAgentByID(ctx context.Context, id string) (*domain.Agent, error) {
	agents, err := c.FetchAgents(ctx, 1, lookupPageSize)
	if err != nil {
		return nil, err
	}

	for i := range agents {
		if agents[i].ID.String() == id {
			return &agents[i], nil
		}
	}
	return nil, &NotFoundError{ID: id}
}

// doRequest performs an HTTP request and returns the response body.
// Non-2xx statuses become a *TransportError carrying the body's error
// field when one is present.
func (c *Client) doRequest(ctx context.Context, method, path string, body []byte) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, &TransportError{Message: err.Error()}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{StatusCode: resp.StatusCode, Message: err.Error()}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var errResp struct {
			Error string `json:"error"`
		}
		_ = json.Unmarshal(respBody, &errResp)
		return nil, &TransportError{StatusCode: resp.StatusCode, Message: errResp.Error}
	}

	return respBody, nil
}
