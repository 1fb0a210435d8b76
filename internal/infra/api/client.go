package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/bryanwahyu/insight-dashboard/internal/domain/insights"
)

const (
	analyzePath  = "/api/v1/analyze"
	insightsPath = "/api/v1/insights"
	healthPath   = "/health"

	msgAnalyzeFailed = "Analysis failed"
	msgListFailed    = "Failed to fetch insights"
	msgGetFailed     = "Failed to fetch insight"
	msgHealthFailed  = "Health check failed"
)

// Client talks to the insight backend over HTTP. It holds no mutable state and
// is safe for concurrent use. Requests are single attempts with no client-side
// timeout; deadlines come only from the caller's context.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

type Option func(*Client)

// WithHTTPClient replaces the default http.Client (e.g. to add transports).
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

var _ insights.Client = (*Client)(nil)

// Analyze submits text or a URL for analysis and returns the stored insight.
func (c *Client) Analyze(ctx context.Context, in insights.AnalyzeRequest) (*insights.Insight, error) {
	payload, err := json.Marshal(in)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+analyzePath, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if !ok(resp) {
		return nil, detailError(resp, msgAnalyzeFailed, nil)
	}

	var out insights.Insight
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decode insight: %w", err)
	}
	return &out, nil
}

// List returns stored insights in server order, filtered by search when non-empty.
// Failures never carry server detail, only a fixed message.
func (c *Client) List(ctx context.Context, search string) ([]insights.Insight, error) {
	target := c.baseURL + insightsPath
	if search != "" {
		params := url.Values{}
		params.Set("search", search)
		target += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if !ok(resp) {
		io.Copy(io.Discard, resp.Body)
		return nil, &insights.APIError{StatusCode: resp.StatusCode, Message: msgListFailed}
	}

	var out []insights.Insight
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decode insights: %w", err)
	}
	return out, nil
}

// Get fetches a single insight by id.
func (c *Client) Get(ctx context.Context, id int64) (*insights.Insight, error) {
	target := c.baseURL + insightsPath + "/" + strconv.FormatInt(id, 10)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, detailError(resp, msgGetFailed, insights.ErrNotFound)
	}
	if !ok(resp) {
		return nil, detailError(resp, msgGetFailed, nil)
	}

	var out insights.Insight
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decode insight: %w", err)
	}
	return &out, nil
}

// Health calls the backend liveness endpoint.
func (c *Client) Health(ctx context.Context) (*insights.Health, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+healthPath, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if !ok(resp) {
		io.Copy(io.Discard, resp.Body)
		return nil, &insights.APIError{StatusCode: resp.StatusCode, Message: msgHealthFailed}
	}

	var out insights.Health
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decode health: %w", err)
	}
	return &out, nil
}

func ok(resp *http.Response) bool {
	return resp.StatusCode >= 200 && resp.StatusCode < 300
}

// detailError builds an APIError from a {"detail": "..."} body, using fallback
// when the body is not JSON or detail is missing, empty or not a string.
func detailError(resp *http.Response, fallback string, cause error) error {
	msg := fallback
	var body struct {
		Detail any `json:"detail"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err == nil {
		if d, isString := body.Detail.(string); isString && d != "" {
			msg = d
		}
	}
	return &insights.APIError{StatusCode: resp.StatusCode, Message: msg, Err: cause}
}
