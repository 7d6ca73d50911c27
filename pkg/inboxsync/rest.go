package inboxsync

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// RESTClient talks to the notification REST API. It implements both
// SnapshotFetcher and ReadStateWriter.
type RESTClient struct {
	baseURL string
	token   string
	http    *http.Client
}

// NewRESTClient builds a client for the API at baseURL (scheme and host,
// no trailing slash needed). token is sent as a bearer token on every
// request. httpClient may be nil.
func NewRESTClient(baseURL, token string, httpClient *http.Client) *RESTClient {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 15 * time.Second}
	}
	return &RESTClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		http:    httpClient,
	}
}

type snapshotResponse struct {
	Notifications []Notification `json:"notifications"`
	UnreadCount   int            `json:"unread_count"`
}

// FetchSnapshot loads the recipient's inbox, newest first.
func (c *RESTClient) FetchSnapshot(ctx context.Context, recipientID string) ([]Notification, error) {
	var resp snapshotResponse
	path := "/api/v1/notifications/" + url.PathEscape(recipientID)
	if err := c.call(ctx, http.MethodGet, path, &resp); err != nil {
		return nil, err
	}
	return resp.Notifications, nil
}

// MarkRead marks one delivery record read for the authenticated user.
func (c *RESTClient) MarkRead(ctx context.Context, instanceID string) error {
	return c.call(ctx, http.MethodPatch, "/api/v1/notifications/read/"+url.PathEscape(instanceID), nil)
}

// MarkAllRead marks every currently-unread record of the recipient read.
func (c *RESTClient) MarkAllRead(ctx context.Context, recipientID string) error {
	return c.call(ctx, http.MethodPatch, "/api/v1/notifications/read-all/"+url.PathEscape(recipientID), nil)
}

func (c *RESTClient) call(ctx context.Context, method, path string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("build request %s %s: %w", method, path, err)
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("%s %s: status %d: %s", method, path, resp.StatusCode, strings.TrimSpace(string(body)))
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s %s response: %w", method, path, err)
	}
	return nil
}
