package github

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	ghnerrors "github.com/gh-notifier/gh-notifier/internal/errors"
)

const (
	// NotificationsURL is the endpoint listing the user's notifications.
	NotificationsURL = "https://api.github.com/notifications"

	// AcceptHeader is the media type recommended by the GitHub REST API.
	AcceptHeader = "application/vnd.github+json"

	// maxErrorBody caps how much of a non-200 body is kept in the error.
	maxErrorBody = 64 << 10
)

// Client fetches notifications.
type Client struct {
	httpClient *http.Client
	apiURL     string
	userAgent  string
}

// NewClient creates a client for apiURL (NotificationsURL when empty).
func NewClient(apiURL, userAgent string) *Client {
	if apiURL == "" {
		apiURL = NotificationsURL
	}
	return &Client{
		httpClient: &http.Client{},
		apiURL:     apiURL,
		userAgent:  userAgent,
	}
}

// SetHTTPClient replaces the underlying HTTP client.
func (c *Client) SetHTTPClient(hc *http.Client) {
	c.httpClient = hc
}

// APIURL returns the endpoint the client requests.
func (c *Client) APIURL() string {
	return c.apiURL
}

// Notifications performs one GET and returns the notifications in server order.
//
// Errors are categorized: transport failures are Connection errors, any status
// other than 200 is an API error carrying the status and body, and a body that is
// not a JSON array of notification objects is a Decode error.
func (c *Client) Notifications(ctx context.Context, token string) ([]Notification, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.apiURL, nil)
	if err != nil {
		return nil, ghnerrors.NewConnectionError(fmt.Errorf("creating request: %w", err))
	}

	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", AcceptHeader)
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, ghnerrors.NewConnectionError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, ghnerrors.NewAPIError(resp.StatusCode, strings.TrimSpace(string(body)))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, ghnerrors.NewConnectionError(fmt.Errorf("reading response: %w", err))
	}

	return decodeNotifications(body)
}

// decodeNotifications parses a JSON array of notification objects.
func decodeNotifications(body []byte) ([]Notification, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, ghnerrors.NewDecodeError(fmt.Errorf("expected a JSON array"))
	}

	var notifications []Notification
	if err := json.Unmarshal(trimmed, &notifications); err != nil {
		return nil, ghnerrors.NewDecodeError(err)
	}

	for i, n := range notifications {
		if n.ID == "" {
			return nil, ghnerrors.NewDecodeError(fmt.Errorf("notification at index %d has no id", i))
		}
	}

	return notifications, nil
}
