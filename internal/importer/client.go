// Package importer pulls room inventories from the campus Buildings API and
// seeds the rooms table with everything that looks like a bathroom. The API
// sits behind an OAuth2 gateway: a client-credentials token exchange first,
// then RoomInfo/{brn} per building.
package importer

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

// CampusRoom is one room as reported by the Buildings API.
type CampusRoom struct {
	RoomRecordNumber    string `json:"RoomRecordNumber"`
	RoomNumber          string `json:"RoomNumber"`
	FloorNumber         string `json:"FloorNumber"`
	RoomTypeDescription string `json:"RoomTypeDescription"`
}

// tokenResponse is the OAuth2 token endpoint reply.
type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
}

// roomInfoResponse wraps the RoomInfo payload. The list is keyed by a
// grouping label the API chooses; the groups are flattened on read.
type roomInfoResponse struct {
	ListOfRooms map[string][]CampusRoom `json:"ListOfRooms"`
}

// Client talks to the campus Buildings API.
type Client struct {
	http         *resty.Client
	clientID     string
	clientSecret string
}

// NewClient builds a Buildings API client against the given gateway base
// URL. Retries cover transient gateway hiccups.
func NewClient(baseURL, clientID, clientSecret string) *Client {
	httpClient := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(30 * time.Second).
		SetRetryCount(3).
		SetRetryWaitTime(1 * time.Second).
		SetRetryMaxWaitTime(5 * time.Second).
		SetHeader("Accept", "application/json")

	return &Client{
		http:         httpClient,
		clientID:     clientID,
		clientSecret: clientSecret,
	}
}

// Token exchanges the client credentials for a bearer token scoped to the
// buildings API.
func (c *Client) Token(ctx context.Context) (string, error) {
	var tok tokenResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetBasicAuth(c.clientID, c.clientSecret).
		SetFormData(map[string]string{
			"grant_type": "client_credentials",
			"scope":      "buildings",
		}).
		SetResult(&tok).
		Post("/um/oauth2/token")
	if err != nil {
		return "", fmt.Errorf("token request: %w", err)
	}
	if resp.IsError() {
		return "", fmt.Errorf("token request: gateway returned %s", resp.Status())
	}
	if tok.AccessToken == "" {
		return "", fmt.Errorf("token request: empty access token")
	}
	return tok.AccessToken, nil
}

// RoomInfo fetches every room of the building identified by brn, flattening
// the API's grouped response into a single slice.
func (c *Client) RoomInfo(ctx context.Context, token, brn string) ([]CampusRoom, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		SetAuthToken(token).
		Get("/um/bf/Buildings/v2/RoomInfo/" + brn)
	if err != nil {
		return nil, fmt.Errorf("room info for %s: %w", brn, err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("room info for %s: gateway returned %s", brn, resp.Status())
	}
	var payload roomInfoResponse
	if err := json.Unmarshal(resp.Body(), &payload); err != nil {
		return nil, fmt.Errorf("room info for %s: decode: %w", brn, err)
	}
	var rooms []CampusRoom
	for _, group := range payload.ListOfRooms {
		rooms = append(rooms, group...)
	}
	return rooms, nil
}
