package jellyfin

import (
	"fmt"
	"net/http"
	"strings"

	jellyfin "github.com/sj14/jellyfin-go/api"
)

const (
	clientName    = "PageStrip"
	clientVersion = "0.1.0"
	deviceName    = "PageStrip Desktop"
)

// Client wraps the generated Jellyfin API client for library browsing.
type Client struct {
	api       *jellyfin.APIClient
	token     string
	userID    string
	serverURL string
}

func normalizeURL(serverURL string) string {
	serverURL = strings.TrimSpace(serverURL)
	if !strings.HasPrefix(serverURL, "http://") && !strings.HasPrefix(serverURL, "https://") {
		serverURL = "https://" + serverURL
	}
	return strings.TrimRight(serverURL, "/")
}

// NewClient creates a client for serverURL authenticated with an access
// token obtained elsewhere (for example the Jellyfin web dashboard).
// deviceID identifies this install to the server.
func NewClient(serverURL, token, userID, deviceID string) *Client {
	serverURL = normalizeURL(serverURL)
	cfg := jellyfin.NewConfiguration()
	cfg.Servers = jellyfin.ServerConfigurations{
		{URL: serverURL},
	}
	cfg.AddDefaultHeader("X-Emby-Authorization",
		authHeader(deviceID))
	if token != "" {
		cfg.AddDefaultHeader("X-Emby-Token", token)
	}

	return &Client{
		api:       jellyfin.NewAPIClient(cfg),
		token:     token,
		userID:    userID,
		serverURL: serverURL,
	}
}

func authHeader(deviceID string) string {
	if deviceID == "" {
		deviceID = "pagestrip"
	}
	return fmt.Sprintf(`MediaBrowser Client="%s", Device="%s", DeviceId="%s", Version="%s"`,
		clientName, deviceName, deviceID, clientVersion)
}

func (c *Client) UserID() string    { return c.userID }
func (c *Client) ServerURL() string { return c.serverURL }

func respStatus(resp *http.Response) string {
	if resp == nil {
		return "no response"
	}
	return resp.Status
}
