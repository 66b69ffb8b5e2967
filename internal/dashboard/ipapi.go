package dashboard

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

const ipAPIEndpoint = "http://ip-api.com/json/"

// IPAPIClient looks up the public address via ip-api.com. The request
// deliberately bypasses any configured proxy so the answer reflects
// the direct route.
type IPAPIClient struct {
	client   *http.Client
	endpoint string
}

func NewIPAPIClient() *IPAPIClient {
	return &IPAPIClient{
		client: &http.Client{
			Timeout: 10 * time.Second,
			Transport: &http.Transport{
				Proxy: nil,
			},
		},
		endpoint: ipAPIEndpoint,
	}
}

func (c *IPAPIClient) Fetch(ctx context.Context) (*PublicInfo, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint, nil)

	if err != nil {
		return nil, err
	}

	resp, err := c.client.Do(req)

	if err != nil {
		return nil, err
	}

	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("public ip lookup returned status %d", resp.StatusCode)
	}

	info := &PublicInfo{}

	if err := json.NewDecoder(resp.Body).Decode(info); err != nil {
		return nil, err
	}

	return info, nil
}
