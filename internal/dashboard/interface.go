package dashboard

import "context"

//go:generate mockgen -destination=../mock/dashboard/mock_dashboard.go -package=mock_dashboard . Client

// PublicInfo is the machine's internet-facing identity as reported by
// an external lookup service.
type PublicInfo struct {
	IP      string `json:"query"`
	Country string `json:"country"`
	Region  string `json:"regionName"`
	City    string `json:"city"`
	ISP     string `json:"isp"`
}

// Client fetches the public address information
type Client interface {
	Fetch(ctx context.Context) (*PublicInfo, error)
}
