package paysdk

import (
	"net/http"
	"strings"
	"time"
)

// ActingUserHeader carries the id of the user a mutation is issued for.
const ActingUserHeader = "X-User-ID"

// SDKClient is a client for the payment methods service.
type SDKClient struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewSDKClient creates a new payment methods client.
func NewSDKClient(baseURL string) *SDKClient {
	return &SDKClient{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}
