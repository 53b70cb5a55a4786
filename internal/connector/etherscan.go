package connector

import (
	"context"
	"fmt"
	"net/url"
	"os"
)

// Etherscan fetches on-chain metrics from the Etherscan API.
type Etherscan struct {
	client  *Client
	baseURL string
	apiKey  string
}

// NewEtherscan creates an Etherscan connector. An empty apiKey falls back to
// the ETHERSCAN_API_KEY environment variable, then to the placeholder key the
// API accepts for throttled access.
func NewEtherscan(client *Client, baseURL, apiKey string) *Etherscan {
	if apiKey == "" {
		apiKey = os.Getenv("ETHERSCAN_API_KEY")
	}
	if apiKey == "" {
		apiKey = "YourApiKeyToken"
	}
	return &Etherscan{client: client, baseURL: baseURL, apiKey: apiKey}
}

// DailyNewAddressOptions narrows a daily-new-address query. Zero values mean
// Ethereum mainnet, no date bounds, newest first.
type DailyNewAddressOptions struct {
	ChainID   string
	StartDate string // yyyy-MM-dd
	EndDate   string // yyyy-MM-dd
	Sort      string // asc or desc
}

// DailyNewAddresses returns the daily count of new addresses on the selected
// chain, passed through as decoded JSON.
func (e *Etherscan) DailyNewAddresses(ctx context.Context, opts DailyNewAddressOptions) (any, error) {
	if opts.ChainID == "" {
		opts.ChainID = "1"
	}
	if opts.Sort == "" {
		opts.Sort = "desc"
	}

	params := url.Values{}
	params.Set("chainid", opts.ChainID)
	params.Set("module", "stats")
	params.Set("action", "dailynewaddress")
	params.Set("apikey", e.apiKey)
	params.Set("sort", opts.Sort)
	if opts.StartDate != "" {
		params.Set("startdate", opts.StartDate)
	}
	if opts.EndDate != "" {
		params.Set("enddate", opts.EndDate)
	}

	payload, err := e.client.getJSON(ctx, e.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("etherscan daily new addresses: %w", err)
	}
	return payload, nil
}
