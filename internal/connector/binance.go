package connector

import (
	"context"
	"fmt"
	"net/url"
	"strings"
)

// Binance fetches public market data from the Binance futures REST API.
type Binance struct {
	client  *Client
	baseURL string
}

// NewBinance creates a Binance connector.
func NewBinance(client *Client, baseURL string) *Binance {
	return &Binance{client: client, baseURL: strings.TrimRight(baseURL, "/")}
}

// Ticker24h returns 24-hour rolling ticker statistics for a trading pair
// (priceChange, priceChangePercent, weightedAvgPrice, lastPrice, volume and
// more), passed through as decoded JSON.
func (b *Binance) Ticker24h(ctx context.Context, symbol string) (any, error) {
	params := url.Values{}
	params.Set("symbol", strings.ToUpper(symbol))

	payload, err := b.client.getJSON(ctx, b.baseURL+"/ticker/24hr?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("binance ticker: %w", err)
	}
	return payload, nil
}
