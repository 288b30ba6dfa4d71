// Package data provides market data provider implementations used to
// resolve the spot price of an underlying symbol.
package data

import (
	"fmt"
	"strings"
)

// Provider supplies market data.
type Provider interface {
	Secondary() Provider
	// GetSpot returns the most recent close price for the underlying symbol.
	GetSpot(symbol string) (float64, error)
}

// NewProvider constructs a provider by name. An unknown name is an error;
// "polygon" requires a non-empty API key.
func NewProvider(name, apiKey string) (Provider, error) {
	switch strings.ToLower(name) {
	case "polygon":
		if apiKey == "" {
			return nil, fmt.Errorf("polygon provider requires an API key")
		}
		return NewPolygonDataProvider(apiKey), nil
	case "", "synthetic":
		return NewSyntheticProvider(), nil
	default:
		return nil, fmt.Errorf("unknown data provider %q", name)
	}
}
