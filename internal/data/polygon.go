package data

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/contactkeval/option-pricer/internal/logger"
)

// polygonDataProvider implements Provider using the Polygon.io API.
type polygonDataProvider struct {
	apiKey    string
	client    *http.Client
	baseURL   string
	secondary Provider
}

func NewPolygonDataProvider(apiKey string) Provider {
	return &polygonDataProvider{
		apiKey:  apiKey,
		client:  &http.Client{Timeout: 30 * time.Second},
		baseURL: "https://api.polygon.io",
	}
}

func (polygonDataProv *polygonDataProvider) Secondary() Provider {
	return polygonDataProv.secondary
}

// GetSpot fetches the previous daily close for the symbol.
func (polygonDataProv *polygonDataProvider) GetSpot(symbol string) (float64, error) {
	url := fmt.Sprintf("%s/v2/aggs/ticker/%s/prev?adjusted=true&apiKey=%s",
		polygonDataProv.baseURL, symbol, polygonDataProv.apiKey)

	logger.Debugf("fetching previous close for %s", symbol)

	req, _ := http.NewRequest("GET", url, nil)
	resp, err := polygonDataProv.client.Do(req)
	if err != nil {
		return polygonDataProv.fallback(symbol, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != 200 {
		return polygonDataProv.fallback(symbol, fmt.Errorf("polygon prev close status %d", resp.StatusCode))
	}

	var body struct {
		Results []struct {
			Close float64 `json:"c"`
		} `json:"results"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return polygonDataProv.fallback(symbol, err)
	}
	if len(body.Results) == 0 {
		return polygonDataProv.fallback(symbol, fmt.Errorf("no previous close for %s", symbol))
	}
	return body.Results[0].Close, nil
}

func (polygonDataProv *polygonDataProvider) fallback(symbol string, err error) (float64, error) {
	if polygonDataProv.secondary != nil {
		logger.Debugf("polygon lookup for %s failed (%v), trying secondary", symbol, err)
		return polygonDataProv.secondary.GetSpot(symbol)
	}
	return 0, err
}
