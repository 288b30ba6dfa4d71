package data

import (
	"math/rand"
)

// synthDataProvider implements Provider generating synthetic data.
type synthDataProvider struct {
	secondary Provider
}

func NewSyntheticProvider() Provider { return &synthDataProvider{} }

func (synthDataProv *synthDataProvider) Secondary() Provider {
	return synthDataProv.secondary
}

// GetSpot draws a spot around 100 with mild lognormal-ish noise.
func (synthDataProv *synthDataProvider) GetSpot(symbol string) (float64, error) {
	if synthDataProv.secondary != nil {
		return synthDataProv.secondary.GetSpot(symbol)
	}
	return 100.0 * (1 + rand.NormFloat64()*0.05), nil
}
