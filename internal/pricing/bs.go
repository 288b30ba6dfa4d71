// Package pricing implements closed-form Black-Scholes valuation for
// European options: price and delta for calls and puts, plus the standard
// normal distribution helpers the formula is built on.
//
// Every function here is pure and self-contained: d1/d2 are recomputed on
// each call, nothing is cached, and nothing is shared between calls, so
// evaluations are safe to run concurrently.
package pricing

import (
	"fmt"
	"math"
)

const sqrt2Pi = 2.5066282746310002

// OptionType distinguishes calls from puts.
type OptionType string

const (
	Call OptionType = "call"
	Put  OptionType = "put"
)

// Params holds the five scalar inputs of a single Black-Scholes evaluation.
//
//   - S: spot price of the underlying asset
//   - K: strike price of the option
//   - R: risk-free interest rate (annual)
//   - Sigma: volatility of the underlying asset (annual, as a decimal)
//   - T: time to expiry in years
//
// The pure formula functions never validate these; non-positive S, K, Sigma
// or T propagates as NaN or Inf through the result. Call Validate at the
// boundary when a hard error is preferable to a NaN.
type Params struct {
	S     float64 `json:"spot"`
	K     float64 `json:"strike"`
	R     float64 `json:"rate"`
	Sigma float64 `json:"sigma"`
	T     float64 `json:"expiry"`
}

// InvalidParameterError reports a parameter outside the formula's domain.
type InvalidParameterError struct {
	Name   string
	Value  float64
	Reason string
}

func (e *InvalidParameterError) Error() string {
	return fmt.Sprintf("invalid parameter %s=%g: %s", e.Name, e.Value, e.Reason)
}

// Validate returns an InvalidParameterError for the first parameter outside
// the formula's domain (S, K, Sigma and T must be strictly positive and
// finite), or nil if the parameters are safe to evaluate.
func (p Params) Validate() error {
	checks := []struct {
		name  string
		value float64
	}{
		{"spot", p.S},
		{"strike", p.K},
		{"sigma", p.Sigma},
		{"expiry", p.T},
	}
	for _, c := range checks {
		if math.IsNaN(c.value) || math.IsInf(c.value, 0) {
			return &InvalidParameterError{Name: c.name, Value: c.value, Reason: "must be finite"}
		}
		if c.value <= 0 {
			return &InvalidParameterError{Name: c.name, Value: c.value, Reason: "must be strictly positive"}
		}
	}
	if math.IsNaN(p.R) || math.IsInf(p.R, 0) {
		return &InvalidParameterError{Name: "rate", Value: p.R, Reason: "must be finite"}
	}
	return nil
}

// NormCDF computes the cumulative distribution function of the standard
// normal distribution for a given value x using the error function.
// It returns a value in [0,1] representing the probability that a standard
// normal random variable is less than or equal to x.
func NormCDF(x float64) float64 {
	return 0.5 * (1.0 + math.Erf(x/math.Sqrt2))
}

// NormPDF calculates the probability density function of the standard
// normal distribution at x: exp(-0.5*x^2) / sqrt(2π).
func NormPDF(x float64) float64 {
	return math.Exp(-0.5*x*x) / sqrt2Pi
}

// D1D2 computes the two standardized moneyness terms of the Black-Scholes
// formula:
//
//	d1 = (ln(S/K) + (r + sigma²/2)·T) / (sigma·√T)
//	d2 = d1 - sigma·√T
//
// The result is NaN or Inf when sigma or T is zero or negative, or when
// S/K is not a positive ratio; callers must guard or accept the propagated
// value.
func D1D2(S, K, r, sigma, T float64) (d1, d2 float64) {
	sqrtT := math.Sqrt(T)
	d1 = (math.Log(S/K) + (r+0.5*sigma*sigma)*T) / (sigma * sqrtT)
	d2 = d1 - sigma*sqrtT
	return d1, d2
}

// CallPrice returns the Black-Scholes price of a European call:
// S·N(d1) - K·e^(-rT)·N(d2).
func CallPrice(S, K, r, sigma, T float64) float64 {
	d1, d2 := D1D2(S, K, r, sigma, T)
	return S*NormCDF(d1) - K*math.Exp(-r*T)*NormCDF(d2)
}

// PutPrice returns the Black-Scholes price of a European put:
// K·e^(-rT)·N(-d2) - S·N(-d1).
func PutPrice(S, K, r, sigma, T float64) float64 {
	d1, d2 := D1D2(S, K, r, sigma, T)
	return K*math.Exp(-r*T)*NormCDF(-d2) - S*NormCDF(-d1)
}

// CallDelta returns N(d1), the sensitivity of the call price to the spot,
// in [0,1] for valid inputs.
func CallDelta(S, K, r, sigma, T float64) float64 {
	d1, _ := D1D2(S, K, r, sigma, T)
	return NormCDF(d1)
}

// PutDelta returns N(d1) - 1, the sensitivity of the put price to the spot,
// in [-1,0] for valid inputs.
func PutDelta(S, K, r, sigma, T float64) float64 {
	return CallDelta(S, K, r, sigma, T) - 1
}

// Price dispatches to CallPrice or PutPrice by option type.
// Anything other than Put is priced as a call.
func Price(typ OptionType, S, K, r, sigma, T float64) float64 {
	if typ == Put {
		return PutPrice(S, K, r, sigma, T)
	}
	return CallPrice(S, K, r, sigma, T)
}

// Delta dispatches to CallDelta or PutDelta by option type.
func Delta(typ OptionType, S, K, r, sigma, T float64) float64 {
	if typ == Put {
		return PutDelta(S, K, r, sigma, T)
	}
	return CallDelta(S, K, r, sigma, T)
}

// Quote is the result of one full evaluation: both prices and both deltas
// for a single set of parameters.
type Quote struct {
	Params
	CallPrice float64 `json:"call_price"`
	PutPrice  float64 `json:"put_price"`
	CallDelta float64 `json:"call_delta"`
	PutDelta  float64 `json:"put_delta"`
}

// Evaluate prices the call and put side of p in one pass.
func Evaluate(p Params) Quote {
	return Quote{
		Params:    p,
		CallPrice: CallPrice(p.S, p.K, p.R, p.Sigma, p.T),
		PutPrice:  PutPrice(p.S, p.K, p.R, p.Sigma, p.T),
		CallDelta: CallDelta(p.S, p.K, p.R, p.Sigma, p.T),
		PutDelta:  PutDelta(p.S, p.K, p.R, p.Sigma, p.T),
	}
}

// Ladder evaluates p across a strike ladder of 2*width+1 strikes centered
// on p.K and spaced step apart, lowest strike first. Strikes that would be
// non-positive are skipped.
func Ladder(p Params, width int, step float64) []Quote {
	quotes := make([]Quote, 0, 2*width+1)
	for i := -width; i <= width; i++ {
		strike := p.K + float64(i)*step
		if strike <= 0 {
			continue
		}
		q := p
		q.K = strike
		quotes = append(quotes, Evaluate(q))
	}
	return quotes
}
