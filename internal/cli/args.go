// Package cli implements the positional argument contract of the pricer.
package cli

import (
	"strconv"

	"github.com/contactkeval/option-pricer/internal/logger"
	"github.com/contactkeval/option-pricer/internal/pricing"
)

// ParseParams applies the positional contract `<S> <K> <r> <sigma> <T>` on
// top of the supplied defaults. An argument that fails to parse as a number
// keeps that parameter's default value rather than failing; each fallback
// is recorded at Debug level. Missing trailing arguments likewise keep
// their defaults.
func ParseParams(args []string, defaults pricing.Params) pricing.Params {
	p := defaults
	if len(args) == 0 {
		return p
	}

	fields := []struct {
		name string
		dst  *float64
	}{
		{"spot", &p.S},
		{"strike", &p.K},
		{"rate", &p.R},
		{"sigma", &p.Sigma},
		{"expiry", &p.T},
	}

	for i, f := range fields {
		if i >= len(args) {
			break
		}
		v, err := strconv.ParseFloat(args[i], 64)
		if err != nil {
			logger.Debugf("argument %d (%s) %q is not a number, keeping default %g", i+1, f.name, args[i], *f.dst)
			continue
		}
		*f.dst = v
	}
	if len(args) > len(fields) {
		logger.Debugf("ignoring %d extra argument(s)", len(args)-len(fields))
	}
	return p
}
