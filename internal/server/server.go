// Package server exposes the pricing engine over HTTP.
//
// Unlike the CLI, the HTTP boundary is strict: a query parameter that fails
// to parse, or parameters outside the formula's domain, produce a 400
// response instead of a silent default or a NaN payload.
package server

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/contactkeval/option-pricer/internal/logger"
	"github.com/contactkeval/option-pricer/internal/pricing"
	"github.com/contactkeval/option-pricer/internal/report"
)

// Server prices options over HTTP, filling any omitted query field from a
// set of default parameters.
type Server struct {
	defaults pricing.Params
	router   *mux.Router
}

func New(defaults pricing.Params) *Server {
	s := &Server{defaults: defaults}

	r := mux.NewRouter()
	r.HandleFunc("/price", s.handlePrice).Methods(http.MethodGet)
	r.HandleFunc("/health", s.handleHealth).Methods(http.MethodGet)
	s.router = r

	return s
}

// Router returns the HTTP handler for mounting or serving.
func (s *Server) Router() http.Handler { return s.router }

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}

// handlePrice evaluates one quote. Query parameters: spot, strike, rate,
// sigma, expiry; each optional, defaulting to the server's configuration.
func (s *Server) handlePrice(w http.ResponseWriter, r *http.Request) {
	p := s.defaults

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
	for _, f := range fields {
		raw := r.URL.Query().Get(f.name)
		if raw == "" {
			continue
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			writeError(w, http.StatusBadRequest, "parameter "+f.name+"="+strconv.Quote(raw)+" is not a number")
			return
		}
		*f.dst = v
	}

	if err := p.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	logger.Debugf("pricing request %+v", p)

	rows := report.Rows([]pricing.Quote{pricing.Evaluate(p)})
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(rows[0])
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
