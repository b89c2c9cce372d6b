// Package handlers exposes the pricer over HTTP.
package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/contactkeval/option-pricer/internal/logger"
	"github.com/contactkeval/option-pricer/internal/pricing"
	"github.com/contactkeval/option-pricer/internal/report"
)

// NewRouter wires the pricing routes.
func NewRouter() *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/price", PriceHandler).Methods(http.MethodGet)
	r.HandleFunc("/health", HealthHandler).Methods(http.MethodGet)
	return r
}

func HealthHandler(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

// PriceHandler prices one contract from query parameters:
//
//	GET /price?spot=100&strike=105&t=0.5&r=0.05&vol=0.30
//
// Malformed numbers and validation failures both map to 400; the
// validation message names the offending parameter.
func PriceHandler(w http.ResponseWriter, req *http.Request) {
	params, err := paramsFromQuery(req.URL.Query())
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	res, err := pricing.Price(params)
	if err != nil {
		var ipe *pricing.InvalidParameterError
		if errors.As(err, &ipe) {
			http.Error(w, ipe.Error(), http.StatusBadRequest)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	logger.Debugf("priced spot=%g strike=%g t=%g r=%g vol=%g -> call=%g put=%g",
		params.Spot, params.Strike, params.TimeToExpiry, params.RiskFreeRate, params.Volatility,
		res.CallPrice, res.PutPrice)

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(report.Quote{Params: params, Result: res})
}

func paramsFromQuery(q url.Values) (pricing.Parameters, error) {
	var p pricing.Parameters
	var err error

	if p.Spot, err = queryFloat(q, "spot"); err != nil {
		return pricing.Parameters{}, err
	}
	if p.Strike, err = queryFloat(q, "strike"); err != nil {
		return pricing.Parameters{}, err
	}
	if p.TimeToExpiry, err = queryFloat(q, "t"); err != nil {
		return pricing.Parameters{}, err
	}
	if p.RiskFreeRate, err = queryFloat(q, "r"); err != nil {
		return pricing.Parameters{}, err
	}
	if p.Volatility, err = queryFloat(q, "vol"); err != nil {
		return pricing.Parameters{}, err
	}
	return p, nil
}

func queryFloat(q url.Values, name string) (float64, error) {
	raw := q.Get(name)
	if raw == "" {
		return 0, fmt.Errorf("missing query parameter %q", name)
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("query parameter %q is not a number: %q", name, raw)
	}
	return v, nil
}
