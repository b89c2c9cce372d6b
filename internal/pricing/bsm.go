// Package pricing implements the Black-Scholes-Merton closed-form model
// for European options.
//
// The package is a pure computation core: it validates the five market
// parameters, derives the d1/d2 intermediates, and applies the two
// closed-form equations. It performs no I/O and keeps no state, so every
// function is reentrant and safe for concurrent use.
package pricing

import (
	"fmt"
	"math"
)

// Parameters holds the five scalar inputs of the BSM model.
// A value is built once per pricing request and never mutated.
type Parameters struct {
	Spot         float64 `json:"spot" yaml:"spot"`                     // S, current price of the underlying
	Strike       float64 `json:"strike" yaml:"strike"`                 // K
	TimeToExpiry float64 `json:"time_to_expiry" yaml:"time_to_expiry"` // T, in years
	RiskFreeRate float64 `json:"risk_free_rate" yaml:"risk_free_rate"` // r, annualized continuous rate
	Volatility   float64 `json:"volatility" yaml:"volatility"`         // sigma, annualized
}

// Result holds the theoretical call and put prices for one parameter set.
//
// Both values are mathematically non-negative for valid inputs, but the
// raw formula output is returned without clamping, so prices very close
// to zero may come out weakly negative due to floating-point rounding.
type Result struct {
	CallPrice float64 `json:"call_price"`
	PutPrice  float64 `json:"put_price"`
}

// InvalidParameterError reports a parameter that violates its constraint.
// Callers can detect it with errors.As; retrying without corrected input
// would reproduce the same failure.
type InvalidParameterError struct {
	Param      string  // e.g. "spot price"
	Value      float64 // the offending value
	Constraint string  // e.g. "positive"
}

func (e *InvalidParameterError) Error() string {
	return fmt.Sprintf("%s must be %s, got %g", e.Param, e.Constraint, e.Value)
}

// Validate checks the model's preconditions: spot, strike, time to expiry
// and volatility must be strictly positive, the risk-free rate only has to
// be finite (negative rates are legitimate).
func (p Parameters) Validate() error {
	// the !(x > 0) form also rejects NaN
	switch {
	case !(p.Spot > 0):
		return &InvalidParameterError{Param: "spot price", Value: p.Spot, Constraint: "positive"}
	case !(p.Strike > 0):
		return &InvalidParameterError{Param: "strike price", Value: p.Strike, Constraint: "positive"}
	case !(p.TimeToExpiry > 0):
		return &InvalidParameterError{Param: "time to expiry", Value: p.TimeToExpiry, Constraint: "positive"}
	case !(p.Volatility > 0):
		return &InvalidParameterError{Param: "volatility", Value: p.Volatility, Constraint: "positive"}
	case math.IsNaN(p.RiskFreeRate) || math.IsInf(p.RiskFreeRate, 0):
		return &InvalidParameterError{Param: "risk-free rate", Value: p.RiskFreeRate, Constraint: "finite"}
	}
	return nil
}

// d1d2 derives the two standardized intermediates. Validation guarantees
// sigma*sqrt(T) > 0 and S/K > 0, so both values are always well-defined.
func d1d2(p Parameters) (d1, d2 float64) {
	sqrtT := math.Sqrt(p.TimeToExpiry)
	d1 = (math.Log(p.Spot/p.Strike) + (p.RiskFreeRate+0.5*p.Volatility*p.Volatility)*p.TimeToExpiry) /
		(p.Volatility * sqrtT)
	d2 = d1 - p.Volatility*sqrtT
	return d1, d2
}

// Price computes the theoretical BSM call and put prices for p.
//
// It returns an *InvalidParameterError when a precondition is violated;
// once validation passes the computation cannot fail.
func Price(p Parameters) (Result, error) {
	if err := p.Validate(); err != nil {
		return Result{}, err
	}

	d1, d2 := d1d2(p)
	discount := math.Exp(-p.RiskFreeRate * p.TimeToExpiry)

	return Result{
		CallPrice: p.Spot*NormalCDF(d1) - p.Strike*discount*NormalCDF(d2),
		PutPrice:  p.Strike*discount*NormalCDF(-d2) - p.Spot*NormalCDF(-d1),
	}, nil
}
