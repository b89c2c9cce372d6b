// Package input gathers pricing parameters for the shell, either from an
// interactive prompt loop or from a YAML scenario file.
//
// Prompted values are arithmetic expressions, so "30/365" or "0.5*0.4"
// are accepted wherever a number is expected.
package input

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	"github.com/Knetic/govaluate"
	"gopkg.in/yaml.v2"

	"github.com/contactkeval/option-pricer/internal/pricing"
)

// ErrMalformedInput marks text that does not evaluate to a number.
// It is a shell-side concern only: the pricing core never sees it.
var ErrMalformedInput = errors.New("malformed input")

// EvalNumber evaluates a constant arithmetic expression to a float64.
func EvalNumber(text string) (float64, error) {
	expr, err := govaluate.NewEvaluableExpression(strings.TrimSpace(text))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrMalformedInput, text)
	}
	result, err := expr.Evaluate(nil)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrMalformedInput, text)
	}
	f, ok := result.(float64)
	if !ok || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("%w: %q does not evaluate to a finite number", ErrMalformedInput, text)
	}
	return f, nil
}

// Reader prompts for parameters over arbitrary streams, which keeps the
// prompt loop testable without a terminal.
type Reader struct {
	in  *bufio.Scanner
	out io.Writer
}

func NewReader(in io.Reader, out io.Writer) *Reader {
	return &Reader{in: bufio.NewScanner(in), out: out}
}

// Prompt collects the five parameters interactively. Malformed input and
// out-of-range values are re-prompted; the only terminal error is an
// exhausted input stream.
func (r *Reader) Prompt() (pricing.Parameters, error) {
	var p pricing.Parameters
	var err error

	if p.Spot, err = r.promptPositive("Current stock price (S): $"); err != nil {
		return pricing.Parameters{}, err
	}
	if p.Strike, err = r.promptPositive("Option strike price (K): $"); err != nil {
		return pricing.Parameters{}, err
	}
	if p.TimeToExpiry, err = r.promptPositive("Time to expiry (T, in years, e.g. 0.5 or 30/365): "); err != nil {
		return pricing.Parameters{}, err
	}
	if p.RiskFreeRate, err = r.promptValue("Risk-free rate (r, decimal, e.g. 0.05 for 5%): "); err != nil {
		return pricing.Parameters{}, err
	}
	if p.Volatility, err = r.promptPositive("Volatility (sigma, decimal, e.g. 0.30 for 30%): "); err != nil {
		return pricing.Parameters{}, err
	}
	return p, nil
}

// promptValue reads lines until one evaluates to a number.
func (r *Reader) promptValue(label string) (float64, error) {
	for {
		fmt.Fprint(r.out, label)
		if !r.in.Scan() {
			if err := r.in.Err(); err != nil {
				return 0, err
			}
			return 0, io.EOF
		}
		v, err := EvalNumber(r.in.Text())
		if err != nil {
			fmt.Fprintln(r.out, "Error: invalid input, please enter a number.")
			continue
		}
		return v, nil
	}
}

// promptPositive additionally re-prompts until the value is > 0.
func (r *Reader) promptPositive(label string) (float64, error) {
	for {
		v, err := r.promptValue(label)
		if err != nil {
			return 0, err
		}
		if v <= 0 {
			fmt.Fprintln(r.out, "Error: value must be positive.")
			continue
		}
		return v, nil
	}
}

// LoadScenario reads a YAML file holding the five parameters.
// The parameters are returned unvalidated; the pricing core owns the
// constraint checks.
func LoadScenario(path string) (pricing.Parameters, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return pricing.Parameters{}, fmt.Errorf("reading scenario: %w", err)
	}
	var p pricing.Parameters
	if err := yaml.UnmarshalStrict(b, &p); err != nil {
		return pricing.Parameters{}, fmt.Errorf("invalid scenario file %s: %w", path, err)
	}
	return p, nil
}
