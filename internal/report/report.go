// Package report formats and writes pricing results.
package report

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/contactkeval/option-pricer/internal/pricing"
)

// Quote pairs the input parameters with the prices they produced.
type Quote struct {
	Params pricing.Parameters `json:"parameters"`
	Result pricing.Result     `json:"result"`
}

// Render produces the user-facing result block: the inputs echoed back,
// then the two prices. Monetary values are formatted through decimal to
// keep the output free of binary-float noise.
func Render(q Quote) string {
	money := func(v float64) string { return "$" + decimal.NewFromFloat(v).StringFixed(2) }
	frac := func(v float64) string { return decimal.NewFromFloat(v).StringFixed(4) }
	rule := strings.Repeat("-", 25)

	var b strings.Builder
	fmt.Fprintf(&b, "--- Results ---\n")
	fmt.Fprintf(&b, "Input parameters:\n")
	fmt.Fprintf(&b, "  Spot price (S):      %s\n", money(q.Params.Spot))
	fmt.Fprintf(&b, "  Strike price (K):    %s\n", money(q.Params.Strike))
	fmt.Fprintf(&b, "  Time to expiry (T):  %s years\n", frac(q.Params.TimeToExpiry))
	fmt.Fprintf(&b, "  Risk-free rate (r):  %s\n", frac(q.Params.RiskFreeRate))
	fmt.Fprintf(&b, "  Volatility (sigma):  %s\n", frac(q.Params.Volatility))
	fmt.Fprintf(&b, "%s\n", rule)
	fmt.Fprintf(&b, "European call price: $%s\n", frac(q.Result.CallPrice))
	fmt.Fprintf(&b, "European put price:  $%s\n", frac(q.Result.PutPrice))
	fmt.Fprintf(&b, "%s\n", rule)
	return b.String()
}

// WriteJSON writes quote.json into outdir.
func WriteJSON(q Quote, outdir string) error {
	b, err := json.MarshalIndent(q, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(outdir, "quote.json"), b, 0644)
}

// WriteCSV writes quote.csv into outdir, one header row and one data row.
func WriteCSV(q Quote, outdir string) error {
	f, err := os.Create(filepath.Join(outdir, "quote.csv"))
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	headers := []string{"spot", "strike", "time_to_expiry", "risk_free_rate", "volatility", "call_price", "put_price"}
	if err := w.Write(headers); err != nil {
		return err
	}
	row := []string{
		decimal.NewFromFloat(q.Params.Spot).StringFixed(4),
		decimal.NewFromFloat(q.Params.Strike).StringFixed(4),
		decimal.NewFromFloat(q.Params.TimeToExpiry).StringFixed(6),
		decimal.NewFromFloat(q.Params.RiskFreeRate).StringFixed(6),
		decimal.NewFromFloat(q.Params.Volatility).StringFixed(6),
		decimal.NewFromFloat(q.Result.CallPrice).StringFixed(6),
		decimal.NewFromFloat(q.Result.PutPrice).StringFixed(6),
	}
	if err := w.Write(row); err != nil {
		return err
	}
	w.Flush()
	return w.Error()
}
