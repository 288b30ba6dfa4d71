// Package report writes quote ladders to JSON and CSV files.
package report

import (
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/shopspring/decimal"

	"github.com/contactkeval/option-pricer/internal/pricing"
)

// Row is one quote with every numeric field rendered to 4 decimal places.
type Row struct {
	Spot      string `json:"spot"`
	Strike    string `json:"strike"`
	CallPrice string `json:"call_price"`
	PutPrice  string `json:"put_price"`
	CallDelta string `json:"call_delta"`
	PutDelta  string `json:"put_delta"`
}

func fixed(v float64) string {
	return decimal.NewFromFloat(v).StringFixed(4)
}

// Rows converts quotes into rounded report rows.
func Rows(quotes []pricing.Quote) []Row {
	rows := make([]Row, 0, len(quotes))
	for _, q := range quotes {
		rows = append(rows, Row{
			Spot:      fixed(q.S),
			Strike:    fixed(q.K),
			CallPrice: fixed(q.CallPrice),
			PutPrice:  fixed(q.PutPrice),
			CallDelta: fixed(q.CallDelta),
			PutDelta:  fixed(q.PutDelta),
		})
	}
	return rows
}

// WriteJSON writes quotes.json into outdir.
func WriteJSON(quotes []pricing.Quote, outdir string) error {
	b, err := json.MarshalIndent(Rows(quotes), "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(outdir, "quotes.json"), b, 0644)
}

// WriteCSV writes quotes.csv into outdir.
func WriteCSV(quotes []pricing.Quote, outdir string) error {
	f, err := os.Create(filepath.Join(outdir, "quotes.csv"))
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	headers := []string{"spot", "strike", "call_price", "put_price", "call_delta", "put_delta"}
	if err := w.Write(headers); err != nil {
		return err
	}
	for _, row := range Rows(quotes) {
		rec := []string{row.Spot, row.Strike, row.CallPrice, row.PutPrice, row.CallDelta, row.PutDelta}
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	return nil
}
