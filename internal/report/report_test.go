package report

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/contactkeval/option-pricer/internal/pricing"
	"github.com/contactkeval/option-pricer/internal/testutil"
)

func ladderQuotes() []pricing.Quote {
	p := pricing.Params{S: 100, K: 100, R: 0.05, Sigma: 0.2, T: 1.0}
	return pricing.Ladder(p, 2, 5)
}

func TestRowsGolden(t *testing.T) {
	testutil.CompareWithGolden(t, "ladder", Rows(ladderQuotes()))
}

func TestWriteCSV(t *testing.T) {
	dir := t.TempDir()
	quotes := ladderQuotes()
	if err := WriteCSV(quotes, dir); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}

	f, err := os.Open(filepath.Join(dir, "quotes.csv"))
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("reading csv: %v", err)
	}
	if len(records) != len(quotes)+1 {
		t.Fatalf("expected %d records, got %d", len(quotes)+1, len(records))
	}
	if records[0][2] != "call_price" {
		t.Fatalf("unexpected header row: %v", records[0])
	}
	// ATM row matches the reference scenario.
	atm := records[3]
	if atm[1] != "100.0000" || atm[2] != "10.4506" || atm[3] != "5.5735" {
		t.Fatalf("unexpected ATM row: %v", atm)
	}
}

func TestWriteJSON(t *testing.T) {
	dir := t.TempDir()
	if err := WriteJSON(ladderQuotes(), dir); err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}
	b, err := os.ReadFile(filepath.Join(dir, "quotes.json"))
	if err != nil {
		t.Fatal(err)
	}
	if len(b) == 0 {
		t.Fatal("quotes.json is empty")
	}
}
