package ingest

import (
	"testing"
)

// Extract of a statement of financial position as exported from common
// accounting tools: label column, current year, comparative year.
const positionHTML = `
<html><body>
<table>
  <tr><th>Description</th><th>2023</th><th>2022</th></tr>
  <tr><td>Cash and bank balances</td><td>482,000</td><td>310,250</td></tr>
  <tr><td>Trade and other receivables</td><td>615,500</td><td>540,800</td></tr>
  <tr><td>Inventories</td><td>220,000</td><td>198,400</td></tr>
  <tr><td>Total current assets</td><td>1,317,500</td><td>1,049,450</td></tr>
  <tr><td>Total assets</td><td>S$ 1,500,000</td><td>S$ 1,230,000</td></tr>
  <tr><td>Accumulated losses</td><td>(45,200)</td><td>(61,300)</td></tr>
  <tr><td>Presentation currency</td><td>Singapore Dollars</td><td>Singapore Dollars</td></tr>
  <tr><td>Contingent liabilities</td><td>-</td><td>-</td></tr>
  <tr><td></td><td>999</td><td>999</td></tr>
</table>
</body></html>`

func TestParseStatementHTML(t *testing.T) {
	data, err := ParseStatementHTML(positionHTML)
	if err != nil {
		t.Fatalf("ParseStatementHTML failed: %v", err)
	}

	tests := []struct {
		field string
		want  interface{}
	}{
		{"CashAndBankBalances", 482000.0},
		{"TradeAndOtherReceivables", 615500.0},
		{"Inventories", 220000.0},
		{"TotalCurrentAssets", 1317500.0},
		{"TotalAssets", 1500000.0}, // currency prefix stripped
		{"AccumulatedLosses", -45200.0},
		{"PresentationCurrency", "Singapore Dollars"},
	}
	for _, tt := range tests {
		t.Run(tt.field, func(t *testing.T) {
			got, ok := data[tt.field]
			if !ok {
				t.Fatalf("field %s not extracted; got %v", tt.field, data)
			}
			if got != tt.want {
				t.Errorf("%s = %v (%T), want %v", tt.field, got, got, tt.want)
			}
		})
	}

	if _, ok := data["ContingentLiabilities"]; ok {
		t.Error("dash-only row extracted")
	}
	// header row: "Description" label with numeric-looking year columns
	if v, ok := data["Description"]; ok && v != 2023.0 {
		t.Errorf("header row handling changed: %v", v)
	}
}

func TestParseStatementHTMLFirstOccurrenceWins(t *testing.T) {
	html := `<table>
	  <tr><td>Total assets</td><td>1,500,000</td></tr>
	  <tr><td>Total assets</td><td>999</td></tr>
	</table>`
	data, err := ParseStatementHTML(html)
	if err != nil {
		t.Fatal(err)
	}
	if data["TotalAssets"] != 1500000.0 {
		t.Errorf("TotalAssets = %v, want first occurrence", data["TotalAssets"])
	}
}

func TestParseStatementHTMLNoTable(t *testing.T) {
	data, err := ParseStatementHTML("<p>narrative only</p>")
	if err != nil {
		t.Fatalf("ParseStatementHTML failed: %v", err)
	}
	if len(data) != 0 {
		t.Errorf("data = %v, want empty", data)
	}
}

func TestNormalizeLabel(t *testing.T) {
	tests := []struct {
		label string
		want  string
	}{
		{"Total assets", "TotalAssets"},
		{"Cash and bank balances", "CashAndBankBalances"},
		{"Property, plant and equipment", "PropertyPlantAndEquipment"},
		{"Trade & other payables", "TradeOtherPayables"},
		{"profit for the year", "ProfitForTheYear"},
		{"  Inventories  ", "Inventories"},
		{"---", ""},
	}
	for _, tt := range tests {
		if got := NormalizeLabel(tt.label); got != tt.want {
			t.Errorf("NormalizeLabel(%q) = %q, want %q", tt.label, got, tt.want)
		}
	}
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		text   string
		want   float64
		wantOK bool
	}{
		{"1,500,000", 1500000, true},
		{"482000", 482000, true},
		{"$ 75,000", 75000, true},
		{"S$ 75,000", 75000, true},
		{"(45,200)", -45200, true},
		{"0.5", 0.5, true},
		{"-", 0, false},
		{"—", 0, false},
		{"", 0, false},
		{"Singapore Dollars", 0, false},
	}
	for _, tt := range tests {
		got, ok := parseAmount(tt.text)
		if ok != tt.wantOK || got != tt.want {
			t.Errorf("parseAmount(%q) = %v, %v; want %v, %v", tt.text, got, ok, tt.want, tt.wantOK)
		}
	}
}
