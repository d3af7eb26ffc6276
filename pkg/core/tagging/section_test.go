package tagging

import (
	"testing"

	"xbrl_tagging/pkg/core/taxonomy"
)

// Mapped FY2023 statement of financial position for a small Singapore trading
// company. Values in SGD.
var merlionPosition = map[string]interface{}{
	"CashAndBankBalances":       482000.0,
	"TradeAndOtherReceivables":  615500.0,
	"Inventories":               220000.0,
	"TotalCurrentAssets":        1317500.0,
	"PropertyPlantAndEquipment": 182500.0,
	"TotalAssets":               1500000.0,
	"TradeAndOtherPayables":     390000.0,
	"TotalLiabilities":          600000.0,
	"ShareCapital":              500000.0,
	"RetainedEarnings":          400000.0,
	"TotalEquity":               900000.0,
}

func TestTagSectionMetaTags(t *testing.T) {
	deps := taxonomy.Default()

	section := TagSection("statementOfFinancialPosition", merlionPosition, deps)

	if len(section.MetaTags) != 1 {
		t.Fatalf("meta tags = %d, want 1", len(section.MetaTags))
	}
	if section.MetaTags[0].ElementName != "sg-as:StatementOfFinancialPositionAbstract" {
		t.Errorf("meta tag = %s", section.MetaTags[0].ElementName)
	}
}

func TestTagSectionNoMetaMatch(t *testing.T) {
	deps := taxonomy.Default()
	section := TagSection("customManagementSection", map[string]interface{}{"Revenue": 1.0}, deps)
	if len(section.MetaTags) != 0 {
		t.Errorf("unexpected meta tags: %v", section.MetaTags)
	}
	// empty, not nil: the JSON output shows [] for sections without abstracts
	if section.MetaTags == nil {
		t.Error("MetaTags is nil, want empty slice")
	}
}

func TestTagSectionFields(t *testing.T) {
	deps := taxonomy.Default()
	section := TagSection("statementOfFinancialPosition", merlionPosition, deps)

	if len(section.Fields) != len(merlionPosition) {
		t.Fatalf("tagged %d fields, want %d", len(section.Fields), len(merlionPosition))
	}

	assets := section.Fields["TotalAssets"]
	if assets == nil {
		t.Fatal("TotalAssets missing from tagged section")
	}
	if assets.Value != 1500000.0 {
		t.Errorf("TotalAssets value = %v", assets.Value)
	}
	if len(assets.Tags) == 0 || assets.Tags[0].ElementName != "sg-as:Assets" {
		t.Errorf("TotalAssets tags = %v", assets.Tags)
	}
}

func TestTagSectionSkipsNestedValues(t *testing.T) {
	deps := taxonomy.Default()

	data := map[string]interface{}{
		"TotalAssets": 1500000.0,
		// nested breakdowns are the recursive caller's job
		"PropertyPlantAndEquipment": map[string]interface{}{
			"Cost":                    300000.0,
			"AccumulatedDepreciation": -117500.0,
		},
		"MonthlyRevenue": []interface{}{100.0, 120.0, 90.0},
		"Notes":          [2]string{"a", "b"},
	}

	section := TagSection("statementOfFinancialPosition", data, deps)

	if len(section.Fields) != 1 {
		t.Fatalf("tagged %d fields, want 1 (nested values skipped)", len(section.Fields))
	}
	if _, ok := section.Fields["TotalAssets"]; !ok {
		t.Error("scalar field TotalAssets was skipped")
	}
}

func TestTagSectionScalarKinds(t *testing.T) {
	deps := taxonomy.Default()

	data := map[string]interface{}{
		"NameOfCompany":                        "Merlion Trading Pte Ltd",
		"WhetherFinancialStatementsAreAudited": true,
		"TotalAssets":                          1500000,
		"Inventories":                          nil, // nil is scalar, kept
	}
	section := TagSection("filingInformation", data, deps)
	if len(section.Fields) != 4 {
		t.Fatalf("tagged %d fields, want 4", len(section.Fields))
	}
	if section.Fields["Inventories"].Value != nil {
		t.Errorf("nil value not preserved: %v", section.Fields["Inventories"].Value)
	}
}
