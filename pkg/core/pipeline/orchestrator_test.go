package pipeline

import (
	"context"
	"testing"
	"time"

	"xbrl_tagging/pkg/core/taxonomy"
)

// Mapped FY2023 filing for a small Singapore trading company, the shape the
// mapping agent hands over. Values in SGD.
func merlionFiling() FilingInput {
	return FilingInput{
		EntityName:       "Merlion Trading Pte Ltd",
		EntityIdentifier: "201812345A",
		PeriodStart:      time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC),
		PeriodEnd:        time.Date(2023, 12, 31, 0, 0, 0, 0, time.UTC),
		IsConsolidated:   false,
		Sections: map[string]map[string]interface{}{
			"filingInformation": {
				"NameOfCompany":                        "Merlion Trading Pte Ltd",
				"UniqueEntityNumber":                   "201812345A",
				"CurrentPeriodStartDate":               "2023-01-01",
				"CurrentPeriodEndDate":                 "2023-12-31",
				"DescriptionOfPresentationCurrency":    "SGD",
				"WhetherFinancialStatementsAreAudited": true,
			},
			"statementOfFinancialPosition": {
				"CashAndBankBalances":      482000.0,
				"TradeAndOtherReceivables": 615500.0,
				"Inventories":              220000.0,
				"TotalCurrentAssets":       1317500.0,
				"TotalAssets":              1500000.0,
				"TradeAndOtherPayables":    390000.0,
				"TotalLiabilities":         600000.0,
				"ShareCapital":             500000.0,
				"RetainedEarnings":         400000.0,
				"TotalEquity":              900000.0,
			},
			"incomeStatement": {
				"Revenue":          2750000.0,
				"CostOfSales":      1980000.0,
				"GrossProfit":      770000.0,
				"ProfitForTheYear": 310000.0,
			},
		},
	}
}

func TestRunCompleteFiling(t *testing.T) {
	orchestrator := NewOrchestrator(taxonomy.Default())

	result, err := orchestrator.Run(context.Background(), merlionFiling())
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if result.RunID == "" {
		t.Error("RunID is empty")
	}

	if len(result.Contexts) != 2 {
		t.Fatalf("contexts = %d, want instant + duration", len(result.Contexts))
	}
	if result.Contexts[0].ID != "ctx_i20231231_s" {
		t.Errorf("instant context ID = %s", result.Contexts[0].ID)
	}
	if result.Contexts[1].ID != "ctx_d20230101to20231231_s" {
		t.Errorf("duration context ID = %s", result.Contexts[1].ID)
	}

	if len(result.Document) != 3 {
		t.Fatalf("document sections = %d, want 3", len(result.Document))
	}
	position := result.Document["statementOfFinancialPosition"]
	if position == nil {
		t.Fatal("statementOfFinancialPosition missing from document")
	}
	if len(position.MetaTags) == 0 {
		t.Error("position section has no meta tags")
	}
	assets := position.Fields["TotalAssets"]
	if assets == nil || len(assets.Tags) == 0 || assets.Tags[0].ElementName != "sg-as:Assets" {
		t.Errorf("TotalAssets = %+v", assets)
	}

	// Every mandatory concept is present, so validation is clean.
	if len(result.Issues) != 0 {
		t.Errorf("issues = %v", result.Issues)
	}

	if result.Balance == nil {
		t.Fatal("balance check missing")
	}
	if !result.Balance.IsBalanced {
		t.Errorf("balance check failed: %+v", result.Balance)
	}

	if result.Report == "" {
		t.Error("report is empty")
	}
	t.Logf("run %s: %d contexts, %s", result.RunID, len(result.Contexts), result.Duration)
}

func TestRunInstantOnlyWithoutPeriodStart(t *testing.T) {
	orchestrator := NewOrchestrator(taxonomy.Default())

	input := merlionFiling()
	input.PeriodStart = time.Time{}

	result, err := orchestrator.Run(context.Background(), input)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if len(result.Contexts) != 1 {
		t.Fatalf("contexts = %d, want 1", len(result.Contexts))
	}
	if result.Contexts[0].ID != "ctx_i20231231_s" {
		t.Errorf("context ID = %s", result.Contexts[0].ID)
	}
}

func TestRunSurfacesValidationIssues(t *testing.T) {
	orchestrator := NewOrchestrator(taxonomy.Default())

	input := merlionFiling()
	delete(input.Sections["incomeStatement"], "Revenue")
	input.Sections["incomeStatement"]["FreightCharges"] = 15000.0 // no taxonomy concept

	result, err := orchestrator.Run(context.Background(), input)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	var missingMandatory, missingTags bool
	for _, issue := range result.Issues {
		switch {
		case issue.Type == "missing_mandatory_field" && issue.Field == "Revenue":
			missingMandatory = true
		case issue.Type == "missing_tags" && issue.Field == "FreightCharges":
			missingTags = true
		}
	}
	if !missingMandatory {
		t.Errorf("missing Revenue not reported: %v", result.Issues)
	}
	if !missingTags {
		t.Errorf("untagged FreightCharges not reported: %v", result.Issues)
	}
}

func TestRunRejectsInvalidPeriod(t *testing.T) {
	orchestrator := NewOrchestrator(taxonomy.Default())

	input := merlionFiling()
	input.PeriodStart = input.PeriodEnd.AddDate(1, 0, 0)

	if _, err := orchestrator.Run(context.Background(), input); err == nil {
		t.Error("inverted period accepted")
	}
}

func TestRunDimensionsFlowIntoContexts(t *testing.T) {
	orchestrator := NewOrchestrator(taxonomy.Default())

	input := merlionFiling()
	input.IsConsolidated = true
	input.Dimensions = map[string]string{"segment": "retail", "region": "apac"}

	result, err := orchestrator.Run(context.Background(), input)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	want := "ctx_i20231231_c_region-apac_segment-retail"
	if result.Contexts[0].ID != want {
		t.Errorf("context ID = %s, want %s", result.Contexts[0].ID, want)
	}
}

func TestRunConcurrentSectionsMergeCompletely(t *testing.T) {
	// Many sections tagged in parallel must all land in the document.
	orchestrator := NewOrchestrator(taxonomy.Default())

	input := merlionFiling()
	input.Sections = map[string]map[string]interface{}{}
	names := []string{
		"filingInformation", "statementOfFinancialPosition", "incomeStatement",
		"statementOfCashFlows", "notesToFinancialStatements", "directorsStatement",
		"independentAuditorsReport", "extraScheduleA", "extraScheduleB", "extraScheduleC",
	}
	for _, name := range names {
		input.Sections[name] = map[string]interface{}{"TotalAssets": 1.0}
	}

	result, err := orchestrator.Run(context.Background(), input)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if len(result.Document) != len(names) {
		t.Fatalf("document sections = %d, want %d", len(result.Document), len(names))
	}
	for _, name := range names {
		if result.Document[name] == nil {
			t.Errorf("section %s lost in merge", name)
		}
	}
}

func TestRunCancelledContext(t *testing.T) {
	orchestrator := NewOrchestrator(taxonomy.Default())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := orchestrator.Run(ctx, merlionFiling()); err == nil {
		t.Error("cancelled context accepted")
	}
}

func TestSetConfig(t *testing.T) {
	orchestrator := NewOrchestrator(taxonomy.Default())
	orchestrator.SetConfig(Config{BalanceTolerance: 5000, BalanceSheetSection: "statementOfFinancialPosition"})

	input := merlionFiling()
	input.Sections["statementOfFinancialPosition"]["TotalEquity"] = 898000.0 // off by 2000

	result, err := orchestrator.Run(context.Background(), input)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if result.Balance == nil || !result.Balance.IsBalanced {
		t.Errorf("widened tolerance not applied: %+v", result.Balance)
	}
}
