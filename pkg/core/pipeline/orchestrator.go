// Package pipeline drives a full tagging run: reporting contexts, section
// tagging and document validation, assembled into one filing result.
package pipeline

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"xbrl_tagging/pkg/core/tagging"
	"xbrl_tagging/pkg/core/taxonomy"
	"xbrl_tagging/pkg/core/validate"
)

// FilingInput is one mapped filing ready for tagging: entity identity, the
// reporting period and the mapped statement sections keyed by section name.
type FilingInput struct {
	EntityName       string                            `json:"entity_name"`
	EntityIdentifier string                            `json:"entity_identifier"`
	PeriodStart      time.Time                         `json:"period_start"`
	PeriodEnd        time.Time                         `json:"period_end"`
	IsConsolidated   bool                              `json:"is_consolidated"`
	Dimensions       map[string]string                 `json:"dimensions,omitempty"`
	Sections         map[string]map[string]interface{} `json:"sections"`
}

// FilingResult is the assembled outcome of one run.
type FilingResult struct {
	RunID     string                       `json:"run_id"`
	Contexts  []*tagging.ContextDescriptor `json:"contexts"`
	Document  tagging.TaggedDocument       `json:"document"`
	Issues    []validate.ValidationIssue   `json:"issues"`
	Balance   *validate.BalanceCheck       `json:"balance_check,omitempty"`
	Report    string                       `json:"report"`
	StartedAt time.Time                    `json:"started_at"`
	Duration  time.Duration                `json:"duration"`
}

// Config tunes a run.
type Config struct {
	BalanceTolerance float64 // allowed gap for A = L + E
	// Section name holding the statement of financial position, for the
	// accounting-equation check.
	BalanceSheetSection string
}

// Orchestrator runs tagging over an immutable taxonomy registry. Safe for
// concurrent use; runs share nothing but the registry.
type Orchestrator struct {
	deps   *taxonomy.Dependencies
	config Config
}

// NewOrchestrator creates an orchestrator over the given registry.
func NewOrchestrator(deps *taxonomy.Dependencies) *Orchestrator {
	return &Orchestrator{
		deps: deps,
		config: Config{
			BalanceTolerance:    0.1, // rounding differences in mapped data
			BalanceSheetSection: "statementOfFinancialPosition",
		},
	}
}

// SetConfig replaces the run configuration.
func (o *Orchestrator) SetConfig(cfg Config) {
	o.config = cfg
}

// Run tags every section of the input concurrently, validates the assembled
// document and renders the report. Context construction errors are the only
// fatal outcomes; validation findings are data, not errors.
func (o *Orchestrator) Run(ctx context.Context, input FilingInput) (*FilingResult, error) {
	start := time.Now()

	contexts, err := o.buildContexts(input)
	if err != nil {
		return nil, err
	}

	doc := make(tagging.TaggedDocument, len(input.Sections))

	// One goroutine per section. The tagger itself is pure; the mutex only
	// guards the map insert on merge.
	var wg sync.WaitGroup
	var mu sync.Mutex
	for name, data := range input.Sections {
		wg.Add(1)
		go func(name string, data map[string]interface{}) {
			defer wg.Done()
			section := tagging.TagSection(name, data, o.deps)
			mu.Lock()
			doc[name] = section
			mu.Unlock()
		}(name, data)
	}
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	issues := validate.ValidateTaggedDocument(doc, o.deps)
	balance := validate.CheckSectionBalance(doc[o.config.BalanceSheetSection], o.config.BalanceTolerance)

	result := &FilingResult{
		RunID:     uuid.New().String(),
		Contexts:  contexts,
		Document:  doc,
		Issues:    issues,
		Balance:   balance,
		Report:    validate.RenderReport(issues, balance),
		StartedAt: start,
		Duration:  time.Since(start),
	}
	return result, nil
}

// buildContexts creates the current-period contexts: one instant context at
// period end for position items and, when a start date is supplied, one
// duration context for flow items.
func (o *Orchestrator) buildContexts(input FilingInput) ([]*tagging.ContextDescriptor, error) {
	instant, err := tagging.BuildContext(tagging.ContextInput{
		EntityName:       input.EntityName,
		EntityIdentifier: input.EntityIdentifier,
		PeriodEnd:        input.PeriodEnd,
		IsConsolidated:   input.IsConsolidated,
		Dimensions:       input.Dimensions,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to build instant context: %w", err)
	}

	contexts := []*tagging.ContextDescriptor{instant}

	if !input.PeriodStart.IsZero() {
		periodStart := input.PeriodStart
		duration, err := tagging.BuildContext(tagging.ContextInput{
			EntityName:       input.EntityName,
			EntityIdentifier: input.EntityIdentifier,
			PeriodEnd:        input.PeriodEnd,
			PeriodStart:      &periodStart,
			IsConsolidated:   input.IsConsolidated,
			Dimensions:       input.Dimensions,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to build duration context: %w", err)
		}
		contexts = append(contexts, duration)
	}

	return contexts, nil
}
