package agent

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"xbrl_tagging/pkg/core/pipeline"
	"xbrl_tagging/pkg/core/utils"
)

// TaggingAgent drives one filing through the model and the deterministic
// tagging pipeline. The model only normalizes mapped data into the filing
// input shape; resolution, contexts and validation stay in code.
type TaggingAgent struct {
	client       *genai.Client
	modelName    string
	orchestrator *pipeline.Orchestrator
}

// filingInputWire is the JSON shape the model returns; dates arrive as ISO
// strings and are parsed here.
type filingInputWire struct {
	EntityName       string                            `json:"entity_name"`
	EntityIdentifier string                            `json:"entity_identifier"`
	PeriodStart      string                            `json:"period_start"`
	PeriodEnd        string                            `json:"period_end"`
	IsConsolidated   bool                              `json:"is_consolidated"`
	Sections         map[string]map[string]interface{} `json:"sections"`
}

// NewTaggingAgent creates an agent bound to a Gemini model and the given
// pipeline orchestrator.
func NewTaggingAgent(ctx context.Context, orchestrator *pipeline.Orchestrator) (*TaggingAgent, error) {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY environment variable not set")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &TaggingAgent{
		client:       client,
		modelName:    "gemini-2.0-flash-exp",
		orchestrator: orchestrator,
	}, nil
}

// Close releases the underlying client.
func (a *TaggingAgent) Close() error {
	return a.client.Close()
}

// Run sends the mapped statement data to the model, parses the normalized
// filing input leniently and executes the tagging pipeline over it.
func (a *TaggingAgent) Run(ctx context.Context, mappedData string) (*pipeline.FilingResult, error) {
	model := a.client.GenerativeModel(a.modelName)
	model.SetTemperature(0.1)
	model.ResponseMIMEType = "application/json"
	model.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text(taggingSystemPrompt)},
	}

	resp, err := model.GenerateContent(ctx, genai.Text(mappedData))
	if err != nil {
		return nil, fmt.Errorf("tagging model call failed: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return nil, fmt.Errorf("tagging model returned no candidates")
	}

	var raw string
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			raw += string(text)
		}
	}

	input, err := ParseFilingInput(raw)
	if err != nil {
		return nil, err
	}
	return a.orchestrator.Run(ctx, *input)
}

// PrepareFilingInput sends raw statement data through the manager's active
// provider with the tagging system prompt and parses the normalized filing
// input from the response. This is the provider-agnostic agent path; the
// provider in play is whatever config/models.yaml (or a runtime switch)
// selected for the tagging agent.
func PrepareFilingInput(ctx context.Context, mgr *Manager, rawData string) (*pipeline.FilingInput, error) {
	options := map[string]interface{}{
		"response_format": map[string]interface{}{"type": "json_object"},
	}
	response, err := mgr.ExecutePrompt(ctx, "tagging", rawData, taggingSystemPrompt, options)
	if err != nil {
		return nil, fmt.Errorf("tagging agent call failed: %w", err)
	}
	return ParseFilingInput(response)
}

// ParseFilingInput decodes a filing input payload leniently (strict JSON,
// repaired JSON, then Hjson) and validates the period fields.
func ParseFilingInput(payload string) (*pipeline.FilingInput, error) {
	var wire filingInputWire
	if _, err := utils.SmartParse(utils.CleanMarkdown(payload), &wire); err != nil {
		return nil, fmt.Errorf("failed to parse filing input: %w", err)
	}

	if wire.PeriodEnd == "" {
		return nil, fmt.Errorf("filing input missing period_end")
	}
	periodEnd, err := time.Parse("2006-01-02", wire.PeriodEnd)
	if err != nil {
		return nil, fmt.Errorf("invalid period_end %q: %w", wire.PeriodEnd, err)
	}

	input := &pipeline.FilingInput{
		EntityName:       wire.EntityName,
		EntityIdentifier: wire.EntityIdentifier,
		PeriodEnd:        periodEnd,
		IsConsolidated:   wire.IsConsolidated,
		Sections:         wire.Sections,
	}
	if wire.PeriodStart != "" {
		periodStart, err := time.Parse("2006-01-02", wire.PeriodStart)
		if err != nil {
			return nil, fmt.Errorf("invalid period_start %q: %w", wire.PeriodStart, err)
		}
		input.PeriodStart = periodStart
	}
	return input, nil
}
