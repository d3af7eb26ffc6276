// Package tagging exposes the tagging pipeline over HTTP.
package tagging

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"xbrl_tagging/pkg/core/agent"
	"xbrl_tagging/pkg/core/pipeline"
	"xbrl_tagging/pkg/core/store"
	"xbrl_tagging/pkg/core/taxonomy"
	"xbrl_tagging/pkg/core/validate"
)

// Handler serves tagging and validation endpoints.
type Handler struct {
	orchestrator *pipeline.Orchestrator
	deps         *taxonomy.Dependencies
	runs         *store.RunStore
	agents       *agent.Manager
}

// NewHandler creates a handler over the given registry. runs may be nil when
// persistence is disabled; agents may be nil when no model providers are
// configured, which disables the agent endpoint only.
func NewHandler(deps *taxonomy.Dependencies, runs *store.RunStore, agents *agent.Manager) *Handler {
	return &Handler{
		orchestrator: pipeline.NewOrchestrator(deps),
		deps:         deps,
		runs:         runs,
		agents:       agents,
	}
}

// HandleRun accepts a mapped filing payload, tags it and returns the full
// filing result. POST /api/tagging/run
func (h *Handler) HandleRun(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
	if r.Method == http.MethodOptions {
		w.WriteHeader(http.StatusOK)
		return
	}
	if r.Method != http.MethodPost {
		http.Error(w, "POST required", http.StatusMethodNotAllowed)
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, "failed to read body", http.StatusBadRequest)
		return
	}

	input, err := agent.ParseFilingInput(string(body))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	result, err := h.orchestrator.Run(r.Context(), *input)
	if err != nil {
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}

	if h.runs != nil {
		if err := h.runs.Save(r.Context(), input.EntityIdentifier, result); err != nil {
			// Persistence is best-effort for the API path.
			fmt.Printf("[WARNING] failed to persist run %s: %v\n", result.RunID, err)
		}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}

// HandleAgent accepts raw, unmapped statement data, normalizes it through the
// active model provider and runs the tagging pipeline over the result.
// POST /api/tagging/agent
func (h *Handler) HandleAgent(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
	if r.Method == http.MethodOptions {
		w.WriteHeader(http.StatusOK)
		return
	}
	if r.Method != http.MethodPost {
		http.Error(w, "POST required", http.StatusMethodNotAllowed)
		return
	}
	if h.agents == nil {
		http.Error(w, "no model providers configured", http.StatusServiceUnavailable)
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, "failed to read body", http.StatusBadRequest)
		return
	}

	input, err := agent.PrepareFilingInput(r.Context(), h.agents, string(body))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadGateway)
		return
	}

	result, err := h.orchestrator.Run(r.Context(), *input)
	if err != nil {
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}

	if h.runs != nil {
		if err := h.runs.Save(r.Context(), input.EntityIdentifier, result); err != nil {
			fmt.Printf("[WARNING] failed to persist run %s: %v\n", result.RunID, err)
		}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}

// HandleValidate revalidates a previously tagged document without rerunning
// the tagger. POST /api/tagging/validate
func (h *Handler) HandleValidate(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	if r.Method != http.MethodPost {
		http.Error(w, "POST required", http.StatusMethodNotAllowed)
		return
	}

	var doc map[string]*sectionWire
	if err := json.NewDecoder(r.Body).Decode(&doc); err != nil {
		http.Error(w, "invalid tagged document", http.StatusBadRequest)
		return
	}

	tagged := docFromWire(doc)
	issues := validate.ValidateTaggedDocument(tagged, h.deps)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"issues": issues,
		"report": validate.RenderReport(issues, nil),
	})
}

// HandleGetRun returns one persisted run. GET /api/tagging/runs?id=<run_id>
func (h *Handler) HandleGetRun(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	if h.runs == nil {
		http.Error(w, "run persistence disabled", http.StatusNotFound)
		return
	}
	runID := r.URL.Query().Get("id")
	if runID == "" {
		http.Error(w, "id query parameter required", http.StatusBadRequest)
		return
	}
	record, err := h.runs.Get(r.Context(), runID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if record == nil {
		http.Error(w, "run not found", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(record)
}
