// Command tagger runs the tagging pipeline over a mapped filing file and
// prints the validation report.
//
// Usage:
//
//	tagger -in filing.json [-html statement.html -section statementOfFinancialPosition] [-save]
//	tagger -raw extracted.txt [-save]
//
// -in takes an already-mapped filing; -raw takes unmapped statement text and
// normalizes it through the Gemini tagging agent first (needs GEMINI_API_KEY).
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"xbrl_tagging/pkg/core/agent"
	"xbrl_tagging/pkg/core/ingest"
	"xbrl_tagging/pkg/core/pipeline"
	"xbrl_tagging/pkg/core/store"
	"xbrl_tagging/pkg/core/taxonomy"
	"xbrl_tagging/pkg/core/utils"
)

func main() {
	inPath := flag.String("in", "", "mapped filing input (JSON or Hjson)")
	rawPath := flag.String("raw", "", "raw statement data to normalize via the tagging agent")
	htmlPath := flag.String("html", "", "optional HTML statement table to ingest")
	htmlSection := flag.String("section", "statementOfFinancialPosition", "section name for ingested HTML data")
	taxonomyPath := flag.String("taxonomy", "", "optional taxonomy overlay file")
	save := flag.Bool("save", false, "persist the run result")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, assuming environment variables are set.")
	}

	if *inPath == "" && *rawPath == "" {
		flag.Usage()
		os.Exit(2)
	}

	deps := taxonomy.Default()
	if *taxonomyPath != "" {
		overlay, err := taxonomy.LoadFile(*taxonomyPath)
		if err != nil {
			log.Fatalf("Failed to load taxonomy overlay: %v", err)
		}
		deps = taxonomy.Merge(deps, overlay)
	}
	orchestrator := pipeline.NewOrchestrator(deps)

	var result *pipeline.FilingResult
	var entityIdentifier string

	if *rawPath != "" {
		raw, err := os.ReadFile(*rawPath)
		if err != nil {
			log.Fatalf("Failed to read raw input file: %v", err)
		}
		taggingAgent, err := agent.NewTaggingAgent(context.Background(), orchestrator)
		if err != nil {
			log.Fatalf("Failed to start tagging agent: %v", err)
		}
		defer taggingAgent.Close()

		result, err = taggingAgent.Run(context.Background(), string(raw))
		if err != nil {
			log.Fatalf("Agent tagging run failed: %v", err)
		}
		if len(result.Contexts) > 0 {
			entityIdentifier = result.Contexts[0].Entity.Identifier
		}
	} else {
		result, entityIdentifier = runMapped(orchestrator, *inPath, *htmlPath, *htmlSection)
	}

	fmt.Printf("Run %s completed in %s: %d contexts, %d sections, %d issues\n",
		result.RunID, result.Duration, len(result.Contexts), len(result.Document), len(result.Issues))
	for _, c := range result.Contexts {
		fmt.Printf("  context %s\n", c.ID)
	}

	report := utils.CleanMarkdown(result.Report)
	if !utils.ValidateMarkdown(report) {
		log.Println("Warning: generated report failed markdown sanity check")
	}
	fmt.Println()
	fmt.Println(report)

	if *save {
		runs := store.NewRunStore(nil, "")
		if err := store.InitDB(context.Background()); err == nil {
			runs = store.NewRunStore(store.GetPool(), "")
			defer store.Close()
		}
		if err := runs.Save(context.Background(), entityIdentifier, result); err != nil {
			log.Fatalf("Failed to persist run: %v", err)
		}
		fmt.Printf("Saved run %s\n", result.RunID)
	}

	// Machine-readable document on demand.
	if os.Getenv("TAGGER_DUMP_JSON") == "1" {
		out, _ := json.MarshalIndent(result.Document, "", "  ")
		fmt.Println(string(out))
	}
}

// runMapped executes the deterministic path: parse an already-mapped filing
// file, optionally merge in an ingested HTML statement, and tag it.
func runMapped(orchestrator *pipeline.Orchestrator, inPath, htmlPath, htmlSection string) (*pipeline.FilingResult, string) {
	payload, err := os.ReadFile(inPath)
	if err != nil {
		log.Fatalf("Failed to read input file: %v", err)
	}
	input, err := agent.ParseFilingInput(string(payload))
	if err != nil {
		log.Fatalf("Failed to parse filing input: %v", err)
	}

	if htmlPath != "" {
		html, err := os.ReadFile(htmlPath)
		if err != nil {
			log.Fatalf("Failed to read HTML file: %v", err)
		}
		sectionData, err := ingest.ParseStatementHTML(string(html))
		if err != nil {
			log.Fatalf("Failed to ingest HTML statement: %v", err)
		}
		if input.Sections == nil {
			input.Sections = map[string]map[string]interface{}{}
		}
		// Ingested rows fill gaps; mapped values win on conflict.
		target := input.Sections[htmlSection]
		if target == nil {
			target = map[string]interface{}{}
			input.Sections[htmlSection] = target
		}
		for field, value := range sectionData {
			if _, exists := target[field]; !exists {
				target[field] = value
			}
		}
		fmt.Printf("Ingested %d fields into %s\n", len(sectionData), htmlSection)
	}

	result, err := orchestrator.Run(context.Background(), *input)
	if err != nil {
		log.Fatalf("Tagging run failed: %v", err)
	}
	return result, input.EntityIdentifier
}
