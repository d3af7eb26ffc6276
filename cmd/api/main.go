package main

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"

	apiconfig "xbrl_tagging/pkg/api/config"
	apitagging "xbrl_tagging/pkg/api/tagging"
	"xbrl_tagging/pkg/core/agent"
	"xbrl_tagging/pkg/core/store"
	"xbrl_tagging/pkg/core/taxonomy"
)

func main() {
	godotenv.Load()

	// Taxonomy registry: built-in ACRA subset, optional overlay file.
	deps := taxonomy.Default()
	if path := os.Getenv("TAXONOMY_FILE"); path != "" {
		overlay, err := taxonomy.LoadFile(path)
		if err != nil {
			fmt.Printf("[WARNING] Failed to load taxonomy overlay: %v\n", err)
		} else {
			deps = taxonomy.Merge(deps, overlay)
			fmt.Printf("[TAXONOMY] Applied overlay from %s\n", path)
		}
	}

	// Provider config
	configData, _ := os.ReadFile("config/models.yaml")
	var agentCfg agent.Config
	yaml.Unmarshal(configData, &agentCfg)
	agentMgr := agent.NewManager(agentCfg)

	// Run persistence: Postgres when DATABASE_URL is set, files otherwise.
	var runs *store.RunStore
	if err := store.InitDB(context.Background()); err != nil {
		fmt.Printf("[STORE] No database configured (%v), using file store\n", err)
		runs = store.NewRunStore(nil, "")
	} else {
		runs = store.NewRunStore(store.GetPool(), "")
		defer store.Close()
	}

	configHandler := apiconfig.NewHandler(agentMgr)
	http.HandleFunc("/api/config", configHandler.HandleConfig)
	http.HandleFunc("/api/config/switch", configHandler.HandleSwitch)

	taggingHandler := apitagging.NewHandler(deps, runs, agentMgr)
	http.HandleFunc("/api/tagging/run", taggingHandler.HandleRun)
	http.HandleFunc("/api/tagging/agent", taggingHandler.HandleAgent)
	http.HandleFunc("/api/tagging/validate", taggingHandler.HandleValidate)
	http.HandleFunc("/api/tagging/runs", taggingHandler.HandleGetRun)

	fmt.Println("Tagging API starting on :8080...")
	fmt.Println("  - GET  /api/config")
	fmt.Println("  - POST /api/config/switch")
	fmt.Println("  - POST /api/tagging/run")
	fmt.Println("  - POST /api/tagging/agent")
	fmt.Println("  - POST /api/tagging/validate")
	fmt.Println("  - GET  /api/tagging/runs?id=<run_id>")

	if err := http.ListenAndServe(":8080", nil); err != nil {
		fmt.Printf("[FATAL] Server failed to start: %v\n", err)
		os.Exit(1)
	}
}
