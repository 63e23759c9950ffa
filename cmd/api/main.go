package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"

	apiconfig "statement_consolidator/pkg/api/config"
	"statement_consolidator/pkg/api/reports"
	"statement_consolidator/pkg/api/upload"
	"statement_consolidator/pkg/core/agent"
	"statement_consolidator/pkg/core/extract"
	"statement_consolidator/pkg/core/ocr"
	"statement_consolidator/pkg/core/pipeline"
	"statement_consolidator/pkg/core/prompt"
	"statement_consolidator/pkg/core/store"
	"statement_consolidator/pkg/core/taxonomy"
)

func main() {
	// Load environment variables
	godotenv.Load()

	// Initialize Prompt Library
	// Determine resources path (relative to executable or working directory)
	resourcesPath := "resources"
	if _, err := os.Stat(resourcesPath); os.IsNotExist(err) {
		// Try from executable directory
		exePath, _ := os.Executable()
		resourcesPath = filepath.Join(filepath.Dir(exePath), "resources")
	}
	if err := prompt.LoadFromDirectory(resourcesPath); err != nil {
		fmt.Printf("[WARNING] Failed to load prompt library: %v\n", err)
		fmt.Println("  Falling back to hardcoded prompts")
	} else {
		fmt.Printf("[PROMPT] Loaded %d prompts from %s\n", prompt.Get().Count(), resourcesPath)
	}

	// Initialize agent manager from config
	configData, _ := os.ReadFile("config/models.yaml")
	var agentCfg agent.Config
	yaml.Unmarshal(configData, &agentCfg)
	agentMgr := agent.NewManager(agentCfg)

	// Taxonomy overrides are optional; defaults cover the standard schema.
	tax := taxonomy.Default()
	if _, err := os.Stat("config/taxonomy.yaml"); err == nil {
		loaded, err := taxonomy.Load("config/taxonomy.yaml")
		if err != nil {
			fmt.Printf("[WARNING] Ignoring config/taxonomy.yaml: %v\n", err)
		} else {
			tax = loaded
			fmt.Println("[TAXONOMY] Loaded overrides from config/taxonomy.yaml")
		}
	}

	// OCR needs Google credentials; without them PDFs fall back to the
	// direct document extractor.
	var textExtractor pipeline.TextExtractor
	if os.Getenv("GOOGLE_APPLICATION_CREDENTIALS") != "" {
		ocrClient, err := ocr.NewClient(context.Background())
		if err != nil {
			fmt.Printf("[WARNING] OCR client unavailable: %v\n", err)
		} else {
			textExtractor = ocrClient
			defer ocrClient.Close()
			fmt.Println("[OCR] Vision client initialized")
		}
	}

	var direct *extract.DirectExtractor
	if os.Getenv("GEMINI_API_KEY") != "" {
		direct = &extract.DirectExtractor{}
	}

	// Persistence is optional.
	var repo *store.ReportRepo
	if os.Getenv("DATABASE_URL") != "" {
		r, err := store.NewReportRepo(context.Background())
		if err != nil {
			fmt.Printf("[WARNING] Persistence disabled: %v\n", err)
		} else {
			repo = r
			defer repo.Close()
			fmt.Println("[STORE] Report persistence enabled")
		}
	}

	orch := pipeline.NewOrchestrator(extract.NewExtractor(agentMgr), textExtractor, direct, tax, repo)

	// Upload endpoints
	upload.InitHandler(orch)
	http.HandleFunc("/api/upload-and-convert", upload.HandleUploadAndConvert)

	// Persisted report endpoints
	reports.InitHandler(repo)
	http.HandleFunc("/api/reports", reports.HandleList)
	http.HandleFunc("/api/reports/get", reports.HandleGet)

	// Config endpoints
	configHandler := apiconfig.NewHandler(agentMgr)
	http.HandleFunc("/api/config", configHandler.HandleConfig)
	http.HandleFunc("/api/config/switch", configHandler.HandleSwitch)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	fmt.Printf("API server starting on :%s...\n", port)
	fmt.Println("  - POST /api/upload-and-convert  (multipart files + optional prompt)")
	fmt.Println("  - GET  /api/reports")
	fmt.Println("  - GET  /api/reports/get?id=...")
	fmt.Println("  - GET  /api/config")
	fmt.Println("  - POST /api/config/switch")

	if err := http.ListenAndServe(":"+port, nil); err != nil {
		fmt.Printf("[FATAL] Server failed to start: %v\n", err)
		os.Exit(1)
	}
}
