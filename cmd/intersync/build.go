package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/intersync-backend/internal/catalog"
	"github.com/jonathan/intersync-backend/internal/config"
	"github.com/jonathan/intersync-backend/internal/jd"
	"github.com/jonathan/intersync-backend/internal/llm"
	"github.com/jonathan/intersync-backend/internal/observability"
	"github.com/jonathan/intersync-backend/internal/pipeline"
	"github.com/jonathan/intersync-backend/internal/tailoring"
	"github.com/jonathan/intersync-backend/internal/types"
)

var buildCommand = &cobra.Command{
	Use:   "build",
	Short: "Build a tailored resume end-to-end",
	Long: `Scores the project catalog, tailors the resume to the job description (AI when configured, deterministic fallback otherwise), and renders the LaTeX document.

Configuration can be loaded from a JSON file using --config. Command-line arguments override config file values.`,
	RunE: runBuildCmd,
}

var (
	buildConfigPath string
	buildCandidate  string
	buildJob        string
	buildJobURL     string
	buildRole       string
	buildCatalog    string
	buildOut        string
	buildAPIKey     string
	buildModel      string
	buildDisableAI  bool
	buildVerbose    bool
	buildJSON       bool
)

func init() {
	// Config file flag (processed first)
	buildCommand.Flags().StringVar(&buildConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")

	buildCommand.Flags().StringVarP(&buildCandidate, "candidate", "c", "", "Path to candidate profile JSON file")
	buildCommand.Flags().StringVarP(&buildJob, "job", "j", "", "Path to job description text file (mutually exclusive with --job-url)")
	buildCommand.Flags().StringVar(&buildJobURL, "job-url", "", "URL to fetch the job description from (mutually exclusive with --job)")
	buildCommand.Flags().StringVarP(&buildRole, "role", "r", "", "Target role to tailor toward")
	buildCommand.Flags().StringVar(&buildCatalog, "catalog", "", "Path to a catalog JSON file overriding the embedded one")
	buildCommand.Flags().StringVarP(&buildOut, "out", "o", "", "Output path for the rendered document")
	buildCommand.Flags().StringVar(&buildModel, "model", "", "Override the generation model")
	buildCommand.Flags().BoolVar(&buildDisableAI, "disable-ai", false, "Skip AI tailoring and use the deterministic builder")
	buildCommand.Flags().BoolVarP(&buildVerbose, "verbose", "v", false, "Print detailed debug information")
	buildCommand.Flags().BoolVar(&buildJSON, "json", false, "Print the full result as JSON to stdout")

	// API key can be passed as a flag, or read from env var GEMINI_API_KEY
	buildCommand.Flags().StringVar(&buildAPIKey, "api-key", "", "Gemini API Key (optional, defaults to GEMINI_API_KEY env var)")

	rootCmd.AddCommand(buildCommand)
}

func runBuildCmd(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	// Step 1: Load config file if provided
	var cfg config.Config
	if buildConfigPath != "" {
		loadedCfg, err := config.LoadConfig(buildConfigPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		if err := loadedCfg.Validate(); err != nil {
			return err
		}

		cfg = *loadedCfg
		if buildVerbose {
			_, _ = fmt.Fprintf(os.Stdout, "Loaded config from: %s\n", buildConfigPath)
		}
	}

	// Step 2: Apply CLI overrides (command-line args take priority)
	// Only override if the flag was explicitly set
	if cmd.Flags().Changed("candidate") {
		cfg.Candidate = buildCandidate
	}
	if cmd.Flags().Changed("job") {
		cfg.Job = buildJob
	}
	if cmd.Flags().Changed("job-url") {
		cfg.JobURL = buildJobURL
	}
	if cmd.Flags().Changed("role") {
		cfg.TargetRole = buildRole
	}
	if cmd.Flags().Changed("catalog") {
		cfg.Catalog = buildCatalog
	}
	if cmd.Flags().Changed("out") {
		cfg.Out = buildOut
	}
	if cmd.Flags().Changed("api-key") {
		cfg.APIKey = buildAPIKey
	}
	if cmd.Flags().Changed("model") {
		cfg.Model = buildModel
	}
	if cmd.Flags().Changed("disable-ai") {
		cfg.DisableAI = buildDisableAI
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = buildVerbose
	}

	// Step 3: Apply defaults for unset values
	cfg = cfg.MergeWithDefaults(config.Config{Out: "resume.tex"})

	// Step 4: Validate required fields
	if cfg.Candidate == "" {
		return fmt.Errorf("--candidate is required (via flag or config)")
	}
	if cfg.TargetRole == "" {
		return fmt.Errorf("--role is required (via flag or config)")
	}
	if cfg.Job == "" && cfg.JobURL == "" {
		return fmt.Errorf("either --job or --job-url must be provided (via flag or config)")
	}
	if cfg.Job != "" && cfg.JobURL != "" {
		return fmt.Errorf("--job and --job-url are mutually exclusive; provide only one")
	}

	// Step 5: API Key handling. Missing key means the fallback builder runs.
	if cfg.APIKey == "" {
		cfg.APIKey = os.Getenv("GEMINI_API_KEY")
	}

	candidate, err := loadCandidate(cfg.Candidate)
	if err != nil {
		return err
	}

	jobDescription, err := loadJobDescription(ctx, cfg)
	if err != nil {
		return err
	}

	entries, err := catalog.Default()
	if err != nil {
		return fmt.Errorf("failed to load embedded catalog: %w", err)
	}
	if cfg.Catalog != "" {
		entries, err = catalog.LoadFile(cfg.Catalog)
		if err != nil {
			return err
		}
	}

	var tailor tailoring.Tailor
	if cfg.APIKey != "" {
		llmCfg := llm.DefaultConfig()
		if cfg.Model != "" {
			llmCfg = llmCfg.WithModel(llm.TierStandard, cfg.Model)
		}
		client, err := llm.NewGeminiClient(ctx, llmCfg, cfg.APIKey)
		if err != nil {
			return fmt.Errorf("failed to create LLM client: %w", err)
		}
		defer func() { _ = client.Close() }()
		tailor = tailoring.NewLLMTailor(client)
	}

	result, err := pipeline.Run(ctx, pipeline.Options{
		TargetRole:     cfg.TargetRole,
		JobDescription: jobDescription,
		Candidate:      candidate,
		Catalog:        entries,
		Tailor:         tailor,
		DisableAI:      cfg.DisableAI,
		Verbose:        cfg.Verbose,
	})
	if err != nil {
		return err
	}

	if cfg.Verbose {
		printer := observability.NewPrinter(os.Stdout)
		printer.PrintScoredProjects(result.TopProjects)
		printer.PrintResumeRecord(result.Record, result.UsedAI)
	}
	if result.Warning != "" {
		fmt.Fprintf(os.Stderr, "Warning: %s\n", result.Warning)
	}

	if err := os.WriteFile(cfg.Out, []byte(result.Document), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", cfg.Out, err)
	}
	fmt.Printf("Wrote %s (ai_tailored=%t)\n", cfg.Out, result.UsedAI)

	if buildJSON {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(result); err != nil {
			return fmt.Errorf("failed to encode result: %w", err)
		}
	}

	return nil
}

// loadCandidate reads and validates a candidate profile from a JSON file.
func loadCandidate(path string) (types.CandidateProfile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return types.CandidateProfile{}, fmt.Errorf("failed to read candidate file %s: %w", path, err)
	}

	var candidate types.CandidateProfile
	if err := json.Unmarshal(data, &candidate); err != nil {
		return types.CandidateProfile{}, fmt.Errorf("failed to parse candidate JSON: %w", err)
	}

	if err := candidate.Validate(); err != nil {
		return types.CandidateProfile{}, fmt.Errorf("invalid candidate profile: %w", err)
	}
	return candidate, nil
}

// loadJobDescription resolves the job text from a file or a URL.
func loadJobDescription(ctx context.Context, cfg config.Config) (string, error) {
	if cfg.Job != "" {
		data, err := os.ReadFile(cfg.Job)
		if err != nil {
			return "", fmt.Errorf("failed to read job file %s: %w", cfg.Job, err)
		}
		return string(data), nil
	}
	return jd.Fetch(ctx, cfg.JobURL)
}
