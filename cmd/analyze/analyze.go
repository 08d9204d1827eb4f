package analyze

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nutriscan-app/nutriscan/internal/analyzer"
	"github.com/nutriscan-app/nutriscan/internal/catalog"
	"github.com/nutriscan-app/nutriscan/internal/conditions"
	"github.com/nutriscan-app/nutriscan/pkg/barcode"
	"github.com/nutriscan-app/nutriscan/pkg/shared/config"
	sharederrors "github.com/nutriscan-app/nutriscan/pkg/shared/errors"
	"github.com/nutriscan-app/nutriscan/pkg/shared/files"
	"github.com/nutriscan-app/nutriscan/pkg/shared/logger"
)

// RunOptionsAnalyze holds the arguments for the analyze command.
type RunOptionsAnalyze struct {
	Conditions []string
	JSONOutput bool
	NoCache    bool
	OutputPath string
}

// Global variables for configuration and command arguments
var (
	AppConfig           *config.Config
	analyzeOptions      RunOptionsAnalyze
	exampleAnalyzeUsage = `  # Analyzing a product for the default healthy-eating profile
  nutriscan analyze 4006381333931

  # Analyzing against specific health conditions
  nutriscan analyze 4006381333931 --conditions diabetes,cancer

  # Machine-readable output
  nutriscan analyze 4006381333931 --conditions celiac --json

  # Writing a JSON report artifact next to the terminal output
  nutriscan analyze 4006381333931 --conditions heartDisease --output /path/to/reports`
)

// AnalyzeCmd represents the analyze command.
var AnalyzeCmd = &cobra.Command{
	Use:                   "analyze BARCODE [--conditions/-c ID,ID...] [--json] [--output/-o PATH]",
	SilenceUsage:          true,
	DisableFlagsInUseLine: true,
	Example:               exampleAnalyzeUsage,
	Short:                 "Look up a product and score it against health condition profiles",
	Args:                  cobra.ExactArgs(1),
	RunE:                  runAnalyzeCommand,
}

// Init initializes the global configuration variable.
func Init(cfg *config.Config) {
	AppConfig = cfg
}

// runAnalyzeCommand executes the analyze command.
func runAnalyzeCommand(cmd *cobra.Command, args []string) error {
	log := logger.NewLogger(AppConfig, "core-analyze")
	code := args[0]

	if result := barcode.Validate(code); !result.Valid {
		log.Error("invalid barcode", "barcode", code, "reason", result.Reason.String())
		return sharederrors.NewCommandErrorf(sharederrors.ExitInvalidInput, "invalid barcode %q: %s", code, result.Message)
	}

	registry, err := loadRegistry(AppConfig)
	if err != nil {
		log.Error("failed to load condition rules", "error", err)
		return err
	}
	if err := validateConditionIDs(registry, analyzeOptions.Conditions); err != nil {
		log.Error("invalid condition selection", "error", err)
		return sharederrors.NewCommandError(err, sharederrors.ExitInvalidInput)
	}

	client := catalog.NewFromConfig(AppConfig, log)
	if analyzeOptions.NoCache {
		client.Invalidate(code)
	}

	product, err := client.FetchProduct(cmd.Context(), code)
	if err != nil {
		log.Error("product fetch failed", "barcode", code, "error", err)
		return sharederrors.NewCommandError(err, exitCodeForCatalogError(err))
	}

	result := analyzer.New(registry, log).Analyze(product, analyzeOptions.Conditions)

	if analyzeOptions.OutputPath != "" {
		path, err := writeReport(analyzeOptions.OutputPath, product, result)
		if err != nil {
			log.Error("failed to write report", "error", err)
			return err
		}
		log.Info("report written", "path", path)
	}

	if analyzeOptions.JSONOutput {
		return renderJSON(cmd, product, result)
	}
	renderText(cmd, product, result)
	return nil
}

// loadRegistry builds the condition registry: builtin rules plus the optional
// conditions file from the configuration.
func loadRegistry(cfg *config.Config) (*conditions.Registry, error) {
	path := ""
	if cfg != nil {
		path = cfg.Conditions.File
	}
	if path != "" {
		expanded, err := files.ExpandPath(path)
		if err != nil {
			return nil, fmt.Errorf("resolving conditions file path: %w", err)
		}
		path = expanded
	}
	return conditions.NewRegistryFromFile(path)
}

// validateConditionIDs rejects selections naming conditions the registry does
// not know. The analyzer would skip them silently; the CLI fails loudly.
func validateConditionIDs(registry *conditions.Registry, ids []string) error {
	var unknown []string
	for _, id := range ids {
		if _, ok := registry.Get(id); !ok {
			unknown = append(unknown, id)
		}
	}
	if len(unknown) > 0 {
		return fmt.Errorf("unknown conditions: %s (run 'nutriscan conditions' for the list)", strings.Join(unknown, ", "))
	}
	return nil
}

// Initialize flags for the analyze command.
func init() {
	AnalyzeCmd.Flags().StringSliceVarP(&analyzeOptions.Conditions, "conditions", "c", nil, "Comma-separated health condition ids to score against (default generalHealth).")
	AnalyzeCmd.Flags().BoolVarP(&analyzeOptions.JSONOutput, "json", "j", false, "Print the analysis as JSON.")
	AnalyzeCmd.Flags().BoolVar(&analyzeOptions.NoCache, "no-cache", false, "Drop any cached record and fetch from the catalog.")
	AnalyzeCmd.Flags().StringVarP(&analyzeOptions.OutputPath, "output", "o", "", "Path to the directory or file where the JSON report will be saved.")
}
