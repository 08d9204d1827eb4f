package lookup

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/nutriscan-app/nutriscan/internal/catalog"
	"github.com/nutriscan-app/nutriscan/pkg/barcode"
	"github.com/nutriscan-app/nutriscan/pkg/shared/config"
	sharederrors "github.com/nutriscan-app/nutriscan/pkg/shared/errors"
	"github.com/nutriscan-app/nutriscan/pkg/shared/logger"
)

// RunOptionsLookup holds the arguments for the lookup command.
type RunOptionsLookup struct {
	JSONOutput bool
	NoCache    bool
}

// Global variables for configuration and command arguments
var (
	AppConfig          *config.Config
	lookupOptions      RunOptionsLookup
	exampleLookupUsage = `  # Looking up a product by barcode
  nutriscan lookup 4006381333931

  # Forcing a fresh fetch past the cache
  nutriscan lookup --no-cache 4006381333931

  # Machine-readable output
  nutriscan lookup --json 4006381333931`
)

// LookupCmd represents the lookup command.
var LookupCmd = &cobra.Command{
	Use:                   "lookup BARCODE",
	SilenceUsage:          true,
	DisableFlagsInUseLine: true,
	Example:               exampleLookupUsage,
	Short:                 "Fetch a product record from the catalog by barcode",
	Args:                  cobra.ExactArgs(1),
	RunE:                  runLookupCommand,
}

// Init initializes the global configuration variable.
func Init(cfg *config.Config) {
	AppConfig = cfg
}

// runLookupCommand executes the lookup command.
func runLookupCommand(cmd *cobra.Command, args []string) error {
	log := logger.NewLogger(AppConfig, "core-lookup")
	code := args[0]

	if result := barcode.Validate(code); !result.Valid {
		log.Error("invalid barcode", "barcode", code, "reason", result.Reason.String())
		return sharederrors.NewCommandErrorf(sharederrors.ExitInvalidInput, "invalid barcode %q: %s", code, result.Message)
	}

	client := catalog.NewFromConfig(AppConfig, log)
	if lookupOptions.NoCache {
		client.Invalidate(code)
	}

	product, err := client.FetchProduct(cmd.Context(), code)
	if err != nil {
		log.Error("lookup failed", "barcode", code, "error", err)
		return sharederrors.NewCommandError(err, exitCodeForCatalogError(err))
	}

	if lookupOptions.JSONOutput {
		data, err := json.MarshalIndent(product, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return nil
	}

	renderProduct(cmd, product)
	return nil
}

// renderProduct prints a product record as aligned text.
func renderProduct(cmd *cobra.Command, product *catalog.ProductRecord) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Barcode:     %s\n", product.Barcode)
	fmt.Fprintf(out, "Name:        %s\n", orDash(product.Name))
	fmt.Fprintf(out, "Brands:      %s\n", orDash(product.Brands))
	if product.ServingSize != "" {
		fmt.Fprintf(out, "Serving:     %s\n", product.ServingSize)
	}
	if product.NutritionGrade != "" {
		fmt.Fprintf(out, "Grade:       %s\n", product.NutritionGrade)
	}
	fmt.Fprintf(out, "Ingredients: %s\n", orDash(product.IngredientsText))

	if len(product.Nutriments) > 0 {
		keys := make([]string, 0, len(product.Nutriments))
		for k := range product.Nutriments {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		fmt.Fprintln(out, "Nutriments (per 100g):")
		for _, k := range keys {
			fmt.Fprintf(out, "  %s: %g\n", k, product.Nutriments[k])
		}
	}
}

// exitCodeForCatalogError maps catalog error kinds to process exit codes.
func exitCodeForCatalogError(err error) int {
	switch {
	case catalog.IsNotFound(err):
		return sharederrors.ExitNotFound
	case catalog.IsOffline(err), catalog.IsKind(err, catalog.KindTimeout),
		catalog.IsKind(err, catalog.KindMaxRetriesExceeded):
		return sharederrors.ExitUnavailable
	default:
		return sharederrors.ExitGeneric
	}
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

// Initialize flags for the lookup command.
func init() {
	LookupCmd.Flags().BoolVarP(&lookupOptions.JSONOutput, "json", "j", false, "Print the product record as JSON.")
	LookupCmd.Flags().BoolVar(&lookupOptions.NoCache, "no-cache", false, "Drop any cached record and fetch from the catalog.")
}
