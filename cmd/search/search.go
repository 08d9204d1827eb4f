package search

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nutriscan-app/nutriscan/internal/catalog"
	"github.com/nutriscan-app/nutriscan/pkg/shared/config"
	sharederrors "github.com/nutriscan-app/nutriscan/pkg/shared/errors"
	"github.com/nutriscan-app/nutriscan/pkg/shared/logger"
)

// RunOptionsSearch holds the arguments for the search command.
type RunOptionsSearch struct {
	Page       int
	JSONOutput bool
}

// Global variables for configuration and command arguments
var (
	AppConfig          *config.Config
	searchOptions      RunOptionsSearch
	exampleSearchUsage = `  # Searching the catalog by product name
  nutriscan search "peanut butter"

  # Paging through results
  nutriscan search chocolate --page 3

  # Machine-readable output
  nutriscan search --json granola`
)

// SearchCmd represents the search command.
var SearchCmd = &cobra.Command{
	Use:                   "search QUERY [--page N]",
	SilenceUsage:          true,
	DisableFlagsInUseLine: true,
	Example:               exampleSearchUsage,
	Short:                 "Search the product catalog by free text",
	Args:                  cobra.MinimumNArgs(1),
	RunE:                  runSearchCommand,
}

// Init initializes the global configuration variable.
func Init(cfg *config.Config) {
	AppConfig = cfg
}

// runSearchCommand executes the search command.
func runSearchCommand(cmd *cobra.Command, args []string) error {
	log := logger.NewLogger(AppConfig, "core-search")
	query := strings.TrimSpace(strings.Join(args, " "))
	if query == "" {
		return sharederrors.NewCommandErrorf(sharederrors.ExitInvalidInput, "search query is required")
	}

	client := catalog.NewFromConfig(AppConfig, log)
	result, err := client.Search(cmd.Context(), query, searchOptions.Page)
	if err != nil {
		log.Error("search failed", "query", query, "error", err)
		return sharederrors.NewCommandError(err, exitCodeForCatalogError(err))
	}

	if searchOptions.JSONOutput {
		data, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return nil
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%d result(s) for %q (page %d, %d per page)\n", result.Count, query, result.Page, result.PageSize)
	for _, p := range result.Products {
		name := p.Name
		if name == "" {
			name = "(unnamed product)"
		}
		if p.Brands != "" {
			fmt.Fprintf(out, "  %s\t%s - %s\n", p.Barcode, name, p.Brands)
		} else {
			fmt.Fprintf(out, "  %s\t%s\n", p.Barcode, name)
		}
	}
	return nil
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

// Initialize flags for the search command.
func init() {
	SearchCmd.Flags().IntVarP(&searchOptions.Page, "page", "p", 1, "Result page to fetch.")
	SearchCmd.Flags().BoolVarP(&searchOptions.JSONOutput, "json", "j", false, "Print results as JSON.")
}
