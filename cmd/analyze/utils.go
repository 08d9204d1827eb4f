package analyze

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/nutriscan-app/nutriscan/internal/analyzer"
	"github.com/nutriscan-app/nutriscan/internal/catalog"
	sharederrors "github.com/nutriscan-app/nutriscan/pkg/shared/errors"
	"github.com/nutriscan-app/nutriscan/pkg/shared/files"
)

// report is the JSON artifact written by --output and printed by --json.
type report struct {
	ReportID    string                 `json:"report_id,omitempty"`
	GeneratedAt string                 `json:"generated_at,omitempty"`
	Product     *catalog.ProductRecord `json:"product"`
	Result      *analyzer.Result       `json:"result"`
	Grade       analyzer.Grade         `json:"grade"`
}

// writeReport serializes the analysis into a uuid-stamped JSON file and
// returns the path it was written to.
func writeReport(outputPath string, product *catalog.ProductRecord, result *analyzer.Result) (string, error) {
	id := uuid.New().String()
	rep := report{
		ReportID:    id,
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
		Product:     product,
		Result:      result,
		Grade:       result.Grade(),
	}

	data, err := json.MarshalIndent(rep, "", "  ")
	if err != nil {
		return "", fmt.Errorf("serializing report: %w", err)
	}

	nameTemplate := fmt.Sprintf("nutriscan-%s-%s.json", product.Barcode, id)
	fullPath, folder, err := files.DetermineFileFullPath(outputPath, nameTemplate)
	if err != nil {
		return "", err
	}
	if err := files.CreateFolderIfNotExists(folder); err != nil {
		return "", err
	}
	if err := files.WriteJsonFile(fullPath, data); err != nil {
		return "", err
	}
	return fullPath, nil
}

// renderJSON prints the analysis report to stdout as JSON.
func renderJSON(cmd *cobra.Command, product *catalog.ProductRecord, result *analyzer.Result) error {
	rep := report{Product: product, Result: result, Grade: result.Grade()}
	data, err := json.MarshalIndent(rep, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}

// renderText prints the analysis as human-readable sections.
func renderText(cmd *cobra.Command, product *catalog.ProductRecord, result *analyzer.Result) {
	out := cmd.OutOrStdout()

	name := product.Name
	if name == "" {
		name = "(unnamed product)"
	}
	fmt.Fprintf(out, "%s [%s]\n", name, product.Barcode)
	fmt.Fprintf(out, "Score: %d/100 (%s)\n", result.Score, result.Grade())

	if len(result.Warnings) > 0 {
		fmt.Fprintln(out, "\nWarnings:")
		for _, w := range result.Warnings {
			fmt.Fprintf(out, "  [%s] %s - %s (%s)\n", w.Severity, w.Ingredient, w.Rationale, w.Condition)
		}
	}
	if len(result.NutrientAlerts) > 0 {
		fmt.Fprintln(out, "\nNutrient alerts:")
		for _, a := range result.NutrientAlerts {
			fmt.Fprintf(out, "  %s: %g%s per 100g exceeds the %g%s limit (%s)\n",
				a.Nutrient, a.Value, a.Unit, a.Limit, a.Unit, a.Condition)
		}
	}
	if len(result.Positives) > 0 {
		fmt.Fprintln(out, "\nPositives:")
		for _, p := range result.Positives {
			fmt.Fprintf(out, "  %s - %s\n", p.Ingredient, p.Benefit)
		}
	}
	if len(result.Recommendations) > 0 {
		fmt.Fprintln(out, "\nRecommendations:")
		for _, rec := range result.Recommendations {
			fmt.Fprintf(out, "  - %s\n", rec)
		}
	}
	if len(result.Citations) > 0 {
		fmt.Fprintln(out, "\nSources:")
		for _, c := range result.Citations {
			fmt.Fprintf(out, "  - %s\n", c)
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
