package validate

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nutriscan-app/nutriscan/pkg/barcode"
	sharederrors "github.com/nutriscan-app/nutriscan/pkg/shared/errors"
)

// RunOptionsValidate holds the arguments for the validate command.
type RunOptionsValidate struct {
	JSONOutput bool
}

var (
	validateOptions      RunOptionsValidate
	exampleValidateUsage = `  # Validating a single EAN-13 barcode
  nutriscan validate 4006381333931

  # Validating several barcodes at once
  nutriscan validate 4006381333931 96385074 036000291452

  # Machine-readable output
  nutriscan validate --json 4006381333931`
)

// validationReport pairs an input with its validation outcome for JSON output.
type validationReport struct {
	Input  string         `json:"input"`
	Result barcode.Result `json:"result"`
}

// NewValidateCmd creates a new cobra.Command for the validate command.
func NewValidateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:                   "validate BARCODE [BARCODE...]",
		SilenceUsage:          true,
		DisableFlagsInUseLine: true,
		Example:               exampleValidateUsage,
		Short:                 "Check barcode digit strings and report their symbology",
		Args:                  cobra.MinimumNArgs(1),
		RunE:                  runValidateCommand,
	}
	cmd.Flags().BoolVarP(&validateOptions.JSONOutput, "json", "j", false, "Print results as JSON.")
	return cmd
}

// runValidateCommand executes the validate command.
func runValidateCommand(cmd *cobra.Command, args []string) error {
	reports := make([]validationReport, 0, len(args))
	allValid := true
	for _, input := range args {
		result := barcode.Validate(input)
		if !result.Valid {
			allValid = false
		}
		reports = append(reports, validationReport{Input: input, Result: result})
	}

	if validateOptions.JSONOutput {
		data, err := json.MarshalIndent(reports, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
	} else {
		for _, r := range reports {
			if r.Result.Valid {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\tvalid\t%s\n", r.Input, r.Result.Symbology)
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\tinvalid\t%s: %s\n", r.Input, r.Result.Reason, r.Result.Message)
			}
		}
	}

	if !allValid {
		cmd.SilenceErrors = true
		return sharederrors.NewCommandErrorf(sharederrors.ExitInvalidInput, "one or more barcodes failed validation")
	}
	return nil
}
