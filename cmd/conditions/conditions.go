package conditions

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/nutriscan-app/nutriscan/internal/conditions"
	"github.com/nutriscan-app/nutriscan/pkg/shared/config"
	"github.com/nutriscan-app/nutriscan/pkg/shared/files"
	"github.com/nutriscan-app/nutriscan/pkg/shared/logger"
)

// RunOptionsConditions holds the arguments for the conditions command.
type RunOptionsConditions struct {
	JSONOutput bool
}

var (
	AppConfig         *config.Config
	conditionsOptions RunOptionsConditions
)

// conditionSummary is one row of the rule-table listing.
type conditionSummary struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Description    string `json:"description,omitempty"`
	AvoidRules     int    `json:"avoid_rules"`
	PositiveRules  int    `json:"positive_rules"`
	NutrientLimits int    `json:"nutrient_limits"`
}

// Init initializes the global configuration variable.
func Init(cfg *config.Config) {
	AppConfig = cfg
}

// NewConditionsCmd creates a new cobra.Command for the conditions command.
func NewConditionsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:                   "conditions",
		SilenceUsage:          true,
		DisableFlagsInUseLine: true,
		Short:                 "List the loaded health condition profiles",
		RunE:                  runConditionsCommand,
	}
	cmd.Flags().BoolVarP(&conditionsOptions.JSONOutput, "json", "j", false, "Print the list as JSON.")
	return cmd
}

// runConditionsCommand executes the conditions command.
func runConditionsCommand(cmd *cobra.Command, args []string) error {
	log := logger.NewLogger(AppConfig, "core-conditions")

	path := ""
	if AppConfig != nil {
		path = AppConfig.Conditions.File
	}
	if path != "" {
		expanded, err := files.ExpandPath(path)
		if err != nil {
			log.Error("failed to resolve conditions file path", "path", path, "error", err)
			return err
		}
		path = expanded
	}

	registry, err := conditions.NewRegistryFromFile(path)
	if err != nil {
		log.Error("failed to load condition rules", "error", err)
		return err
	}

	summaries := make([]conditionSummary, 0, registry.Len())
	for _, c := range registry.All() {
		summaries = append(summaries, conditionSummary{
			ID:             c.ID,
			Name:           c.Name,
			Description:    c.Description,
			AvoidRules:     len(c.Avoid),
			PositiveRules:  len(c.Positive),
			NutrientLimits: len(c.NutrientLimits),
		})
	}

	if conditionsOptions.JSONOutput {
		data, err := json.MarshalIndent(summaries, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tAVOID\tPOSITIVE\tLIMITS")
	for _, s := range summaries {
		fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%d\n", s.ID, s.Name, s.AvoidRules, s.PositiveRules, s.NutrientLimits)
	}
	return w.Flush()
}
