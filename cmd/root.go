package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nutriscan-app/nutriscan/cmd/analyze"
	cmdconditions "github.com/nutriscan-app/nutriscan/cmd/conditions"
	"github.com/nutriscan-app/nutriscan/cmd/lookup"
	"github.com/nutriscan-app/nutriscan/cmd/search"
	"github.com/nutriscan-app/nutriscan/cmd/validate"
	"github.com/nutriscan-app/nutriscan/cmd/version"
	"github.com/nutriscan-app/nutriscan/pkg/shared/config"
	sharederrors "github.com/nutriscan-app/nutriscan/pkg/shared/errors"
)

var (
	cfgFile   string
	AppConfig *config.Config
	rootCmd   = &cobra.Command{
		Use:                   "nutriscan [command]",
		SilenceUsage:          true,
		DisableFlagsInUseLine: true,
		Short:                 "Nutriscan analyzes packaged food products against health condition profiles.",
		Long: `Nutriscan validates product barcodes, looks them up in the Open Food Facts catalog,
and scores their ingredients and nutrients against health condition profiles such as
diabetes, heart disease, or celiac disease.
`,
	}
)

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is config.yml)")
	rootCmd.AddCommand(validate.NewValidateCmd())
	rootCmd.AddCommand(lookup.LookupCmd)
	rootCmd.AddCommand(analyze.AnalyzeCmd)
	rootCmd.AddCommand(search.SearchCmd)
	rootCmd.AddCommand(cmdconditions.NewConditionsCmd())
	rootCmd.AddCommand(version.NewVersionCmd())
}

// Execute runs the root command and maps failures to a process exit code.
func Execute() int {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	if err := rootCmd.Execute(); err != nil {
		var cmdErr *sharederrors.CommandError
		if errors.As(err, &cmdErr) {
			return cmdErr.ExitCode
		}
		return sharederrors.ExitGeneric
	}
	return sharederrors.ExitOK
}

func initConfig() {
	var err error

	AppConfig, err = config.LoadConfig(cfgFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}
	if err := config.ValidateConfig(AppConfig); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	lookup.Init(AppConfig)
	analyze.Init(AppConfig)
	search.Init(AppConfig)
	cmdconditions.Init(AppConfig)
	version.Init(AppConfig)
}
