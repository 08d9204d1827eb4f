package version

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/nutriscan-app/nutriscan/pkg/shared/config"
)

var (
	AppConfig *config.Config

	// Build metadata, overridden via ldflags.
	CoreVersion   = "unknown"
	GolangVersion = runtime.Version()
	BuildTime     = "unknown"
)

// Init initializes the global configuration variable.
func Init(cfg *config.Config) {
	AppConfig = cfg
}

// NewVersionCmd creates a new cobra.Command for the version command.
func NewVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "version",
		SilenceUsage:          true,
		DisableFlagsInUseLine: true,
		Short:                 "Print the version number of the application",
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Version: v%s\n", CoreVersion)
			fmt.Fprintf(out, "Go Version: %s\n", GolangVersion)
			fmt.Fprintf(out, "Build Time: %s\n", BuildTime)
		},
	}
}
