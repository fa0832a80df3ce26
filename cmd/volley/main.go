// Command volley schedules firepower from the command line or over HTTP.
//
// Usage:
//
//	volley solve --matrix matrix.yaml --mode 2x2
//	volley two-wave --matrix matrix.csv
//	volley generate --size 8 --seed 42 > matrix.yaml
//	volley serve --config volley.yaml
package main

import (
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/arloliu/volley"
	"github.com/arloliu/volley/internal/logging"
)

var version = "dev"

// globalFlags are shared by every subcommand.
type globalFlags struct {
	configPath string
	logLevel   string
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		color.New(color.FgRed, color.Bold).Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	flags := &globalFlags{}

	root := &cobra.Command{
		Use:   "volley",
		Short: "Firepower scheduling optimizer",
		Long: `Schedules which targets to attack in each period so that the
remaining effective firepower is as low as possible.

The exact solver handles one attack per period and per target (1x1);
the greedy solver handles two of each (2x2).`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&flags.configPath, "config", "", "path to a YAML config file")
	root.PersistentFlags().StringVar(&flags.logLevel, "log-level", "warn", "debug|info|warn|error")

	root.AddCommand(
		newSolveCmd(flags),
		newTwoWaveCmd(flags),
		newGenerateCmd(),
		newServeCmd(flags),
	)

	return root
}

// loadConfig reads --config or falls back to defaults.
func (f *globalFlags) loadConfig() (volley.Config, error) {
	if f.configPath == "" {
		return volley.DefaultConfig(), nil
	}

	return volley.LoadConfig(f.configPath)
}

func (f *globalFlags) logger() volley.Logger {
	return logging.NewSlogText(f.logLevel)
}
