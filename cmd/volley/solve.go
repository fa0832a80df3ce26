package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arloliu/volley"
	"github.com/arloliu/volley/internal/api"
	"github.com/arloliu/volley/source"
)

type solveFlags struct {
	matrixPath  string
	mode        string
	degradation int
	output      string
}

func newSolveCmd(global *globalFlags) *cobra.Command {
	flags := &solveFlags{}

	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Schedule attacks for a power matrix",
		Example: `  volley solve --matrix matrix.yaml
  volley solve --matrix matrix.csv --mode 2x2 -k 3 --output json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSolve(cmd, global, flags)
		},
	}

	cmd.Flags().StringVarP(&flags.matrixPath, "matrix", "m", "", "matrix file (.yaml, .yml, .json or .csv)")
	cmd.Flags().StringVar(&flags.mode, "mode", "", "attack limits MxR, 1x1 or 2x2 (default from config)")
	cmd.Flags().IntVarP(&flags.degradation, "degradation", "k", 0, "degradation coefficient k >= 2 (default from config)")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "table", "table|json")
	_ = cmd.MarkFlagRequired("matrix")

	return cmd
}

func runSolve(cmd *cobra.Command, global *globalFlags, flags *solveFlags) error {
	cfg, err := global.loadConfig()
	if err != nil {
		return err
	}
	if flags.degradation != 0 {
		cfg.Degradation = flags.degradation
	}

	mode := cfg.Mode()
	if flags.mode != "" {
		if mode, err = volley.ParseMode(flags.mode); err != nil {
			return err
		}
		// The optimizer validates its configured mode, so keep them in step.
		cfg.PerPeriod, cfg.PerTarget = mode.PerPeriod, mode.PerTarget
	}

	src, err := source.NewFile(flags.matrixPath)
	if err != nil {
		return err
	}
	c, err := src.LoadMatrix(cmd.Context())
	if err != nil {
		return err
	}

	opt, err := volley.NewOptimizer(&cfg, volley.WithLogger(global.logger()))
	if err != nil {
		return err
	}

	res, err := opt.OptimizeMode(cmd.Context(), c, mode)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	switch flags.output {
	case "json":
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")

		return enc.Encode(api.NewOptimizeResponse(res))
	case "table":
		return renderResult(out, c, res, cfg.Degradation)
	default:
		return fmt.Errorf("unknown output %q, want table or json", flags.output)
	}
}
