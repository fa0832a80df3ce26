package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arloliu/volley"
	"github.com/arloliu/volley/source"
)

func newTwoWaveCmd(global *globalFlags) *cobra.Command {
	var matrixPath, output string

	cmd := &cobra.Command{
		Use:   "two-wave",
		Short: "Score an optimal wave and its disjoint complement",
		Long: `Finds an optimal one-target-per-period wave and the best second wave
that never repeats a (target, period) pairing of the first, and sums
both on raw, undegraded power.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := global.loadConfig()
			if err != nil {
				return err
			}

			src, err := source.NewFile(matrixPath)
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

			res, err := opt.TwoWave(cmd.Context(), c)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			switch output {
			case "json":
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")

				return enc.Encode(res)
			case "table":
				return renderTwoWave(out, c, res)
			default:
				return fmt.Errorf("unknown output %q, want table or json", output)
			}
		},
	}

	cmd.Flags().StringVarP(&matrixPath, "matrix", "m", "", "matrix file (.yaml, .yml, .json or .csv)")
	cmd.Flags().StringVarP(&output, "output", "o", "table", "table|json")
	_ = cmd.MarkFlagRequired("matrix")

	return cmd
}
