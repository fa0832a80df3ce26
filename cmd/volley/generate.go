package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/arloliu/volley/source"
)

func newGenerateCmd() *cobra.Command {
	var (
		size     int
		seed     uint64
		maxValue int64
		format   string
		outPath  string
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a deterministic random power matrix",
		Example: `  volley generate --size 8 --seed 42 > matrix.yaml
  volley generate --size 5 --format csv --out matrix.csv`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			src, err := source.NewRandom(seed, size, maxValue)
			if err != nil {
				return err
			}
			c, err := src.LoadMatrix(cmd.Context())
			if err != nil {
				return err
			}

			var f source.Format
			switch format {
			case "yaml":
				f = source.FormatYAML
			case "csv":
				f = source.FormatCSV
			default:
				return fmt.Errorf("unknown format %q, want yaml or csv", format)
			}

			var w io.Writer = cmd.OutOrStdout()
			if outPath != "" {
				file, err := os.Create(outPath)
				if err != nil {
					return err
				}
				defer file.Close()
				w = file
			}

			return source.Encode(w, c, f)
		},
	}

	cmd.Flags().IntVarP(&size, "size", "n", 5, "number of targets and periods")
	cmd.Flags().Uint64Var(&seed, "seed", 1, "random seed")
	cmd.Flags().Int64Var(&maxValue, "max", 10, "largest power value")
	cmd.Flags().StringVar(&format, "format", "yaml", "yaml|csv")
	cmd.Flags().StringVar(&outPath, "out", "", "write to file instead of stdout")

	return cmd
}
