package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"

	"github.com/arloliu/volley"
	"github.com/arloliu/volley/power"
)

var (
	titleColor   = color.New(color.FgCyan, color.Bold)
	successColor = color.New(color.FgGreen, color.Bold)
	failColor    = color.New(color.FgRed, color.Bold)
)

// renderResult prints a schedule as one row per period with the power the
// enemy still fields in that period.
func renderResult(w io.Writer, c volley.PowerMatrix, res volley.Result, k int) error {
	titleColor.Fprintf(w, "Mode %s (%s), %d targets, k=%d\n\n", res.Mode, res.Mode.Kind(), c.Size(), k)

	if !res.Feasible {
		failColor.Fprintln(w, "No feasible schedule")

		return nil
	}

	discount, err := power.Discount(k)
	if err != nil {
		return err
	}

	table := tablewriter.NewTable(w,
		tablewriter.WithHeader([]string{"Period", "Targets", "Attacked power", "Period power"}),
	)
	for j, targets := range res.Schedule {
		var attacked int64
		names := make([]string, len(targets))
		for i, target := range targets {
			attacked += c[target][j]
			names[i] = strconv.Itoa(target)
		}
		periodPower := float64(c.ColumnTotal(j)) - discount*float64(attacked)

		if err := table.Append([]string{
			strconv.Itoa(j),
			strings.Join(names, ", "),
			strconv.FormatInt(attacked, 10),
			strconv.FormatFloat(periodPower, 'f', 2, 64),
		}); err != nil {
			return err
		}
	}
	if err := table.Render(); err != nil {
		return err
	}

	fmt.Fprintln(w)
	successColor.Fprintf(w, "Total power: %.2f", res.Power)
	fmt.Fprintf(w, " (undefended %d, %d periods)\n", c.Total(), res.Schedule.Periods())

	return nil
}

// renderTwoWave prints both waves side by side.
func renderTwoWave(w io.Writer, c volley.PowerMatrix, res volley.TwoWaveResult) error {
	titleColor.Fprintf(w, "Two-wave plan, %d targets\n\n", c.Size())

	table := tablewriter.NewTable(w,
		tablewriter.WithHeader([]string{"Period", "Primal target", "Primal power", "Complement target", "Complement power"}),
	)
	for j := range res.Primal {
		if err := table.Append([]string{
			strconv.Itoa(j),
			strconv.Itoa(res.Primal[j]),
			strconv.FormatInt(c[res.Primal[j]][j], 10),
			strconv.Itoa(res.Complement[j]),
			strconv.FormatInt(c[res.Complement[j]][j], 10),
		}); err != nil {
			return err
		}
	}
	if err := table.Render(); err != nil {
		return err
	}

	fmt.Fprintln(w)
	successColor.Fprintf(w, "Score: %d", res.Score)
	fmt.Fprintf(w, " (primal %d + complement %d)\n", res.PrimalSum, res.ComplementSum)

	return nil
}
