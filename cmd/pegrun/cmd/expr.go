package cmd

import (
	"fmt"
	"os"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	peg "github.com/arden-voss/gopeg"
	"github.com/arden-voss/gopeg/examples/expr"
)

var exprOptions struct {
	Trace bool
}

var exprCmd = &cobra.Command{
	Use:   "expr <text>",
	Short: "Evaluate an arithmetic/comparison/ternary expression",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		runExpr(args[0])
	},
}

func init() {
	exprCmd.Flags().BoolVar(&exprOptions.Trace, "trace", false, "record per-rule invocation counts and durations")
	rootCmd.AddCommand(exprCmd)
}

func runExpr(text string) {
	opts := peg.Options{}
	var metrics *peg.CounterMetrics
	if exprOptions.Trace {
		metrics = peg.NewCounterMetrics()
		opts.Trace = true
		opts.Metrics = metrics
	}

	v, result, err := expr.ParseWithOptions(text, opts)
	if err != nil {
		reportFailure(err, result.ErrorPosition, result.Diagnostics)
		os.Exit(1)
	}
	pterm.Info.Println(fmt.Sprint(v))
	if metrics != nil {
		renderTrace(metrics)
	}
}
