package cmd

import (
	"fmt"
	"sort"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	peg "github.com/arden-voss/gopeg"
)

var rootCmd = &cobra.Command{
	Use:   "pegrun",
	Short: "Run the sample grammars against a piece of input",
	Long:  "pegrun parses a single input string against one of the sample grammars and prints either the resulting value or the furthest parse error.",
}

func init() {
	pterm.Info.Prefix = pterm.Prefix{
		Text:  " INFO ",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " ERROR ",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

// Execute runs the root command, exiting the process on error.
func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}

// reportFailure prints a parse error to the user: the diagnostics that
// blocked the parse from running if the grammar itself is malformed,
// otherwise the furthest position any combinator backtracked from.
func reportFailure(err error, errorPos int, diags []peg.Diagnostic) {
	pterm.Error.Println(err.Error())
	if len(diags) > 0 {
		for _, d := range diags {
			pterm.Error.Println(d.String())
		}
		return
	}
	pterm.Info.Println(fmt.Sprintf("furthest error at byte offset %d", errorPos))
}

// renderTrace prints per-rule invocation counts, success counts and
// cumulative duration collected by a CounterMetrics, sorted by rule name
// for stable output.
func renderTrace(m *peg.CounterMetrics) {
	rules := make([]string, 0, len(m.Invocations))
	for rule := range m.Invocations {
		rules = append(rules, rule)
	}
	sort.Strings(rules)

	pterm.Info.Println("trace:")
	for _, rule := range rules {
		pterm.Info.Println(fmt.Sprintf(
			"  %s: invocations=%d successes=%d duration=%s",
			rule, m.Invocations[rule], m.Successes[rule], m.Durations[rule],
		))
	}
}
