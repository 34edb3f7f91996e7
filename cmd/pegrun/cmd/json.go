package cmd

import (
	"fmt"
	"os"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	peg "github.com/arden-voss/gopeg"
	"github.com/arden-voss/gopeg/examples/json"
)

var jsonOptions struct {
	Trace bool
}

var jsonCmd = &cobra.Command{
	Use:   "json <text>",
	Short: "Parse a JSON document and render it as a tree",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		runJSON(args[0])
	},
}

func init() {
	jsonCmd.Flags().BoolVar(&jsonOptions.Trace, "trace", false, "record per-rule invocation counts and durations")
	rootCmd.AddCommand(jsonCmd)
}

func runJSON(text string) {
	opts := peg.Options{}
	var metrics *peg.CounterMetrics
	if jsonOptions.Trace {
		metrics = peg.NewCounterMetrics()
		opts.Trace = true
		opts.Metrics = metrics
	}

	v, result, err := json.ParseWithOptions(text, opts)
	if err != nil {
		reportFailure(err, result.ErrorPosition, result.Diagnostics)
		os.Exit(1)
	}
	root := pterm.NewTreeFromLeveledList(jsonLeveledList(v))
	pterm.DefaultTree.WithRoot(root).Render()
	if metrics != nil {
		renderTrace(metrics)
	}
}

// jsonLeveledList walks v depth-first into a flat leveled list, the shape
// pterm.NewTreeFromLeveledList expects.
func jsonLeveledList(v *json.Value) pterm.LeveledList {
	var ll pterm.LeveledList
	appendJSONValue(&ll, "", v, 0)
	return ll
}

func appendJSONValue(ll *pterm.LeveledList, label string, v *json.Value, level int) {
	switch {
	case v == nil || v.Kind == json.KindNull:
		*ll = append(*ll, pterm.LeveledListItem{Level: level, Text: label + "null"})
	case v.Kind == json.KindArray:
		*ll = append(*ll, pterm.LeveledListItem{Level: level, Text: label + "array"})
		for i, e := range v.Arr {
			appendJSONValue(ll, fmt.Sprintf("[%d] ", i), e, level+1)
		}
	case v.Kind == json.KindObject:
		*ll = append(*ll, pterm.LeveledListItem{Level: level, Text: label + "object"})
		for _, m := range v.Obj {
			appendJSONValue(ll, m.Key+": ", m.Val, level+1)
		}
	default:
		*ll = append(*ll, pterm.LeveledListItem{Level: level, Text: label + v.String()})
	}
}
