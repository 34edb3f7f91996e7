// Command pegrun is a small CLI exercising the sample grammars against
// arbitrary input from the command line.
package main

import "github.com/arden-voss/gopeg/cmd/pegrun/cmd"

func main() {
	cmd.Execute()
}
