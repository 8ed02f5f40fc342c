// Entrypoint for the Cobra CLI; all flag/subcommand wiring lives in cmd/root.go.

package main

import (
	"github.com/R3mmurd/Resources-Simulator/cmd"
)

func main() {
	cmd.Execute()
}
