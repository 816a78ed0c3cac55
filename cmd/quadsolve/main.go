// Command quadsolve solves dense square linear systems from CSV input.
package main

import "github.com/m-vokhm/QuadMatrix-sub001/internal/cli"

func main() {
	cli.RunWithOSExit()
}
