// Command ipmctl is the ambient demo/diagnostic CLI for the reachability
// engine (SPEC_FULL.md §0): it runs the embedded S1-S6 scenarios of
// spec.md §8 for manual inspection. It performs no CSV/DOT/JSON ingress of
// external graphs; that stays a collaborator concern.
package main

import "github.com/Temi-Tory/ipm/cmd/ipmctl/cmd"

func main() {
	cmd.Execute()
}
