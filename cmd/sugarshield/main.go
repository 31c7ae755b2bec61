// Package main is the single-binary entrypoint for SugarShield.
// One binary, local state, no accounts.
package main

import "github.com/sugarshield/sugarshield/internal/cli"

// version is set at build time via -ldflags.
var version = "dev"

func main() {
	cli.Execute(version)
}
