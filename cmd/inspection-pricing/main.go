// Package main is the entry point for the inspection-pricing server.
package main

import (
	"os"

	"github.com/donaldgifford/inspection-pricing/cmd/inspection-pricing/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
