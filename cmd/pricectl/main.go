// Package main is the entry point for the pricectl CLI client.
package main

import (
	"github.com/donaldgifford/inspection-pricing/cmd/pricectl/cmd"
)

func main() {
	cmd.Execute()
}
