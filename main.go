// Package main is the entry point for the docquery CLI.
package main

import (
	"docquery/cli/cmd"
)

func main() {
	cmd.Execute()
}
