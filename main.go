// Package main is the entry point for the ldform CLI.
package main

import "ldform.dev/pkg/ldform/cmd"

func main() {
	cmd.Execute()
}
