// Package main is an operator CLI for the auth service: minting development
// tokens, revoking tokens and purging expired guest sessions.
package main

import (
	"os"
)

func main() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
