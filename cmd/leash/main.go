package main

import (
	"leash/pkg/lib"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		lib.Exit(err)
	}
}
