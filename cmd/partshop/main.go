package main

import (
	"os"

	"github.com/dwikikusuma/partshop/cmd/partshop/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
