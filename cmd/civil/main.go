package main

import (
	"os"

	"github.com/JesseCoretta/go-civil/cmd/civil/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
