package main

import (
	"os"

	"github.com/joho/godotenv"

	"leksika/cmd"
)

func main() {
	// API keys and paths may live in a local .env during development.
	_ = godotenv.Load()

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
