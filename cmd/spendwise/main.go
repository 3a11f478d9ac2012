package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/spendwise-dev/spendwise/internal/commands"
)

func main() {
	// A .env next to the binary may carry SPENDWISE_CONFIG / SPENDWISE_SALARY.
	_ = godotenv.Load()

	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
