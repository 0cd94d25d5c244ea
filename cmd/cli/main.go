package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/solobooks/solobooks/cmd/cli/commands"
)

func main() {
	// .env is optional, env vars may come from the environment directly
	_ = godotenv.Load()

	if err := commands.RootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
