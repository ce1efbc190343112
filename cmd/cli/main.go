// Command quotectl prices properties and checks quote data from the shell.
package main

import (
	"os"
	"property_quote/cmd/cli/cmd"

	_ "github.com/joho/godotenv/autoload"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
