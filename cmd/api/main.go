package main

import (
	"fmt"
	"os"
	_ "property_quote/docs"
	"property_quote/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Property Quote API
// @version         1.0
// @description     Instant property-insurance quotes priced from zip code risk and coverage tiers.

// @contact.name   API Support

// @host localhost:8080

// @BasePath  /

func main() {
	if err := routes.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "property-quote: %v\n", err)
		os.Exit(1)
	}
}
