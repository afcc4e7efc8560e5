package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/andrewpaige1/todolists/cmd"
)

func init() {
	// Load .env file if not in production environment
	if os.Getenv("TODOLISTS_ENV") != "production" {
		if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
			log.Printf("Warning: .env file could not be loaded: %v", err)
		}
	}
}

func main() {
	cmd.Execute()
}
