package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/vncsmyrnk/pollbot/internal/adapters/discord"
)

// Registers the global `poll` slash command. Run once per deployment;
// re-running overwrites the existing registration.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	token := os.Getenv("DISCORD_TOKEN")
	appID := os.Getenv("DISCORD_APP_ID")
	if token == "" || appID == "" {
		log.Fatal("DISCORD_TOKEN and DISCORD_APP_ID are required")
	}

	client := discord.NewClient(token, appID)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := client.RegisterCommands(ctx); err != nil {
		log.Fatalf("Error registering commands: %v", err)
	}

	log.Println("Commands registered successfully.")
}
