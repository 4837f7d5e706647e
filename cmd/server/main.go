package main

import (
	"context"
	"log"

	"github.com/RichiMaiden/menacor-vital/internal/server"
	"github.com/RichiMaiden/menacor-vital/internal/server/config"
	"github.com/joho/godotenv"
)

func main() {
	ctx := context.Background()

	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := config.LoadConfig()
	app, err := server.NewApp(ctx, cfg)
	if err != nil {
		log.Fatalf("%v", err)
	}

	if err := app.Run(ctx); err != nil {
		log.Fatalf("%v", err)
	}
}
