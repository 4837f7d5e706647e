package main

import (
	"context"
	"log"

	"github.com/RichiMaiden/menacor-vital/internal/client/cli"
	"github.com/RichiMaiden/menacor-vital/internal/client/config"
)

func main() {
	ctx := context.Background()

	cfg := config.LoadConfig()
	app, err := cli.NewApp(ctx, cfg)
	if err != nil {
		log.Fatalf("%v", err)
	}

	app.Run(ctx)
}
