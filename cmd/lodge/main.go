package main

import (
	"context"
	"fmt"
	"os"

	"lodge/config"
	"lodge/di"
	"lodge/shared/logger"
)

func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	app, err := di.InitializeCLI()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err.Error())
		os.Exit(1)
	}

	os.Exit(app.Run(context.Background(), os.Args[1:]))
}
