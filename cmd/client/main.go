package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/onkmade/secondhand/internal/buildinfo"
	"github.com/onkmade/secondhand/internal/client/cli"
	"github.com/onkmade/secondhand/internal/client/config"
	"github.com/onkmade/secondhand/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()

	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	app, err := cli.NewApp(cfg, logger)

	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(ctx)

}
