// Command dyvideostats reads one query as JSON on stdin and prints the result
// envelope on stdout. It always exits 0; failures are reported in the envelope.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"dyvideostats/internal/application"
	"dyvideostats/internal/config"
	"dyvideostats/internal/models"
	"dyvideostats/internal/plugin"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"
)

func main() {
	_ = godotenv.Load(".env")

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	app := &cli.App{
		Name:  "dyvideostats",
		Usage: "query Douyin video statistics: JSON request on stdin, result envelope on stdout",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "path to the yaml config",
				Value:   config.DefaultPath,
				EnvVars: []string{"DYVIDEOSTATS_CONFIG"},
			},
		},
		Action: run,
	}

	if err := app.RunContext(ctx, os.Args); err != nil {
		writeFailure(err)
	}
}

func run(c *cli.Context) error {
	cfg, err := config.ParseConfig(c.String("config"))
	if err != nil {
		return err
	}

	logger, err := application.NewLogger(cfg.Log.Level)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	svc, err := application.NewVideoService(cfg, logger, nil, nil)
	if err != nil {
		return err
	}

	if err := plugin.Run(c.Context, os.Stdin, os.Stdout, svc); err != nil {
		// stdout is gone, nothing left to report the failure to
		logger.Errorf("dyvideostats: %v", err)
	}

	return nil
}

func writeFailure(err error) {
	if werr := plugin.WriteResult(os.Stdout, models.Failed(err)); werr != nil {
		log.Println("dyvideostats:", werr)
	}
}
