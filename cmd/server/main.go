package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	_ "dyvideostats/internal/api/docs"
	"dyvideostats/internal/application"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load(".env")

	ctx, cancel := signal.NotifyContext(
		context.Background(),
		syscall.SIGINT,
		syscall.SIGTERM,
	)
	defer cancel()

	app := application.NewApplication()

	if err := app.Start(ctx); err != nil {
		log.Fatalln("can't start application:", err)
	}
	if err := app.Wait(ctx, cancel); err != nil {
		log.Fatalln("All systems closed with errors. LastError:", err)
	}

	log.Println("All systems closed without errors")
}
