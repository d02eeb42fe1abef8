package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/rize-zxc/Project-Wesker/internal/app"
)

// @title        Project-Wesker API
// @version      1.0
// @description  CRUD пользователей и постов с кешом и флагом доступности
// @BasePath     /
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a, err := app.Build(ctx)
	if err != nil {
		log.Fatalf("build: %v", err)
	}
	if err := a.Run(ctx); err != nil {
		log.Fatalf("run: %v", err)
	}
}
