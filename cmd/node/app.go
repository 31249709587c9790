package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/UnendingLoop/MiniGrep/internal/appmode"
	"github.com/UnendingLoop/MiniGrep/internal/parser"
)

func main() {
	nodeParam, err := parser.InitNode(os.Args[1:])
	if err != nil {
		log.Printf("Failed to launch MiniGrep search-node: %v", err)
		os.Exit(1)
	}

	// готовим слушатель прерываний - контекст для всего приложения
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	err = appmode.RunNode(ctx, nodeParam)
	stop()
	if err != nil {
		log.Printf("Search-node error: %v", err)
		os.Exit(1)
	}
}
