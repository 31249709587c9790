package main

import (
	"log"
	"os"

	"github.com/UnendingLoop/MiniGrep/internal/parser"
	"github.com/UnendingLoop/MiniGrep/internal/runner"
)

func main() {
	// инициализировать параметры запуска - запрос, файл и регистр:
	cfg, err := parser.Resolve(os.Args, os.LookupEnv)
	if err != nil {
		log.Printf("Failed to launch MiniGrep: %v\nUsage: MiniGrep QUERY FILE", err)
		os.Exit(1)
	}

	if err := runner.Run(cfg, os.Stdout); err != nil {
		log.Printf("Application error: %v", err)
		os.Exit(1)
	}
}
