package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"term-life/internal/app"
	"term-life/internal/term"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	cat, skipped, err := cfg.Catalog()
	for _, fe := range skipped {
		log.Printf("%s is an invalid game file: %v", fe.Path, fe.Err)
	}
	if err != nil {
		log.Fatal(err)
	}

	screen, err := term.Open()
	if err != nil {
		log.Fatalf("open terminal: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err = term.Play(ctx, screen, cat, term.Options{GameID: cfg.Game, Adjust: cfg.Apply})
	stop()
	screen.Fini()

	if err != nil && !errors.Is(err, term.ErrCancelled) {
		log.Fatal(err)
	}
}
