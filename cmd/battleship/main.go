// Package main runs one interactive battleship game.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	battleshipcmd "github.com/louisbranch/battleship/internal/cmd/battleship"
)

func main() {
	cfg, err := battleshipcmd.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		log.Fatalf("parse flags: %v", err)
	}
	log.SetPrefix("[BATTLESHIP] ")
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := battleshipcmd.Run(ctx, cfg, os.Stdin, os.Stdout, os.Stderr); err != nil {
		log.Fatalf("battleship: %v", err)
	}
}
