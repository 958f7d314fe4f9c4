package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/namsral/flag"
	"github.com/whatisfaker/eol/config"
	"github.com/whatisfaker/eol/server"
)

func main() {
	fs := flag.NewFlagSetWithEnvPrefix("eol-server", "EOL", flag.ExitOnError)
	conf := fs.String("conf", "", "YAML config file")
	listen := fs.String("listen", "", "listen address")
	logLevel := fs.String("loglevel", "", "log level: debug, info, warn, error")
	_ = fs.Parse(os.Args[1:])

	cfg, err := config.Load(*conf)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "listen":
			cfg.Listen = *listen
		case "loglevel":
			cfg.LogLevel = *logLevel
		}
	})
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	srv := server.NewServer(
		server.Listen(cfg.Listen),
		server.LogLevel(cfg.LogLevel),
		server.ReadTimeout(cfg.ReadTimeout),
		server.MaxBodySize(cfg.MaxBodySize),
		server.BufferSize(cfg.BufferSize),
	)
	go func() {
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
		<-sig
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			fmt.Fprintln(os.Stderr, err)
		}
	}()
	if err := srv.ListenAndServe(); err != nil && err != server.ErrServerClosed {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
