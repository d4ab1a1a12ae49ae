package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/idilsaglam/todohooks/internal/cli"
	"github.com/idilsaglam/todohooks/internal/config"
	"github.com/idilsaglam/todohooks/internal/log"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		config.Exitf("config: %v", err)
	}

	// Root flags (apply to every subcommand)
	groupPending := flag.Bool("group", false, "group output by pending/done")
	dark := flag.Bool("dark", cfg.Dark, "start in dark mode")
	flag.Parse()

	// The TUI owns the terminal, so logs always go to a file.
	logPath, err := cfg.LogPath()
	if err != nil {
		config.Exitf("log: %v", err)
	}
	if err := log.Init(log.Options{
		Level:       cfg.LogLevel,
		Development: cfg.IsDevelopment(),
		File:        logPath,
	}); err != nil {
		config.Exitf("log: %v", err)
	}

	code := cli.Run(flag.Args(), cli.Options{
		Group:    *groupPending,
		Dark:     *dark,
		Username: cfg.Username,
		AppTitle: cfg.AppTitle,
	})
	_ = log.Close()
	if code != 0 {
		fmt.Fprintln(os.Stderr)
	}
	os.Exit(code)
}
