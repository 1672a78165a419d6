package main

import (
	"errors"
	"flag"
	"os"
	_ "time/tzdata"

	"github.com/charmbracelet/log"

	"github.com/sadopc/timesheet/internal/app"
	"github.com/sadopc/timesheet/internal/config"
	"github.com/sadopc/timesheet/internal/timew"
)

func main() {
	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "timesheet"})

	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		logger.Error("invalid configuration", "error", err)
		os.Exit(2)
	}

	lvl, _ := cfg.Level()
	logger.SetLevel(lvl)
	if cfg.File != "" {
		logger.Debug("loaded config file", "path", cfg.File)
	}

	if err := app.Run(cfg, os.Stdin, os.Stdout, timew.SystemClock(), logger); err != nil {
		logger.Error("report failed", "error", err)
		if timew.IsInputError(err) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}
