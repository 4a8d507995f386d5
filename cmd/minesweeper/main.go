package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"math/rand"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/term"

	"svw.info/minesweeper/internal/config"
	"svw.info/minesweeper/internal/console"
	"svw.info/minesweeper/internal/hint"
	"svw.info/minesweeper/internal/render"
	"svw.info/minesweeper/internal/validator"
)

func main() {
	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(2)
	}
	logger, closer, err := cfg.NewLogger()
	if err != nil {
		fmt.Fprintln(os.Stderr, "logger:", err)
		os.Exit(2)
	}
	defer closer.Close()

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	styled := cfg.Color == config.ColorAlways ||
		(cfg.Color == config.ColorAuto && term.IsTerminal(int(os.Stdout.Fd())))
	logger.WithFields(logrus.Fields{"seed": seed, "styled": styled}).Info("starting")

	a := &app{
		cfg:       cfg,
		log:       logger,
		rng:       rand.New(rand.NewSource(seed)),
		console:   console.New(os.Stdin, os.Stdout),
		renderer:  render.New(styled),
		validator: validator.New(),
		hinter:    hint.NewBasic(),
	}
	if err := a.run(context.Background()); err != nil && !errors.Is(err, io.EOF) {
		logger.WithError(err).Error("game aborted")
		closer.Close()
		os.Exit(1)
	}
}
