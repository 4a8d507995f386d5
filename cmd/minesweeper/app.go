package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"svw.info/minesweeper/internal/config"
	"svw.info/minesweeper/internal/console"
	"svw.info/minesweeper/internal/domain"
	"svw.info/minesweeper/internal/ports"
	"svw.info/minesweeper/internal/usecase"
)

// app is the outer loop: one round after another until the player stops.
type app struct {
	cfg       config.Config
	log       logrus.FieldLogger
	rng       ports.RandomSource
	console   *console.Console
	renderer  ports.Renderer
	validator ports.Validator
	hinter    ports.Hinter
}

func (a *app) run(ctx context.Context) error {
	a.console.Welcome()
	for {
		if err := a.round(ctx); err != nil {
			return err
		}
		again, err := a.console.PlayAgain()
		if err != nil {
			return err
		}
		if !again {
			break
		}
	}
	a.console.Goodbye()
	return nil
}

func (a *app) round(ctx context.Context) error {
	width, height, err := a.dimensions()
	if err != nil {
		return err
	}
	game, err := usecase.NewGame(usecase.Settings{Width: width, Height: height, Density: a.cfg.Density},
		a.rng, a.validator, a.hinter, a.log)
	if err != nil {
		return err
	}
	a.show(game)

	for game.Status() == domain.Playing {
		turn, err := a.console.Move(!game.Started(), width, height)
		if err != nil {
			return err
		}
		if turn.Mode == domain.Hint {
			s, ok, err := game.Hint(ctx)
			if err != nil {
				return err
			}
			a.show(game)
			if ok {
				a.console.Println(s.Message)
			} else {
				a.console.Println("No certain move from what is visible.")
			}
			continue
		}
		if _, err := game.Play(ctx, turn); err != nil {
			if errors.Is(err, domain.ErrOutOfBounds) {
				a.console.Println(err)
				continue
			}
			return err
		}
		a.show(game)
	}

	switch game.Status() {
	case domain.Won:
		a.console.Println("You won the game!!!")
	case domain.Defeated:
		a.console.Println("It was a mine :c")
	}
	return nil
}

// dimensions returns the configured board size, asking the player for
// whichever side is unset.
func (a *app) dimensions() (width, height int, err error) {
	width, height = a.cfg.Width, a.cfg.Height
	switch {
	case width == 0 && height == 0:
		return a.console.Dimensions(usecase.MinSide, usecase.MaxSide)
	case width == 0:
		width, err = a.console.Width(usecase.MinSide, usecase.MaxSide)
	case height == 0:
		height, err = a.console.Height(usecase.MinSide, usecase.MaxSide)
	}
	return width, height, err
}

func (a *app) show(game *usecase.Game) {
	a.console.Clear()
	a.console.Print(a.renderer.Render(game.Grid()))
	a.console.Println(fmt.Sprintf("Mines left: %d", game.MinesLeft()))
}
