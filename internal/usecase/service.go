package usecase

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"svw.info/minesweeper/internal/board"
	"svw.info/minesweeper/internal/domain"
	"svw.info/minesweeper/internal/generator"
	"svw.info/minesweeper/internal/ports"
)

const (
	MinSide        = 5
	MaxSide        = 50
	DefaultDensity = 0.2
)

var (
	ErrRoundOver       = errors.New("round is over")
	ErrInvalidSettings = fmt.Errorf("invalid game settings: %w", domain.ErrConfiguration)
	ErrNotAnAction     = errors.New("mode does not change the board")

	errNotConfigured = errors.New("usecase dependency not configured")
)

// Settings are the player-chosen parameters of a round.
type Settings struct {
	Width   int
	Height  int
	Density float64 // share of cells holding a mine
}

// MineCount applies the mine policy: floor(width*height*density).
func MineCount(width, height int, density float64) int {
	return int(math.Floor(float64(width*height) * density))
}

func (s Settings) Validate() error {
	if s.Width < MinSide || s.Width > MaxSide || s.Height < MinSide || s.Height > MaxSide {
		return fmt.Errorf("%w: board %dx%d outside [%d,%d]", ErrInvalidSettings, s.Width, s.Height, MinSide, MaxSide)
	}
	if s.Density < 0 || s.Density >= 1 {
		return fmt.Errorf("%w: density %.2f outside [0,1)", ErrInvalidSettings, s.Density)
	}
	// A centred first move excludes the full 3x3 block.
	centre := domain.Coord{Row: s.Height / 2, Col: s.Width / 2}
	if n, capacity := MineCount(s.Width, s.Height, s.Density), generator.Capacity(s.Width, s.Height, centre); n > capacity {
		return fmt.Errorf("%w: %d mines leave no room for a safe opening (max %d)", ErrInvalidSettings, n, capacity)
	}
	return nil
}

// Game runs one round. The real board is only built on the first move so
// that move can never hit a mine.
type Game struct {
	ID uuid.UUID

	settings  Settings
	rng       ports.RandomSource
	Validator ports.Validator
	Hinter    ports.Hinter
	log       logrus.FieldLogger

	preview *board.Board
	board   *board.Board
	status  domain.Status
	turns   int
}

func NewGame(s Settings, rng ports.RandomSource, v ports.Validator, h ports.Hinter, log logrus.FieldLogger) (*Game, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	if rng == nil {
		return nil, errNotConfigured
	}
	preview, err := board.New(s.Width, s.Height, 0, 0, 0)
	if err != nil {
		return nil, err
	}
	id := uuid.New()
	return &Game{
		ID:        id,
		settings:  s,
		rng:       rng,
		Validator: v,
		Hinter:    h,
		log:       log.WithField("round", id.String()),
		preview:   preview,
		status:    domain.Playing,
	}, nil
}

// Grid is what the player currently sees: the preview until the first move,
// the live board afterwards.
func (g *Game) Grid() ports.Grid {
	if g.board == nil {
		return g.preview
	}
	return g.board
}

func (g *Game) Status() domain.Status { return g.status }
func (g *Game) Started() bool         { return g.board != nil }
func (g *Game) Turns() int            { return g.turns }

// MinesLeft is the mine total minus the flags placed so far.
func (g *Game) MinesLeft() int {
	if g.board == nil {
		return MineCount(g.settings.Width, g.settings.Height, g.settings.Density)
	}
	return g.board.MineCount() - g.board.FlagCount()
}

// Play applies one turn and reports the round status afterwards. The first
// turn is always a reveal, whatever mode was asked for.
func (g *Game) Play(ctx context.Context, t domain.Turn) (domain.Status, error) {
	if g.status != domain.Playing {
		return g.status, ErrRoundOver
	}
	if err := ctx.Err(); err != nil {
		return g.status, err
	}
	if g.board == nil {
		if t.Mode != domain.Reveal {
			g.log.WithField("requested", t.Mode.String()).Debug("first move forced to reveal")
			t.Mode = domain.Reveal
		}
		if err := g.start(ctx, t.Coord); err != nil {
			return g.status, err
		}
	}

	entry := g.log.WithFields(logrus.Fields{"row": t.Row, "col": t.Col, "mode": t.Mode.String()})
	switch t.Mode {
	case domain.Reveal:
		out, err := g.board.RevealCell(t.Row, t.Col)
		if err != nil {
			return g.status, err
		}
		entry = entry.WithField("outcome", out.String())
		if out == domain.Lost {
			g.status = domain.Defeated
		}
	case domain.Flag:
		if err := g.board.ToggleFlag(t.Row, t.Col); err != nil {
			return g.status, err
		}
	default:
		return g.status, fmt.Errorf("%w: %s", ErrNotAnAction, t.Mode)
	}
	g.turns++

	if g.status == domain.Playing && !g.board.EvaluateWin() {
		g.status = domain.Won
	}
	entry.WithField("status", g.status.String()).Debug("turn applied")
	if g.status != domain.Playing {
		g.log.WithFields(logrus.Fields{"status": g.status.String(), "turns": g.turns}).Info("round finished")
	}
	return g.status, nil
}

func (g *Game) start(ctx context.Context, origin domain.Coord) error {
	mines := MineCount(g.settings.Width, g.settings.Height, g.settings.Density)
	b, err := board.New(g.settings.Width, g.settings.Height, mines, origin.Row, origin.Col)
	if err != nil {
		return err
	}
	if err := b.PlaceMines(g.rng); err != nil {
		return err
	}
	if err := b.ComputeAdjacency(); err != nil {
		return err
	}
	if g.Validator != nil {
		ok, conflicts, err := g.Validator.Validate(ctx, b)
		if err != nil {
			return fmt.Errorf("validate board: %w", err)
		}
		if !ok {
			g.log.WithField("conflicts", conflicts).Error("board failed validation")
			return fmt.Errorf("validate board: %d conflicting cells", len(conflicts))
		}
	}
	g.board = b
	g.log.WithFields(logrus.Fields{
		"width": g.settings.Width, "height": g.settings.Height,
		"mines": mines, "origin_row": origin.Row, "origin_col": origin.Col,
	}).Info("mines placed")
	return nil
}

// Hint asks the hinter for a deduction on the live board.
func (g *Game) Hint(ctx context.Context) (domain.Suggestion, bool, error) {
	if g.Hinter == nil {
		return domain.Suggestion{}, false, errNotConfigured
	}
	if g.board == nil || g.status != domain.Playing {
		return domain.Suggestion{}, false, nil
	}
	return g.Hinter.Hint(ctx, g.board)
}
