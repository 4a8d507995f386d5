// Package console talks to the player over a line-based terminal: it asks
// for board dimensions, moves and whether to play again, and re-prompts
// until the answer is valid.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"svw.info/minesweeper/internal/domain"
)

const clearScreen = "\033[2J\033[H"

const (
	banner  = "M I N E S W E E P E R\n\nOpen every safe cell and flag every mine.\n"
	goodbye = "Thanks for playing.\n"
)

type Console struct {
	in  *bufio.Scanner
	out io.Writer
}

func New(in io.Reader, out io.Writer) *Console {
	return &Console{in: bufio.NewScanner(in), out: out}
}

func (c *Console) Clear() { fmt.Fprint(c.out, clearScreen) }

func (c *Console) Welcome() {
	c.Clear()
	fmt.Fprint(c.out, banner)
}

func (c *Console) Goodbye() {
	c.Clear()
	fmt.Fprint(c.out, goodbye)
}

func (c *Console) Println(a ...any) { fmt.Fprintln(c.out, a...) }

func (c *Console) Print(s string) { fmt.Fprint(c.out, s) }

// line reads the next line; io.EOF when the input is exhausted.
func (c *Console) line() (string, error) {
	if !c.in.Scan() {
		if err := c.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSpace(c.in.Text()), nil
}

// readInt prompts until the player enters an integer in [lo, hi]. An empty
// line clears the screen and asks again.
func (c *Console) readInt(prompt string, lo, hi int) (int, error) {
	for {
		fmt.Fprint(c.out, prompt)
		s, err := c.line()
		if err != nil {
			return 0, err
		}
		if s == "" {
			c.Clear()
			continue
		}
		v, err := strconv.Atoi(s)
		switch {
		case errors.Is(err, strconv.ErrRange):
			fmt.Fprintln(c.out, "Number out of range. Please enter a smaller number.")
		case err != nil:
			fmt.Fprintln(c.out, "Invalid input. Please enter a valid integer.")
		case v < lo || v > hi:
			fmt.Fprintf(c.out, "Input out of range. Please enter a number between %d and %d.\n", lo, hi)
		default:
			return v, nil
		}
	}
}

// Dimensions asks for the board width and height, each in [lo, hi].
func (c *Console) Dimensions(lo, hi int) (width, height int, err error) {
	if width, err = c.Width(lo, hi); err != nil {
		return 0, 0, err
	}
	if height, err = c.Height(lo, hi); err != nil {
		return 0, 0, err
	}
	return width, height, nil
}

func (c *Console) Width(lo, hi int) (int, error) {
	return c.readInt("Provide width of the board: ", lo, hi)
}

func (c *Console) Height(lo, hi int) (int, error) {
	return c.readInt("Provide height of the board: ", lo, hi)
}

// Move asks for a 1-based row and column and returns a zero-based turn. The
// opening move is always a reveal, so no mode is asked for it.
func (c *Console) Move(first bool, width, height int) (domain.Turn, error) {
	row, err := c.readInt("Insert row: ", 1, height)
	if err != nil {
		return domain.Turn{}, err
	}
	col, err := c.readInt("Insert column: ", 1, width)
	if err != nil {
		return domain.Turn{}, err
	}
	t := domain.Turn{Coord: domain.Coord{Row: row - 1, Col: col - 1}, Mode: domain.Reveal}
	if first {
		return t, nil
	}
	mode, err := c.readInt("Insert mode [1 - reveal cell | 2 - (un)flag mine | 3 - hint]: ",
		int(domain.Reveal), int(domain.Hint))
	if err != nil {
		return domain.Turn{}, err
	}
	t.Mode = domain.Mode(mode)
	return t, nil
}

// PlayAgain asks a yes/no question until it gets "y" or "n".
func (c *Console) PlayAgain() (bool, error) {
	fmt.Fprint(c.out, "Play again? [y - yes | n - no]: ")
	for {
		s, err := c.line()
		if err != nil {
			return false, err
		}
		switch strings.ToLower(s) {
		case "y":
			return true, nil
		case "n":
			return false, nil
		}
		fmt.Fprint(c.out, "Provide y or n to continue: ")
	}
}
