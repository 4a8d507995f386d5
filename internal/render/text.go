// Package render lays a board out as text for a terminal.
package render

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"svw.info/minesweeper/internal/domain"
	"svw.info/minesweeper/internal/ports"
)

const (
	flagRune   = "⚐"
	hiddenRune = "■"
	mineRune   = "⚹"
	blankRune  = " "
)

var (
	flagStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	mineStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("208")).Bold(true)
	hiddenStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("248"))
	frameStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	numStyles   = []lipgloss.Style{
		lipgloss.NewStyle().Foreground(lipgloss.Color("33")),  // 1: light blue
		lipgloss.NewStyle().Foreground(lipgloss.Color("41")),  // 2: green
		lipgloss.NewStyle().Foreground(lipgloss.Color("196")), // 3: red
		lipgloss.NewStyle().Foreground(lipgloss.Color("99")),  // 4: deep purple
		lipgloss.NewStyle().Foreground(lipgloss.Color("160")), // 5: maroon
		lipgloss.NewStyle().Foreground(lipgloss.Color("37")),  // 6: cyan
		lipgloss.NewStyle().Foreground(lipgloss.Color("248")), // 7
		lipgloss.NewStyle().Foreground(lipgloss.Color("243")), // 8
	}
)

var _ ports.Renderer = (*Text)(nil)

// Text renders a grid with 1-based row and column headers inside a box
// drawn frame. Styled output adds terminal colours.
type Text struct {
	styled bool
}

func New(styled bool) *Text { return &Text{styled: styled} }

// Symbol returns the unstyled character for a cell.
func Symbol(c domain.Cell) string {
	switch domain.Classify(c) {
	case domain.GlyphFlag:
		return flagRune
	case domain.GlyphHidden:
		return hiddenRune
	case domain.GlyphMine:
		return mineRune
	case domain.GlyphCount:
		return strconv.Itoa(c.AdjacentMines())
	default:
		return blankRune
	}
}

func (t *Text) symbol(c domain.Cell) string {
	s := Symbol(c)
	if !t.styled {
		return s
	}
	switch domain.Classify(c) {
	case domain.GlyphFlag:
		return flagStyle.Render(s)
	case domain.GlyphHidden:
		return hiddenStyle.Render(s)
	case domain.GlyphMine:
		return mineStyle.Render(s)
	case domain.GlyphCount:
		n := c.AdjacentMines()
		if n >= 1 && n <= len(numStyles) {
			return numStyles[n-1].Render(s)
		}
	}
	return s
}

func (t *Text) frame(s string) string {
	if !t.styled {
		return s
	}
	return frameStyle.Render(s)
}

func (t *Text) Render(g ports.Grid) string {
	var sb strings.Builder
	w, h := g.Width(), g.Height()

	sb.WriteString(" 💣 " + t.frame("┃"))
	for c := 1; c <= w; c++ {
		fmt.Fprintf(&sb, "%2d ", c)
	}
	sb.WriteString("\n")
	sb.WriteString(t.frame("━━━━╋"+strings.Repeat("━━━", w)+"┓") + "\n")

	for r := 0; r < h; r++ {
		fmt.Fprintf(&sb, "%3d %s", r+1, t.frame("┃"))
		for c := 0; c < w; c++ {
			cell, err := g.Cell(r, c)
			if err != nil {
				cell = domain.NewCell()
			}
			sb.WriteString(" " + t.symbol(cell) + " ")
		}
		sb.WriteString(t.frame("┃") + "\n")
	}
	sb.WriteString(t.frame("━━━━┻"+strings.Repeat("━━━", w)+"┛") + "\n")
	return sb.String()
}
