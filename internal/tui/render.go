package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/gemcrush/internal/engine"
)

// gemStyles maps a gem type to its display color. Types beyond the
// palette wrap around.
var gemStyles = []lipgloss.Style{
	lipgloss.NewStyle().Foreground(lipgloss.Color("9")),   // bright red
	lipgloss.NewStyle().Foreground(lipgloss.Color("10")),  // bright green
	lipgloss.NewStyle().Foreground(lipgloss.Color("12")),  // bright blue
	lipgloss.NewStyle().Foreground(lipgloss.Color("11")),  // bright yellow
	lipgloss.NewStyle().Foreground(lipgloss.Color("13")),  // bright magenta
	lipgloss.NewStyle().Foreground(lipgloss.Color("14")),  // bright cyan
	lipgloss.NewStyle().Foreground(lipgloss.Color("208")), // orange
	lipgloss.NewStyle().Foreground(lipgloss.Color("7")),   // white
}

var (
	removalStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Bold(true)
	explodeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("208")).Bold(true)
	sweepStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Bold(true)
	pendingStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))

	boardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229"))

	statStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))

	bonusStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("213"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

// gemGlyph returns the rune drawn for a cell.
func gemGlyph(cell engine.Cell) string {
	if !cell.Filled {
		return " "
	}
	switch cell.Special {
	case engine.SpecialAreaBomb:
		return "◆"
	case engine.SpecialWildcard:
		return "★"
	case engine.SpecialLineClear:
		switch cell.Dir {
		case engine.DirVertical:
			return "┃"
		case engine.DirCross:
			return "╋"
		default:
			return "━"
		}
	default:
		return "●"
	}
}

// renderCell draws one board cell with cursor and selection markers.
func renderCell(m GameModel, pos engine.Coord) string {
	cell := m.display.At(pos)
	glyph := gemGlyph(cell)

	style := gemStyles[0]
	if cell.Filled {
		style = gemStyles[cell.Type%len(gemStyles)]
	}
	if tag, ok := m.highlight[pos]; ok {
		switch tag {
		case engine.AnimExplode:
			style = explodeStyle
			glyph = "✦"
		case engine.AnimSweep:
			style = sweepStyle
		default:
			style = removalStyle
			glyph = "◌"
		}
	} else if m.pending[pos] {
		style = pendingStyle
	}

	left, right := " ", " "
	if pos == m.cursor && !m.playing {
		left, right = "[", "]"
	} else if m.selected != nil && *m.selected == pos {
		left, right = "(", ")"
	}

	return left + style.Render(glyph) + right
}

// renderBoard draws the full board inside its border.
func renderBoard(m GameModel) string {
	var b strings.Builder
	for y := 0; y < m.display.H; y++ {
		if y > 0 {
			b.WriteString("\n")
		}
		for x := 0; x < m.display.W; x++ {
			b.WriteString(renderCell(m, engine.C(x, y)))
		}
	}
	return boardStyle.Render(b.String())
}

// renderHeader draws the title and stat line above the board.
func renderHeader(m GameModel) string {
	title := headerStyle.Render("G E M C R U S H")
	stats := statStyle.Render(fmt.Sprintf(
		"score %d   best %d   moves %d   combo x%d",
		m.score, m.highScore, m.moves, m.bestCombo,
	))

	line := title + "\n" + stats
	if m.lastEvent != nil {
		ev := m.lastEvent
		if ev.IsBonus {
			line += "\n" + bonusStyle.Render(fmt.Sprintf("special combo! +%d", ev.Points))
		} else if ev.Combo > 1 {
			line += "\n" + bonusStyle.Render(fmt.Sprintf(
				"chain x%d (+%d, x%.1f)", ev.Combo, ev.Points, ev.Breakdown.ComboMultiplier,
			))
		} else {
			line += "\n" + statStyle.Render(fmt.Sprintf("+%d", ev.Points))
		}
	}
	return line
}

// renderGame composes the full board screen.
func renderGame(m GameModel) string {
	var b strings.Builder
	b.WriteString(renderHeader(m))
	b.WriteString("\n\n")
	b.WriteString(renderBoard(m))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	if m.width > 0 {
		return lipgloss.PlaceHorizontal(m.width, lipgloss.Center, b.String())
	}
	return b.String()
}

// centerText centers a single line of text within the given width.
func centerText(text string, width int) string {
	if width <= len(text) {
		return text
	}
	padding := (width - len(text)) / 2
	return strings.Repeat(" ", padding) + text
}
